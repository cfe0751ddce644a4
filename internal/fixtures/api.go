package fixtures

import (
	"bytes"
	_ "embed"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
)

var (
	//go:embed assets/mapi/story.json
	StoryJSON string
	//go:embed assets/mapi/stories.json
	StoriesJSON string
	//go:embed assets/mapi/components.json
	ComponentsJSON string
	//go:embed assets/mapi/component.json
	ComponentJSON string
	//go:embed assets/mapi/tags.json
	TagsJSON string
	//go:embed assets/mapi/internal_tags.json
	InternalTagsJSON string
	//go:embed assets/mapi/datasources.json
	DatasourcesJSON string
	//go:embed assets/mapi/datasource_entries.json
	DatasourceEntriesJSON string
)

// APIPrefix is the path prefix of the fake Management API.
const APIPrefix = "/v1"

// TestServer returns a test HTTP server that responds with the given code and
// response. The caller should close the server when done.
func TestServer(t *testing.T, code int, response []byte) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(code)
		w.Write(response)
	}))
}

// Call is a request received by the fake API.
type Call struct {
	Method string
	Path   string // space relative path, i.e. "/stories/42"
	Query  url.Values
	Header http.Header
	Body   string
}

// Reply is a canned response.
type Reply struct {
	Code int
	Body string
}

// MAPI is a fake Storyblok Management API.  Routes are registered as
// "METHOD /path", where the path is relative to the space, i.e.
// "GET /stories/42".  Paths that address a different space are matched in
// full, i.e. "PUT /spaces/7/stories/42/ai_translate".  Unregistered routes
// respond with 404.
type MAPI struct {
	*httptest.Server

	mu      sync.Mutex
	replies map[string][]Reply
	handler map[string]http.HandlerFunc
	calls   []Call
}

// NewMAPI starts the fake API, it is closed when the test finishes.
func NewMAPI(t *testing.T) *MAPI {
	t.Helper()
	m := &MAPI{
		replies: make(map[string][]Reply),
		handler: make(map[string]http.HandlerFunc),
	}
	m.Server = httptest.NewServer(http.HandlerFunc(m.serve))
	t.Cleanup(m.Close)
	return m
}

// BaseURL returns the URL to initialise the client with.
func (m *MAPI) BaseURL() string {
	return m.URL + APIPrefix
}

// Reply registers the responses for the route.  Each request consumes one
// reply, the last one is repeated.
func (m *MAPI) Reply(route string, replies ...Reply) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.replies[route] = append(m.replies[route], replies...)
}

// JSON registers a single reply for the route.
func (m *MAPI) JSON(route string, code int, body string) {
	m.Reply(route, Reply{Code: code, Body: body})
}

// Handle registers a custom handler for the route.
func (m *MAPI) Handle(route string, h http.HandlerFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handler[route] = h
}

// Calls returns all received requests in order.
func (m *MAPI) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Call(nil), m.calls...)
}

// CallsTo returns the requests received on the route.
func (m *MAPI) CallsTo(route string) []Call {
	var ret []Call
	for _, c := range m.Calls() {
		if c.Method+" "+c.Path == route {
			ret = append(ret, c)
		}
	}
	return ret
}

func (m *MAPI) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	r.Body = io.NopCloser(bytes.NewReader(body))
	path := strings.TrimPrefix(r.URL.Path, APIPrefix)
	path = strings.TrimPrefix(path, "/spaces/"+TestSpaceID)

	route := r.Method + " " + path
	m.mu.Lock()
	m.calls = append(m.calls, Call{
		Method: r.Method,
		Path:   path,
		Query:  r.URL.Query(),
		Header: r.Header.Clone(),
		Body:   string(body),
	})
	h, hasHandler := m.handler[route]
	var rep Reply
	replies, hasReply := m.replies[route]
	if hasReply {
		rep = replies[0]
		if len(replies) > 1 {
			m.replies[route] = replies[1:]
		}
	}
	m.mu.Unlock()

	switch {
	case hasHandler:
		h(w, r)
	case hasReply:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(rep.Code)
		io.WriteString(w, rep.Body)
	default:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"error":"Not found"}`)
	}
}
