package fixtures

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMAPI_Handle(t *testing.T) {
	m := NewMAPI(t)
	var got string
	m.Handle("POST /tags/", func(w http.ResponseWriter, r *http.Request) {
		data, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		got = string(data)
		w.WriteHeader(http.StatusCreated)
	})

	const body = `{"tag":{"name":"Cron"}}`
	resp, err := http.Post(m.BaseURL()+"/spaces/"+TestSpaceID+"/tags/", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, body, got, "handler must see the request body")
	calls := m.CallsTo("POST /tags/")
	require.Len(t, calls, 1)
	assert.Equal(t, body, calls[0].Body)
}

func TestMAPI_notFound(t *testing.T) {
	m := NewMAPI(t)
	resp, err := http.Get(m.BaseURL() + "/spaces/" + TestSpaceID + "/stories/42")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
