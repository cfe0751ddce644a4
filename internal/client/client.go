// Copyright (c) 2021-2026 Rustam Gilyazov and Contributors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package client is the Storyblok Management API request client.  It builds
// the space scoped URLs, attaches the authorisation headers and translates
// the responses into decoded JSON or an [*APIError].
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

// DefaultBaseURL is the Management API base URL of the EU region.
const DefaultBaseURL = "https://mapi.storyblok.com/v1"

const defUserAgent = "storyblok-mcp-server"

var (
	ErrNoToken = errors.New("management token is not set")
	ErrNoSpace = errors.New("space id is not set")
)

// Client issues requests against a single Storyblok space.
type Client struct {
	hc      *http.Client
	baseURL string
	spaceID string
	token   string
	ua      string
	lg      *slog.Logger
}

type Option func(*Client)

// WithHTTPClient sets the underlying HTTP client.  The default is
// http.DefaultClient.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.hc = hc
		}
	}
}

// WithUserAgent sets the User-Agent header value.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.ua = ua
		}
	}
}

// WithLogger sets the logger for request tracing.
func WithLogger(lg *slog.Logger) Option {
	return func(c *Client) {
		if lg != nil {
			c.lg = lg
		}
	}
}

// New creates a new Client for the space spaceID.  If baseURL is empty,
// [DefaultBaseURL] is used.
func New(baseURL, spaceID, token string, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, ErrNoToken
	}
	if spaceID == "" {
		return nil, ErrNoSpace
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	c := &Client{
		hc:      http.DefaultClient,
		baseURL: strings.TrimRight(baseURL, "/"),
		spaceID: spaceID,
		token:   token,
		ua:      defUserAgent,
		lg:      slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// SpaceID returns the space the client is bound to.
func (c *Client) SpaceID() string {
	return c.spaceID
}

// BuildURL returns the absolute URL for the space relative path.  Paths that
// already address a space explicitly (start with "/spaces/") are joined to
// the base URL as is.
func (c *Client) BuildURL(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if strings.HasPrefix(path, "/spaces/") {
		return c.baseURL + path
	}
	return c.baseURL + "/spaces/" + c.spaceID + path
}

// Headers returns the headers attached to every request.
func (c *Client) Headers() http.Header {
	h := make(http.Header, 4)
	h.Set("Authorization", c.token)
	h.Set("Content-Type", "application/json")
	h.Set("Accept", "application/json")
	h.Set("User-Agent", c.ua)
	return h
}

// Request describes a single API call.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any // JSON encoded when not nil
}

// Response is the raw successful response.
type Response struct {
	StatusCode int
	URL        string
	Body       []byte
}

// Decode unmarshals the response body into v.  An empty body is not an
// error, v is left untouched.
func (r *Response) Decode(v any) error {
	if v == nil || len(bytes.TrimSpace(r.Body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("decode response from %s: %w", r.URL, err)
	}
	return nil
}

// Send executes the request.  Non-2xx responses are returned as *APIError.
func (c *Client) Send(ctx context.Context, r Request) (*Response, error) {
	u := c.BuildURL(r.Path)
	if len(r.Query) > 0 {
		u += "?" + r.Query.Encode()
	}
	var body io.Reader
	if r.Body != nil {
		b, err := json.Marshal(r.Body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, r.Method, u, body)
	if err != nil {
		return nil, err
	}
	req.Header = c.Headers()

	c.lg.DebugContext(ctx, "api request", "method", r.Method, "url", u)
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", r.Method, u, err)
	}
	defer resp.Body.Close()

	data, err := HandleResponse(resp, u)
	if err != nil {
		c.lg.DebugContext(ctx, "api error", "method", r.Method, "url", u, "status", resp.StatusCode)
		return nil, err
	}
	return &Response{StatusCode: resp.StatusCode, URL: u, Body: data}, nil
}

// Do executes the request and decodes the JSON response into out, if out is
// not nil.
func (c *Client) Do(ctx context.Context, r Request, out any) error {
	resp, err := c.Send(ctx, r)
	if err != nil {
		return err
	}
	return resp.Decode(out)
}

// Get is a shorthand for a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.Do(ctx, Request{Method: http.MethodGet, Path: path, Query: query}, out)
}

// Post is a shorthand for a POST request.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, Request{Method: http.MethodPost, Path: path, Body: body}, out)
}

// Put is a shorthand for a PUT request.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, Request{Method: http.MethodPut, Path: path, Body: body}, out)
}

// Delete is a shorthand for a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.Do(ctx, Request{Method: http.MethodDelete, Path: path}, out)
}
