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

package client

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuauaua/storyblok-mcp-server/internal/fixtures"
)

func testClient(t *testing.T, m *fixtures.MAPI) *Client {
	t.Helper()
	c, err := New(m.BaseURL(), fixtures.TestSpaceID, fixtures.TestToken)
	require.NoError(t, err)
	return c
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		space   string
		token   string
		wantErr error
		wantURL string
	}{
		{"ok", "https://api-us.storyblok.com/v1/", "1", "t", nil, "https://api-us.storyblok.com/v1"},
		{"default base url", "", "1", "t", nil, DefaultBaseURL},
		{"no token", "", "1", "", ErrNoToken, ""},
		{"no space", "", "", "t", ErrNoSpace, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.baseURL, tt.space, tt.token)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantURL, c.baseURL)
		})
	}
}

func TestClient_BuildURL(t *testing.T) {
	c, err := New("https://mapi.storyblok.com/v1", "288110", "t")
	require.NoError(t, err)
	tests := []struct {
		path string
		want string
	}{
		{"/stories", "https://mapi.storyblok.com/v1/spaces/288110/stories"},
		{"stories/42", "https://mapi.storyblok.com/v1/spaces/288110/stories/42"},
		{"/tags/", "https://mapi.storyblok.com/v1/spaces/288110/tags/"},
		{"/spaces/7/stories/42/ai_translate", "https://mapi.storyblok.com/v1/spaces/7/stories/42/ai_translate"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, c.BuildURL(tt.path))
		})
	}
}

func TestClient_Headers(t *testing.T) {
	c, err := New("", "1", "secret", WithUserAgent("test-agent"))
	require.NoError(t, err)
	h := c.Headers()
	assert.Equal(t, "secret", h.Get("Authorization"))
	assert.Equal(t, "application/json", h.Get("Content-Type"))
	assert.Equal(t, "test-agent", h.Get("User-Agent"))
}

func TestHandleResponse(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		body     string
		want     []byte
		wantCode int
	}{
		{"ok", http.StatusOK, `{"a":1}`, []byte(`{"a":1}`), 0},
		{"created", http.StatusCreated, `{}`, []byte(`{}`), 0},
		{"no content", http.StatusNoContent, ``, []byte{}, 0},
		{"not found", http.StatusNotFound, `{"error":"Not found"}`, nil, http.StatusNotFound},
		{"unprocessable", http.StatusUnprocessableEntity, `{"name":["has already been taken"]}`, nil, http.StatusUnprocessableEntity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := &http.Response{StatusCode: tt.code, Body: io.NopCloser(bytes.NewBufferString(tt.body))}
			got, err := HandleResponse(resp, "http://x/y")
			if tt.wantCode != 0 {
				apiErr, ok := AsAPIError(err)
				require.True(t, ok, "expected *APIError, got %T", err)
				assert.Equal(t, tt.wantCode, apiErr.StatusCode)
				assert.Equal(t, tt.wantCode, apiErr.HTTPStatus())
				assert.Equal(t, tt.body, apiErr.Body)
				assert.Equal(t, "http://x/y", apiErr.URL)
				assert.Contains(t, apiErr.Error(), tt.body)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClient_Do(t *testing.T) {
	m := fixtures.NewMAPI(t)
	m.JSON("GET /stories/132183463987532", http.StatusOK, fixtures.StoryJSON)
	m.JSON("POST /stories", http.StatusCreated, `{"story":{"id":1}}`)
	m.JSON("DELETE /stories/1", http.StatusNoContent, ``)
	c := testClient(t, m)
	ctx := context.Background()

	t.Run("get decodes response", func(t *testing.T) {
		var out struct {
			Story struct {
				ID   int64  `json:"id"`
				Name string `json:"name"`
			} `json:"story"`
		}
		require.NoError(t, c.Get(ctx, "/stories/132183463987532", nil, &out))
		assert.Equal(t, int64(132183463987532), out.Story.ID)
		assert.Equal(t, "Hello2U", out.Story.Name)

		calls := m.CallsTo("GET /stories/132183463987532")
		require.Len(t, calls, 1)
		assert.Equal(t, fixtures.TestToken, calls[0].Header.Get("Authorization"))
	})
	t.Run("post sends json body", func(t *testing.T) {
		var out map[string]any
		require.NoError(t, c.Post(ctx, "/stories", map[string]any{"story": map[string]any{"name": "x"}}, &out))
		calls := m.CallsTo("POST /stories")
		require.Len(t, calls, 1)
		assert.JSONEq(t, `{"story":{"name":"x"}}`, calls[0].Body)
		assert.Equal(t, "application/json", calls[0].Header.Get("Content-Type"))
	})
	t.Run("empty body is not an error", func(t *testing.T) {
		var out map[string]any
		require.NoError(t, c.Delete(ctx, "/stories/1", &out))
		assert.Nil(t, out)
	})
	t.Run("query is encoded", func(t *testing.T) {
		m.JSON("GET /stories", http.StatusOK, fixtures.StoriesJSON)
		q := url.Values{"page": {"2"}, "with_tag": {"a b"}}
		require.NoError(t, c.Get(ctx, "/stories", q, nil))
		calls := m.CallsTo("GET /stories")
		require.Len(t, calls, 1)
		assert.Equal(t, "2", calls[0].Query.Get("page"))
		assert.Equal(t, "a b", calls[0].Query.Get("with_tag"))
	})
	t.Run("not found is an api error", func(t *testing.T) {
		err := c.Get(ctx, "/stories/404", nil, nil)
		apiErr, ok := AsAPIError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
		assert.Contains(t, apiErr.URL, "/spaces/"+fixtures.TestSpaceID+"/stories/404")
	})
}

func TestClient_Send_status(t *testing.T) {
	m := fixtures.NewMAPI(t)
	m.JSON("GET /stories/1", http.StatusOK, `{"story":{"id":1}}`)
	c := testClient(t, m)
	resp, err := c.Send(context.Background(), Request{Method: http.MethodGet, Path: "/stories/1"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"story":{"id":1}}`, string(resp.Body))
}
