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

package storyblok

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuauaua/storyblok-mcp-server/internal/fixtures"
)

// checkBulk verifies the invariants of every bulk result.
func checkBulk(t *testing.T, res *BulkResult, n int) {
	t.Helper()
	require.NotNil(t, res)
	assert.Equal(t, n, res.TotalProcessed)
	assert.Equal(t, res.TotalProcessed, res.SuccessfulOperations+res.FailedOperations)
	assert.Len(t, res.Results, n)
}

func TestSession_BulkPublish(t *testing.T) {
	m := fixtures.NewMAPI(t)
	m.JSON("GET /stories/1/publish", http.StatusOK, `{"story":{"id":1}}`)
	m.JSON("GET /stories/3/publish", http.StatusOK, `{"story":{"id":3}}`)
	s := testSession(t, m)

	res, err := s.BulkPublish(context.Background(), []int64{1, 2, 3})
	require.NoError(t, err)
	checkBulk(t, res, 3)
	assert.Equal(t, 2, res.SuccessfulOperations)
	assert.Equal(t, 1, res.FailedOperations)

	assert.Equal(t, []any{int64(1), int64(2), int64(3)}, []any{res.Results[0].ID, res.Results[1].ID, res.Results[2].ID}, "input order")
	assert.Equal(t, StatusSuccess, res.Results[0].Status)
	assert.NotNil(t, res.Results[0].Data)
	assert.Equal(t, StatusError, res.Results[1].Status)
	assert.Contains(t, res.Results[1].Error, "404")
	assert.Equal(t, StatusSuccess, res.Results[2].Status)
}

func TestSession_BulkDelete(t *testing.T) {
	m := fixtures.NewMAPI(t)
	m.JSON("DELETE /stories/1", http.StatusOK, `{}`)
	m.JSON("DELETE /stories/2", http.StatusForbidden, `{"error":"Forbidden"}`)
	s := testSession(t, m)

	res, err := s.BulkDelete(context.Background(), []int64{1, 2})
	require.NoError(t, err)
	checkBulk(t, res, 2)
	assert.Equal(t, StatusSuccess, res.Results[0].Status)
	assert.Nil(t, res.Results[0].Data)
	assert.Equal(t, StatusError, res.Results[1].Status)
	assert.Contains(t, res.Results[1].Error, "Forbidden")
}

func TestSession_BulkUpdate(t *testing.T) {
	m := fixtures.NewMAPI(t)
	m.JSON("PUT /stories/1", http.StatusOK, `{"story":{"id":1}}`)
	m.JSON("GET /stories/1/publish", http.StatusOK, `{"story":{"id":1}}`)
	m.JSON("PUT /stories/2", http.StatusOK, `{"story":{"id":2}}`)
	m.JSON("GET /stories/2/publish", http.StatusInternalServerError, `{"error":"boom"}`)
	m.JSON("PUT /stories/3", http.StatusUnprocessableEntity, `{"slug":["is invalid"]}`)
	s := testSession(t, m)

	input := []map[string]any{
		{"id": float64(1), "name": "One", "publish": true},
		{"id": float64(2), "name": "Two", "publish": true, "slug": nil},
		{"id": float64(3), "slug": "bad slug"},
		{"name": "no id"},
		{"id": float64(4), "name": "Four", "publish": false},
	}
	m.JSON("PUT /stories/4", http.StatusOK, `{"story":{"id":4}}`)

	res, err := s.BulkUpdate(context.Background(), input)
	require.NoError(t, err)
	checkBulk(t, res, len(input))
	assert.Equal(t, 3, res.SuccessfulOperations)
	assert.Equal(t, 2, res.FailedOperations)

	r := res.Results
	assert.Equal(t, StatusSuccess, r[0].Status)
	require.NotNil(t, r[0].Published)
	assert.True(t, *r[0].Published)

	// publish failure does not fail the item
	assert.Equal(t, StatusSuccess, r[1].Status)
	require.NotNil(t, r[1].Published)
	assert.False(t, *r[1].Published)
	assert.Empty(t, r[1].Error)

	assert.Equal(t, StatusError, r[2].Status)
	assert.Equal(t, StatusError, r[3].Status)
	assert.Equal(t, errNoStoryID.Error(), r[3].Error)

	require.NotNil(t, r[4].Published)
	assert.False(t, *r[4].Published)
	assert.Empty(t, m.CallsTo("GET /stories/4/publish"), "must not publish")

	// publish flag and null values are not sent, the id is.
	assert.JSONEq(t, `{"story":{"id":2,"name":"Two"}}`, m.CallsTo("PUT /stories/2")[0].Body)
	// input is not modified
	assert.Contains(t, input[0], "publish")
}

func TestSession_BulkCreate(t *testing.T) {
	m := fixtures.NewMAPI(t)
	m.Reply("POST /stories",
		fixtures.Reply{Code: http.StatusCreated, Body: `{"story":{"id":132183463987600,"slug":"first"}}`},
		fixtures.Reply{Code: http.StatusUnprocessableEntity, Body: `{"slug":["has already been taken"]}`},
	)
	s := testSession(t, m)

	input := []map[string]any{
		{"name": "First", "slug": "first", "content": map[string]any{"component": "page"}},
		{"name": "Second", "slug": "first"},
	}
	res, err := s.BulkCreate(context.Background(), input)
	require.NoError(t, err)
	checkBulk(t, res, 2)

	assert.Equal(t, StatusSuccess, res.Results[0].Status)
	assert.Equal(t, int64(132183463987600), res.Results[0].ID)
	assert.Equal(t, "first", res.Results[0].Slug)
	assert.Equal(t, input[0], res.Results[0].Input)

	assert.Equal(t, StatusError, res.Results[1].Status)
	assert.Nil(t, res.Results[1].ID)
	assert.Equal(t, "first", res.Results[1].Slug)
	assert.Contains(t, res.Results[1].Error, "has already been taken")

	calls := m.CallsTo("POST /stories")
	require.Len(t, calls, 2)
	assert.JSONEq(t, `{"story":{"name":"Second","slug":"first"}}`, calls[1].Body)
}

func TestSession_bulk_cancelled(t *testing.T) {
	m := fixtures.NewMAPI(t)
	s := testSession(t, m)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := s.BulkDelete(ctx, []int64{1, 2, 3})
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, res)
	assert.Equal(t, 0, res.TotalProcessed)
	assert.Empty(t, m.Calls())
}

func Test_truthy(t *testing.T) {
	tests := []struct {
		v    any
		want bool
	}{
		{nil, false},
		{true, true},
		{false, false},
		{float64(1), true},
		{float64(0), false},
		{"true", true},
		{"0", false},
		{"False", false},
		{"", false},
		{map[string]any{}, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, truthy(tt.v), "truthy(%#v)", tt.v)
	}
}
