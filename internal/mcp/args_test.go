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

package mcp

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuauaua/storyblok-mcp-server"
)

func TestStringArg(t *testing.T) {
	tests := []struct {
		name    string
		args    map[string]any
		wantVal string
		wantOK  bool
	}{
		{"present string", map[string]any{"key": "value"}, "value", true},
		{"missing key", map[string]any{}, "", false},
		{"null value", map[string]any{"key": nil}, "", false},
		{"wrong type", map[string]any{"key": 42}, "", false},
		{"nil args", nil, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := stringArg(toolReq(tt.args), "key")
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantVal, got)
		})
	}
}

func TestIntArg(t *testing.T) {
	tests := []struct {
		name       string
		args       map[string]any
		defaultVal int
		want       int
	}{
		{"float64 value", map[string]any{"n": float64(42)}, 0, 42},
		{"int value", map[string]any{"n": 7}, 0, 7},
		{"missing key uses default", map[string]any{}, 99, 99},
		{"nil args uses default", nil, 5, 5},
		{"wrong type uses default", map[string]any{"n": "not-a-number"}, 3, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, intArg(toolReq(tt.args), "n", tt.defaultVal))
		})
	}
}

func TestBoolArg(t *testing.T) {
	tests := []struct {
		name       string
		args       map[string]any
		defaultVal bool
		want       bool
	}{
		{"true value", map[string]any{"flag": true}, false, true},
		{"false value", map[string]any{"flag": false}, true, false},
		{"missing key uses default", map[string]any{}, true, true},
		{"wrong type uses default", map[string]any{"flag": "yes"}, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, boolArg(toolReq(tt.args), "flag", tt.defaultVal))
		})
	}
}

func TestFlagArg(t *testing.T) {
	assert.True(t, flagArg(toolReq(map[string]any{"f": true}), "f"))
	assert.True(t, flagArg(toolReq(map[string]any{"f": float64(1)}), "f"))
	assert.False(t, flagArg(toolReq(map[string]any{"f": float64(0)}), "f"))
	assert.False(t, flagArg(toolReq(map[string]any{"f": "1"}), "f"))
	assert.False(t, flagArg(toolReq(nil), "f"))
}

func TestIDArg(t *testing.T) {
	tests := []struct {
		name    string
		args    map[string]any
		want    int64
		wantErr string
	}{
		{"number", map[string]any{"id": float64(132183463987532)}, 132183463987532, ""},
		{"string", map[string]any{"id": "132183463987532"}, 132183463987532, ""},
		{"string with spaces", map[string]any{"id": " 42 "}, 42, ""},
		{"json number", map[string]any{"id": json.Number("7")}, 7, ""},
		{"missing", map[string]any{}, 0, "id is required"},
		{"null", map[string]any{"id": nil}, 0, "id is required"},
		{"fraction", map[string]any{"id": 1.5}, 0, "invalid id"},
		{"not a number", map[string]any{"id": "abc"}, 0, "invalid id"},
		{"wrong type", map[string]any{"id": true}, 0, "invalid id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := idArg(toolReq(tt.args), "id")
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOptIDArg(t *testing.T) {
	got, err := optIDArg(toolReq(nil), "release_id")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = optIDArg(toolReq(map[string]any{"release_id": float64(12)}), "release_id")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(12), *got)

	_, err = optIDArg(toolReq(map[string]any{"release_id": "x"}), "release_id")
	assert.Error(t, err)
}

func TestIDsArg(t *testing.T) {
	got, err := idsArg(toolReq(map[string]any{"ids": []any{float64(1), "2", float64(3)}}), "ids")
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, got)

	got, err = idsArg(toolReq(map[string]any{"ids": []any{}}), "ids")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = idsArg(toolReq(nil), "ids")
	assert.ErrorContains(t, err, "ids is required")
	_, err = idsArg(toolReq(map[string]any{"ids": "1,2"}), "ids")
	assert.ErrorContains(t, err, "must be an array")
	_, err = idsArg(toolReq(map[string]any{"ids": []any{float64(1), "x"}}), "ids")
	assert.ErrorContains(t, err, "ids[1]")
}

func TestStringsArg(t *testing.T) {
	got, err := stringsArg(toolReq(map[string]any{"tags": []any{"AI", "Agents"}}), "tags")
	require.NoError(t, err)
	assert.Equal(t, []string{"AI", "Agents"}, got)

	_, err = stringsArg(toolReq(map[string]any{"tags": []any{"AI", 1}}), "tags")
	assert.ErrorContains(t, err, "tags[1] must be a string")
	_, err = stringsArg(toolReq(nil), "tags")
	assert.Error(t, err)
}

func TestObjectArgs(t *testing.T) {
	obj := map[string]any{"id": float64(1)}
	got, ok := objectArg(toolReq(map[string]any{"o": obj}), "o")
	assert.True(t, ok)
	assert.Equal(t, obj, got)
	_, ok = objectArg(toolReq(map[string]any{"o": "x"}), "o")
	assert.False(t, ok)

	list, err := objectsArg(toolReq(map[string]any{"l": []any{obj, obj}}), "l")
	require.NoError(t, err)
	assert.Len(t, list, 2)
	_, err = objectsArg(toolReq(map[string]any{"l": []any{obj, 1}}), "l")
	assert.ErrorContains(t, err, "l[1] must be an object")
}

func TestBindArgs(t *testing.T) {
	t.Run("story filter", func(t *testing.T) {
		var f storyblok.StoryFilter
		err := bindArgs(toolReq(map[string]any{
			"page":         float64(2),
			"with_tag":     "AI",
			"is_published": false,
			"with_parent":  float64(132183463987530),
			"filter_query": map[string]any{"component": map[string]any{"in": "application"}},
			"unknown":      "ignored",
		}), &f)
		require.NoError(t, err)
		assert.Equal(t, 2, f.Page)
		require.NotNil(t, f.WithTag)
		assert.Equal(t, "AI", *f.WithTag)
		require.NotNil(t, f.IsPublished)
		assert.False(t, *f.IsPublished)
		require.NotNil(t, f.WithParent)
		assert.Equal(t, int64(132183463987530), *f.WithParent)
		assert.JSONEq(t, `{"component":{"in":"application"}}`, string(f.FilterQuery))
		assert.Nil(t, f.Pinned)
	})
	t.Run("nil args", func(t *testing.T) {
		var f storyblok.StoryFilter
		assert.NoError(t, bindArgs(toolReq(nil), &f))
	})
	t.Run("type mismatch", func(t *testing.T) {
		var f storyblok.StoryFilter
		err := bindArgs(toolReq(map[string]any{"page": "two"}), &f)
		assert.ErrorContains(t, err, "invalid arguments")
	})
}
