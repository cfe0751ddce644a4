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
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuauaua/storyblok-mcp-server/internal/fixtures"
)

const draftOnlyStory = `{"story":{"id":42,"name":"Draft","full_slug":"draft","published_at":null,"content":{"component":"page"}}}`

func TestSession_DebugStoryAccess(t *testing.T) {
	ctx := context.Background()
	t.Run("all not found", func(t *testing.T) {
		m := fixtures.NewMAPI(t)
		s := testSession(t, m)

		rep, err := s.DebugStoryAccess(ctx, 42)
		require.NoError(t, err)
		require.Len(t, rep.Attempts, 5)
		for _, a := range rep.Attempts {
			assert.Equal(t, http.StatusNotFound, a.Status)
			assert.Nil(t, a.ResponseData)
			assert.Equal(t, map[string]any{"error": "Not found"}, a.ErrorDetails)
		}
		assert.False(t, rep.Draft.Accessible)
		assert.False(t, rep.Draft.ContentPresent)
		assert.False(t, rep.Published.Accessible)
		assert.False(t, rep.Published.ContentPresent)
		assert.Contains(t, rep.Suggestions, "Verify the story exists and isn't deleted.")
		assert.Contains(t, rep.Issues, "All attempts returned 404 Not Found.")
		assert.Contains(t, rep.Issues, "Story not accessible in any scenario.")
		assert.Len(t, m.Calls(), 5)
	})
	t.Run("scenarios in order", func(t *testing.T) {
		m := fixtures.NewMAPI(t)
		s := testSession(t, m)

		rep, err := s.DebugStoryAccess(ctx, 42)
		require.NoError(t, err)
		want := []string{"Default (likely draft)", "Published", "Draft explicit", "Draft with content", "Published with content"}
		for i, a := range rep.Attempts {
			assert.Equal(t, want[i], a.ScenarioName)
			assert.Equal(t, "42", a.ParamsUsed["story_id"])
		}
		calls := m.Calls()
		assert.Empty(t, calls[0].Query)
		assert.Equal(t, "published", calls[1].Query.Get("version"))
		assert.Equal(t, "1", calls[4].Query.Get("with_content"))
	})
	t.Run("draft only", func(t *testing.T) {
		m := fixtures.NewMAPI(t)
		m.Handle("GET /stories/42", func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("version") == "published" {
				w.WriteHeader(http.StatusNotFound)
				io.WriteString(w, `{"error":"Not found"}`)
				return
			}
			io.WriteString(w, draftOnlyStory)
		})
		s := testSession(t, m)

		rep, err := s.DebugStoryAccess(ctx, 42)
		require.NoError(t, err)
		assert.True(t, rep.Draft.Accessible)
		assert.True(t, rep.Draft.ContentPresent)
		assert.Equal(t, "Default (likely draft)", rep.Draft.FromScenario)
		assert.False(t, rep.Published.Accessible)
		assert.Equal(t, []string{"Accessible in draft but not published. Might be unpublished."}, rep.Suggestions)
		assert.Empty(t, rep.Issues)

		require.NotNil(t, rep.Attempts[0].ResponseData)
		assert.Equal(t, "page", rep.Attempts[0].ResponseData.ContentComponent)
		assert.Equal(t, http.StatusOK, rep.Attempts[0].Status)
	})
	t.Run("published without published_at", func(t *testing.T) {
		m := fixtures.NewMAPI(t)
		m.JSON("GET /stories/42", http.StatusOK, draftOnlyStory)
		s := testSession(t, m)

		rep, err := s.DebugStoryAccess(ctx, 42)
		require.NoError(t, err)
		assert.True(t, rep.Draft.Accessible)
		assert.True(t, rep.Published.Accessible)
		assert.Equal(t, "Published", rep.Published.FromScenario)
		assert.Contains(t, rep.Issues, "Scenario 'Published': fetched as published but no published_at.")
		assert.Contains(t, rep.Issues, "Scenario 'Published with content': fetched as published but no published_at.")
		assert.Empty(t, rep.Suggestions)
	})
	t.Run("forbidden", func(t *testing.T) {
		m := fixtures.NewMAPI(t)
		m.JSON("GET /stories/42", http.StatusForbidden, `forbidden`)
		s := testSession(t, m)

		rep, err := s.DebugStoryAccess(ctx, 42)
		require.NoError(t, err)
		assert.Equal(t, "forbidden", rep.Attempts[0].ErrorDetails)
		assert.Contains(t, rep.Suggestions, "Check that your API token has proper permissions.")
		assert.Contains(t, rep.Suggestions, "Check story ID and token permissions.")
		assert.NotContains(t, rep.Suggestions, "Verify the story exists and isn't deleted.")
		// each issue is reported once
		assert.Len(t, rep.Issues, 2)
	})
	t.Run("cancelled", func(t *testing.T) {
		m := fixtures.NewMAPI(t)
		s := testSession(t, m)
		ctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := s.DebugStoryAccess(ctx, 42)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
