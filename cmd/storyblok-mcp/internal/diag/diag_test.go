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

package diag

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuauaua/storyblok-mcp-server/cmd/storyblok-mcp/internal/clitest"
	"github.com/joshuauaua/storyblok-mcp-server/internal/fixtures"
)

func Test_runAccess(t *testing.T) {
	t.Run("accessible", func(t *testing.T) {
		m := clitest.UseMAPI(t)
		out := clitest.CaptureStdout(t)
		m.JSON("GET /stories/132183463987532", http.StatusOK, fixtures.StoryJSON)

		require.NoError(t, runAccess(context.Background(), CmdAccess, []string{"132183463987532"}))
		assert.Contains(t, out.String(), "Story 132183463987532")
		assert.Contains(t, out.String(), "Draft:     accessible (")
	})
	t.Run("deleted story", func(t *testing.T) {
		clitest.UseMAPI(t)
		out := clitest.CaptureStdout(t)

		require.NoError(t, runAccess(context.Background(), CmdAccess, []string{"42"}))
		assert.Contains(t, out.String(), "Draft:     not accessible")
		assert.Contains(t, out.String(), "Suggestions:")
	})
	t.Run("invalid id", func(t *testing.T) {
		assert.Error(t, runAccess(context.Background(), CmdAccess, []string{"x"}))
	})
}

func Test_runContentTags(t *testing.T) {
	const route = "GET /stories/132183463987532"
	ctFlags.yes = true
	t.Cleanup(func() { ctFlags.yes = false })

	t.Run("found by name and verified", func(t *testing.T) {
		m := clitest.UseMAPI(t)
		out := clitest.CaptureStdout(t)
		m.JSON("GET /stories", http.StatusOK, fixtures.StoriesJSON)
		m.Reply(route,
			fixtures.Reply{Code: http.StatusOK, Body: fixtures.StoryJSON},
			fixtures.Reply{Code: http.StatusOK, Body: `{"story":{"id":132183463987532,"content":{"Tags":["mcp-test-tag"]}}}`},
		)
		m.JSON("PUT /stories/132183463987532", http.StatusOK, `{}`)
		ctFlags.name = "Hello2U"
		t.Cleanup(func() { ctFlags.name = "App Manager" })

		require.NoError(t, runContentTags(context.Background(), CmdContentTags, nil))
		assert.Contains(t, out.String(), "Story:     Hello2U (132183463987532)")
		assert.Contains(t, out.String(), "Verified")
	})
	t.Run("not persisted", func(t *testing.T) {
		m := clitest.UseMAPI(t)
		clitest.CaptureStdout(t)
		m.JSON(route, http.StatusOK, fixtures.StoryJSON)
		m.JSON("PUT /stories/132183463987532", http.StatusOK, `{}`)
		ctFlags.storyID = 132183463987532
		t.Cleanup(func() { ctFlags.storyID = 0 })

		err := runContentTags(context.Background(), CmdContentTags, []string{"Cron"})
		assert.ErrorContains(t, err, "not persisted")
		assert.Empty(t, m.CallsTo("GET /stories"))
	})
}
