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

package tags

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuauaua/storyblok-mcp-server"
	"github.com/joshuauaua/storyblok-mcp-server/cmd/storyblok-mcp/internal/clitest"
	"github.com/joshuauaua/storyblok-mcp-server/internal/fixtures"
)

func Test_readTags(t *testing.T) {
	got, err := readTags(strings.NewReader("# comment\nAI\n\n  Cron Expression  \n#skip\nYAML\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"AI", "Cron Expression", "YAML"}, got)
}

func Test_targetTags(t *testing.T) {
	t.Run("built in", func(t *testing.T) {
		got, err := targetTags("")
		require.NoError(t, err)
		assert.Len(t, got, 197)
		assert.Equal(t, "Agents", got[0])
		assert.Equal(t, "Zero Allocation", got[len(got)-1])
	})
	t.Run("file", func(t *testing.T) {
		filename := filepath.Join(t.TempDir(), "tags.txt")
		require.NoError(t, os.WriteFile(filename, []byte("One\nTwo\n"), 0o644))
		got, err := targetTags(filename)
		require.NoError(t, err)
		assert.Equal(t, []string{"One", "Two"}, got)
	})
	t.Run("missing file", func(t *testing.T) {
		_, err := targetTags(filepath.Join(t.TempDir(), "nope.txt"))
		assert.Error(t, err)
	})
}

func Test_runList(t *testing.T) {
	m := clitest.UseMAPI(t)
	out := clitest.CaptureStdout(t)
	m.JSON("GET /tags", http.StatusOK, fixtures.TagsJSON)

	require.NoError(t, runList(context.Background(), CmdTagsList, nil))
	assert.Contains(t, out.String(), " - featured (1,280)\n")
	assert.Contains(t, out.String(), "3 tags\n")
}

func Test_runSync(t *testing.T) {
	oldOut := progressOut
	progressOut = io.Discard
	t.Cleanup(func() { progressOut = oldOut })
	syncFlags.yes = true
	t.Cleanup(func() { syncFlags.yes = false })

	writeTags := func(t *testing.T, tags ...string) string {
		filename := filepath.Join(t.TempDir(), "tags.txt")
		require.NoError(t, os.WriteFile(filename, []byte(strings.Join(tags, "\n")), 0o644))
		return filename
	}

	t.Run("creates the missing tags", func(t *testing.T) {
		m := clitest.UseMAPI(t)
		out := clitest.CaptureStdout(t)
		m.JSON("GET /tags", http.StatusOK, fixtures.TagsJSON)
		m.JSON("POST /tags/", http.StatusCreated, `{}`)

		err := runSync(context.Background(), CmdTagsSync, []string{writeTags(t, "AI", "Cron", "YAML")})
		require.NoError(t, err)

		var names []string
		for _, c := range m.CallsTo("POST /tags/") {
			var body struct {
				Tag struct{ Name string } `json:"tag"`
			}
			require.NoError(t, json.Unmarshal([]byte(c.Body), &body))
			names = append(names, body.Tag.Name)
		}
		assert.Equal(t, []string{"Cron", "YAML"}, names)
		assert.Contains(t, out.String(), "Missing tags:  2")
	})
	t.Run("failures are reported", func(t *testing.T) {
		m := clitest.UseMAPI(t)
		clitest.CaptureStdout(t)
		m.JSON("GET /tags", http.StatusOK, `{"tags":[]}`)
		m.JSON("POST /tags/", http.StatusInternalServerError, `{"error":"boom"}`)

		err := runSync(context.Background(), CmdTagsSync, []string{writeTags(t, "Bad")})
		assert.ErrorContains(t, err, "1 tags were not created")
	})
	t.Run("empty file", func(t *testing.T) {
		err := runSync(context.Background(), CmdTagsSync, []string{writeTags(t, "# nothing")})
		assert.Error(t, err)
	})
}

func Test_printSyncResult(t *testing.T) {
	var buf bytes.Buffer
	printSyncResult(&buf, &storyblok.TagSyncResult{
		Existing:      1234,
		Requested:     []string{"A", "B", "C"},
		Created:       []string{"A"},
		AlreadyExists: []string{"B"},
		Failed:        []storyblok.TagFailure{{Name: "C", Error: "API error 500"}},
	})
	s := buf.String()
	assert.Contains(t, s, "Existing tags: 1,234")
	assert.Contains(t, s, "Missing tags:  3")
	assert.Contains(t, s, "  C: API error 500")
}

func Test_runOptions(t *testing.T) {
	m := clitest.UseMAPI(t)
	out := clitest.CaptureStdout(t)
	m.JSON("GET /components/121917339533386", http.StatusOK, fixtures.ComponentJSON)

	require.NoError(t, runOptions(context.Background(), CmdTagsOptions, nil))
	assert.Contains(t, out.String(), `Options of "Tags": 2`)
	assert.Contains(t, out.String(), `Key: "Analytics" | Name: "Analytics"`)
}

func Test_runSyncOptions(t *testing.T) {
	m := clitest.UseMAPI(t)
	out := clitest.CaptureStdout(t)
	optFlags.yes = true
	t.Cleanup(func() { optFlags.yes = false })
	m.JSON("GET /internal_tags", http.StatusOK, fixtures.InternalTagsJSON)
	m.JSON("GET /components/121917339533386", http.StatusOK, fixtures.ComponentJSON)
	m.JSON("PUT /components/121917339533386", http.StatusOK, fixtures.ComponentJSON)

	require.NoError(t, runSyncOptions(context.Background(), CmdTagsSyncOptions, nil))
	assert.Contains(t, out.String(), `"Tags" now has 3 options`)
	assert.Len(t, m.CallsTo("PUT /components/121917339533386"), 1)
}

func Test_confirm(t *testing.T) {
	assert.True(t, confirm(true, "anything"))
}
