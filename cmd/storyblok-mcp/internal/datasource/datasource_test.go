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

package datasource

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuauaua/storyblok-mcp-server/cmd/storyblok-mcp/internal/clitest"
	"github.com/joshuauaua/storyblok-mcp-server/internal/fixtures"
)

func Test_runList(t *testing.T) {
	t.Run("datasources only", func(t *testing.T) {
		m := clitest.UseMAPI(t)
		out := clitest.CaptureStdout(t)
		m.JSON("GET /datasources", http.StatusOK, fixtures.DatasourcesJSON)

		require.NoError(t, runList(context.Background(), CmdDatasourceList, nil))
		assert.Contains(t, out.String(), "Found 2 datasources")
		assert.Contains(t, out.String(), "(slug: regions, id: 5002)")
		assert.Empty(t, m.CallsTo("GET /datasource_entries"))
	})
	t.Run("with entries", func(t *testing.T) {
		m := clitest.UseMAPI(t)
		out := clitest.CaptureStdout(t)
		listFlags.entries = true
		t.Cleanup(func() { listFlags.entries = false })
		m.JSON("GET /datasources", http.StatusOK, fixtures.DatasourcesJSON)
		m.JSON("GET /datasource_entries", http.StatusOK, fixtures.DatasourceEntriesJSON)

		require.NoError(t, runList(context.Background(), CmdDatasourceList, nil))
		assert.Contains(t, out.String(), "  - Red: #ff0000")
		assert.Len(t, m.CallsTo("GET /datasource_entries"), 2)
	})
	t.Run("api error", func(t *testing.T) {
		clitest.UseMAPI(t)
		clitest.CaptureStdout(t)
		assert.Error(t, runList(context.Background(), CmdDatasourceList, nil))
	})
}
