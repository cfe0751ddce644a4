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

// Package diag implements the "diag" command.
package diag

import (
	"github.com/joshuauaua/storyblok-mcp-server/cmd/storyblok-mcp/internal/golang/base"
)

// CmdDiag is the diagnostic tool.
var CmdDiag = &base.Command{
	UsageLine: "storyblok-mcp diag",
	Short:     "diagnostic tools",
	Long: `
Diag contains the tools to find out why the content does not behave as
expected.  They are not needed for the normal operation.
`,
	Commands: []*base.Command{
		CmdAccess,
		CmdContentTags,
	},
}
