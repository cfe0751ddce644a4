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

package apiconfig

import (
	"context"
	"errors"
	"fmt"

	"github.com/joshuauaua/storyblok-mcp-server/cmd/storyblok-mcp/internal/cfg"
	"github.com/joshuauaua/storyblok-mcp-server/cmd/storyblok-mcp/internal/golang/base"
)

var CmdConfigCheck = &base.Command{
	UsageLine: "storyblok-mcp config check <file>",
	Short:     "validate the existing config for errors",
	Long: `
Allows to check the config for errors and invalid values.

Example:

    storyblok-mcp config check limits.toml

It will check for unknown keys, and also ensure that values are within the
allowed boundaries.
`,
	FlagMask: cfg.OmitAll,
}

func init() {
	CmdConfigCheck.Run = runConfigCheck
}

func runConfigCheck(ctx context.Context, cmd *base.Command, args []string) error {
	if len(args) == 0 || args[0] == "" {
		base.SetExitStatus(base.SInvalidParameters)
		return errors.New("config filename must be specified")
	}
	filename := args[0]
	limits, err := Load(filename)
	if err != nil {
		base.SetExitStatus(base.SUserError)
		return fmt.Errorf("config file %q not OK: %s", filename, err)
	}
	fmt.Fprintf(base.Stdout, "Config file %q: OK\n", filename)
	return writeLimits(base.Stdout, limits)
}
