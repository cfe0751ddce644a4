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

// Package story implements the "story" command.
package story

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/joshuauaua/storyblok-mcp-server/cmd/storyblok-mcp/internal/cfg"
	"github.com/joshuauaua/storyblok-mcp-server/cmd/storyblok-mcp/internal/golang/base"
)

// CmdStory is the story command.  The logic is in the subcommands.
var CmdStory = &base.Command{
	UsageLine: "storyblok-mcp story",
	Short:     "list and print stories",
	Long: `
Story commands read the stories of the space.  They do not change anything,
use the MCP server tools to edit the content.
`,
	Commands: []*base.Command{
		CmdStoryList,
		CmdStoryGet,
	},
}

var CmdStoryGet = &base.Command{
	UsageLine: "storyblok-mcp story get <id>",
	Short:     "print the story as JSON",
	Long: `
Get prints the story with the given numeric id, including its content, as
JSON.
`,
	FlagMask:    cfg.OmitConfigFlag,
	RequireAuth: true,
	Run:         runGet,
}

func runGet(ctx context.Context, cmd *base.Command, args []string) error {
	if len(args) != 1 {
		base.SetExitStatus(base.SInvalidParameters)
		return errors.New("story id must be specified")
	}
	id, err := parseID(args[0])
	if err != nil {
		base.SetExitStatus(base.SInvalidParameters)
		return err
	}
	sess, err := cfg.StoryblokSession(ctx)
	if err != nil {
		base.SetExitStatus(base.SInitializationError)
		return err
	}
	story, err := sess.GetStory(ctx, id)
	if err != nil {
		base.SetExitStatus(base.SAPIError)
		return fmt.Errorf("story %d: %w", id, err)
	}
	return base.PrintJSON(base.Stdout, story)
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid story id: %q", s)
	}
	return id, nil
}
