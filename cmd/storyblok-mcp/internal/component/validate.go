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

package component

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/joshuauaua/storyblok-mcp-server/cmd/storyblok-mcp/internal/cfg"
	"github.com/joshuauaua/storyblok-mcp-server/cmd/storyblok-mcp/internal/golang/base"
)

var CmdComponentValidate = &base.Command{
	UsageLine: "storyblok-mcp component validate <component> <content.json>",
	Short:     "check the story content against the component schema",
	Long: `
Validate reads the story content object from the JSON file and checks it
against the schema of the component: the required fields must be present,
and the content must not contain the fields the schema does not declare.

The exit status is non-zero if the content is not valid.
`,
	FlagMask:    cfg.OmitConfigFlag,
	RequireAuth: true,
	Run:         runValidate,
}

func runValidate(ctx context.Context, cmd *base.Command, args []string) error {
	if len(args) != 2 {
		base.SetExitStatus(base.SInvalidParameters)
		return errors.New("component name and content file must be specified")
	}
	data, err := os.ReadFile(args[1])
	if err != nil {
		base.SetExitStatus(base.SUserError)
		return err
	}
	var content map[string]any
	if err := json.Unmarshal(data, &content); err != nil {
		base.SetExitStatus(base.SUserError)
		return fmt.Errorf("%s: %w", args[1], err)
	}

	sess, err := cfg.StoryblokSession(ctx)
	if err != nil {
		base.SetExitStatus(base.SInitializationError)
		return err
	}
	res, err := sess.ValidateStoryContent(ctx, args[0], nil, content)
	if err != nil {
		base.SetExitStatus(base.SAPIError)
		return err
	}
	if res.IsValid {
		fmt.Fprintln(base.Stdout, color.GreenString("OK:"), "content is valid for", res.ValidatedComponentName)
		return nil
	}
	for _, e := range res.Errors {
		fmt.Fprintf(base.Stdout, "%s %s: %s\n", color.RedString(e.Type+":"), e.Field, e.Message)
	}
	base.SetExitStatus(base.SUserError)
	return fmt.Errorf("content is not valid for %s", res.ValidatedComponentName)
}
