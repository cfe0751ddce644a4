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
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"

	"github.com/joshuauaua/storyblok-mcp-server"
	"github.com/joshuauaua/storyblok-mcp-server/cmd/storyblok-mcp/internal/cfg"
	"github.com/joshuauaua/storyblok-mcp-server/cmd/storyblok-mcp/internal/golang/base"
)

var CmdAccess = &base.Command{
	UsageLine: "storyblok-mcp diag access [flags] <story id>",
	Short:     "find out why the story is not accessible",
	Long: `
Access requests the story as a draft and as published, with and without the
content, and reports which of the requests succeeded, the detected issues
and suggestions.  Nothing is changed.
`,
	FlagMask:    cfg.OmitConfigFlag,
	PrintFlags:  true,
	RequireAuth: true,
}

var accessJSON bool

func init() {
	CmdAccess.Run = runAccess
	CmdAccess.Flag.BoolVar(&accessJSON, "json", false, "print the full report as JSON")
}

func runAccess(ctx context.Context, cmd *base.Command, args []string) error {
	if len(args) != 1 {
		base.SetExitStatus(base.SInvalidParameters)
		return errors.New("story id must be specified")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		base.SetExitStatus(base.SInvalidParameters)
		return fmt.Errorf("invalid story id: %q", args[0])
	}
	sess, err := cfg.StoryblokSession(ctx)
	if err != nil {
		base.SetExitStatus(base.SInitializationError)
		return err
	}
	rep, err := sess.DebugStoryAccess(ctx, id)
	if err != nil {
		return err
	}
	if accessJSON {
		return base.PrintJSON(base.Stdout, rep)
	}
	printReport(base.Stdout, rep)
	return nil
}

func printReport(w io.Writer, rep *storyblok.AccessReport) {
	fmt.Fprintf(w, "Story %d\n\n", rep.StoryID)
	for _, a := range rep.Attempts {
		status := color.GreenString("%d", a.Status)
		if a.Status != 200 {
			status = color.RedString("%d", a.Status)
		}
		fmt.Fprintf(w, "  %-24s %s\n", a.ScenarioName, status)
	}
	fmt.Fprintf(w, "\nDraft:     %s\n", accessible(rep.Draft))
	fmt.Fprintf(w, "Published: %s\n", accessible(rep.Published))
	if len(rep.Issues) > 0 {
		fmt.Fprintln(w, "\nIssues:")
		for _, s := range rep.Issues {
			fmt.Fprintln(w, "  -", s)
		}
	}
	if len(rep.Suggestions) > 0 {
		fmt.Fprintln(w, "\nSuggestions:")
		for _, s := range rep.Suggestions {
			fmt.Fprintln(w, "  -", s)
		}
	}
}

func accessible(d storyblok.AccessDetails) string {
	switch {
	case !d.Accessible:
		return color.RedString("not accessible")
	case !d.ContentPresent:
		return color.YellowString("accessible without content (%s)", d.FromScenario)
	default:
		return color.GreenString("accessible (%s)", d.FromScenario)
	}
}
