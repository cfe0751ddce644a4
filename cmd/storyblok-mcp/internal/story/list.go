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

package story

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/joshuauaua/storyblok-mcp-server"
	"github.com/joshuauaua/storyblok-mcp-server/cmd/storyblok-mcp/internal/cfg"
	"github.com/joshuauaua/storyblok-mcp-server/cmd/storyblok-mcp/internal/golang/base"
)

var CmdStoryList = &base.Command{
	UsageLine: "storyblok-mcp story list [flags]",
	Short:     "list the stories",
	Long: `
List prints one page of the stories of the space: the id, the name, the full
slug and whether the story is published.  Use -json to print the stories as
returned by the API.
`,
	FlagMask:    cfg.OmitConfigFlag,
	PrintFlags:  true,
	RequireAuth: true,
}

var listFlags struct {
	page       int
	perPage    int
	startsWith string
	search     string
	withTag    string
	json       bool
}

func init() {
	CmdStoryList.Run = runList
	CmdStoryList.Flag.IntVar(&listFlags.page, "page", 1, "page `number`")
	CmdStoryList.Flag.IntVar(&listFlags.perPage, "per-page", 25, "stories per page (max 100)")
	CmdStoryList.Flag.StringVar(&listFlags.startsWith, "starts-with", "", "only stories with the full slug starting with this `prefix`")
	CmdStoryList.Flag.StringVar(&listFlags.search, "search", "", "search by name or slug")
	CmdStoryList.Flag.StringVar(&listFlags.withTag, "tag", "", "comma separated `tags`")
	CmdStoryList.Flag.BoolVar(&listFlags.json, "json", false, "print JSON")
}

func runList(ctx context.Context, cmd *base.Command, args []string) error {
	sess, err := cfg.StoryblokSession(ctx)
	if err != nil {
		base.SetExitStatus(base.SInitializationError)
		return err
	}
	list, err := sess.FetchStories(ctx, filter())
	if err != nil {
		base.SetExitStatus(base.SAPIError)
		return err
	}
	if listFlags.json {
		return base.PrintJSON(base.Stdout, list)
	}
	return printStories(base.Stdout, list)
}

func filter() storyblok.StoryFilter {
	f := storyblok.StoryFilter{
		Page:    listFlags.page,
		PerPage: listFlags.perPage,
	}
	f.StartsWith = optional(listFlags.startsWith)
	f.Search = optional(listFlags.search)
	f.WithTag = optional(listFlags.withTag)
	return f
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

var (
	published   = color.New(color.FgGreen).SprintFunc()
	unpublished = color.New(color.FgYellow).SprintFunc()
)

func printStories(w io.Writer, list *storyblok.StoryList) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tFULL SLUG\tSTATUS")
	for _, st := range list.Stories {
		status := unpublished("draft")
		if p, _ := st["published"].(bool); p {
			status = published("published")
		}
		fmt.Fprintf(tw, "%s\t%v\t%v\t%s\n", storyID(st["id"]), st["name"], st["full_slug"], status)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\npage %d, %d stories\n", list.Page, list.Total)
	return err
}

// storyID formats the decoded JSON number without the exponent.
func storyID(v any) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%.0f", f)
	}
	return fmt.Sprint(v)
}
