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

// Package tags implements the "tags" command.
package tags

import (
	"bufio"
	"context"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/joshuauaua/storyblok-mcp-server/cmd/storyblok-mcp/internal/cfg"
	"github.com/joshuauaua/storyblok-mcp-server/cmd/storyblok-mcp/internal/golang/base"
)

//go:embed assets/tags.txt
var defaultTags string

// CmdTags is the tags command.  The logic is in the subcommands.
var CmdTags = &base.Command{
	UsageLine: "storyblok-mcp tags",
	Short:     "list and sync the story tags",
	Long: `
Tags commands maintain the tags of the space and the options of the Tags
field of the application component.
`,
	Commands: []*base.Command{
		CmdTagsList,
		CmdTagsSync,
		CmdTagsOptions,
		CmdTagsSyncOptions,
	},
}

var CmdTagsList = &base.Command{
	UsageLine:   "storyblok-mcp tags list",
	Short:       "list the tags with the number of tagged stories",
	Long:        "\nList prints the tags of the space and the number of stories tagged with each.\n",
	FlagMask:    cfg.OmitConfigFlag,
	RequireAuth: true,
	Run:         runList,
}

func runList(ctx context.Context, cmd *base.Command, args []string) error {
	sess, err := cfg.StoryblokSession(ctx)
	if err != nil {
		base.SetExitStatus(base.SInitializationError)
		return err
	}
	tags, err := sess.Tags(ctx)
	if err != nil {
		base.SetExitStatus(base.SAPIError)
		return err
	}
	for _, t := range tags {
		fmt.Fprintf(base.Stdout, " - %s (%s)\n", t.Name, humanize.Comma(int64(t.TaggingsCount)))
	}
	fmt.Fprintf(base.Stdout, "%s tags\n", humanize.Comma(int64(len(tags))))
	return nil
}

// readTags reads the tag names from r, one per line.  Empty lines and the
// lines starting with # are skipped.
func readTags(r io.Reader) ([]string, error) {
	var tags []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		tags = append(tags, line)
	}
	return tags, sc.Err()
}

// targetTags returns the tags from the file, or the built in list if
// filename is empty.
func targetTags(filename string) ([]string, error) {
	if filename == "" {
		return readTags(strings.NewReader(defaultTags))
	}
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readTags(f)
}
