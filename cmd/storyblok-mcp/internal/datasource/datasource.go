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

// Package datasource implements the "datasource" command.
package datasource

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/joshuauaua/storyblok-mcp-server"
	"github.com/joshuauaua/storyblok-mcp-server/cmd/storyblok-mcp/internal/cfg"
	"github.com/joshuauaua/storyblok-mcp-server/cmd/storyblok-mcp/internal/golang/base"
)

// CmdDatasource is the datasource command.
var CmdDatasource = &base.Command{
	UsageLine: "storyblok-mcp datasource",
	Short:     "inspect the datasources",
	Long: `
Datasource commands print the key-value lists of the space that are used as
the options of the content fields.
`,
	Commands: []*base.Command{
		CmdDatasourceList,
	},
}

var CmdDatasourceList = &base.Command{
	UsageLine: "storyblok-mcp datasource list [flags]",
	Short:     "list the datasources and their entries",
	Long: `
List prints the datasources of the space.  With -entries, the entries of
each datasource are fetched and printed too, one datasource at a time.
`,
	FlagMask:    cfg.OmitConfigFlag,
	PrintFlags:  true,
	RequireAuth: true,
}

var listFlags struct {
	entries bool
	json    bool
}

func init() {
	CmdDatasourceList.Run = runList
	CmdDatasourceList.Flag.BoolVar(&listFlags.entries, "entries", false, "fetch the entries of each datasource")
	CmdDatasourceList.Flag.BoolVar(&listFlags.json, "json", false, "print JSON")
}

func runList(ctx context.Context, cmd *base.Command, args []string) error {
	sess, err := cfg.StoryblokSession(ctx)
	if err != nil {
		base.SetExitStatus(base.SInitializationError)
		return err
	}

	var dss []storyblok.DatasourceWithEntries
	if listFlags.entries {
		dss, err = sess.InspectDatasources(ctx)
	} else {
		var plain []storyblok.Datasource
		plain, err = sess.Datasources(ctx)
		for _, ds := range plain {
			dss = append(dss, storyblok.DatasourceWithEntries{Datasource: ds})
		}
	}
	if err != nil {
		base.SetExitStatus(base.SAPIError)
		return err
	}
	if listFlags.json {
		return base.PrintJSON(base.Stdout, dss)
	}
	printDatasources(base.Stdout, dss, listFlags.entries)
	return nil
}

func printDatasources(w io.Writer, dss []storyblok.DatasourceWithEntries, entries bool) {
	fmt.Fprintf(w, "Found %d datasources\n", len(dss))
	for _, ds := range dss {
		fmt.Fprintf(w, "\n%s (slug: %s, id: %d)\n", color.New(color.Bold).Sprint(ds.Name), ds.Slug, ds.ID)
		if !entries {
			continue
		}
		if ds.Error != "" {
			fmt.Fprintf(w, "  %s %s\n", color.RedString("error:"), ds.Error)
			continue
		}
		for _, e := range ds.Entries {
			fmt.Fprintf(w, "  - %s: %s\n", e.Name, e.Value)
		}
	}
}
