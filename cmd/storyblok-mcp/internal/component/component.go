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

// Package component implements the "component" command.
package component

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"text/tabwriter"

	"github.com/joshuauaua/storyblok-mcp-server"
	"github.com/joshuauaua/storyblok-mcp-server/cmd/storyblok-mcp/internal/cfg"
	"github.com/joshuauaua/storyblok-mcp-server/cmd/storyblok-mcp/internal/golang/base"
)

// CmdComponent is the component command.  The logic is in the subcommands.
var CmdComponent = &base.Command{
	UsageLine: "storyblok-mcp component",
	Short:     "inspect the component schemas",
	Long: `
Component commands print the content block types of the space and their
schemas, and check the content against them.
`,
	Commands: []*base.Command{
		CmdComponentList,
		CmdComponentGet,
		CmdComponentValidate,
	},
}

var CmdComponentList = &base.Command{
	UsageLine:   "storyblok-mcp component list",
	Short:       "list the components",
	Long:        "\nList prints the components of the space with the number of schema fields.\n",
	FlagMask:    cfg.OmitConfigFlag,
	RequireAuth: true,
	Run:         runList,
}

var CmdComponentGet = &base.Command{
	UsageLine: "storyblok-mcp component get [flags] <name or id>",
	Short:     "print the component schema",
	Long: `
Get prints the schema fields of the component, in the order they appear in
the editor.  With -json, it prints the component definition as returned by
the API, including the field properties that are not listed otherwise.
`,
	FlagMask:    cfg.OmitConfigFlag,
	PrintFlags:  true,
	RequireAuth: true,
}

var getJSON bool

func init() {
	CmdComponentGet.Run = runGet
	CmdComponentGet.Flag.BoolVar(&getJSON, "json", false, "print the raw component JSON")
}

func runList(ctx context.Context, cmd *base.Command, args []string) error {
	sess, err := cfg.StoryblokSession(ctx)
	if err != nil {
		base.SetExitStatus(base.SInitializationError)
		return err
	}
	comps, err := sess.Components(ctx)
	if err != nil {
		base.SetExitStatus(base.SAPIError)
		return err
	}
	tw := tabwriter.NewWriter(base.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tDISPLAY NAME\tROOT\tFIELDS")
	for _, c := range comps {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%t\t%d\n", c.ID, c.Name, c.DisplayName, c.IsRoot, len(c.Schema))
	}
	return tw.Flush()
}

func runGet(ctx context.Context, cmd *base.Command, args []string) error {
	if len(args) != 1 {
		base.SetExitStatus(base.SInvalidParameters)
		return errors.New("component name or id must be specified")
	}
	sess, err := cfg.StoryblokSession(ctx)
	if err != nil {
		base.SetExitStatus(base.SInitializationError)
		return err
	}
	if id, err := strconv.ParseInt(args[0], 10, 64); err == nil {
		comp, err := sess.Component(ctx, id)
		if err != nil {
			base.SetExitStatus(base.SAPIError)
			return err
		}
		return base.PrintJSON(base.Stdout, comp)
	}

	comp, err := sess.ComponentByName(ctx, args[0])
	if err != nil {
		if errors.Is(err, storyblok.ErrComponentNotFound) {
			base.SetExitStatus(base.SUserError)
		} else {
			base.SetExitStatus(base.SAPIError)
		}
		return err
	}
	if getJSON {
		return base.PrintJSON(base.Stdout, comp)
	}
	return printSchema(base.Stdout, comp)
}

func printSchema(w io.Writer, comp *storyblok.Component) error {
	fmt.Fprintf(w, "%s (%d)\n\n", comp.Name, comp.ID)
	names := make([]string, 0, len(comp.Schema))
	for name := range comp.Schema {
		names = append(names, name)
	}
	slices.SortFunc(names, func(a, b string) int {
		return cmp.Or(cmp.Compare(comp.Schema[a].Pos, comp.Schema[b].Pos), cmp.Compare(a, b))
	})

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "FIELD\tTYPE\tREQUIRED\tOPTIONS")
	for _, name := range names {
		f := comp.Schema[name]
		opts := "-"
		if len(f.Options) > 0 || f.Source != "" {
			opts = fmt.Sprintf("%d (%s)", len(f.Options), cmp.Or(f.Source, "self"))
		}
		fmt.Fprintf(tw, "%s\t%s\t%t\t%s\n", name, f.Type, f.Required, opts)
	}
	return tw.Flush()
}
