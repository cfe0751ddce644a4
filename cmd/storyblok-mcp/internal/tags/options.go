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

package tags

import (
	"context"
	"fmt"

	"github.com/joshuauaua/storyblok-mcp-server"
	"github.com/joshuauaua/storyblok-mcp-server/cmd/storyblok-mcp/internal/cfg"
	"github.com/joshuauaua/storyblok-mcp-server/cmd/storyblok-mcp/internal/golang/base"
)

// Defaults: the application component and its tags field.
const (
	defComponentID = 121917339533386
	defField       = storyblok.ContentTagsField
)

var CmdTagsOptions = &base.Command{
	UsageLine: "storyblok-mcp tags options [flags]",
	Short:     "print the options of the component tags field",
	Long: `
Options prints the options of the tags field of the component: the value
stored in the content and the name shown in the editor.
`,
	PrintFlags:  true,
	FlagMask:    cfg.OmitConfigFlag,
	RequireAuth: true,
}

var CmdTagsSyncOptions = &base.Command{
	UsageLine: "storyblok-mcp tags sync-options [flags]",
	Short:     "set the tags field options from the internal tags",
	Long: `
Sync-options replaces the options of the tags field of the component with the
internal tags of the space, so that the editors can choose any of them.  The
other fields of the component schema are not changed.
`,
	PrintFlags:  true,
	FlagMask:    cfg.OmitConfigFlag,
	RequireAuth: true,
}

var optFlags struct {
	componentID int64
	field       string
	yes         bool
}

func init() {
	CmdTagsOptions.Run = runOptions
	CmdTagsSyncOptions.Run = runSyncOptions
	for _, cmd := range []*base.Command{CmdTagsOptions, CmdTagsSyncOptions} {
		cmd.Flag.Int64Var(&optFlags.componentID, "component", defComponentID, "component `id`")
		cmd.Flag.StringVar(&optFlags.field, "field", defField, "options field `name`")
	}
	CmdTagsSyncOptions.Flag.BoolVar(&optFlags.yes, "y", false, "do not ask for confirmation")
}

func runOptions(ctx context.Context, cmd *base.Command, args []string) error {
	sess, err := cfg.StoryblokSession(ctx)
	if err != nil {
		base.SetExitStatus(base.SInitializationError)
		return err
	}
	opts, err := sess.FieldOptions(ctx, optFlags.componentID, optFlags.field)
	if err != nil {
		base.SetExitStatus(base.SAPIError)
		return err
	}
	fmt.Fprintf(base.Stdout, "Options of %q: %d\n", optFlags.field, len(opts))
	for _, o := range opts {
		fmt.Fprintf(base.Stdout, "  Key: %q | Name: %q\n", fmt.Sprint(o.Value), o.Name)
	}
	return nil
}

func runSyncOptions(ctx context.Context, cmd *base.Command, args []string) error {
	msg := fmt.Sprintf("Replace the options of %q in component %d with the internal tags", optFlags.field, optFlags.componentID)
	if !confirm(optFlags.yes, msg) {
		return errCancelled
	}
	sess, err := cfg.StoryblokSession(ctx)
	if err != nil {
		base.SetExitStatus(base.SInitializationError)
		return err
	}
	res, err := sess.SyncFieldOptionsFromInternalTags(ctx, optFlags.componentID, optFlags.field)
	if err != nil {
		base.SetExitStatus(base.SAPIError)
		return err
	}
	fmt.Fprintf(base.Stdout, "%s %q now has %d options\n", green("Updated:"), res.Field, len(res.Options))
	return nil
}
