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

	"github.com/fatih/color"

	"github.com/joshuauaua/storyblok-mcp-server"
	"github.com/joshuauaua/storyblok-mcp-server/cmd/storyblok-mcp/internal/cfg"
	"github.com/joshuauaua/storyblok-mcp-server/cmd/storyblok-mcp/internal/golang/base"
	"github.com/joshuauaua/storyblok-mcp-server/internal/primitive"
)

var CmdContentTags = &base.Command{
	UsageLine: "storyblok-mcp diag content-tags [flags] [<tag> ...]",
	Short:     "check that the content tags of a story can be saved",
	Long: `
Content-tags replaces the Tags field of the story content with the given
tags (or "mcp-test-tag", if none given), saves the story and reads it back
to check that the tags were persisted.

The story is selected with -story, or found by its name with -name.

This command CHANGES the story content, use it on a test story.
`,
	PrintFlags:  true,
	FlagMask:    cfg.OmitConfigFlag,
	RequireAuth: true,
}

var ctFlags struct {
	storyID int64
	name    string
	yes     bool
}

const defTestTag = "mcp-test-tag"

func init() {
	CmdContentTags.Run = runContentTags
	CmdContentTags.Flag.Int64Var(&ctFlags.storyID, "story", 0, "story `id`")
	CmdContentTags.Flag.StringVar(&ctFlags.name, "name", "App Manager", "story `name`, used if -story is not set")
	CmdContentTags.Flag.BoolVar(&ctFlags.yes, "y", false, "do not ask for confirmation")
}

func runContentTags(ctx context.Context, cmd *base.Command, args []string) error {
	tags := args
	if len(tags) == 0 {
		tags = []string{defTestTag}
	}
	sess, err := cfg.StoryblokSession(ctx)
	if err != nil {
		base.SetExitStatus(base.SInitializationError)
		return err
	}

	id := ctFlags.storyID
	if id == 0 {
		ref, err := sess.FindStory(ctx, ctFlags.name)
		if err != nil {
			base.SetExitStatus(base.SAPIError)
			return err
		}
		if ref.Name != ctFlags.name {
			cfg.Log.WarnContext(ctx, "story not found by name, using the first story", "name", ctFlags.name, "story", ref.Name)
		}
		id = ref.ID
	}
	if !ctFlags.yes && !base.YesNo(fmt.Sprintf("Replace the content tags of story %d with %v", id, tags)) {
		return errors.New("cancelled")
	}

	res, err := sess.SetContentTags(ctx, id, tags)
	if err != nil {
		base.SetExitStatus(base.SAPIError)
		return err
	}
	printCheck(res)
	if !res.Verified {
		base.SetExitStatus(base.SApplicationError)
		return errors.New("tags were not persisted")
	}
	return nil
}

func printCheck(res *storyblok.ContentTagsCheck) {
	w := base.Stdout
	fmt.Fprintf(w, "Story:     %s (%d)\n", res.StoryName, res.StoryID)
	fmt.Fprintf(w, "Before:    %v\n", primitive.IfTrue[any](res.Before == nil, "(not set)", res.Before))
	fmt.Fprintf(w, "Requested: %v\n", res.Requested)
	fmt.Fprintf(w, "After:     %v\n", primitive.IfTrue[any](res.After == nil, "(not set)", res.After))
	fmt.Fprintln(w, primitive.IfTrue(res.Verified, color.GreenString("Verified"), color.RedString("NOT persisted")))
}
