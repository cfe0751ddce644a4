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
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	"github.com/joshuauaua/storyblok-mcp-server"
	"github.com/joshuauaua/storyblok-mcp-server/cmd/storyblok-mcp/internal/cfg"
	"github.com/joshuauaua/storyblok-mcp-server/cmd/storyblok-mcp/internal/golang/base"
	"github.com/joshuauaua/storyblok-mcp-server/internal/osext"
)

var CmdTagsSync = &base.Command{
	UsageLine: "storyblok-mcp tags sync [flags] [<file>]",
	Short:     "create the missing tags",
	Long: `
Sync creates the tags that are missing in the space.  The tags are read from
the file, one per line, or, if no file is given, the built in list of the
application tags is used.

Tags are created one at a time, paced to stay within the API rate limit,
and retried if the API responds with "429 Too Many Requests".  The pacing
and retries are configured with -api-config.
`,
	PrintFlags:  true,
	RequireAuth: true,
}

var syncFlags struct {
	yes bool
}

// progressOut is where the progress bar is drawn.
var progressOut io.Writer = os.Stderr

func init() {
	CmdTagsSync.Run = runSync
	CmdTagsSync.Flag.BoolVar(&syncFlags.yes, "y", false, "do not ask for confirmation")
}

func runSync(ctx context.Context, cmd *base.Command, args []string) error {
	var filename string
	if len(args) > 0 {
		filename = args[0]
	}
	target, err := targetTags(filename)
	if err != nil {
		base.SetExitStatus(base.SUserError)
		return err
	}
	if len(target) == 0 {
		base.SetExitStatus(base.SUserError)
		return errors.New("no tags to sync")
	}
	if !confirm(syncFlags.yes, fmt.Sprintf("Create the missing tags out of %d", len(target))) {
		return errCancelled
	}

	sess, err := cfg.StoryblokSession(ctx)
	if err != nil {
		base.SetExitStatus(base.SInitializationError)
		return err
	}

	var bar *progressbar.ProgressBar
	res, err := sess.SyncTags(ctx, target, func(n, total int, name string, st storyblok.TagStatus) {
		if bar == nil {
			bar = newBar(ctx, total)
		}
		bar.Describe(name)
		_ = bar.Add(1)
		if st == storyblok.TagFailed {
			cfg.Log.WarnContext(ctx, "tag not created", "tag", name)
		}
	})
	if bar != nil {
		_ = bar.Finish()
	}
	if res != nil {
		printSyncResult(base.Stdout, res)
	}
	if err != nil {
		base.SetExitStatus(base.SAPIError)
		return err
	}
	if len(res.Failed) > 0 {
		base.SetExitStatus(base.SAPIError)
		return fmt.Errorf("%d tags were not created", len(res.Failed))
	}
	return nil
}

var errCancelled = errors.New("cancelled")

// confirm asks the user, unless yes is set.  It refuses if the terminal is
// not interactive.
func confirm(yes bool, message string) bool {
	if yes {
		return true
	}
	if !osext.IsInteractive() {
		base.SetExitStatus(base.SUserError)
		fmt.Fprintln(os.Stderr, "not running in the terminal, use -y to confirm")
		return false
	}
	return base.YesNo(message)
}

func newBar(ctx context.Context, total int) *progressbar.ProgressBar {
	if cfg.Log.Enabled(ctx, slog.LevelDebug) {
		return progressbar.DefaultSilent(int64(total))
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(progressOut),
		progressbar.OptionSetDescription("tags"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

var (
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
)

func printSyncResult(w io.Writer, res *storyblok.TagSyncResult) {
	fmt.Fprintf(w, "Existing tags: %s\n", humanize.Comma(int64(res.Existing)))
	fmt.Fprintf(w, "Missing tags:  %d\n", len(res.Requested))
	fmt.Fprintf(w, "%s %d\n", green("Created:      "), len(res.Created))
	if len(res.AlreadyExists) > 0 {
		fmt.Fprintf(w, "%s %d\n", yellow("Existed:      "), len(res.AlreadyExists))
	}
	if len(res.Failed) > 0 {
		fmt.Fprintf(w, "%s %d\n", red("Failed:       "), len(res.Failed))
		for _, f := range res.Failed {
			fmt.Fprintf(w, "  %s: %s\n", f.Name, f.Error)
		}
	}
}
