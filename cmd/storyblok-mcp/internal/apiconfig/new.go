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

package apiconfig

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joshuauaua/storyblok-mcp-server/cmd/storyblok-mcp/internal/cfg"
	"github.com/joshuauaua/storyblok-mcp-server/cmd/storyblok-mcp/internal/golang/base"
	"github.com/joshuauaua/storyblok-mcp-server/internal/network"
)

var CmdConfigNew = &base.Command{
	UsageLine: "storyblok-mcp config new [flags] <file>",
	Short:     "creates a new API config with the default values",
	Long: `
Creates a new API configuration file containing default values. You will need
to specify the filename, for example:

    storyblok-mcp config new limits.toml

If the extension is omitted, ".toml" is automatically appended to the filename.
`,
	FlagMask:   cfg.OmitAll,
	PrintFlags: true,
}

var fNewOverride = CmdConfigNew.Flag.Bool("y", false, "confirm the overwrite of the existing config")

func init() {
	CmdConfigNew.Run = runConfigNew
}

func runConfigNew(ctx context.Context, cmd *base.Command, args []string) error {
	if len(args) == 0 {
		base.SetExitStatus(base.SInvalidParameters)
		return errors.New("config file name must be specified")
	}

	filename := maybeFixExt(args[0])

	if !shouldOverwrite(filename, *fNewOverride) {
		base.SetExitStatus(base.SUserError)
		return fmt.Errorf("file or directory exists: %q, use -y flag to overwrite (will not overwrite directory)", filename)
	}

	if err := Save(filename, network.DefLimits); err != nil {
		base.SetExitStatus(base.SApplicationError)
		return fmt.Errorf("error writing the API limits config %q: %w", filename, err)
	}

	fmt.Fprintf(base.Stdout, "Your new API limits config is ready: %q\n", filename)
	return nil
}

// shouldOverwrite returns true if the file can be overwritten.  If override
// is true and the file exists and not a directory, it will return true.
func shouldOverwrite(filename string, override bool) bool {
	fi, err := os.Stat(filename)
	if fi != nil && fi.IsDir() {
		return false
	}
	return err != nil || override
}

// maybeFixExt checks if the extension is one of .toml or .tml, and if not
// appends it to the file.
func maybeFixExt(filename string) string {
	if ext := filepath.Ext(filename); !(ext == ".toml" || ext == ".tml") {
		return maybeAppendExt(filename, ".toml")
	}
	return filename
}

// maybeAppendExt adds a filename extension ext if the filename has missing, or
// a different extension.
func maybeAppendExt(filename string, ext string) string {
	if len(ext) == 0 {
		return filename
	}
	if ext[0] != '.' {
		ext = "." + ext
	}
	if filepath.Ext(filename) == ext {
		return filename
	}
	return filename + ext
}
