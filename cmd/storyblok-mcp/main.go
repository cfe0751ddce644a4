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

// Command storyblok-mcp is the MCP server and the maintenance tool for the
// Storyblok Management API.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/joho/godotenv"

	"github.com/joshuauaua/storyblok-mcp-server/cmd/storyblok-mcp/internal/apiconfig"
	"github.com/joshuauaua/storyblok-mcp-server/cmd/storyblok-mcp/internal/cfg"
	"github.com/joshuauaua/storyblok-mcp-server/cmd/storyblok-mcp/internal/component"
	"github.com/joshuauaua/storyblok-mcp-server/cmd/storyblok-mcp/internal/datasource"
	"github.com/joshuauaua/storyblok-mcp-server/cmd/storyblok-mcp/internal/diag"
	"github.com/joshuauaua/storyblok-mcp-server/cmd/storyblok-mcp/internal/golang/base"
	"github.com/joshuauaua/storyblok-mcp-server/cmd/storyblok-mcp/internal/golang/help"
	"github.com/joshuauaua/storyblok-mcp-server/cmd/storyblok-mcp/internal/mcp"
	"github.com/joshuauaua/storyblok-mcp-server/cmd/storyblok-mcp/internal/story"
	"github.com/joshuauaua/storyblok-mcp-server/cmd/storyblok-mcp/internal/tags"
	"github.com/joshuauaua/storyblok-mcp-server/internal/client"
)

// secretFiles defines the names of the supported secret files that we load
// our secrets from.  Inexperienced windows users might have bad experience
// trying to create .env file with the notepad as it will battle for having
// the "txt" extension.  Let it have it.
var secretFiles = []string{".env", ".env.txt", "secrets.txt"}

func init() {
	base.Storyblok.Commands = []*base.Command{
		mcp.CmdMCP,
		story.CmdStory,
		tags.CmdTags,
		component.CmdComponent,
		datasource.CmdDatasource,
		diag.CmdDiag,
		apiconfig.CmdConfig,
		CmdVersion,
	}
	base.Usage = mainUsage
	cfg.UserAgent = base.CmdName + "/" + version
}

func main() {
	loadSecrets(secretFiles)

	flag.Usage = base.Usage
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		base.Usage()
	}

	if args[0] == "help" {
		if err := help.Help(os.Stdout, args[1:]); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		base.Exit()
	}

	cmd, used := help.Find(base.Storyblok, args)
	if used == 0 {
		fmt.Fprintf(os.Stderr, "%s %s: unknown command\nRun '%s help' for usage.\n", base.CmdName, args[0], base.CmdName)
		base.SetExitStatus(base.SInvalidParameters)
		base.Exit()
	}
	if !cmd.Runnable() {
		if used < len(args) {
			fmt.Fprintf(os.Stderr, "%s %s: unknown command\nRun '%s help %s' for usage.\n", base.CmdName, strings.Join(args[:used+1], " "), base.CmdName, cmd.LongName())
		} else {
			help.PrintUsage(os.Stderr, cmd)
		}
		base.SetExitStatus(base.SInvalidParameters)
		base.Exit()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	base.AtExit(stop)

	if err := invoke(ctx, cmd, args[used:]); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			slog.ErrorContext(ctx, "command failed", "command", cmd.LongName(), "error", err)
		}
		base.SetExitStatus(base.SGenericError)
	}
	base.Exit()
}

// invoke parses the flags of the command, sets up the logging, tracing and
// the API limits, and runs the command.
func invoke(ctx context.Context, cmd *base.Command, args []string) error {
	if !cmd.CustomFlags {
		cfg.SetBaseFlags(&cmd.Flag, cmd.FlagMask)
		cmd.Flag.Usage = func() {
			cmd.FprintUsage(os.Stderr)
		}
		if err := cmd.Flag.Parse(args); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				base.SetExitStatus(base.SHelpRequested)
			} else {
				base.SetExitStatus(base.SInvalidParameters)
			}
			return err
		}
		args = cmd.Flag.Args()
	}

	lg, err := initLog(cfg.LogFile, cfg.JSONLog, cfg.Verbose)
	if err != nil {
		base.SetExitStatus(base.SInitializationError)
		return err
	}
	cfg.Log = lg
	base.AtExit(initTrace(cfg.TraceFile))

	if cfg.ConfigFile != "" {
		limits, err := apiconfig.Load(cfg.ConfigFile)
		if err != nil {
			base.SetExitStatus(base.SInvalidParameters)
			return fmt.Errorf("config file %s not loaded: %w", cfg.ConfigFile, err)
		}
		cfg.Limits = limits
	}

	if cmd.RequireAuth {
		if err := checkAuth(); err != nil {
			base.SetExitStatus(base.SAuthError)
			return err
		}
	}
	return cmd.Run(ctx, cmd, args)
}

func checkAuth() error {
	switch {
	case cfg.Token == "":
		return fmt.Errorf("%w, use -token or %s", client.ErrNoToken, cfg.EnvToken)
	case cfg.SpaceID == "":
		return fmt.Errorf("%w, use -space or %s", client.ErrNoSpace, cfg.EnvSpaceID)
	}
	return nil
}

// loadSecrets load secrets from the files in secrets slice.
func loadSecrets(files []string) {
	for _, f := range files {
		_ = godotenv.Load(f)
	}
}

func mainUsage() {
	help.PrintUsage(os.Stderr, base.Storyblok)
	base.SetExitStatus(base.SInvalidParameters)
	base.Exit()
}
