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

// Package mcp contains the CLI command for starting the Storyblok MCP server.
package mcp

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"slices"
	"strings"

	"github.com/joshuauaua/storyblok-mcp-server/cmd/storyblok-mcp/internal/cfg"
	"github.com/joshuauaua/storyblok-mcp-server/cmd/storyblok-mcp/internal/golang/base"
	"github.com/joshuauaua/storyblok-mcp-server/internal/client"
	internalmcp "github.com/joshuauaua/storyblok-mcp-server/internal/mcp"
	"github.com/joshuauaua/storyblok-mcp-server/internal/osext"
)

//go:embed assets/mcp.md
var mdMCP string

//go:embed all:assets/layouts/*
var projectsFS embed.FS

// CmdMCP is the "storyblok-mcp mcp" command.
var CmdMCP = &base.Command{
	UsageLine:   "storyblok-mcp mcp [flags] [<directory>]",
	Short:       "start the MCP server for the space",
	Long:        mdMCP,
	PrintFlags:  true,
	RequireAuth: false,
	Run:         runMCP,
}

var (
	listenAddr       string
	transport        string
	newProjectLayout string
)

const (
	layoutOpencode = "opencode"
)

var projectLayouts = []string{
	layoutOpencode,
}

func init() {
	CmdMCP.Flag.StringVar(&transport, "transport", string(internalmcp.TransportStdio), "MCP transport: \"stdio\" or \"http\"")
	CmdMCP.Flag.StringVar(&listenAddr, "listen", "127.0.0.1:8483", "address to listen on when -transport=http")
	CmdMCP.Flag.StringVar(&newProjectLayout, "new", "", fmt.Sprintf("creates new project layout for AI in the directory. Type may be one of: %v", projectLayouts))
}

func runMCP(ctx context.Context, cmd *base.Command, args []string) error {
	if newProjectLayout != "" {
		if len(args) == 0 {
			base.SetExitStatus(base.SInvalidParameters)
			return errors.New("target directory must be provided (will be created)")
		}
		return runMCPNewProject(ctx, newProjectLayout, args[0])
	}
	return runMCPServer(ctx, cmd, args)
}

func runMCPServer(ctx context.Context, cmd *base.Command, args []string) error {
	lg := cfg.Log

	sb, err := session(ctx)
	if err != nil {
		base.SetExitStatus(base.SInitializationError)
		return fmt.Errorf("mcp: %w", err)
	}

	srv := internalmcp.New(sb, internalmcp.WithLogger(lg))

	// command_help needs the command tree, which internal/mcp can't import.
	srv.AddTool(toolCommandHelp())

	switch internalmcp.Transport(strings.ToLower(transport)) {
	case internalmcp.TransportStdio, "":
		return srv.ServeStdio(ctx)
	case internalmcp.TransportHTTP:
		lg.InfoContext(ctx, "mcp: http transport", "addr", listenAddr)
		return srv.ServeHTTP(ctx, listenAddr)
	default:
		base.SetExitStatus(base.SInvalidParameters)
		return fmt.Errorf("mcp: unknown transport %q (use \"stdio\" or \"http\")", transport)
	}
}

// session returns the session for the configured space.  Missing
// credentials are not fatal, the server starts without the session and
// the tools report the problem to the agent.
func session(ctx context.Context) (internalmcp.Storyblok, error) {
	sess, err := cfg.StoryblokSession(ctx)
	if err != nil {
		if errors.Is(err, client.ErrNoToken) || errors.Is(err, client.ErrNoSpace) {
			cfg.Log.WarnContext(ctx, "mcp: starting without the Storyblok session", "error", err)
			return nil, nil
		}
		return nil, err
	}
	cfg.Log.InfoContext(ctx, "mcp: serving space", "space", sess.SpaceID())
	return sess, nil
}

func runMCPNewProject(ctx context.Context, layout string, tgtDir string) error {
	// ensure we know the project type before accessing the FS
	if !slices.Contains(projectLayouts, layout) {
		base.SetExitStatus(base.SInvalidParameters)
		return fmt.Errorf("unknown project layout %q. Use one of %v", layout, projectLayouts)
	}
	subfs, err := fs.Sub(projectsFS, path.Join("assets", "layouts", layout))
	if err != nil {
		base.SetExitStatus(base.SApplicationError)
		return fmt.Errorf("fs chdir: %w", err)
	}
	if err := initNewProject(tgtDir, subfs); err != nil {
		return err
	}
	cfg.Log.InfoContext(ctx, "SUCCESS: new project created", "in", tgtDir, "layout", layout)
	return nil
}

func initNewProject(tgtDir string, fsys fs.FS) error {
	if err := osext.EnsureDir(tgtDir); err != nil {
		if errors.Is(err, osext.ErrNotADir) {
			base.SetExitStatus(base.SUserError)
			return err
		}
		base.SetExitStatus(base.SApplicationError)
		return fmt.Errorf("unable to initialise new project in %q: %w", tgtDir, err)
	}
	if err := os.CopyFS(tgtDir, fsys); err != nil {
		base.SetExitStatus(base.SApplicationError)
		return fmt.Errorf("copy project files: %w", err)
	}
	return nil
}
