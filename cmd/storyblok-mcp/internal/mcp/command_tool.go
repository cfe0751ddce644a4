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

package mcp

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"

	"github.com/joshuauaua/storyblok-mcp-server/cmd/storyblok-mcp/internal/golang/base"
	"github.com/joshuauaua/storyblok-mcp-server/cmd/storyblok-mcp/internal/golang/help"
)

// toolCommandHelp returns an MCP tool that provides CLI flag help for any
// storyblok-mcp subcommand.
func toolCommandHelp() mcpsrv.ServerTool {
	tool := mcplib.NewTool("command_help",
		mcplib.WithDescription(`Return command-line help for a storyblok-mcp subcommand.

Providing no command name (or an empty string) returns the top-level help
listing all available commands. Use it to construct a storyblok-mcp command
line for the user, for example to sync the tag list or to check an API
limits config.`),
		mcplib.WithString("command",
			mcplib.Description(`Subcommand name, e.g. "tags", "story", "config". Leave empty for top-level help. Nested subcommands are space-separated, e.g. "tags sync".`),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
		mcplib.WithIdempotentHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: handleCommandHelp}
}

func handleCommandHelp(_ context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	cmdName, _ := req.GetArguments()["command"].(string)

	var buf bytes.Buffer
	if strings.TrimSpace(cmdName) == "" {
		fmt.Fprintln(&buf, "storyblok-mcp, available commands:")
		printCommands(&buf, base.Storyblok)
		return mcplib.NewToolResultText(buf.String()), nil
	}

	parts := strings.Fields(cmdName)
	cur, n := help.Find(base.Storyblok, parts)
	if n < len(parts) {
		return mcplib.NewToolResultError(fmt.Sprintf(
			"Unknown command %q. Run command_help with an empty command name to list all commands.",
			cmdName,
		)), nil
	}

	fmt.Fprintf(&buf, "Command: %s %s\n", base.CmdName, cur.LongName())
	if cur.Runnable() {
		fmt.Fprintf(&buf, "Usage: %s\n", cur.UsageLine)
	}
	if cur.Short != "" {
		fmt.Fprintf(&buf, "Summary: %s\n", cur.Short)
	}
	if long := strings.TrimSpace(cur.Long); long != "" {
		fmt.Fprintf(&buf, "\nDescription:\n%s\n", long)
	}
	if cur.Runnable() {
		fmt.Fprintln(&buf, "\nFlags:")
		help.FlagDefaults(&buf, cur)
	}
	if len(cur.Commands) > 0 {
		fmt.Fprintln(&buf, "\nSubcommands:")
		printCommands(&buf, cur)
	}

	return mcplib.NewToolResultText(buf.String()), nil
}

func printCommands(buf *bytes.Buffer, cmd *base.Command) {
	for _, c := range cmd.Commands {
		if c.Short == "" {
			continue
		}
		fmt.Fprintf(buf, "  %-20s %s\n", c.Name(), c.Short)
	}
}
