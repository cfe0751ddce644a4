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

// Package base defines shared basic pieces of the storyblok-mcp command,
// in particular logging and the Command structure.
package base

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/joshuauaua/storyblok-mcp-server/cmd/storyblok-mcp/internal/cfg"
)

// CmdName is the name of the executable.
const CmdName = "storyblok-mcp"

// A Command is an implementation of a storyblok-mcp command.
type Command struct {
	// Run runs the command.
	// The args are the arguments after the command name.
	Run func(ctx context.Context, cmd *Command, args []string) error

	// UsageLine is the one-line usage message.
	UsageLine string

	// Short is the short description shown in the 'storyblok-mcp help' output.
	Short string

	// Long is the long message shown in the 'storyblok-mcp help <this-command>' output.
	Long string

	// Flag is a set of flags specific to this command.
	Flag flag.FlagSet

	// FlagMask is the mask of the global flags that the command does not
	// accept.
	FlagMask cfg.FlagMask

	// CustomFlags indicates that the command will do its own
	// flag parsing.
	CustomFlags bool

	// PrintFlags indicates that generic help handler should print the
	// flags in the flagset.  Set it to false, if a Long lists all the flags.
	// It only matters for the commands that have no subcommands.
	PrintFlags bool

	// RequireAuth indicates that the command needs the management token and
	// the space id.
	RequireAuth bool

	// Commands lists the available commands and help topics.
	// The order here is the order in which they are printed by 'storyblok-mcp help'.
	Commands []*Command
}

// Storyblok is the root command, its Commands are initialised in main.
var Storyblok = &Command{
	UsageLine: CmdName,
	Long:      `storyblok-mcp is an MCP server and a maintenance tool for the Storyblok Management API.`,
}

var (
	exitStatus = 0
	exitMu     sync.Mutex
)

// SetExitStatus sets the exit status of the program, if n is greater than
// the current status.
func SetExitStatus(n int) {
	exitMu.Lock()
	if exitStatus < n {
		exitStatus = n
	}
	exitMu.Unlock()
}

// GetExitStatus returns the exit status.
func GetExitStatus() int {
	exitMu.Lock()
	defer exitMu.Unlock()
	return exitStatus
}

var atExitFuncs []func()

// AtExit registers f to be run on Exit.
func AtExit(f func()) {
	atExitFuncs = append(atExitFuncs, f)
}

// Exit runs the registered functions and exits with the exit status.
func Exit() {
	for _, f := range atExitFuncs {
		f()
	}
	os.Exit(exitStatus)
}

// Runnable reports whether the command can be run; otherwise
// it is a documentation pseudo-command.
func (c *Command) Runnable() bool {
	return c.Run != nil
}

// LongName returns the command's long name: all the words in the usage line
// between the executable name and a flag or argument.
func (c *Command) LongName() string {
	name := c.UsageLine
	if i := strings.Index(name, " ["); i >= 0 {
		name = name[:i]
	}
	if i := strings.Index(name, " <"); i >= 0 {
		name = name[:i]
	}
	if name == CmdName {
		return ""
	}
	return strings.TrimPrefix(name, CmdName+" ")
}

// Name returns the command's short name: the last word in the usage line before a flag or argument.
func (c *Command) Name() string {
	name := c.LongName()
	if i := strings.LastIndex(name, " "); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// Lookup returns the subcommand with the given name, or nil.
func (c *Command) Lookup(name string) *Command {
	for _, sub := range c.Commands {
		if sub.Name() == name {
			return sub
		}
	}
	return nil
}

// Usage is the usage-reporting function, filled in by package main
// but here for reference by other packages.
var Usage func()

// Usage prints the usage of the command and exits.
func (c *Command) Usage() {
	c.FprintUsage(os.Stderr)
	SetExitStatus(SInvalidParameters)
	Exit()
}

// FprintUsage writes the short usage message to w.
func (c *Command) FprintUsage(w io.Writer) {
	fmt.Fprintf(w, "usage: %s\n", c.UsageLine)
	fmt.Fprintf(w, "Run '%s help %s' for details.\n", CmdName, c.LongName())
}
