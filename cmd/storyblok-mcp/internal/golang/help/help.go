// This package is based on the Golang source code with some modifications.
//
// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package help implements "storyblok-mcp help" command.
package help

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"

	"github.com/joshuauaua/storyblok-mcp-server/cmd/storyblok-mcp/internal/cfg"
	"github.com/joshuauaua/storyblok-mcp-server/cmd/storyblok-mcp/internal/golang/base"
)

func PrintUsage(w io.Writer, cmd *base.Command) {
	bw := bufio.NewWriter(w)
	tmpl(bw, usageTemplate, cmd)
	bw.Flush()
}

// tmpl executes the given template text on data, writing the result to w.
func tmpl(w io.Writer, text string, data any) {
	t := template.New("top")
	t.Funcs(template.FuncMap{"trim": strings.TrimSpace, "capitalize": capitalize, "cmdName": func() string { return base.CmdName }})
	template.Must(t.Parse(text))
	ew := &errWriter{w: w}
	err := t.Execute(ew, data)
	if ew.err != nil {
		// I/O error writing. Ignore write on closed pipe.
		if strings.Contains(ew.err.Error(), "pipe") {
			base.SetExitStatus(base.SGenericError)
			base.Exit()
		}
		log.Fatalf("writing output: %v", ew.err)
	}
	if err != nil {
		panic(err)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, n := utf8.DecodeRuneInString(s)
	return string(unicode.ToTitle(r)) + s[n:]
}

// An errWriter wraps a writer, recording whether a write error occurred.
type errWriter struct {
	w   io.Writer
	err error
}

func (w *errWriter) Write(b []byte) (int, error) {
	n, err := w.w.Write(b)
	if err != nil {
		w.err = err
	}
	return n, err
}

// Find walks the command tree from root following the names in args.  It
// returns the deepest command found and the number of args consumed.
func Find(root *base.Command, args []string) (*base.Command, int) {
	cmd := root
	for i, arg := range args {
		sub := cmd.Lookup(arg)
		if sub == nil {
			return cmd, i
		}
		cmd = sub
	}
	return cmd, len(args)
}

// Help implements the 'help' command.
func Help(w io.Writer, args []string) error {
	cmd, n := Find(base.Storyblok, args)
	if n < len(args) {
		// helpSuccess is the help command using as many args as possible that would succeed.
		helpSuccess := base.CmdName + " help"
		if n > 0 {
			helpSuccess += " " + strings.Join(args[:n], " ")
		}
		base.SetExitStatus(base.SInvalidParameters) // failed at 'storyblok-mcp help cmd'
		return fmt.Errorf("%s help %s: unknown help topic. Run '%s'", base.CmdName, strings.Join(args, " "), helpSuccess)
	}

	if len(cmd.Commands) > 0 {
		PrintUsage(w, cmd)
	} else {
		tmpl(w, helpTemplate, cmd)
		if cmd.PrintFlags {
			fmt.Fprintln(w, "\nFlags:")
			FlagDefaults(w, cmd)
		}
	}
	// not exit 2: succeeded at 'storyblok-mcp help cmd'.
	return nil
}

// FlagDefaults prints the defaults of the command flags, including the
// global flags the command accepts, to w.
func FlagDefaults(w io.Writer, cmd *base.Command) {
	if !cmd.CustomFlags && cmd.Flag.Lookup("v") == nil {
		cfg.SetBaseFlags(&cmd.Flag, cmd.FlagMask)
	}
	defer cmd.Flag.SetOutput(cmd.Flag.Output())
	cmd.Flag.SetOutput(w)
	cmd.Flag.PrintDefaults()
}
