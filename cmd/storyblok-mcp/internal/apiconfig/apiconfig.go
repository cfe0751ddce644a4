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

// Package apiconfig implements the "config" command and the loading of the
// API limits configuration file.
package apiconfig

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	"github.com/joshuauaua/storyblok-mcp-server/cmd/storyblok-mcp/internal/golang/base"
	"github.com/joshuauaua/storyblok-mcp-server/internal/network"
)

var CmdConfig = &base.Command{
	UsageLine: "storyblok-mcp config",
	Short:     "API limits configuration",
	Long: `
Config command allows to perform different operations on the API limits
configuration file.  The file is passed to other commands with the
-api-config flag.
`,
	Commands: []*base.Command{
		CmdConfigNew,
		CmdConfigCheck,
	},
}

var ErrConfigInvalid = errors.New("config validation failed")

// Load reads, parses and validates the config file.  The values that are
// missing in the file keep the defaults.  Validation problems are printed to
// stderr.
func Load(filename string) (network.Limits, error) {
	return load(os.Stderr, filename)
}

func load(errw io.Writer, filename string) (network.Limits, error) {
	var override network.Limits
	md, err := toml.DecodeFile(filename, &override)
	if err != nil {
		return network.Limits{}, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		slices.Sort(keys)
		return network.Limits{}, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}

	limits := network.DefLimits
	if err := limits.Apply(override); err != nil {
		if err := printErrors(errw, err); err != nil {
			return network.Limits{}, err
		}
		return network.Limits{}, ErrConfigInvalid
	}
	return limits, nil
}

// Save writes the limits to the file filename.
func Save(filename string, limits network.Limits) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := writeLimits(f, limits); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeLimits(w io.Writer, limits network.Limits) error {
	if _, err := io.WriteString(w, "# "+base.CmdName+" API limits\n"); err != nil {
		return err
	}
	return toml.NewEncoder(w).Encode(limits)
}

func printErrors(w io.Writer, err error) error {
	if err == nil {
		return nil
	}

	var wErr error
	var printErr = func(format string, a ...any) {
		if wErr != nil {
			return
		}
		_, wErr = fmt.Fprintf(w, format, a...)
	}

	var vErr validator.ValidationErrors
	if !errors.As(err, &vErr) {
		return err
	}
	printErr("Detected problems:\n")
	for i, entry := range vErr {
		printErr("\t%2d: %s\n", i+1, entry.Translate(network.ErrTranslations))
	}
	return wErr
}
