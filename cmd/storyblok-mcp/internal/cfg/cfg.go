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

// Package cfg holds the global configuration of the command: the flags
// shared by all commands and their environment defaults.
package cfg

import (
	"flag"
	"log/slog"
	"os"

	"github.com/rusq/osenv/v2"

	"github.com/joshuauaua/storyblok-mcp-server/internal/client"
	"github.com/joshuauaua/storyblok-mcp-server/internal/network"
)

// Environment variables.
const (
	EnvToken   = "STORYBLOK_MANAGEMENT_TOKEN"
	EnvSpaceID = "STORYBLOK_SPACE_ID"
	EnvAPIURL  = "STORYBLOK_MANAGEMENT_API_URL"
)

var (
	TraceFile string
	LogFile   string
	Verbose   bool
	JSONLog   bool

	ConfigFile string

	Token   string
	SpaceID string
	APIURL  string

	// Limits are the request pacing and retry limits, possibly overridden
	// by the -api-config file.
	Limits = network.DefLimits

	// UserAgent is sent with every API request.
	UserAgent = "storyblok-mcp"

	// Log is the logger, set up in main.
	Log = slog.Default()
)

type FlagMask int

const (
	DefaultFlags  FlagMask = 0
	OmitAuthFlags FlagMask = 1 << iota
	OmitConfigFlag

	OmitAll = OmitAuthFlags | OmitConfigFlag
)

// SetBaseFlags sets base flags
func SetBaseFlags(fs *flag.FlagSet, mask FlagMask) {
	fs.StringVar(&TraceFile, "trace", os.Getenv("TRACE_FILE"), "trace `filename`")
	fs.StringVar(&LogFile, "log", os.Getenv("LOG_FILE"), "log `file`, if not specified, messages are printed to STDERR")
	fs.BoolVar(&JSONLog, "log-json", osenv.Value("JSON_LOG", false), "log messages in JSON format")
	fs.BoolVar(&Verbose, "v", osenv.Value("DEBUG", false), "verbose messages")

	if mask&OmitAuthFlags == 0 {
		fs.StringVar(&Token, "token", osenv.Secret(EnvToken, ""), "Storyblok management `token`\n(environment: "+EnvToken+")")
		fs.StringVar(&SpaceID, "space", osenv.Value(EnvSpaceID, ""), "Storyblok space `id`\n(environment: "+EnvSpaceID+")")
		fs.StringVar(&APIURL, "api-url", osenv.Value(EnvAPIURL, client.DefaultBaseURL), "Management API base `URL`, change it for the spaces outside\nof the EU region (environment: "+EnvAPIURL+")")
	}
	if mask&OmitConfigFlag == 0 {
		fs.StringVar(&ConfigFile, "api-config", "", "configuration `file` with API limits overrides.\nYou can generate one with default values with 'storyblok-mcp config new'")
	}
}

// SetDebugLevel sets the default log level to debug.
func SetDebugLevel() {
	slog.SetLogLoggerLevel(slog.LevelDebug)
}
