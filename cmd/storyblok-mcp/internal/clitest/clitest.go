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

// Package clitest contains the helpers for the command tests.
package clitest

import (
	"bytes"
	"testing"

	"github.com/joshuauaua/storyblok-mcp-server/cmd/storyblok-mcp/internal/cfg"
	"github.com/joshuauaua/storyblok-mcp-server/cmd/storyblok-mcp/internal/golang/base"
	"github.com/joshuauaua/storyblok-mcp-server/internal/fixtures"
	"github.com/joshuauaua/storyblok-mcp-server/internal/network"
)

// UseMAPI starts the fake Management API and points the global
// configuration to it.  The pacing is disabled.  The configuration is
// restored when the test finishes.
func UseMAPI(t *testing.T) *fixtures.MAPI {
	t.Helper()
	m := fixtures.NewMAPI(t)

	oldToken, oldSpace, oldURL, oldLimits := cfg.Token, cfg.SpaceID, cfg.APIURL, cfg.Limits
	t.Cleanup(func() {
		cfg.Token, cfg.SpaceID, cfg.APIURL, cfg.Limits = oldToken, oldSpace, oldURL, oldLimits
	})
	cfg.Token = fixtures.TestToken
	cfg.SpaceID = fixtures.TestSpaceID
	cfg.APIURL = m.BaseURL()
	cfg.Limits = network.Limits{
		Attempts:  network.DefLimits.Attempts,
		RetryWait: 1,
		Pacing:    1,
		Burst:     network.DefLimits.Burst,
	}
	return m
}

// CaptureStdout redirects the command output to the returned buffer until
// the test finishes.
func CaptureStdout(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := base.Stdout
	base.Stdout = &buf
	t.Cleanup(func() { base.Stdout = old })
	return &buf
}
