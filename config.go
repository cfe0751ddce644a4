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

package storyblok

// In this file: session config.

import (
	"github.com/joshuauaua/storyblok-mcp-server/internal/network"
)

const (
	defPage    = 1
	defPerPage = 25
	// maxVersionsPerPage is the largest page the story_versions endpoint
	// accepts.
	maxVersionsPerPage = 100
)

// config is the option set for the Session.
type config struct {
	limits   network.Limits
	override network.Limits // non-zero values replace the limits
}

var defConfig = config{
	limits: network.DefLimits,
}
