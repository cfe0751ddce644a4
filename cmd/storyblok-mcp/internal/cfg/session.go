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

package cfg

import (
	"context"
	"fmt"

	"github.com/joshuauaua/storyblok-mcp-server"
	"github.com/joshuauaua/storyblok-mcp-server/internal/client"
)

// StoryblokSession creates the session for the configured space.
func StoryblokSession(ctx context.Context, opts ...storyblok.Option) (*storyblok.Session, error) {
	cl, err := client.New(APIURL, SpaceID, Token,
		client.WithLogger(Log),
		client.WithUserAgent(UserAgent),
	)
	if err != nil {
		return nil, fmt.Errorf("%w (set %s and %s)", err, EnvToken, EnvSpaceID)
	}

	stdOpts := []storyblok.Option{
		storyblok.WithLogger(Log),
		storyblok.WithLimits(Limits),
	}
	stdOpts = append(stdOpts, opts...)
	Log.DebugContext(ctx, "session", "space", SpaceID, "api", APIURL)
	return storyblok.New(cl, stdOpts...)
}
