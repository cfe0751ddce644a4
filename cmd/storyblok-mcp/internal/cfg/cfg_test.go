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
	"flag"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuauaua/storyblok-mcp-server/internal/client"
	"github.com/joshuauaua/storyblok-mcp-server/internal/network"
)

func TestSetBaseFlags(t *testing.T) {
	t.Run("all flags are set", func(t *testing.T) {
		fs := flag.NewFlagSet("test", flag.ContinueOnError)
		SetBaseFlags(fs, DefaultFlags)

		err := fs.Parse([]string{
			"-trace", "trace.out",
			"-log", "log.txt",
			"-v",
			"-token", "secret",
			"-space", "288110",
			"-api-url", "https://api-us.storyblok.com/v1",
			"-api-config", "limits.toml",
		})
		require.NoError(t, err)

		assert.Equal(t, "trace.out", TraceFile)
		assert.Equal(t, "log.txt", LogFile)
		assert.True(t, Verbose)
		assert.Equal(t, "secret", Token)
		assert.Equal(t, "288110", SpaceID)
		assert.Equal(t, "https://api-us.storyblok.com/v1", APIURL)
		assert.Equal(t, "limits.toml", ConfigFile)
	})
	t.Run("environment defaults", func(t *testing.T) {
		t.Setenv(EnvToken, "env-token")
		t.Setenv(EnvSpaceID, "42")
		t.Setenv(EnvAPIURL, "")
		os.Unsetenv(EnvAPIURL)

		fs := flag.NewFlagSet("test", flag.ContinueOnError)
		SetBaseFlags(fs, DefaultFlags)
		require.NoError(t, fs.Parse(nil))

		assert.Equal(t, "env-token", Token)
		assert.Equal(t, "42", SpaceID)
		assert.Equal(t, client.DefaultBaseURL, APIURL)
	})
	t.Run("omit all", func(t *testing.T) {
		fs := flag.NewFlagSet("test", flag.ContinueOnError)
		SetBaseFlags(fs, OmitAll)

		assert.Nil(t, fs.Lookup("token"))
		assert.Nil(t, fs.Lookup("space"))
		assert.Nil(t, fs.Lookup("api-config"))
		assert.NotNil(t, fs.Lookup("v"))
	})
}

func TestStoryblokSession(t *testing.T) {
	reset := func(t *testing.T) {
		t.Helper()
		oldToken, oldSpace, oldURL, oldLimits := Token, SpaceID, APIURL, Limits
		t.Cleanup(func() {
			Token, SpaceID, APIURL, Limits = oldToken, oldSpace, oldURL, oldLimits
		})
	}
	t.Run("configured", func(t *testing.T) {
		reset(t)
		Token, SpaceID, APIURL = "token", "288110", client.DefaultBaseURL

		sess, err := StoryblokSession(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "288110", sess.SpaceID())
	})
	t.Run("no token", func(t *testing.T) {
		reset(t)
		Token, SpaceID, APIURL = "", "288110", client.DefaultBaseURL

		_, err := StoryblokSession(context.Background())
		assert.ErrorIs(t, err, client.ErrNoToken)
		assert.ErrorContains(t, err, EnvToken)
	})
	t.Run("no space", func(t *testing.T) {
		reset(t)
		Token, SpaceID, APIURL = "token", "", client.DefaultBaseURL

		_, err := StoryblokSession(context.Background())
		assert.ErrorIs(t, err, client.ErrNoSpace)
	})
	t.Run("invalid limits", func(t *testing.T) {
		reset(t)
		Token, SpaceID, APIURL = "token", "288110", client.DefaultBaseURL
		Limits = network.Limits{Attempts: -1}

		_, err := StoryblokSession(context.Background())
		assert.Error(t, err)
	})
}
