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

package base

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommand_names(t *testing.T) {
	tests := []struct {
		usage    string
		wantLong string
		wantName string
	}{
		{"storyblok-mcp", "", ""},
		{"storyblok-mcp mcp [flags]", "mcp", "mcp"},
		{"storyblok-mcp tags sync [flags] [<file>]", "tags sync", "sync"},
		{"storyblok-mcp story get <id>", "story get", "get"},
	}
	for _, tt := range tests {
		t.Run(tt.usage, func(t *testing.T) {
			c := &Command{UsageLine: tt.usage}
			assert.Equal(t, tt.wantLong, c.LongName())
			assert.Equal(t, tt.wantName, c.Name())
		})
	}
}

func TestCommand_Lookup(t *testing.T) {
	get := &Command{UsageLine: "storyblok-mcp story get <id>"}
	story := &Command{UsageLine: "storyblok-mcp story", Commands: []*Command{get}}
	assert.Same(t, get, story.Lookup("get"))
	assert.Nil(t, story.Lookup("list"))
	assert.False(t, story.Runnable())
}

func TestCommand_FprintUsage(t *testing.T) {
	var buf bytes.Buffer
	(&Command{UsageLine: "storyblok-mcp story get <id>"}).FprintUsage(&buf)
	assert.Equal(t, "usage: storyblok-mcp story get <id>\nRun 'storyblok-mcp help story get' for details.\n", buf.String())
}

func TestSetExitStatus(t *testing.T) {
	t.Cleanup(func() { exitStatus = 0 })
	SetExitStatus(SUserError)
	SetExitStatus(SInvalidParameters) // lower status does not override
	assert.Equal(t, SUserError, GetExitStatus())
}

func TestYesNoWR(t *testing.T) {
	type args struct {
		r       io.Reader
		message string
	}
	tests := []struct {
		name  string
		args  args
		want  bool
		wantW string
	}{
		{
			name:  "yes",
			args:  args{r: strings.NewReader("y\n"), message: "message"},
			want:  true,
			wantW: "message? (y/N) ",
		},
		{
			name:  "no",
			args:  args{r: strings.NewReader("n\n"), message: "message"},
			want:  false,
			wantW: "message? (y/N) ",
		},
		{
			name:  "empty answer",
			args:  args{r: strings.NewReader("\n"), message: "message"},
			want:  false,
			wantW: "message? (y/N) ",
		},
		{
			name:  "any other key",
			args:  args{r: strings.NewReader("x\nn\n"), message: "message"},
			want:  false,
			wantW: "message? (y/N) Please answer yes or no and press Enter or Return.\nmessage? (y/N) ",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &bytes.Buffer{}
			assert.Equal(t, tt.want, YesNoWR(w, tt.args.r, tt.args.message))
			assert.Equal(t, tt.wantW, w.String())
		})
	}
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, PrintJSON(&buf, map[string]int{"n": 1}))
	assert.Equal(t, "{\n  \"n\": 1\n}\n", buf.String())
}
