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

// In this file: content tags field round trip check.

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"

	"github.com/joshuauaua/storyblok-mcp-server/internal/client"
)

// ContentTagsField is the content field that holds the story tags chosen in
// the options field of the component.
const ContentTagsField = "Tags"

var ErrNoStories = errors.New("no stories found")

// StoryRef identifies a story.
type StoryRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// FindStory returns the story from the first page of stories with the given
// name.  If there is no such story, the first story of the page is returned.
func (s *Session) FindStory(ctx context.Context, name string) (*StoryRef, error) {
	var resp struct {
		Stories []StoryRef `json:"stories"`
	}
	if err := s.client.Get(ctx, "/stories", nil, &resp); err != nil {
		return nil, err
	}
	if len(resp.Stories) == 0 {
		return nil, ErrNoStories
	}
	if i := slices.IndexFunc(resp.Stories, func(r StoryRef) bool { return r.Name == name }); i >= 0 {
		return &resp.Stories[i], nil
	}
	return &resp.Stories[0], nil
}

// ContentTagsCheck is the result of SetContentTags.
type ContentTagsCheck struct {
	StoryID   int64    `json:"story_id"`
	StoryName string   `json:"story_name"`
	Before    any      `json:"before"`
	Requested []string `json:"requested"`
	After     any      `json:"after"`
	Verified  bool     `json:"verified"`
}

// SetContentTags replaces the tags content field of the story, saves the
// story and fetches it again to check that the tags were persisted.
func (s *Session) SetContentTags(ctx context.Context, id int64, tags []string) (*ContentTagsCheck, error) {
	var before storyProbe
	if err := s.client.Get(ctx, storyPath(id), nil, &before); err != nil {
		return nil, fmt.Errorf("fetch story: %w", err)
	}
	content := before.Story.Content
	if content == nil {
		content = make(map[string]any, 1)
	}
	res := &ContentTagsCheck{
		StoryID:   id,
		StoryName: before.Story.Name,
		Before:    content[ContentTagsField],
		Requested: tags,
	}
	content[ContentTagsField] = tags

	body := storyRequest[map[string]any]{Story: map[string]any{"content": content}}
	if err := s.client.Do(ctx, client.Request{Method: http.MethodPut, Path: storyPath(id), Body: body}, nil); err != nil {
		return nil, fmt.Errorf("update story: %w", err)
	}

	var after storyProbe
	if err := s.client.Get(ctx, storyPath(id), nil, &after); err != nil {
		return nil, fmt.Errorf("verify story: %w", err)
	}
	res.After = after.Story.Content[ContentTagsField]
	res.Verified = sameTags(res.After, tags)
	return res, nil
}

func sameTags(got any, want []string) bool {
	vv, ok := got.([]any)
	if !ok || len(vv) != len(want) {
		return false
	}
	for i, v := range vv {
		if s, ok := v.(string); !ok || s != want[i] {
			return false
		}
	}
	return true
}
