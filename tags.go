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

// In this file: tags.

import (
	"context"
	"net/http"

	"github.com/samber/lo"

	"github.com/joshuauaua/storyblok-mcp-server/internal/network"
)

// Tag is a story tag.
type Tag struct {
	Name          string `json:"name"`
	TaggingsCount int    `json:"taggings_count"`
}

// InternalTag is a tag used on assets and components.
type InternalTag struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	ObjectType string `json:"object_type,omitempty"`
}

// Tags lists the story tags of the space.
func (s *Session) Tags(ctx context.Context) ([]Tag, error) {
	var resp struct {
		Tags []Tag `json:"tags"`
	}
	if err := s.client.Get(ctx, "/tags", nil, &resp); err != nil {
		return nil, err
	}
	if resp.Tags == nil {
		resp.Tags = []Tag{}
	}
	return resp.Tags, nil
}

// InternalTags lists the internal tags of the space.
func (s *Session) InternalTags(ctx context.Context) ([]InternalTag, error) {
	var resp struct {
		InternalTags []InternalTag `json:"internal_tags"`
	}
	if err := s.client.Get(ctx, "/internal_tags", nil, &resp); err != nil {
		return nil, err
	}
	return resp.InternalTags, nil
}

type tagBody struct {
	Tag struct {
		Name string `json:"name"`
	} `json:"tag"`
}

// CreateTag creates the tag name.  The error is an API error with status 422
// if the tag exists.
func (s *Session) CreateTag(ctx context.Context, name string) error {
	var body tagBody
	body.Tag.Name = name
	return s.client.Post(ctx, "/tags/", body, nil)
}

// TagFailure is a tag that could not be created.
type TagFailure struct {
	Name  string `json:"name"`
	Error string `json:"error"`
}

// TagSyncResult is the result of SyncTags.
type TagSyncResult struct {
	Existing      int          `json:"existing"`
	Requested     []string     `json:"requested"`
	Created       []string     `json:"created"`
	AlreadyExists []string     `json:"already_exists"`
	Failed        []TagFailure `json:"failed"`
}

// SyncTags creates the tags from target that do not exist in the space,
// preserving the target order.  Tag creations are paced by the session
// limiter and retried on HTTP 429.  A tag rejected with 422 is counted as
// already existing.  Other failures are recorded in the result, and do not
// stop the sync.  The error is returned only if the existing tags could not
// be listed or ctx is cancelled.
func (s *Session) SyncTags(ctx context.Context, target []string, fn ProgressFunc) (*TagSyncResult, error) {
	existing, err := s.Tags(ctx)
	if err != nil {
		return nil, err
	}
	have := lo.SliceToMap(existing, func(t Tag) (string, struct{}) { return t.Name, struct{}{} })
	missing := lo.Uniq(lo.Filter(target, func(name string, _ int) bool {
		_, ok := have[name]
		return !ok
	}))

	res := &TagSyncResult{
		Existing:      len(have),
		Requested:     missing,
		Created:       []string{},
		AlreadyExists: []string{},
		Failed:        []TagFailure{},
	}
	s.log.InfoContext(ctx, "syncing tags", "existing", len(have), "to_add", len(missing))

	lim := s.cfg.limits
	for i, name := range missing {
		err := network.WithRetry(ctx, s.lim, lim.Attempts, lim.RetryWait, func() error {
			return s.CreateTag(ctx, name)
		})
		st := TagCreated
		switch {
		case err == nil:
			res.Created = append(res.Created, name)
		case network.IsStatus(err, http.StatusUnprocessableEntity):
			st = TagExists
			res.AlreadyExists = append(res.AlreadyExists, name)
		case ctx.Err() != nil:
			return res, ctx.Err()
		default:
			st = TagFailed
			s.log.WarnContext(ctx, "failed to create tag", "tag", name, "error", err)
			res.Failed = append(res.Failed, TagFailure{Name: name, Error: err.Error()})
		}
		if fn != nil {
			fn(i+1, len(missing), name, st)
		}
	}
	return res, nil
}

// TagStatus is the outcome of a single tag creation.
type TagStatus int

const (
	TagCreated TagStatus = iota
	TagExists
	TagFailed
)

// ProgressFunc is called after each tag creation attempt.  n is the 1-based
// number of the tag out of total.
type ProgressFunc func(n, total int, name string, st TagStatus)
