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

// In this file: bulk story operations.

import (
	"context"
	"errors"
	"maps"
	"net/http"
	"strings"

	"github.com/joshuauaua/storyblok-mcp-server/internal/client"
)

// Bulk item status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

var errNoStoryID = errors.New("story id is missing")

// BulkItem is the outcome of one item of a bulk operation.
type BulkItem struct {
	Input     map[string]any `json:"input,omitempty"`
	ID        any            `json:"id,omitempty"`
	Slug      any            `json:"slug,omitempty"`
	Status    string         `json:"status"`
	Data      map[string]any `json:"data,omitempty"`
	Published *bool          `json:"published,omitempty"`
	Error     string         `json:"error,omitempty"`
}

// BulkResult aggregates the outcomes of a bulk operation.  Results follow the
// input order, and TotalProcessed is always the sum of successful and failed
// operations.
type BulkResult struct {
	TotalProcessed       int        `json:"total_processed"`
	SuccessfulOperations int        `json:"successful_operations"`
	FailedOperations     int        `json:"failed_operations"`
	Results              []BulkItem `json:"results"`
}

func newBulkResult(n int) *BulkResult {
	return &BulkResult{Results: make([]BulkItem, 0, n)}
}

func (r *BulkResult) success(item BulkItem) {
	item.Status = StatusSuccess
	item.Error = ""
	r.Results = append(r.Results, item)
	r.SuccessfulOperations++
	r.TotalProcessed++
}

func (r *BulkResult) fail(item BulkItem, err error) {
	item.Status = StatusError
	item.Error = err.Error()
	r.Results = append(r.Results, item)
	r.FailedOperations++
	r.TotalProcessed++
}

// bulk runs fn for each item sequentially.  The item errors are recorded in
// the result, the sweep stops only if ctx is cancelled, in which case the
// results accumulated so far are returned along with the context error.
func bulk[T any](ctx context.Context, items []T, fn func(context.Context, T, *BulkResult)) (*BulkResult, error) {
	res := newBulkResult(len(items))
	for _, it := range items {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		fn(ctx, it, res)
	}
	return res, nil
}

// BulkPublish publishes the stories ids.
func (s *Session) BulkPublish(ctx context.Context, ids []int64) (*BulkResult, error) {
	return bulk(ctx, ids, func(ctx context.Context, id int64, res *BulkResult) {
		data, err := s.PublishStory(ctx, id, "", nil)
		if err != nil {
			s.log.DebugContext(ctx, "bulk publish failed", "story_id", id, "error", err)
			res.fail(BulkItem{ID: id}, err)
			return
		}
		res.success(BulkItem{ID: id, Data: data})
	})
}

// BulkDelete deletes the stories ids.
func (s *Session) BulkDelete(ctx context.Context, ids []int64) (*BulkResult, error) {
	return bulk(ctx, ids, func(ctx context.Context, id int64, res *BulkResult) {
		if err := s.client.Delete(ctx, storyPath(id), nil); err != nil {
			s.log.DebugContext(ctx, "bulk delete failed", "story_id", id, "error", err)
			res.fail(BulkItem{ID: id}, err)
			return
		}
		res.success(BulkItem{ID: id})
	})
}

// BulkUpdate updates each story with the fields of its update object, which
// must carry the story "id".  If the object has a truthy "publish" key, the
// story is published after the update.  A failed publish does not fail the
// item, it is reported as "published": false.
func (s *Session) BulkUpdate(ctx context.Context, updates []map[string]any) (*BulkResult, error) {
	return bulk(ctx, updates, func(ctx context.Context, upd map[string]any, res *BulkResult) {
		fields := maps.Clone(upd)
		publish := truthy(fields["publish"])
		delete(fields, "publish")
		maps.DeleteFunc(fields, func(_ string, v any) bool { return v == nil })

		id := formatID(fields["id"])
		if id == "" {
			res.fail(BulkItem{}, errNoStoryID)
			return
		}
		var data map[string]any
		err := s.client.Do(ctx, client.Request{
			Method: http.MethodPut,
			Path:   "/stories/" + id,
			Body:   storyRequest[map[string]any]{Story: fields},
		}, &data)
		if err != nil {
			s.log.DebugContext(ctx, "bulk update failed", "story_id", id, "error", err)
			res.fail(BulkItem{ID: fields["id"]}, err)
			return
		}
		published := false
		if publish {
			if err := s.client.Get(ctx, "/stories/"+id+"/publish", nil, nil); err != nil {
				s.log.WarnContext(ctx, "story updated, but not published", "story_id", id, "error", err)
			} else {
				published = true
			}
		}
		res.success(BulkItem{ID: fields["id"], Data: data, Published: &published})
	})
}

// storyProbe is the part of the story response inspected locally.
type storyProbe struct {
	Story struct {
		ID          int64          `json:"id"`
		Name        string         `json:"name"`
		Slug        string         `json:"slug"`
		FullSlug    string         `json:"full_slug"`
		PublishedAt *string        `json:"published_at"`
		Version     any            `json:"version"`
		Content     map[string]any `json:"content"`
	} `json:"story"`
}

// BulkCreate creates a story from each input object.
func (s *Session) BulkCreate(ctx context.Context, stories []map[string]any) (*BulkResult, error) {
	return bulk(ctx, stories, func(ctx context.Context, in map[string]any, res *BulkResult) {
		resp, err := s.client.Send(ctx, client.Request{
			Method: http.MethodPost,
			Path:   "/stories",
			Body:   storyRequest[map[string]any]{Story: in},
		})
		if err != nil {
			s.log.DebugContext(ctx, "bulk create failed", "slug", in["slug"], "error", err)
			res.fail(BulkItem{Input: in, Slug: in["slug"]}, err)
			return
		}
		var (
			data  map[string]any
			probe storyProbe
		)
		if err := resp.Decode(&data); err != nil {
			res.fail(BulkItem{Input: in, Slug: in["slug"]}, err)
			return
		}
		if err := resp.Decode(&probe); err != nil {
			res.fail(BulkItem{Input: in, Slug: in["slug"]}, err)
			return
		}
		res.success(BulkItem{Input: in, ID: probe.Story.ID, Slug: probe.Story.Slug, Data: data})
	})
}

// truthy reports whether v is a true-ish JSON value.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0
	case int:
		return t != 0
	case int64:
		return t != 0
	case string:
		switch strings.ToLower(t) {
		case "", "0", "false", "no":
			return false
		}
		return true
	default:
		return true
	}
}
