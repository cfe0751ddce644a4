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

// In this file: story operations.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/joshuauaua/storyblok-mcp-server/internal/client"
	"github.com/joshuauaua/storyblok-mcp-server/internal/primitive"
)

// ErrNoUpdateFields is returned by UpdateStory when there is nothing to
// update.  No request is made in this case.
var ErrNoUpdateFields = errors.New("no update fields or publish flag provided")

// StoryFilter is the set of the optional story list filters.  Nil fields are
// not sent.
type StoryFilter struct {
	Page             int             `json:"page,omitempty"`     // defaults to 1
	PerPage          int             `json:"per_page,omitempty"` // defaults to 25
	ContainComponent *string         `json:"contain_component,omitempty"`
	TextSearch       *string         `json:"text_search,omitempty"`
	SortBy           *string         `json:"sort_by,omitempty"`
	Pinned           *bool           `json:"pinned,omitempty"`
	ExcludingIDs     *string         `json:"excluding_ids,omitempty"`
	ByIDs            *string         `json:"by_ids,omitempty"`
	ByUUIDs          *string         `json:"by_uuids,omitempty"`
	WithTag          *string         `json:"with_tag,omitempty"`
	FolderOnly       *bool           `json:"folder_only,omitempty"`
	StoryOnly        *bool           `json:"story_only,omitempty"`
	WithParent       *int64          `json:"with_parent,omitempty"`
	StartsWith       *string         `json:"starts_with,omitempty"`
	InTrash          *bool           `json:"in_trash,omitempty"`
	Search           *string         `json:"search,omitempty"`
	FilterQuery      json.RawMessage `json:"filter_query,omitempty"` // string or object
	InRelease        *int64          `json:"in_release,omitempty"`
	IsPublished      *bool           `json:"is_published,omitempty"`
	BySlugs          *string         `json:"by_slugs,omitempty"`
	Mine             *bool           `json:"mine,omitempty"`
	ExcludingSlugs   *string         `json:"excluding_slugs,omitempty"`
	InWorkflowStages *string         `json:"in_workflow_stages,omitempty"`
	ByUUIDsOrdered   *string         `json:"by_uuids_ordered,omitempty"`
	WithSlug         *string         `json:"with_slug,omitempty"`
	WithSummary      *bool           `json:"with_summary,omitempty"`
	ScheduledAtGt    *string         `json:"scheduled_at_gt,omitempty"`
	ScheduledAtLt    *string         `json:"scheduled_at_lt,omitempty"`
	Favourite        *bool           `json:"favourite,omitempty"`
	ReferenceSearch  *string         `json:"reference_search,omitempty"`
}

func (f *StoryFilter) page() (page, perPage int) {
	page, perPage = f.Page, f.PerPage
	if page <= 0 {
		page = defPage
	}
	if perPage <= 0 {
		perPage = defPerPage
	}
	return
}

func (f *StoryFilter) query() (url.Values, error) {
	page, perPage := f.page()
	p := params{}
	p.setInt("page", &page)
	p.setInt("per_page", &perPage)
	p.setString("contain_component", f.ContainComponent)
	p.setString("text_search", f.TextSearch)
	p.setString("sort_by", f.SortBy)
	p.setBool("pinned", f.Pinned)
	p.setString("excluding_ids", f.ExcludingIDs)
	p.setString("by_ids", f.ByIDs)
	p.setString("by_uuids", f.ByUUIDs)
	p.setString("with_tag", f.WithTag)
	p.setBool("folder_only", f.FolderOnly)
	p.setBool("story_only", f.StoryOnly)
	p.setID("with_parent", f.WithParent)
	p.setString("starts_with", f.StartsWith)
	p.setBool("in_trash", f.InTrash)
	p.setString("search", f.Search)
	if err := p.setJSON("filter_query", f.FilterQuery); err != nil {
		return nil, err
	}
	p.setID("in_release", f.InRelease)
	p.setBool("is_published", f.IsPublished)
	p.setString("by_slugs", f.BySlugs)
	p.setBool("mine", f.Mine)
	p.setString("excluding_slugs", f.ExcludingSlugs)
	p.setString("in_workflow_stages", f.InWorkflowStages)
	p.setString("by_uuids_ordered", f.ByUUIDsOrdered)
	p.setString("with_slug", f.WithSlug)
	p.setBool("with_summary", f.WithSummary)
	p.setString("scheduled_at_gt", f.ScheduledAtGt)
	p.setString("scheduled_at_lt", f.ScheduledAtLt)
	p.setBool("favourite", f.Favourite)
	p.setString("reference_search", f.ReferenceSearch)
	return p.values(), nil
}

// StoryList is one page of stories.  Total is the number of stories in the
// page, not in the space.
type StoryList struct {
	Stories []map[string]any `json:"stories"`
	Total   int              `json:"total"`
	Page    int              `json:"page"`
	PerPage int              `json:"per_page"`
}

// FetchStories returns one page of stories that match the filter.
func (s *Session) FetchStories(ctx context.Context, f StoryFilter) (*StoryList, error) {
	q, err := f.query()
	if err != nil {
		return nil, fmt.Errorf("invalid filter: %w", err)
	}
	var resp struct {
		Stories []map[string]any `json:"stories"`
	}
	if err := s.client.Get(ctx, "/stories", q, &resp); err != nil {
		return nil, err
	}
	if resp.Stories == nil {
		resp.Stories = []map[string]any{}
	}
	page, perPage := f.page()
	return &StoryList{
		Stories: resp.Stories,
		Total:   len(resp.Stories),
		Page:    page,
		PerPage: perPage,
	}, nil
}

// GetStory returns the story response as is.
func (s *Session) GetStory(ctx context.Context, id int64) (map[string]any, error) {
	return s.object(ctx, client.Request{Method: http.MethodGet, Path: storyPath(id)})
}

// NewStory is the story creation payload.
type NewStory struct {
	Name                      string           `json:"name"`
	Slug                      string           `json:"slug"`
	Content                   map[string]any   `json:"content"`
	ParentID                  *int64           `json:"parent_id,omitempty"`
	GroupID                   *string          `json:"group_id,omitempty"`
	SortByDate                *string          `json:"sort_by_date,omitempty"`
	IsFolder                  bool             `json:"is_folder"`
	DefaultRoot               *string          `json:"default_root,omitempty"`
	DisableFEEditor           *bool            `json:"disable_fe_editor,omitempty"`
	IsStartpage               bool             `json:"is_startpage"`
	MetaData                  map[string]any   `json:"meta_data,omitempty"`
	Pinned                    *bool            `json:"pinned,omitempty"`
	TranslatedSlugsAttributes []map[string]any `json:"translated_slugs_attributes,omitempty"`
	Position                  *int             `json:"position,omitempty"`
	ReleaseID                 *int64           `json:"release_id,omitempty"`

	// Publish publishes the story right after creation.
	Publish bool `json:"-"`
}

type storyRequest[T any] struct {
	Story       T   `json:"story"`
	ForceUpdate int `json:"force_update,omitempty"`
	Publish     int `json:"publish,omitempty"`
}

// CreateStory creates a new story.
func (s *Session) CreateStory(ctx context.Context, ns NewStory) (map[string]any, error) {
	body := storyRequest[NewStory]{Story: ns}
	if ns.Publish {
		body.Publish = 1
	}
	return s.object(ctx, client.Request{Method: http.MethodPost, Path: "/stories", Body: body})
}

// StoryUpdate is the story update payload.  Nil fields are not sent.
type StoryUpdate struct {
	Name                      *string          `json:"name,omitempty"`
	Slug                      *string          `json:"slug,omitempty"`
	Content                   map[string]any   `json:"content,omitempty"`
	ParentID                  *int64           `json:"parent_id,omitempty"`
	GroupID                   *string          `json:"group_id,omitempty"`
	SortByDate                *string          `json:"sort_by_date,omitempty"`
	TagList                   *[]string        `json:"tag_list,omitempty"`
	IsFolder                  *bool            `json:"is_folder,omitempty"`
	Path                      *string          `json:"path,omitempty"`
	DefaultRoot               *string          `json:"default_root,omitempty"`
	DisableFEEditor           *bool            `json:"disable_fe_editor,omitempty"`
	IsStartpage               *bool            `json:"is_startpage,omitempty"`
	MetaData                  map[string]any   `json:"meta_data,omitempty"`
	Pinned                    *bool            `json:"pinned,omitempty"`
	FirstPublishedAt          *string          `json:"first_published_at,omitempty"`
	TranslatedSlugsAttributes []map[string]any `json:"translated_slugs_attributes,omitempty"`
	Position                  *int             `json:"position,omitempty"`
	ReleaseID                 *int64           `json:"release_id,omitempty"`
	Lang                      *string          `json:"lang,omitempty"`

	ForceUpdate bool `json:"-"`
	Publish     bool `json:"-"`
}

// empty returns true if there is neither a name, a slug, content nor the
// publish flag.
func (u *StoryUpdate) empty() bool {
	return primitive.ValueOr(u.Name, "") == "" && primitive.ValueOr(u.Slug, "") == "" && len(u.Content) == 0 && !u.Publish
}

// UpdateStory updates the story id.  It returns ErrNoUpdateFields without
// calling the API if the update is empty.
func (s *Session) UpdateStory(ctx context.Context, id int64, u StoryUpdate) (map[string]any, error) {
	if u.empty() {
		return nil, ErrNoUpdateFields
	}
	body := storyRequest[StoryUpdate]{Story: u}
	if u.ForceUpdate {
		body.ForceUpdate = 1
	}
	if u.Publish {
		body.Publish = 1
	}
	return s.object(ctx, client.Request{Method: http.MethodPut, Path: storyPath(id), Body: body})
}

// Message is a plain confirmation.
type Message struct {
	Message string `json:"message"`
}

// DeleteStory deletes the story id.
func (s *Session) DeleteStory(ctx context.Context, id int64) (*Message, error) {
	if err := s.client.Delete(ctx, storyPath(id), nil); err != nil {
		return nil, err
	}
	return &Message{Message: fmt.Sprintf("Story %d has been successfully deleted.", id)}, nil
}

// PublishStory publishes the story.  Empty lang and nil releaseID are not
// sent.
func (s *Session) PublishStory(ctx context.Context, id int64, lang string, releaseID *int64) (map[string]any, error) {
	p := params{}
	if lang != "" {
		p.setString("lang", &lang)
	}
	p.setID("release_id", releaseID)
	return s.object(ctx, client.Request{Method: http.MethodGet, Path: storyPath(id) + "/publish", Query: p.values()})
}

// UnpublishStory unpublishes the story.
func (s *Session) UnpublishStory(ctx context.Context, id int64, lang string) (map[string]any, error) {
	p := params{}
	if lang != "" {
		p.setString("lang", &lang)
	}
	return s.object(ctx, client.Request{Method: http.MethodGet, Path: storyPath(id) + "/unpublish", Query: p.values()})
}

// VersionFilter selects the story versions.
type VersionFilter struct {
	StoryID     int64  `json:"by_story_id"`
	VersionID   *int64 `json:"version_id,omitempty"`
	ReleaseID   *int64 `json:"by_release_id,omitempty"`
	Page        int    `json:"page,omitempty"`
	PerPage     int    `json:"per_page,omitempty"` // capped at 100
	ShowContent bool   `json:"show_content,omitempty"`
}

// VersionList is one page of story versions.  Total is nil if the API
// did not report it.
type VersionList struct {
	Versions []map[string]any `json:"versions"`
	Page     int              `json:"page"`
	PerPage  int              `json:"per_page"`
	Total    *int             `json:"total"`
}

// StoryVersions lists the versions of a story.
func (s *Session) StoryVersions(ctx context.Context, f VersionFilter) (*VersionList, error) {
	page, perPage := f.Page, f.PerPage
	if page <= 0 {
		page = defPage
	}
	if perPage <= 0 {
		perPage = defPerPage
	}
	perPage = min(perPage, maxVersionsPerPage)

	p := params{}
	p.setID("by_story_id", &f.StoryID)
	p.setInt("page", &page)
	p.setInt("per_page", &perPage)
	p.setID("version_id", f.VersionID)
	p.setID("by_release_id", f.ReleaseID)
	if f.ShowContent {
		p.setBool("show_content", &f.ShowContent)
	}

	var resp struct {
		StoryVersions []map[string]any `json:"story_versions"`
		Total         *int             `json:"total"`
	}
	if err := s.client.Get(ctx, "/story_versions", p.values(), &resp); err != nil {
		return nil, err
	}
	if resp.StoryVersions == nil {
		resp.StoryVersions = []map[string]any{}
	}
	return &VersionList{
		Versions: resp.StoryVersions,
		Page:     page,
		PerPage:  perPage,
		Total:    resp.Total,
	}, nil
}

// RestoreStory restores the story to the version versionID.
func (s *Session) RestoreStory(ctx context.Context, id, versionID int64) (map[string]any, error) {
	path := storyPath(id) + "/restore/" + strconv.FormatInt(versionID, 10)
	return s.object(ctx, client.Request{Method: http.MethodPost, Path: path})
}

// CompareStoryVersions compares the current story with the version
// versionV2.  The comparison is returned as decoded by encoding/json, the
// API responds with a list of changes.
func (s *Session) CompareStoryVersions(ctx context.Context, id, versionV2 int64) (any, error) {
	p := params{}
	p.setID("version_v2", &versionV2)
	var out any
	if err := s.client.Get(ctx, storyPath(id)+"/compare", p.values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TranslateRequest is the AI translation request.  If SpaceID is empty, the
// session space is used.
type TranslateRequest struct {
	SpaceID   string `json:"space_id,omitempty"`
	StoryID   int64  `json:"story_id"`
	Lang      string `json:"lang"`
	Code      string `json:"code"`
	Overwrite bool   `json:"overwrite,omitempty"`
	ReleaseID *int64 `json:"release_id,omitempty"`
}

type translateBody struct {
	Lang      string `json:"lang"`
	Code      string `json:"code"`
	Overwrite bool   `json:"overwrite"`
	ReleaseID int64  `json:"release_id,omitempty"`
}

// AITranslateStory translates the story content into the language lang.
func (s *Session) AITranslateStory(ctx context.Context, r TranslateRequest) (map[string]any, error) {
	space := r.SpaceID
	if space == "" {
		space = s.SpaceID()
	}
	body := translateBody{
		Lang:      r.Lang,
		Code:      r.Code,
		Overwrite: r.Overwrite,
		ReleaseID: primitive.ValueOr(r.ReleaseID, 0),
	}
	path := fmt.Sprintf("/spaces/%s/stories/%d/ai_translate", space, r.StoryID)
	return s.object(ctx, client.Request{Method: http.MethodPut, Path: path, Body: body})
}

type dependenciesBody struct {
	StoryIDs  []int64 `json:"story_ids"`
	ReleaseID *int64  `json:"release_id,omitempty"`
}

// UnpublishedDependencies returns the unpublished dependencies of the
// stories ids.
func (s *Session) UnpublishedDependencies(ctx context.Context, ids []int64, releaseID *int64) (map[string]any, error) {
	if ids == nil {
		ids = []int64{}
	}
	body := dependenciesBody{StoryIDs: ids, ReleaseID: releaseID}
	return s.object(ctx, client.Request{Method: http.MethodPost, Path: "/stories/unpublished_dependencies", Body: body})
}

// object executes the request and returns the decoded JSON object.
func (s *Session) object(ctx context.Context, r client.Request) (map[string]any, error) {
	var out map[string]any
	if err := s.client.Do(ctx, r, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func storyPath(id int64) string {
	return "/stories/" + strconv.FormatInt(id, 10)
}

