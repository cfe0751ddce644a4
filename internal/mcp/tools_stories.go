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

package mcp

// In this file: story tool definitions and handler implementations.

import (
	"context"
	"strconv"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"

	"github.com/joshuauaua/storyblok-mcp-server"
)

// ─── fetch_stories ────────────────────────────────────────────────────────────

// storyFilterStrings and storyFilterBools are the optional fetch_stories
// filters, in the order they are listed to the agent.
var (
	storyFilterStrings = [][2]string{
		{"contain_component", "Only stories that contain the component with this name."},
		{"text_search", "Full text search in the story content."},
		{"sort_by", "Sort field and order, e.g. created_at:desc."},
		{"excluding_ids", "Comma separated story ids to exclude."},
		{"by_ids", "Comma separated story ids to include."},
		{"by_uuids", "Comma separated story uuids to include."},
		{"with_tag", "Comma separated tags, stories with any of them are returned."},
		{"starts_with", "Only stories whose full slug starts with this value."},
		{"search", "Search by name, slug or full slug."},
		{"by_slugs", "Comma separated full slugs, wildcards allowed."},
		{"excluding_slugs", "Comma separated full slugs to exclude."},
		{"in_workflow_stages", "Comma separated workflow stage ids."},
		{"by_uuids_ordered", "Comma separated uuids, results keep this order."},
		{"with_slug", "Exact full slug."},
		{"scheduled_at_gt", "Scheduled for publishing after this time."},
		{"scheduled_at_lt", "Scheduled for publishing before this time."},
		{"reference_search", "Search stories that reference this value."},
	}
	storyFilterBools = [][2]string{
		{"pinned", "Only pinned stories."},
		{"folder_only", "Only folders."},
		{"story_only", "Only stories, no folders."},
		{"in_trash", "Only deleted stories in the trash."},
		{"is_published", "Only published (true) or unpublished (false) stories."},
		{"mine", "Only stories of the token owner."},
		{"with_summary", "Include the story summary."},
		{"favourite", "Only favourite stories."},
	}
)

func (s *Server) toolFetchStories() mcpsrv.ServerTool {
	opts := []mcplib.ToolOption{
		mcplib.WithDescription(`List the stories of the space, one page at a time.

Returns {"stories": [...], "total": N, "page": P, "per_page": PP} where total
is the number of stories on the returned page.  Unset filters are not sent.`),
		mcplib.WithReadOnlyHintAnnotation(true),
		mcplib.WithNumber("page", mcplib.Description("Page number, starting at 1 (default 1).")),
		mcplib.WithNumber("per_page", mcplib.Description("Stories per page (default 25).")),
		mcplib.WithNumber("with_parent", mcplib.Description("Only stories in the folder with this id.")),
		mcplib.WithNumber("in_release", mcplib.Description("Only stories in the release with this id.")),
		mcplib.WithObject("filter_query", mcplib.Description(`Field filter, e.g. {"component": {"in": "page"}}.  A JSON string is accepted too.`)),
	}
	for _, f := range storyFilterStrings {
		opts = append(opts, mcplib.WithString(f[0], mcplib.Description(f[1])))
	}
	for _, f := range storyFilterBools {
		opts = append(opts, mcplib.WithBoolean(f[0], mcplib.Description(f[1])))
	}
	return mcpsrv.ServerTool{
		Tool:    mcplib.NewTool("fetch_stories", opts...),
		Handler: s.handleFetchStories,
	}
}

func (s *Server) handleFetchStories(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	var f storyblok.StoryFilter
	if err := bindArgs(req, &f); err != nil {
		return argErr("fetch_stories", err)
	}
	list, err := s.sb.FetchStories(ctx, f)
	return resultOf("fetch_stories", list, err)
}

// ─── get_story ────────────────────────────────────────────────────────────────

func (s *Server) toolGetStory() mcpsrv.ServerTool {
	tool := mcplib.NewTool("get_story",
		mcplib.WithDescription("Get a single story by its numeric id, including its content."),
		mcplib.WithReadOnlyHintAnnotation(true),
		mcplib.WithNumber("story_id", mcplib.Description("Story id."), mcplib.Required()),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleGetStory}
}

func (s *Server) handleGetStory(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	id, err := idArg(req, "story_id")
	if err != nil {
		return argErr("get_story", err)
	}
	story, err := s.sb.GetStory(ctx, id)
	return resultOf("get_story", story, err)
}

// ─── create_story ─────────────────────────────────────────────────────────────

func (s *Server) toolCreateStory() mcpsrv.ServerTool {
	tool := mcplib.NewTool("create_story",
		mcplib.WithDescription(`Create a new story.  The content object must contain the "component"
key naming the content type.  Set publish to publish the story immediately.`),
		mcplib.WithString("name", mcplib.Description("Story name."), mcplib.Required()),
		mcplib.WithString("slug", mcplib.Description("Story slug."), mcplib.Required()),
		mcplib.WithObject("content", mcplib.Description("Story content."), mcplib.Required()),
		mcplib.WithNumber("parent_id", mcplib.Description("Id of the parent folder.")),
		mcplib.WithString("group_id", mcplib.Description("Group uuid linking the story translations.")),
		mcplib.WithString("sort_by_date", mcplib.Description("Date used for sorting (YYYY-MM-DD).")),
		mcplib.WithBoolean("is_folder", mcplib.Description("Create a folder instead of a story.")),
		mcplib.WithString("default_root", mcplib.Description("Default content type of a folder.")),
		mcplib.WithBoolean("disable_fe_editor", mcplib.Description("Disable the visual editor.")),
		mcplib.WithBoolean("is_startpage", mcplib.Description("Make the story the folder start page.")),
		mcplib.WithObject("meta_data", mcplib.Description("Story meta data.")),
		mcplib.WithBoolean("pinned", mcplib.Description("Pin the story.")),
		mcplib.WithArray("translated_slugs_attributes", mcplib.Description("Translated slugs, objects with lang, slug and name.")),
		mcplib.WithNumber("position", mcplib.Description("Position in the folder.")),
		mcplib.WithNumber("release_id", mcplib.Description("Release to create the story in.")),
		mcplib.WithBoolean("publish", mcplib.Description("Publish the story after creation.")),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleCreateStory}
}

func (s *Server) handleCreateStory(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	var ns storyblok.NewStory
	if err := bindArgs(req, &ns); err != nil {
		return argErr("create_story", err)
	}
	switch {
	case ns.Name == "":
		return argErr("create_story", errMissingArg("name"))
	case ns.Slug == "":
		return argErr("create_story", errMissingArg("slug"))
	case ns.Content == nil:
		return argErr("create_story", errMissingArg("content"))
	}
	ns.Publish = flagArg(req, "publish")
	story, err := s.sb.CreateStory(ctx, ns)
	return resultOf("create_story", story, err)
}

// ─── update_story ─────────────────────────────────────────────────────────────

func (s *Server) toolUpdateStory() mcpsrv.ServerTool {
	tool := mcplib.NewTool("update_story",
		mcplib.WithDescription(`Update an existing story.  Only the given fields are sent.  At least one
of name, slug, content or publish must be given.  The content object replaces
the whole story content.`),
		mcplib.WithNumber("story_id", mcplib.Description("Story id."), mcplib.Required()),
		mcplib.WithString("name", mcplib.Description("New name.")),
		mcplib.WithString("slug", mcplib.Description("New slug.")),
		mcplib.WithObject("content", mcplib.Description("New content.")),
		mcplib.WithNumber("parent_id", mcplib.Description("Id of the new parent folder.")),
		mcplib.WithString("group_id", mcplib.Description("Group uuid.")),
		mcplib.WithString("sort_by_date", mcplib.Description("Date used for sorting.")),
		mcplib.WithArray("tag_list", mcplib.Description("Story tags."), mcplib.WithStringItems()),
		mcplib.WithBoolean("is_folder", mcplib.Description("Folder flag.")),
		mcplib.WithString("path", mcplib.Description("Real path for the visual editor.")),
		mcplib.WithString("default_root", mcplib.Description("Default content type of a folder.")),
		mcplib.WithBoolean("disable_fe_editor", mcplib.Description("Disable the visual editor.")),
		mcplib.WithBoolean("is_startpage", mcplib.Description("Start page flag.")),
		mcplib.WithObject("meta_data", mcplib.Description("Story meta data.")),
		mcplib.WithBoolean("pinned", mcplib.Description("Pin the story.")),
		mcplib.WithString("first_published_at", mcplib.Description("First publishing date.")),
		mcplib.WithArray("translated_slugs_attributes", mcplib.Description("Translated slugs.")),
		mcplib.WithNumber("position", mcplib.Description("Position in the folder.")),
		mcplib.WithBoolean("force_update", mcplib.Description("Overwrite a story locked by another user.")),
		mcplib.WithNumber("release_id", mcplib.Description("Release to update the story in.")),
		mcplib.WithBoolean("publish", mcplib.Description("Publish the story after the update.")),
		mcplib.WithString("lang", mcplib.Description("Language code to publish.")),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleUpdateStory}
}

func (s *Server) handleUpdateStory(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	id, err := idArg(req, "story_id")
	if err != nil {
		return argErr("update_story", err)
	}
	var u storyblok.StoryUpdate
	if err := bindArgs(req, &u); err != nil {
		return argErr("update_story", err)
	}
	u.ForceUpdate = flagArg(req, "force_update")
	u.Publish = flagArg(req, "publish")
	story, err := s.sb.UpdateStory(ctx, id, u)
	return resultOf("update_story", story, err)
}

// flagArg returns true if the named argument is true or a non-zero number.
func flagArg(req mcplib.CallToolRequest, name string) bool {
	v, ok := arg(req, name)
	if !ok {
		return false
	}
	switch f := v.(type) {
	case bool:
		return f
	case float64:
		return f != 0
	case int:
		return f != 0
	}
	return false
}

// ─── delete_story ─────────────────────────────────────────────────────────────

func (s *Server) toolDeleteStory() mcpsrv.ServerTool {
	tool := mcplib.NewTool("delete_story",
		mcplib.WithDescription("Delete a story.  The story is moved to the trash."),
		mcplib.WithDestructiveHintAnnotation(true),
		mcplib.WithNumber("id", mcplib.Description("Story id."), mcplib.Required()),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleDeleteStory}
}

func (s *Server) handleDeleteStory(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	id, err := idArg(req, "id")
	if err != nil {
		return argErr("delete_story", err)
	}
	msg, err := s.sb.DeleteStory(ctx, id)
	return resultOf("delete_story", msg, err)
}

// ─── publish_story / unpublish_story ──────────────────────────────────────────

func (s *Server) toolPublishStory() mcpsrv.ServerTool {
	tool := mcplib.NewTool("publish_story",
		mcplib.WithDescription("Publish a story, optionally a single language or within a release."),
		mcplib.WithNumber("story_id", mcplib.Description("Story id."), mcplib.Required()),
		mcplib.WithString("lang", mcplib.Description("Language code to publish.")),
		mcplib.WithNumber("release_id", mcplib.Description("Release id.")),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handlePublishStory}
}

func (s *Server) handlePublishStory(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	id, err := idArg(req, "story_id")
	if err != nil {
		return argErr("publish_story", err)
	}
	releaseID, err := optIDArg(req, "release_id")
	if err != nil {
		return argErr("publish_story", err)
	}
	lang, _ := stringArg(req, "lang")
	story, err := s.sb.PublishStory(ctx, id, lang, releaseID)
	return resultOf("publish_story", story, err)
}

func (s *Server) toolUnpublishStory() mcpsrv.ServerTool {
	tool := mcplib.NewTool("unpublish_story",
		mcplib.WithDescription("Unpublish a story, optionally a single language."),
		mcplib.WithNumber("story_id", mcplib.Description("Story id."), mcplib.Required()),
		mcplib.WithString("lang", mcplib.Description("Language code to unpublish.")),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleUnpublishStory}
}

func (s *Server) handleUnpublishStory(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	id, err := idArg(req, "story_id")
	if err != nil {
		return argErr("unpublish_story", err)
	}
	lang, _ := stringArg(req, "lang")
	story, err := s.sb.UnpublishStory(ctx, id, lang)
	return resultOf("unpublish_story", story, err)
}

// ─── versions ─────────────────────────────────────────────────────────────────

func (s *Server) toolGetStoryVersions() mcpsrv.ServerTool {
	tool := mcplib.NewTool("get_story_versions",
		mcplib.WithDescription(`List the versions of a story.  Returns {"versions": [...], "page": P,
"per_page": PP, "total": N}.  per_page is capped at 100.`),
		mcplib.WithReadOnlyHintAnnotation(true),
		mcplib.WithNumber("by_story_id", mcplib.Description("Story id."), mcplib.Required()),
		mcplib.WithNumber("version_id", mcplib.Description("Return this version only.")),
		mcplib.WithNumber("by_release_id", mcplib.Description("Only versions of this release.")),
		mcplib.WithNumber("page", mcplib.Description("Page number (default 1).")),
		mcplib.WithNumber("per_page", mcplib.Description("Versions per page (default 25, max 100).")),
		mcplib.WithBoolean("show_content", mcplib.Description("Include the version content.")),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleGetStoryVersions}
}

func (s *Server) handleGetStoryVersions(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	id, err := idArg(req, "by_story_id")
	if err != nil {
		return argErr("get_story_versions", err)
	}
	f := storyblok.VersionFilter{
		StoryID:     id,
		Page:        intArg(req, "page", 0),
		PerPage:     intArg(req, "per_page", 0),
		ShowContent: boolArg(req, "show_content", false),
	}
	if f.VersionID, err = optIDArg(req, "version_id"); err != nil {
		return argErr("get_story_versions", err)
	}
	if f.ReleaseID, err = optIDArg(req, "by_release_id"); err != nil {
		return argErr("get_story_versions", err)
	}
	list, err := s.sb.StoryVersions(ctx, f)
	return resultOf("get_story_versions", list, err)
}

func (s *Server) toolRestoreStory() mcpsrv.ServerTool {
	tool := mcplib.NewTool("restore_story",
		mcplib.WithDescription("Restore a story to one of its previous versions."),
		mcplib.WithNumber("id", mcplib.Description("Story id."), mcplib.Required()),
		mcplib.WithNumber("version_id", mcplib.Description("Version id to restore."), mcplib.Required()),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleRestoreStory}
}

func (s *Server) handleRestoreStory(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	id, err := idArg(req, "id")
	if err != nil {
		return argErr("restore_story", err)
	}
	vid, err := idArg(req, "version_id")
	if err != nil {
		return argErr("restore_story", err)
	}
	story, err := s.sb.RestoreStory(ctx, id, vid)
	return resultOf("restore_story", story, err)
}

func (s *Server) toolCompareStoryVersions() mcpsrv.ServerTool {
	tool := mcplib.NewTool("compare_story_versions",
		mcplib.WithDescription("Compare the current story with one of its versions."),
		mcplib.WithReadOnlyHintAnnotation(true),
		mcplib.WithNumber("story_id", mcplib.Description("Story id."), mcplib.Required()),
		mcplib.WithNumber("version_v2", mcplib.Description("Version id to compare with."), mcplib.Required()),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleCompareStoryVersions}
}

func (s *Server) handleCompareStoryVersions(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	id, err := idArg(req, "story_id")
	if err != nil {
		return argErr("compare_story_versions", err)
	}
	v2, err := idArg(req, "version_v2")
	if err != nil {
		return argErr("compare_story_versions", err)
	}
	diff, err := s.sb.CompareStoryVersions(ctx, id, v2)
	return resultOf("compare_story_versions", diff, err)
}

// ─── validate_story_content ───────────────────────────────────────────────────

func (s *Server) toolValidateStoryContent() mcpsrv.ServerTool {
	tool := mcplib.NewTool("validate_story_content",
		mcplib.WithDescription(`Validate story content against the schema of a component.

Reports required fields that are missing and fields that are not in the
schema.  Field values are not type checked.  Give either story_content, or
story_id to validate the content of an existing story.`),
		mcplib.WithReadOnlyHintAnnotation(true),
		mcplib.WithString("component_name", mcplib.Description("Component name."), mcplib.Required()),
		mcplib.WithNumber("story_id", mcplib.Description("Story whose content is validated.")),
		mcplib.WithObject("story_content", mcplib.Description("Content to validate.")),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleValidateStoryContent}
}

func (s *Server) handleValidateStoryContent(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	name, ok := stringArg(req, "component_name")
	if !ok || name == "" {
		return argErr("validate_story_content", errMissingArg("component_name"))
	}
	id, err := optIDArg(req, "story_id")
	if err != nil {
		return argErr("validate_story_content", err)
	}
	content, _ := objectArg(req, "story_content")
	res, err := s.sb.ValidateStoryContent(ctx, name, id, content)
	return resultOf("validate_story_content", res, err)
}

// ─── debug_story_access ───────────────────────────────────────────────────────

func (s *Server) toolDebugStoryAccess() mcpsrv.ServerTool {
	tool := mcplib.NewTool("debug_story_access",
		mcplib.WithDescription(`Diagnose why a story can not be retrieved.

Requests the story with several parameter combinations (default, published,
draft, with content) and reports which of them succeed, the issues detected
and suggestions.  Nothing is changed.`),
		mcplib.WithReadOnlyHintAnnotation(true),
		mcplib.WithNumber("story_id", mcplib.Description("Story id."), mcplib.Required()),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleDebugStoryAccess}
}

func (s *Server) handleDebugStoryAccess(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	id, err := idArg(req, "story_id")
	if err != nil {
		return argErr("debug_story_access", err)
	}
	rep, err := s.sb.DebugStoryAccess(ctx, id)
	return resultOf("debug_story_access", rep, err)
}

// ─── get_unpublished_dependencies ─────────────────────────────────────────────

func (s *Server) toolGetUnpublishedDependencies() mcpsrv.ServerTool {
	tool := mcplib.NewTool("get_unpublished_dependencies",
		mcplib.WithDescription("List the unpublished stories and assets that the given stories depend on."),
		mcplib.WithReadOnlyHintAnnotation(true),
		mcplib.WithArray("story_ids", mcplib.Description("Story ids."), mcplib.Required(), mcplib.WithNumberItems()),
		mcplib.WithNumber("release_id", mcplib.Description("Release id.")),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleGetUnpublishedDependencies}
}

func (s *Server) handleGetUnpublishedDependencies(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	ids, err := idsArg(req, "story_ids")
	if err != nil {
		return argErr("get_unpublished_dependencies", err)
	}
	releaseID, err := optIDArg(req, "release_id")
	if err != nil {
		return argErr("get_unpublished_dependencies", err)
	}
	deps, err := s.sb.UnpublishedDependencies(ctx, ids, releaseID)
	return resultOf("get_unpublished_dependencies", deps, err)
}

// ─── ai_translate_story ───────────────────────────────────────────────────────

func (s *Server) toolAITranslateStory() mcpsrv.ServerTool {
	tool := mcplib.NewTool("ai_translate_story",
		mcplib.WithDescription("Translate the story content into another language with Storyblok AI."),
		mcplib.WithNumber("space_id", mcplib.Description("Space id (default: the configured space).")),
		mcplib.WithNumber("story_id", mcplib.Description("Story id."), mcplib.Required()),
		mcplib.WithString("lang", mcplib.Description("Target language name, e.g. German."), mcplib.Required()),
		mcplib.WithString("code", mcplib.Description("Target language code, e.g. de."), mcplib.Required()),
		mcplib.WithBoolean("overwrite", mcplib.Description("Overwrite existing translations.")),
		mcplib.WithNumber("release_id", mcplib.Description("Release id.")),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleAITranslateStory}
}

func (s *Server) handleAITranslateStory(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	var (
		r   storyblok.TranslateRequest
		err error
		ok  bool
	)
	if r.StoryID, err = idArg(req, "story_id"); err != nil {
		return argErr("ai_translate_story", err)
	}
	space, err := optIDArg(req, "space_id")
	if err != nil {
		return argErr("ai_translate_story", err)
	}
	if space != nil {
		r.SpaceID = strconv.FormatInt(*space, 10)
	}
	if r.Lang, ok = stringArg(req, "lang"); !ok || r.Lang == "" {
		return argErr("ai_translate_story", errMissingArg("lang"))
	}
	if r.Code, ok = stringArg(req, "code"); !ok || r.Code == "" {
		return argErr("ai_translate_story", errMissingArg("code"))
	}
	r.Overwrite = boolArg(req, "overwrite", false)
	if r.ReleaseID, err = optIDArg(req, "release_id"); err != nil {
		return argErr("ai_translate_story", err)
	}
	res, err := s.sb.AITranslateStory(ctx, r)
	return resultOf("ai_translate_story", res, err)
}
