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

// In this file: bulk story tools.

import (
	"context"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"
)

const bulkResultDoc = `

Stories are processed one by one; a failed story does not stop the others.
Returns {"total_processed", "successful_operations", "failed_operations",
"results"}, with one result per input item in the input order.`

// ─── bulk_publish_stories ─────────────────────────────────────────────────────

func (s *Server) toolBulkPublishStories() mcpsrv.ServerTool {
	tool := mcplib.NewTool("bulk_publish_stories",
		mcplib.WithDescription("Publish several stories."+bulkResultDoc),
		mcplib.WithArray("story_ids", mcplib.Description("Story ids."), mcplib.Required(), mcplib.WithNumberItems()),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleBulkPublishStories}
}

func (s *Server) handleBulkPublishStories(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	ids, err := idsArg(req, "story_ids")
	if err != nil {
		return argErr("bulk_publish_stories", err)
	}
	res, err := s.sb.BulkPublish(ctx, ids)
	return resultOf("bulk_publish_stories", res, err)
}

// ─── bulk_delete_stories ──────────────────────────────────────────────────────

func (s *Server) toolBulkDeleteStories() mcpsrv.ServerTool {
	tool := mcplib.NewTool("bulk_delete_stories",
		mcplib.WithDescription("Delete several stories."+bulkResultDoc),
		mcplib.WithDestructiveHintAnnotation(true),
		mcplib.WithArray("story_ids", mcplib.Description("Story ids."), mcplib.Required(), mcplib.WithNumberItems()),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleBulkDeleteStories}
}

func (s *Server) handleBulkDeleteStories(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	ids, err := idsArg(req, "story_ids")
	if err != nil {
		return argErr("bulk_delete_stories", err)
	}
	res, err := s.sb.BulkDelete(ctx, ids)
	return resultOf("bulk_delete_stories", res, err)
}

// ─── bulk_update_stories ──────────────────────────────────────────────────────

func (s *Server) toolBulkUpdateStories() mcpsrv.ServerTool {
	tool := mcplib.NewTool("bulk_update_stories",
		mcplib.WithDescription(`Update several stories.  Each item is an object with the story "id", the
fields to update and an optional "publish" flag.  If the update succeeds and
only the publishing fails, the item is still successful with "published": false.`+bulkResultDoc),
		mcplib.WithArray("stories", mcplib.Description("Story updates."), mcplib.Required()),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleBulkUpdateStories}
}

func (s *Server) handleBulkUpdateStories(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	items, err := objectsArg(req, "stories")
	if err != nil {
		return argErr("bulk_update_stories", err)
	}
	res, err := s.sb.BulkUpdate(ctx, items)
	return resultOf("bulk_update_stories", res, err)
}

// ─── bulk_create_stories ──────────────────────────────────────────────────────

func (s *Server) toolBulkCreateStories() mcpsrv.ServerTool {
	tool := mcplib.NewTool("bulk_create_stories",
		mcplib.WithDescription(`Create several stories.  Each item is a story object as accepted by
create_story.`+bulkResultDoc),
		mcplib.WithArray("stories", mcplib.Description("Stories to create."), mcplib.Required()),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleBulkCreateStories}
}

func (s *Server) handleBulkCreateStories(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	items, err := objectsArg(req, "stories")
	if err != nil {
		return argErr("bulk_create_stories", err)
	}
	res, err := s.sb.BulkCreate(ctx, items)
	return resultOf("bulk_create_stories", res, err)
}
