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

// In this file: tag, component and datasource tools.

import (
	"context"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"

	"github.com/joshuauaua/storyblok-mcp-server"
)

// ─── fetch_tags ───────────────────────────────────────────────────────────────

func (s *Server) toolFetchTags() mcpsrv.ServerTool {
	tool := mcplib.NewTool("fetch_tags",
		mcplib.WithDescription("List the tags of the space with the number of stories using each tag."),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleFetchTags}
}

func (s *Server) handleFetchTags(ctx context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	tags, err := s.sb.Tags(ctx)
	return resultOf("fetch_tags", tags, err)
}

// ─── sync_tags ────────────────────────────────────────────────────────────────

func (s *Server) toolSyncTags() mcpsrv.ServerTool {
	tool := mcplib.NewTool("sync_tags",
		mcplib.WithDescription(`Make sure that all the given tags exist in the space.

Only the tags that do not exist yet are created.  Requests are paced and
retried when the API is rate limited.  A tag that already exists is not an
error.`),
		mcplib.WithIdempotentHintAnnotation(true),
		mcplib.WithArray("tags", mcplib.Description("Tag names."), mcplib.Required(), mcplib.WithStringItems()),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleSyncTags}
}

func (s *Server) handleSyncTags(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	names, err := stringsArg(req, "tags")
	if err != nil {
		return argErr("sync_tags", err)
	}
	res, err := s.sb.SyncTags(ctx, names, func(n, total int, name string, st storyblok.TagStatus) {
		s.logger.DebugContext(ctx, "mcp: sync_tags", "n", n, "total", total, "tag", name, "status", st)
	})
	return resultOf("sync_tags", res, err)
}

// ─── fetch_components / get_component_schema ──────────────────────────────────

func (s *Server) toolFetchComponents() mcpsrv.ServerTool {
	tool := mcplib.NewTool("fetch_components",
		mcplib.WithDescription("List the components (content types and blocks) of the space with their schemas."),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleFetchComponents}
}

func (s *Server) handleFetchComponents(ctx context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	cc, err := s.sb.Components(ctx)
	return resultOf("fetch_components", cc, err)
}

func (s *Server) toolGetComponentSchema() mcpsrv.ServerTool {
	tool := mcplib.NewTool("get_component_schema",
		mcplib.WithDescription("Get the field schema of the component with the given name."),
		mcplib.WithReadOnlyHintAnnotation(true),
		mcplib.WithString("component_name", mcplib.Description("Component name."), mcplib.Required()),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleGetComponentSchema}
}

func (s *Server) handleGetComponentSchema(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	name, ok := stringArg(req, "component_name")
	if !ok || name == "" {
		return argErr("get_component_schema", errMissingArg("component_name"))
	}
	schema, err := s.sb.ComponentSchema(ctx, name)
	return resultOf("get_component_schema", schema, err)
}

// ─── fetch_datasources ────────────────────────────────────────────────────────

func (s *Server) toolFetchDatasources() mcpsrv.ServerTool {
	tool := mcplib.NewTool("fetch_datasources",
		mcplib.WithDescription(`List the datasources of the space with their entries.  If the entries of a
datasource can not be retrieved, its "error" field is set.`),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleFetchDatasources}
}

func (s *Server) handleFetchDatasources(ctx context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	dd, err := s.sb.InspectDatasources(ctx)
	return resultOf("fetch_datasources", dd, err)
}
