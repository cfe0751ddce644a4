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

// In this file: MCP server construction and transport management.

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"
	"golang.org/x/sync/errgroup"
)

const (
	serverName    = "storyblok-mcp"
	serverVersion = "1.0.0"
)

// Transport selects how the MCP server communicates with its client.
type Transport string

const (
	// TransportStdio uses stdin/stdout for communication (default, suitable
	// for local agent integrations such as Claude Desktop).
	TransportStdio Transport = "stdio"
	// TransportHTTP uses Streamable HTTP transport (suitable for remote
	// agents or when multiple concurrent clients are needed).
	TransportHTTP Transport = "http"
)

// errNoSession is returned by tool handlers when the server has no
// Management API session.
var errNoSession = errors.New("no Storyblok session: set the management token and the space id")

// Server wraps an MCP server and the Storyblok space operations.
type Server struct {
	mcp    *mcpsrv.MCPServer
	sb     Storyblok
	logger *slog.Logger
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the logger.  nil falls back to slog.Default().
func WithLogger(lg *slog.Logger) Option {
	return func(s *Server) {
		if lg != nil {
			s.logger = lg
		}
	}
}

// New creates a new MCP server backed by sb.  The server is populated with
// all available tools but does not start listening until one of the Serve*
// methods is called.
func New(sb Storyblok, opts ...Option) *Server {
	s := &Server{
		sb:     sb,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	mcpServer := mcpsrv.NewMCPServer(
		serverName,
		serverVersion,
		mcpsrv.WithInstructions(instructions(sb)),
	)
	for _, t := range s.tools() {
		mcpServer.AddTool(t.Tool, t.Handler)
	}

	s.mcp = mcpServer
	return s
}

// instructions returns the server instructions that describe the space to
// the connecting agent.
func instructions(sb Storyblok) string {
	space := "(not configured)"
	if sb != nil {
		space = sb.SpaceID()
	}
	return fmt.Sprintf(`You are connected to a Storyblok Management API MCP server.

All tools operate on the Storyblok space %s.

Available tools allow you to:
- List, read, create, update, delete, publish and unpublish stories
- Work with story versions, AI translations and unpublished dependencies
- Run bulk operations over several stories; these report per item results
- Validate story content against a component schema
- Diagnose why a story is not accessible
- List and sync tags, list components, inspect datasources

Story identifiers are numeric.  Failed calls return an error result with the
API status code and response text.
`, space)
}

// ServeStdio runs the MCP server over stdin/stdout until ctx is cancelled.
// This is the standard transport used by local agent integrations.
func (s *Server) ServeStdio(ctx context.Context) error {
	srv := mcpsrv.NewStdioServer(s.mcp)
	s.logger.InfoContext(ctx, "mcp server listening on stdio")
	if err := srv.Listen(ctx, os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
			return nil
		}
		return fmt.Errorf("mcp stdio server error: %w", err)
	}
	return nil
}

// ServeHTTP runs the MCP server as a Streamable HTTP server on addr until
// ctx is cancelled.  addr should be a host:port string such as "127.0.0.1:8483".
func (s *Server) ServeHTTP(ctx context.Context, addr string) error {
	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.logger.InfoContext(ctx, "mcp server listening on http", "addr", addr, "endpoint", endpointPath)

	eg, gctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("mcp http server error: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		<-gctx.Done()
		s.logger.InfoContext(ctx, "mcp server shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpSrv.Shutdown(sctx); err != nil {
			return fmt.Errorf("mcp http server shutdown error: %w", err)
		}
		return nil
	})
	return eg.Wait()
}

const (
	endpointPath    = "/mcp"
	shutdownTimeout = 5 * time.Second
)

// Handler returns the HTTP handler that serves the Streamable HTTP
// transport on /mcp and the health check on /healthcheck.
func (s *Server) Handler() http.Handler {
	streamSrv := mcpsrv.NewStreamableHTTPServer(s.mcp,
		mcpsrv.WithEndpointPath(endpointPath),
	)

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer)
	r.Get("/healthcheck", healthcheck)
	r.Group(func(r chi.Router) {
		r.Use(middleware.Logger)
		r.Handle(endpointPath, streamSrv)
	})
	return r
}

func healthcheck(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "ok\n")
}

// tools returns all MCP tools that this server exposes.
func (s *Server) tools() []mcpsrv.ServerTool {
	tt := []mcpsrv.ServerTool{
		// stories
		s.toolFetchStories(),
		s.toolGetStory(),
		s.toolCreateStory(),
		s.toolUpdateStory(),
		s.toolDeleteStory(),
		s.toolPublishStory(),
		s.toolUnpublishStory(),
		s.toolGetStoryVersions(),
		s.toolRestoreStory(),
		s.toolValidateStoryContent(),
		s.toolDebugStoryAccess(),
		s.toolGetUnpublishedDependencies(),
		s.toolAITranslateStory(),
		s.toolCompareStoryVersions(),
		// bulk
		s.toolBulkPublishStories(),
		s.toolBulkDeleteStories(),
		s.toolBulkUpdateStories(),
		s.toolBulkCreateStories(),
		// space
		s.toolFetchTags(),
		s.toolSyncTags(),
		s.toolFetchComponents(),
		s.toolGetComponentSchema(),
		s.toolFetchDatasources(),
	}
	for i := range tt {
		tt[i].Handler = s.guard(tt[i].Tool.Name, tt[i].Handler)
	}
	return tt
}

// guard returns the error result when there is no session, and logs the
// tool failures.
func (s *Server) guard(name string, h mcpsrv.ToolHandlerFunc) mcpsrv.ToolHandlerFunc {
	return func(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		if s.sb == nil {
			return resultErr(errNoSession), nil
		}
		s.logger.DebugContext(ctx, "mcp: tool call", "tool", name)
		res, err := h(ctx, req)
		if res != nil && res.IsError {
			s.logger.WarnContext(ctx, "mcp: tool failed", "tool", name, "error", resultMessage(res))
		}
		return res, err
	}
}

// AddTool adds an additional tool to the MCP server.  This can be called after
// New but before serving starts.  It is intended for CLI-layer tools that have
// access to internal CLI packages (e.g. command_help).
func (s *Server) AddTool(tool mcpsrv.ServerTool) {
	s.mcp.AddTool(tool.Tool, tool.Handler)
}

// resultText is a helper that wraps text in a successful CallToolResult.
func resultText(text string) *mcplib.CallToolResult {
	return mcplib.NewToolResultText(text)
}

// resultErr is a helper that wraps an error in a CallToolResult with IsError=true.
func resultErr(err error) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(err.Error())},
		IsError: true,
	}
}

// resultJSON is a helper that serialises v to JSON and returns a CallToolResult.
func resultJSON(v any) (*mcplib.CallToolResult, error) {
	return mcplib.NewToolResultJSON(v)
}

// resultOf returns the error result of the tool if err is not nil, otherwise
// the JSON of v.
func resultOf(tool string, v any, err error) (*mcplib.CallToolResult, error) {
	if err != nil {
		return resultErr(fmt.Errorf("%s: %w", tool, err)), nil
	}
	r, err := resultJSON(v)
	if err != nil {
		return resultErr(fmt.Errorf("%s: serialise: %w", tool, err)), nil
	}
	return r, nil
}

// argErr returns the error result for an invalid argument of the tool.
func argErr(tool string, err error) (*mcplib.CallToolResult, error) {
	return resultErr(fmt.Errorf("%s: %w", tool, err)), nil
}

// resultMessage returns the text of the first text content of r.
func resultMessage(r *mcplib.CallToolResult) string {
	for _, c := range r.Content {
		if txt, ok := c.(mcplib.TextContent); ok {
			return txt.Text
		}
	}
	return ""
}
