// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/folio/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the folio MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.StoreManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Folio Portfolio Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: search_projects ---
	s.AddTool(mcp.NewTool("search_projects",
		mcp.WithDescription("Search the project list by text and optionally narrow it to a single year."),
		mcp.WithString("query", mcp.Description("Case-insensitive text matched against every field of a project.")),
		mcp.WithString("year", mcp.Description("Only return projects of this year.")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of projects returned.")),
	), h.handleSearchProjects)

	// --- 2. Tool: project_breakdown ---
	s.AddTool(mcp.NewTool("project_breakdown",
		mcp.WithDescription("Count the projects matching a search per year, with proportions."),
		mcp.WithString("query", mcp.Description("Case-insensitive text matched against every field of a project.")),
		mcp.WithString("year", mcp.Description("Year to mark as selected.")),
	), h.handleProjectBreakdown)

	// --- 3. Tool: commits_timeline ---
	s.AddTool(mcp.NewTool("commits_timeline",
		mcp.WithDescription("List the commits made up to a point of the timeline, given as slider progress or a narrative step."),
		mcp.WithNumber("progress", mcp.Description("Slider position from 0 to 100. Defaults to the end of the timeline.")),
		mcp.WithNumber("step", mcp.Description("Narrative step index, starting at 0. Takes precedence over progress.")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of commits returned.")),
	), h.handleCommitsTimeline)

	// --- 4. Tool: commit_stats ---
	s.AddTool(mcp.NewTool("commit_stats",
		mcp.WithDescription("Summarize lines, files, depth and the most active time of day of the commits up to a point of the timeline."),
		mcp.WithNumber("progress", mcp.Description("Slider position from 0 to 100.")),
		mcp.WithNumber("step", mcp.Description("Narrative step index, starting at 0.")),
	), h.handleCommitStats)

	// --- 5. Tool: brush_commits ---
	s.AddTool(mcp.NewTool("brush_commits",
		mcp.WithDescription("Select the commits inside a rectangle of the 1000x600 time-of-day scatter plot and break their lines down by language."),
		mcp.WithNumber("x0", mcp.Description("First corner, horizontal plot coordinate."), mcp.Required()),
		mcp.WithNumber("y0", mcp.Description("First corner, vertical plot coordinate."), mcp.Required()),
		mcp.WithNumber("x1", mcp.Description("Opposite corner, horizontal plot coordinate."), mcp.Required()),
		mcp.WithNumber("y1", mcp.Description("Opposite corner, vertical plot coordinate."), mcp.Required()),
		mcp.WithNumber("progress", mcp.Description("Slider position from 0 to 100.")),
	), h.handleBrushCommits)

	return s
}

// StartMCPServer starts the folio MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.StoreManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
