package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/huangsam/folio/core"
	"github.com/huangsam/folio/core/filter"
	"github.com/huangsam/folio/internal/contract"
	"github.com/huangsam/folio/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.StoreManager
}

// timelineResult is the commits_timeline payload.
type timelineResult struct {
	Progress float64                `json:"progress"`
	Cutoff   time.Time              `json:"cutoff"`
	Total    int                    `json:"total"`
	Commits  []schema.CommitSummary `json:"commits"`
}

// brushResult is the brush_commits payload.
type brushResult struct {
	Selection string                 `json:"selection"`
	Commits   []schema.CommitSummary `json:"commits"`
	Languages []schema.Slice         `json:"languages"`
}

func (h *toolHandler) dataset() *core.Dataset {
	return core.LoadDataset(h.baseCfg, h.mgr)
}

func jsonResult(v any) *mcp.CallToolResult {
	jsonData, _ := json.MarshalIndent(v, "", "  ")
	return mcp.NewToolResultText(string(jsonData))
}

// projectState builds the filter state of the query and year arguments.
func projectState(request mcp.CallToolRequest) filter.FilterState {
	state := filter.FilterState{}.WithQuery(request.GetString("query", ""))
	if y := request.GetString("year", ""); y != "" {
		state = state.ToggleCategory(y)
	}
	return state
}

// selectionArgs reads the progress and step arguments.
func selectionArgs(request mcp.CallToolRequest) (core.Selection, error) {
	var sel core.Selection
	if p := request.GetFloat("progress", contract.UnsetProgress); p != contract.UnsetProgress {
		if !schema.ValidProgress(p) {
			return sel, fmt.Errorf("progress must be between %d and %d (received %g)", schema.MinProgress, schema.MaxProgress, p)
		}
		sel.Progress = &p
	}
	if s := request.GetInt("step", contract.UnsetStep); s != contract.UnsetStep {
		if s < 0 {
			return sel, fmt.Errorf("step cannot be negative (received %d)", s)
		}
		sel.Step = &s
	}
	return sel, nil
}

func limitOf(request mcp.CallToolRequest, fallback int) int {
	if l := request.GetInt("limit", 0); l > 0 {
		return l
	}
	return fallback
}

func (h *toolHandler) handleSearchProjects(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result := h.dataset().ProjectsView(projectState(request))
	if limit := limitOf(request, h.baseCfg.ResultLimit); limit > 0 && len(result.Projects) > limit {
		result.Projects = result.Projects[:limit]
	}
	return jsonResult(result), nil
}

func (h *toolHandler) handleProjectBreakdown(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(h.dataset().YearBreakdown(projectState(request))), nil
}

func (h *toolHandler) handleCommitsTimeline(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sel, err := selectionArgs(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid timeline parameters: %v", err)), nil
	}

	view, err := h.dataset().CommitsView(filter.FilterState{}, sel)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("timeline lookup failed: %v", err)), nil
	}

	result := timelineResult{Progress: view.Progress, Cutoff: view.Cutoff, Total: len(view.Visible), Commits: view.Visible}
	if limit := limitOf(request, h.baseCfg.ResultLimit); limit > 0 && len(result.Commits) > limit {
		result.Commits = result.Commits[:limit]
	}
	return jsonResult(result), nil
}

func (h *toolHandler) handleCommitStats(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sel, err := selectionArgs(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid timeline parameters: %v", err)), nil
	}

	summary, err := h.dataset().Stats(filter.FilterState{}, sel)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("stats failed: %v", err)), nil
	}
	return jsonResult(summary), nil
}

func (h *toolHandler) handleBrushCommits(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	corners := make([]float64, 0, 4)
	for _, name := range []string{"x0", "y0", "x1", "y1"} {
		v := request.GetFloat(name, math.NaN())
		if math.IsNaN(v) {
			return mcp.NewToolResultError(fmt.Sprintf("invalid brush parameters: %s is required", name)), nil
		}
		corners = append(corners, v)
	}

	sel, err := selectionArgs(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid timeline parameters: %v", err)), nil
	}

	state := filter.FilterState{}.WithBrush(schema.Rect{
		From: schema.Point{X: corners[0], Y: corners[1]},
		To:   schema.Point{X: corners[2], Y: corners[3]},
	})
	view, err := h.dataset().CommitsView(state, sel)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("brush failed: %v", err)), nil
	}

	return jsonResult(brushResult{Selection: view.Selection, Commits: view.Selected, Languages: view.Languages}), nil
}
