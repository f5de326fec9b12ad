package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/HendryAvila/lifeos/internal/tracker"
	"github.com/mark3labs/mcp-go/mcp"
)

// defaultHistoryLimit caps log_history when no limit is given.
const defaultHistoryLimit = 14

// HistoryTool handles the log_history MCP tool.
type HistoryTool struct {
	tracker *tracker.Tracker
}

// NewHistoryTool creates a HistoryTool.
func NewHistoryTool(tr *tracker.Tracker) *HistoryTool {
	return &HistoryTool{tracker: tr}
}

// Definition returns the MCP tool definition for log_history.
func (t *HistoryTool) Definition() mcp.Tool {
	return mcp.NewTool("log_history",
		mcp.WithDescription("List recent days with their scores, newest first. Blocked while locked."),
		mcp.WithNumber("limit",
			mcp.Description("Max days to return (default: 14, 0 for all)"),
		),
	)
}

// Handle processes the log_history tool call.
func (t *HistoryTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := intArg(req, "limit", defaultHistoryLimit)
	if limit < 0 {
		return mcp.NewToolResultError("'limit' must not be negative"), nil
	}

	days, err := t.tracker.History(limit)
	if err != nil {
		return errorResult("log_history", err), nil
	}
	if len(days) == 0 {
		return mcp.NewToolResultText("No days logged yet."), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "## History (%d days)\n\n", len(days))
	sb.WriteString("| Date | Discipline | Integrity | Ratio | Pressure | Shutdown |\n")
	sb.WriteString("|---|---|---|---|---|---|\n")
	for _, r := range days {
		fmt.Fprintf(&sb, "| %s | %d | %d | %.2f | %s | %s |\n",
			r.Date, r.DisciplineScore, r.TimeIntegrityScore, r.CreationRatio, r.PressureLevel, yesNo(r.ShutdownComplete))
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// GetTool handles the log_get MCP tool.
type GetTool struct {
	tracker *tracker.Tracker
}

// NewGetTool creates a GetTool.
func NewGetTool(tr *tracker.Tracker) *GetTool {
	return &GetTool{tracker: tr}
}

// Definition returns the MCP tool definition for log_get.
func (t *GetTool) Definition() mcp.Tool {
	return mcp.NewTool("log_get",
		mcp.WithDescription("Show one day in full: answers, scores and assistant notes. Blocked while locked."),
		mcp.WithString("date",
			mcp.Required(),
			mcp.Description("Day as YYYY-MM-DD"),
		),
	)
}

// Handle processes the log_get tool call.
func (t *GetTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	day, err := dateArg(req, "date")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if day == nil {
		return mcp.NewToolResultError("'date' is required"), nil
	}

	rec, err := t.tracker.Get(*day)
	if err != nil {
		return errorResult("log_get", err), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "## %s\n\n", rec.Date)
	writeScores(&sb, *rec)
	sb.WriteString("\n")
	writeAnswers(&sb, rec.Answers, t.tracker.Catalog())
	writeAnnotations(&sb, rec.Annotations)
	return mcp.NewToolResultText(sb.String()), nil
}

// WeeklyTool handles the log_weekly MCP tool.
type WeeklyTool struct {
	tracker *tracker.Tracker
}

// NewWeeklyTool creates a WeeklyTool.
func NewWeeklyTool(tr *tracker.Tracker) *WeeklyTool {
	return &WeeklyTool{tracker: tr}
}

// Definition returns the MCP tool definition for log_weekly.
func (t *WeeklyTool) Definition() mcp.Tool {
	return mcp.NewTool("log_weekly",
		mcp.WithDescription(
			"Return the last 7 days as JSON ({date, ratio, pressure, excuse}) plus averages, "+
				"as input for the weekly truth report. Blocked while locked.",
		),
	)
}

// Handle processes the log_weekly tool call.
func (t *WeeklyTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	w, err := t.tracker.Weekly()
	if err != nil {
		return errorResult("log_weekly", err), nil
	}
	return jsonResult(w)
}
