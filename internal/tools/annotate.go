package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/HendryAvila/lifeos/internal/discipline"
	"github.com/HendryAvila/lifeos/internal/tracker"
	"github.com/mark3labs/mcp-go/mcp"
)

// AnnotateTool handles the log_annotate MCP tool.
type AnnotateTool struct {
	tracker *tracker.Tracker
}

// NewAnnotateTool creates an AnnotateTool.
func NewAnnotateTool(tr *tracker.Tracker) *AnnotateTool {
	return &AnnotateTool{tracker: tr}
}

// Definition returns the MCP tool definition for log_annotate.
func (t *AnnotateTool) Definition() mcp.Tool {
	return mcp.NewTool("log_annotate",
		mcp.WithDescription(
			"Attach YOUR analysis of a saved day: a ruthless audit, a one-sentence direction for tomorrow, "+
				"a reality check against a statistical standard, and a thinking quality class. "+
				"Answers and scores are never changed. Empty fields keep their stored value.",
		),
		mcp.WithString("date",
			mcp.Description("Day to annotate as YYYY-MM-DD (default: the newest record)"),
		),
		mcp.WithString("analysis",
			mcp.Description("Audit of the day: name the time thief and the weakness"),
		),
		mcp.WithString("daily_direction",
			mcp.Description("ONE action command for tomorrow, no quotes (e.g. No phone until 1000 words are written.)"),
		),
		mcp.WithString("reality_check",
			mcp.Description("Comparison to a statistical standard (e.g. You consumed more than 90% of people today.)"),
		),
		mcp.WithString("thinking_quality",
			mcp.Description("Class of what the user thought deeply about"),
			mcp.Enum(
				string(discipline.ThinkingSurface),
				string(discipline.ThinkingPractical),
				string(discipline.ThinkingStrategic),
				string(discipline.ThinkingLongTerm),
			),
		),
	)
}

// Handle processes the log_annotate tool call.
func (t *AnnotateTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	day, err := dateArg(req, "date")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	notes := discipline.Annotations{
		AIAnalysis:      strings.TrimSpace(req.GetString("analysis", "")),
		DailyDirection:  strings.TrimSpace(req.GetString("daily_direction", "")),
		RealityCheck:    strings.TrimSpace(req.GetString("reality_check", "")),
		ThinkingQuality: discipline.ThinkingQuality(strings.TrimSpace(req.GetString("thinking_quality", ""))),
	}
	if notes.IsZero() {
		return mcp.NewToolResultError("provide at least one of 'analysis', 'daily_direction', 'reality_check', 'thinking_quality'"), nil
	}

	rec, err := t.tracker.Annotate(day, notes)
	if err != nil {
		return errorResult("log_annotate", err), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Annotated %s.\n", rec.Date)
	writeAnnotations(&sb, rec.Annotations)
	return mcp.NewToolResultText(sb.String()), nil
}
