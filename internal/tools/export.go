package tools

import (
	"bytes"
	"context"
	"strings"

	"github.com/HendryAvila/lifeos/internal/tracker"
	"github.com/mark3labs/mcp-go/mcp"
)

// ExportTool handles the log_export MCP tool.
type ExportTool struct {
	tracker *tracker.Tracker
}

// NewExportTool creates an ExportTool.
func NewExportTool(tr *tracker.Tracker) *ExportTool {
	return &ExportTool{tracker: tr}
}

// Definition returns the MCP tool definition for log_export.
func (t *ExportTool) Definition() mcp.Tool {
	return mcp.NewTool("log_export",
		mcp.WithDescription(
			"Export every logged day. CSV has one row per day with scores followed by one column per question. "+
				"JSON is the full journal dump that `lifeos import` reads back. Blocked while locked.",
		),
		mcp.WithString("format",
			mcp.Description("csv (default) or json"),
			mcp.Enum("csv", "json"),
		),
	)
}

// Handle processes the log_export tool call.
func (t *ExportTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	switch format := strings.ToLower(req.GetString("format", "csv")); format {
	case "csv":
		var buf bytes.Buffer
		if err := t.tracker.ExportCSV(&buf); err != nil {
			return errorResult("log_export", err), nil
		}
		return mcp.NewToolResultText(buf.String()), nil
	case "json":
		data, err := t.tracker.ExportJSON()
		if err != nil {
			return errorResult("log_export", err), nil
		}
		return jsonResult(data)
	default:
		return mcp.NewToolResultError("'format' must be csv or json, got " + format), nil
	}
}
