package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/HendryAvila/lifeos/internal/questions"
	"github.com/HendryAvila/lifeos/internal/tracker"
	"github.com/mark3labs/mcp-go/mcp"
)

// QuestionsTool handles the log_questions MCP tool.
type QuestionsTool struct {
	tracker *tracker.Tracker
}

// NewQuestionsTool creates a QuestionsTool.
func NewQuestionsTool(tr *tracker.Tracker) *QuestionsTool {
	return &QuestionsTool{tracker: tr}
}

// Definition returns the MCP tool definition for log_questions.
func (t *QuestionsTool) Definition() mcp.Tool {
	return mcp.NewTool("log_questions",
		mcp.WithDescription(
			"List the daily log questions with their IDs, answer types and options. "+
				"Call this before log_save so answers use the right keys and types.",
		),
		mcp.WithString("category",
			mcp.Description("Only list one category (e.g. work, energy, shutdown)"),
		),
	)
}

// Handle processes the log_questions tool call.
func (t *QuestionsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cat := t.tracker.Catalog()
	filter := questions.Category(strings.ToLower(strings.TrimSpace(req.GetString("category", ""))))
	if filter != "" {
		if err := questions.ValidateCategory(filter); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
	}

	var sb strings.Builder
	sb.WriteString("## Daily Log Questions\n")
	for _, c := range cat.Categories() {
		if filter != "" && c != filter {
			continue
		}
		fmt.Fprintf(&sb, "\n### %s\n", c)
		for _, q := range cat.ByCategory(c) {
			fmt.Fprintf(&sb, "- `%s` (%s): %s", q.ID, q.Type, q.Label)
			switch q.Type {
			case questions.TypeSelect:
				fmt.Fprintf(&sb, " [%s]", strings.Join(q.Options, " | "))
			case questions.TypeScale:
				fmt.Fprintf(&sb, " [%d-%d]", questions.ScaleMin, questions.ScaleMax)
			}
			sb.WriteString("\n")
		}
	}
	sb.WriteString("\nShutdown questions must all be answered before the next day opens.\n")
	return mcp.NewToolResultText(sb.String()), nil
}
