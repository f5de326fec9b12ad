package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/HendryAvila/lifeos/internal/tracker"
	"github.com/mark3labs/mcp-go/mcp"
)

// BeginTool handles the log_begin MCP tool.
type BeginTool struct {
	tracker *tracker.Tracker
}

// NewBeginTool creates a BeginTool.
func NewBeginTool(tr *tracker.Tracker) *BeginTool {
	return &BeginTool{tracker: tr}
}

// Definition returns the MCP tool definition for log_begin.
func (t *BeginTool) Definition() mcp.Tool {
	return mcp.NewTool("log_begin",
		mcp.WithDescription(
			"Open the daily log. Without a date it opens the active day: yesterday while its shutdown "+
				"ritual is incomplete, today otherwise. Shows current answers, scores and missing shutdown answers. "+
				"Nothing is saved until log_save.",
		),
		mcp.WithString("date",
			mcp.Description("Day to open as YYYY-MM-DD. Only today and yesterday are editable."),
		),
	)
}

// Handle processes the log_begin tool call.
func (t *BeginTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	day, err := dateArg(req, "date")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	draft, err := t.tracker.Begin(day)
	if err != nil {
		return errorResult("log_begin", err), nil
	}

	rec := draft.Record
	cat := t.tracker.Catalog()
	var sb strings.Builder
	fmt.Fprintf(&sb, "## Daily Log: %s\n\n", rec.Date)
	if draft.Existing {
		sb.WriteString("Editing the saved record.\n\n")
	} else {
		sb.WriteString("New record (not saved yet).\n\n")
	}
	if draft.Gates.ShutdownLocked {
		sb.WriteString("**Shutdown pending**: today stays locked until this day's shutdown questions are answered.\n\n")
	}
	writeScores(&sb, rec)
	sb.WriteString("\n")
	writeAnswers(&sb, rec.Answers, cat)
	if missing := missingShutdown(rec.Answers, cat); len(missing) > 0 {
		fmt.Fprintf(&sb, "\nUnanswered shutdown questions: %s\n", strings.Join(missing, ", "))
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// SaveTool handles the log_save MCP tool.
type SaveTool struct {
	tracker *tracker.Tracker
}

// NewSaveTool creates a SaveTool.
func NewSaveTool(tr *tracker.Tracker) *SaveTool {
	return &SaveTool{tracker: tr}
}

// Definition returns the MCP tool definition for log_save.
func (t *SaveTool) Definition() mcp.Tool {
	return mcp.NewTool("log_save",
		mcp.WithDescription(
			"Save answers to the daily log. Answers are merged into the day's record; a null value clears one. "+
				"Scores, pressure level and shutdown status are recomputed on every save. "+
				"Use the question IDs from log_questions.",
		),
		mcp.WithString("answers",
			mcp.Description(
				"JSON object of question ID to answer, e.g. "+
					"{\"namaz\": 5, \"exercise\": true, \"creationMinutes\": 90, \"excuseType\": \"Tired\"}",
			),
		),
		mcp.WithString("date",
			mcp.Description("Day to save as YYYY-MM-DD (default: the active day)"),
		),
		mcp.WithString("photo",
			mcp.Description("Identity photo as a data URL. Replaces the stored photo."),
		),
		mcp.WithBoolean("clear_photo",
			mcp.Description("If true, removes the stored photo"),
		),
	)
}

// Handle processes the log_save tool call.
func (t *SaveTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	day, err := dateArg(req, "date")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	answers, err := answersArg(req, "answers")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	photo := req.GetString("photo", "")
	clearPhoto := boolArg(req, "clear_photo", false)
	if len(answers) == 0 && photo == "" && !clearPhoto {
		return mcp.NewToolResultError("nothing to save: provide 'answers', 'photo' or 'clear_photo'"), nil
	}

	rec, err := t.tracker.Save(tracker.SaveInput{
		Date:       day,
		Answers:    answers,
		Photo:      photo,
		ClearPhoto: clearPhoto,
	})
	if err != nil {
		return errorResult("log_save", err), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Saved %s (%d answers).\n\n", rec.Date, len(rec.Answers))
	writeScores(&sb, *rec)
	if missing := missingShutdown(rec.Answers, t.tracker.Catalog()); len(missing) > 0 {
		fmt.Fprintf(&sb, "\nShutdown still open: %s\n", strings.Join(missing, ", "))
	}
	return mcp.NewToolResultText(sb.String()), nil
}
