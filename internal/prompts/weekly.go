package prompts

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// WeeklyReportPrompt handles the weekly-report MCP prompt.
// It asks for the weekly truth report over the last seven logged days.
type WeeklyReportPrompt struct{}

// NewWeeklyReportPrompt creates a WeeklyReportPrompt.
func NewWeeklyReportPrompt() *WeeklyReportPrompt {
	return &WeeklyReportPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *WeeklyReportPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("weekly-report",
		mcp.WithPromptDescription(
			"Generate the weekly truth report from the last 7 logged days: "+
				"environment audit, weakness mode, failure archive and direction.",
		),
	)
}

// Handle processes the weekly-report prompt request.
func (p *WeeklyReportPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	return &mcp.GetPromptResult{
		Description: "Weekly truth report",
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(
					"Generate my WEEKLY TRUTH REPORT (top 1% standard). Tone: blunt.\n\n" +
						"Run `log_weekly` to get the last 7 days ({date, ratio, pressure, excuse}) and the averages.\n\n" +
						"Output sections:\n" +
						"1. **Environment Audit**: who or what wasted time?\n" +
						"2. **Weakness Mode**: what is being avoided?\n" +
						"3. **Failure Archive**: the pattern of excuses.\n" +
						"4. **Direction**: Upward, Flat or Declining?\n\n" +
						"Base every claim on the numbers. If `log_weekly` reports a lock, tell me what to log to unlock and stop.",
				),
			},
		},
	}, nil
}
