// Package prompts implements the lifeos MCP prompts.
//
// MCP prompts are user-triggered workflows (like slash commands). They
// tell the assistant which tools to read the day from and where to store
// its verdict; the assistant writes the analysis itself.
package prompts

import (
	"context"
	"fmt"
	"strings"

	"github.com/HendryAvila/lifeos/internal/calendar"
	"github.com/mark3labs/mcp-go/mcp"
)

// ToneSource reports whether silent mode is on.
type ToneSource interface {
	SilentMode() bool
}

const (
	toneBlunt  = "Blunt, data-driven, uncomfortable truth. No motivation."
	toneSilent = "Silent mode: data only. No adjectives, no encouragement, no commentary beyond the four fields."
)

// DailyAnalysisPrompt handles the daily-analysis MCP prompt.
type DailyAnalysisPrompt struct {
	tone ToneSource
}

// NewDailyAnalysisPrompt creates a DailyAnalysisPrompt.
func NewDailyAnalysisPrompt(tone ToneSource) *DailyAnalysisPrompt {
	return &DailyAnalysisPrompt{tone: tone}
}

// Definition returns the MCP prompt definition for registration.
func (p *DailyAnalysisPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("daily-analysis",
		mcp.WithPromptDescription(
			"Audit one logged day against a top 1% standard and store a direction for tomorrow, "+
				"a reality check, a thinking quality class and the full analysis.",
		),
		mcp.WithArgument("date",
			mcp.ArgumentDescription("Day to analyze as YYYY-MM-DD (default: the newest logged day)"),
		),
	)
}

// Handle processes the daily-analysis prompt request.
func (p *DailyAnalysisPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	date := strings.TrimSpace(req.Params.Arguments["date"])
	if date != "" {
		if _, err := calendar.Parse(date); err != nil {
			return nil, fmt.Errorf("daily-analysis: 'date' must be YYYY-MM-DD: %w", err)
		}
	}

	tone := toneBlunt
	if p.tone != nil && p.tone.SilentMode() {
		tone = toneSilent
	}

	var sb strings.Builder
	sb.WriteString("Analyze my day against top 1% performer standards.\n")
	fmt.Fprintf(&sb, "Tone: %s\n\n", tone)
	sb.WriteString("Steps:\n")
	if date != "" {
		fmt.Fprintf(&sb, "1. Run `log_get` with date='%s' to read the day.\n", date)
	} else {
		sb.WriteString("1. Run `log_status`, then `log_get` for the newest logged day.\n")
	}
	sb.WriteString("2. Look at creation vs consumption minutes and the ratio, the deep thought " +
		"(thinkingContent), the excuse, money spent and its category, faceMatch and identityCheck.\n")
	sb.WriteString("3. Decide four things:\n" +
		"   - **Daily direction**: ONE sentence, an action command for tomorrow, no quotes " +
		"(e.g. No phone until 1000 words are written.)\n" +
		"   - **Reality check**: compare the day to a statistical standard " +
		"(e.g. You consumed more than 90% of the population today.)\n" +
		"   - **Thinking quality**: classify the deep thought as Surface, Practical, Strategic or Long-term.\n" +
		"   - **Analysis**: a ruthless audit naming the specific time thief and the weakness.\n")
	target := "the same day"
	if date != "" {
		target = fmt.Sprintf("date='%s'", date)
	}
	fmt.Fprintf(&sb, "4. Store all four with `log_annotate` for %s, then show me the direction.\n\n", target)
	sb.WriteString("If a tool reports a lock, tell me exactly what to log to unlock and stop there.")

	desc := "Daily analysis"
	if date != "" {
		desc = "Daily analysis: " + date
	}
	return &mcp.GetPromptResult{
		Description: desc,
		Messages: []mcp.PromptMessage{
			{
				Role:    mcp.RoleUser,
				Content: mcp.NewTextContent(sb.String()),
			},
		},
	}, nil
}
