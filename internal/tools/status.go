package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/HendryAvila/lifeos/internal/discipline"
	"github.com/HendryAvila/lifeos/internal/tracker"
	"github.com/mark3labs/mcp-go/mcp"
)

// StatusTool handles the log_status MCP tool.
type StatusTool struct {
	tracker *tracker.Tracker
}

// NewStatusTool creates a StatusTool.
func NewStatusTool(tr *tracker.Tracker) *StatusTool {
	return &StatusTool{tracker: tr}
}

// Definition returns the MCP tool definition for log_status.
func (t *StatusTool) Definition() mcp.Tool {
	return mcp.NewTool("log_status",
		mcp.WithDescription(
			"Show locks, streak and today's scores. Always available, even when locked. "+
				"Call this first in every session to know which day to log and which tools are open.",
		),
	)
}

// Handle processes the log_status tool call.
func (t *StatusTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	st, err := t.tracker.Status()
	if err != nil {
		return errorResult("log_status", err), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "## LifeOS Status: %s\n\n", st.Today)

	switch {
	case st.Gates.Lockout.Locked:
		fmt.Fprintf(&sb, "**LOCKED**: no log for %d days (last: %s). Log today to unlock.\n\n",
			st.Gates.Lockout.DaysSinceLast, st.Gates.Lockout.LastDate)
	case st.Gates.ShutdownLocked:
		fmt.Fprintf(&sb, "**SHUTDOWN INCOMPLETE**: finish %s's shutdown ritual to unlock today.\n\n", st.ActiveDay)
	default:
		sb.WriteString("Unlocked.\n\n")
	}

	fmt.Fprintf(&sb, "- **Active day**: %s\n", st.ActiveDay)
	fmt.Fprintf(&sb, "- **Strict streak**: %d days\n", st.Streak)
	fmt.Fprintf(&sb, "- **Days logged**: %d\n", st.TotalDays)
	if st.Direction != "" {
		fmt.Fprintf(&sb, "- **Today's direction**: %s\n", st.Direction)
	}
	var open []string
	for _, v := range []discipline.View{discipline.ViewEntry, discipline.ViewDashboard, discipline.ViewAssistant, discipline.ViewSettings} {
		if st.Access[v] {
			open = append(open, string(v))
		}
	}
	fmt.Fprintf(&sb, "- **Open views**: %s\n", strings.Join(open, ", "))

	if st.TodayLog != nil {
		sb.WriteString("\n### Today\n")
		writeScores(&sb, *st.TodayLog)
	} else {
		sb.WriteString("\nToday has not been logged yet.\n")
	}

	if st.Week.Days > 0 {
		fmt.Fprintf(&sb, "\n### Last %d days\n", st.Week.Days)
		fmt.Fprintf(&sb, "- **Avg discipline**: %.1f\n", st.Week.AvgDisciplineScore)
		fmt.Fprintf(&sb, "- **Avg time integrity**: %.1f\n", st.Week.AvgTimeIntegrityScore)
		fmt.Fprintf(&sb, "- **HIGH pressure days**: %d\n", st.Week.HighPressureDays)
		fmt.Fprintf(&sb, "- **Shutdown misses**: %d\n", st.Week.ShutdownMisses)
	}
	return mcp.NewToolResultText(sb.String()), nil
}
