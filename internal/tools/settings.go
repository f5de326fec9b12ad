package tools

import (
	"context"
	"fmt"
	"sync"

	"github.com/HendryAvila/lifeos/internal/config"
	"github.com/HendryAvila/lifeos/internal/tracker"
	"github.com/mark3labs/mcp-go/mcp"
)

// SettingsTool handles the log_settings MCP tool.
type SettingsTool struct {
	tracker *tracker.Tracker

	mu  sync.Mutex
	cfg config.Config
}

// NewSettingsTool creates a SettingsTool. Changes are written back to
// the config file in cfg.DataDir; environment overrides stay out of it.
func NewSettingsTool(tr *tracker.Tracker, cfg config.Config) *SettingsTool {
	return &SettingsTool{tracker: tr, cfg: cfg}
}

// Definition returns the MCP tool definition for log_settings.
func (t *SettingsTool) Definition() mcp.Tool {
	return mcp.NewTool("log_settings",
		mcp.WithDescription(
			"Read or change preferences. Without arguments it shows them. "+
				"silent_mode switches the daily analysis to a terse, data-only tone. Changes are blocked while locked.",
		),
		mcp.WithBoolean("silent_mode",
			mcp.Description("If set, turns silent mode on or off"),
		),
	)
}

// Handle processes the log_settings tool call.
func (t *SettingsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if silent, ok := req.GetArguments()["silent_mode"].(bool); ok {
		if err := t.tracker.SetSilentMode(silent); err != nil {
			return errorResult("log_settings", err), nil
		}
		t.cfg.SilentMode = silent
		if err := config.Update(t.cfg.DataDir, func(c *config.Config) { c.SilentMode = silent }); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("silent mode applied but not persisted: %v", err)), nil
		}
	}

	catalog := t.cfg.CatalogPath()
	if catalog == "" {
		catalog = "built-in"
	}
	return mcp.NewToolResultText(fmt.Sprintf(
		"## Settings\n\n- **Silent mode**: %s\n- **Photo required**: %s\n- **Data dir**: %s\n- **Question catalog**: %s (%d questions)\n",
		yesNo(t.tracker.SilentMode()), yesNo(t.cfg.RequirePhoto), t.cfg.DataDir, catalog, t.tracker.Catalog().Len(),
	)), nil
}
