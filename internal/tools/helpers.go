// Package tools implements the lifeos MCP tool handlers.
//
// Each tool is a struct holding its dependencies, with Definition()
// returning the mcp.Tool schema and Handle() serving the call. Tools are
// storage tools: the assistant writes the analysis, the tools persist it.
package tools

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/HendryAvila/lifeos/internal/calendar"
	"github.com/HendryAvila/lifeos/internal/journal"
	"github.com/HendryAvila/lifeos/internal/tracker"
	"github.com/mark3labs/mcp-go/mcp"
)

// intArg extracts an integer argument from a tool request, returning
// defaultVal if the key is missing or not a number (JSON numbers are float64).
func intArg(req mcp.CallToolRequest, key string, defaultVal int) int {
	v, ok := req.GetArguments()[key].(float64)
	if !ok {
		return defaultVal
	}
	return int(v)
}

// boolArg extracts a boolean argument from a tool request.
func boolArg(req mcp.CallToolRequest, key string, defaultVal bool) bool {
	v, ok := req.GetArguments()[key].(bool)
	if !ok {
		return defaultVal
	}
	return v
}

// dateArg parses an optional YYYY-MM-DD argument. Missing means nil.
func dateArg(req mcp.CallToolRequest, key string) (*calendar.Day, error) {
	s := strings.TrimSpace(req.GetString(key, ""))
	if s == "" {
		return nil, nil
	}
	d, err := calendar.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("'%s' must be YYYY-MM-DD: %w", key, err)
	}
	return &d, nil
}

// answersArg reads the answers argument. Clients may send either a JSON
// object or a string holding one.
func answersArg(req mcp.CallToolRequest, key string) (map[string]any, error) {
	switch v := req.GetArguments()[key].(type) {
	case nil:
		return nil, nil
	case map[string]any:
		return v, nil
	case string:
		if strings.TrimSpace(v) == "" {
			return nil, nil
		}
		var out map[string]any
		if err := json.Unmarshal([]byte(v), &out); err != nil {
			return nil, fmt.Errorf("'%s' must be a JSON object: %w", key, err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("'%s' must be a JSON object, got %T", key, v)
	}
}

// errorResult maps tracker errors to a tool error with a next step.
func errorResult(action string, err error) *mcp.CallToolResult {
	switch {
	case errors.Is(err, tracker.ErrShutdownPending):
		return mcp.NewToolResultError(fmt.Sprintf(
			"%s blocked: %v\nNext: call log_begin to open yesterday's record, then log_save the shutdown answers.", action, err))
	case errors.Is(err, tracker.ErrLockedOut):
		return mcp.NewToolResultError(fmt.Sprintf(
			"%s blocked: %v\nNext: call log_save with today's answers. Only the entry form is open while locked.", action, err))
	case errors.Is(err, tracker.ErrPhotoRequired):
		return mcp.NewToolResultError(fmt.Sprintf(
			"%s blocked: %v\nNext: call log_save again with the photo argument (a data URL).", action, err))
	case errors.Is(err, journal.ErrNotFound):
		return mcp.NewToolResultError(fmt.Sprintf("%s: %v", action, err))
	default:
		return mcp.NewToolResultError(fmt.Sprintf("%s failed: %v", action, err))
	}
}

// jsonResult renders v as an indented JSON text result.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
