// Package resources implements the lifeos MCP resources.
//
// Resources provide read-only data that the host can consume for context.
// They use URI-based addressing (lifeos://...) following MCP conventions.
package resources

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/HendryAvila/lifeos/internal/tracker"
	"github.com/mark3labs/mcp-go/mcp"
)

const (
	StatusURI    = "lifeos://status"
	QuestionsURI = "lifeos://questions"
)

// Handler manages lifeos resource endpoints.
type Handler struct {
	tracker *tracker.Tracker
}

// NewHandler creates a resource Handler with its dependencies.
func NewHandler(tr *tracker.Tracker) *Handler {
	return &Handler{tracker: tr}
}

// StatusResource returns the MCP resource definition for the status snapshot.
func (h *Handler) StatusResource() mcp.Resource {
	return mcp.NewResource(
		StatusURI,
		"LifeOS Status",
		mcp.WithResourceDescription("Locks, open views, streak, today's scores and the last 7 day averages"),
		mcp.WithMIMEType("application/json"),
	)
}

// HandleStatus returns the current status as JSON. It is readable while
// locked.
func (h *Handler) HandleStatus(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	st, err := h.tracker.Status()
	if err != nil {
		return errorResource(req.Params.URI, err.Error()), nil
	}
	return jsonResource(req.Params.URI, st)
}

// QuestionsResource returns the MCP resource definition for the question catalog.
func (h *Handler) QuestionsResource() mcp.Resource {
	return mcp.NewResource(
		QuestionsURI,
		"LifeOS Questions",
		mcp.WithResourceDescription("The daily log question catalog: IDs, labels, types, options and categories"),
		mcp.WithMIMEType("application/json"),
	)
}

// HandleQuestions returns the question catalog as JSON.
func (h *Handler) HandleQuestions(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return jsonResource(req.Params.URI, h.tracker.Catalog().All())
}

func jsonResource(uri string, v any) ([]mcp.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", uri, err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

// errorResource returns a resource with an error message.
func errorResource(uri, message string) []mcp.ResourceContents {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "text/plain",
			Text:     fmt.Sprintf("Error: %s", message),
		},
	}
}
