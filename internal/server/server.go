// Package server wires all MCP components and creates the server instance.
//
// This is the composition root: it opens the journal, builds the tracker
// and injects it into the tools, prompts and resources. No business logic
// lives here, only wiring.
package server

import (
	"fmt"

	"github.com/HendryAvila/lifeos/internal/config"
	"github.com/HendryAvila/lifeos/internal/journal"
	"github.com/HendryAvila/lifeos/internal/logger"
	"github.com/HendryAvila/lifeos/internal/prompts"
	"github.com/HendryAvila/lifeos/internal/resources"
	"github.com/HendryAvila/lifeos/internal/tools"
	"github.com/HendryAvila/lifeos/internal/tracker"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates and configures the MCP server with all tools, prompts,
// and resources registered.
//
// The returned cleanup function closes the journal and must be called on
// shutdown (typically via defer). It is always non-nil.
func New(cfg config.Config, log *logger.Logger) (*server.MCPServer, func(), error) {
	if log == nil {
		log = logger.NewNop()
	}

	catalog, err := cfg.Catalog()
	if err != nil {
		return nil, noop, err
	}

	store, err := journal.New(journal.Config{DataDir: cfg.DataDir})
	if err != nil {
		return nil, noop, fmt.Errorf("opening journal: %w", err)
	}
	cleanup := func() {
		if err := store.Close(); err != nil {
			log.Warn("journal close failed", "error", err)
		}
	}

	tr := tracker.New(store, catalog,
		tracker.WithLogger(log),
		tracker.WithSilentMode(cfg.SilentMode),
		tracker.WithRequirePhoto(cfg.RequirePhoto),
	)

	s := server.NewMCPServer(
		"lifeos",
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	registerTools(s, tr, cfg)

	// --- Register prompts ---

	dailyPrompt := prompts.NewDailyAnalysisPrompt(tr)
	s.AddPrompt(dailyPrompt.Definition(), dailyPrompt.Handle)

	weeklyPrompt := prompts.NewWeeklyReportPrompt()
	s.AddPrompt(weeklyPrompt.Definition(), weeklyPrompt.Handle)

	// --- Register resources ---

	resourceHandler := resources.NewHandler(tr)
	s.AddResource(resourceHandler.StatusResource(), resourceHandler.HandleStatus)
	s.AddResource(resourceHandler.QuestionsResource(), resourceHandler.HandleQuestions)

	log.Info("server ready",
		"version", Version,
		"journal", store.Path(),
		"questions", catalog.Len(),
		"silent_mode", cfg.SilentMode,
	)
	return s, cleanup, nil
}

// noop is the cleanup returned when nothing was opened.
func noop() {}

// registerTools registers all 10 log tools with the server.
func registerTools(s *server.MCPServer, tr *tracker.Tracker, cfg config.Config) {
	// --- Entry form ---
	questionsTool := tools.NewQuestionsTool(tr)
	s.AddTool(questionsTool.Definition(), questionsTool.Handle)

	beginTool := tools.NewBeginTool(tr)
	s.AddTool(beginTool.Definition(), beginTool.Handle)

	saveTool := tools.NewSaveTool(tr)
	s.AddTool(saveTool.Definition(), saveTool.Handle)

	// --- Lock screen ---
	statusTool := tools.NewStatusTool(tr)
	s.AddTool(statusTool.Definition(), statusTool.Handle)

	// --- Dashboard ---
	historyTool := tools.NewHistoryTool(tr)
	s.AddTool(historyTool.Definition(), historyTool.Handle)

	getTool := tools.NewGetTool(tr)
	s.AddTool(getTool.Definition(), getTool.Handle)

	weeklyTool := tools.NewWeeklyTool(tr)
	s.AddTool(weeklyTool.Definition(), weeklyTool.Handle)

	// --- Assistant ---
	annotateTool := tools.NewAnnotateTool(tr)
	s.AddTool(annotateTool.Definition(), annotateTool.Handle)

	// --- Settings ---
	exportTool := tools.NewExportTool(tr)
	s.AddTool(exportTool.Definition(), exportTool.Handle)

	settingsTool := tools.NewSettingsTool(tr, cfg)
	s.AddTool(settingsTool.Definition(), settingsTool.Handle)
}

// serverInstructions returns the system instructions that tell the AI
// how to use lifeos.
func serverInstructions() string {
	return `You have access to LifeOS, a personal daily accountability journal.

## CRITICAL: How Tools Work
LifeOS tools are STORAGE tools. They record the user's answers and compute
scores. The analysis, the direction for tomorrow and the weekly report are
written by YOU and stored with log_annotate.

## Start of every session
Call log_status first. It is always available and tells you:
- which day is active (yesterday while its shutdown ritual is incomplete)
- whether the app is LOCKED after more than 2 days without a log
- which views are open

## Locks
- LOCKED (inactivity): only log_questions, log_begin, log_save and log_status work.
  Logging today unlocks everything.
- SHUTDOWN INCOMPLETE: yesterday was saved without its shutdown answers.
  Open it with log_begin and log_save shutdownRespect, shutdownStupidity and
  shutdownRepeat. Today cannot be saved until then.
Do not try to work around a lock. Tell the user what to log.

## Daily log
1. log_questions lists question IDs, types and options
2. Ask the user, then log_save the answers as a JSON object keyed by ID
3. Scores, pressure level and shutdown status are computed for you. Never invent them.
4. Only today and yesterday are editable.
5. If the photo requirement is on, the first save of a day needs the photo argument.

## Analysis
Use the daily-analysis prompt for one day and weekly-report for the last 7.
Tone: blunt, data-driven, no motivation. In silent mode, data only.
Store the daily verdict with log_annotate: daily_direction (one command sentence),
reality_check, thinking_quality (Surface, Practical, Strategic, Long-term), analysis.

## Scores
- Discipline (0-100): 50 base, +4 per prayer, +10 exercise, +5/+15 for creation over 60/120 min,
  -10/-20 for consumption over 120/240 min
- Time integrity (0-100): -1 per 5 consumed minutes, -15 if consumption beat creation
- Pressure: HIGH if consumption over 180 min or fewer than 5 prayers;
  LOW if creation over 120 and consumption under 60; MEDIUM otherwise
- Strict streak: consecutive days with all 5 prayers, some creation time and an identity photo`
}
