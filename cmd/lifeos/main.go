// LifeOS: personal discipline journal over MCP
//
// An MCP server that lets an AI assistant run a daily accountability
// log: scored answers, a shutdown ritual that gates the next day, an
// inactivity lockout and a strict-compliance streak.
//
// Usage:
//
//	lifeos serve                  # Start MCP server (stdio transport)
//	lifeos status                 # Print locks, streak and journal stats
//	lifeos export [csv|json] [f]  # Export the journal
//	lifeos import <file>          # Import a JSON export
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/HendryAvila/lifeos/internal/config"
	"github.com/HendryAvila/lifeos/internal/journal"
	"github.com/HendryAvila/lifeos/internal/logger"
	lifeserver "github.com/HendryAvila/lifeos/internal/server"
	"github.com/HendryAvila/lifeos/internal/tracker"
	"github.com/mark3labs/mcp-go/server"
)

// timeNow is the CLI clock. Tests replace it.
var timeNow = time.Now

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "serve":
		err = run()
	case "status":
		err = runStatus(os.Stdout)
	case "export":
		err = runExport(os.Args[2:], os.Stdout)
	case "import":
		err = runImport(os.Args[2:])
	case "--help", "-h", "help":
		printUsage()
		os.Exit(0)
	case "--version", "-v", "version":
		fmt.Printf("lifeos v%s\n", lifeserver.Version)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setup loads config and builds the stderr logger.
func setup() (config.Config, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, err
	}
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("creating logger: %w", err)
	}
	return cfg, log, nil
}

func run() error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync()

	s, cleanup, err := lifeserver.New(cfg, log)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}
	defer cleanup()

	// ServeStdio handles SIGINT/SIGTERM itself.
	return server.ServeStdio(s)
}

// openTracker opens the journal for a one-shot CLI command.
func openTracker() (*tracker.Tracker, *journal.SQLiteStore, func(), error) {
	cfg, log, err := setup()
	if err != nil {
		return nil, nil, nil, err
	}
	catalog, err := cfg.Catalog()
	if err != nil {
		return nil, nil, nil, err
	}
	store, err := journal.New(journal.Config{DataDir: cfg.DataDir})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("opening journal: %w", err)
	}
	tr := tracker.New(store, catalog,
		tracker.WithClock(timeNow),
		tracker.WithLogger(log),
		tracker.WithSilentMode(cfg.SilentMode),
		tracker.WithRequirePhoto(cfg.RequirePhoto),
	)
	closeAll := func() {
		_ = store.Close()
		log.Sync()
	}
	return tr, store, closeAll, nil
}

func runStatus(w io.Writer) error {
	tr, store, closeAll, err := openTracker()
	if err != nil {
		return err
	}
	defer closeAll()

	st, err := tr.Status()
	if err != nil {
		return err
	}
	stats, err := store.Stats()
	if err != nil {
		return err
	}

	state := "unlocked"
	switch {
	case st.Gates.Lockout.Locked:
		state = fmt.Sprintf("LOCKED (%d days since %s)", st.Gates.Lockout.DaysSinceLast, st.Gates.Lockout.LastDate)
	case st.Gates.ShutdownLocked:
		state = fmt.Sprintf("SHUTDOWN INCOMPLETE (%s)", st.ActiveDay)
	}
	fmt.Fprintf(w, "Today:        %s\n", st.Today)
	fmt.Fprintf(w, "State:        %s\n", state)
	fmt.Fprintf(w, "Active day:   %s\n", st.ActiveDay)
	fmt.Fprintf(w, "Streak:       %d\n", st.Streak)
	if st.TodayLog != nil {
		fmt.Fprintf(w, "Today scores: discipline %d, integrity %d, ratio %.2f, pressure %s\n",
			st.TodayLog.DisciplineScore, st.TodayLog.TimeIntegrityScore, st.TodayLog.CreationRatio, st.TodayLog.PressureLevel)
	}
	if st.Direction != "" {
		fmt.Fprintf(w, "Direction:    %s\n", st.Direction)
	}
	fmt.Fprintf(w, "Journal:      %s\n", store.Path())
	if stats.TotalDays > 0 {
		fmt.Fprintf(w, "Days logged:  %d (%s to %s), %d with photo, %d annotated\n",
			stats.TotalDays, stats.FirstDate, stats.LastDate, stats.WithPhoto, stats.Annotated)
	} else {
		fmt.Fprintln(w, "Days logged:  0")
	}
	return nil
}

func runExport(args []string, stdout io.Writer) error {
	format := "csv"
	if len(args) > 0 {
		format = strings.ToLower(args[0])
	}
	if format != "csv" && format != "json" {
		return fmt.Errorf("export format must be csv or json, got %q", format)
	}

	tr, _, closeAll, err := openTracker()
	if err != nil {
		return err
	}
	defer closeAll()

	// Render fully before touching the target so a refused export
	// leaves an existing file alone.
	var buf bytes.Buffer
	if format == "csv" {
		err = tr.ExportCSV(&buf)
	} else {
		var data *journal.ExportData
		data, err = tr.ExportJSON()
		if err == nil {
			enc := json.NewEncoder(&buf)
			enc.SetIndent("", "  ")
			err = enc.Encode(data)
		}
	}
	if err != nil {
		return err
	}

	if len(args) < 2 {
		_, err := buf.WriteTo(stdout)
		return err
	}
	return writeFileAtomic(args[1], buf.Bytes())
}

// writeFileAtomic writes data next to path and renames it into place.
func writeFileAtomic(path string, data []byte) error {
	f, err := os.CreateTemp(filepath.Dir(path), ".lifeos-export-*")
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	tmp := f.Name()
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}

func runImport(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: lifeos import <file>")
	}
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}
	var data journal.ExportData
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("parse %s: %w", args[0], err)
	}

	tr, _, closeAll, err := openTracker()
	if err != nil {
		return err
	}
	defer closeAll()

	res, err := tr.Import(&data)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Imported %d days (%d replaced).\n", res.DaysImported, res.DaysReplaced)
	return nil
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `LifeOS v%s: discipline journal MCP server

Usage:
  lifeos serve                   Start the MCP server (stdio transport)
  lifeos status                  Print locks, streak and journal stats
  lifeos export [csv|json] [f]   Export the journal to stdout or file f
  lifeos import <file>           Import a JSON export (scores are recomputed)
  lifeos version                 Print the version

Environment:
  LIFEOS_HOME      data directory (default ~/.lifeos)
  LIFEOS_CATALOG   question catalog YAML file
  LIFEOS_LOG_MODE  development or production
  LIFEOS_SILENT    true for data-only analysis

  Other settings (e.g. require_photo: true) live in $LIFEOS_HOME/config.yaml.

Configuration:
  Add to your AI tool's MCP config:

  {
    "mcpServers": {
      "lifeos": {
        "command": "lifeos",
        "args": ["serve"]
      }
    }
  }
`, lifeserver.Version)
}
