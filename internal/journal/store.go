// Package journal persists day records in SQLite, one row per date.
// It stores records as given and never computes scores.
package journal

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/HendryAvila/lifeos/internal/calendar"
	"github.com/HendryAvila/lifeos/internal/discipline"

	_ "modernc.org/sqlite"
)

// openDB is a package-level var to allow test injection.
var openDB = sql.Open

// DBFile is the database filename inside the data directory.
const DBFile = "journal.db"

// ErrNotFound is returned when no record exists for a date.
var ErrNotFound = errors.New("journal: no record for date")

// Store is the persistence contract the tracker depends on. Records are
// keyed by date; the last write for a date wins.
type Store interface {
	List() ([]discipline.DayRecord, error)
	Get(day calendar.Day) (*discipline.DayRecord, error)
	Upsert(rec discipline.DayRecord) error
	Annotate(day calendar.Day, notes discipline.Annotations) (*discipline.DayRecord, error)
	Export() (*ExportData, error)
	Import(days []discipline.DayRecord) (*ImportResult, error)
}

// Config holds journal configuration.
type Config struct {
	DataDir string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	home, _ := os.UserHomeDir()
	return Config{DataDir: filepath.Join(home, ".lifeos")}
}

// SQLiteStore is the Store backed by a single SQLite file.
type SQLiteStore struct {
	db  *sql.DB
	cfg Config
}

var _ Store = (*SQLiteStore)(nil)

// New creates the data directory if needed, opens SQLite in WAL mode
// and runs migrations.
func New(cfg Config) (*SQLiteStore, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o700); err != nil {
		return nil, fmt.Errorf("journal: create data dir: %w", err)
	}

	db, err := openDB("sqlite", filepath.Join(cfg.DataDir, DBFile))
	if err != nil {
		return nil, fmt.Errorf("journal: open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("journal: pragma %q: %w", p, err)
		}
	}

	s := &SQLiteStore{db: db, cfg: cfg}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("journal: migration: %w", err)
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Path returns the database file location.
func (s *SQLiteStore) Path() string {
	return filepath.Join(s.cfg.DataDir, DBFile)
}

// ─── Migrations ──────────────────────────────────────────────────────────────

func (s *SQLiteStore) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS days (
			date                 TEXT    PRIMARY KEY,
			answers              TEXT    NOT NULL DEFAULT '{}',
			discipline_score     INTEGER NOT NULL DEFAULT 0,
			time_integrity_score INTEGER NOT NULL DEFAULT 100,
			creation_ratio       REAL    NOT NULL DEFAULT 0,
			pressure_level       TEXT    NOT NULL DEFAULT 'LOW',
			shutdown_complete    INTEGER NOT NULL DEFAULT 0,
			photo                TEXT,
			ai_analysis          TEXT,
			daily_direction      TEXT,
			reality_check        TEXT,
			thinking_quality     TEXT,
			created_at           TEXT    NOT NULL DEFAULT (datetime('now')),
			updated_at           TEXT    NOT NULL DEFAULT (datetime('now'))
		);

		CREATE INDEX IF NOT EXISTS idx_days_updated ON days(updated_at DESC);
	`)
	return err
}

// ─── Records ─────────────────────────────────────────────────────────────────

const selectColumns = `date, answers, discipline_score, time_integrity_score, creation_ratio,
	pressure_level, shutdown_complete, photo, ai_analysis, daily_direction, reality_check, thinking_quality`

const upsertSQL = `
	INSERT INTO days (date, answers, discipline_score, time_integrity_score, creation_ratio,
	                  pressure_level, shutdown_complete, photo, ai_analysis, daily_direction,
	                  reality_check, thinking_quality)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(date) DO UPDATE SET
		answers              = excluded.answers,
		discipline_score     = excluded.discipline_score,
		time_integrity_score = excluded.time_integrity_score,
		creation_ratio       = excluded.creation_ratio,
		pressure_level       = excluded.pressure_level,
		shutdown_complete    = excluded.shutdown_complete,
		photo                = excluded.photo,
		ai_analysis          = excluded.ai_analysis,
		daily_direction      = excluded.daily_direction,
		reality_check        = excluded.reality_check,
		thinking_quality     = excluded.thinking_quality,
		updated_at           = datetime('now')`

type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

// Upsert replaces the record for rec.Date, or inserts it.
func (s *SQLiteStore) Upsert(rec discipline.DayRecord) error {
	return upsert(s.db, rec)
}

func upsert(db execer, rec discipline.DayRecord) error {
	answers := rec.Answers
	if answers == nil {
		answers = discipline.Answers{}
	}
	data, err := json.Marshal(answers)
	if err != nil {
		return fmt.Errorf("journal: marshal answers for %s: %w", rec.Date, err)
	}

	_, err = db.Exec(upsertSQL,
		rec.Date.String(), string(data),
		rec.DisciplineScore, rec.TimeIntegrityScore, rec.CreationRatio,
		string(rec.PressureLevel), rec.ShutdownComplete,
		nullableString(rec.Photo),
		nullableString(rec.Annotations.AIAnalysis),
		nullableString(rec.Annotations.DailyDirection),
		nullableString(rec.Annotations.RealityCheck),
		nullableString(string(rec.Annotations.ThinkingQuality)),
	)
	if err != nil {
		return fmt.Errorf("journal: upsert %s: %w", rec.Date, err)
	}
	return nil
}

// Get returns the record for day, or ErrNotFound.
func (s *SQLiteStore) Get(day calendar.Day) (*discipline.DayRecord, error) {
	row := s.db.QueryRow(`SELECT `+selectColumns+` FROM days WHERE date = ?`, day.String())
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w %s", ErrNotFound, day)
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// List returns every record, oldest first.
func (s *SQLiteStore) List() ([]discipline.DayRecord, error) {
	return s.query(`SELECT ` + selectColumns + ` FROM days ORDER BY date ASC`)
}

// Annotate overlays the non-empty fields of notes onto an existing record
// without touching its answers or scores.
func (s *SQLiteStore) Annotate(day calendar.Day, notes discipline.Annotations) (*discipline.DayRecord, error) {
	rec, err := s.Get(day)
	if err != nil {
		return nil, err
	}
	rec.Annotations = rec.Annotations.Overlay(notes)

	_, err = s.db.Exec(
		`UPDATE days
		 SET ai_analysis = ?, daily_direction = ?, reality_check = ?, thinking_quality = ?,
		     updated_at = datetime('now')
		 WHERE date = ?`,
		nullableString(rec.Annotations.AIAnalysis),
		nullableString(rec.Annotations.DailyDirection),
		nullableString(rec.Annotations.RealityCheck),
		nullableString(string(rec.Annotations.ThinkingQuality)),
		day.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("journal: annotate %s: %w", day, err)
	}
	return rec, nil
}

// ─── Stats ───────────────────────────────────────────────────────────────────

// Stats holds aggregate journal statistics.
type Stats struct {
	TotalDays int    `json:"total_days"`
	FirstDate string `json:"first_date,omitempty"`
	LastDate  string `json:"last_date,omitempty"`
	WithPhoto int    `json:"with_photo"`
	Annotated int    `json:"annotated"`
}

// Stats returns aggregate counts.
func (s *SQLiteStore) Stats() (*Stats, error) {
	var st Stats
	var first, last sql.NullString
	err := s.db.QueryRow(`
		SELECT COUNT(*), MIN(date), MAX(date),
		       COUNT(NULLIF(photo, '')),
		       COUNT(COALESCE(NULLIF(ai_analysis, ''), NULLIF(daily_direction, '')))
		FROM days`,
	).Scan(&st.TotalDays, &first, &last, &st.WithPhoto, &st.Annotated)
	if err != nil {
		return nil, fmt.Errorf("journal: stats: %w", err)
	}
	st.FirstDate = first.String
	st.LastDate = last.String
	return &st, nil
}

// ─── Export / Import ─────────────────────────────────────────────────────────

// ExportVersion tags the export format.
const ExportVersion = "1"

// ExportData is the full serializable dump of the journal.
type ExportData struct {
	Version    string                 `json:"version"`
	ExportedAt string                 `json:"exported_at"`
	Days       []discipline.DayRecord `json:"days"`
}

// ImportResult holds counts of imported records.
type ImportResult struct {
	DaysImported int `json:"days_imported"`
	DaysReplaced int `json:"days_replaced"`
}

// Export dumps every record, oldest first.
func (s *SQLiteStore) Export() (*ExportData, error) {
	days, err := s.List()
	if err != nil {
		return nil, fmt.Errorf("export days: %w", err)
	}
	return &ExportData{
		Version:    ExportVersion,
		ExportedAt: Now(),
		Days:       days,
	}, nil
}

// Import upserts every record in one transaction. Records are stored as
// given; callers re-derive scores first.
func (s *SQLiteStore) Import(days []discipline.DayRecord) (*ImportResult, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("import: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	result := &ImportResult{}
	for _, rec := range days {
		var exists int
		if err := tx.QueryRow(`SELECT COUNT(*) FROM days WHERE date = ?`, rec.Date.String()).Scan(&exists); err != nil {
			return nil, fmt.Errorf("import %s: %w", rec.Date, err)
		}
		if err := upsert(tx, rec); err != nil {
			return nil, fmt.Errorf("import %s: %w", rec.Date, err)
		}
		if exists > 0 {
			result.DaysReplaced++
		} else {
			result.DaysImported++
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("import: commit: %w", err)
	}
	return result, nil
}

// ─── Helpers ─────────────────────────────────────────────────────────────────

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*discipline.DayRecord, error) {
	var (
		date, answers, pressure                       string
		photo, analysis, direction, reality, thinking sql.NullString
		rec                                           discipline.DayRecord
	)
	if err := row.Scan(
		&date, &answers, &rec.DisciplineScore, &rec.TimeIntegrityScore, &rec.CreationRatio,
		&pressure, &rec.ShutdownComplete, &photo, &analysis, &direction, &reality, &thinking,
	); err != nil {
		return nil, err
	}

	day, err := calendar.Parse(date)
	if err != nil {
		return nil, fmt.Errorf("journal: stored record: %w", err)
	}
	rec.Date = day
	rec.Answers = discipline.Answers{}
	if err := json.Unmarshal([]byte(answers), &rec.Answers); err != nil {
		return nil, fmt.Errorf("journal: answers for %s: %w", date, err)
	}
	rec.PressureLevel = discipline.PressureLevel(pressure)
	rec.Photo = photo.String
	rec.Annotations = discipline.Annotations{
		AIAnalysis:      analysis.String,
		DailyDirection:  direction.String,
		RealityCheck:    reality.String,
		ThinkingQuality: discipline.ThinkingQuality(thinking.String),
	}
	return &rec, nil
}

func (s *SQLiteStore) query(query string, args ...any) ([]discipline.DayRecord, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var results []discipline.DayRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *rec)
	}
	return results, rows.Err()
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Now returns the current time formatted like SQLite's datetime('now').
func Now() string {
	return time.Now().UTC().Format("2006-01-02 15:04:05")
}
