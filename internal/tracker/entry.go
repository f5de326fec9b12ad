package tracker

import (
	"errors"
	"fmt"
	"strings"

	"github.com/HendryAvila/lifeos/internal/calendar"
	"github.com/HendryAvila/lifeos/internal/discipline"
	"github.com/HendryAvila/lifeos/internal/journal"
)

// Draft is the record the entry form opens on.
// Existing is false when the record was synthesized with defaults.
type Draft struct {
	Record   discipline.DayRecord `json:"record"`
	Existing bool                 `json:"existing"`
	Gates    discipline.Gates     `json:"gates"`
}

// Begin returns the record to edit for day, or for the active day when
// day is nil. A day with no entry gets a fresh default record that is
// not persisted until saved.
func (t *Tracker) Begin(day *calendar.Day) (*Draft, error) {
	snap, err := t.load()
	if err != nil {
		return nil, err
	}
	target := snap.activeDay()
	if day != nil {
		target = *day
	}
	if err := snap.editable(target); err != nil {
		return nil, err
	}

	rec, ok := discipline.Find(snap.history, target)
	if !ok {
		rec = discipline.NewDayRecord(target)
	}
	return &Draft{Record: rec, Existing: ok, Gates: snap.gates}, nil
}

// SaveInput is one submission of the entry form.
type SaveInput struct {
	// Date defaults to the active day when nil.
	Date *calendar.Day
	// Answers is merged into the stored answers. A nil value clears a key.
	Answers map[string]any
	// Photo replaces the stored identity photo when non-empty.
	Photo string
	// ClearPhoto removes the stored photo. Photo wins if both are set.
	ClearPhoto bool
}

// Save validates the submission, merges it into the day's record,
// recomputes every derived field and writes the result.
func (t *Tracker) Save(in SaveInput) (*discipline.DayRecord, error) {
	if err := t.catalog.Validate(in.Answers); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAnswers, err)
	}

	snap, err := t.load()
	if err != nil {
		return nil, err
	}
	target := snap.activeDay()
	if in.Date != nil {
		target = *in.Date
	}
	if err := snap.editable(target); err != nil {
		t.log.Info("save rejected", "date", target, "reason", err)
		return nil, err
	}

	rec, ok := discipline.Find(snap.history, target)
	if !ok {
		rec = discipline.NewDayRecord(target)
	}
	rec.Answers = rec.Answers.Merge(in.Answers)
	switch {
	case strings.TrimSpace(in.Photo) != "":
		rec.Photo = strings.TrimSpace(in.Photo)
	case in.ClearPhoto:
		rec.Photo = ""
	}
	if t.requirePhoto && !ok && !rec.HasPhoto() {
		t.log.Info("save rejected", "date", target, "reason", ErrPhotoRequired)
		return nil, ErrPhotoRequired
	}
	rec = discipline.Evaluate(rec, t.catalog)

	if err := t.store.Upsert(rec); err != nil {
		return nil, fmt.Errorf("save %s: %w", target, err)
	}

	t.log.Info("day saved",
		"date", rec.Date,
		"created", !ok,
		"discipline", rec.DisciplineScore,
		"time_integrity", rec.TimeIntegrityScore,
		"ratio", rec.CreationRatio,
		"pressure", rec.PressureLevel,
		"shutdown_complete", rec.ShutdownComplete,
	)
	return &rec, nil
}

// Annotate attaches assistant output to an already-saved record. Day
// defaults to the newest record. Answers and scores are untouched.
func (t *Tracker) Annotate(day *calendar.Day, notes discipline.Annotations) (*discipline.DayRecord, error) {
	if notes.IsZero() {
		return nil, ErrNothingToAnnotate
	}
	if err := discipline.ValidateThinkingQuality(notes.ThinkingQuality); err != nil {
		return nil, err
	}

	snap, err := t.require(discipline.ViewAssistant)
	if err != nil {
		return nil, err
	}
	var target calendar.Day
	switch {
	case day != nil:
		target = *day
	default:
		latest, ok := discipline.Latest(snap.history)
		if !ok {
			return nil, fmt.Errorf("annotate: %w", journal.ErrNotFound)
		}
		target = latest.Date
	}

	rec, err := t.store.Annotate(target, notes)
	if errors.Is(err, journal.ErrNotFound) {
		return nil, fmt.Errorf("annotate: save the day first: %w", err)
	}
	if err != nil {
		return nil, fmt.Errorf("annotate %s: %w", target, err)
	}

	t.log.Info("day annotated",
		"date", target,
		"thinking_quality", rec.Annotations.ThinkingQuality,
		"has_direction", rec.Annotations.DailyDirection != "",
	)
	return rec, nil
}
