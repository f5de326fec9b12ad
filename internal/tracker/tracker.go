// Package tracker is the application service around the discipline engine.
//
// It reads the clock once per call, loads history from the journal,
// applies the access gates and recomputes every derived field before a
// record is written. Transports (MCP tools, CLI) talk to the Tracker and
// never to the engine or the store directly.
package tracker

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/HendryAvila/lifeos/internal/calendar"
	"github.com/HendryAvila/lifeos/internal/discipline"
	"github.com/HendryAvila/lifeos/internal/journal"
	"github.com/HendryAvila/lifeos/internal/logger"
	"github.com/HendryAvila/lifeos/internal/questions"
)

// Product-state errors. Transports map these to user-facing messages.
var (
	ErrLockedOut         = errors.New("locked: complete today's log to unlock")
	ErrShutdownPending   = errors.New("yesterday's shutdown ritual is incomplete: finish yesterday's log first")
	ErrDateNotEditable   = errors.New("only today and yesterday can be edited")
	ErrInvalidAnswers    = errors.New("invalid answers")
	ErrNothingToAnnotate = errors.New("no annotation fields provided")
	ErrPhotoRequired     = errors.New("an identity photo is required to log a new day")
	ErrFutureDate        = errors.New("date is after today")
)

// Tracker coordinates the clock, the journal and the engine.
type Tracker struct {
	store   journal.Store
	catalog *questions.Catalog
	log     *logger.Logger
	now     func() time.Time
	silent  atomic.Bool

	requirePhoto bool
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock overrides the wall clock.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *logger.Logger) Option {
	return func(t *Tracker) { t.log = l }
}

// WithSilentMode sets the initial silent-mode preference.
func WithSilentMode(on bool) Option {
	return func(t *Tracker) { t.silent.Store(on) }
}

// WithRequirePhoto makes the first save of a day fail without a photo.
func WithRequirePhoto(on bool) Option {
	return func(t *Tracker) { t.requirePhoto = on }
}

// New creates a Tracker. A nil catalog means the built-in one.
func New(store journal.Store, catalog *questions.Catalog, opts ...Option) *Tracker {
	if catalog == nil {
		catalog = questions.Default()
	}
	t := &Tracker{
		store:   store,
		catalog: catalog,
		log:     logger.NewNop(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.log = t.log.With("component", "tracker")
	return t
}

// Catalog returns the active question catalog.
func (t *Tracker) Catalog() *questions.Catalog { return t.catalog }

// SilentMode reports the current tone preference.
func (t *Tracker) SilentMode() bool { return t.silent.Load() }

// SetSilentMode changes the tone preference for later prompts. It is a
// settings change, so it needs both locks open.
func (t *Tracker) SetSilentMode(on bool) error {
	if _, err := t.require(discipline.ViewSettings); err != nil {
		return err
	}
	t.silent.Store(on)
	t.log.Info("silent mode changed", "silent", on)
	return nil
}

// Today returns the local calendar date.
func (t *Tracker) Today() calendar.Day {
	return calendar.FromTime(t.now())
}

// snapshot is one consistent view of history and locks for a single call.
type snapshot struct {
	today   calendar.Day
	history []discipline.DayRecord
	gates   discipline.Gates
}

func (t *Tracker) load() (*snapshot, error) {
	today := t.Today()
	history, err := t.store.List()
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	history = discipline.Normalize(history)
	return &snapshot{
		today:   today,
		history: history,
		gates:   discipline.CheckGates(history, today),
	}, nil
}

// require loads a snapshot and fails with ErrLockedOut unless v is reachable.
func (t *Tracker) require(v discipline.View) (*snapshot, error) {
	snap, err := t.load()
	if err != nil {
		return nil, err
	}
	if !snap.gates.Allows(v) {
		t.log.Debug("access denied",
			"view", v,
			"locked_out", snap.gates.Lockout.Locked,
			"shutdown_locked", snap.gates.ShutdownLocked,
		)
		if snap.gates.ShutdownLocked {
			return nil, fmt.Errorf("%s: %w", v, ErrShutdownPending)
		}
		return nil, fmt.Errorf("%s: %w", v, ErrLockedOut)
	}
	return snap, nil
}

// activeDay is the day the entry form should open on: yesterday while
// its shutdown is pending, today otherwise.
func (s *snapshot) activeDay() calendar.Day {
	if s.gates.ShutdownLocked {
		return s.today.Yesterday()
	}
	return s.today
}

// editable checks that day may be written in this snapshot.
func (s *snapshot) editable(day calendar.Day) error {
	if s.gates.CanSave(day) {
		return nil
	}
	if day == s.today && s.gates.ShutdownLocked {
		return ErrShutdownPending
	}
	return fmt.Errorf("%s: %w", day, ErrDateNotEditable)
}
