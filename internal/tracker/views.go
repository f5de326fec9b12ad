package tracker

import (
	"fmt"

	"github.com/HendryAvila/lifeos/internal/calendar"
	"github.com/HendryAvila/lifeos/internal/discipline"
	"github.com/HendryAvila/lifeos/internal/journal"
)

// Status is the lock-screen and dashboard header snapshot. It is always
// reachable, even while locked.
type Status struct {
	Today      calendar.Day             `json:"today"`
	ActiveDay  calendar.Day             `json:"activeDay"`
	Gates      discipline.Gates         `json:"gates"`
	Access     map[discipline.View]bool `json:"access"`
	Streak     int                      `json:"streak"`
	TodayLog   *discipline.DayRecord    `json:"todayLog,omitempty"`
	Direction  string                   `json:"dailyDirection,omitempty"`
	Week       discipline.Summary       `json:"week"`
	TotalDays  int                      `json:"totalDays"`
	SilentMode bool                     `json:"silentMode"`
}

// Status computes the current snapshot.
func (t *Tracker) Status() (*Status, error) {
	snap, err := t.load()
	if err != nil {
		return nil, err
	}

	st := &Status{
		Today:      snap.today,
		ActiveDay:  snap.activeDay(),
		Gates:      snap.gates,
		Access:     make(map[discipline.View]bool, 4),
		Streak:     discipline.StrictStreak(snap.history, snap.today),
		Week:       discipline.Summarize(discipline.LastN(snap.history, discipline.WeekLength)),
		TotalDays:  len(snap.history),
		SilentMode: t.SilentMode(),
	}
	for _, v := range []discipline.View{discipline.ViewEntry, discipline.ViewDashboard, discipline.ViewAssistant, discipline.ViewSettings} {
		st.Access[v] = snap.gates.Allows(v)
	}
	if rec, ok := discipline.Find(snap.history, snap.today); ok {
		st.TodayLog = &rec
	}
	// Tomorrow's order is written onto the previous day.
	if prev, ok := discipline.Find(snap.history, snap.today.Yesterday()); ok {
		st.Direction = prev.Annotations.DailyDirection
	}
	if st.Direction == "" && st.TodayLog != nil {
		st.Direction = st.TodayLog.Annotations.DailyDirection
	}
	return st, nil
}

// History returns up to limit records, newest first. limit <= 0 means all.
func (t *Tracker) History(limit int) ([]discipline.DayRecord, error) {
	snap, err := t.require(discipline.ViewDashboard)
	if err != nil {
		return nil, err
	}
	out := discipline.Descending(snap.history)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Get returns the record for one day.
func (t *Tracker) Get(day calendar.Day) (*discipline.DayRecord, error) {
	snap, err := t.require(discipline.ViewDashboard)
	if err != nil {
		return nil, err
	}
	rec, ok := discipline.Find(snap.history, day)
	if !ok {
		return nil, fmt.Errorf("%w %s", journal.ErrNotFound, day)
	}
	return &rec, nil
}

// Weekly is the input to the weekly truth report.
type Weekly struct {
	Digest  []discipline.DigestEntry `json:"digest"`
	Summary discipline.Summary       `json:"summary"`
	Streak  int                      `json:"streak"`
}

// Weekly returns the last seven records as a digest plus their averages.
func (t *Tracker) Weekly() (*Weekly, error) {
	snap, err := t.require(discipline.ViewDashboard)
	if err != nil {
		return nil, err
	}
	return &Weekly{
		Digest:  discipline.WeeklyDigest(snap.history),
		Summary: discipline.Summarize(discipline.LastN(snap.history, discipline.WeekLength)),
		Streak:  discipline.StrictStreak(snap.history, snap.today),
	}, nil
}
