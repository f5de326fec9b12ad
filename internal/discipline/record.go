// Package discipline is the discipline engine: scoring one day's answers,
// the shutdown gate between consecutive days, the inactivity lockout and
// the strict-compliance streak.
//
// Everything here is a pure function of its inputs. "Today" is always a
// parameter, history slices are never mutated, and nothing touches
// storage. Callers own persistence and the clock.
package discipline

import (
	"fmt"

	"github.com/HendryAvila/lifeos/internal/calendar"
	"github.com/HendryAvila/lifeos/internal/questions"
)

// --- Thinking quality enum ---

// ThinkingQuality is the AI's classification of the day's deep thought.
type ThinkingQuality string

const (
	ThinkingSurface   ThinkingQuality = "Surface"
	ThinkingPractical ThinkingQuality = "Practical"
	ThinkingStrategic ThinkingQuality = "Strategic"
	ThinkingLongTerm  ThinkingQuality = "Long-term"
)

// ValidateThinkingQuality returns an error if q is set and not recognized.
func ValidateThinkingQuality(q ThinkingQuality) error {
	switch q {
	case "", ThinkingSurface, ThinkingPractical, ThinkingStrategic, ThinkingLongTerm:
		return nil
	}
	return fmt.Errorf("invalid thinking quality %q: must be one of: Surface, Practical, Strategic, Long-term", q)
}

// Annotations are written by the AI collaborator after a day is saved.
// The engine never reads them.
type Annotations struct {
	AIAnalysis      string          `json:"aiAnalysis,omitempty"`
	DailyDirection  string          `json:"dailyDirection,omitempty"` // one-sentence order for tomorrow
	RealityCheck    string          `json:"realityCheck,omitempty"`
	ThinkingQuality ThinkingQuality `json:"thinkingQuality,omitempty"`
}

// IsZero reports whether no annotation is set.
func (a Annotations) IsZero() bool {
	return a == Annotations{}
}

// Overlay returns a with every non-empty field of b applied on top.
func (a Annotations) Overlay(b Annotations) Annotations {
	if b.AIAnalysis != "" {
		a.AIAnalysis = b.AIAnalysis
	}
	if b.DailyDirection != "" {
		a.DailyDirection = b.DailyDirection
	}
	if b.RealityCheck != "" {
		a.RealityCheck = b.RealityCheck
	}
	if b.ThinkingQuality != "" {
		a.ThinkingQuality = b.ThinkingQuality
	}
	return a
}

// DayRecord is one calendar day's answers plus everything derived from
// them. Date is the identity: at most one record exists per date.
type DayRecord struct {
	Date    calendar.Day `json:"date"`
	Answers Answers      `json:"answers"`
	Scores

	// ShutdownComplete is true when every shutdown question is answered.
	ShutdownComplete bool `json:"shutdownComplete"`

	// Photo references the day's identity-proof image (data URL or path).
	Photo string `json:"photo,omitempty"`

	Annotations Annotations `json:"annotations"`
}

// NewDayRecord synthesizes the blank record shown when a day has no
// entry yet. It is not persisted until saved.
func NewDayRecord(day calendar.Day) DayRecord {
	return DayRecord{
		Date:    day,
		Answers: Answers{},
		Scores: Scores{
			DisciplineScore:    0,
			TimeIntegrityScore: 100,
			CreationRatio:      0,
			PressureLevel:      PressureLow,
		},
	}
}

// HasPhoto reports whether an identity photo is attached.
func (r DayRecord) HasPhoto() bool {
	return r.Photo != ""
}

// Evaluate returns r with every derived field recomputed from its
// current answers. It is deterministic: evaluating the same answers
// twice yields identical fields. Annotations and the photo pass through.
func Evaluate(r DayRecord, catalog *questions.Catalog) DayRecord {
	if r.Answers == nil {
		r.Answers = Answers{}
	}
	r.Scores = Score(r.Answers)
	r.ShutdownComplete = ShutdownComplete(r.Answers, catalog.ShutdownIDs())
	return r
}
