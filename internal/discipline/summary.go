package discipline

import (
	"math"

	"github.com/HendryAvila/lifeos/internal/calendar"
	"github.com/HendryAvila/lifeos/internal/questions"
)

// WeekLength is the window of the weekly report and dashboard averages.
const WeekLength = 7

// DigestEntry is the per-day payload of the weekly truth report.
type DigestEntry struct {
	Date          calendar.Day  `json:"date"`
	CreationRatio float64       `json:"ratio"`
	PressureLevel PressureLevel `json:"pressure"`
	Excuse        string        `json:"excuse,omitempty"`
}

// WeeklyDigest returns the last WeekLength records, oldest first.
func WeeklyDigest(history []DayRecord) []DigestEntry {
	recent := LastN(history, WeekLength)
	out := make([]DigestEntry, len(recent))
	for i, r := range recent {
		out[i] = DigestEntry{
			Date:          r.Date,
			CreationRatio: r.CreationRatio,
			PressureLevel: r.PressureLevel,
			Excuse:        r.Answers.String(questions.IDExcuseType),
		}
	}
	return out
}

// Summary aggregates the dashboard numbers over recent days.
type Summary struct {
	Days                  int     `json:"days"`
	AvgDisciplineScore    float64 `json:"avgDisciplineScore"`
	AvgTimeIntegrityScore float64 `json:"avgTimeIntegrityScore"`
	AvgCreationRatio      float64 `json:"avgCreationRatio"`
	HighPressureDays      int     `json:"highPressureDays"`
	ShutdownMisses        int     `json:"shutdownMisses"`
}

// Summarize averages the last WeekLength records. Averages are rounded
// to one decimal (ratio to two).
func Summarize(history []DayRecord) Summary {
	recent := LastN(history, WeekLength)
	s := Summary{Days: len(recent)}
	if s.Days == 0 {
		return s
	}

	var disc, integ, ratio float64
	for _, r := range recent {
		disc += float64(r.DisciplineScore)
		integ += float64(r.TimeIntegrityScore)
		ratio += r.CreationRatio
		if r.PressureLevel == PressureHigh {
			s.HighPressureDays++
		}
		if !r.ShutdownComplete {
			s.ShutdownMisses++
		}
	}
	n := float64(s.Days)
	s.AvgDisciplineScore = math.Round(disc/n*10) / 10
	s.AvgTimeIntegrityScore = math.Round(integ/n*10) / 10
	s.AvgCreationRatio = math.Round(ratio/n*100) / 100
	return s
}
