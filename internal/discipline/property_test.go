package discipline

import (
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/HendryAvila/lifeos/internal/questions"
)

// TestScoringProperties checks the score ranges and the pressure rule
// over generated answer maps.
func TestScoringProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	namaz := gen.IntRange(0, 5)
	minutes := gen.Float64Range(0, 1440)

	properties.Property("scores stay within 0..100 and ratio within 0..1", prop.ForAll(
		func(n int, exercise bool, creation, consumption float64) bool {
			s := Score(answers(float64(n), exercise, creation, consumption))
			return s.DisciplineScore >= 0 && s.DisciplineScore <= 100 &&
				s.TimeIntegrityScore >= 0 && s.TimeIntegrityScore <= 100 &&
				s.CreationRatio >= 0 && s.CreationRatio <= 1
		},
		namaz, gen.Bool(), minutes, minutes,
	))

	properties.Property("fewer than five prayers is always HIGH pressure", prop.ForAll(
		func(n int, creation, consumption float64) bool {
			return Pressure(answers(float64(n), false, creation, consumption)) == PressureHigh
		},
		gen.IntRange(0, 4), minutes, minutes,
	))

	properties.Property("evaluating the same answers twice is identical", prop.ForAll(
		func(n int, exercise bool, creation, consumption float64, closed bool) bool {
			a := answers(float64(n), exercise, creation, consumption)
			if closed {
				a = a.Merge(shutdownAnswers())
			}
			r := NewDayRecord(today)
			r.Answers = a
			first := Evaluate(r, questions.Default())
			second := Evaluate(first, questions.Default())
			return reflect.DeepEqual(first, second)
		},
		namaz, gen.Bool(), minutes, minutes, gen.Bool(),
	))

	properties.TestingRun(t)
}

// TestGateProperties checks the lockout boundary and streak bounds.
func TestGateProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("locked exactly when the newest record is more than two days away", prop.ForAll(
		func(offsets []int) bool {
			if len(offsets) == 0 {
				return !LockedOut(nil, today)
			}
			var history []DayRecord
			newest := offsets[0]
			for _, off := range offsets {
				history = append(history, NewDayRecord(today.AddDays(-off)))
				if off < newest {
					newest = off
				}
			}
			return LockedOut(history, today) == (newest > LockoutAfterDays)
		},
		gen.SliceOf(gen.IntRange(0, 60)),
	))

	properties.Property("streak never exceeds the number of distinct days", prop.ForAll(
		func(offsets []int) bool {
			var history []DayRecord
			for _, off := range offsets {
				history = append(history, strictDay(-off, 30))
			}
			return StrictStreak(history, today) <= len(Normalize(history))
		},
		gen.SliceOf(gen.IntRange(0, 10)),
	))

	properties.TestingRun(t)
}
