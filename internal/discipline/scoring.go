package discipline

import (
	"fmt"
	"math"
)

// --- Pressure level enum ---

// PressureLevel classifies how hard tomorrow should push.
type PressureLevel string

const (
	PressureLow    PressureLevel = "LOW"
	PressureMedium PressureLevel = "MEDIUM"
	PressureHigh   PressureLevel = "HIGH"
)

// ValidatePressure returns an error if the level is not recognized.
func ValidatePressure(p PressureLevel) error {
	switch p {
	case PressureLow, PressureMedium, PressureHigh:
		return nil
	}
	return fmt.Errorf("invalid pressure level %q: must be one of: LOW, MEDIUM, HIGH", p)
}

// Scoring constants.
const (
	disciplineBase          = 50
	pointsPerPrayer         = 4
	exerciseBonus           = 10
	creationHighMinutes     = 120
	creationHighBonus       = 15
	creationMidMinutes      = 60
	creationMidBonus        = 5
	consumptionWarnMinutes  = 120
	consumptionWarnPenalty  = 10
	consumptionHeavyMinutes = 240
	consumptionHeavyPenalty = 20

	integrityBase          = 100
	minutesPerIntegrityPt  = 5
	consumptionOverPenalty = 15

	pressureHighConsumption = 180
	fullPrayerCount         = 5
	pressureLowCreation     = 120
	pressureLowConsumption  = 60
)

// Scores holds every derived metric of one day.
type Scores struct {
	DisciplineScore    int           `json:"disciplineScore"`
	TimeIntegrityScore int           `json:"timeIntegrityScore"`
	CreationRatio      float64       `json:"creationRatio"`
	PressureLevel      PressureLevel `json:"pressureLevel"`
}

// Score computes all derived metrics from one day's answers.
func Score(a Answers) Scores {
	m := ReadMetrics(a)
	return Scores{
		DisciplineScore:    m.DisciplineScore(),
		TimeIntegrityScore: m.TimeIntegrityScore(),
		CreationRatio:      m.CreationRatio(),
		PressureLevel:      m.PressureLevel(),
	}
}

// DisciplineScore is Score(a).DisciplineScore.
func DisciplineScore(a Answers) int { return ReadMetrics(a).DisciplineScore() }

// TimeIntegrityScore is Score(a).TimeIntegrityScore.
func TimeIntegrityScore(a Answers) int { return ReadMetrics(a).TimeIntegrityScore() }

// CreationRatio is Score(a).CreationRatio.
func CreationRatio(a Answers) float64 { return ReadMetrics(a).CreationRatio() }

// Pressure is Score(a).PressureLevel.
func Pressure(a Answers) PressureLevel { return ReadMetrics(a).PressureLevel() }

// DisciplineScore rewards prayer, exercise and creation and penalizes
// heavy consumption. The two consumption penalties stack. Range 0..100.
func (m Metrics) DisciplineScore() int {
	score := float64(disciplineBase)
	score += m.Namaz * pointsPerPrayer
	if m.Exercise {
		score += exerciseBonus
	}

	switch {
	case m.CreationMinutes > creationHighMinutes:
		score += creationHighBonus
	case m.CreationMinutes > creationMidMinutes:
		score += creationMidBonus
	}

	if m.ConsumptionMinutes > consumptionWarnMinutes {
		score -= consumptionWarnPenalty
	}
	if m.ConsumptionMinutes > consumptionHeavyMinutes {
		score -= consumptionHeavyPenalty
	}

	return clampScore(score)
}

// TimeIntegrityScore loses a point per 5 consumed minutes plus a flat
// penalty when consumption beat creation. Range 0..100.
func (m Metrics) TimeIntegrityScore() int {
	score := float64(integrityBase)
	score -= roundHalfUp(m.ConsumptionMinutes / minutesPerIntegrityPt)
	if m.ConsumptionMinutes > m.CreationMinutes {
		score -= consumptionOverPenalty
	}
	return clampScore(score)
}

// CreationRatio is creation / (creation + consumption) to two decimals,
// or 0 when nothing was tracked.
func (m Metrics) CreationRatio() float64 {
	total := m.CreationMinutes + m.ConsumptionMinutes
	if total == 0 {
		return 0
	}
	return roundHalfUp(m.CreationMinutes/total*100) / 100
}

// PressureLevel checks HIGH before LOW; a day matching both is HIGH.
func (m Metrics) PressureLevel() PressureLevel {
	if m.ConsumptionMinutes > pressureHighConsumption || m.Namaz < fullPrayerCount {
		return PressureHigh
	}
	if m.CreationMinutes > pressureLowCreation && m.ConsumptionMinutes < pressureLowConsumption {
		return PressureLow
	}
	return PressureMedium
}

func clampScore(v float64) int {
	return int(math.Max(0, math.Min(100, math.Round(v))))
}

// roundHalfUp rounds .5 toward positive infinity.
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}
