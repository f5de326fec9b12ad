package discipline

import (
	"testing"

	"github.com/HendryAvila/lifeos/internal/questions"
)

func answers(namaz float64, exercise bool, creation, consumption float64) Answers {
	return Answers{
		questions.IDNamaz:              namaz,
		questions.IDExercise:           exercise,
		questions.IDCreationMinutes:    creation,
		questions.IDConsumptionMinutes: consumption,
	}
}

// --- DisciplineScore ---

func TestDisciplineScore(t *testing.T) {
	tests := []struct {
		name string
		a    Answers
		want int
	}{
		{"empty answers", Answers{}, 50},
		{"full day", answers(5, true, 150, 30), 95},
		{"prayers only", answers(3, false, 0, 0), 62},
		{"exercise only", answers(0, true, 0, 0), 60},
		{"creation exactly 60 earns nothing", answers(0, false, 60, 0), 50},
		{"creation 61 earns mid bonus", answers(0, false, 61, 0), 55},
		{"creation exactly 120 earns mid bonus", answers(0, false, 120, 0), 55},
		{"creation 121 earns high bonus", answers(0, false, 121, 0), 65},
		{"consumption exactly 120 no penalty", answers(0, false, 0, 120), 50},
		{"consumption 121 first penalty", answers(0, false, 0, 121), 40},
		{"consumption exactly 240 first penalty only", answers(0, false, 0, 240), 40},
		{"consumption 241 stacks both penalties", answers(0, false, 0, 241), 20},
		{"clamped at 100", answers(10, true, 500, 0), 100},
		{"negative values read as zero", answers(-5, false, -100, -100), 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisciplineScore(tt.a); got != tt.want {
				t.Errorf("DisciplineScore = %d, want %d", got, tt.want)
			}
		})
	}
}

// --- TimeIntegrityScore ---

func TestTimeIntegrityScore(t *testing.T) {
	tests := []struct {
		name string
		a    Answers
		want int
	}{
		{"nothing tracked", Answers{}, 100},
		{"light consumption under creation", answers(5, false, 150, 30), 94},
		{"consumption over creation adds flat penalty", answers(5, false, 0, 12), 83},
		{"equal minutes no flat penalty", answers(5, false, 50, 50), 90},
		{"half rounds up", answers(5, false, 0, 12.5), 82},
		{"1.5 rounds to 2", answers(5, false, 10, 7.5), 98},
		{"clamped at zero", answers(5, false, 0, 600), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TimeIntegrityScore(tt.a); got != tt.want {
				t.Errorf("TimeIntegrityScore = %d, want %d", got, tt.want)
			}
		})
	}
}

// --- CreationRatio ---

func TestCreationRatio(t *testing.T) {
	tests := []struct {
		name                  string
		creation, consumption float64
		want                  float64
	}{
		{"both zero", 0, 0, 0},
		{"creation only", 90, 0, 1},
		{"consumption only", 0, 90, 0},
		{"one third", 100, 200, 0.33},
		{"two thirds", 200, 100, 0.67},
		{"rounded to two decimals", 150, 30, 0.83},
		{"even split", 45, 45, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CreationRatio(answers(5, false, tt.creation, tt.consumption))
			if got != tt.want {
				t.Errorf("CreationRatio = %v, want %v", got, tt.want)
			}
		})
	}
}

// --- PressureLevel ---

func TestPressure(t *testing.T) {
	tests := []struct {
		name string
		a    Answers
		want PressureLevel
	}{
		{"no answers is high (no prayers)", Answers{}, PressureHigh},
		{"heavy consumption", answers(5, false, 0, 181), PressureHigh},
		{"consumption exactly 180 not high", answers(5, false, 0, 180), PressureMedium},
		{"missed prayer beats low triggers", answers(4, false, 200, 0), PressureHigh},
		{"maintenance day", answers(5, false, 121, 59), PressureLow},
		{"creation exactly 120 is medium", answers(5, false, 120, 0), PressureMedium},
		{"consumption exactly 60 is medium", answers(5, false, 200, 60), PressureMedium},
		{"six prayers is not below five", answers(6, false, 200, 0), PressureLow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Pressure(tt.a); got != tt.want {
				t.Errorf("Pressure = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestValidatePressure(t *testing.T) {
	for _, p := range []PressureLevel{PressureLow, PressureMedium, PressureHigh} {
		if err := ValidatePressure(p); err != nil {
			t.Errorf("ValidatePressure(%s) error: %v", p, err)
		}
	}
	if err := ValidatePressure("EXTREME"); err == nil {
		t.Error("ValidatePressure should reject unknown level")
	}
}

// --- Score ---

func TestScore_MatchesIndividualFunctions(t *testing.T) {
	a := answers(5, true, 150, 30)
	s := Score(a)
	want := Scores{DisciplineScore: 95, TimeIntegrityScore: 94, CreationRatio: 0.83, PressureLevel: PressureLow}
	if s != want {
		t.Errorf("Score = %+v, want %+v", s, want)
	}
}

// --- Answers accessors ---

func TestAnswers_Number(t *testing.T) {
	a := Answers{
		"f":     float64(12.5),
		"i":     7,
		"str":   " 90 ",
		"bad":   "ninety",
		"true":  true,
		"list":  []any{1},
		"empty": "",
	}
	tests := map[string]float64{"f": 12.5, "i": 7, "str": 90, "bad": 0, "true": 1, "list": 0, "empty": 0, "missing": 0}
	for key, want := range tests {
		if got := a.Number(key); got != want {
			t.Errorf("Number(%q) = %v, want %v", key, got, want)
		}
	}
}

func TestAnswers_Bool(t *testing.T) {
	a := Answers{"t": true, "f": false, "yes": "Yes", "one": float64(1), "zero": float64(0), "word": "maybe", "str": "true"}
	tests := map[string]bool{"t": true, "f": false, "yes": true, "one": true, "zero": false, "word": false, "str": true, "missing": false}
	for key, want := range tests {
		if got := a.Bool(key); got != want {
			t.Errorf("Bool(%q) = %v, want %v", key, got, want)
		}
	}
}

func TestAnswers_Answered(t *testing.T) {
	a := Answers{"false": false, "zero": float64(0), "text": "x", "blank": "   ", "nil": nil}
	tests := map[string]bool{"false": true, "zero": true, "text": true, "blank": false, "nil": false, "missing": false}
	for key, want := range tests {
		if got := a.Answered(key); got != want {
			t.Errorf("Answered(%q) = %v, want %v", key, got, want)
		}
	}
}

func TestAnswers_Merge(t *testing.T) {
	base := Answers{"keep": "a", "replace": float64(1), "drop": true}
	merged := base.Merge(map[string]any{"replace": float64(2), "drop": nil, "add": "b"})

	if merged["keep"] != "a" || merged["replace"] != float64(2) || merged["add"] != "b" {
		t.Errorf("Merge = %v", merged)
	}
	if _, ok := merged["drop"]; ok {
		t.Error("nil patch value should delete the key")
	}
	if base["replace"] != float64(1) {
		t.Error("Merge must not mutate the receiver")
	}
}
