package discipline

import (
	"math"
	"strconv"
	"strings"

	"github.com/HendryAvila/lifeos/internal/questions"
)

// Answers maps question IDs to raw answer values as they arrive from the
// form (JSON numbers are float64). The engine reads it only through the
// accessors below, which never fail: a missing or unreadable number is 0
// and a missing or unreadable boolean is false.
type Answers map[string]any

// Number reads a numeric answer. Numeric strings are accepted.
func (a Answers) Number(id string) float64 {
	var n float64
	switch v := a[id].(type) {
	case float64:
		n = v
	case float32:
		n = float64(v)
	case int:
		n = float64(v)
	case int64:
		n = float64(v)
	case bool:
		if v {
			n = 1
		}
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		n = parsed
	default:
		return 0
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return n
}

// Bool reads a yes/no answer.
func (a Answers) Bool(id string) bool {
	switch v := a[id].(type) {
	case bool:
		return v
	case float64:
		return v != 0
	case int:
		return v != 0
	case string:
		s := strings.ToLower(strings.TrimSpace(v))
		if s == "yes" || s == "y" {
			return true
		}
		b, err := strconv.ParseBool(s)
		return err == nil && b
	default:
		return false
	}
}

// String reads a text answer; non-strings yield "".
func (a Answers) String(id string) string {
	s, _ := a[id].(string)
	return s
}

// Answered reports whether id has a defined, non-empty answer. false and
// 0 count as answered; nil and blank strings do not.
func (a Answers) Answered(id string) bool {
	v, ok := a[id]
	if !ok || v == nil {
		return false
	}
	if s, isStr := v.(string); isStr {
		return strings.TrimSpace(s) != ""
	}
	return true
}

// Clone returns a shallow copy.
func (a Answers) Clone() Answers {
	out := make(Answers, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Merge returns a copy of a with patch applied. A nil value in patch
// removes the key.
func (a Answers) Merge(patch map[string]any) Answers {
	out := a.Clone()
	for k, v := range patch {
		if v == nil {
			delete(out, k)
			continue
		}
		out[k] = v
	}
	return out
}

// Metrics is the typed view of the answers the engine scores.
type Metrics struct {
	Namaz              float64
	Exercise           bool
	CreationMinutes    float64
	ConsumptionMinutes float64
}

// ReadMetrics extracts the scored fields. Negative values read as 0.
func ReadMetrics(a Answers) Metrics {
	return Metrics{
		Namaz:              nonNegative(a.Number(questions.IDNamaz)),
		Exercise:           a.Bool(questions.IDExercise),
		CreationMinutes:    nonNegative(a.Number(questions.IDCreationMinutes)),
		ConsumptionMinutes: nonNegative(a.Number(questions.IDConsumptionMinutes)),
	}
}

func nonNegative(n float64) float64 {
	if n < 0 {
		return 0
	}
	return n
}
