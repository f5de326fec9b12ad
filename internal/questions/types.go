// Package questions defines the daily question catalog.
//
// The catalog is read-only configuration supplied by the surrounding
// application. The discipline engine only cares about a handful of
// question IDs and about which questions belong to the shutdown ritual;
// everything else is passed through for display, export and AI analysis.
package questions

import "fmt"

// --- Question type enum ---

// Type declares how an answer is entered and validated.
type Type string

const (
	TypeNumber  Type = "NUMBER"
	TypeBoolean Type = "BOOLEAN"
	TypeScale   Type = "SCALE" // 1..5
	TypeText    Type = "TEXT"
	TypeSelect  Type = "SELECT"
)

var validTypes = map[Type]bool{
	TypeNumber:  true,
	TypeBoolean: true,
	TypeScale:   true,
	TypeText:    true,
	TypeSelect:  true,
}

// ValidateType returns an error if the type is not recognized.
func ValidateType(t Type) error {
	if !validTypes[t] {
		return fmt.Errorf("invalid question type %q: must be one of: NUMBER, BOOLEAN, SCALE, TEXT, SELECT", t)
	}
	return nil
}

// Scale bounds for TypeScale answers.
const (
	ScaleMin = 1
	ScaleMax = 5
)

// --- Category enum ---

// Category groups questions on the entry form.
type Category string

const (
	CategoryIdentity   Category = "identity"
	CategoryWork       Category = "work"
	CategoryDecisions  Category = "decisions"
	CategoryEnergy     Category = "energy"
	CategoryDiscipline Category = "discipline"
	CategoryHealth     Category = "health"
	CategoryLearning   Category = "learning"
	CategoryReflection Category = "reflection"
	CategoryMoney      Category = "money"
	CategoryShutdown   Category = "shutdown" // must be fully answered to close a day
)

var validCategories = map[Category]bool{
	CategoryIdentity:   true,
	CategoryWork:       true,
	CategoryDecisions:  true,
	CategoryEnergy:     true,
	CategoryDiscipline: true,
	CategoryHealth:     true,
	CategoryLearning:   true,
	CategoryReflection: true,
	CategoryMoney:      true,
	CategoryShutdown:   true,
}

// ValidateCategory returns an error if the category is not recognized.
func ValidateCategory(c Category) error {
	if !validCategories[c] {
		return fmt.Errorf("invalid question category %q", c)
	}
	return nil
}

// --- Well-known question IDs read by the engine ---

const (
	IDCreationMinutes    = "creationMinutes"
	IDConsumptionMinutes = "consumptionMinutes"
	IDNamaz              = "namaz"
	IDExercise           = "exercise"
	IDExcuseType         = "excuseType"
)

// Definition describes one question on the daily form.
type Definition struct {
	ID       string   `json:"id" yaml:"id"`
	Label    string   `json:"label" yaml:"label"`
	Type     Type     `json:"type" yaml:"type"`
	Options  []string `json:"options,omitempty" yaml:"options,omitempty"` // SELECT only
	Category Category `json:"category" yaml:"category"`
}

// HasOption reports whether v is one of the definition's select options.
func (d Definition) HasOption(v string) bool {
	for _, o := range d.Options {
		if o == v {
			return true
		}
	}
	return false
}
