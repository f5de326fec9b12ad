package discipline

import (
	"fmt"

	"github.com/HendryAvila/lifeos/internal/calendar"
)

// View is a screen of the application.
type View string

const (
	ViewEntry     View = "entry"     // the daily form; always reachable
	ViewDashboard View = "dashboard" // history, streak, weekly report
	ViewAssistant View = "assistant" // AI analysis of a saved day
	ViewSettings  View = "settings"  // export, preferences
)

// ValidateView returns an error if the view is not recognized.
func ValidateView(v View) error {
	switch v {
	case ViewEntry, ViewDashboard, ViewAssistant, ViewSettings:
		return nil
	}
	return fmt.Errorf("invalid view %q: must be one of: entry, dashboard, assistant, settings", v)
}

// Gates is the combined lock state for one moment.
type Gates struct {
	Today          calendar.Day  `json:"today"`
	Lockout        LockoutStatus `json:"lockout"`
	ShutdownLocked bool          `json:"shutdownLocked"`
}

// CheckGates evaluates both locks against one snapshot of history.
func CheckGates(history []DayRecord, today calendar.Day) Gates {
	return Gates{
		Today:          today,
		Lockout:        Lockout(history, today),
		ShutdownLocked: ShutdownLocked(history, today),
	}
}

// Allows reports whether v is reachable. The entry form always is;
// every other view needs both locks open.
func (g Gates) Allows(v View) bool {
	if v == ViewEntry {
		return true
	}
	return !g.Lockout.Locked && !g.ShutdownLocked
}

// CanSave reports whether a record dated day may be saved. Only today
// and yesterday are editable. Yesterday stays editable so its shutdown
// ritual can be completed; today is blocked while that is pending.
func (g Gates) CanSave(day calendar.Day) bool {
	switch day {
	case g.Today.Yesterday():
		return true
	case g.Today:
		return !g.ShutdownLocked
	default:
		return false
	}
}
