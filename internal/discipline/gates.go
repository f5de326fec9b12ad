package discipline

import "github.com/HendryAvila/lifeos/internal/calendar"

// LockoutAfterDays is the longest allowed absence. A gap of more days
// than this between the latest record and today locks the application.
const LockoutAfterDays = 2

// ShutdownComplete reports whether every shutdown question has a
// non-empty answer. With no shutdown questions the ritual is trivially
// complete.
func ShutdownComplete(a Answers, shutdownIDs []string) bool {
	for _, id := range shutdownIDs {
		if !a.Answered(id) {
			return false
		}
	}
	return true
}

// ShutdownLocked reports whether today's entry flow is blocked because
// yesterday's record exists with its shutdown ritual incomplete. A
// missing yesterday never locks.
//
// The only way out is re-saving yesterday with the shutdown answers
// filled in, which flips its ShutdownComplete.
func ShutdownLocked(history []DayRecord, today calendar.Day) bool {
	y, ok := Find(history, today.Yesterday())
	return ok && !y.ShutdownComplete
}

// LockoutStatus describes the inactivity lockout.
type LockoutStatus struct {
	Locked bool `json:"locked"`
	// HasHistory is false when no record exists; the other fields are
	// then zero.
	HasHistory    bool         `json:"hasHistory"`
	LastDate      calendar.Day `json:"lastDate,omitempty"`
	DaysSinceLast int          `json:"daysSinceLast"`
}

// Lockout checks the newest record against today. Both sides are whole
// calendar days, so time of day never changes the count. An empty
// history is never locked.
func Lockout(history []DayRecord, today calendar.Day) LockoutStatus {
	latest, ok := Latest(history)
	if !ok {
		return LockoutStatus{}
	}
	days := calendar.DaysBetween(today, latest.Date)
	return LockoutStatus{
		Locked:        days > LockoutAfterDays,
		HasHistory:    true,
		LastDate:      latest.Date,
		DaysSinceLast: days,
	}
}

// LockedOut is Lockout(history, today).Locked.
func LockedOut(history []DayRecord, today calendar.Day) bool {
	return Lockout(history, today).Locked
}
