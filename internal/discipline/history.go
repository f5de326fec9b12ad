package discipline

import (
	"sort"

	"github.com/HendryAvila/lifeos/internal/calendar"
)

// Normalize returns a copy of history with one record per date, sorted
// ascending. When a date appears more than once the occurrence latest in
// the input wins. The input slice is left untouched.
func Normalize(history []DayRecord) []DayRecord {
	pos := make(map[calendar.Day]int, len(history))
	out := make([]DayRecord, 0, len(history))
	for _, r := range history {
		if i, dup := pos[r.Date]; dup {
			out[i] = r
			continue
		}
		pos[r.Date] = len(out)
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// Descending is Normalize in newest-first order.
func Descending(history []DayRecord) []DayRecord {
	out := Normalize(history)
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Latest returns the chronologically newest record.
func Latest(history []DayRecord) (DayRecord, bool) {
	if len(history) == 0 {
		return DayRecord{}, false
	}
	norm := Normalize(history)
	return norm[len(norm)-1], true
}

// Find returns the record for day, last occurrence winning.
func Find(history []DayRecord, day calendar.Day) (DayRecord, bool) {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Date == day {
			return history[i], true
		}
	}
	return DayRecord{}, false
}

// LastN returns the n newest records in ascending order.
func LastN(history []DayRecord, n int) []DayRecord {
	norm := Normalize(history)
	if n <= 0 {
		return nil
	}
	if len(norm) > n {
		norm = norm[len(norm)-n:]
	}
	return norm
}
