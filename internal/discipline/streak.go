package discipline

import "github.com/HendryAvila/lifeos/internal/calendar"

// maxStreakGapDays is the largest allowed distance between two
// consecutive counted records.
const maxStreakGapDays = 1

// IsStrict reports whether a day meets the streak bar: exactly five
// prayers, some creation time and an identity photo.
func IsStrict(r DayRecord) bool {
	m := ReadMetrics(r.Answers)
	return m.Namaz == fullPrayerCount && m.CreationMinutes > 0 && r.HasPhoto()
}

// StrictStreak counts consecutive strict days ending at the newest
// record. The streak is 0 unless the newest record is dated today or
// yesterday. The walk stops at the first non-strict day (not counted) or
// at a gap of more than one day.
func StrictStreak(history []DayRecord, today calendar.Day) int {
	sorted := Descending(history)
	if len(sorted) == 0 {
		return 0
	}
	if newest := sorted[0].Date; newest != today && newest != today.Yesterday() {
		return 0
	}

	streak := 0
	for i, r := range sorted {
		if !IsStrict(r) {
			break
		}
		streak++

		if i+1 < len(sorted) && r.Date.Sub(sorted[i+1].Date) > maxStreakGapDays {
			break
		}
	}
	return streak
}
