package discipline

import (
	"testing"

	"github.com/HendryAvila/lifeos/internal/calendar"
	"github.com/HendryAvila/lifeos/internal/questions"
)

var today = calendar.MustParse("2026-10-15")

// day builds an evaluated record from answers against the default catalog.
func day(d calendar.Day, a Answers, photo string) DayRecord {
	r := NewDayRecord(d)
	r.Answers = a
	r.Photo = photo
	return Evaluate(r, questions.Default())
}

func shutdownAnswers() Answers {
	return Answers{
		"shutdownRespect":   true,
		"shutdownStupidity": false,
		"shutdownRepeat":    "Phone in bed",
	}
}

// --- ShutdownComplete ---

func TestShutdownComplete(t *testing.T) {
	ids := questions.Default().ShutdownIDs()

	if !ShutdownComplete(shutdownAnswers(), ids) {
		t.Error("all shutdown questions answered should be complete")
	}

	missingText := shutdownAnswers()
	missingText["shutdownRepeat"] = ""
	if ShutdownComplete(missingText, ids) {
		t.Error("empty text answer should leave shutdown incomplete")
	}

	missingKey := shutdownAnswers()
	delete(missingKey, "shutdownRespect")
	if ShutdownComplete(missingKey, ids) {
		t.Error("missing answer should leave shutdown incomplete")
	}

	if !ShutdownComplete(Answers{}, nil) {
		t.Error("a catalog without shutdown questions is trivially complete")
	}
}

func TestEvaluate_SetsShutdownComplete(t *testing.T) {
	r := day(today, shutdownAnswers(), "")
	if !r.ShutdownComplete {
		t.Error("Evaluate should mark shutdown complete")
	}
	r = day(today, Answers{"shutdownRespect": true}, "")
	if r.ShutdownComplete {
		t.Error("Evaluate should mark partial shutdown incomplete")
	}
}

// --- ShutdownLocked ---

func TestShutdownLocked(t *testing.T) {
	yesterday := today.Yesterday()

	complete := day(yesterday, shutdownAnswers(), "")
	incomplete := shutdownAnswers()
	incomplete["shutdownRepeat"] = ""
	open := day(yesterday, incomplete, "")

	tests := []struct {
		name    string
		history []DayRecord
		want    bool
	}{
		{"yesterday closed", []DayRecord{complete}, false},
		{"yesterday left open", []DayRecord{open}, true},
		{"no record for yesterday", []DayRecord{day(today.AddDays(-2), Answers{}, "")}, false},
		{"empty history", nil, false},
		{"today open does not lock today", []DayRecord{day(today, Answers{}, "")}, false},
		{"duplicate yesterday last wins", []DayRecord{open, complete}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShutdownLocked(tt.history, today); got != tt.want {
				t.Errorf("ShutdownLocked = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestShutdownLocked_ResaveUnlocks(t *testing.T) {
	yesterday := day(today.Yesterday(), Answers{"shutdownRespect": true}, "")
	history := []DayRecord{yesterday}
	if !ShutdownLocked(history, today) {
		t.Fatal("precondition: today should be locked")
	}

	yesterday.Answers = yesterday.Answers.Merge(shutdownAnswers())
	history[0] = Evaluate(yesterday, questions.Default())
	if ShutdownLocked(history, today) {
		t.Error("re-saving yesterday with the ritual answered should unlock today")
	}
}

// --- Lockout ---

func TestLockout(t *testing.T) {
	tests := []struct {
		name      string
		dates     []int // offsets from today
		wantLock  bool
		wantSince int
	}{
		{"empty history", nil, false, 0},
		{"logged today", []int{0}, false, 0},
		{"latest two days ago", []int{-2}, false, 2},
		{"latest three days ago", []int{-3}, true, 3},
		{"unsorted input uses newest", []int{-9, -1, -5}, false, 1},
		{"old history only", []int{-30, -10}, true, 10},
		{"future record counts absolute distance", []int{3}, true, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var history []DayRecord
			for _, off := range tt.dates {
				history = append(history, day(today.AddDays(off), Answers{}, ""))
			}
			got := Lockout(history, today)
			if got.Locked != tt.wantLock {
				t.Errorf("Locked = %v, want %v", got.Locked, tt.wantLock)
			}
			if got.DaysSinceLast != tt.wantSince {
				t.Errorf("DaysSinceLast = %d, want %d", got.DaysSinceLast, tt.wantSince)
			}
			if got.HasHistory != (len(history) > 0) {
				t.Errorf("HasHistory = %v", got.HasHistory)
			}
			if LockedOut(history, today) != tt.wantLock {
				t.Error("LockedOut disagrees with Lockout")
			}
		})
	}
}

func TestLockout_ReportsLastDate(t *testing.T) {
	history := []DayRecord{day(today.AddDays(-4), Answers{}, ""), day(today.AddDays(-6), Answers{}, "")}
	got := Lockout(history, today)
	if got.LastDate != today.AddDays(-4) {
		t.Errorf("LastDate = %s, want %s", got.LastDate, today.AddDays(-4))
	}
}
