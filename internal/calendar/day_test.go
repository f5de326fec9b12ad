package calendar

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestParse_RoundTrip(t *testing.T) {
	tests := []string{"1970-01-01", "2023-10-25", "2024-02-29", "2026-12-31"}
	for _, s := range tests {
		t.Run(s, func(t *testing.T) {
			d, err := Parse(s)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", s, err)
			}
			if got := d.String(); got != s {
				t.Errorf("String() = %q, want %q", got, s)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, s := range []string{"", "2023-13-01", "25/10/2023", "2023-02-30", "yesterday"} {
		if _, err := Parse(s); err == nil {
			t.Errorf("Parse(%q) should fail", s)
		}
	}
}

func TestParse_TrimsWhitespace(t *testing.T) {
	d, err := Parse("  2026-10-15\n")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if d != Date(2026, time.October, 15) {
		t.Errorf("Parse = %s, want 2026-10-15", d)
	}
}

func TestFromTime_UsesWallClockDate(t *testing.T) {
	// 23:30 in UTC-5 is already the next day in UTC.
	loc := time.FixedZone("UTC-5", -5*60*60)
	late := time.Date(2026, time.October, 15, 23, 30, 0, 0, loc)

	if got, want := FromTime(late), MustParse("2026-10-15"); got != want {
		t.Errorf("FromTime = %s, want %s", got, want)
	}
	if got, want := FromTime(late.UTC()), MustParse("2026-10-16"); got != want {
		t.Errorf("FromTime(UTC) = %s, want %s", got, want)
	}
}

func TestFromTime_IgnoresTimeOfDay(t *testing.T) {
	morning := time.Date(2026, time.March, 1, 0, 0, 1, 0, time.Local)
	night := time.Date(2026, time.March, 1, 23, 59, 59, 0, time.Local)
	if FromTime(morning) != FromTime(night) {
		t.Error("times on the same date should map to the same Day")
	}
}

func TestArithmetic(t *testing.T) {
	d := MustParse("2024-03-01")

	if got := d.Yesterday().String(); got != "2024-02-29" {
		t.Errorf("Yesterday = %s, want 2024-02-29 (leap year)", got)
	}
	if got := d.AddDays(31).String(); got != "2024-04-01" {
		t.Errorf("AddDays(31) = %s, want 2024-04-01", got)
	}
	if got := d.Sub(MustParse("2024-02-26")); got != 4 {
		t.Errorf("Sub = %d, want 4", got)
	}
	if got := DaysBetween(MustParse("2024-02-26"), d); got != 4 {
		t.Errorf("DaysBetween = %d, want 4", got)
	}
}

func TestDaysBetween_AcrossDST(t *testing.T) {
	// US DST starts 2026-03-08; wall-clock days must still count as 1 each.
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	before := FromTime(time.Date(2026, time.March, 7, 22, 0, 0, 0, ny))
	after := FromTime(time.Date(2026, time.March, 9, 1, 0, 0, 0, ny))
	if got := DaysBetween(before, after); got != 2 {
		t.Errorf("DaysBetween across DST = %d, want 2", got)
	}
}

func TestJSON(t *testing.T) {
	type wrapper struct {
		Date Day `json:"date"`
	}
	data, err := json.Marshal(wrapper{Date: MustParse("2023-10-26")})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `{"date":"2023-10-26"}` {
		t.Errorf("Marshal = %s", data)
	}

	var w wrapper
	if err := json.Unmarshal([]byte(`{"date":"2023-10-25"}`), &w); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if w.Date.String() != "2023-10-25" {
		t.Errorf("Unmarshal date = %s", w.Date)
	}

	if err := json.Unmarshal([]byte(`{"date":"not-a-date"}`), &w); err == nil {
		t.Error("Unmarshal should reject malformed date")
	}
}

func TestMustParse_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse should panic on bad input")
		}
	}()
	MustParse("bogus")
}

func TestDayProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	days := gen.IntRange(-20000, 40000).Map(func(n int) Day { return Day(n) })

	properties.Property("String and Parse are inverse", prop.ForAll(
		func(d Day) bool {
			parsed, err := Parse(d.String())
			return err == nil && parsed == d
		},
		days,
	))

	properties.Property("AddDays then Sub recovers the offset", prop.ForAll(
		func(d Day, n int) bool {
			return d.AddDays(n).Sub(d) == n
		},
		days, gen.IntRange(-1000, 1000),
	))

	properties.Property("Time lands on midnight UTC", prop.ForAll(
		func(d Day) bool {
			tm := d.Time()
			return tm.Hour() == 0 && tm.Minute() == 0 && tm.Second() == 0 && FromTime(tm) == d
		},
		days,
	))

	properties.TestingRun(t)
}
