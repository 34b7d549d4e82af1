package freelance

import (
	"testing"
	"time"
)

func TestRangeContainsBoundaries(t *testing.T) {
	rng := NewRange(date(2024, time.March, 1), date(2024, time.March, 31))

	if !rng.Contains(date(2024, time.March, 1)) {
		t.Error("from boundary should be included")
	}
	if !rng.Contains(date(2024, time.March, 31)) {
		t.Error("to boundary should be included")
	}
	if rng.Contains(date(2024, time.February, 29)) {
		t.Error("day before from should be excluded")
	}
	if rng.Contains(date(2024, time.April, 1)) {
		t.Error("day after to should be excluded")
	}
}

func TestRangeContainsAbsentDate(t *testing.T) {
	// An event that cannot be placed in time is excluded, even in
	// all-time mode.
	if (Range{}).Contains(Date{}) {
		t.Error("absent date must fail the all-time range")
	}
	rng := NewRange(date(2024, time.March, 1), date(2024, time.March, 31))
	if rng.Contains(Date{}) {
		t.Error("absent date must fail a bounded range")
	}
}

func TestRangeOpenBounds(t *testing.T) {
	d := date(2024, time.March, 10)
	if !(Range{}).Contains(d) {
		t.Error("all-time range should contain any dated event")
	}
	noLower := Range{To: date(2024, time.March, 31)}
	if !noLower.Contains(date(1999, time.January, 1)) {
		t.Error("missing from means no lower bound")
	}
	if noLower.Contains(date(2024, time.April, 1)) {
		t.Error("upper bound still applies")
	}
	noUpper := Range{From: date(2024, time.March, 1)}
	if !noUpper.Contains(date(2030, time.January, 1)) {
		t.Error("missing to means no upper bound")
	}
}

func TestRangeDays(t *testing.T) {
	cases := []struct {
		from, to Date
		want     int
	}{
		{date(2024, time.March, 1), date(2024, time.March, 31), 31},
		{date(2024, time.February, 1), date(2024, time.February, 29), 29},
		{date(2024, time.March, 10), date(2024, time.March, 10), 1},
		{date(2024, time.December, 30), date(2025, time.January, 2), 4},
	}
	for _, c := range cases {
		if got := NewRange(c.from, c.to).Days(); got != c.want {
			t.Errorf("Days(%s..%s) = %d, want %d", c.from, c.to, got, c.want)
		}
	}
}

func TestRangeMonths(t *testing.T) {
	rng := NewRange(date(2024, time.January, 15), date(2024, time.March, 10))
	var keys []string
	for m := range rng.Months() {
		keys = append(keys, m.From.MonthKey())
	}
	want := []string{"2024-01", "2024-02", "2024-03"}
	if len(keys) != len(want) {
		t.Fatalf("Months() = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("Months()[%d] = %s, want %s", i, keys[i], want[i])
		}
	}
}

func TestRangeClip(t *testing.T) {
	rng := NewRange(date(2024, time.March, 1), date(2024, time.March, 31))

	clipped, ok := rng.Clip(date(2024, time.March, 10), Date{})
	if !ok || clipped.From != date(2024, time.March, 10) || clipped.To != date(2024, time.March, 31) {
		t.Errorf("Clip lower = %+v, ok=%v", clipped, ok)
	}
	if _, ok := rng.Clip(date(2024, time.April, 1), Date{}); ok {
		t.Error("empty intersection should not be ok")
	}
	clipped, ok = (Range{}).Clip(date(2024, time.January, 1), date(2024, time.June, 30))
	if !ok || clipped.From != date(2024, time.January, 1) || clipped.To != date(2024, time.June, 30) {
		t.Errorf("Clip of open range = %+v, ok=%v", clipped, ok)
	}
}
