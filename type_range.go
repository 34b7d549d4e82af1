package freelance

import "iter"

// Range represents a window of calendar days. Either bound may be absent
// (zero Date): an absent From means "no lower bound", an absent To means
// "no upper bound", and the zero Range matches every dated event
// (all-time mode).
//
// Bounds are day-granular by construction: From implicitly starts at
// 00:00:00 of its day and To ends at 23:59:59.999 of its day, so a
// candidate date equal to either bound is included. Comparing whole
// days also sidesteps the UTC/local truncation artifacts that plague
// timestamp comparisons.
type Range struct{ From, To Date }

// NewRange creates a new date range. If both bounds are set and 'from'
// is after 'to', they are swapped.
func NewRange(from, to Date) Range {
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// MonthRange returns the range covering the calendar month of d.
func MonthRange(d Date) Range {
	return Range{From: d.MonthStart(), To: d.MonthEnd()}
}

// IsOpen reports whether the range has no bound at all.
func (r Range) IsOpen() bool { return r.From.IsZero() && r.To.IsZero() }

// Contains returns true when date is included in the range (boundaries
// included). An absent date always fails the test: a monetary event that
// cannot be placed in time is excluded, never wildcard-included.
func (r Range) Contains(date Date) bool {
	if date.IsZero() {
		return false
	}
	if !r.From.IsZero() && date.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && date.After(r.To) {
		return false
	}
	return true
}

// Clip returns the intersection of r with [from, to]. An absent bound on
// either side is replaced by the other side's bound. ok is false when
// the intersection is empty.
func (r Range) Clip(from, to Date) (clipped Range, ok bool) {
	lo := r.From
	if !from.IsZero() && (lo.IsZero() || from.After(lo)) {
		lo = from
	}
	hi := r.To
	if !to.IsZero() && (hi.IsZero() || to.Before(hi)) {
		hi = to
	}
	if !lo.IsZero() && !hi.IsZero() && lo.After(hi) {
		return Range{}, false
	}
	return Range{From: lo, To: hi}, true
}

// Days returns the inclusive day count of the range (both endpoints
// counted). A range with an absent bound has no finite day count and
// returns 0.
func (r Range) Days() int {
	if r.From.IsZero() || r.To.IsZero() {
		return 0
	}
	return int(r.To.time().Sub(r.From.time())/day) + 1
}

// Months returns an iterator over the calendar months touched by the
// range, each yielded as a full month range. Both bounds must be set.
func (r Range) Months() iter.Seq[Range] {
	return func(yield func(Range) bool) {
		if r.From.IsZero() || r.To.IsZero() {
			return
		}
		for cur := r.From.MonthStart(); !cur.After(r.To); cur = cur.AddMonth(1) {
			if !yield(MonthRange(cur)) {
				return
			}
		}
	}
}
