package freelance

import "github.com/shopspring/decimal"

// Fixed costs are prorated with fixed period-length constants, not the
// calendar's actual day counts. Weekly keeps the exact 7 while monthly
// and yearly use long-run averages; the small non-additivity across
// frequency types at period boundaries is an accepted approximation.
var (
	daysPerWeek     = decimal.NewFromInt(7)
	avgDaysPerMonth = decimal.NewFromFloat(30.44)
	avgDaysPerYear  = decimal.NewFromFloat(365.25)
	monthsPerYear   = decimal.NewFromInt(12)
)

// dailyRate converts a recurring cost's amount to a per-day rate.
// Meaningless for once-only costs, which are never prorated.
func dailyRate(fc FixedCost) Money {
	amount := M(fc.Amount)
	switch fc.Frequency {
	case FreqWeekly:
		return amount.Div(daysPerWeek)
	case FreqMonthly:
		return amount.Div(avgDaysPerMonth)
	case FreqYearly:
		return amount.Div(avgDaysPerYear)
	default:
		return M(0)
	}
}

// prorateRange allocates the cost to a query range: the daily rate times
// the inclusive day count of the overlap between the range and the
// cost's active interval. A once-only cost contributes its full amount
// exactly when its start date lies in the range.
//
// An open-ended side (no query bound and no cost end date) is capped at
// today: a live recurring cost accrues up to the present, not forever.
func prorateRange(fc FixedCost, rng Range) Money {
	if !fc.IsActive {
		return M(0)
	}
	if fc.Frequency == FreqOnce {
		if rng.Contains(fc.StartDate) {
			return M(fc.Amount)
		}
		return M(0)
	}
	overlap, ok := rng.Clip(fc.StartDate, fc.EndDate)
	if !ok {
		return M(0)
	}
	if overlap.From.IsZero() {
		overlap.From = fc.StartDate
	}
	if overlap.To.IsZero() {
		overlap.To = Today()
	}
	if overlap.From.IsZero() || overlap.From.After(overlap.To) {
		return M(0)
	}
	days := decimal.NewFromInt(int64(overlap.Days()))
	return dailyRate(fc).Mul(days)
}

// prorateMonth allocates the cost to one calendar month. The strategy is
// deliberately different from range mode: monthly costs contribute their
// raw amount per active month (not reprorated), weekly costs the daily
// rate times that month's actual day count, yearly costs a flat twelfth.
func prorateMonth(fc FixedCost, month Range) Money {
	if !fc.IsActive {
		return M(0)
	}
	if fc.Frequency == FreqOnce {
		if month.Contains(fc.StartDate) {
			return M(fc.Amount)
		}
		return M(0)
	}
	if _, ok := month.Clip(fc.StartDate, fc.EndDate); !ok {
		return M(0)
	}
	switch fc.Frequency {
	case FreqMonthly:
		return M(fc.Amount)
	case FreqWeekly:
		return dailyRate(fc).Mul(decimal.NewFromInt(int64(month.From.DaysIn())))
	case FreqYearly:
		return M(fc.Amount).Div(monthsPerYear)
	default:
		return M(0)
	}
}

// lifetime returns the cost's active interval for all-time month
// enumeration, the open end capped at today.
func lifetime(fc FixedCost) (Range, bool) {
	if fc.StartDate.IsZero() {
		return Range{}, false
	}
	to := fc.EndDate
	if to.IsZero() {
		to = Today()
	}
	if fc.StartDate.After(to) {
		return Range{}, false
	}
	return Range{From: fc.StartDate, To: to}, true
}
