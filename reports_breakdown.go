package freelance

import "sort"

// unknownClient groups revenue from tasks whose client record is
// missing or was never assigned.
const unknownClient = "Unknown"

// NewRevenueBreakdown groups recognized revenue by client, restricted to
// finished tasks, sorted descending by amount.
//
// Finished work gets a longer fallback-date chain than the summary:
// payment date, quote paid date, deadline, end date, start date. When
// not a single date survives, a done task's total is still counted, so
// delivered work does not vanish from the per-client view just because
// nobody filled in dates.
func NewRevenueBreakdown(s *Snapshot, rng Range, opts ...Option) []RevenueBreakdown {
	o := newOptions(opts)
	lk := newLookup(s, o.obs)

	byClient := make(map[string]Money)
	for _, task := range lk.tasks {
		if task.Status != StatusDone {
			continue
		}
		q := lk.quoteOf(task)
		if q == nil {
			continue
		}
		total := quoteTotal(q)
		amount := recognizedRevenue(q, total, rng, task.FallbackDate())
		if amount.IsZero() && undated(q, task) {
			amount = total
		}
		if amount.IsZero() {
			continue
		}
		name := lk.clientName(task)
		if name == "" {
			name = unknownClient
		}
		byClient[name] = byClient[name].Add(amount)
	}

	out := make([]RevenueBreakdown, 0, len(byClient))
	for name, amount := range byClient {
		out = append(out, RevenueBreakdown{Name: name, Value: amount.AsFloat()})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			return out[i].Value > out[j].Value
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// undated reports whether no date in the extended chain can place the
// quote's revenue in time.
func undated(q *Quote, task *Task) bool {
	if !q.PaidDate.IsZero() || !task.FallbackDate().IsZero() {
		return false
	}
	for _, p := range q.Payments {
		if !p.Date.IsZero() {
			return false
		}
	}
	return true
}
