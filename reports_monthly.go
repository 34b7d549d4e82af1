package freelance

import "sort"

// NewMonthlyFinancials buckets the summary's recognition rules by the
// resolved date's calendar month, ascending by "YYYY-MM".
//
// With a fully bounded range, every month of the range appears, zeros
// included, so charts get a continuous series. With an open range the
// report runs in all-time mode: it visits the months that actually carry
// data, and for fixed costs each cost's own active lifetime.
func NewMonthlyFinancials(s *Snapshot, rng Range, opts ...Option) []MonthlyFinancials {
	o := newOptions(opts)
	lk := newLookup(s, o.obs)

	type bucket struct{ revenue, costs Money }
	buckets := make(map[string]*bucket)
	at := func(key string) *bucket {
		b, ok := buckets[key]
		if !ok {
			b = &bucket{}
			buckets[key] = b
		}
		return b
	}

	bounded := !rng.From.IsZero() && !rng.To.IsZero()
	if bounded {
		for month := range rng.Months() {
			at(month.From.MonthKey())
		}
	}

	for _, task := range lk.tasks {
		q := lk.quoteOf(task)
		if q != nil {
			total := quoteTotal(q)
			for _, da := range recognizedPayments(q, total, rng, task.FallbackDate()) {
				b := at(da.date.MonthKey())
				b.revenue = b.revenue.Add(da.amount)
			}
		}
		for _, link := range task.Collaborators {
			cq := lk.collabQuoteOf(task, link)
			if cq == nil {
				continue
			}
			cost := collaboratorCost(cq, q, task.FallbackDate())
			if !rng.Contains(cost.date) {
				continue
			}
			b := at(cost.date.MonthKey())
			b.costs = b.costs.Add(cost.amount)
		}
	}

	for _, fc := range s.FixedCosts {
		if !fc.IsActive {
			continue
		}
		span, ok := lifetime(fc)
		if !ok {
			continue
		}
		if clipped, ok := span.Clip(rng.From, rng.To); ok {
			span = clipped
		} else {
			continue
		}
		for month := range span.Months() {
			amount := prorateMonth(fc, month)
			if amount.IsZero() {
				continue
			}
			b := at(month.From.MonthKey())
			b.costs = b.costs.Add(amount)
		}
	}

	out := make([]MonthlyFinancials, 0, len(buckets))
	for key, b := range buckets {
		out = append(out, MonthlyFinancials{
			MonthYear: key,
			Revenue:   b.revenue.AsFloat(),
			Costs:     b.costs.AsFloat(),
			Profit:    b.revenue.Sub(b.costs).AsFloat(),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MonthYear < out[j].MonthYear })
	return out
}
