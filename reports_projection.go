package freelance

// NewAdditionalFinancials computes the forward-looking figures.
//
// Future revenue is what remains to collect on live tasks: the quote
// total minus everything already paid, floored at zero per task.
// Percent payments are valued against the current total, so a quote
// edited after a payment was recorded shifts the remainder accordingly.
// Lost revenue is the total of on-hold tasks. Both are restricted to
// tasks whose schedule date falls in the range; archived tasks count in
// neither.
func NewAdditionalFinancials(s *Snapshot, rng Range, opts ...Option) *AdditionalFinancials {
	o := newOptions(opts)
	lk := newLookup(s, o.obs)

	future := M(0)
	lost := M(0)
	for _, task := range lk.tasks {
		if !rng.Contains(task.ScheduleDate()) {
			continue
		}
		q := lk.quoteOf(task)
		if q == nil {
			continue
		}
		total := quoteTotal(q)
		if task.Status == StatusOnHold {
			lost = lost.Add(total)
			continue
		}
		remaining := total.Sub(paidToDate(q, total))
		future = future.Add(Max(remaining, M(0)))
	}
	return &AdditionalFinancials{
		FutureRevenue: future.AsFloat(),
		LostRevenue:   lost.AsFloat(),
	}
}
