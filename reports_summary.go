package freelance

// NewFinancialSummary computes the period's revenue, costs and profit.
//
// Revenue is the recognized paid amount of every reportable task's quote
// within the range. Costs are the collaborator payouts attributed to the
// range plus the prorated fixed costs. Profit is the difference. Missing
// or malformed records contribute zero; the report never fails.
func NewFinancialSummary(s *Snapshot, rng Range, opts ...Option) *FinancialSummary {
	o := newOptions(opts)
	lk := newLookup(s, o.obs)

	revenue := M(0)
	collabCost := M(0)
	for _, task := range lk.tasks {
		q := lk.quoteOf(task)
		if q != nil {
			total := quoteTotal(q)
			revenue = revenue.Add(recognizedRevenue(q, total, rng, task.FallbackDate()))
		}
		for _, link := range task.Collaborators {
			cq := lk.collabQuoteOf(task, link)
			if cq == nil {
				continue
			}
			cost := collaboratorCost(cq, q, task.FallbackDate())
			if rng.Contains(cost.date) {
				collabCost = collabCost.Add(cost.amount)
			}
		}
	}

	fixed := M(0)
	for _, fc := range s.FixedCosts {
		fixed = fixed.Add(prorateRange(fc, rng))
	}

	costs := collabCost.Add(fixed)
	o.obs.Debugf("summary %s..%s revenue=%s collaborator=%s fixed=%s",
		rng.From, rng.To, revenue, collabCost, fixed)
	return &FinancialSummary{
		Range:   rng,
		Revenue: revenue.AsFloat(),
		Costs:   costs.AsFloat(),
		Profit:  revenue.Sub(costs).AsFloat(),
	}
}
