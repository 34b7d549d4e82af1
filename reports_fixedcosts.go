package freelance

// NewFixedCostDetails lists each active cost's prorated share of the
// query range, plus the total. When no range is given the current
// calendar month is reported, which is what the dashboard's settings
// panel shows. Costs contributing nothing to the range are omitted.
func NewFixedCostDetails(s *Snapshot, rng Range, opts ...Option) *FixedCostDetails {
	o := newOptions(opts)
	if rng.IsOpen() {
		rng = MonthRange(Today())
	}

	details := &FixedCostDetails{
		Range:          rng,
		FixedCostItems: []FixedCostItem{},
	}
	total := M(0)
	for _, fc := range s.FixedCosts {
		amount := prorateRange(fc, rng)
		if amount.IsZero() {
			continue
		}
		o.obs.Debugf("fixed cost %s (%s) contributes %s", fc.Name, fc.Frequency, amount)
		details.FixedCostItems = append(details.FixedCostItems, FixedCostItem{
			ID:     fc.ID,
			Name:   fc.Name,
			Amount: amount.AsFloat(),
		})
		total = total.Add(amount)
	}
	details.TotalFixedCosts = total.AsFloat()
	return details
}
