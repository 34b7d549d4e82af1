package freelance

// NewTaskDetails lists the line items behind the summary: one revenue
// entry per task with recognized revenue in the range, and one cost
// entry per (task, collaborator quote) link with recognized cost.
// Zero-amount lines are omitted; the UI drills down into money that
// moved, not into every record.
func NewTaskDetails(s *Snapshot, rng Range, opts ...Option) *TaskDetails {
	o := newOptions(opts)
	lk := newLookup(s, o.obs)

	details := &TaskDetails{
		RevenueItems: []TaskDetail{},
		CostItems:    []TaskDetail{},
	}
	for _, task := range lk.tasks {
		q := lk.quoteOf(task)
		if q != nil {
			total := quoteTotal(q)
			amount := recognizedRevenue(q, total, rng, task.FallbackDate())
			if amount.IsPositive() {
				details.RevenueItems = append(details.RevenueItems, TaskDetail{
					ID:         task.ID,
					Name:       task.Name,
					ClientName: lk.clientName(task),
					Amount:     amount.AsFloat(),
					Type:       DetailRevenue,
				})
			}
		}
		for _, link := range task.Collaborators {
			cq := lk.collabQuoteOf(task, link)
			if cq == nil {
				continue
			}
			cost := collaboratorCost(cq, q, task.FallbackDate())
			if !rng.Contains(cost.date) || !cost.amount.IsPositive() {
				continue
			}
			name := task.Name
			if collab, ok := lk.collaborators[link.CollaboratorID]; ok {
				name = task.Name + " / " + collab.Name
			}
			details.CostItems = append(details.CostItems, TaskDetail{
				ID:         cq.ID,
				Name:       name,
				ClientName: lk.clientName(task),
				Amount:     cost.amount.AsFloat(),
				Type:       DetailCost,
			})
		}
	}
	return details
}
