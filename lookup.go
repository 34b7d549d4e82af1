package freelance

// lookup is the read-only id index built once per report computation and
// threaded through every sub-component. Building it in one place keeps
// the report views on the same filtered task list and the same id
// resolution, so they cannot drift.
type lookup struct {
	quotes        map[string]*Quote
	collabQuotes  map[string]*CollaboratorQuote
	clients       map[string]*Client
	collaborators map[string]*Collaborator
	// tasks is the reportable subset: archived and soft-deleted tasks are
	// dropped here, once.
	tasks []*Task

	obs Observer
}

func newLookup(s *Snapshot, obs Observer) *lookup {
	lk := &lookup{
		quotes:        make(map[string]*Quote, len(s.Quotes)),
		collabQuotes:  make(map[string]*CollaboratorQuote, len(s.CollaboratorQuotes)),
		clients:       make(map[string]*Client, len(s.Clients)),
		collaborators: make(map[string]*Collaborator, len(s.Collaborators)),
		tasks:         make([]*Task, 0, len(s.Tasks)),
		obs:           obs,
	}
	for i := range s.Quotes {
		lk.quotes[s.Quotes[i].ID] = &s.Quotes[i]
	}
	for i := range s.CollaboratorQuotes {
		lk.collabQuotes[s.CollaboratorQuotes[i].ID] = &s.CollaboratorQuotes[i]
	}
	for i := range s.Clients {
		lk.clients[s.Clients[i].ID] = &s.Clients[i]
	}
	for i := range s.Collaborators {
		lk.collaborators[s.Collaborators[i].ID] = &s.Collaborators[i]
	}
	for i := range s.Tasks {
		if s.Tasks[i].Reportable() {
			lk.tasks = append(lk.tasks, &s.Tasks[i])
		}
	}
	return lk
}

// quoteOf resolves a task's quote, or nil. A dangling quote id degrades
// the task to a zero contribution.
func (lk *lookup) quoteOf(t *Task) *Quote {
	if t.QuoteID == "" {
		return nil
	}
	q, ok := lk.quotes[t.QuoteID]
	if !ok {
		lk.obs.Warnf("task %s references missing quote %s", t.ID, t.QuoteID)
		return nil
	}
	return q
}

// collabQuoteOf resolves a collaborator link's quote, or nil.
func (lk *lookup) collabQuoteOf(t *Task, link CollaboratorLink) *CollaboratorQuote {
	if link.CollaboratorQuoteID == "" {
		return nil
	}
	cq, ok := lk.collabQuotes[link.CollaboratorQuoteID]
	if !ok {
		lk.obs.Warnf("task %s references missing collaborator quote %s", t.ID, link.CollaboratorQuoteID)
		return nil
	}
	return cq
}

// clientName resolves the display name for a task's client.
func (lk *lookup) clientName(t *Task) string {
	if c, ok := lk.clients[t.ClientID]; ok {
		return c.Name
	}
	return ""
}
