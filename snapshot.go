package freelance

// Input records, as exported by the dashboard's CRUD layer. The engine
// consumes them read-only: every report is recomputed from a full
// Snapshot on each call and nothing is ever written back.

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

const (
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "inprogress"
	StatusDone       TaskStatus = "done"
	StatusOnHold     TaskStatus = "onhold"
	StatusArchived   TaskStatus = "archived"
)

// PaymentStatus is the state of a single payment record.
type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "paid"
	PaymentPending PaymentStatus = "pending"
)

// QuoteStatusPaid is the quote-level status flag that, absent any other
// payment evidence, marks the whole quote as paid.
const QuoteStatusPaid = "paid"

// AmountType distinguishes fixed-amount payments from percent-of-total ones.
type AmountType string

const (
	AmountFixed   AmountType = "fixed"
	AmountPercent AmountType = "percent"
)

// ColumnType is the value kind of a quote column.
type ColumnType string

const (
	ColText   ColumnType = "text"
	ColNumber ColumnType = "number"
	ColDate   ColumnType = "date"
)

// Frequency is the recurrence of a fixed cost.
type Frequency string

const (
	FreqOnce    Frequency = "once"
	FreqWeekly  Frequency = "weekly"
	FreqMonthly Frequency = "monthly"
	FreqYearly  Frequency = "yearly"
)

// Column describes one column of a quote's item grid.
type Column struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Type        ColumnType `json:"type"`
	Aggregation string     `json:"aggregation,omitempty"`
	// RowFormula is a per-row arithmetic expression referencing sibling
	// column ids, e.g. "qty * rate". Evaluated by the formula interpreter.
	RowFormula string `json:"rowFormula,omitempty"`
}

// Item is one line of a quote section.
type Item struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	UnitPrice   float64 `json:"unitPrice"`
	// CustomFields maps column id to the raw cell value (string or number,
	// the CRUD layer does not normalize).
	CustomFields map[string]any `json:"customFields,omitempty"`
}

// Section is an ordered group of items within a quote.
type Section struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Items []Item `json:"items"`
}

// Payment is one itemized payment attached to a quote.
type Payment struct {
	Amount     float64       `json:"amount,omitempty"`
	Percent    float64       `json:"percent,omitempty"`
	AmountType AmountType    `json:"amountType,omitempty"`
	Status     PaymentStatus `json:"status"`
	Date       Date          `json:"date,omitempty"`
}

// Quote is a priced document structured as ordered sections of line
// items scored by columns. Its payment bookkeeping is loosely shaped:
// any of Payments, AmountPaid and Status may be present, and the
// recognition precedence between them is fixed (see payments.go).
type Quote struct {
	ID         string    `json:"id"`
	Sections   []Section `json:"sections"`
	Columns    []Column  `json:"columns"`
	Payments   []Payment `json:"payments,omitempty"`
	PaidDate   Date      `json:"paidDate,omitempty"`
	AmountPaid *float64  `json:"amountPaid,omitempty"`
	Status     string    `json:"status,omitempty"`
	// Total is a cached grand total written by the UI. The engine always
	// recomputes; it is only read as a fallback for collaborator quotes.
	Total *float64 `json:"total,omitempty"`
}

// CollaboratorQuote has the same grid shape as a Quote but belongs to a
// collaborator working on the task. Its own payment records, when they
// exist at all, are intentionally ignored: payout timing tracks the
// client's payment milestone on the main quote.
type CollaboratorQuote struct {
	ID             string    `json:"id"`
	CollaboratorID string    `json:"collaboratorId"`
	Sections       []Section `json:"sections"`
	Columns        []Column  `json:"columns"`
	AmountPaid     *float64  `json:"amountPaid,omitempty"`
	Total          *float64  `json:"total,omitempty"`
}

// CollaboratorLink ties a task to one collaborator and their quote.
type CollaboratorLink struct {
	CollaboratorID      string `json:"collaboratorId"`
	CollaboratorQuoteID string `json:"collaboratorQuoteId"`
}

// Task is the unit of work the dashboard schedules and bills.
type Task struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	Status        TaskStatus         `json:"status"`
	StartDate     Date               `json:"startDate,omitempty"`
	Deadline      Date               `json:"deadline,omitempty"`
	EndDate       Date               `json:"endDate,omitempty"`
	ClientID      string             `json:"clientId,omitempty"`
	QuoteID       string             `json:"quoteId,omitempty"`
	Collaborators []CollaboratorLink `json:"collaborators,omitempty"`
	// DeletedAt is the soft-delete marker; a deleted task never
	// contributes to any report.
	DeletedAt Date `json:"deletedAt,omitempty"`
}

// Reportable reports whether the task may contribute to any report.
func (t Task) Reportable() bool {
	return t.Status != StatusArchived && t.DeletedAt.IsZero()
}

// FallbackDate is the date used to place the task's monetary events in
// time when the quote carries no date of its own: deadline, else end
// date, else start date.
func (t Task) FallbackDate() Date {
	return firstDate(t.Deadline, t.EndDate, t.StartDate)
}

// ScheduleDate is the task's own position in time for projections: end
// date, else deadline, else start date.
func (t Task) ScheduleDate() Date {
	return firstDate(t.EndDate, t.Deadline, t.StartDate)
}

// FixedCost is a recurring business cost (rent, software, insurance...).
type FixedCost struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Amount    float64   `json:"amount"`
	Frequency Frequency `json:"frequency"`
	StartDate Date      `json:"startDate"`
	EndDate   Date      `json:"endDate,omitempty"`
	IsActive  bool      `json:"isActive"`
}

// Client is used only for display grouping.
type Client struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Collaborator is used only for display grouping.
type Collaborator struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Snapshot is the full data export the engine computes from. It is the
// only input boundary: the engine never mutates it and never keeps it
// between calls.
type Snapshot struct {
	Tasks              []Task              `json:"tasks"`
	Quotes             []Quote             `json:"quotes"`
	CollaboratorQuotes []CollaboratorQuote `json:"collaboratorQuotes"`
	Clients            []Client            `json:"clients"`
	Collaborators      []Collaborator      `json:"collaborators"`
	FixedCosts         []FixedCost         `json:"fixedCosts"`
}

// Reports bundles every report shape computed from one snapshot and one
// range, the way the dashboard requests them on each interaction.
type Reports struct {
	Summary    *FinancialSummary
	Breakdown  []RevenueBreakdown
	Details    *TaskDetails
	Monthly    []MonthlyFinancials
	FixedCosts *FixedCostDetails
	Additional *AdditionalFinancials
}

// Report computes all report shapes at once from the same snapshot and
// range. The views share one lookup pass and cannot drift.
func (s *Snapshot) Report(rng Range, opts ...Option) *Reports {
	return &Reports{
		Summary:    NewFinancialSummary(s, rng, opts...),
		Breakdown:  NewRevenueBreakdown(s, rng, opts...),
		Details:    NewTaskDetails(s, rng, opts...),
		Monthly:    NewMonthlyFinancials(s, rng, opts...),
		FixedCosts: NewFixedCostDetails(s, rng, opts...),
		Additional: NewAdditionalFinancials(s, rng, opts...),
	}
}
