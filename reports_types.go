package freelance

// Report output shapes, consumed by the dashboard UI and by the
// analysis layer that narrates the summary. Amounts are plain float64
// and currency-unit-agnostic: formatting is the consumer's concern.

// FinancialSummary is the top-of-dashboard view of a period.
type FinancialSummary struct {
	Range   Range   `json:"range"`
	Revenue float64 `json:"revenue"`
	Costs   float64 `json:"costs"`
	Profit  float64 `json:"profit"`
}

// RevenueBreakdown is one per-client slice of recognized revenue.
type RevenueBreakdown struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// TaskDetailType tags a detail line as revenue or cost.
type TaskDetailType string

const (
	DetailRevenue TaskDetailType = "revenue"
	DetailCost    TaskDetailType = "cost"
)

// TaskDetail is one drill-down line.
type TaskDetail struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	ClientName string         `json:"clientName,omitempty"`
	Amount     float64        `json:"amount"`
	Type       TaskDetailType `json:"type"`
}

// TaskDetails lists the line items behind the summary figures.
type TaskDetails struct {
	RevenueItems []TaskDetail `json:"revenueItems"`
	CostItems    []TaskDetail `json:"costItems"`
}

// MonthlyFinancials is one month of the time series, keyed "YYYY-MM".
type MonthlyFinancials struct {
	MonthYear string  `json:"monthYear"`
	Revenue   float64 `json:"revenue"`
	Costs     float64 `json:"costs"`
	Profit    float64 `json:"profit"`
}

// FixedCostItem is one cost's prorated share of the query range.
type FixedCostItem struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// FixedCostDetails is the per-cost drill-down plus total.
type FixedCostDetails struct {
	Range           Range           `json:"range"`
	FixedCostItems  []FixedCostItem `json:"fixedCostItems"`
	TotalFixedCosts float64         `json:"totalFixedCosts"`
}

// AdditionalFinancials carries the forward-looking figures.
type AdditionalFinancials struct {
	FutureRevenue float64 `json:"futureRevenue"`
	LostRevenue   float64 `json:"lostRevenue"`
}
