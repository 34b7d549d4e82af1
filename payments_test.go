package freelance

import (
	"testing"
	"time"
)

var march = NewRange(NewDate(2024, time.March, 1), NewDate(2024, time.March, 31))

func TestRecognizedRevenueNoEvidence(t *testing.T) {
	q := pricedQuote("q1", 1000000)
	// No payments, no amountPaid, no paid status: absence of evidence is
	// never treated as "paid".
	for _, rng := range []Range{march, {}} {
		if got := recognizedRevenue(&q, quoteTotal(&q), rng, date(2024, time.March, 10)); !got.IsZero() {
			t.Errorf("recognizedRevenue(%+v) = %s, want 0", rng, got)
		}
	}
}

func TestRecognizedRevenueItemized(t *testing.T) {
	q := pricedQuote("q1", 1000000)
	q.Payments = []Payment{
		{Status: PaymentPaid, Amount: 400000, AmountType: AmountFixed, Date: date(2024, time.March, 10)},
	}
	total := quoteTotal(&q)

	got := recognizedRevenue(&q, total, march, Date{})
	if !got.Equal(M(400000)) {
		t.Errorf("revenue in March = %s, want 400000", got)
	}

	april := NewRange(date(2024, time.April, 1), date(2024, time.April, 30))
	if got := recognizedRevenue(&q, total, april, Date{}); !got.IsZero() {
		t.Errorf("revenue in April = %s, want 0", got)
	}
}

func TestRecognizedRevenueBoundaryDays(t *testing.T) {
	q := pricedQuote("q1", 1000)
	total := quoteTotal(&q)
	pay := func(d Date) []Payment {
		return []Payment{{Status: PaymentPaid, Amount: 100, AmountType: AmountFixed, Date: d}}
	}

	q.Payments = pay(march.From)
	if got := recognizedRevenue(&q, total, march, Date{}); !got.Equal(M(100)) {
		t.Errorf("payment on from = %s, want 100", got)
	}
	q.Payments = pay(march.To)
	if got := recognizedRevenue(&q, total, march, Date{}); !got.Equal(M(100)) {
		t.Errorf("payment on to = %s, want 100", got)
	}
	q.Payments = pay(march.From.Add(-1))
	if got := recognizedRevenue(&q, total, march, Date{}); !got.IsZero() {
		t.Errorf("payment the day before from = %s, want 0", got)
	}
	q.Payments = pay(march.To.Add(1))
	if got := recognizedRevenue(&q, total, march, Date{}); !got.IsZero() {
		t.Errorf("payment the day after to = %s, want 0", got)
	}
}

func TestRecognizedRevenuePercentClamp(t *testing.T) {
	q := pricedQuote("q1", 1000)
	total := quoteTotal(&q)
	on := date(2024, time.March, 10)

	q.Payments = []Payment{{Status: PaymentPaid, Percent: 150, AmountType: AmountPercent, Date: on}}
	if got := recognizedRevenue(&q, total, march, Date{}); !got.Equal(M(1000)) {
		t.Errorf("150%% resolves as 100%%: got %s, want 1000", got)
	}
	q.Payments = []Payment{{Status: PaymentPaid, Percent: -10, AmountType: AmountPercent, Date: on}}
	if got := recognizedRevenue(&q, total, march, Date{}); !got.IsZero() {
		t.Errorf("-10%% resolves as 0%%: got %s, want 0", got)
	}
	q.Payments = []Payment{{Status: PaymentPaid, Percent: 40, AmountType: AmountPercent, Date: on}}
	if got := recognizedRevenue(&q, total, march, Date{}); !got.Equal(M(400)) {
		t.Errorf("40%% of 1000 = %s, want 400", got)
	}
}

func TestRecognizedRevenueNegativeFixedAmount(t *testing.T) {
	q := pricedQuote("q1", 1000)
	q.Payments = []Payment{{Status: PaymentPaid, Amount: -500, AmountType: AmountFixed, Date: date(2024, time.March, 10)}}
	if got := recognizedRevenue(&q, quoteTotal(&q), march, Date{}); !got.IsZero() {
		t.Errorf("negative fixed payment = %s, want 0", got)
	}
}

func TestRecognizedRevenuePendingExcluded(t *testing.T) {
	q := pricedQuote("q1", 1000)
	q.Payments = []Payment{{Status: PaymentPending, Amount: 600, AmountType: AmountFixed, Date: date(2024, time.March, 10)}}
	if got := recognizedRevenue(&q, quoteTotal(&q), march, Date{}); !got.IsZero() {
		t.Errorf("pending payment recognized: %s", got)
	}
}

func TestRecognizedRevenuePaymentDateFallback(t *testing.T) {
	// An undated payment borrows the quote's paid date, then the task
	// fallback date.
	q := pricedQuote("q1", 1000)
	q.Payments = []Payment{{Status: PaymentPaid, Amount: 300, AmountType: AmountFixed}}

	q.PaidDate = date(2024, time.March, 20)
	if got := recognizedRevenue(&q, quoteTotal(&q), march, Date{}); !got.Equal(M(300)) {
		t.Errorf("quote paidDate fallback = %s, want 300", got)
	}

	q.PaidDate = Date{}
	if got := recognizedRevenue(&q, quoteTotal(&q), march, date(2024, time.March, 25)); !got.Equal(M(300)) {
		t.Errorf("task fallback date = %s, want 300", got)
	}

	// No date at all: excluded, not wildcard-included.
	if got := recognizedRevenue(&q, quoteTotal(&q), march, Date{}); !got.IsZero() {
		t.Errorf("dateless payment = %s, want 0", got)
	}
}

func TestRecognizedRevenueDirectAmount(t *testing.T) {
	q := pricedQuote("q1", 1000)
	q.AmountPaid = fptr(750)
	q.PaidDate = date(2024, time.March, 5)
	if got := recognizedRevenue(&q, quoteTotal(&q), march, Date{}); !got.Equal(M(750)) {
		t.Errorf("direct amount = %s, want 750", got)
	}
	q.PaidDate = date(2024, time.April, 5)
	if got := recognizedRevenue(&q, quoteTotal(&q), march, Date{}); !got.IsZero() {
		t.Errorf("direct amount out of range = %s, want 0", got)
	}
}

func TestRecognizedRevenueStatusFlag(t *testing.T) {
	q := pricedQuote("q1", 1000)
	q.Status = QuoteStatusPaid
	if got := recognizedRevenue(&q, quoteTotal(&q), march, date(2024, time.March, 15)); !got.Equal(M(1000)) {
		t.Errorf("status flag = %s, want full total", got)
	}
	if got := recognizedRevenue(&q, quoteTotal(&q), march, date(2024, time.May, 15)); !got.IsZero() {
		t.Errorf("status flag out of range = %s, want 0", got)
	}
}

func TestPaymentModePrecedence(t *testing.T) {
	// An itemized list shadows both the direct amount and the status
	// flag; only the list is evaluated.
	q := pricedQuote("q1", 1000)
	q.Payments = []Payment{{Status: PaymentPending, Amount: 999, AmountType: AmountFixed, Date: date(2024, time.March, 1)}}
	q.AmountPaid = fptr(500)
	q.Status = QuoteStatusPaid
	if got := recognizedRevenue(&q, quoteTotal(&q), march, Date{}); !got.IsZero() {
		t.Errorf("itemized branch must shadow the others: got %s", got)
	}
}

func TestResolvedPaidDate(t *testing.T) {
	fallback := date(2024, time.June, 1)

	q := pricedQuote("q1", 1000)
	q.PaidDate = date(2024, time.May, 5)
	if got := resolvedPaidDate(&q, fallback); got != q.PaidDate {
		t.Errorf("paidDate wins: got %s", got)
	}

	q.PaidDate = Date{}
	q.Payments = []Payment{
		{Status: PaymentPaid, Amount: 1, Date: date(2024, time.May, 20)},
		{Status: PaymentPaid, Amount: 1, Date: date(2024, time.May, 10)},
		{Status: PaymentPending, Amount: 1, Date: date(2024, time.May, 1)},
	}
	if got := resolvedPaidDate(&q, fallback); got != date(2024, time.May, 10) {
		t.Errorf("earliest paid payment wins: got %s", got)
	}

	q.Payments = nil
	if got := resolvedPaidDate(&q, fallback); got != fallback {
		t.Errorf("fallback date: got %s", got)
	}
}

func TestCollaboratorCostDecoupledDating(t *testing.T) {
	// The collaborator quote's own bookkeeping never drives the date:
	// only the main quote's resolved paid date does.
	main := pricedQuote("q1", 1000000)
	main.PaidDate = date(2024, time.May, 5)

	cq := CollaboratorQuote{ID: "cq1", CollaboratorID: "c1", AmountPaid: fptr(200000)}

	cost := collaboratorCost(&cq, &main, Date{})
	if !cost.amount.Equal(M(200000)) {
		t.Errorf("cost amount = %s, want 200000", cost.amount)
	}
	if cost.date != date(2024, time.May, 5) {
		t.Errorf("cost date = %s, want the main quote's paid date", cost.date)
	}

	may := NewRange(date(2024, time.May, 1), date(2024, time.May, 31))
	if !may.Contains(cost.date) {
		t.Error("cost should land in May")
	}
}

func TestCollaboratorCostAmountFallsBackToTotal(t *testing.T) {
	main := pricedQuote("q1", 1000)
	cq := CollaboratorQuote{
		ID:       "cq1",
		Columns:  priceColumns(),
		Sections: []Section{{ID: "s1", Items: []Item{{ID: "a", UnitPrice: 80000}}}},
	}
	cost := collaboratorCost(&cq, &main, date(2024, time.March, 10))
	if !cost.amount.Equal(M(80000)) {
		t.Errorf("cost amount = %s, want computed total 80000", cost.amount)
	}
	if cost.date != date(2024, time.March, 10) {
		t.Errorf("cost date = %s, want fallback", cost.date)
	}
}

func TestPaidToDate(t *testing.T) {
	q := pricedQuote("q1", 1000)
	q.Payments = []Payment{
		{Status: PaymentPaid, Percent: 30, AmountType: AmountPercent}, // undated on purpose
		{Status: PaymentPaid, Amount: 200, AmountType: AmountFixed},
		{Status: PaymentPending, Amount: 999, AmountType: AmountFixed},
	}
	if got := paidToDate(&q, quoteTotal(&q)); !got.Equal(M(500)) {
		t.Errorf("paidToDate = %s, want 500", got)
	}
}
