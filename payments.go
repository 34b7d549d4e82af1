package freelance

// Payment recognition. A quote's payment bookkeeping exists in four
// mutually exclusive shapes, selected once per quote in a fixed
// precedence order. Absence of payment evidence is never treated as
// "paid".

type paymentMode int

const (
	// modeItemized: the quote carries an explicit payments list.
	modeItemized paymentMode = iota
	// modeDirect: no list, but an explicit paid-amount field.
	modeDirect
	// modeStatus: no list, no amount, but the quote-level status is "paid".
	modeStatus
	// modeNone: no payment evidence at all.
	modeNone
)

// resolvePaymentMode selects the recognition branch for a quote.
// Exactly one branch applies; the others are unreachable for that quote.
func resolvePaymentMode(q *Quote) paymentMode {
	switch {
	case len(q.Payments) > 0:
		return modeItemized
	case q.AmountPaid != nil:
		return modeDirect
	case q.Status == QuoteStatusPaid:
		return modeStatus
	default:
		return modeNone
	}
}

// datedAmount is one recognized contribution placed in time.
type datedAmount struct {
	date   Date
	amount Money
}

// recognizedPayments returns the paid contributions of a quote that fall
// inside the range, each with its resolved date. total is the quote's
// computed grand total, fallback the owning task's fallback date.
//
// Keeping per-contribution dates is what lets the monthly view bucket
// the same facts the summary sums, without re-deciding anything.
func recognizedPayments(q *Quote, total Money, rng Range, fallback Date) []datedAmount {
	if q == nil {
		return nil
	}
	switch resolvePaymentMode(q) {
	case modeItemized:
		var out []datedAmount
		for _, p := range q.Payments {
			if p.Status != PaymentPaid {
				continue
			}
			on := firstDate(p.Date, q.PaidDate, fallback)
			if !rng.Contains(on) {
				continue
			}
			out = append(out, datedAmount{date: on, amount: paymentAmount(p, total)})
		}
		return out
	case modeDirect:
		on := firstDate(q.PaidDate, fallback)
		if !rng.Contains(on) {
			return nil
		}
		return []datedAmount{{date: on, amount: M(*q.AmountPaid)}}
	case modeStatus:
		on := firstDate(q.PaidDate, fallback)
		if !rng.Contains(on) {
			return nil
		}
		return []datedAmount{{date: on, amount: total}}
	default:
		return nil
	}
}

// recognizedRevenue is the recognized paid amount of a quote within the
// range.
func recognizedRevenue(q *Quote, total Money, rng Range, fallback Date) Money {
	sum := M(0)
	for _, da := range recognizedPayments(q, total, rng, fallback) {
		sum = sum.Add(da.amount)
	}
	return sum
}

// paymentAmount values a single itemized payment against the current
// total. Percent shares are clamped to [0, 100]; negative fixed amounts
// count as 0.
func paymentAmount(p Payment, total Money) Money {
	if p.AmountType == AmountPercent {
		return Percent(p.Percent).Of(total)
	}
	return Max(M(p.Amount), M(0))
}

// paidToDate sums every paid amount of the quote regardless of dates.
// Used by projections, where the question is "how much is left", not
// "when was it paid".
func paidToDate(q *Quote, total Money) Money {
	if q == nil {
		return M(0)
	}
	switch resolvePaymentMode(q) {
	case modeItemized:
		sum := M(0)
		for _, p := range q.Payments {
			if p.Status != PaymentPaid {
				continue
			}
			sum = sum.Add(paymentAmount(p, total))
		}
		return sum
	case modeDirect:
		return M(*q.AmountPaid)
	case modeStatus:
		return total
	default:
		return M(0)
	}
}

// resolvedPaidDate is the date the quote was (or will be considered)
// paid: the quote's paid date, else the earliest paid itemized payment's
// date, else the fallback date.
func resolvedPaidDate(q *Quote, fallback Date) Date {
	if q == nil {
		return fallback
	}
	if !q.PaidDate.IsZero() {
		return q.PaidDate
	}
	var earliest Date
	for _, p := range q.Payments {
		if p.Status != PaymentPaid || p.Date.IsZero() {
			continue
		}
		if earliest.IsZero() || p.Date.Before(earliest) {
			earliest = p.Date
		}
	}
	return firstDate(earliest, fallback)
}

// collaboratorCost is the cost attribution policy for a collaborator
// quote, deliberately decoupled from the collaborator's own (frequently
// absent) payment bookkeeping: the amount is the recorded paid amount
// else the quote's total, and the date is the main quote's resolved paid
// date. Payout timing tracks the client's payment milestone.
func collaboratorCost(cq *CollaboratorQuote, main *Quote, fallback Date) datedAmount {
	amount := collabQuoteTotal(cq)
	if cq != nil && cq.AmountPaid != nil {
		amount = M(*cq.AmountPaid)
	}
	return datedAmount{date: resolvedPaidDate(main, fallback), amount: amount}
}
