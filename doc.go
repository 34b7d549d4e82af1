// Package freelance implements the financial reconciliation and reporting
// engine of a freelancer project dashboard. It turns a snapshot of raw
// task, quote, payment and fixed-cost records into revenue, cost, profit
// and projection reports over an arbitrary date window.
//
// The core functionalities include:
//   - Quote Valuation: computing per-item and per-quote monetary totals,
//     including per-row spreadsheet-like formulas evaluated by a
//     constrained arithmetic interpreter.
//   - Payment Reconciliation: deciding the recognized paid amount of a
//     quote within a date range across several optional payment shapes
//     (itemized payments, a direct paid amount, or a bare status flag).
//   - Fixed-Cost Proration: allocating recurring costs to a query range
//     or to calendar months.
//   - Reporting: producing mutually-consistent summary, per-client,
//     per-task, monthly and projection views from the same facts.
//
// Every report is a pure function of a Snapshot and a Range: the engine
// performs no I/O, keeps no state between calls, and never fails a
// report. A malformed record degrades to a zero contribution and the
// rest of the snapshot is still aggregated.
//
// This package serves as the foundational logic for the `frd`
// command-line tool.
package freelance
