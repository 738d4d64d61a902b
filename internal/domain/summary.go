package domain

import "encoding/json"

// Base summary columns.
const (
	SummaryCashAmount   = "cashAmount"
	SummaryMobileAmount = "mobileAmount"
	SummaryTotalAmount  = "totalAmount"
	SummaryCount        = "count"
)

// BaseSummaryColumns returns the fixed column labels of a grouped summary.
func BaseSummaryColumns() map[string]string {
	return map[string]string{
		SummaryCashAmount:   "cash amount",
		SummaryMobileAmount: "mobile amount",
		SummaryTotalAmount:  "total amount",
		SummaryCount:        "count",
	}
}

// SummaryRow maps column keys to summed values.
type SummaryRow map[string]float64

// NewSummaryRow returns a row with every base column set to zero.
func NewSummaryRow() SummaryRow {
	return SummaryRow{
		SummaryCashAmount:   0,
		SummaryMobileAmount: 0,
		SummaryTotalAmount:  0,
		SummaryCount:        0,
	}
}

// Add accumulates v into key, treating a missing key as zero.
func (r SummaryRow) Add(key string, v float64) {
	r[key] += v
}

// GroupAmount is one bucket row of a grouped summary.
type GroupAmount struct {
	PaidDate string
	Values   SummaryRow
}

// MarshalJSON flattens the bucket values next to its paidDate key.
func (g GroupAmount) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(g.Values)+1)
	for k, v := range g.Values {
		out[k] = v
	}
	out["paidDate"] = g.PaidDate
	return json.Marshal(out)
}

// GroupSummary is a summary bucketed by paid date.
type GroupSummary struct {
	Amounts []GroupAmount     `json:"amounts"`
	Columns map[string]string `json:"columns"`
}

// AmountTotals is the first-pass aggregation over order amounts. Group is
// the bucket key, empty when orders are not bucketed.
type AmountTotals struct {
	Group        string
	CashAmount   float64
	MobileAmount float64
	TotalAmount  float64
	Count        float64
}

// PaymentTotals is the second-pass aggregation over itemized payments joined
// with the POS payment type titles.
type PaymentTotals struct {
	Group  string
	Type   string
	Title  string
	Amount float64
}
