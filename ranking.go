package tracker

import (
	"fmt"
	"slices"
	"sort"

	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// Report is the ranked, aggregated view of a fund's 13F portfolio.
// It is derived once per invocation and immutable thereafter.
type Report struct {
	Fund      string    // fund display name
	Holdings  []Holding // sorted by value descending, truncated to Requested
	Total     decimal.Decimal
	Requested int // display count the caller asked for
	Positions int // full record count, before truncation
}

// NewReport ranks holdings by value descending (ties keep their original
// order) and truncates to the first n. Total is always summed over the full
// list, not just the displayed slice, so percentages do not depend on n.
func NewReport(fund string, holdings []Holding, n int) (*Report, error) {
	if n <= 0 {
		return nil, fmt.Errorf("display count must be a positive integer, got %d", n)
	}

	total := decimal.Zero
	for _, h := range holdings {
		if h.Value != nil {
			total = total.Add(*h.Value)
		}
	}

	ranked := slices.Clone(holdings)
	sort.SliceStable(ranked, func(i, j int) bool {
		return valueOf(ranked[i]).GreaterThan(valueOf(ranked[j]))
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}

	return &Report{
		Fund:      fund,
		Holdings:  ranked,
		Total:     total,
		Requested: n,
		Positions: len(holdings),
	}, nil
}

// Shown returns how many positions the report displays.
func (r *Report) Shown() int { return len(r.Holdings) }

// Hidden returns how many positions fall beyond the display cutoff.
func (r *Report) Hidden() int { return r.Positions - len(r.Holdings) }

// Percent returns a holding's share of the total portfolio value in percent.
// It reports false when the total is zero or the holding has no value.
func (r *Report) Percent(h Holding) (decimal.Decimal, bool) {
	if h.Value == nil || !r.Total.IsPositive() {
		return decimal.Zero, false
	}
	return h.Value.Mul(oneHundred).Div(r.Total), true
}

// valueOf treats an absent value as zero for ranking and aggregation.
func valueOf(h Holding) decimal.Decimal {
	if h.Value == nil {
		return decimal.Zero
	}
	return *h.Value
}
