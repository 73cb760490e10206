package tracker

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Formatters for the non-abbreviated tail cases: plain dollars and plain
// share counts, both with thousands separators and no decimals.
// Negative amounts come out sign-first (-$500), unlike the abbreviated
// branches ($-2K); 13F values are non-negative so neither shape shows up in
// real reports.
var (
	dollarFormatter = money.NewFormatter(0, ".", ",", "$", "$1")
	sharesFormatter = money.NewFormatter(0, ".", ",", "", "1")
)

// FormatValue renders a dollar value with magnitude abbreviations:
// $1.50B, $174.3M, $999K, $999. An absent value renders as "-".
func FormatValue(v *decimal.Decimal) string {
	if v == nil {
		return "-"
	}
	val := v.InexactFloat64()
	abs := val
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs >= 1_000_000_000:
		return fmt.Sprintf("$%.2fB", val/1_000_000_000)
	case abs >= 1_000_000:
		return fmt.Sprintf("$%.1fM", val/1_000_000)
	case abs >= 1_000:
		return fmt.Sprintf("$%.0fK", val/1_000)
	default:
		return dollarFormatter.Format(v.Round(0).IntPart())
	}
}

// FormatShares renders a share count: 915.56M, 1.5K, 999. The count is
// truncated to a whole number first. An absent count renders as "-".
func FormatShares(v *decimal.Decimal) string {
	if v == nil {
		return "-"
	}
	n := v.IntPart()
	abs := n
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs >= 1_000_000:
		return fmt.Sprintf("%.2fM", float64(n)/1_000_000)
	case abs >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	default:
		return sharesFormatter.Format(n)
	}
}

// FormatPercent renders a percentage with one decimal place.
// A missing percentage (zero total or absent value) renders blank.
func FormatPercent(pct decimal.Decimal, ok bool) string {
	if !ok {
		return ""
	}
	return fmt.Sprintf("%.1f%%", pct.InexactFloat64())
}
