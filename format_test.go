package tracker

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) *decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return &d
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   *decimal.Decimal
		want string
	}{
		{nil, "-"},
		{dec("0"), "$0"},
		{dec("999"), "$999"},
		{dec("1000"), "$1K"},
		{dec("999999"), "$1000K"},
		{dec("1000000"), "$1.0M"},
		{dec("174300000"), "$174.3M"},
		{dec("1500000000"), "$1.50B"},
		{dec("-2500"), "$-2K"},
		// below $1K the formatter leads with the sign
		{dec("-500"), "-$500"},
	}
	for _, tt := range tests {
		if got := FormatValue(tt.in); got != tt.want {
			t.Errorf("FormatValue(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatShares(t *testing.T) {
	tests := []struct {
		in   *decimal.Decimal
		want string
	}{
		{nil, "-"},
		{dec("0"), "0"},
		{dec("999"), "999"},
		{dec("1500"), "1.5K"},
		{dec("915560000"), "915.56M"},
		{dec("1234.9"), "1.2K"}, // truncated to whole shares first
	}
	for _, tt := range tests {
		if got := FormatShares(tt.in); got != tt.want {
			t.Errorf("FormatShares(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(decimal.NewFromFloat(50.24), true); got != "50.2%" {
		t.Errorf("FormatPercent(50.24) = %q, want %q", got, "50.2%")
	}
	if got := FormatPercent(decimal.Zero, false); got != "" {
		t.Errorf("FormatPercent(!ok) = %q, want blank", got)
	}
}
