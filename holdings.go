package tracker

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// Holding is the normalized representation of one 13F position, independent
// of the field naming used by the API variant that produced it. Shares and
// Value are nil when the source record had no usable number; such positions
// render as "-" and count as zero in aggregations.
type Holding struct {
	Name   string
	Shares *decimal.Decimal
	Value  *decimal.Decimal
}

// Extraction rules per normalized field, evaluated first-match-wins.
// The API ships at least two record shapes: the raw EDGAR infotable
// (nameOfIssuer, shrsOrPrnAmt.sshPrnamt) and a flattened variant
// (name/company, shares).
var (
	nameFields  = []string{"$.nameOfIssuer", "$.name", "$.company"}
	shareFields = []string{"$.shrsOrPrnAmt.sshPrnamt", "$.shares"}
	valueFields = []string{"$.value"}
)

// firstPresent evaluates paths against record and returns the first present,
// non-null value.
func firstPresent(record any, paths []string) (any, bool) {
	for _, path := range paths {
		jval, err := jsonpath.Get(path, record)
		if err != nil {
			continue
		}
		// jsonpath is never clear about whether it returns a list of one
		// answer or a single answer; keep the first one if any.
		if jlist, ok := jval.([]any); ok {
			if len(jlist) == 0 {
				continue
			}
			jval = jlist[0]
		}
		if jval == nil {
			continue
		}
		return jval, true
	}
	return nil, false
}

// toDecimal coerces a raw JSON value to a decimal. Strings may carry
// thousands separators or stray spaces. A value that cannot be coerced
// yields nil, never an error: malformed records degrade, they do not abort.
func toDecimal(v any) *decimal.Decimal {
	switch n := v.(type) {
	case json.Number:
		d, err := decimal.NewFromString(n.String())
		if err != nil {
			return nil
		}
		return &d
	case float64:
		d := decimal.NewFromFloat(n)
		return &d
	case int:
		d := decimal.NewFromInt(int64(n))
		return &d
	case int64:
		d := decimal.NewFromInt(n)
		return &d
	case string:
		s := strings.ReplaceAll(n, ",", "")
		s = strings.ReplaceAll(s, " ", "")
		if s == "" {
			return nil
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return nil
		}
		return &d
	default:
		return nil
	}
}

// NormalizeRecord maps one raw holding record to its normalized form.
func NormalizeRecord(record map[string]any) Holding {
	h := Holding{Name: "Unknown"}
	if v, ok := firstPresent(record, nameFields); ok {
		if s, ok := v.(string); ok {
			h.Name = s
		} else {
			h.Name = fmt.Sprint(v)
		}
	}
	if v, ok := firstPresent(record, shareFields); ok {
		h.Shares = toDecimal(v)
	}
	if v, ok := firstPresent(record, valueFields); ok {
		h.Value = toDecimal(v)
	}
	return h
}

// Normalize maps raw holding records to normalized ones, preserving order.
func Normalize(records []map[string]any) []Holding {
	holdings := make([]Holding, 0, len(records))
	for _, r := range records {
		holdings = append(holdings, NormalizeRecord(r))
	}
	return holdings
}

// MarshalJSON emits shares and value as plain JSON numbers, omitting the
// absent ones. Names are never truncated in structured output.
func (h Holding) MarshalJSON() ([]byte, error) {
	type out struct {
		Name   string          `json:"name"`
		Shares json.RawMessage `json:"shares,omitempty"`
		Value  json.RawMessage `json:"value,omitempty"`
	}
	o := out{Name: h.Name}
	if h.Shares != nil {
		o.Shares = json.RawMessage(h.Shares.String())
	}
	if h.Value != nil {
		o.Value = json.RawMessage(h.Value.String())
	}
	return json.Marshal(o)
}
