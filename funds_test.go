package tracker

import (
	"context"
	"testing"

	"github.com/deividi86/hedge-fund-tracker/edgar"
)

// fakeSearcher records calls and returns canned results.
type fakeSearcher struct {
	calls   int
	results []edgar.Company
	err     error
}

func (f *fakeSearcher) Search(_ context.Context, query string) ([]edgar.Company, error) {
	f.calls++
	return f.results, f.err
}

func TestResolveKnownAliasSkipsNetwork(t *testing.T) {
	s := &fakeSearcher{}
	fund, err := Resolve(context.Background(), s, "Berkshire")
	if err != nil {
		t.Fatal(err)
	}
	if fund.CIK != "0001067983" {
		t.Errorf("CIK = %q, want 0001067983", fund.CIK)
	}
	if fund.Name != "Berkshire Hathaway (Warren Buffett)" {
		t.Errorf("Name = %q", fund.Name)
	}
	if s.calls != 0 {
		t.Errorf("alias resolution made %d search calls, want 0", s.calls)
	}
}

func TestResolveRawCIK(t *testing.T) {
	s := &fakeSearcher{}
	fund, err := Resolve(context.Background(), s, "1067983")
	if err != nil {
		t.Fatal(err)
	}
	if fund.CIK != "1067983" || fund.Name != "CIK 1067983" {
		t.Errorf("fund = %+v", fund)
	}
	if s.calls != 0 {
		t.Errorf("CIK resolution made %d search calls, want 0", s.calls)
	}
}

func TestResolveBySearch(t *testing.T) {
	s := &fakeSearcher{results: []edgar.Company{
		{CIK: "0001350694", Name: "BRIDGEWATER ASSOCIATES, LP"},
		{CIK: "0009999999", Name: "Bridgewater Other"},
	}}
	fund, err := Resolve(context.Background(), s, "bridgewater associates")
	if err != nil {
		t.Fatal(err)
	}
	if fund.CIK != "0001350694" {
		t.Errorf("CIK = %q, want the first search result", fund.CIK)
	}
	if s.calls != 1 {
		t.Errorf("made %d search calls, want exactly 1", s.calls)
	}
}

func TestResolveNotFound(t *testing.T) {
	s := &fakeSearcher{}
	_, err := Resolve(context.Background(), s, "no such fund anywhere")
	nf, ok := err.(*NotFoundError)
	if !ok {
		t.Fatalf("err = %v, want *NotFoundError", err)
	}
	if nf.Query != "no such fund anywhere" {
		t.Errorf("Query = %q", nf.Query)
	}
}

func TestIsCIK(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"0001067983", true},
		{"1", true},
		{"", false},
		{"12345678901", false}, // 11 digits
		{"berkshire", false},
		{"00010679a3", false},
	}
	for _, tt := range tests {
		if got := IsCIK(tt.in); got != tt.want {
			t.Errorf("IsCIK(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestKnownFundsSorted(t *testing.T) {
	funds := KnownFunds()
	if len(funds) != 15 {
		t.Fatalf("len = %d, want 15", len(funds))
	}
	for i := 1; i < len(funds); i++ {
		if funds[i-1].Alias >= funds[i].Alias {
			t.Errorf("aliases not sorted: %q before %q", funds[i-1].Alias, funds[i].Alias)
		}
	}
}

func TestLookupFundCaseInsensitive(t *testing.T) {
	if _, ok := LookupFund("  TWO-SIGMA "); !ok {
		t.Error("LookupFund should ignore case and whitespace")
	}
	if _, ok := LookupFund("unknown"); ok {
		t.Error("LookupFund matched an unknown alias")
	}
}
