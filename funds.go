package tracker

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/deividi86/hedge-fund-tracker/edgar"
)

// Fund identifies an institutional investment manager with the SEC.
type Fund struct {
	Alias string // short name in the known-funds table, empty otherwise
	CIK   string // stable SEC filer key
	Name  string // human readable name
}

// knownFunds maps convenient aliases to well-known 13F filers.
var knownFunds = map[string]Fund{
	"berkshire":    {CIK: "0001067983", Name: "Berkshire Hathaway (Warren Buffett)"},
	"bridgewater":  {CIK: "0001350694", Name: "Bridgewater Associates (Ray Dalio)"},
	"renaissance":  {CIK: "0001037389", Name: "Renaissance Technologies (Jim Simons)"},
	"citadel":      {CIK: "0001423053", Name: "Citadel Advisors (Ken Griffin)"},
	"soros":        {CIK: "0001029160", Name: "Soros Fund Management"},
	"appaloosa":    {CIK: "0001656456", Name: "Appaloosa Management (David Tepper)"},
	"pershing":     {CIK: "0001336528", Name: "Pershing Square (Bill Ackman)"},
	"third-point":  {CIK: "0001040273", Name: "Third Point (Dan Loeb)"},
	"elliott":      {CIK: "0001048445", Name: "Elliott Management (Paul Singer)"},
	"two-sigma":    {CIK: "0001179392", Name: "Two Sigma Investments"},
	"tiger-global": {CIK: "0001167483", Name: "Tiger Global Management"},
	"dragoneer":    {CIK: "0001571052", Name: "Dragoneer Investment Group"},
	"millennium":   {CIK: "0001273087", Name: "Millennium Management (Israel Englander)"},
	"point72":      {CIK: "0001603466", Name: "Point72 (Steve Cohen)"},
	"de-shaw":      {CIK: "0001009207", Name: "D.E. Shaw & Co"},
}

// KnownFunds returns the alias table sorted by alias.
func KnownFunds() []Fund {
	funds := make([]Fund, 0, len(knownFunds))
	for alias, f := range knownFunds {
		f.Alias = alias
		funds = append(funds, f)
	}
	sort.Slice(funds, func(i, j int) bool { return funds[i].Alias < funds[j].Alias })
	return funds
}

// Aliases returns all known fund aliases sorted alphabetically.
func Aliases() []string {
	aliases := make([]string, 0, len(knownFunds))
	for alias := range knownFunds {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)
	return aliases
}

// LookupFund resolves a fund alias from the known-funds table.
// The lookup is case-insensitive and ignores surrounding whitespace.
func LookupFund(alias string) (Fund, bool) {
	key := strings.ToLower(strings.TrimSpace(alias))
	f, ok := knownFunds[key]
	if ok {
		f.Alias = key
	}
	return f, ok
}

// IsCIK reports whether s looks like a raw CIK number.
// SEC CIKs are at most 10 digits, optionally zero-padded.
func IsCIK(s string) bool {
	if len(s) == 0 || len(s) > 10 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Searcher locates SEC filers by free-text name.
// *edgar.Client implements it.
type Searcher interface {
	Search(ctx context.Context, query string) ([]edgar.Company, error)
}

// NotFoundError reports that a free-text search matched no SEC filer.
type NotFoundError struct {
	Query string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no SEC filer found matching %q", e.Query)
}

// Resolve maps user input to a Fund. A known alias resolves from the static
// table without any network call, a string of digits is taken as a CIK
// directly, and anything else triggers exactly one search call whose first
// match wins.
func Resolve(ctx context.Context, s Searcher, input string) (Fund, error) {
	if f, ok := LookupFund(input); ok {
		return f, nil
	}
	if IsCIK(input) {
		return Fund{CIK: input, Name: "CIK " + input}, nil
	}
	results, err := s.Search(ctx, input)
	if err != nil {
		return Fund{}, err
	}
	if len(results) == 0 {
		return Fund{}, &NotFoundError{Query: input}
	}
	return Fund{CIK: results[0].CIK, Name: results[0].Name}, nil
}
