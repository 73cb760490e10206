// Package renderer turns ranked portfolio reports into their console
// representations: a markdown document for decorated terminal output, a
// plain fixed-width table, and a proportion-bar chart.
package renderer

import (
	"bytes"
	"fmt"
	"strings"

	md "github.com/nao1215/markdown"

	tracker "github.com/deividi86/hedge-fund-tracker"
	"github.com/deividi86/hedge-fund-tracker/edgar"
)

const (
	banner     = "Hedge Fund Tracker"
	subBanner  = "Powered by SEC EDGAR Financial Data API"
	noHoldings = "No holdings data available."

	// nameWidth is the column width for company names; longer names are cut
	// to ellipsisAt runes plus "..".
	nameWidth  = 30
	ellipsisAt = 28

	// defaultBarWidth is the number of bar segments representing 100%,
	// one segment per 5 percentage points.
	defaultBarWidth = 20
)

// HoldingsMarkdown renders the report as a markdown document, meant to be
// displayed through a terminal markdown renderer.
func HoldingsMarkdown(r *tracker.Report) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(banner)
	doc.PlainText(fmt.Sprintf("**%s** — Top %d Holdings from Latest 13F Filing", r.Fund, min(r.Requested, r.Positions)))

	if r.Positions == 0 {
		doc.PlainText(noHoldings)
		return doc.String()
	}

	rows := make([][]string, 0, len(r.Holdings))
	for i, h := range r.Holdings {
		rows = append(rows, []string{
			fmt.Sprint(i + 1),
			h.Name,
			tracker.FormatShares(h.Shares),
			tracker.FormatValue(h.Value),
			tracker.FormatPercent(r.Percent(h)),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"#", "Company", "Shares", "Value", "% of Portfolio"},
		Rows:   rows,
	})

	if r.Total.IsPositive() {
		total := r.Total
		doc.PlainText(fmt.Sprintf("Total portfolio value: %s", tracker.FormatValue(&total)))
	}
	if r.Hidden() > 0 {
		doc.PlainText(fmt.Sprintf("... and %d more positions", r.Hidden()))
	}
	return doc.String()
}

// HoldingsPlain renders the report as a fixed-width text table.
func HoldingsPlain(r *tracker.Report) string {
	var b strings.Builder
	rule := strings.Repeat("=", 70)

	fmt.Fprintf(&b, "\n%s\n  %s\n  %s\n%s\n\n", rule, banner, subBanner, rule)
	fmt.Fprintf(&b, "  %s  —  Top %d Holdings from Latest 13F Filing\n", r.Fund, min(r.Requested, r.Positions))
	fmt.Fprintln(&b, strings.Repeat("-", 70))

	if r.Positions == 0 {
		fmt.Fprintf(&b, "  %s\n", noHoldings)
		return b.String()
	}

	fmt.Fprintf(&b, "  %3s  %-*s %12s %12s %12s\n", "#", nameWidth, "Company", "Shares", "Value", "% Portfolio")
	fmt.Fprintf(&b, "  %s\n", strings.Repeat("-", 66))

	for i, h := range r.Holdings {
		pct, ok := r.Percent(h)
		fmt.Fprintf(&b, "  %3d  %-*s %12s %12s %12s\n",
			i+1,
			nameWidth, truncateName(h.Name),
			tracker.FormatShares(h.Shares),
			tracker.FormatValue(h.Value),
			tracker.FormatPercent(pct, ok),
		)
	}

	fmt.Fprintln(&b)
	if r.Total.IsPositive() {
		total := r.Total
		fmt.Fprintf(&b, "  Total portfolio value: %s\n", tracker.FormatValue(&total))
	}
	if r.Hidden() > 0 {
		fmt.Fprintf(&b, "  ... and %d more positions\n", r.Hidden())
	}
	fmt.Fprintln(&b)
	return b.String()
}

// HoldingsBars renders the report as a horizontal proportion-bar chart.
// Each bar is width segments long; a full bar is 100% of the portfolio and
// fractional segments are rounded down. A width of zero or less selects the
// default of 20 segments.
func HoldingsBars(r *tracker.Report, width int) string {
	if width <= 0 {
		width = defaultBarWidth
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n  %s  —  Top %d Holdings from Latest 13F Filing\n\n", r.Fund, min(r.Requested, r.Positions))

	if r.Positions == 0 {
		fmt.Fprintf(&b, "  %s\n", noHoldings)
		return b.String()
	}

	for i, h := range r.Holdings {
		pct, ok := r.Percent(h)
		filled := 0
		if ok {
			filled = int(pct.InexactFloat64() * float64(width) / 100)
			if filled > width {
				filled = width
			}
		}
		bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
		fmt.Fprintf(&b, "  %3d  %-*s %s %6s  %12s\n",
			i+1,
			nameWidth, truncateName(h.Name),
			bar,
			tracker.FormatPercent(pct, ok),
			tracker.FormatValue(h.Value),
		)
	}

	fmt.Fprintln(&b)
	if r.Total.IsPositive() {
		total := r.Total
		fmt.Fprintf(&b, "  Total portfolio value: %s\n", tracker.FormatValue(&total))
	}
	if r.Hidden() > 0 {
		fmt.Fprintf(&b, "  ... and %d more positions\n", r.Hidden())
	}
	fmt.Fprintln(&b)
	return b.String()
}

// FilingsMarkdown renders recent 13F filing summaries as a markdown table.
func FilingsMarkdown(fund string, filings []edgar.Filing) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(banner)
	doc.PlainText(fmt.Sprintf("**%s** — Recent 13F Filings", fund))

	if len(filings) == 0 {
		doc.PlainText("No filings found.")
		return doc.String()
	}

	rows := make([][]string, 0, len(filings))
	for _, f := range filings {
		rows = append(rows, []string{f.FilingDate, f.PeriodOfReport, f.FormType, f.AccessionNumber})
	}
	doc.Table(md.TableSet{
		Header: []string{"Filed", "Period", "Form", "Accession Number"},
		Rows:   rows,
	})
	return doc.String()
}

// truncateName cuts a company name to the table column width, marking the
// cut with "..".
func truncateName(name string) string {
	runes := []rune(name)
	if len(runes) <= nameWidth {
		return name
	}
	return string(runes[:ellipsisAt]) + ".."
}
