package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	tracker "github.com/deividi86/hedge-fund-tracker"
	"github.com/deividi86/hedge-fund-tracker/renderer"
)

// holdingsCmd holds the flags for the 'holdings' subcommand.
type holdingsCmd struct {
	top      int
	output   string
	barWidth int
}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "show the top holdings for a fund" }
func (*holdingsCmd) Usage() string {
	return `hft holdings [-n <count>] [-o <format>] <fund>

  Shows the top holdings from the latest 13F filing of a fund. The fund can
  be a known alias (see 'hft list-funds'), a raw CIK number, or a free-text
  name searched against the SEC EDGAR database.

  Formats: table (styled), plain (fixed-width text), bars (proportion
  chart), json (normalized records, no truncation of names).
`
}

func (c *holdingsCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.top, "n", 20, "Number of top holdings to show.")
	f.StringVar(&c.output, "o", "table", "Output format: table, plain, bars or json.")
	f.IntVar(&c.barWidth, "bar-width", 0, "Segments in a full bar for -o bars (default 20, one per 5%).")
}

func (c *holdingsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: a fund alias, name or CIK is required.")
		return subcommands.ExitUsageError
	}
	if c.top <= 0 {
		fmt.Fprintf(os.Stderr, "Error: -n must be a positive integer, got %d.\n", c.top)
		return subcommands.ExitUsageError
	}

	client, err := newClient()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	input := strings.Join(f.Args(), " ")
	fund, err := tracker.Resolve(ctx, client, input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	records, err := client.Holdings(ctx, fund.CIK)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	report, err := tracker.NewReport(fund.Name, tracker.Normalize(records), c.top)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	switch c.output {
	case "json":
		out, err := json.MarshalIndent(report.Holdings, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding holdings: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Println(string(out))
	case "plain":
		fmt.Print(renderer.HoldingsPlain(report))
	case "bars":
		fmt.Print(renderer.HoldingsBars(report, c.barWidth))
	case "table":
		printMarkdown(renderer.HoldingsMarkdown(report))
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown output format %q.\n", c.output)
		return subcommands.ExitUsageError
	}

	return subcommands.ExitSuccess
}
