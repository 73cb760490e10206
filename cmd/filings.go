package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	tracker "github.com/deividi86/hedge-fund-tracker"
	"github.com/deividi86/hedge-fund-tracker/renderer"
)

// filingsCmd holds the flags for the 'filings' subcommand.
type filingsCmd struct {
	limit int
}

func (*filingsCmd) Name() string     { return "filings" }
func (*filingsCmd) Synopsis() string { return "list recent 13F filings for a fund" }
func (*filingsCmd) Usage() string {
	return `hft filings [-limit <count>] <fund>

  Lists the most recent 13F-HR filing summaries of a fund: filing date,
  reporting period and accession number.
`
}

func (c *filingsCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.limit, "limit", 4, "Number of recent filings to list.")
}

func (c *filingsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: a fund alias, name or CIK is required.")
		return subcommands.ExitUsageError
	}
	if c.limit <= 0 {
		fmt.Fprintf(os.Stderr, "Error: -limit must be a positive integer, got %d.\n", c.limit)
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

	filings, err := client.Filings(ctx, fund.CIK, c.limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.FilingsMarkdown(fund.Name, filings))
	return subcommands.ExitSuccess
}
