package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"google.golang.org/genai"

	tracker "github.com/deividi86/hedge-fund-tracker"
	"github.com/deividi86/hedge-fund-tracker/renderer"
)

const assistModel = "gemini-2.5-flash"

const assistInstruction = "You are a financial analyst. Below is the latest 13F holdings report " +
	"of an institutional fund. Comment on the portfolio: concentration, sector tilts, and anything " +
	"notable. Be factual, concise, and answer in markdown."

// assistCmd holds the flags for the 'assist' subcommand.
type assistCmd struct {
	top int
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "ask Gemini to comment on a fund's holdings" }
func (*assistCmd) Usage() string {
	return `hft assist [-n <count>] <fund> [question]

  Fetches the fund's latest 13F holdings and asks Gemini for a short
  commentary. An optional question after the fund name steers the answer.
  Requires Gemini credentials in the environment (GEMINI_API_KEY).
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.top, "n", 20, "Number of top holdings to include in the prompt.")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	fund, err := tracker.Resolve(ctx, client, f.Arg(0))
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

	prompt := assistInstruction + "\n\n" + renderer.HoldingsMarkdown(report)
	if f.NArg() > 1 {
		prompt += "\n\nQuestion: " + strings.Join(f.Args()[1:], " ")
	}

	gem, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	resp, err := gem.Models.GenerateContent(ctx, assistModel, genai.Text(prompt), nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error asking Gemini:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(resp.Text())
	return subcommands.ExitSuccess
}
