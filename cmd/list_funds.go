package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	tracker "github.com/deividi86/hedge-fund-tracker"
)

// listFundsCmd implements the 'list-funds' subcommand.
type listFundsCmd struct{}

func (*listFundsCmd) Name() string     { return "list-funds" }
func (*listFundsCmd) Synopsis() string { return "show the known fund aliases" }
func (*listFundsCmd) Usage() string {
	return `hft list-funds

  Lists the built-in fund aliases and the CIK each one resolves to.
  An alias is accepted anywhere a fund argument is expected.
`
}

func (c *listFundsCmd) SetFlags(f *flag.FlagSet) {}

func (c *listFundsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	fmt.Println("\nAvailable fund aliases:")
	fmt.Println()
	for _, fund := range tracker.KnownFunds() {
		fmt.Printf("  %-18s %-45s CIK: %s\n", fund.Alias, fund.Name, fund.CIK)
	}
	fmt.Printf("\nUsage: hft holdings %s\n\n", tracker.Aliases()[0])
	return subcommands.ExitSuccess
}
