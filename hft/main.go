package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	tracker "github.com/deividi86/hedge-fund-tracker"
	"github.com/deividi86/hedge-fund-tracker/cmd"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion wires shell completion: subcommand names, output formats and
// the known fund aliases. It exits the process when invoked by the shell's
// completion machinery.
func completion() {
	aliases := predict.Set(tracker.Aliases())
	fundCmd := &complete.Command{Args: aliases}
	holdings := &complete.Command{
		Args: aliases,
		Flags: map[string]complete.Predictor{
			"n":         predict.Something,
			"o":         predict.Set{"table", "plain", "bars", "json"},
			"bar-width": predict.Something,
		},
	}
	filings := &complete.Command{
		Args:  aliases,
		Flags: map[string]complete.Predictor{"limit": predict.Something},
	}
	assist := &complete.Command{
		Args:  aliases,
		Flags: map[string]complete.Predictor{"n": predict.Something},
	}

	hft := &complete.Command{
		Sub: map[string]*complete.Command{
			"holdings":   holdings,
			"filings":    filings,
			"search":     fundCmd,
			"list-funds": {},
			"assist":     assist,
			"topic":      {Args: predict.Set{"readme", "funds", "output"}},
		},
		Flags: map[string]complete.Predictor{"key": predict.Something},
	}
	hft.Complete("hft")
}
