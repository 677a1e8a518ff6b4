package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/hnath/cryptotrack"
	"github.com/hnath/cryptotrack/renderer"
)

type historyCmd struct{}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "list your conversion history, newest first" }
func (*historyCmd) Usage() string    { return "cct history\n" }
func (*historyCmd) SetFlags(f *flag.FlagSet) {}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	subject := requireSubject()
	if subject == nil {
		return subcommands.ExitFailure
	}

	entries, err := cryptotrack.NewRecorder(OpenStore()).List(subject)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching history: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.History(entries))
	return subcommands.ExitSuccess
}

type clearHistoryCmd struct{}

func (*clearHistoryCmd) Name() string     { return "clear-history" }
func (*clearHistoryCmd) Synopsis() string { return "remove every entry of your conversion history" }
func (*clearHistoryCmd) Usage() string {
	return `cct clear-history

  Removes the whole log. Selective deletion is not supported.
`
}
func (*clearHistoryCmd) SetFlags(f *flag.FlagSet) {}

func (c *clearHistoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	subject := requireSubject()
	if subject == nil {
		return subcommands.ExitFailure
	}

	if err := cryptotrack.NewRecorder(OpenStore()).Clear(subject); err != nil {
		fmt.Fprintf(os.Stderr, "Error clearing history: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println("Conversion history cleared!")
	return subcommands.ExitSuccess
}
