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

type compareCmd struct{}

func (*compareCmd) Name() string     { return "compare" }
func (*compareCmd) Synopsis() string { return "compare the selected coins" }
func (*compareCmd) Usage() string {
	return `cct compare

  Shows price, market cap, 24h volume and circulating supply for every
  coin in your stored selection.
`
}
func (*compareCmd) SetFlags(f *flag.FlagSet) {}

func (c *compareCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	subject := requireSubject()
	if subject == nil {
		return subcommands.ExitFailure
	}

	profile, err := OpenStore().Profile(subject.ID)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	deriver := cryptotrack.NewDeriver(quoteSource())
	records, err := deriver.DeriveTable(ctx, profile.Selection())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching coin data: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Comparison("Cryptocurrency Comparison", records))
	return subcommands.ExitSuccess
}
