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

type symbolsCmd struct {
	page int
}

func (*symbolsCmd) Name() string     { return "symbols" }
func (*symbolsCmd) Synopsis() string { return "list cryptocurrencies by market cap" }
func (*symbolsCmd) Usage() string {
	return `cct symbols [-page <n>]

  Lists cryptocurrencies ordered by descending market capitalization,
  50 per page. Selected coins are marked.
`
}

func (c *symbolsCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.page, "page", 1, "listing page, 1-based")
}

func (c *symbolsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	symbols, err := quoteSource().Top(ctx, c.page)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to fetch coin list: %v\n", err)
		return subcommands.ExitFailure
	}

	var selection *cryptotrack.Selection
	if session, err := LoadSession(); err == nil && session.Authenticated() {
		if profile, err := OpenStore().Profile(session.Subject.ID); err == nil {
			selection = profile.Selection()
		}
	}

	printMarkdown(renderer.Listing(symbols, selection))
	return subcommands.ExitSuccess
}
