package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/hnath/cryptotrack"
)

type selectCmd struct{}

func (*selectCmd) Name() string     { return "select" }
func (*selectCmd) Synopsis() string { return "toggle coins in the comparison selection" }
func (*selectCmd) Usage() string {
	return `cct select <coin-id>...

  Toggles each given coin in the selection: absent coins are added,
  present ones are removed. The selection is mirrored to your profile.
`
}
func (*selectCmd) SetFlags(f *flag.FlagSet) {}

func (c *selectCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "at least one coin id is required")
		return subcommands.ExitUsageError
	}

	subject := requireSubject()
	if subject == nil {
		return subcommands.ExitFailure
	}

	store := OpenStore()
	selectionStore, err := cryptotrack.NewSelectionStore(store, subject)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	// resolve the requested ids against the listing so the selection
	// carries display metadata, not bare ids.
	symbols, err := quoteSource().Top(ctx, 1)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to fetch coin list: %v\n", err)
		return subcommands.ExitFailure
	}
	byID := make(map[string]cryptotrack.Symbol, len(symbols))
	for _, s := range symbols {
		byID[s.ID] = s
	}

	for _, id := range f.Args() {
		id = strings.ToLower(id)
		sym, ok := byID[id]
		if !ok {
			// still allow toggling a coin off that dropped out of the listing.
			if !selectionStore.Selection().Has(id) {
				fmt.Fprintf(os.Stderr, "unknown coin %q, skipped\n", id)
				continue
			}
			sym = cryptotrack.Symbol{ID: id}
		}
		if selectionStore.Toggle(sym).Has(id) {
			fmt.Printf("selected %s\n", id)
		} else {
			fmt.Printf("deselected %s\n", id)
		}
	}
	return subcommands.ExitSuccess
}
