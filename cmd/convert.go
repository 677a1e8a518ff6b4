package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/hnath/cryptotrack"
	"github.com/hnath/cryptotrack/exchangerate"
	"github.com/hnath/cryptotrack/renderer"
)

type convertCmd struct {
	from string
	to   string
}

func (*convertCmd) Name() string     { return "convert" }
func (*convertCmd) Synopsis() string { return "convert a crypto amount into a fiat currency" }
func (*convertCmd) Usage() string {
	return `cct convert [-from <coin-id>] [-to <currency>] <amount>

  Derives amount * rate for the pair. A signed-in subject's conversions
  are recorded in the history log; anonymous conversions leave no trace.
`
}

func (c *convertCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "bitcoin", "source coin id")
	f.StringVar(&c.to, "to", "usd", "target currency code")
}

func (c *convertCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "exactly one amount is expected")
		return subcommands.ExitUsageError
	}

	deriver := cryptotrack.NewDeriver(quoteSource())
	result, err := deriver.DeriveConversion(ctx, strings.ToLower(c.from), strings.ToLower(c.to), f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching conversion rate: %v\n", err)
		return subcommands.ExitFailure
	}
	if result == nil {
		fmt.Println("Enter a numeric amount to convert.")
		return subcommands.ExitSuccess
	}

	// record for a signed-in subject only; a failure is logged, never fatal.
	session, err := LoadSession()
	if err == nil && session.Authenticated() {
		cryptotrack.NewRecorder(OpenStore()).Record(result, session.Subject)
	}

	printMarkdown(renderer.Conversion(result))
	return subcommands.ExitSuccess
}

type currenciesCmd struct{}

func (*currenciesCmd) Name() string     { return "currencies" }
func (*currenciesCmd) Synopsis() string { return "list the fiat currencies available for conversion" }
func (*currenciesCmd) Usage() string    { return "cct currencies\n" }
func (*currenciesCmd) SetFlags(f *flag.FlagSet) {}

func (c *currenciesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	codes, err := exchangerate.NewClient().Codes(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to fetch currencies: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(strings.Join(codes, " "))
	return subcommands.ExitSuccess
}
