package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/hnath/cryptotrack"
	"github.com/hnath/cryptotrack/renderer"
)

type prefsCmd struct {
	favorites string
	portfolio string
	goal      string
	risk      string
}

func (*prefsCmd) Name() string     { return "prefs" }
func (*prefsCmd) Synopsis() string { return "show or update your preferences" }
func (*prefsCmd) Usage() string {
	return `cct prefs [-favorites <coins>] [-portfolio <string>] [-goal <goal>] [-risk <Low|Medium|High>]

  Without flags, shows the stored preferences. With flags, updates the
  given fields and leaves the others untouched. The portfolio string is a
  comma-separated list of NAME:WEIGHT entries, e.g. BTC:40,ETH:60.
`
}

func (c *prefsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.favorites, "favorites", "", "favorite coins, free text")
	f.StringVar(&c.portfolio, "portfolio", "", "portfolio string, e.g. BTC:40,ETH:60")
	f.StringVar(&c.goal, "goal", "", "investment goal, free text")
	f.StringVar(&c.risk, "risk", "", "risk tolerance: Low, Medium or High")
}

func (c *prefsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	subject := requireSubject()
	if subject == nil {
		return subcommands.ExitFailure
	}
	store := OpenStore()

	profile, err := store.Profile(subject.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load preferences: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.favorites == "" && c.portfolio == "" && c.goal == "" && c.risk == "" {
		fmt.Printf("Favorite Coins:  %s\n", profile.FavoriteCoins)
		fmt.Printf("Portfolio:       %s\n", profile.Portfolio)
		fmt.Printf("Investment Goal: %s\n", profile.InvestmentGoal)
		fmt.Printf("Risk Tolerance:  %s\n", profile.RiskTolerance)
		return subcommands.ExitSuccess
	}

	if c.favorites != "" {
		profile.FavoriteCoins = c.favorites
	}
	if c.portfolio != "" {
		// validation failure is reported inline; the stored value is kept.
		if _, err := cryptotrack.ParsePortfolio(c.portfolio); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		profile.Portfolio = c.portfolio
	}
	if c.goal != "" {
		profile.InvestmentGoal = c.goal
	}
	if c.risk != "" {
		risk, err := cryptotrack.ParseRiskTolerance(c.risk)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		profile.RiskTolerance = string(risk)
	}

	if err := store.SaveProfile(subject.ID, profile); err != nil {
		if errors.Is(err, cryptotrack.ErrStaleRevision) {
			fmt.Fprintln(os.Stderr, "Preferences changed concurrently, please retry.")
		} else {
			fmt.Fprintf(os.Stderr, "An error occurred while saving preferences: %v\n", err)
		}
		return subcommands.ExitFailure
	}
	fmt.Println("Preferences saved successfully!")
	return subcommands.ExitSuccess
}

type portfolioCmd struct{}

func (*portfolioCmd) Name() string     { return "portfolio" }
func (*portfolioCmd) Synopsis() string { return "show your portfolio breakdown" }
func (*portfolioCmd) Usage() string {
	return `cct portfolio

  Parses the stored portfolio string and shows each position's share of
  the total weight.
`
}
func (*portfolioCmd) SetFlags(f *flag.FlagSet) {}

func (c *portfolioCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	subject := requireSubject()
	if subject == nil {
		return subcommands.ExitFailure
	}

	profile, err := OpenStore().Profile(subject.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load preferences: %v\n", err)
		return subcommands.ExitFailure
	}

	entries, err := cryptotrack.ParsePortfolio(profile.Portfolio)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Breakdown(entries))
	return subcommands.ExitSuccess
}
