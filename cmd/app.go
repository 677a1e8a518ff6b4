// Package cmd implements the CLI application to track and discuss
// cryptocurrency data.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/hnath/cryptotrack"
	"github.com/hnath/cryptotrack/coingecko"
)

// Register the subcommands.
// A main package calls Register() to declare the commands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&loginCmd{}, "session")
	c.Register(&logoutCmd{}, "session")
	c.Register(&whoamiCmd{}, "session")

	c.Register(&symbolsCmd{}, "market")
	c.Register(&selectCmd{}, "market")
	c.Register(&compareCmd{}, "market")
	c.Register(&convertCmd{}, "market")
	c.Register(&currenciesCmd{}, "market")
	c.Register(&historyCmd{}, "market")
	c.Register(&clearHistoryCmd{}, "market")

	c.Register(&prefsCmd{}, "preferences")
	c.Register(&portfolioCmd{}, "preferences")

	c.Register(&postCmd{}, "community")
	c.Register(&postsCmd{}, "community")
	c.Register(newLikeCmd(), "community")
	c.Register(newUpvoteCmd(), "community")
	c.Register(&commentCmd{}, "community")
	c.Register(&eventsCmd{}, "community")
	c.Register(&eventAddCmd{}, "community")

	c.Register(&newsCmd{}, "reading")
	c.Register(&topicCmd{}, "reading")
	c.Register(&assistCmd{}, "reading")
}

// as a CLI application, it has a very short-lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data-dir", ".cryptotrack", "Path to the data directory folder")
var adminEmail = flag.String("admin-email", os.Getenv("CCT_ADMIN_EMAIL"), "Email allowed to add calendar events")

// OpenStore is the central function to open the document store.
func OpenStore() *cryptotrack.Store {
	return cryptotrack.NewStore(*dataDir)
}

// LoadSession loads the persisted session from the data directory.
func LoadSession() (*cryptotrack.Session, error) {
	return cryptotrack.LoadSession(*dataDir)
}

// requireSubject loads the session and returns the signed-in subject, or
// nil after printing the authentication gate message.
func requireSubject() *cryptotrack.Subject {
	session, err := LoadSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return nil
	}
	if !session.Authenticated() {
		fmt.Fprintln(os.Stderr, "Authentication required. Please run 'cct login' first.")
		return nil
	}
	return session.Subject
}

// quoteSource returns the market data provider for the live service.
func quoteSource() *coingecko.Client {
	return coingecko.NewClient()
}

// printMarkdown renders markdown to the terminal.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "dark")
	if err != nil {
		// fall back to the raw markdown, still perfectly readable.
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
