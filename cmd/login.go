package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/hnath/cryptotrack"
)

type loginCmd struct {
	name     string
	email    string
	provider string
}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "sign in and persist the session" }
func (*loginCmd) Usage() string {
	return `cct login -name <name> -email <email> [-provider <provider>]

  Signs in as the given subject. Selections, preferences and conversion
  history are persisted under this identity until 'cct logout'.
`
}

func (c *loginCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "display name of the subject")
	f.StringVar(&c.email, "email", "", "email of the subject, used as its stable identifier")
	f.StringVar(&c.provider, "provider", "google.com", "identity provider of the subject")
}

func (c *loginCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.email == "" {
		fmt.Fprintln(os.Stderr, "-email is required")
		return subcommands.ExitUsageError
	}
	if c.name == "" {
		c.name = c.email
	}

	session := &cryptotrack.Session{Subject: &cryptotrack.Subject{
		ID:       c.email,
		Name:     c.name,
		Email:    c.email,
		Provider: c.provider,
	}}
	if err := cryptotrack.SaveSession(*dataDir, session); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving session: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Signed in as %s <%s>\n", c.name, c.email)
	return subcommands.ExitSuccess
}

type logoutCmd struct{}

func (*logoutCmd) Name() string     { return "logout" }
func (*logoutCmd) Synopsis() string { return "sign out and discard the session" }
func (*logoutCmd) Usage() string {
	return `cct logout

  Signs out. In-memory history is discarded and no further persistence
  calls are issued on the subject's behalf.
`
}
func (*logoutCmd) SetFlags(f *flag.FlagSet) {}

func (c *logoutCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := cryptotrack.ClearSession(*dataDir); err != nil {
		fmt.Fprintf(os.Stderr, "Error clearing session: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println("Signed out")
	return subcommands.ExitSuccess
}

type whoamiCmd struct{}

func (*whoamiCmd) Name() string     { return "whoami" }
func (*whoamiCmd) Synopsis() string { return "show the current subject" }
func (*whoamiCmd) Usage() string    { return "cct whoami\n" }
func (*whoamiCmd) SetFlags(f *flag.FlagSet) {}

func (c *whoamiCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session, err := LoadSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if !session.Authenticated() {
		fmt.Println("anonymous")
		return subcommands.ExitSuccess
	}
	s := session.Subject
	fmt.Printf("%s <%s> via %s\n", s.Name, s.Email, s.Provider)
	return subcommands.ExitSuccess
}
