package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/hnath/cryptotrack"
	"github.com/hnath/cryptotrack/assist"
	"google.golang.org/genai"
)

type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the AI advisor" }
func (*assistCmd) Usage() string {
	return `cct assist [<initial prompt>...]

  Starts an interactive chat with the crypto advisor. The advisor knows
  your stored preferences and recent conversions. Requires GEMINI_API_KEY.
`
}
func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	subject := requireSubject()
	if subject == nil {
		return subcommands.ExitFailure
	}

	initialPrompt := strings.Join(f.Args(), " ")

	store := OpenStore()
	profile, err := store.Profile(subject.ID)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading preferences:", err)
		return subcommands.ExitFailure
	}
	history, err := cryptotrack.NewRecorder(store).List(subject)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading history:", err)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	a := assist.New(os.Stdout, os.Stdin, profile, history)
	if err := a.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Advisor failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
