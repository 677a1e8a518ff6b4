// Package assist implements the interactive AI advisor built on Gemini.
package assist

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/hnath/cryptotrack"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// Advisor holds an interactive chat session with the crypto advisor.
type Advisor struct {
	w      io.Writer
	r      *bufio.Reader
	config *genai.GenerateContentConfig
	chat   *genai.Chat
}

// New creates an Advisor primed with the user's preferences and recent
// conversions so the model can tailor its answers.
func New(w io.Writer, r io.Reader, profile *cryptotrack.Profile, history []cryptotrack.ConversionResult) *Advisor {
	return &Advisor{
		w: w,
		r: bufio.NewReader(r),
		config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemInstruction(profile, history)}}},
		},
	}
}

func systemInstruction(profile *cryptotrack.Profile, history []cryptotrack.ConversionResult) string {
	var sb strings.Builder
	sb.WriteString(`You are a pragmatic cryptocurrency advisor inside a terminal
application. Answer briefly, in plain markdown, and never present your
answers as financial advice guarantees. Use search for anything recent.

What you know about the user:
`)
	if profile != nil {
		fmt.Fprintf(&sb, "- favorite coins: %s\n", profile.FavoriteCoins)
		fmt.Fprintf(&sb, "- portfolio: %s\n", profile.Portfolio)
		fmt.Fprintf(&sb, "- investment goal: %s\n", profile.InvestmentGoal)
		fmt.Fprintf(&sb, "- risk tolerance: %s\n", profile.RiskTolerance)
	}
	if len(history) > 0 {
		sb.WriteString("- recent conversions:\n")
		for i, h := range history {
			if i == 5 {
				break
			}
			fmt.Fprintf(&sb, "    %s %s to %s\n", h.Amount, h.From, h.To)
		}
	}
	return sb.String()
}

// Start creates the underlying Gemini chat session.
func (a *Advisor) Start(ctx context.Context, client *genai.Client) error {
	chat, err := client.Chats.Create(ctx, model, a.config, nil)
	if err != nil {
		return err
	}
	a.chat = chat
	return nil
}

const prompt = "advisor> "

// Run starts the interactive REPL session for the advisor.
func (a *Advisor) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if a.chat == nil {
		if err := a.Start(ctx, client); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.w, "Welcome to the crypto advisor. Type 'bye' to exit.")

	for {
		fmt.Fprint(a.w, prompt)
		var input string

		// Flush prompts from the list and then ask the user.
		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
		}

		if strings.TrimSpace(input) == "bye" {
			return nil
		}

		answer, err := a.ask(ctx, input)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.w, answer)
	}
}

func (a *Advisor) ask(ctx context.Context, question string) (string, error) {
	resp, err := a.chat.Send(ctx, &genai.Part{Text: question})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from the advisor")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
