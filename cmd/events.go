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

type eventsCmd struct {
	day dateFlag
}

func (*eventsCmd) Name() string     { return "events" }
func (*eventsCmd) Synopsis() string { return "show calendar events for a day" }
func (*eventsCmd) Usage() string {
	return `cct events [-d YYYY-MM-DD]

  Shows the calendar events scheduled on the given day, today by default.
`
}

func (c *eventsCmd) SetFlags(f *flag.FlagSet) {
	f.Var(&c.day, "d", "day to show, YYYY-MM-DD")
}

func (c *eventsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day := c.day.value
	if day.IsZero() {
		day = cryptotrack.Today()
	}

	calendar := cryptotrack.NewCalendar(OpenStore(), *adminEmail)
	events, err := calendar.On(day)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Events(day, events))
	return subcommands.ExitSuccess
}

type eventAddCmd struct {
	title       string
	description string
	link        string
	day         dateFlag
}

func (*eventAddCmd) Name() string     { return "event-add" }
func (*eventAddCmd) Synopsis() string { return "add a calendar event (admin only)" }
func (*eventAddCmd) Usage() string {
	return `cct event-add -title <title> [-desc <description>] [-link <url>] [-d YYYY-MM-DD]

  Adds a calendar event. Only the configured admin email may add events.
`
}

func (c *eventAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.title, "title", "", "event title")
	f.StringVar(&c.description, "desc", "", "event description")
	f.StringVar(&c.link, "link", "", "event link")
	f.Var(&c.day, "d", "event day, YYYY-MM-DD")
}

func (c *eventAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	subject := requireSubject()
	if subject == nil {
		return subcommands.ExitFailure
	}

	day := c.day.value
	if day.IsZero() {
		day = cryptotrack.Today()
	}

	calendar := cryptotrack.NewCalendar(OpenStore(), *adminEmail)
	event, err := calendar.Add(cryptotrack.Event{
		Title:       c.title,
		Description: c.description,
		Link:        c.link,
		Date:        day,
	}, subject)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Event %q added on %s.\n", event.Title, event.Date)
	return subcommands.ExitSuccess
}

// dateFlag implements flag.Value for YYYY-MM-DD dates.
type dateFlag struct {
	value cryptotrack.Date
}

func (d *dateFlag) String() string {
	if d.value.IsZero() {
		return ""
	}
	return d.value.String()
}

func (d *dateFlag) Set(s string) error {
	day, err := cryptotrack.ParseDate(s)
	if err != nil {
		return err
	}
	d.value = day
	return nil
}
