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

type newsCmd struct {
	count int
}

func (*newsCmd) Name() string     { return "news" }
func (*newsCmd) Synopsis() string { return "show the latest crypto news" }
func (*newsCmd) Usage() string {
	return `cct news [-n <count>]
`
}

func (c *newsCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.count, "n", 5, "number of articles to show")
}

func (c *newsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	items, err := cryptotrack.LatestNews(ctx, cryptotrack.DefaultNewsURL, c.count)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to fetch news: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.News(items))
	return subcommands.ExitSuccess
}
