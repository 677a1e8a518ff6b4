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

type postCmd struct {
	title string
}

func (*postCmd) Name() string     { return "post" }
func (*postCmd) Synopsis() string { return "publish a post to the community feed" }
func (*postCmd) Usage() string {
	return `cct post -title <title> <content>

  Publishes a new post. Title and content are both required.
`
}

func (c *postCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.title, "title", "", "post title")
}

func (c *postCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	subject := requireSubject()
	if subject == nil {
		return subcommands.ExitFailure
	}
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "post requires exactly one content argument")
		return subcommands.ExitUsageError
	}

	feed := cryptotrack.NewFeed(OpenStore())
	post, err := feed.Add(c.title, f.Arg(0), subject)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Posted %q as %s.\n", post.Title, post.ID)
	return subcommands.ExitSuccess
}

type postsCmd struct{}

func (*postsCmd) Name() string     { return "posts" }
func (*postsCmd) Synopsis() string { return "read the community feed, newest first" }
func (*postsCmd) Usage() string {
	return `cct posts
`
}
func (*postsCmd) SetFlags(f *flag.FlagSet) {}

func (c *postsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	feed := cryptotrack.NewFeed(OpenStore())
	posts, err := feed.Posts()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Posts(posts))
	return subcommands.ExitSuccess
}

// reactCmd is the shared implementation behind like and upvote.
type reactCmd struct {
	name, verb string
	toggle     func(feed *cryptotrack.Feed, postID string, subject *cryptotrack.Subject) (*cryptotrack.Post, error)
	count      func(p *cryptotrack.Post) int
}

func (c *reactCmd) Name() string     { return c.name }
func (c *reactCmd) Synopsis() string { return "toggle a " + c.verb + " on a post" }
func (c *reactCmd) Usage() string {
	return "cct " + c.name + " <post-id>\n\n  Adds your " + c.verb + " to the post, or removes it if already present.\n"
}
func (c *reactCmd) SetFlags(f *flag.FlagSet) {}

func (c *reactCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	subject := requireSubject()
	if subject == nil {
		return subcommands.ExitFailure
	}
	if f.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "%s requires exactly one post id\n", c.name)
		return subcommands.ExitUsageError
	}

	feed := cryptotrack.NewFeed(OpenStore())
	post, err := c.toggle(feed, f.Arg(0), subject)
	if err != nil {
		if errors.Is(err, cryptotrack.ErrPostNotFound) {
			fmt.Fprintf(os.Stderr, "No post with id %q.\n", f.Arg(0))
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		return subcommands.ExitFailure
	}
	fmt.Printf("%q now has %d %ss.\n", post.Title, c.count(post), c.verb)
	return subcommands.ExitSuccess
}

func newLikeCmd() *reactCmd {
	return &reactCmd{
		name: "like",
		verb: "like",
		toggle: func(feed *cryptotrack.Feed, postID string, subject *cryptotrack.Subject) (*cryptotrack.Post, error) {
			return feed.ToggleLike(postID, subject)
		},
		count: func(p *cryptotrack.Post) int { return p.Likes },
	}
}

func newUpvoteCmd() *reactCmd {
	return &reactCmd{
		name: "upvote",
		verb: "upvote",
		toggle: func(feed *cryptotrack.Feed, postID string, subject *cryptotrack.Subject) (*cryptotrack.Post, error) {
			return feed.ToggleUpvote(postID, subject)
		},
		count: func(p *cryptotrack.Post) int { return p.Upvotes },
	}
}

type commentCmd struct{}

func (*commentCmd) Name() string     { return "comment" }
func (*commentCmd) Synopsis() string { return "comment on a post" }
func (*commentCmd) Usage() string {
	return `cct comment <post-id> <text>
`
}
func (*commentCmd) SetFlags(f *flag.FlagSet) {}

func (c *commentCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	subject := requireSubject()
	if subject == nil {
		return subcommands.ExitFailure
	}
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "comment requires a post id and a text")
		return subcommands.ExitUsageError
	}

	feed := cryptotrack.NewFeed(OpenStore())
	post, err := feed.AddComment(f.Arg(0), f.Arg(1), subject)
	if err != nil {
		if errors.Is(err, cryptotrack.ErrPostNotFound) {
			fmt.Fprintf(os.Stderr, "No post with id %q.\n", f.Arg(0))
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		return subcommands.ExitFailure
	}
	fmt.Printf("Comment added, %q now has %d comments.\n", post.Title, len(post.Comments))
	return subcommands.ExitSuccess
}
