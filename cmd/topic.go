package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/fxdash/docs"
	"github.com/google/subcommands"
)

type topicCmd struct {
	list bool
}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "read the fxd guides (pairs, exposure, dashboard...)" }
func (*topicCmd) Usage() string {
	var b strings.Builder
	b.WriteString(`fxd topic [-list] [<topic>...]

  Prints the fxd guides. Without a topic, prints the introduction; '*'
  prints every guide.

Topics:
`)
	topics, _ := docs.GetAllTopics()
	for _, t := range topics {
		fmt.Fprintf(&b, "  %-10s %s\n", t, docs.Title(t))
	}
	b.WriteString(`
Usage Examples:
$ fxd topic pairs
$ fxd topic exposure dashboard
`)
	return b.String()
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.list, "list", false, "List the topics instead of printing them")
}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	doc, err := c.render(f.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading topic: %v\n", err)
		return subcommands.ExitUsageError
	}
	printMarkdown(doc)
	return subcommands.ExitSuccess
}

// render returns the markdown of topics, or the topic index with -list.
func (c *topicCmd) render(topics []string) (string, error) {
	all, err := docs.GetAllTopics()
	if err != nil {
		return "", err
	}
	if c.list {
		var b strings.Builder
		b.WriteString("| Topic | Title |\n|---|---|\n")
		for _, t := range all {
			fmt.Fprintf(&b, "| `%s` | %s |\n", t, docs.Title(t))
		}
		return b.String(), nil
	}
	if len(topics) == 0 {
		topics = []string{"readme"}
	}
	doc, err := docs.GetTopics(topics...)
	if err != nil {
		return "", fmt.Errorf("%w (topics: %s)", err, strings.Join(all, ", "))
	}
	return doc, nil
}
