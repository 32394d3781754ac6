package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/expenses/renderer"
	"github.com/google/subcommands"
)

type totalsCmd struct{}

func (*totalsCmd) Name() string     { return "totals" }
func (*totalsCmd) Synopsis() string { return "show summed expenses per category" }
func (*totalsCmd) Usage() string {
	return `xps totals

  Sums all recorded amounts per category and lists the totals in the order
  each category first appeared in the book.
`
}

func (*totalsCmd) SetFlags(f *flag.FlagSet) {}

func (*totalsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := LoadBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Totals(book.TotalsByCategory()))
	return subcommands.ExitSuccess
}
