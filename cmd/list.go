package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/expenses"
	"github.com/etnz/expenses/renderer"
	"github.com/google/subcommands"
)

type listCmd struct {
	head int
	tail int
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list all expenses in the book" }
func (*listCmd) Usage() string {
	return `xps list [-head <n>] [-tail <n>]

  Lists expense records in store order, with options for limiting the output.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.head, "head", 0, "Show only the first N records.")
	f.IntVar(&c.tail, "tail", 0, "Show only the last N records.")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.head > 0 && c.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	book, err := LoadBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	shown := book
	if c.head > 0 && book.Len() > c.head {
		shown = sliceBook(book, 0, c.head)
	}
	if c.tail > 0 && book.Len() > c.tail {
		shown = sliceBook(book, book.Len()-c.tail, book.Len())
	}

	printMarkdown(renderer.Expenses(shown))
	return subcommands.ExitSuccess
}

// sliceBook returns a new book holding the records in [from, to).
func sliceBook(book *expenses.Book, from, to int) *expenses.Book {
	out := expenses.NewBook()
	for i, e := range book.Expenses() {
		if i >= from && i < to {
			out.Append(e)
		}
	}
	return out
}
