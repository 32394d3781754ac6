package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and rewrites the expense file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `xps fmt

  Validates and formats the expense file. This command reads all records and
  writes them back with canonical field order and indentation, leaving the
  record order untouched.
`
}

func (*fmtCmd) SetFlags(f *flag.FlagSet) {}

func (*fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := LoadBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load the expense book: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := SaveBook(book); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving formatted book: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Formatted %d records in %s\n", book.Len(), *bookFile)
	return subcommands.ExitSuccess
}
