package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/expenses"
	"github.com/etnz/expenses/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type convertCmd struct {
	to     string
	from   string
	amount string
}

func (*convertCmd) Name() string     { return "convert" }
func (*convertCmd) Synopsis() string { return "convert amounts to a target currency" }
func (*convertCmd) Usage() string {
	return `xps convert -to <code> [-amount <amount> -from <code>]

  With -amount, converts that single amount from one currency to another.
  Without it, converts every record of the book to the target currency;
  a record whose rate lookup fails is reported inline and skipped, the
  remaining records are still converted.

  Rates come from a fresh exchange-rate service request each time.
`
}

func (c *convertCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.to, "to", "", "Target currency code (required)")
	f.StringVar(&c.from, "from", "EUR", "Source currency for a single -amount conversion")
	f.StringVar(&c.amount, "amount", "", "Single amount to convert; omit to convert the whole book")
}

func (c *convertCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.to == "" {
		fmt.Fprintln(os.Stderr, "Error: -to flag is required.")
		return subcommands.ExitUsageError
	}

	svc := expenses.NewRateService("")

	if c.amount != "" {
		amount, err := decimal.NewFromString(c.amount)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid amount %q: %v\n", c.amount, err)
			return subcommands.ExitUsageError
		}
		converted, err := svc.Convert(expenses.M(amount, c.from), c.to)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("%s %s = %s %s\n", amount.StringFixed(2), c.from, converted.StringFixed(), c.to)
		return subcommands.ExitSuccess
	}

	book, err := LoadBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	results := svc.ConvertBook(book, c.to)
	printMarkdown(renderer.Conversions(results, c.to))
	return subcommands.ExitSuccess
}
