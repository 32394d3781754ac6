package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/expenses"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type addCmd struct {
	category string
	amount   string
	currency string
	date     string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a new expense in the book" }
func (*addCmd) Usage() string {
	return `xps add -category <category> -amount <amount> [-currency <code>] [-d <date>]

  Appends one expense record to the book and saves it:
  - category: free-text label used to group expenses (e.g. "Food").
  - amount: decimal amount spent (e.g. "12.50").
  - currency: free-text currency code, defaults to EUR.
  - d: date of the expense (YYYY-MM-DD), defaults to today.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "category", "", "Expense category (required)")
	f.StringVar(&c.amount, "amount", "", "Amount spent, a decimal number (required)")
	f.StringVar(&c.currency, "currency", "EUR", "Currency code of the amount")
	f.StringVar(&c.date, "d", "", "Date of the expense, defaults to today")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.category == "" || c.amount == "" {
		fmt.Fprintln(os.Stderr, "Error: -category and -amount flags are required.")
		return subcommands.ExitUsageError
	}

	// Reject malformed numbers at entry rather than storing garbage.
	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid amount %q: %v\n", c.amount, err)
		return subcommands.ExitUsageError
	}

	day := expenses.Today()
	if c.date != "" {
		day, err = expenses.ParseDate(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	book, err := LoadBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	e := expenses.NewExpense(day, c.category, expenses.M(amount, c.currency))
	if err := book.Append(e); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := SaveBook(book); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded %s %s for %s on %s in %s\n", e.Amount.StringFixed(), e.Amount.Currency(), e.Category, e.Date, *bookFile)
	return subcommands.ExitSuccess
}
