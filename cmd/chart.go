package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/expenses/renderer"
	"github.com/google/subcommands"
)

type chartCmd struct {
	output string
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "draw a pie chart of spending by category" }
func (*chartCmd) Usage() string {
	return `xps chart [-o <file>]

  Renders per-category totals as a pie chart PNG image.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "expenses.png", "Output file for the chart image")
}

func (c *chartCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := LoadBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	out, err := os.Create(c.output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating chart file %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	defer out.Close()

	if err := renderer.PieChart(out, book.TotalsByCategory()); err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering chart: %v\n", err)
		// don't leave a half-written image behind
		os.Remove(c.output)
		return subcommands.ExitFailure
	}

	fmt.Printf("Wrote chart to %s\n", c.output)
	return subcommands.ExitSuccess
}
