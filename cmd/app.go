// Package cmd implements the CLI application to manage an expense book.
package cmd

import (
	"flag"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/expenses"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "book")
	c.Register(&listCmd{}, "book")
	c.Register(&fmtCmd{}, "book")

	c.Register(&totalsCmd{}, "reports")
	c.Register(&reportCmd{}, "reports")
	c.Register(&chartCmd{}, "reports")

	c.Register(&convertCmd{}, "currency")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var bookFile = flag.String("book-file", "expenses.json", "Path to the expense book file (JSON format)")

// LoadBook is the central function to open the expense book. A missing file
// is an empty book; a corrupt one is an error for the command to surface.
func LoadBook() (*expenses.Book, error) {
	return expenses.LoadBook(*bookFile)
}

// SaveBook rewrites the expense book file in full.
func SaveBook(book *expenses.Book) error {
	return expenses.SaveBook(*bookFile, book)
}

// printMarkdown renders markdown to the terminal. If fancy rendering is not
// possible the raw markdown is still readable, so print it as a fallback.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
