// Package renderer turns books and summaries into user-facing output:
// markdown for the terminal, a PDF report, and a pie chart image.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/expenses"
	md "github.com/nao1215/markdown"
)

// Expenses renders the full book as a markdown table, in store order.
func Expenses(book *expenses.Book) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Expenses")
	if book.Len() == 0 {
		doc.PlainText("No expenses recorded yet.")
		return doc.String()
	}

	rows := make([][]string, 0, book.Len())
	for _, e := range book.Expenses() {
		rows = append(rows, []string{
			e.Date.String(),
			e.Category,
			e.Amount.StringFixed(),
			e.Amount.Currency(),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Date", "Category", "Amount", "Currency"},
		Rows:   rows,
	})
	doc.PlainText(fmt.Sprintf("%d records.", book.Len()))

	return doc.String()
}

// Totals renders per-category totals as a markdown table, in first-seen
// category order. Totals summed over mixed currencies are marked as such.
func Totals(totals []expenses.CategoryTotal) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Totals by Category")
	if len(totals) == 0 {
		doc.PlainText("No expenses recorded yet.")
		return doc.String()
	}

	rows := make([][]string, 0, len(totals))
	for _, t := range totals {
		cur := t.Total.Currency()
		if t.Mixed {
			cur += " (mixed!)"
		}
		rows = append(rows, []string{t.Category, t.Total.StringFixed(), cur})
	}
	doc.Table(md.TableSet{
		Header: []string{"Category", "Total", "Currency"},
		Rows:   rows,
	})

	return doc.String()
}

// Conversions renders the outcome of a bulk currency conversion. Records
// whose conversion failed are reported in place, they never hide the ones
// that succeeded.
func Conversions(results []expenses.Conversion, to string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Expenses in %s", to))
	if len(results) == 0 {
		doc.PlainText("No expenses recorded yet.")
		return doc.String()
	}

	rows := make([][]string, 0, len(results))
	for _, r := range results {
		converted := fmt.Sprintf("%s %s", r.Result.StringFixed(), to)
		if r.Err != nil {
			converted = fmt.Sprintf("error: %v", r.Err)
		}
		rows = append(rows, []string{
			r.Expense.Date.String(),
			r.Expense.Category,
			fmt.Sprintf("%s %s", r.Expense.Amount.StringFixed(), r.Expense.Amount.Currency()),
			converted,
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Date", "Category", "Amount", "Converted"},
		Rows:   rows,
	})

	return doc.String()
}
