package renderer

import (
	"fmt"
	"io"

	"github.com/etnz/expenses"
	"github.com/jung-kurt/gofpdf"
)

// PDF writes the expense report as a PDF document to w: a title followed by
// one line per record, in store order.
func PDF(w io.Writer, book *expenses.Book) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, "Monthly Expenses Report", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "", 12)
	for _, e := range book.Expenses() {
		line := fmt.Sprintf("[%s] %s: $%s %s", e.Date, e.Category, e.Amount.StringFixed(), e.Amount.Currency())
		pdf.CellFormat(0, 8, line, "", 1, "L", false, 0, "")
	}

	return pdf.Output(w)
}
