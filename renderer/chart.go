package renderer

import (
	"fmt"
	"io"

	"github.com/etnz/expenses"
	"github.com/wcharczuk/go-chart/v2"
)

// chartSize is the fixed edge of the rendered (square) chart image, in pixels.
const chartSize = 512

// PieChart renders per-category totals as a pie chart PNG to w.
//
// A pie slice cannot represent a zero or negative total; such categories are
// left out, and a book with nothing positive to draw is an error rather than
// an empty image.
func PieChart(w io.Writer, totals []expenses.CategoryTotal) error {
	values := make([]chart.Value, 0, len(totals))
	for _, t := range totals {
		if !t.Total.IsPositive() {
			continue
		}
		value, _ := t.Total.Amount().Float64()
		values = append(values, chart.Value{Label: t.Category, Value: value})
	}
	if len(values) == 0 {
		return fmt.Errorf("no positive category total to chart")
	}

	pie := chart.PieChart{
		Title:  "Expenses by Category",
		Width:  chartSize,
		Height: chartSize,
		Values: values,
	}
	return pie.Render(chart.PNG, w)
}
