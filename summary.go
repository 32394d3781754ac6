package expenses

// CategoryTotal is the summed amount for one expense category.
type CategoryTotal struct {
	Category string
	Total    Money
	// Mixed is true when the records behind this total carried more than one
	// currency. The sum is then a plain numeric sum of incompatible units; we
	// keep the historical behavior but let renderers flag it.
	Mixed bool
}

// TotalsByCategory groups the book's records by exact category label and sums
// their amounts. Categories appear in first-seen order. An empty book yields
// an empty slice. Zero amounts are summed like any other, a category whose
// total is zero is still reported.
func (b *Book) TotalsByCategory() []CategoryTotal {
	totals := make([]CategoryTotal, 0)
	index := make(map[string]int)

	for _, e := range b.Expenses() {
		i, ok := index[e.Category]
		if !ok {
			index[e.Category] = len(totals)
			totals = append(totals, CategoryTotal{Category: e.Category, Total: e.Amount})
			continue
		}
		if totals[i].Total.Currency() != e.Amount.Currency() {
			totals[i].Mixed = true
		}
		totals[i].Total = totals[i].Total.Add(e.Amount)
	}
	return totals
}
