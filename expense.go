package expenses

import (
	"encoding/json"
	"errors"

	"github.com/shopspring/decimal"
)

// Expense is one logged expense: a category label, an amount in a currency,
// and the date it was recorded. Expenses are immutable once appended to a
// Book; there is no edit or delete operation.
type Expense struct {
	Category string
	Amount   Money
	Date     Date
}

// NewExpense creates a new expense record dated day (today if zero).
func NewExpense(day Date, category string, amount Money) Expense {
	if day.IsZero() {
		day = Today()
	}
	return Expense{Category: category, Amount: amount, Date: day}
}

// Validate checks the record for correctness before it enters a book.
// It fills a zero date with today.
func (e *Expense) Validate() error {
	if e.Category == "" {
		return errors.New("expense category is missing")
	}
	if e.Date.IsZero() {
		e.Date = Today()
	}
	return nil
}

// Equal reports field-for-field equality.
func (e Expense) Equal(o Expense) bool {
	return e.Category == o.Category && e.Amount.Equal(o.Amount) && e.Date == o.Date
}

// MarshalJSON implements the json.Marshaler interface for Expense, with a
// canonical field order so the data file is diff-friendly.
func (e Expense) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("category", e.Category)
	w.Append("amount", e.Amount.Amount())
	w.Optional("currency", e.Amount.Currency())
	w.Append("date", e.Date)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Expense.
// Amount and currency are separate fields on the wire.
func (e *Expense) UnmarshalJSON(data []byte) error {
	var temp struct {
		Category string          `json:"category"`
		Amount   decimal.Decimal `json:"amount"`
		Currency string          `json:"currency"`
		Date     Date            `json:"date"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	e.Category = temp.Category
	e.Amount = M(temp.Amount, temp.Currency)
	e.Date = temp.Date
	return nil
}
