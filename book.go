package expenses

import (
	"fmt"
	"iter"
)

// Book is the ordered sequence of all recorded expenses.
//
// Insertion order is display order: a Book never reorders its records, and it
// only ever grows by appending.
type Book struct {
	expenses []Expense
}

// NewBook creates an empty book.
func NewBook(expenses ...Expense) *Book {
	return &Book{expenses: expenses}
}

// Append validates the record and appends it at the end of the book.
func (b *Book) Append(e Expense) error {
	if err := e.Validate(); err != nil {
		return fmt.Errorf("invalid expense: %w", err)
	}
	b.expenses = append(b.expenses, e)
	return nil
}

// Len returns the number of records in the book.
func (b *Book) Len() int { return len(b.expenses) }

// Expenses returns an iterator over all records in insertion order.
func (b *Book) Expenses() iter.Seq2[int, Expense] {
	return func(yield func(int, Expense) bool) {
		for i, e := range b.expenses {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Equal reports whether two books hold the same records in the same order.
func (b *Book) Equal(o *Book) bool {
	if b.Len() != o.Len() {
		return false
	}
	for i, e := range b.expenses {
		if !e.Equal(o.expenses[i]) {
			return false
		}
	}
	return true
}
