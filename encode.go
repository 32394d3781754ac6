package expenses

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DecodeBook decodes a whole book from its JSON array form.
//
// Any malformed content is a hard error: a corrupt data file must never be
// silently read as an empty book.
func DecodeBook(r io.Reader) (*Book, error) {
	dec := json.NewDecoder(r)

	var records []Expense
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("could not decode expenses: %w", err)
	}
	// Trailing garbage after the array is corruption too.
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected content after expense records")
	}
	return NewBook(records...), nil
}

// EncodeBook persists the whole book to an io.Writer as an indented JSON
// array, one object per record, in insertion order. The field order within
// each record is canonical (category, amount, currency, date).
func EncodeBook(w io.Writer, book *Book) error {
	decimal.MarshalJSONWithoutQuotes = true

	if _, err := io.WriteString(w, "[\n"); err != nil {
		return err
	}
	for i, e := range book.Expenses() {
		data, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("failed to marshal expense record: %w", err)
		}
		sep := ",\n"
		if i == book.Len()-1 {
			sep = "\n"
		}
		if _, err := fmt.Fprintf(w, "  %s%s", data, sep); err != nil {
			return fmt.Errorf("failed to write expense record: %w", err)
		}
	}
	_, err := io.WriteString(w, "]\n")
	return err
}
