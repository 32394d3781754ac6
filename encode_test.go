package expenses

import (
	"bytes"
	"strings"
	"testing"
)

func TestEncodeBook_Canonical(t *testing.T) {
	book := NewBook(
		NewExpense(MustParse("2025-08-01"), "Food", M(12.5, "EUR")),
		NewExpense(MustParse("2025-08-02"), "Transport", M(3, "USD")),
	)

	var buf bytes.Buffer
	if err := EncodeBook(&buf, book); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `[
  {"category":"Food","amount":12.5,"currency":"EUR","date":"2025-08-01"},
  {"category":"Transport","amount":3,"currency":"USD","date":"2025-08-02"}
]
`
	if got := buf.String(); got != want {
		t.Errorf("EncodeBook() =\n%s\nwant\n%s", got, want)
	}
}

func TestBook_EncodeDecodeRoundTrip(t *testing.T) {
	book := NewBook(
		NewExpense(MustParse("2025-08-01"), "Food", M(12.5, "EUR")),
		NewExpense(MustParse("2025-08-02"), "Food", M(0, "EUR")), // zero amounts survive
		NewExpense(MustParse("2025-08-03"), "Transport", M(-3.25, "USD")),
	)

	var buf bytes.Buffer
	if err := EncodeBook(&buf, book); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := DecodeBook(&buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(book) {
		t.Errorf("decoded book differs from the encoded one")
	}
}

func TestDecodeBook_Malformed(t *testing.T) {
	testCases := []struct {
		name string
		in   string
	}{
		{name: "not json", in: "this is not json"},
		{name: "truncated array", in: `[{"category":"Food","amount":1,`},
		{name: "wrong shape", in: `{"category":"Food"}`},
		{name: "bad date", in: `[{"category":"Food","amount":1,"currency":"EUR","date":"not-a-date"}]`},
		{name: "trailing garbage", in: "[]\n[]"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeBook(strings.NewReader(tc.in)); err == nil {
				t.Errorf("DecodeBook(%q) succeeded, want error", tc.in)
			}
		})
	}
}

func TestDecodeBook_Empty(t *testing.T) {
	book, err := DecodeBook(strings.NewReader("[]"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if book.Len() != 0 {
		t.Errorf("decoded %d records from an empty array", book.Len())
	}
}
