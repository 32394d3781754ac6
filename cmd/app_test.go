package cmd

import (
	"context"
	"flag"
	"path/filepath"
	"testing"

	"github.com/google/subcommands"
)

// useTempBook points the global book file at a fresh temp location.
func useTempBook(t *testing.T) string {
	t.Helper()
	old := *bookFile
	*bookFile = filepath.Join(t.TempDir(), "expenses.json")
	t.Cleanup(func() { *bookFile = old })
	return *bookFile
}

func TestAddCmd(t *testing.T) {
	useTempBook(t)

	add := &addCmd{category: "Food", amount: "12.50", currency: "EUR"}
	if got := add.Execute(context.Background(), flag.NewFlagSet("add", flag.ContinueOnError)); got != subcommands.ExitSuccess {
		t.Fatalf("add returned %v, want success", got)
	}

	book, err := LoadBook()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if book.Len() != 1 {
		t.Fatalf("book has %d records, want 1", book.Len())
	}
	for _, e := range book.Expenses() {
		if e.Category != "Food" || e.Amount.StringFixed() != "12.50" || e.Amount.Currency() != "EUR" {
			t.Errorf("recorded %+v", e)
		}
		if e.Date.IsZero() {
			t.Error("record date was not defaulted to today")
		}
	}
}

func TestAddCmd_RejectsBadInput(t *testing.T) {
	useTempBook(t)

	testCases := []struct {
		name string
		cmd  *addCmd
	}{
		{name: "missing category", cmd: &addCmd{amount: "1"}},
		{name: "missing amount", cmd: &addCmd{category: "Food"}},
		{name: "malformed amount", cmd: &addCmd{category: "Food", amount: "ten"}},
		{name: "malformed date", cmd: &addCmd{category: "Food", amount: "1", date: "someday"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.cmd.Execute(context.Background(), flag.NewFlagSet("add", flag.ContinueOnError))
			if got != subcommands.ExitUsageError {
				t.Errorf("add returned %v, want usage error", got)
			}
			book, err := LoadBook()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if book.Len() != 0 {
				t.Errorf("a rejected input was recorded anyway")
			}
		})
	}
}

func TestListCmd_HeadTailConflict(t *testing.T) {
	useTempBook(t)

	list := &listCmd{head: 1, tail: 1}
	if got := list.Execute(context.Background(), flag.NewFlagSet("list", flag.ContinueOnError)); got != subcommands.ExitUsageError {
		t.Errorf("list returned %v, want usage error", got)
	}
}
