package expenses

import (
	"encoding/json"
	"testing"
)

func TestExpense_JSON(t *testing.T) {
	e := NewExpense(MustParse("2025-08-26"), "Food", M(12.5, "EUR"))

	data, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Canonical field order keeps the data file diff-friendly.
	want := `{"category":"Food","amount":12.5,"currency":"EUR","date":"2025-08-26"}`
	if string(data) != want {
		t.Errorf("marshal = %s, want %s", data, want)
	}

	var got Expense
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(e) {
		t.Errorf("round trip = %+v, want %+v", got, e)
	}
}

func TestExpense_Validate(t *testing.T) {
	e := Expense{Amount: M(1, "EUR"), Date: MustParse("2025-08-26")}
	if err := e.Validate(); err == nil {
		t.Error("an empty category must not validate")
	}

	e = Expense{Category: "Food", Amount: M(1, "EUR")}
	if err := e.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Date.IsZero() {
		t.Error("validation must default a zero date to today")
	}
	if e.Date != Today() {
		t.Errorf("defaulted date = %v, want today", e.Date)
	}
}

func TestNewExpense_DefaultsDateToToday(t *testing.T) {
	e := NewExpense(Date{}, "Food", M(1, "EUR"))
	if e.Date != Today() {
		t.Errorf("date = %v, want today", e.Date)
	}
}
