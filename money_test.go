package expenses

import "testing"

func TestMoney_Round(t *testing.T) {
	testCases := []struct {
		name string
		in   Money
		want string
	}{
		{name: "half goes up", in: M(9.235, "EUR"), want: "9.24"},
		{name: "below half goes down", in: M(9.2349, "EUR"), want: "9.23"},
		{name: "already round", in: M(9.2, "EUR"), want: "9.20"},
		{name: "negative half away from zero", in: M(-9.235, "EUR"), want: "-9.24"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.Round().StringFixed(); got != tc.want {
				t.Errorf("Round(%s) = %s, want %s", tc.in.Amount(), got, tc.want)
			}
		})
	}
}

func TestMoney_Add(t *testing.T) {
	sum := M(10, "EUR").Add(M(2.5, "EUR"))
	if got := sum.StringFixed(); got != "12.50" {
		t.Errorf("10 + 2.5 = %s, want 12.50", got)
	}
	if sum.Currency() != "EUR" {
		t.Errorf("sum currency = %q, want EUR", sum.Currency())
	}

	// The zero Money has a weak "" currency: it takes the other operand's.
	var zero Money
	if got := zero.Add(M(3, "USD")); got.Currency() != "USD" || got.StringFixed() != "3.00" {
		t.Errorf("zero + 3 USD = %s %s, want 3.00 USD", got.StringFixed(), got.Currency())
	}
}

func TestMoney_String(t *testing.T) {
	// Known codes use the currency's own display format.
	if got := M(12.5, "USD").String(); got != "$12.50" {
		t.Errorf("M(12.5, USD).String() = %q, want %q", got, "$12.50")
	}
	// Unknown codes still format, with a generic 2-digit fraction.
	if got := M(3, "WTF").StringFixed(); got != "3.00" {
		t.Errorf("M(3, WTF).StringFixed() = %q, want %q", got, "3.00")
	}
}
