package currency

import "testing"

func TestSymbol(t *testing.T) {
	cases := []struct {
		code string
		want string
	}{
		{"TRY", "₺"},
		{"USD", "$"},
		{"EUR", "€"},
		{"GBP", "£"},
		{"ZZZ", "ZZZ"}, // unknown code falls back to the code
	}
	for _, tc := range cases {
		if got := Symbol(tc.code); got != tc.want {
			t.Errorf("Symbol(%s) = %q, want %q", tc.code, got, tc.want)
		}
	}
}

func TestFormat(t *testing.T) {
	if got := Format(1234.5, "USD"); got != "$1,234.50" {
		t.Errorf("Format USD = %q", got)
	}
	// Negative amounts render as-is; safe-to-spend can be negative.
	if got := Format(-300, "USD"); got != "-$300.00" {
		t.Errorf("Format negative USD = %q", got)
	}
	// Zero-fraction currency
	if got := Format(500, "JPY"); got != "¥500" {
		t.Errorf("Format JPY = %q", got)
	}
}
