// Package currency maps currency codes to display symbols and formats
// amounts for presentation. It is presentation-only: aggregation never
// converts between currencies.
package currency

import (
	"math"

	"github.com/Rhymond/go-money"
)

// Symbol returns the display symbol for an ISO currency code ("TRY" → "₺").
// Unknown codes fall back to the code itself so the UI always has something
// to show.
func Symbol(code string) string {
	c := money.GetCurrency(code)
	if c == nil || c.Grapheme == "" {
		return code
	}
	return c.Grapheme
}

// Format renders an amount in the given display currency using the
// currency's own fraction rules and symbol placement.
func Format(v float64, code string) string {
	fraction := 2
	if c := money.GetCurrency(code); c != nil {
		fraction = c.Fraction
	}
	factor := math.Pow10(fraction)
	return money.New(int64(math.Round(v*factor)), code).Display()
}
