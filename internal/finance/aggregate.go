// Package finance implements the aggregation engine: pure derivation rules
// that compute summary metrics from the balance book. Every function is total
// (never panics, returns 0 or a documented sentinel on empty or malformed
// input) and recomputes from scratch on each call; nothing is cached.
//
// Totals are naive numeric sums: entities carry their own currency codes but
// no conversion is applied (single-currency assumption, not enforced). The
// display currency governs only the symbol shown to the user.
package finance

import (
	"math"

	"github.com/varlikapp/varlik/internal/models"
)

// sanitize coerces non-finite values to 0 so one malformed entry cannot
// poison a sum.
func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// TotalAssets sums asset values across all asset types.
func TotalAssets(book models.BalanceBook) float64 {
	total := 0.0
	for _, a := range book.Assets {
		total += sanitize(a.Value.Float64())
	}
	return total
}

// TotalLiabilities sums current debt across all liabilities.
func TotalLiabilities(book models.BalanceBook) float64 {
	total := 0.0
	for _, l := range book.Liabilities {
		total += sanitize(l.CurrentDebt.Float64())
	}
	return total
}

// TotalReceivables sums amounts owed to the user.
func TotalReceivables(book models.BalanceBook) float64 {
	total := 0.0
	for _, r := range book.Receivables {
		total += sanitize(r.Amount.Float64())
	}
	return total
}

// TotalInstallments sums the monthly installment amounts.
func TotalInstallments(book models.BalanceBook) float64 {
	total := 0.0
	for _, i := range book.Installments {
		total += sanitize(i.InstallmentAmount.Float64())
	}
	return total
}

// LiquidAssets sums the value of liquid assets only.
func LiquidAssets(book models.BalanceBook) float64 {
	total := 0.0
	for _, a := range book.Assets {
		if a.Type == models.AssetTypeLiquid {
			total += sanitize(a.Value.Float64())
		}
	}
	return total
}

// NetWorth is assets plus receivables minus liabilities. Installments are
// excluded: they are future cash flow commitments, not a present
// balance-sheet liability.
func NetWorth(book models.BalanceBook) float64 {
	return TotalAssets(book) + TotalReceivables(book) - TotalLiabilities(book)
}

// SafeToSpend is liquid assets minus total liabilities: the user's
// discretionary headroom. A negative result is meaningful (liabilities exceed
// liquid cash) and is never clamped.
func SafeToSpend(book models.BalanceBook) float64 {
	return LiquidAssets(book) - TotalLiabilities(book)
}

// BuildSummary assembles the snapshot consumed by the dashboard and passed to
// the AI advisor as context.
func BuildSummary(book models.BalanceBook, currencySymbol string) models.Summary {
	return models.Summary{
		TotalAssets:       TotalAssets(book),
		TotalLiabilities:  TotalLiabilities(book),
		NetWorth:          NetWorth(book),
		SafeToSpend:       SafeToSpend(book),
		TotalReceivables:  TotalReceivables(book),
		TotalInstallments: TotalInstallments(book),
		CurrencySymbol:    currencySymbol,
	}
}
