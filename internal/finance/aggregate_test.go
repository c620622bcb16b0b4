package finance

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varlikapp/varlik/internal/models"
)

func TestTotalAssets_MalformedEntriesContributeZero(t *testing.T) {
	// Entries arrive through tolerant JSON decoding, exactly as the API
	// receives them.
	var book models.BalanceBook
	blob := `{"assets":[
		{"id":"a1","value":100},
		{"id":"a2","value":"x"},
		{"id":"a3","value":null},
		{"id":"a4"}
	]}`
	require.NoError(t, json.Unmarshal([]byte(blob), &book))

	assert.Equal(t, 100.0, TotalAssets(book))
}

func TestTotalAssets_NonFiniteCoercedToZero(t *testing.T) {
	book := models.BalanceBook{
		Assets: []models.Asset{
			{Value: models.Amount(math.NaN())},
			{Value: models.Amount(math.Inf(1))},
			{Value: 25},
		},
	}
	assert.Equal(t, 25.0, TotalAssets(book))
}

func TestNetWorth_Composition(t *testing.T) {
	book := models.BalanceBook{
		Assets:       []models.Asset{{Value: 200}, {Value: 300}},
		Liabilities:  []models.Liability{{CurrentDebt: 200}},
		Receivables:  []models.Receivable{{Amount: 50}},
		Installments: []models.Installment{{InstallmentAmount: 1000}},
	}

	// Receivables included, installments excluded.
	assert.Equal(t, 350.0, NetWorth(book))
}

func TestSafeToSpend_OnlyLiquidCounts(t *testing.T) {
	book := models.BalanceBook{
		Assets: []models.Asset{
			{Type: models.AssetTypeLiquid, Value: 300},
			{Type: models.AssetTypeTerm, Value: 5000},
		},
		Liabilities: []models.Liability{{CurrentDebt: 100}},
	}

	assert.Equal(t, 200.0, SafeToSpend(book))
}

func TestSafeToSpend_NegativeIsNotClamped(t *testing.T) {
	book := models.BalanceBook{
		Assets:      []models.Asset{{Type: models.AssetTypeLiquid, Value: 100}},
		Liabilities: []models.Liability{{CurrentDebt: 400}},
	}

	assert.Equal(t, -300.0, SafeToSpend(book))
}

func TestTotals_NegativeValuesSumAsIs(t *testing.T) {
	book := models.BalanceBook{
		Assets: []models.Asset{{Value: 100}, {Value: -40}},
	}
	assert.Equal(t, 60.0, TotalAssets(book))
}

func TestTotals_MixedCurrenciesSumNaively(t *testing.T) {
	// Known single-currency assumption: values in different currencies are
	// summed as raw numbers with no conversion.
	book := models.BalanceBook{
		Assets: []models.Asset{
			{Value: 100, Currency: "USD"},
			{Value: 100, Currency: "EUR"},
		},
	}
	assert.Equal(t, 200.0, TotalAssets(book))
}

func TestEmptyBook_AllTotalsZero(t *testing.T) {
	var book models.BalanceBook

	assert.Zero(t, TotalAssets(book))
	assert.Zero(t, TotalLiabilities(book))
	assert.Zero(t, TotalReceivables(book))
	assert.Zero(t, TotalInstallments(book))
	assert.Zero(t, NetWorth(book))
	assert.Zero(t, SafeToSpend(book))
	assert.Zero(t, LiquidAssets(book))
}

func TestBuildSummary(t *testing.T) {
	book := models.BalanceBook{
		Assets: []models.Asset{
			{Type: models.AssetTypeLiquid, Value: 300},
			{Type: models.AssetTypeFunds, Value: 200},
		},
		Liabilities:  []models.Liability{{CurrentDebt: 200}},
		Receivables:  []models.Receivable{{Amount: 50}},
		Installments: []models.Installment{{InstallmentAmount: 75}},
	}

	s := BuildSummary(book, "₺")

	assert.Equal(t, 500.0, s.TotalAssets)
	assert.Equal(t, 200.0, s.TotalLiabilities)
	assert.Equal(t, 350.0, s.NetWorth)
	assert.Equal(t, 100.0, s.SafeToSpend)
	assert.Equal(t, 50.0, s.TotalReceivables)
	assert.Equal(t, 75.0, s.TotalInstallments)
	assert.Equal(t, "₺", s.CurrencySymbol)
}
