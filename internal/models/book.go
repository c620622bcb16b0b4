package models

// BookSchemaVersion is the persisted envelope version. Bump when the payload
// shape changes; Load treats a mismatch as no persisted data.
const BookSchemaVersion = 1

// BalanceBook holds the four entity collections. Each collection is an
// insertion-ordered list with ids unique within its own kind; no entity
// references another kind.
type BalanceBook struct {
	Assets       []Asset       `json:"assets"`
	Liabilities  []Liability   `json:"liabilities"`
	Receivables  []Receivable  `json:"receivables"`
	Installments []Installment `json:"installments"`
}

// Clone returns a copy with freshly allocated collection slices. Entities are
// value types, so a slice copy is a full copy.
func (b BalanceBook) Clone() BalanceBook {
	out := BalanceBook{
		Assets:       make([]Asset, len(b.Assets)),
		Liabilities:  make([]Liability, len(b.Liabilities)),
		Receivables:  make([]Receivable, len(b.Receivables)),
		Installments: make([]Installment, len(b.Installments)),
	}
	copy(out.Assets, b.Assets)
	copy(out.Liabilities, b.Liabilities)
	copy(out.Receivables, b.Receivables)
	copy(out.Installments, b.Installments)
	return out
}

// BookEnvelope wraps the persisted balance book with a schema version.
type BookEnvelope struct {
	Version int         `json:"version"`
	State   BalanceBook `json:"state"`
}

// Summary is the aggregated snapshot consumed by the dashboard and handed to
// the AI advisor as context. Totals are naive sums across currencies; the
// symbol governs display only.
type Summary struct {
	TotalAssets       float64 `json:"total_assets"`
	TotalLiabilities  float64 `json:"total_liabilities"`
	NetWorth          float64 `json:"net_worth"`
	SafeToSpend       float64 `json:"safe_to_spend"`
	TotalReceivables  float64 `json:"total_receivables"`
	TotalInstallments float64 `json:"total_installments"`
	CurrencySymbol    string  `json:"currency_symbol"`
}

// HealthReport is the ratio breakdown behind the composite health score,
// consumed by the dashboard and the CFO report prompt.
type HealthReport struct {
	Score             int     `json:"score"` // 0-100
	NetWorth          float64 `json:"net_worth"`
	DebtToAsset       float64 `json:"debt_to_asset_ratio"`
	Liquidity         float64 `json:"liquidity_ratio"`
	LiquidityIdeal    bool    `json:"liquidity_ideal"` // true when there are no liabilities
	InstallmentBurden float64 `json:"installment_burden"`
	CreditScore       *int    `json:"credit_score,omitempty"` // optional external input
	AssetCount        int     `json:"asset_count"`
	LiabilityCount    int     `json:"liability_count"`
	ReceivableCount   int     `json:"receivable_count"`
	InstallmentCount  int     `json:"installment_count"`
}
