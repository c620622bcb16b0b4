// Package models defines data structures for Varlik
package models

// AssetType classifies an asset. Only liquid assets count toward the
// safe-to-spend headroom; the other types are held wealth.
type AssetType string

const (
	AssetTypeLiquid       AssetType = "liquid"
	AssetTypeTerm         AssetType = "term"
	AssetTypeGoldCurrency AssetType = "gold_currency"
	AssetTypeFunds        AssetType = "funds"
)

// LiabilityType classifies a liability.
type LiabilityType string

const (
	LiabilityTypeCreditCard   LiabilityType = "credit_card"
	LiabilityTypePersonalDebt LiabilityType = "personal_debt"
)

// Asset is a single owned holding. Value is a raw number in the asset's own
// currency; totals sum values across currencies without conversion.
type Asset struct {
	ID       string    `json:"id"`
	Type     AssetType `json:"type"`
	Name     string    `json:"name"`
	Value    Amount    `json:"value"`
	Currency string    `json:"currency"`
	Details  string    `json:"details,omitempty"`
}

// Liability is a present debt balance. Only CurrentDebt participates in
// aggregation; TotalLimit and DueDate are meaningful for credit cards,
// DebtorName for personal debts.
type Liability struct {
	ID          string        `json:"id"`
	Type        LiabilityType `json:"type"`
	Name        string        `json:"name"`
	TotalLimit  Amount        `json:"total_limit,omitempty"`
	CurrentDebt Amount        `json:"current_debt"`
	DueDate     string        `json:"due_date,omitempty"` // free-form, not validated
	DebtorName  string        `json:"debtor_name,omitempty"`
	Details     string        `json:"details,omitempty"`
}

// Receivable is money owed to the user.
type Receivable struct {
	ID      string `json:"id"`
	Debtor  string `json:"debtor"`
	Amount  Amount `json:"amount"`
	DueDate string `json:"due_date,omitempty"` // free-form, not validated
	Details string `json:"details,omitempty"`
}

// Installment is a recurring monthly obligation with a fixed remaining
// duration. It is future cash flow, not a present debt, so it is excluded
// from net worth.
type Installment struct {
	ID                string `json:"id"`
	Name              string `json:"name,omitempty"`
	InstallmentAmount Amount `json:"installment_amount"`
	EndDate           string `json:"end_date,omitempty"` // free-form, not validated
	RemainingMonths   int    `json:"remaining_months"`
	Details           string `json:"details,omitempty"`
}

// Patch types express partial updates. Nil fields are left untouched;
// non-nil fields overwrite, including overwriting with a zero value.

// AssetPatch is a partial update for an Asset.
type AssetPatch struct {
	Type     *AssetType `json:"type"`
	Name     *string    `json:"name"`
	Value    *Amount    `json:"value"`
	Currency *string    `json:"currency"`
	Details  *string    `json:"details"`
}

// Apply merges the patch into a copy of the asset and returns it.
func (p AssetPatch) Apply(a Asset) Asset {
	if p.Type != nil {
		a.Type = *p.Type
	}
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.Value != nil {
		a.Value = *p.Value
	}
	if p.Currency != nil {
		a.Currency = *p.Currency
	}
	if p.Details != nil {
		a.Details = *p.Details
	}
	return a
}

// LiabilityPatch is a partial update for a Liability.
type LiabilityPatch struct {
	Type        *LiabilityType `json:"type"`
	Name        *string        `json:"name"`
	TotalLimit  *Amount        `json:"total_limit"`
	CurrentDebt *Amount        `json:"current_debt"`
	DueDate     *string        `json:"due_date"`
	DebtorName  *string        `json:"debtor_name"`
	Details     *string        `json:"details"`
}

// Apply merges the patch into a copy of the liability and returns it.
func (p LiabilityPatch) Apply(l Liability) Liability {
	if p.Type != nil {
		l.Type = *p.Type
	}
	if p.Name != nil {
		l.Name = *p.Name
	}
	if p.TotalLimit != nil {
		l.TotalLimit = *p.TotalLimit
	}
	if p.CurrentDebt != nil {
		l.CurrentDebt = *p.CurrentDebt
	}
	if p.DueDate != nil {
		l.DueDate = *p.DueDate
	}
	if p.DebtorName != nil {
		l.DebtorName = *p.DebtorName
	}
	if p.Details != nil {
		l.Details = *p.Details
	}
	return l
}

// ReceivablePatch is a partial update for a Receivable.
type ReceivablePatch struct {
	Debtor  *string `json:"debtor"`
	Amount  *Amount `json:"amount"`
	DueDate *string `json:"due_date"`
	Details *string `json:"details"`
}

// Apply merges the patch into a copy of the receivable and returns it.
func (p ReceivablePatch) Apply(r Receivable) Receivable {
	if p.Debtor != nil {
		r.Debtor = *p.Debtor
	}
	if p.Amount != nil {
		r.Amount = *p.Amount
	}
	if p.DueDate != nil {
		r.DueDate = *p.DueDate
	}
	if p.Details != nil {
		r.Details = *p.Details
	}
	return r
}

// InstallmentPatch is a partial update for an Installment.
type InstallmentPatch struct {
	Name              *string `json:"name"`
	InstallmentAmount *Amount `json:"installment_amount"`
	EndDate           *string `json:"end_date"`
	RemainingMonths   *int    `json:"remaining_months"`
	Details           *string `json:"details"`
}

// Apply merges the patch into a copy of the installment and returns it.
func (p InstallmentPatch) Apply(i Installment) Installment {
	if p.Name != nil {
		i.Name = *p.Name
	}
	if p.InstallmentAmount != nil {
		i.InstallmentAmount = *p.InstallmentAmount
	}
	if p.EndDate != nil {
		i.EndDate = *p.EndDate
	}
	if p.RemainingMonths != nil {
		i.RemainingMonths = *p.RemainingMonths
	}
	if p.Details != nil {
		i.Details = *p.Details
	}
	return i
}
