package finance

import "github.com/varlikapp/varlik/internal/models"

// Health score rubric. The thresholds and weights are a fixed heuristic
// contract, not a derived model.
const (
	healthBaseline = 50

	netWorthWeight = 20

	debtRatioHealthy  = 0.3
	debtRatioElevated = 0.5
	debtRatioCritical = 0.7

	creditTier1 = 1100
	creditTier2 = 1300
	creditTier3 = 1500
	creditTier4 = 1700
)

// DebtToAssetRatio is total liabilities over total assets. With no assets it
// returns 0: an empty book reads as unindebted on the dashboard, not
// infinitely indebted.
func DebtToAssetRatio(book models.BalanceBook) float64 {
	assets := TotalAssets(book)
	if assets == 0 {
		return 0
	}
	return TotalLiabilities(book) / assets
}

// LiquidityRatio is (assets - liabilities) / liabilities. With no liabilities
// the ratio is undefined and reported as ideal: the second return is true and
// the ratio is pinned to 1.0 (rendered as "100%+" by consumers).
func LiquidityRatio(book models.BalanceBook) (float64, bool) {
	liabilities := TotalLiabilities(book)
	if liabilities == 0 {
		return 1.0, true
	}
	return (TotalAssets(book) - liabilities) / liabilities, false
}

// InstallmentBurden is total monthly installments over total assets,
// 0 when there are no assets.
func InstallmentBurden(book models.BalanceBook) float64 {
	assets := TotalAssets(book)
	if assets == 0 {
		return 0
	}
	return TotalInstallments(book) / assets
}

// HealthScore computes the 0-100 composite rating: baseline 50, net worth
// sign +/-20, debt-to-asset tier +15/+5/-5/-15 at 0.3/0.5/0.7, and an
// optional external credit score tier -5/0/+5/+10/+15 at 1100/1300/1500/1700.
func HealthScore(book models.BalanceBook, creditScore *int) int {
	score := healthBaseline

	if nw := NetWorth(book); nw > 0 {
		score += netWorthWeight
	} else if nw < 0 {
		score -= netWorthWeight
	}

	ratio := DebtToAssetRatio(book)
	switch {
	case ratio < debtRatioHealthy:
		score += 15
	case ratio < debtRatioElevated:
		score += 5
	case ratio < debtRatioCritical:
		score -= 5
	default:
		score -= 15
	}

	if creditScore != nil {
		switch cs := *creditScore; {
		case cs < creditTier1:
			score -= 5
		case cs < creditTier2:
			// neutral band
		case cs < creditTier3:
			score += 5
		case cs < creditTier4:
			score += 10
		default:
			score += 15
		}
	}

	return clamp(score, 0, 100)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// BuildHealthReport assembles the score and its ratio breakdown for the
// dashboard and the CFO report prompt.
func BuildHealthReport(book models.BalanceBook, creditScore *int) models.HealthReport {
	liquidity, ideal := LiquidityRatio(book)
	return models.HealthReport{
		Score:             HealthScore(book, creditScore),
		NetWorth:          NetWorth(book),
		DebtToAsset:       DebtToAssetRatio(book),
		Liquidity:         liquidity,
		LiquidityIdeal:    ideal,
		InstallmentBurden: InstallmentBurden(book),
		CreditScore:       creditScore,
		AssetCount:        len(book.Assets),
		LiabilityCount:    len(book.Liabilities),
		ReceivableCount:   len(book.Receivables),
		InstallmentCount:  len(book.Installments),
	}
}
