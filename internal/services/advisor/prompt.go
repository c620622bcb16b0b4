package advisor

import (
	"fmt"
	"strings"

	"github.com/varlikapp/varlik/internal/interfaces"
	"github.com/varlikapp/varlik/internal/models"
)

// maxSampleItems caps how many raw entries per category go into the CFO
// report prompt.
const maxSampleItems = 3

// buildChatPrompt assembles the system context, prior turns, and the new
// question into one prompt.
func buildChatPrompt(summary models.Summary, history []interfaces.ChatTurn, message string) string {
	var sb strings.Builder

	sb.WriteString("You are a personal finance assistant. Answer briefly and practically, ")
	sb.WriteString("using the user's own numbers. Do not invent figures.\n\n")
	writeSummary(&sb, summary)

	if len(history) > 0 {
		sb.WriteString("\nConversation so far:\n")
		for _, turn := range history {
			role := "User"
			if turn.Role == "model" {
				role = "Assistant"
			}
			fmt.Fprintf(&sb, "%s: %s\n", role, turn.Content)
		}
	}

	fmt.Fprintf(&sb, "\nUser: %s\n", message)
	return sb.String()
}

// buildReportPrompt assembles the CFO report prompt from the summary, the
// health breakdown, and sample raw items.
func buildReportPrompt(summary models.Summary, report models.HealthReport, samples string) string {
	var sb strings.Builder

	sb.WriteString("You are acting as a personal CFO. Write a short financial report with ")
	sb.WriteString("sections for overall position, risks, and three concrete recommendations.\n\n")
	writeSummary(&sb, summary)

	sb.WriteString("\nHealth breakdown:\n")
	fmt.Fprintf(&sb, "- Health score: %d/100\n", report.Score)
	fmt.Fprintf(&sb, "- Debt-to-asset ratio: %.2f\n", report.DebtToAsset)
	if report.LiquidityIdeal {
		sb.WriteString("- Liquidity: ideal (no liabilities)\n")
	} else {
		fmt.Fprintf(&sb, "- Liquidity ratio: %.2f\n", report.Liquidity)
	}
	fmt.Fprintf(&sb, "- Installment burden: %.2f\n", report.InstallmentBurden)
	if report.CreditScore != nil {
		fmt.Fprintf(&sb, "- External credit score: %d\n", *report.CreditScore)
	}
	fmt.Fprintf(&sb, "- Entries: %d assets, %d liabilities, %d receivables, %d installments\n",
		report.AssetCount, report.LiabilityCount, report.ReceivableCount, report.InstallmentCount)

	if samples != "" {
		sb.WriteString("\nSample entries:\n")
		sb.WriteString(samples)
	}

	sb.WriteString("\nKeep the report under 400 words.")
	return sb.String()
}

func writeSummary(sb *strings.Builder, s models.Summary) {
	sb.WriteString("Current financial snapshot:\n")
	fmt.Fprintf(sb, "- Total assets: %s%.2f\n", s.CurrencySymbol, s.TotalAssets)
	fmt.Fprintf(sb, "- Total liabilities: %s%.2f\n", s.CurrencySymbol, s.TotalLiabilities)
	fmt.Fprintf(sb, "- Net worth: %s%.2f\n", s.CurrencySymbol, s.NetWorth)
	fmt.Fprintf(sb, "- Safe to spend: %s%.2f\n", s.CurrencySymbol, s.SafeToSpend)
	fmt.Fprintf(sb, "- Receivables: %s%.2f\n", s.CurrencySymbol, s.TotalReceivables)
	fmt.Fprintf(sb, "- Monthly installments: %s%.2f\n", s.CurrencySymbol, s.TotalInstallments)
}

// sampleItems renders up to maxSampleItems entries per category as prompt
// lines. Names and amounts only; details stay on the device.
func sampleItems(book models.BalanceBook, symbol string) string {
	var sb strings.Builder

	for i, a := range book.Assets {
		if i >= maxSampleItems {
			break
		}
		fmt.Fprintf(&sb, "- Asset (%s): %s, %s%.2f %s\n", a.Type, a.Name, symbol, a.Value.Float64(), a.Currency)
	}
	for i, l := range book.Liabilities {
		if i >= maxSampleItems {
			break
		}
		fmt.Fprintf(&sb, "- Liability (%s): %s, debt %s%.2f\n", l.Type, l.Name, symbol, l.CurrentDebt.Float64())
	}
	for i, r := range book.Receivables {
		if i >= maxSampleItems {
			break
		}
		fmt.Fprintf(&sb, "- Receivable: from %s, %s%.2f\n", r.Debtor, symbol, r.Amount.Float64())
	}
	for i, ins := range book.Installments {
		if i >= maxSampleItems {
			break
		}
		fmt.Fprintf(&sb, "- Installment: %s, %s%.2f/month, %d months left\n",
			ins.Name, symbol, ins.InstallmentAmount.Float64(), ins.RemainingMonths)
	}

	return sb.String()
}
