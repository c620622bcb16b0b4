package reminder

import (
	"testing"
	"time"

	"github.com/varlikapp/varlik/internal/models"
)

func TestUpcomingDueItems(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	window := 7 * 24 * time.Hour

	book := models.BalanceBook{
		Liabilities: []models.Liability{
			{Type: models.LiabilityTypeCreditCard, Name: "Card A", CurrentDebt: 4300, DueDate: "2026-03-12"},
			{Type: models.LiabilityTypeCreditCard, Name: "Card B", CurrentDebt: 100, DueDate: "2026-04-01"},  // outside window
			{Type: models.LiabilityTypeCreditCard, Name: "Card C", CurrentDebt: 50, DueDate: "every 26th"},   // unparseable
			{Type: models.LiabilityTypePersonalDebt, Name: "Loan", CurrentDebt: 900, DueDate: "2026-03-11"},  // wrong kind
		},
		Receivables: []models.Receivable{
			{Debtor: "Ali", Amount: 750, DueDate: "14.03.2026"},
			{Debtor: "Veli", Amount: 20, DueDate: "2026-03-01"}, // already past
			{Debtor: "Ayse", Amount: 10, DueDate: ""},
		},
	}

	items := UpcomingDueItems(book, now, window)

	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d: %+v", len(items), items)
	}
	if items[0].Name != "Card A" || items[0].Kind != "credit_card" || items[0].Amount != 4300 {
		t.Errorf("unexpected first item: %+v", items[0])
	}
	if items[1].Name != "Ali" || items[1].Kind != "receivable" {
		t.Errorf("unexpected second item: %+v", items[1])
	}
}

func TestUpcomingDueItems_EmptyBook(t *testing.T) {
	items := UpcomingDueItems(models.BalanceBook{}, time.Now(), 7*24*time.Hour)
	if len(items) != 0 {
		t.Errorf("expected no items, got %+v", items)
	}
}

func TestParseDueDate_Layouts(t *testing.T) {
	cases := []struct {
		raw string
		ok  bool
	}{
		{"2026-03-12", true},
		{"12.03.2026", true},
		{"12/03/2026", true},
		{"12 March 2026", true},
		{"March 12, 2026", true},
		{"whenever", false},
		{"", false},
	}
	for _, tc := range cases {
		if _, ok := parseDueDate(tc.raw); ok != tc.ok {
			t.Errorf("parseDueDate(%q) ok=%v, want %v", tc.raw, ok, tc.ok)
		}
	}
}
