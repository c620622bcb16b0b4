// Package reminder runs a scheduled scan over free-form due dates and
// surfaces upcoming payments. Dates are unvalidated user text, so entries
// that do not parse are skipped silently.
package reminder

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/varlikapp/varlik/internal/common"
	"github.com/varlikapp/varlik/internal/ledger"
	"github.com/varlikapp/varlik/internal/models"
)

// dueDateLayouts are the formats attempted against free-form due dates, in
// order. Anything else is ignored.
var dueDateLayouts = []string{
	"2006-01-02",
	"02.01.2006",
	"02/01/2006",
	"2 January 2006",
	"January 2, 2006",
}

// DueItem is one upcoming payment found by a scan.
type DueItem struct {
	Kind   string    `json:"kind"` // "credit_card" or "receivable"
	Name   string    `json:"name"`
	Amount float64   `json:"amount"`
	DueAt  time.Time `json:"due_at"`
}

// Service scans the balance book for due dates on a cron schedule.
type Service struct {
	ledger *ledger.Store
	logger *common.Logger
	cron   *cron.Cron

	schedule string
	window   time.Duration
}

// NewService creates a reminder service from the reminders config section.
func NewService(ledger *ledger.Store, cfg common.RemindersConfig, logger *common.Logger) *Service {
	days := cfg.WindowDays
	if days <= 0 {
		days = 7
	}
	return &Service{
		ledger:   ledger,
		logger:   logger,
		cron:     cron.New(),
		schedule: cfg.Schedule,
		window:   time.Duration(days) * 24 * time.Hour,
	}
}

// Start registers the scan job and starts the scheduler.
func (s *Service) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.scan); err != nil {
		return fmt.Errorf("invalid reminder schedule %q: %w", s.schedule, err)
	}
	s.cron.Start()
	s.logger.Info().Str("schedule", s.schedule).Msg("Reminder scheduler started")
	return nil
}

// Stop stops the scheduler and waits for a running scan to finish.
func (s *Service) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Service) scan() {
	items := UpcomingDueItems(s.ledger.Book(), time.Now(), s.window)
	for _, item := range items {
		s.logger.Info().
			Str("kind", item.Kind).
			Str("name", item.Name).
			Float64("amount", item.Amount).
			Time("due_at", item.DueAt).
			Msg("Payment due soon")
	}
	if len(items) == 0 {
		s.logger.Debug().Msg("No upcoming due dates")
	}
}

// UpcomingDueItems returns credit-card liabilities and receivables whose due
// date parses and falls within [now, now+window]. Personal debts carry no due
// date and installments track an end month, so neither is scanned.
func UpcomingDueItems(book models.BalanceBook, now time.Time, window time.Duration) []DueItem {
	var items []DueItem
	deadline := now.Add(window)

	for _, l := range book.Liabilities {
		if l.Type != models.LiabilityTypeCreditCard {
			continue
		}
		if due, ok := parseDueDate(l.DueDate); ok && !due.Before(now) && !due.After(deadline) {
			items = append(items, DueItem{
				Kind:   string(models.LiabilityTypeCreditCard),
				Name:   l.Name,
				Amount: l.CurrentDebt.Float64(),
				DueAt:  due,
			})
		}
	}

	for _, r := range book.Receivables {
		if due, ok := parseDueDate(r.DueDate); ok && !due.Before(now) && !due.After(deadline) {
			items = append(items, DueItem{
				Kind:   "receivable",
				Name:   r.Debtor,
				Amount: r.Amount.Float64(),
				DueAt:  due,
			})
		}
	}

	return items
}

func parseDueDate(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range dueDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
