// Package advisor provides AI-backed financial guidance built on the
// aggregated balance-book snapshot. The advisor hands the model a textual
// context and returns its free text as-is; nothing downstream parses it.
package advisor

import (
	"context"
	"fmt"

	"github.com/varlikapp/varlik/internal/common"
	"github.com/varlikapp/varlik/internal/currency"
	"github.com/varlikapp/varlik/internal/finance"
	"github.com/varlikapp/varlik/internal/interfaces"
	"github.com/varlikapp/varlik/internal/ledger"
)

// offlineNotice is returned when no Gemini API key is configured. The rest of
// the app keeps working without AI.
const offlineNotice = "The AI advisor is not configured. Set a Gemini API key to enable chat and reports."

// Service implements interfaces.AdvisorService.
type Service struct {
	ledger          *ledger.Store
	client          interfaces.GeminiClient // nil when not configured
	displayCurrency string
	logger          *common.Logger
}

// NewService creates a new advisor service. client may be nil, in which case
// every operation degrades to an offline notice.
func NewService(ledger *ledger.Store, client interfaces.GeminiClient, displayCurrency string, logger *common.Logger) *Service {
	return &Service{
		ledger:          ledger,
		client:          client,
		displayCurrency: displayCurrency,
		logger:          logger,
	}
}

// Chat answers a user question with the current summary snapshot as context.
func (s *Service) Chat(ctx context.Context, message string, history []interfaces.ChatTurn) (string, error) {
	if s.client == nil {
		return offlineNotice, nil
	}

	symbol := currency.Symbol(s.displayCurrency)
	summary := finance.BuildSummary(s.ledger.Book(), symbol)
	prompt := buildChatPrompt(summary, history, message)

	s.logger.Debug().Int("history", len(history)).Msg("Advisor chat request")

	reply, err := s.client.GenerateContent(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("advisor chat: %w", err)
	}
	return reply, nil
}

// GenerateCFOReport produces a CFO-style assessment from the health report
// plus a small sample of raw items.
func (s *Service) GenerateCFOReport(ctx context.Context, creditScore *int) (string, error) {
	if s.client == nil {
		return offlineNotice, nil
	}

	book := s.ledger.Book()
	symbol := currency.Symbol(s.displayCurrency)
	summary := finance.BuildSummary(book, symbol)
	report := finance.BuildHealthReport(book, creditScore)
	prompt := buildReportPrompt(summary, report, sampleItems(book, symbol))

	s.logger.Info().Int("score", report.Score).Msg("Generating CFO report")

	text, err := s.client.GenerateContent(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("cfo report: %w", err)
	}
	return text, nil
}

// Ensure Service implements AdvisorService
var _ interfaces.AdvisorService = (*Service)(nil)
