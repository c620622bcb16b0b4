package interfaces

import "context"

// AdvisorService produces AI-backed financial guidance from the current
// aggregated snapshot.
type AdvisorService interface {
	// Chat answers a free-form user question with the summary snapshot as
	// context. History carries prior turns, oldest first.
	Chat(ctx context.Context, message string, history []ChatTurn) (string, error)

	// GenerateCFOReport produces a CFO-style report from the health report
	// plus sample raw items.
	GenerateCFOReport(ctx context.Context, creditScore *int) (string, error)
}

// ChatTurn is a single prior exchange in an advisor conversation.
type ChatTurn struct {
	Role    string `json:"role"` // "user" or "model"
	Content string `json:"content"`
}
