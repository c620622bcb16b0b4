package interfaces

import "context"

// GeminiClient generates AI content from prompts. The core hands the advisor
// a textual context snapshot and renders the returned free text as-is; it
// never parses model output.
type GeminiClient interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
	Close() error
}
