package llm

import (
	"context"
)

// LLMClient generates a completion for a prompt. The agent is the only
// consumer; providers are interchangeable behind this interface.
type LLMClient interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
