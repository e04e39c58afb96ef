package llm

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// ErrNotConfigured marks a missing generator credential. The composer
// absorbs it and runs the rule-based path instead; it is never a crash.
var ErrNotConfigured = errors.New("llm: generator not configured")

// Generator sends one prompt to a text completion API and returns the
// raw response text.
type Generator interface {
	Complete(ctx context.Context, prompt string) (string, error)
	Model() string
}

// NewGeneratorFromEnv builds the configured generator. LLM_PROVIDER
// selects between anthropic (default) and openai; an absent API key
// yields ErrNotConfigured.
func NewGeneratorFromEnv() (Generator, error) {
	provider := os.Getenv("LLM_PROVIDER")
	if provider == "" {
		provider = "anthropic"
	}

	switch provider {
	case "anthropic":
		key := os.Getenv("ANTHROPIC_API_KEY")
		if key == "" {
			return nil, fmt.Errorf("%w: ANTHROPIC_API_KEY is not set", ErrNotConfigured)
		}
		return NewAnthropicGenerator(key), nil
	case "openai":
		key := os.Getenv("OPENAI_API_KEY")
		if key == "" {
			return nil, fmt.Errorf("%w: OPENAI_API_KEY is not set", ErrNotConfigured)
		}
		return NewOpenAIGenerator(key), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider %q (valid: anthropic, openai)", provider)
	}
}
