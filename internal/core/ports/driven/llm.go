package driven

import "context"

// LLMService provides language model operations for event extraction.
//
// Implementations may include:
//   - Anthropic (Claude)
//   - test fakes returning canned responses
type LLMService interface {
	// Generate produces a text completion from a single user prompt.
	// The returned string is the raw model output, handed unmodified to
	// the response parser.
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)

	// ModelName returns the name of the model being used.
	ModelName() string

	// Close releases resources.
	Close() error
}

// GenerateOptions configures text generation behaviour.
type GenerateOptions struct {
	// MaxTokens is the maximum number of tokens to generate.
	MaxTokens int

	// Temperature controls randomness (0.0 = deterministic).
	Temperature float64
}
