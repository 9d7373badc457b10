package llm

import "context"

// represents different chat-completion providers
type Provider string

const (
	ProviderGemini Provider = "gemini"
	ProviderOpenAI Provider = "openai"
)

// generates text from a single-turn prompt
type TextGenerator interface {
	GenerateText(ctx context.Context, req TextRequest) (string, error)
	Model() string
}

// a single-turn text generation request
type TextRequest struct {
	Prompt      string
	System      string // optional fixed instruction (blog titles, resume review)
	MaxTokens   int    // 0 uses the client default
	Temperature float32
}

// holds configuration for text generation clients
type Config struct {
	Provider    Provider
	APIKey      string
	Model       string // e.g., "gemini-1.5-flash"
	BaseURL     string // override for tests; empty uses the provider default
	MaxTokens   int
	Temperature float32
}
