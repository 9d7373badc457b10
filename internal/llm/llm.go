package llm

import "fmt"

// creates a text generator for the configured provider.
// Both supported providers speak the OpenAI chat completions wire format, so
// they share one client; the switch exists so an incompatible backend can be
// added without touching callers.
func NewTextGenerator(config *Config) (TextGenerator, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	if config.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	switch config.Provider {
	case ProviderGemini, ProviderOpenAI, "":
		return NewChatClient(*config), nil
	default:
		return nil, fmt.Errorf("unsupported text provider: %s", config.Provider)
	}
}
