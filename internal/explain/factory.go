package explain

import (
	"fmt"
	"strings"

	"github.com/psharma/contractguard/internal/model"
)

// NewProvider creates a generative provider based on configuration.
// An empty provider name disables generation (templates only) and returns nil.
func NewProvider(config model.LLMConfig) (Provider, error) {
	provider := strings.ToLower(config.Provider)

	switch provider {
	case "groq":
		return NewGroqProvider(config)

	case "openai":
		return NewOpenAIProvider(config)

	case "ollama":
		return NewOllamaProvider(config)

	case "":
		// No provider configured - generation disabled
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown explanation provider: %s (supported: groq, openai, ollama)", config.Provider)
	}
}
