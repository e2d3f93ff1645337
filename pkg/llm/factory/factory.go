package factory

import (
	"context"
	"fmt"

	"ai-notetaking-be/pkg/llm"
	"ai-notetaking-be/pkg/llm/gemini"
	"ai-notetaking-be/pkg/llm/ollama"
)

const (
	ProviderGemini = "gemini"
	ProviderOllama = "ollama"
)

// Settings carries what any provider might need.
type Settings struct {
	Provider string
	Model    string
	BaseURL  string
	APIKey   string
}

// NewLLMProvider builds the configured provider. A Gemini provider without an
// API key is reported as (nil, nil): the caller treats it as "not configured".
func NewLLMProvider(ctx context.Context, s Settings) (llm.LLMProvider, error) {
	switch s.Provider {
	case ProviderGemini, "":
		if s.APIKey == "" {
			return nil, nil
		}
		return gemini.NewGeminiProvider(ctx, s.APIKey, s.Model)
	case ProviderOllama:
		return ollama.NewOllamaProvider(s.BaseURL, s.Model), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", s.Provider)
	}
}
