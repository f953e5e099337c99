package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/agenthands/parity/internal/config"
)

// NewClient builds the provider selected in cfg. LM Studio and Ollama both
// speak the OpenAI wire protocol, so they reuse the OpenAI client pointed at
// a local base URL.
func NewClient(ctx context.Context, cfg config.LLMConfig) (LLMClient, error) {
	provider := strings.ToLower(cfg.Provider)

	switch provider {
	case "openai":
		return NewOpenAIClient(cfg.APIKey, cfg.Model, cfg.BaseURL), nil

	case "gemini":
		return NewGeminiClient(ctx, cfg.APIKey, cfg.Model)

	case "claude":
		return NewClaudeClient(cfg.APIKey, cfg.Model, cfg.BaseURL), nil

	case "lmstudio", "ollama":
		baseURL := cfg.BaseURL
		if baseURL == "" {
			if provider == "lmstudio" {
				baseURL = "http://localhost:1234"
			} else {
				baseURL = "http://localhost:11434"
			}
		}
		if !strings.HasSuffix(baseURL, "/v1") {
			baseURL = fmt.Sprintf("%s/v1", strings.TrimRight(baseURL, "/"))
		}

		// Local servers ignore the key but the client config requires one.
		apiKey := cfg.APIKey
		if apiKey == "" {
			apiKey = provider
		}

		return NewOpenAIClient(apiKey, cfg.Model, baseURL), nil

	default:
		return nil, fmt.Errorf("unsupported llm provider: %s", provider)
	}
}
