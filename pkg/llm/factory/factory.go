package factory

import (
	"fmt"

	"emerge-career-be/pkg/llm"
	"emerge-career-be/pkg/llm/gemini"
	"emerge-career-be/pkg/llm/ollama"
)

// NewLLMProvider picks the backend by name. A Gemini provider without an API
// key still constructs successfully; its calls fail and the advisor degrades
// to fallback data, so missing credentials never block startup.
func NewLLMProvider(providerType, modelName, ollamaBaseURL, geminiAPIKey string) (llm.LLMProvider, error) {
	switch providerType {
	case "gemini":
		return gemini.NewGeminiProvider(geminiAPIKey, modelName), nil
	case "ollama":
		if ollamaBaseURL == "" {
			ollamaBaseURL = "http://localhost:11434"
		}
		return ollama.NewOllamaProvider(ollamaBaseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
