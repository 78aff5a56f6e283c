package factory

import (
	"fmt"

	"ai-subject-explorer-be/pkg/llm"
	"ai-subject-explorer-be/pkg/llm/huggingface"
	"ai-subject-explorer-be/pkg/llm/ollama"
	"ai-subject-explorer-be/pkg/llm/openai"
)

func NewLLMProvider(providerType, modelName, baseURL, hfAPIKey, openAIKey string) (llm.LLMProvider, error) {
	switch providerType {
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, modelName), nil
	case "huggingface":
		if hfAPIKey == "" {
			return nil, fmt.Errorf("huggingface provider requires an api key")
		}
		return huggingface.NewHuggingFaceProvider(hfAPIKey, "", modelName), nil
	case "openai":
		if openAIKey == "" {
			return nil, fmt.Errorf("openai provider requires an api key")
		}
		return openai.NewOpenAIProvider(openAIKey, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
