package bootstrap

import (
	"log"
	"time"

	"ai-subject-explorer-be/internal/config"
	"ai-subject-explorer-be/internal/controller"
	"ai-subject-explorer-be/internal/pkg/logger"
	"ai-subject-explorer-be/internal/repository/memory"
	"ai-subject-explorer-be/internal/service"
	"ai-subject-explorer-be/pkg/generator"
	"ai-subject-explorer-be/pkg/generator/llmgen"
	"ai-subject-explorer-be/pkg/llm/factory"
)

type Container struct {
	// Controllers
	ExplorerController controller.IExplorerController

	// Exposed for graceful shutdown in main.go
	Logger logger.ILogger
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Content Generator
	contentGenerator := newContentGenerator(cfg)

	// 3. In-Memory Session Storage
	sessionRepo := memory.NewSessionRepository(time.Duration(cfg.App.SessionTTLMinutes) * time.Minute)

	// 4. Services
	explorerService := service.NewExplorerService(sessionRepo, contentGenerator, sysLogger)

	// 5. Controllers
	return &Container{
		ExplorerController: controller.NewExplorerController(explorerService),
		Logger:             sysLogger,
	}
}

// newContentGenerator wires the configured LLM provider, falling back to the
// deterministic static generator when no provider is usable so the service
// stays up without an API key.
func newContentGenerator(cfg *config.Config) generator.ContentGenerator {
	if cfg.Ai.LLMProvider == "" || cfg.Ai.LLMProvider == "static" {
		log.Printf("[INFO] Using Content Generator: STATIC fallback")
		return generator.NewStaticGenerator()
	}

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.HuggingFaceAPIKey,
		cfg.Ai.OpenAIAPIKey,
	)
	if err != nil {
		log.Printf("[WARN] Failed to initialize LLM Provider: %v. Using static fallback", err)
		return generator.NewStaticGenerator()
	}

	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)
	return llmgen.NewGenerator(llmProvider, time.Duration(cfg.Ai.RequestTimeoutSec)*time.Second)
}
