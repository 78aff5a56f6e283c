package llmgen

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"ai-subject-explorer-be/pkg/generator"
	"ai-subject-explorer-be/pkg/llm"
)

const defaultTimeout = 60 * time.Second

// Generator produces menus and content through any llm.LLMProvider. The
// provider is asked for strict JSON and the output is normalized before it
// reaches the navigation engine, so malformed model output never becomes
// session state.
type Generator struct {
	provider llm.LLMProvider
	timeout  time.Duration
}

var _ generator.ContentGenerator = &Generator{}

func NewGenerator(provider llm.LLMProvider, timeout time.Duration) *Generator {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Generator{
		provider: provider,
		timeout:  timeout,
	}
}

func (g *Generator) MainMenu(ctx context.Context, topic string) (*generator.MainMenu, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	response, err := g.provider.Chat(ctx, mainMenuMessages(topic),
		llm.WithTemperature(0.5),
		llm.WithMaxTokens(250),
		llm.WithJSONResponse(),
	)
	if err != nil {
		return nil, classify(err)
	}

	parsed, err := parseMainMenu(response)
	if err != nil {
		return nil, err
	}

	items := generator.NormalizeItems(parsed.Categories)
	if len(items) == 0 {
		return nil, generator.NewError(generator.KindBadResponse, "model returned no usable categories", nil)
	}

	return &generator.MainMenu{
		Categories:   items,
		MaxMenuDepth: parsed.MaxMenuDepth,
	}, nil
}

func (g *Generator) Submenu(ctx context.Context, topic, category string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	response, err := g.provider.Chat(ctx, submenuMessages(topic, category),
		llm.WithTemperature(0.5),
		llm.WithMaxTokens(250),
		llm.WithJSONResponse(),
	)
	if err != nil {
		return nil, classify(err)
	}

	parsed, err := parseSubmenu(response)
	if err != nil {
		return nil, err
	}

	items := generator.NormalizeItems(parsed.Subtopics)
	if len(items) == 0 {
		return nil, generator.NewError(generator.KindBadResponse, "model returned no usable subtopics", nil)
	}

	return items, nil
}

func (g *Generator) Content(ctx context.Context, topic string, path []string, selection string) (*generator.Content, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	response, err := g.provider.Chat(ctx, contentMessages(topic, path, selection),
		llm.WithTemperature(0.5),
		llm.WithMaxTokens(1200),
		llm.WithJSONResponse(),
	)
	if err != nil {
		return nil, classify(err)
	}

	parsed, err := parseContent(response)
	if err != nil {
		return nil, err
	}

	markdown := strings.TrimSpace(parsed.Content)
	if markdown == "" {
		return nil, generator.NewError(generator.KindBadResponse, "model returned empty content", nil)
	}

	topics := generator.NormalizeItems(parsed.FurtherTopics)
	if len(topics) == 0 {
		return nil, generator.NewError(generator.KindBadResponse, "model returned no further topics", nil)
	}

	return &generator.Content{
		Markdown:      markdown,
		FurtherTopics: topics,
	}, nil
}

// classify maps transport and backend failures into the generator error
// taxonomy. Timeouts count as connection failures so callers may retry.
func classify(err error) *generator.Error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return generator.NewError(generator.KindConnection, "ai request timed out", err)
	}

	var statusErr *llm.StatusError
	if errors.As(err, &statusErr) {
		switch {
		case statusErr.StatusCode == http.StatusUnauthorized || statusErr.StatusCode == http.StatusForbidden:
			return generator.NewError(generator.KindAuth, "ai backend rejected credentials", err)
		case statusErr.StatusCode == http.StatusTooManyRequests:
			return generator.NewError(generator.KindRateLimited, "ai backend rate limited", err)
		case statusErr.StatusCode == http.StatusServiceUnavailable:
			return generator.NewError(generator.KindUnavailable, "ai backend unavailable", err)
		default:
			return generator.NewError(generator.KindAPI, "ai backend returned an error", err)
		}
	}

	return generator.NewError(generator.KindConnection, "ai request failed", err)
}
