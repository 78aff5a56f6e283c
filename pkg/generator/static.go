package generator

import (
	"context"
	"fmt"
	"strings"
)

// StaticGenerator serves deterministic canned menus and content. It backs
// the service when no LLM provider is configured, so the full navigation
// flow keeps working offline (and in tests) without an API key.
type StaticGenerator struct{}

var _ ContentGenerator = &StaticGenerator{}

func NewStaticGenerator() *StaticGenerator {
	return &StaticGenerator{}
}

func (g *StaticGenerator) MainMenu(_ context.Context, topic string) (*MainMenu, error) {
	return &MainMenu{
		Categories: []string{
			fmt.Sprintf("Introduction to %s", topic),
			fmt.Sprintf("Key Concepts in %s", topic),
			fmt.Sprintf("History of %s", topic),
		},
		MaxMenuDepth: 2,
	}, nil
}

func (g *StaticGenerator) Submenu(_ context.Context, _ string, category string) ([]string, error) {
	return []string{
		fmt.Sprintf("%s: Fundamentals", category),
		fmt.Sprintf("%s: In Practice", category),
		fmt.Sprintf("%s: Common Questions", category),
	}, nil
}

func (g *StaticGenerator) Content(_ context.Context, topic string, path []string, selection string) (*Content, error) {
	var md strings.Builder
	md.WriteString(fmt.Sprintf("# %s\n\n", selection))
	md.WriteString(fmt.Sprintf("An overview of **%s** within the subject of %s.\n\n", selection, topic))
	if len(path) > 1 {
		md.WriteString(fmt.Sprintf("Navigation path: %s.\n\n", strings.Join(path, " > ")))
	}
	md.WriteString("Generated content is unavailable without a configured AI provider; ")
	md.WriteString("this placeholder keeps the exploration flow usable.\n")

	return &Content{
		Markdown: md.String(),
		FurtherTopics: []string{
			fmt.Sprintf("More about %s", selection),
			fmt.Sprintf("%s in context", selection),
		},
	}, nil
}
