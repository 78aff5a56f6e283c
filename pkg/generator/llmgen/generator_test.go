package llmgen

import (
	"context"
	"fmt"
	"testing"

	"ai-subject-explorer-be/pkg/generator"
	"ai-subject-explorer-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProvider returns a scripted response or error for every call.
type fakeProvider struct {
	response string
	err      error
}

func (f *fakeProvider) Chat(_ context.Context, _ []llm.Message, _ ...llm.Option) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return f.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, options...)
}

func TestMainMenu_ParsesJSON(t *testing.T) {
	gen := NewGenerator(&fakeProvider{
		response: `{"categories": ["Formation", "Types", "Hazards"], "max_menu_depth": 3}`,
	}, 0)

	menu, err := gen.MainMenu(context.Background(), "Volcanoes")
	require.NoError(t, err)

	assert.Equal(t, []string{"Formation", "Types", "Hazards"}, menu.Categories)
	assert.Equal(t, 3, menu.MaxMenuDepth)
}

func TestMainMenu_StripsMarkdownFences(t *testing.T) {
	gen := NewGenerator(&fakeProvider{
		response: "```json\n{\"categories\": [\"Formation\"], \"max_menu_depth\": 2}\n```",
	}, 0)

	menu, err := gen.MainMenu(context.Background(), "Volcanoes")
	require.NoError(t, err)
	assert.Equal(t, []string{"Formation"}, menu.Categories)
}

func TestMainMenu_IgnoresChatterAroundJSON(t *testing.T) {
	gen := NewGenerator(&fakeProvider{
		response: `Sure! Here is the menu: {"categories": ["Formation"], "max_menu_depth": 2} Hope that helps.`,
	}, 0)

	menu, err := gen.MainMenu(context.Background(), "Volcanoes")
	require.NoError(t, err)
	assert.Equal(t, []string{"Formation"}, menu.Categories)
}

func TestMainMenu_InvalidJSONIsBadResponse(t *testing.T) {
	gen := NewGenerator(&fakeProvider{response: "not json at all"}, 0)

	_, err := gen.MainMenu(context.Background(), "Volcanoes")
	requireKind(t, err, generator.KindBadResponse)
}

func TestMainMenu_BlankCategoriesAreBadResponse(t *testing.T) {
	gen := NewGenerator(&fakeProvider{
		response: `{"categories": ["", "  "], "max_menu_depth": 2}`,
	}, 0)

	_, err := gen.MainMenu(context.Background(), "Volcanoes")
	requireKind(t, err, generator.KindBadResponse)
}

func TestSubmenu_NormalizesItems(t *testing.T) {
	gen := NewGenerator(&fakeProvider{
		response: `{"subtopics": [" Plate Tectonics ", "Magma Chambers", "Plate Tectonics"]}`,
	}, 0)

	items, err := gen.Submenu(context.Background(), "Volcanoes", "Formation")
	require.NoError(t, err)
	assert.Equal(t, []string{"Plate Tectonics", "Magma Chambers"}, items)
}

func TestContent_ParsesMarkdownAndTopics(t *testing.T) {
	gen := NewGenerator(&fakeProvider{
		response: `{"content": "# Magma\n\nDetails.", "further_topics": ["Pressure", "Triggers"]}`,
	}, 0)

	content, err := gen.Content(context.Background(), "Volcanoes",
		[]string{"Volcanoes", "Formation"}, "Magma Chambers")
	require.NoError(t, err)

	assert.Equal(t, "# Magma\n\nDetails.", content.Markdown)
	assert.Equal(t, []string{"Pressure", "Triggers"}, content.FurtherTopics)
}

func TestContent_EmptyTopicsAreBadResponse(t *testing.T) {
	gen := NewGenerator(&fakeProvider{
		response: `{"content": "# Magma", "further_topics": []}`,
	}, 0)

	_, err := gen.Content(context.Background(), "Volcanoes", nil, "Magma Chambers")
	requireKind(t, err, generator.KindBadResponse)
}

func TestClassify_StatusCodes(t *testing.T) {
	cases := []struct {
		status int
		kind   generator.Kind
	}{
		{401, generator.KindAuth},
		{403, generator.KindAuth},
		{429, generator.KindRateLimited},
		{503, generator.KindUnavailable},
		{500, generator.KindAPI},
		{400, generator.KindAPI},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("status %d", tc.status), func(t *testing.T) {
			gen := NewGenerator(&fakeProvider{
				err: &llm.StatusError{StatusCode: tc.status, Body: "nope"},
			}, 0)

			_, err := gen.MainMenu(context.Background(), "Volcanoes")
			requireKind(t, err, tc.kind)
		})
	}
}

func TestClassify_TimeoutIsConnectionError(t *testing.T) {
	gen := NewGenerator(&fakeProvider{
		err: fmt.Errorf("request aborted: %w", context.DeadlineExceeded),
	}, 0)

	_, err := gen.MainMenu(context.Background(), "Volcanoes")
	requireKind(t, err, generator.KindConnection)
}

func TestClassify_TransportFailureIsConnectionError(t *testing.T) {
	gen := NewGenerator(&fakeProvider{
		err: fmt.Errorf("dial tcp: connection refused"),
	}, 0)

	_, err := gen.MainMenu(context.Background(), "Volcanoes")
	requireKind(t, err, generator.KindConnection)
}

func requireKind(t *testing.T, err error, kind generator.Kind) {
	t.Helper()
	require.Error(t, err)
	genErr, ok := err.(*generator.Error)
	require.True(t, ok, "expected *generator.Error, got %T", err)
	assert.Equal(t, kind, genErr.Kind)
}
