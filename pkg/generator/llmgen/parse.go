package llmgen

import (
	"encoding/json"
	"strings"

	"ai-subject-explorer-be/pkg/generator"
)

type mainMenuPayload struct {
	Categories   []string `json:"categories"`
	MaxMenuDepth int      `json:"max_menu_depth"`
}

type submenuPayload struct {
	Subtopics []string `json:"subtopics"`
}

type contentPayload struct {
	Content       string   `json:"content"`
	FurtherTopics []string `json:"further_topics"`
}

func parseMainMenu(response string) (*mainMenuPayload, error) {
	var payload mainMenuPayload
	if err := json.Unmarshal([]byte(extractJSON(response)), &payload); err != nil {
		return nil, generator.NewError(generator.KindBadResponse, "main menu response is not valid JSON", err)
	}
	return &payload, nil
}

func parseSubmenu(response string) (*submenuPayload, error) {
	var payload submenuPayload
	if err := json.Unmarshal([]byte(extractJSON(response)), &payload); err != nil {
		return nil, generator.NewError(generator.KindBadResponse, "submenu response is not valid JSON", err)
	}
	return &payload, nil
}

func parseContent(response string) (*contentPayload, error) {
	var payload contentPayload
	if err := json.Unmarshal([]byte(extractJSON(response)), &payload); err != nil {
		return nil, generator.NewError(generator.KindBadResponse, "content response is not valid JSON", err)
	}
	return &payload, nil
}

// extractJSON isolates the JSON object from a model response, stripping
// markdown fences and any chatter around the braces.
func extractJSON(response string) string {
	response = strings.TrimSpace(response)
	response = strings.TrimPrefix(response, "```json")
	response = strings.TrimPrefix(response, "```")
	response = strings.TrimSuffix(response, "```")

	startIdx := strings.Index(response, "{")
	endIdx := strings.LastIndex(response, "}")

	if startIdx == -1 || endIdx == -1 || endIdx <= startIdx {
		return response
	}

	return response[startIdx : endIdx+1]
}
