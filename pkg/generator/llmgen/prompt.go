package llmgen

import (
	"fmt"
	"strings"

	"ai-subject-explorer-be/pkg/llm"
)

func mainMenuMessages(topic string) []llm.Message {
	var system strings.Builder
	system.WriteString(fmt.Sprintf("You are an assistant designing a hierarchical exploration menu for '%s'. ", topic))
	system.WriteString("Generate 3-7 broad categories covering the subject, and pick an appropriate ")
	system.WriteString("maximum menu depth between 2 and 4 based on how layered the subject is.")

	return []llm.Message{
		{Role: "system", Content: system.String()},
		{Role: "user", Content: "Return ONLY JSON with keys 'categories' (list of strings) and 'max_menu_depth' (integer)."},
	}
}

func submenuMessages(topic, category string) []llm.Message {
	var system strings.Builder
	system.WriteString(fmt.Sprintf("You are an assistant expanding a hierarchical exploration menu for '%s'. ", topic))
	system.WriteString(fmt.Sprintf("The user selected the category '%s'. ", category))
	system.WriteString("Generate 3-7 more specific subtopics for that category.")

	return []llm.Message{
		{Role: "system", Content: system.String()},
		{Role: "user", Content: "Return ONLY JSON with key 'subtopics' (list of strings)."},
	}
}

func contentMessages(topic string, path []string, selection string) []llm.Message {
	var system strings.Builder
	system.WriteString(fmt.Sprintf("You are an assistant writing educational content about '%s'. ", topic))
	if len(path) > 0 {
		system.WriteString(fmt.Sprintf("The user navigated: %s. ", strings.Join(path, " > ")))
	}
	system.WriteString(fmt.Sprintf("Write a clear, engaging markdown explainer about '%s', ", selection))
	system.WriteString("then suggest 3-5 narrower follow-up topics the user could explore next.")

	return []llm.Message{
		{Role: "system", Content: system.String()},
		{Role: "user", Content: "Return ONLY JSON with keys 'content' (markdown string) and 'further_topics' (list of strings)."},
	}
}
