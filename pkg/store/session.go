package store

import "sync"

// HistoryKind tags an entry in the navigation history.
type HistoryKind string

const (
	HistoryTopic     HistoryKind = "topic"
	HistorySelection HistoryKind = "menu_selection"
)

// HistoryEntry is one step of the navigation path: the original topic
// (always first, exactly once) or a forward menu selection.
type HistoryEntry struct {
	Kind HistoryKind `json:"kind"`
	Text string      `json:"text"`
}

func TopicEntry(topic string) HistoryEntry {
	return HistoryEntry{Kind: HistoryTopic, Text: topic}
}

func SelectionEntry(selection string) HistoryEntry {
	return HistoryEntry{Kind: HistorySelection, Text: selection}
}

// Session represents one user's exploration state in memory
type Session struct {
	ID    string `json:"id"`
	Topic string `json:"topic"` // immutable after creation

	// MaxMenuDepth is fixed at creation; once CurrentDepth reaches it the
	// session switches from submenus to generated content.
	MaxMenuDepth int `json:"max_menu_depth"`
	CurrentDepth int `json:"current_depth"` // 0 = root menu

	// CurrentMenu holds the options the user may select from right now:
	// submenu categories, or further-topics when content is shown.
	CurrentMenu []string `json:"current_menu"`

	// LastContent is the markdown shown at the content tier; empty while a
	// plain submenu is shown (CurrentDepth < MaxMenuDepth).
	LastContent string `json:"last_content,omitempty"`

	History []HistoryEntry `json:"history"`

	// MenuByDepth remembers the menu shown at each depth so going back and
	// returning to the root never re-invokes the generator.
	MenuByDepth map[int][]string `json:"menu_by_depth"`

	mu sync.Mutex
}

// Lock serializes read-modify-write cycles on this session. Operations on
// other sessions are unaffected.
func (s *Session) Lock() { s.mu.Lock() }

func (s *Session) Unlock() { s.mu.Unlock() }

// NavigationPath returns the topic plus every forward selection, in order.
func (s *Session) NavigationPath() []string {
	path := make([]string, 0, len(s.History))
	for _, entry := range s.History {
		path = append(path, entry.Text)
	}
	return path
}

// SelectionCount counts forward selections taken; it equals CurrentDepth
// whenever the session state is consistent.
func (s *Session) SelectionCount() int {
	n := 0
	for _, entry := range s.History {
		if entry.Kind == HistorySelection {
			n++
		}
	}
	return n
}
