package generator

import (
	"context"
	"fmt"
	"strings"
)

// MainMenu is the creation-time result: the root categories plus the depth
// at which the exploration switches from submenus to narrative content.
type MainMenu struct {
	Categories   []string
	MaxMenuDepth int
}

// Content is a content-tier result: narrative markdown plus the
// further-topics the user may keep exploring.
type Content struct {
	Markdown      string
	FurtherTopics []string
}

// ContentGenerator defines the contract for any menu/content backend.
// All three methods must return non-empty, validated results; empty output
// is reported as a KindBadResponse error.
type ContentGenerator interface {
	// MainMenu produces the root categories for a topic and picks the menu depth.
	MainMenu(ctx context.Context, topic string) (*MainMenu, error)

	// Submenu produces the subcategories for one selected category.
	Submenu(ctx context.Context, topic, category string) ([]string, error)

	// Content produces markdown for the selection plus further topics. The
	// path is the full navigation history (topic first) for context.
	Content(ctx context.Context, topic string, path []string, selection string) (*Content, error)
}

// Kind classifies a generator failure so the caller can map it to a
// status code and decide retryability once, at the boundary.
type Kind int

const (
	KindUnavailable Kind = iota // no backend configured / service down
	KindAuth                    // rejected credentials
	KindRateLimited             // retryable with backoff
	KindConnection              // network failure or timeout, retryable
	KindBadResponse             // malformed or empty model output
	KindAPI                     // backend returned an application error
)

func (k Kind) String() string {
	switch k {
	case KindUnavailable:
		return "unavailable"
	case KindAuth:
		return "auth"
	case KindRateLimited:
		return "rate_limited"
	case KindConnection:
		return "connection"
	case KindBadResponse:
		return "bad_response"
	default:
		return "api"
	}
}

// Error is a classified generator failure.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("generator %s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("generator %s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewError(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// NormalizeItems trims every item, drops blanks, and removes duplicates
// while preserving order. Menu items presented to the user must come out of
// this exact filter so selection matching is verbatim.
func NormalizeItems(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed == "" {
			continue
		}
		if _, dup := seen[trimmed]; dup {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}
	return out
}
