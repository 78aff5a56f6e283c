package dto

const (
	MenuTypeSubmenu = "submenu"
	MenuTypeContent = "content"
)

type CreateSessionRequest struct {
	Topic string `json:"topic" validate:"required,min=1,max=200"`
}

type MenuSelectionRequest struct {
	SessionId string `json:"session_id" validate:"required"`
	Selection string `json:"selection" validate:"required"`
}

// SessionRequest is the body for endpoints that need only the session id.
type SessionRequest struct {
	SessionId string `json:"session_id" validate:"required"`
}

// MenuResponse is the single payload shape for every navigation operation:
// a submenu (menu items only) or content (markdown plus further topics).
type MenuResponse struct {
	Type         string   `json:"type"` // "submenu" | "content"
	MenuItems    []string `json:"menu_items"`
	Content      string   `json:"content,omitempty"`
	SessionId    string   `json:"session_id"`
	CurrentDepth int      `json:"current_depth"`
	MaxMenuDepth int      `json:"max_menu_depth"`
}

type ServiceInfoResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Status  string `json:"status"`
}
