package contract

import "ai-subject-explorer-be/pkg/store"

// SessionRepository owns the session-id -> session mapping. The in-memory
// implementation is the only one today; a bounded or persistent store can
// replace it without touching the navigation service.
type SessionRepository interface {
	Save(session *store.Session)
	Get(sessionID string) (*store.Session, bool)
	Delete(sessionID string)
}
