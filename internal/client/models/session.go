package models

import "time"

// Session is the persisted "who is logged in" record for this installation.
// An empty Username means no session.
type Session struct {
	Username  string    `json:"username,omitempty"`
	ID        string    `json:"id,omitempty"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// Active reports whether s names a user.
func (s *Session) Active() bool {
	return s != nil && s.Username != ""
}
