package dialogue

import "time"

// Session tracks one user's progress through an intake workflow. It lives for
// the process lifetime unless the user resets, which drops the whole record.
type Session struct {
	UserID    string    `json:"userId"`
	State     State     `json:"state"`
	Language  string    `json:"language"`
	Service   Service   `json:"service"`
	Data      *FormData `json:"data"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewSession returns a fresh session positioned at the greeting.
func NewSession(userID, language string) *Session {
	return &Session{
		UserID:    userID,
		State:     StateGreeting,
		Language:  language,
		Service:   ServiceUnset,
		Data:      &FormData{},
		CreatedAt: time.Now().UTC(),
	}
}
