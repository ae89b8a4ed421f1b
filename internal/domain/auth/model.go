package auth

import "time"

// User is the authenticated account behind a session. The mock provider
// serves a single fixed account with caller-supplied email and name.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Session is the opaque proof of authentication. Consumers other than the
// provider only ever check presence.
type Session struct {
	Token     string    `json:"token"`
	User      User      `json:"user"`
	ExpiresAt time.Time `json:"expires_at"`
}
