package model

import "time"

// SessionRequest opens an operator session.
type SessionRequest struct {
	Passphrase string `json:"passphrase"`
}

// SessionResponse carries the bearer token of a new session.
type SessionResponse struct {
	Token     string    `json:"token"`
	SessionID string    `json:"session_id"`
	ExpiresAt time.Time `json:"expires_at"`
}
