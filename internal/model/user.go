package model

import "time"

// User is an admin account for the lead-review endpoints. Usernames
// are unique. PasswordHash holds a bcrypt hash; the plain password is
// never stored.
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}

// InsertUser carries registration input; the password is plain text on
// the way in and hashed before the record is stored.
type InsertUser struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RefreshToken is a long-lived session token held in the token store.
// Only the SHA-256 hash of the raw token is kept; the raw value goes
// back to the client once and is never persisted.
//
// Fields:
//  UserID    – owner of the token.
//  TokenHash – SHA-256 hex digest of the raw token.
//  ExpiresAt – expiration timestamp (UTC).
//  RevokedAt – when the token was revoked, nil while active.
type RefreshToken struct {
	UserID    int
	TokenHash string
	ExpiresAt time.Time
	RevokedAt *time.Time
}
