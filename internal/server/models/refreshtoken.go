package models

import "time"

// RefreshToken is a single-use opaque token bound to a user and to the
// jti of the access token issued with it.
type RefreshToken struct {
	ID        string
	UserID    string
	Token     string
	JwtID     string
	Used      bool
	Revoked   bool
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Expired reports whether the token is past its expiry at now.
func (t *RefreshToken) Expired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}
