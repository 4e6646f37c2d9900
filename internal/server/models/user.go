// Package models defines server-side data models persisted in the database.
package models

import "time"

// User is a registered account. PasswordHash has the form "<base64 key>.<salt>".
type User struct {
	ID             string
	Email          string
	Name           string
	PhoneNumber    string
	PasswordHash   string
	Salt           string
	Role           string
	IsActive       bool
	EmailConfirmed bool
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}
