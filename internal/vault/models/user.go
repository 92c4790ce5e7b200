// Package models defines the records persisted by the vault.
package models

import "time"

// User is a registered account. Email is the unique identity key; Password
// is an opaque credential stored exactly as given.
type User struct {
	Email     string
	Password  string
	CreatedAt time.Time
}

// Session carries the identity of the logged-in user. The zero value means
// nobody is logged in.
type Session struct {
	Email string
}

// Valid reports whether the session names a user.
func (s Session) Valid() bool { return s.Email != "" }
