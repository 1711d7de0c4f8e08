// Package session implements the device-local account registry and session
// lifecycle: registration, login, logout, and startup session restore.
// All durable state lives in a securestore.Store; this package owns every
// write to it.
package session

import "strings"

// Account is one locally registered identity. Accounts are append-only:
// there is no edit or delete operation, and the record persists for the
// lifetime of the local registry. The JSON field names are part of the
// on-device format.
type Account struct {
	ID       string  `json:"id"`
	Email    string  `json:"email"`
	Name     string  `json:"name"`
	Password string  `json:"password"`
	Avatar   *string `json:"avatar"`
}

// User is the account snapshot handed to callers: everything except the
// password. This is what gets cached as the current user.
type User struct {
	ID     string  `json:"id"`
	Email  string  `json:"email"`
	Name   string  `json:"name"`
	Avatar *string `json:"avatar"`
}

// User returns the caller-facing snapshot of the account.
func (a Account) User() User {
	return User{ID: a.ID, Email: a.Email, Name: a.Name, Avatar: a.Avatar}
}

// Session binds a freshly minted token to the signed-in user. A new Session
// replaces the previous one wholesale on every login.
type Session struct {
	Token string
	User  User
}

// WeakPasswordError reports every strength rule the candidate password
// failed, in fixed rule order, so the caller can render a full checklist.
// Match with errors.As.
type WeakPasswordError struct {
	Failures []string
}

func (e *WeakPasswordError) Error() string {
	return "password does not meet requirements: " + strings.Join(e.Failures, ", ")
}
