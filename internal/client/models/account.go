// Package models defines the HealthMate domain records: accounts, the
// session user, reminders and settings. All of them round-trip through JSON
// because the durable store keeps serialized snapshots.
package models

// Account is a registered user in the local directory. Email is the identity
// and must be unique (case-sensitive exact match).
//
// PasswordHash holds a bcrypt hash, never the plaintext password. This is a
// deliberate hardening over the storage format of earlier versions; login
// semantics are still exact-match.
type Account struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
}

// User is the session snapshot of an Account: everything except the secret.
// It is held in memory while logged in and mirrored into the durable store
// so the session survives restarts.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// SessionUser derives the session snapshot from an account.
func (a Account) SessionUser() User {
	return User{ID: a.ID, Name: a.Name, Email: a.Email}
}
