package models

import "time"

// User represents a registered account. The email doubles as the login key
// and is unique across the user store.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the unique identifier of the user (UUID string).
	ID string `json:"id"`

	// Email is the unique address used as the login key and as the JWT
	// subject claim.
	Email string `json:"email"`

	// Name is the display name of the user. It is denormalized onto doors
	// and comments at creation time and never re-synced afterwards.
	Name string `json:"name"`

	// HashedPassword is the bcrypt hash of the user's password.
	// The plaintext is never persisted and the hash is never serialized.
	HashedPassword string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
