package models

// RegisterRequest is the JSON body accepted by POST /api/register.
type RegisterRequest struct {
	// Email is the address the account will be registered under.
	// Must be unique across all users.
	Email string `json:"email"`

	// Name is the display name of the new user.
	Name string `json:"name"`

	// Password is the plaintext password. It is bcrypt-hashed before
	// storage and never persisted as-is.
	Password string `json:"password"`
}

// CommentRequest is the JSON body accepted by POST /api/comments.
type CommentRequest struct {
	// Text is the comment body.
	Text string `json:"text"`

	// DoorID references the door the comment is attached to.
	DoorID string `json:"door_id"`
}
