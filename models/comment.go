package models

import "time"

// Comment is a free-text reply attached to an existing door.
// Comments are immutable once created.
type Comment struct {
	// ID is the unique identifier of the comment (UUID string).
	ID string `json:"id"`

	// DoorID references the door the comment belongs to. The referenced
	// door is validated to exist before the comment is persisted.
	DoorID string `json:"door_id"`

	// UserID is the identifier of the authoring user.
	UserID string `json:"user_id"`

	// UserName is a denormalized copy of the author's display name taken at
	// creation time.
	UserName string `json:"user_name"`

	// Text is the comment body.
	Text string `json:"text"`

	// CreatedAt is the timestamp when the comment was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Comment model.
func (c Comment) TableName() string {
	return "comments"
}
