package models

import "time"

// Notification is created in bulk at door-creation time: one per existing
// user other than the door's author. The only mutation ever applied is
// flipping the read flag.
type Notification struct {
	// ID is the unique identifier of the notification (UUID string).
	ID string `json:"id"`

	// UserID is the recipient of the notification.
	UserID string `json:"user_id"`

	// DoorID references the door that triggered the notification.
	DoorID string `json:"door_id"`

	// Title is the short notification headline.
	Title string `json:"title"`

	// Message is the notification body.
	Message string `json:"message"`

	// IsRead reports whether the recipient has acknowledged the
	// notification.
	IsRead bool `json:"is_read"`

	// CreatedAt is the timestamp when the notification was created.
	// Listings are ordered by this field, newest first.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Notification model.
func (n Notification) TableName() string {
	return "notifications"
}
