package models

import "time"

// Door categories permitted by the API. Submissions with any other value
// are rejected before anything is persisted.
const (
	CategoryA = "A"
	CategoryB = "B"
)

// ValidCategory reports whether c is one of the two permitted door categories.
func ValidCategory(c string) bool {
	return c == CategoryA || c == CategoryB
}

// Location is a geographic point attached to a door.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Door is a user-submitted point-of-interest post: metadata, a geolocation
// and an embedded image. Doors are created once and never updated or deleted.
type Door struct {
	// ID is the unique identifier of the door (UUID string).
	ID string `json:"id"`

	// Title is the short headline of the discovery.
	Title string `json:"title"`

	// Description is the free-text body of the post.
	Description string `json:"description"`

	// PlaceName optionally names the place where the door was found.
	PlaceName string `json:"place_name,omitempty"`

	// History optionally carries background/history text for the door.
	History string `json:"history,omitempty"`

	// Category is one of CategoryA or CategoryB.
	Category string `json:"category"`

	// Location is the geographic point of the discovery.
	Location Location `json:"location"`

	// UserID is the identifier of the authoring user.
	UserID string `json:"user_id"`

	// UserName is a denormalized copy of the author's display name taken at
	// creation time. It is not re-synced if the user later changes name.
	UserName string `json:"user_name"`

	// ImageURL is the embedded image as a JPEG data URI
	// ("data:image/jpeg;base64,..."). Doors carry their own image inline;
	// there is no separate blob store.
	ImageURL string `json:"image_url"`

	// CreatedAt is the timestamp when the door was submitted.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Door model.
func (d Door) TableName() string {
	return "doors"
}
