package service

import (
	"context"

	"github.com/doorhub/door-discovery/models"
)

// AuthService handles account registration, credential verification and the
// JWT token lifecycle.
type AuthService interface {
	Register(ctx context.Context, email, name, password string) (models.User, error)
	Login(ctx context.Context, email, password string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// GetUserByEmail resolves a verified token subject back to a full user
	// record. Used by the auth middleware on every authenticated request.
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
}

// DoorService handles door submission (validation, image processing,
// persistence and notification fan-out) and door retrieval.
type DoorService interface {
	SubmitDoor(ctx context.Context, input models.Door, imageData []byte, author models.User) (models.Door, error)
	ListDoors(ctx context.Context, category string) ([]models.Door, error)
	GetDoor(ctx context.Context, doorID string) (models.Door, error)
}

// CommentService handles comment creation and listing.
type CommentService interface {
	AddComment(ctx context.Context, doorID, text string, author models.User) (models.Comment, error)
	ListComments(ctx context.Context, doorID string) ([]models.Comment, error)
}

// NotificationService handles notification queries and read
// acknowledgements.
type NotificationService interface {
	ListNotifications(ctx context.Context, user models.User) ([]models.Notification, error)
	MarkRead(ctx context.Context, notificationID string, user models.User) error
}
