package store

import (
	"context"

	"github.com/doorhub/door-discovery/models"
)

// UserRepository persists user identities and their salted password hashes.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// ListUsers returns every registered user. The notification fan-out
	// enumerates this list on each door submission.
	ListUsers(ctx context.Context) ([]models.User, error)
}

// DoorRepository persists door posts with their embedded images.
type DoorRepository interface {
	CreateDoor(ctx context.Context, door models.Door) (models.Door, error)
	FindDoorByID(ctx context.Context, doorID string) (models.Door, error)

	// ListDoors returns doors, optionally restricted to a single category.
	// An empty category returns doors of all categories.
	ListDoors(ctx context.Context, category string) ([]models.Door, error)
}

// CommentRepository persists comments attached to doors.
type CommentRepository interface {
	CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error)
	ListCommentsByDoor(ctx context.Context, doorID string) ([]models.Comment, error)
}

// NotificationRepository persists notifications and their read flags.
type NotificationRepository interface {
	CreateNotification(ctx context.Context, notification models.Notification) (models.Notification, error)

	// ListNotificationsByUser returns the recipient's notifications ordered
	// newest first, bounded to the given limit.
	ListNotificationsByUser(ctx context.Context, userID string, limit uint64) ([]models.Notification, error)

	// MarkRead flips the read flag of the notification owned by userID.
	// A notification owned by someone else is reported as not found.
	MarkRead(ctx context.Context, notificationID, userID string) error
}
