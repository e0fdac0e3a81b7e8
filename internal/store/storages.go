package store

import "github.com/doorhub/door-discovery/internal/logger"

// Storages bundles every repository backed by the shared database
// connection. It is constructed once at process start and handed to the
// service layer.
type Storages struct {
	UserRepository         UserRepository
	DoorRepository         DoorRepository
	CommentRepository      CommentRepository
	NotificationRepository NotificationRepository
}

// NewStorages wires all repositories to the given database connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:         NewUserRepository(db, logger),
		DoorRepository:         NewDoorRepository(db, logger),
		CommentRepository:      NewCommentRepository(db, logger),
		NotificationRepository: NewNotificationRepository(db, logger),
	}
}
