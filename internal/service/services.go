package service

import (
	"github.com/doorhub/door-discovery/internal/config"
	"github.com/doorhub/door-discovery/internal/logger"
	"github.com/doorhub/door-discovery/internal/store"
)

// Services bundles every domain service exposed to the transport layer.
type Services struct {
	AuthService         AuthService
	DoorService         DoorService
	CommentService      CommentService
	NotificationService NotificationService
}

// NewServices wires all domain services to the given repositories and
// application configuration.
func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(storages.UserRepository, cfg, logger),
		DoorService: NewDoorService(
			storages.DoorRepository,
			storages.UserRepository,
			storages.NotificationRepository,
			logger,
		),
		CommentService:      NewCommentService(storages.CommentRepository, storages.DoorRepository, logger),
		NotificationService: NewNotificationService(storages.NotificationRepository, logger),
	}
}
