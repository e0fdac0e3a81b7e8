package service

import (
	"context"
	"fmt"

	"github.com/doorhub/door-discovery/internal/logger"
	"github.com/doorhub/door-discovery/internal/store"
	"github.com/doorhub/door-discovery/models"
)

// notificationPageSize bounds how many notifications a single listing call
// returns.
const notificationPageSize = 100

// notificationService is the concrete implementation of NotificationService.
type notificationService struct {
	notificationRepository store.NotificationRepository
	logger                 *logger.Logger
}

// NewNotificationService constructs a NotificationService wired to the
// given repository.
func NewNotificationService(notificationRepository store.NotificationRepository, logger *logger.Logger) NotificationService {
	return &notificationService{
		notificationRepository: notificationRepository,
		logger:                 logger,
	}
}

// ListNotifications returns the caller's notifications, newest first,
// capped at the fixed page size.
func (n *notificationService) ListNotifications(ctx context.Context, user models.User) ([]models.Notification, error) {
	notifications, err := n.notificationRepository.ListNotificationsByUser(ctx, user.ID, notificationPageSize)
	if err != nil {
		return nil, fmt.Errorf("notifications listing ended with error: %w", err)
	}

	return notifications, nil
}

// MarkRead flags the given notification as read, scoped to notifications
// owned by the caller. A notification owned by someone else is reported as
// not found, same as a nonexistent one. The call is idempotent: repeating
// it on an already-read notification still succeeds.
func (n *notificationService) MarkRead(ctx context.Context, notificationID string, user models.User) error {
	log := logger.FromContext(ctx)

	if notificationID == "" {
		return ErrInvalidDataProvided
	}

	if err := n.notificationRepository.MarkRead(ctx, notificationID, user.ID); err != nil {
		log.Err(err).Str("notification_id", notificationID).Msg("mark-read ended with error")
		return fmt.Errorf("mark-read ended with error: %w", err)
	}

	return nil
}
