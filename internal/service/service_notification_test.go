package service

import (
	"context"
	"testing"

	"github.com/doorhub/door-discovery/internal/logger"
	"github.com/doorhub/door-discovery/internal/store"
	"github.com/doorhub/door-discovery/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// ListNotifications
// ─────────────────────────────────────────────

// TestListNotifications verifies that the listing is scoped to the caller
// and bounded to the fixed page size.
func TestListNotifications(t *testing.T) {
	var requestedUser string
	var requestedLimit uint64
	notifications := &mockNotificationRepository{
		listNotificationsByUserFn: func(_ context.Context, userID string, limit uint64) ([]models.Notification, error) {
			requestedUser = userID
			requestedLimit = limit
			return []models.Notification{{ID: "n-1", UserID: userID}}, nil
		},
	}

	svc := NewNotificationService(notifications, logger.Nop())
	listed, err := svc.ListNotifications(context.Background(), alice)

	require.NoError(t, err)
	assert.Len(t, listed, 1)
	assert.Equal(t, alice.ID, requestedUser)
	assert.Equal(t, uint64(100), requestedLimit)
}

// ─────────────────────────────────────────────
// MarkRead
// ─────────────────────────────────────────────

// TestMarkRead_ScopedToCaller verifies that the update carries both the
// notification and the caller identifiers.
func TestMarkRead_ScopedToCaller(t *testing.T) {
	var gotNotification, gotUser string
	notifications := &mockNotificationRepository{
		markReadFn: func(_ context.Context, notificationID, userID string) error {
			gotNotification = notificationID
			gotUser = userID
			return nil
		},
	}

	svc := NewNotificationService(notifications, logger.Nop())
	err := svc.MarkRead(context.Background(), "n-1", alice)

	require.NoError(t, err)
	assert.Equal(t, "n-1", gotNotification)
	assert.Equal(t, alice.ID, gotUser)
}

// TestMarkRead_NotFound verifies that a foreign or nonexistent notification
// surfaces the repository's not-found sentinel.
func TestMarkRead_NotFound(t *testing.T) {
	notifications := &mockNotificationRepository{
		markReadFn: func(_ context.Context, _, _ string) error {
			return store.ErrNotificationNotFound
		},
	}

	svc := NewNotificationService(notifications, logger.Nop())
	err := svc.MarkRead(context.Background(), "n-foreign", alice)

	assert.ErrorIs(t, err, store.ErrNotificationNotFound)
}

// TestMarkRead_EmptyID verifies that a blank identifier is rejected before
// any repository call.
func TestMarkRead_EmptyID(t *testing.T) {
	repoCalled := false
	notifications := &mockNotificationRepository{
		markReadFn: func(_ context.Context, _, _ string) error {
			repoCalled = true
			return nil
		},
	}

	svc := NewNotificationService(notifications, logger.Nop())
	err := svc.MarkRead(context.Background(), "", alice)

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.False(t, repoCalled)
}
