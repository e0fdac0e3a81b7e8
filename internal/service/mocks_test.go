package service

import (
	"context"

	"github.com/doorhub/door-discovery/models"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createUserFn      func(ctx context.Context, user models.User) (models.User, error)
	findUserByEmailFn func(ctx context.Context, email string) (models.User, error)
	listUsersFn       func(ctx context.Context) ([]models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findUserByEmailFn != nil {
		return m.findUserByEmailFn(ctx, email)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	if m.listUsersFn != nil {
		return m.listUsersFn(ctx)
	}
	return nil, nil
}

// ─────────────────────────────────────────────
// Mock: store.DoorRepository
// ─────────────────────────────────────────────

type mockDoorRepository struct {
	createDoorFn   func(ctx context.Context, door models.Door) (models.Door, error)
	findDoorByIDFn func(ctx context.Context, doorID string) (models.Door, error)
	listDoorsFn    func(ctx context.Context, category string) ([]models.Door, error)
}

func (m *mockDoorRepository) CreateDoor(ctx context.Context, door models.Door) (models.Door, error) {
	if m.createDoorFn != nil {
		return m.createDoorFn(ctx, door)
	}
	return door, nil
}

func (m *mockDoorRepository) FindDoorByID(ctx context.Context, doorID string) (models.Door, error) {
	if m.findDoorByIDFn != nil {
		return m.findDoorByIDFn(ctx, doorID)
	}
	return models.Door{}, nil
}

func (m *mockDoorRepository) ListDoors(ctx context.Context, category string) ([]models.Door, error) {
	if m.listDoorsFn != nil {
		return m.listDoorsFn(ctx, category)
	}
	return nil, nil
}

// ─────────────────────────────────────────────
// Mock: store.CommentRepository
// ─────────────────────────────────────────────

type mockCommentRepository struct {
	createCommentFn      func(ctx context.Context, comment models.Comment) (models.Comment, error)
	listCommentsByDoorFn func(ctx context.Context, doorID string) ([]models.Comment, error)
}

func (m *mockCommentRepository) CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	if m.createCommentFn != nil {
		return m.createCommentFn(ctx, comment)
	}
	return comment, nil
}

func (m *mockCommentRepository) ListCommentsByDoor(ctx context.Context, doorID string) ([]models.Comment, error) {
	if m.listCommentsByDoorFn != nil {
		return m.listCommentsByDoorFn(ctx, doorID)
	}
	return nil, nil
}

// ─────────────────────────────────────────────
// Mock: store.NotificationRepository
// ─────────────────────────────────────────────

type mockNotificationRepository struct {
	createNotificationFn      func(ctx context.Context, notification models.Notification) (models.Notification, error)
	listNotificationsByUserFn func(ctx context.Context, userID string, limit uint64) ([]models.Notification, error)
	markReadFn                func(ctx context.Context, notificationID, userID string) error
}

func (m *mockNotificationRepository) CreateNotification(ctx context.Context, notification models.Notification) (models.Notification, error) {
	if m.createNotificationFn != nil {
		return m.createNotificationFn(ctx, notification)
	}
	return notification, nil
}

func (m *mockNotificationRepository) ListNotificationsByUser(ctx context.Context, userID string, limit uint64) ([]models.Notification, error) {
	if m.listNotificationsByUserFn != nil {
		return m.listNotificationsByUserFn(ctx, userID, limit)
	}
	return nil, nil
}

func (m *mockNotificationRepository) MarkRead(ctx context.Context, notificationID, userID string) error {
	if m.markReadFn != nil {
		return m.markReadFn(ctx, notificationID, userID)
	}
	return nil
}
