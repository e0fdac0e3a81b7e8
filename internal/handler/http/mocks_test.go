package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/doorhub/door-discovery/internal/logger"
	"github.com/doorhub/door-discovery/internal/service"
	"github.com/doorhub/door-discovery/internal/utils"
	"github.com/doorhub/door-discovery/models"
)

// ─────────────────────────────────────────────
// Mock: service.AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerFn       func(ctx context.Context, email, name, password string) (models.User, error)
	loginFn          func(ctx context.Context, email, password string) (models.User, error)
	createTokenFn    func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn     func(ctx context.Context, tokenString string) (models.Token, error)
	getUserByEmailFn func(ctx context.Context, email string) (models.User, error)
}

func (m *mockAuthService) Register(ctx context.Context, email, name, password string) (models.User, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, email, name, password)
	}
	return models.User{}, nil
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (models.User, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, email, password)
	}
	return models.User{}, nil
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, user)
	}
	return models.Token{}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	return models.Token{}, nil
}

func (m *mockAuthService) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.getUserByEmailFn != nil {
		return m.getUserByEmailFn(ctx, email)
	}
	return models.User{}, nil
}

// ─────────────────────────────────────────────
// Mock: service.DoorService
// ─────────────────────────────────────────────

type mockDoorService struct {
	submitDoorFn func(ctx context.Context, input models.Door, imageData []byte, author models.User) (models.Door, error)
	listDoorsFn  func(ctx context.Context, category string) ([]models.Door, error)
	getDoorFn    func(ctx context.Context, doorID string) (models.Door, error)
}

func (m *mockDoorService) SubmitDoor(ctx context.Context, input models.Door, imageData []byte, author models.User) (models.Door, error) {
	if m.submitDoorFn != nil {
		return m.submitDoorFn(ctx, input, imageData, author)
	}
	return input, nil
}

func (m *mockDoorService) ListDoors(ctx context.Context, category string) ([]models.Door, error) {
	if m.listDoorsFn != nil {
		return m.listDoorsFn(ctx, category)
	}
	return nil, nil
}

func (m *mockDoorService) GetDoor(ctx context.Context, doorID string) (models.Door, error) {
	if m.getDoorFn != nil {
		return m.getDoorFn(ctx, doorID)
	}
	return models.Door{}, nil
}

// ─────────────────────────────────────────────
// Mock: service.CommentService
// ─────────────────────────────────────────────

type mockCommentService struct {
	addCommentFn   func(ctx context.Context, doorID, text string, author models.User) (models.Comment, error)
	listCommentsFn func(ctx context.Context, doorID string) ([]models.Comment, error)
}

func (m *mockCommentService) AddComment(ctx context.Context, doorID, text string, author models.User) (models.Comment, error) {
	if m.addCommentFn != nil {
		return m.addCommentFn(ctx, doorID, text, author)
	}
	return models.Comment{}, nil
}

func (m *mockCommentService) ListComments(ctx context.Context, doorID string) ([]models.Comment, error) {
	if m.listCommentsFn != nil {
		return m.listCommentsFn(ctx, doorID)
	}
	return nil, nil
}

// ─────────────────────────────────────────────
// Mock: service.NotificationService
// ─────────────────────────────────────────────

type mockNotificationService struct {
	listNotificationsFn func(ctx context.Context, user models.User) ([]models.Notification, error)
	markReadFn          func(ctx context.Context, notificationID string, user models.User) error
}

func (m *mockNotificationService) ListNotifications(ctx context.Context, user models.User) ([]models.Notification, error) {
	if m.listNotificationsFn != nil {
		return m.listNotificationsFn(ctx, user)
	}
	return nil, nil
}

func (m *mockNotificationService) MarkRead(ctx context.Context, notificationID string, user models.User) error {
	if m.markReadFn != nil {
		return m.markReadFn(ctx, notificationID, user)
	}
	return nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler with the given service mocks; nil mocks
// stay nil and will panic if an unexpected service is hit.
func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()
	return NewHandler(svcs, logger.Nop())
}

// testUser is the authenticated caller fixture used across handler tests.
var testUser = models.User{ID: "u-1", Email: "alice@example.com", Name: "Alice"}

// withUser stores the fixture user in the request context the way the auth
// middleware would.
func withUser(r *http.Request, user models.User) *http.Request {
	ctx := context.WithValue(r.Context(), utils.CurrentUserCtxKey, user)
	return r.WithContext(ctx)
}
