package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/doorhub/door-discovery/internal/logger"
	"github.com/doorhub/door-discovery/models"
	"github.com/jackc/pgerrcode"
)

func newTestNotificationRepo(t *testing.T) (*notificationRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &notificationRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

var notificationColumns = []string{"id", "user_id", "door_id", "title", "message", "is_read", "created_at"}

func TestCreateNotification_Success(t *testing.T) {
	repo, mock, db := newTestNotificationRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()
	notification := models.Notification{
		ID:        "n-1",
		UserID:    "u-2",
		DoorID:    "d-1",
		Title:     "New A Door Discovered!",
		Message:   "Alice discovered a door: Red Door",
		CreatedAt: now,
	}

	rows := sqlmock.NewRows(notificationColumns).
		AddRow(notification.ID, notification.UserID, notification.DoorID,
			notification.Title, notification.Message, false, now)

	mock.ExpectQuery("INSERT INTO notifications").
		WillReturnRows(rows)

	created, err := repo.CreateNotification(ctx, notification)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != "n-1" {
		t.Errorf("expected ID=n-1, got %s", created.ID)
	}
	if created.IsRead {
		t.Error("expected freshly created notification to be unread")
	}
}

func TestCreateNotification_ScanError(t *testing.T) {
	repo, mock, db := newTestNotificationRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id"}).AddRow("n-1")

	mock.ExpectQuery("INSERT INTO notifications").
		WillReturnRows(rows)

	_, err := repo.CreateNotification(ctx, models.Notification{ID: "n-1"})
	if !errors.Is(err, ErrScanningRow) {
		t.Fatalf("expected ErrScanningRow, got %v", err)
	}
}

func TestListNotificationsByUser_Success(t *testing.T) {
	repo, mock, db := newTestNotificationRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.NewRows(notificationColumns).
		AddRow("n-2", "u-1", "d-2", "New B Door Discovered!", "Bob discovered a door: Blue Door", false, now).
		AddRow("n-1", "u-1", "d-1", "New A Door Discovered!", "Alice discovered a door: Red Door", true, now.Add(-time.Hour))

	mock.ExpectQuery("SELECT id").
		WithArgs("u-1").
		WillReturnRows(rows)

	notifications, err := repo.ListNotificationsByUser(ctx, "u-1", 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(notifications) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(notifications))
	}
	if !notifications[1].IsRead {
		t.Error("expected second notification to be read")
	}
}

func TestListNotificationsByUser_QueryError(t *testing.T) {
	repo, mock, db := newTestNotificationRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id").
		WithArgs("u-1").
		WillReturnError(errors.New("db failure"))

	_, err := repo.ListNotificationsByUser(ctx, "u-1", 100)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestMarkRead_Success(t *testing.T) {
	repo, mock, db := newTestNotificationRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("UPDATE notifications").
		WithArgs(true, "n-1", "u-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.MarkRead(ctx, "n-1", "u-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestMarkRead_ZeroRows(t *testing.T) {
	repo, mock, db := newTestNotificationRepo(t)
	defer db.Close()

	ctx := context.Background()

	// A nonexistent notification and someone else's notification both match
	// zero rows; the repository cannot and must not tell them apart.
	mock.ExpectExec("UPDATE notifications").
		WithArgs(true, "n-foreign", "u-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.MarkRead(ctx, "n-foreign", "u-1")
	if !errors.Is(err, ErrNotificationNotFound) {
		t.Fatalf("expected ErrNotificationNotFound, got %v", err)
	}
}

func TestMarkRead_MalformedID(t *testing.T) {
	repo, mock, db := newTestNotificationRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("UPDATE notifications").
		WithArgs(true, "garbage", "u-1").
		WillReturnError(pgError(pgerrcode.InvalidTextRepresentation))

	err := repo.MarkRead(ctx, "garbage", "u-1")
	if !errors.Is(err, ErrNotificationNotFound) {
		t.Fatalf("expected ErrNotificationNotFound, got %v", err)
	}
}

func TestMarkRead_ExecError(t *testing.T) {
	repo, mock, db := newTestNotificationRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("UPDATE notifications").
		WillReturnError(errors.New("db failure"))

	err := repo.MarkRead(ctx, "n-1", "u-1")
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}
