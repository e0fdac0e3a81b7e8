package store

import (
	"context"
	"fmt"

	"github.com/doorhub/door-discovery/internal/logger"
	"github.com/doorhub/door-discovery/models"
	"github.com/jackc/pgerrcode"
)

// notificationRepository is the PostgreSQL-backed implementation of
// [NotificationRepository]. Notifications are created in bulk during the
// door fan-out and mutated only to flip the read flag.
type notificationRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewNotificationRepository constructs a [NotificationRepository] backed by
// the provided database connection and logger.
func NewNotificationRepository(db *DB, logger *logger.Logger) NotificationRepository {
	logger.Debug().Msg("creating notification repository")
	return &notificationRepository{
		db:     db,
		logger: logger,
	}
}

// CreateNotification persists a single notification and returns the
// canonical database representation.
func (r *notificationRepository) CreateNotification(ctx context.Context, notification models.Notification) (models.Notification, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createNotification,
		notification.ID, notification.UserID, notification.DoorID,
		notification.Title, notification.Message, notification.IsRead, notification.CreatedAt)

	var created models.Notification
	if err := row.Scan(&created.ID, &created.UserID, &created.DoorID, &created.Title, &created.Message, &created.IsRead, &created.CreatedAt); err != nil {
		log.Err(err).Str("func", "*notificationRepository.CreateNotification").Msg("error creating notification")
		return models.Notification{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return created, nil
}

// ListNotificationsByUser returns the recipient's notifications ordered by
// creation time descending, bounded to limit rows.
func (r *notificationRepository) ListNotificationsByUser(ctx context.Context, userID string, limit uint64) ([]models.Notification, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListNotificationsQuery(userID, limit)
	if err != nil {
		log.Err(err).Str("func", "*notificationRepository.ListNotificationsByUser").Msg("error building notifications query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*notificationRepository.ListNotificationsByUser").Msg("error querying notifications")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var notifications []models.Notification
	for rows.Next() {
		var notification models.Notification
		if err := rows.Scan(&notification.ID, &notification.UserID, &notification.DoorID,
			&notification.Title, &notification.Message, &notification.IsRead, &notification.CreatedAt); err != nil {
			log.Err(err).Str("func", "*notificationRepository.ListNotificationsByUser").Msg("error scanning notification rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		notifications = append(notifications, notification)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return notifications, nil
}

// MarkRead flips the read flag of the given notification, scoped to the
// calling user. Zero affected rows — whether the notification does not
// exist or belongs to someone else — yields [ErrNotificationNotFound], as
// does a notificationID that Postgres rejects as a malformed uuid literal.
// Marking an already-read notification matches the row again and succeeds.
func (r *notificationRepository) MarkRead(ctx context.Context, notificationID, userID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildMarkReadQuery(notificationID, userID)
	if err != nil {
		log.Err(err).Str("func", "*notificationRepository.MarkRead").Msg("error building mark-read query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if postgresError(err) == pgerrcode.InvalidTextRepresentation {
			return ErrNotificationNotFound
		}

		log.Err(err).Str("func", "*notificationRepository.MarkRead").Msg("error executing mark-read update")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrNotificationNotFound
	}

	return nil
}
