package store

import (
	"context"
	"fmt"

	"github.com/doorhub/door-discovery/internal/logger"
	"github.com/doorhub/door-discovery/models"
	"github.com/jackc/pgerrcode"
)

// commentRepository is the PostgreSQL-backed implementation of
// [CommentRepository]. Comments are insert-only and listed in creation order.
type commentRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCommentRepository constructs a [CommentRepository] backed by the
// provided database connection and logger.
func NewCommentRepository(db *DB, logger *logger.Logger) CommentRepository {
	logger.Debug().Msg("creating comment repository")
	return &commentRepository{
		db:     db,
		logger: logger,
	}
}

// CreateComment persists a new comment and returns the canonical database
// representation. Door existence is validated at the service layer before
// this method is called; the foreign key on door_id is the last line of
// defence.
func (r *commentRepository) CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createComment,
		comment.ID, comment.DoorID, comment.UserID, comment.UserName, comment.Text, comment.CreatedAt)

	var created models.Comment
	if err := row.Scan(&created.ID, &created.DoorID, &created.UserID, &created.UserName, &created.Text, &created.CreatedAt); err != nil {
		log.Err(err).Str("func", "*commentRepository.CreateComment").Msg("error creating comment")
		return models.Comment{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return created, nil
}

// ListCommentsByDoor returns every comment attached to the given door in
// creation order. A doorID that Postgres rejects as a malformed uuid
// literal yields [ErrDoorNotFound], same as a well-formed unknown ID.
func (r *commentRepository) ListCommentsByDoor(ctx context.Context, doorID string) ([]models.Comment, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listCommentsByDoor, doorID)
	if err != nil {
		if postgresError(err) == pgerrcode.InvalidTextRepresentation {
			return nil, ErrDoorNotFound
		}

		log.Err(err).Str("func", "*commentRepository.ListCommentsByDoor").Msg("error querying comments")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var comments []models.Comment
	for rows.Next() {
		var comment models.Comment
		if err := rows.Scan(&comment.ID, &comment.DoorID, &comment.UserID, &comment.UserName, &comment.Text, &comment.CreatedAt); err != nil {
			log.Err(err).Str("func", "*commentRepository.ListCommentsByDoor").Msg("error scanning comment rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		comments = append(comments, comment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return comments, nil
}
