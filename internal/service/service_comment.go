package service

import (
	"context"
	"fmt"
	"time"

	"github.com/doorhub/door-discovery/internal/logger"
	"github.com/doorhub/door-discovery/internal/store"
	"github.com/doorhub/door-discovery/internal/utils"
	"github.com/doorhub/door-discovery/models"
)

// commentService is the concrete implementation of CommentService.
type commentService struct {
	commentRepository store.CommentRepository
	doorRepository    store.DoorRepository

	idGenerator *utils.UUIDGenerator
	logger      *logger.Logger
}

// NewCommentService constructs a CommentService wired to the given
// repositories.
func NewCommentService(commentRepository store.CommentRepository, doorRepository store.DoorRepository, logger *logger.Logger) CommentService {
	return &commentService{
		commentRepository: commentRepository,
		doorRepository:    doorRepository,
		idGenerator:       utils.NewUUIDGenerator(),
		logger:            logger,
	}
}

// AddComment attaches a comment to an existing door.
//
// The referenced door is looked up first; a missing door surfaces as
// store.ErrDoorNotFound and nothing is persisted. The author's current
// display name is denormalized onto the comment at creation time.
func (c *commentService) AddComment(ctx context.Context, doorID, text string, author models.User) (models.Comment, error) {
	log := logger.FromContext(ctx)

	if doorID == "" || text == "" {
		log.Error().Str("door_id", doorID).Msg("invalid comment data provided")
		return models.Comment{}, ErrInvalidDataProvided
	}

	if _, err := c.doorRepository.FindDoorByID(ctx, doorID); err != nil {
		log.Err(err).Str("door_id", doorID).Msg("comment rejected: door lookup failed")
		return models.Comment{}, fmt.Errorf("door lookup failed: %w", err)
	}

	comment := models.Comment{
		ID:        c.idGenerator.Generate(),
		DoorID:    doorID,
		UserID:    author.ID,
		UserName:  author.Name,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}

	created, err := c.commentRepository.CreateComment(ctx, comment)
	if err != nil {
		log.Err(err).Str("door_id", doorID).Msg("comment creation ended with error")
		return models.Comment{}, fmt.Errorf("comment creation ended with error: %w", err)
	}

	return created, nil
}

// ListComments returns every comment attached to the given door in creation
// order.
func (c *commentService) ListComments(ctx context.Context, doorID string) ([]models.Comment, error) {
	if doorID == "" {
		return nil, ErrInvalidDataProvided
	}

	comments, err := c.commentRepository.ListCommentsByDoor(ctx, doorID)
	if err != nil {
		return nil, fmt.Errorf("comments listing ended with error: %w", err)
	}

	return comments, nil
}
