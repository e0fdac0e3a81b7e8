package service

import (
	"context"
	"fmt"
	"time"

	"github.com/doorhub/door-discovery/internal/imaging"
	"github.com/doorhub/door-discovery/internal/logger"
	"github.com/doorhub/door-discovery/internal/store"
	"github.com/doorhub/door-discovery/internal/utils"
	"github.com/doorhub/door-discovery/models"
)

// doorService is the concrete implementation of DoorService. Submitting a
// door validates the category, processes the uploaded image, persists the
// door and then fans out one notification per registered user other than
// the author.
type doorService struct {
	doorRepository         store.DoorRepository
	userRepository         store.UserRepository
	notificationRepository store.NotificationRepository

	idGenerator *utils.UUIDGenerator
	logger      *logger.Logger
}

// NewDoorService constructs a DoorService wired to the given repositories.
func NewDoorService(
	doorRepository store.DoorRepository,
	userRepository store.UserRepository,
	notificationRepository store.NotificationRepository,
	logger *logger.Logger,
) DoorService {
	return &doorService{
		doorRepository:         doorRepository,
		userRepository:         userRepository,
		notificationRepository: notificationRepository,
		idGenerator:            utils.NewUUIDGenerator(),
		logger:                 logger,
	}
}

// SubmitDoor validates and stores a new door post, then notifies all other
// users.
//
// Steps, in order:
//  1. Reject with ErrInvalidCategory unless the category is "A" or "B".
//  2. Decode imageData, scale it to the fixed storage width and re-encode
//     as a JPEG data URI; a decode failure yields ErrInvalidImage. Nothing
//     is persisted on failure.
//  3. Persist the door with a fresh identifier, the author's ID and current
//     display name, and the current timestamp.
//  4. Fan out notifications to every registered user except the author.
//
// Steps 3 and 4 are not wrapped in one transaction: a crash after the door
// write can leave a door with no notifications sent. Delivery is
// at-least-reasonable-effort, not exactly-once.
func (d *doorService) SubmitDoor(ctx context.Context, input models.Door, imageData []byte, author models.User) (models.Door, error) {
	log := logger.FromContext(ctx)

	if !models.ValidCategory(input.Category) {
		log.Error().Str("category", input.Category).Msg("invalid door category provided")
		return models.Door{}, ErrInvalidCategory
	}

	imageURL, err := imaging.JPEGDataURI(imageData)
	if err != nil {
		log.Err(err).Msg("uploaded image could not be processed")
		return models.Door{}, fmt.Errorf("%w: %w", ErrInvalidImage, err)
	}

	door := models.Door{
		ID:          d.idGenerator.Generate(),
		Title:       input.Title,
		Description: input.Description,
		PlaceName:   input.PlaceName,
		History:     input.History,
		Category:    input.Category,
		Location:    input.Location,
		UserID:      author.ID,
		UserName:    author.Name,
		ImageURL:    imageURL,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := d.doorRepository.CreateDoor(ctx, door)
	if err != nil {
		log.Err(err).Str("title", door.Title).Msg("door creation ended with error")
		return models.Door{}, fmt.Errorf("door creation ended with error: %w", err)
	}

	d.notifyUsers(ctx, created)

	return created, nil
}

// notifyUsers creates one notification per registered user other than the
// door's author, sequentially within the submitting request.
//
// The broadcast is unfiltered: despite the product intent of notifying
// nearby users, no geolocation filtering is applied, so every user receives
// a notification for every door created anywhere. Submission latency grows
// linearly with the user count.
//
// A failing insert is logged and the loop continues; recipients are not
// individually reported.
func (d *doorService) notifyUsers(ctx context.Context, door models.Door) {
	log := logger.FromContext(ctx)

	users, err := d.userRepository.ListUsers(ctx)
	if err != nil {
		log.Err(err).Str("door_id", door.ID).Msg("listing users for notification fan-out failed")
		return
	}

	for _, user := range users {
		if user.ID == door.UserID {
			continue
		}

		notification := models.Notification{
			ID:        d.idGenerator.Generate(),
			UserID:    user.ID,
			DoorID:    door.ID,
			Title:     fmt.Sprintf("New %s Door Discovered!", door.Category),
			Message:   fmt.Sprintf("%s discovered a door: %s", door.UserName, door.Title),
			IsRead:    false,
			CreatedAt: time.Now().UTC(),
		}

		if _, err := d.notificationRepository.CreateNotification(ctx, notification); err != nil {
			log.Err(err).
				Str("door_id", door.ID).
				Str("user_id", user.ID).
				Msg("notification creation failed, continuing fan-out")
		}
	}
}

// ListDoors returns doors, optionally restricted to a single category.
// An empty category returns doors of all categories.
func (d *doorService) ListDoors(ctx context.Context, category string) ([]models.Door, error) {
	if category != "" && !models.ValidCategory(category) {
		return nil, ErrInvalidCategory
	}

	doors, err := d.doorRepository.ListDoors(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("doors listing ended with error: %w", err)
	}

	return doors, nil
}

// GetDoor retrieves a single door by its identifier.
func (d *doorService) GetDoor(ctx context.Context, doorID string) (models.Door, error) {
	if doorID == "" {
		return models.Door{}, ErrInvalidDataProvided
	}

	door, err := d.doorRepository.FindDoorByID(ctx, doorID)
	if err != nil {
		return models.Door{}, fmt.Errorf("door search ended with error: %w", err)
	}

	return door, nil
}
