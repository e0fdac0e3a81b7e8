package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/doorhub/door-discovery/internal/logger"
	"github.com/doorhub/door-discovery/models"
	"github.com/jackc/pgerrcode"
)

// doorRepository is the PostgreSQL-backed implementation of [DoorRepository].
// Doors are insert-only: records are never updated or deleted once created.
type doorRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewDoorRepository constructs a [DoorRepository] backed by the provided
// database connection and logger.
func NewDoorRepository(db *DB, logger *logger.Logger) DoorRepository {
	logger.Debug().Msg("creating door repository")
	return &doorRepository{
		db:     db,
		logger: logger,
	}
}

// CreateDoor persists a new door record, embedded image included, and
// returns the canonical database representation.
func (r *doorRepository) CreateDoor(ctx context.Context, door models.Door) (models.Door, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createDoor,
		door.ID, door.Title, door.Description, door.PlaceName, door.History, door.Category,
		door.Location.Latitude, door.Location.Longitude, door.UserID, door.UserName, door.ImageURL, door.CreatedAt)

	created, err := scanDoor(row)
	if err != nil {
		log.Err(err).Str("func", "*doorRepository.CreateDoor").Msg("error creating door")
		return models.Door{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return created, nil
}

// FindDoorByID retrieves a single door by its identifier.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrDoorNotFound].
//   - Postgres rejecting doorID as a malformed uuid literal →
//     [ErrDoorNotFound], so an arbitrary string behaves like an unknown ID.
//   - Any other failure → wrapped as "unexpected DB error".
func (r *doorRepository) FindDoorByID(ctx context.Context, doorID string) (models.Door, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findDoorByID, doorID)

	found, err := scanDoor(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Door{}, ErrDoorNotFound
		}
		if postgresError(err) == pgerrcode.InvalidTextRepresentation {
			return models.Door{}, ErrDoorNotFound
		}

		log.Err(err).Str("func", "*doorRepository.FindDoorByID").Msg("error scanning door row")
		return models.Door{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// ListDoors returns doors ordered newest first. A non-empty category
// restricts the result to that category; an empty one returns everything.
func (r *doorRepository) ListDoors(ctx context.Context, category string) ([]models.Door, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListDoorsQuery(category)
	if err != nil {
		log.Err(err).Str("func", "*doorRepository.ListDoors").Msg("error building doors query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*doorRepository.ListDoors").Msg("error querying doors")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var doors []models.Door
	for rows.Next() {
		door, err := scanDoor(rows)
		if err != nil {
			log.Err(err).Str("func", "*doorRepository.ListDoors").Msg("error scanning door rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		doors = append(doors, door)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return doors, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows, letting single-row
// and multi-row door reads share one scan routine.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanDoor(row rowScanner) (models.Door, error) {
	var door models.Door
	err := row.Scan(&door.ID, &door.Title, &door.Description, &door.PlaceName, &door.History, &door.Category,
		&door.Location.Latitude, &door.Location.Longitude, &door.UserID, &door.UserName, &door.ImageURL, &door.CreatedAt)
	if err != nil {
		return models.Door{}, err
	}

	return door, nil
}
