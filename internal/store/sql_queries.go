package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (id, email, name, hashed_password, created_at)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id, email, name, hashed_password, created_at;`

	findUserByEmail = `SELECT id, email, name, hashed_password, created_at
    FROM users
    WHERE email = $1;`

	listUsers = `SELECT id, email, name, hashed_password, created_at
    FROM users;`

	createDoor = `INSERT INTO doors (id, title, description, place_name, history, category, latitude, longitude, user_id, user_name, image_data, created_at)
    VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6, $7, $8, $9, $10, $11, $12)
    RETURNING id, title, description, COALESCE(place_name, ''), COALESCE(history, ''), category, latitude, longitude, user_id, user_name, image_data, created_at;`

	findDoorByID = `SELECT id, title, description, COALESCE(place_name, ''), COALESCE(history, ''), category, latitude, longitude, user_id, user_name, image_data, created_at
    FROM doors
    WHERE id = $1;`

	createComment = `INSERT INTO comments (id, door_id, user_id, user_name, text, created_at)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING id, door_id, user_id, user_name, text, created_at;`

	listCommentsByDoor = `SELECT id, door_id, user_id, user_name, text, created_at
    FROM comments
    WHERE door_id = $1
    ORDER BY created_at;`

	createNotification = `INSERT INTO notifications (id, user_id, door_id, title, message, is_read, created_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING id, user_id, door_id, title, message, is_read, created_at;`
)

// psql is the shared squirrel statement builder configured for PostgreSQL
// positional placeholders ($1, $2, ...).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildListDoorsQuery builds the doors listing SELECT. A non-empty category
// adds a category filter; an empty one returns doors of all categories.
func buildListDoorsQuery(category string) (string, []any, error) {
	builder := psql.
		Select("id", "title", "description", "COALESCE(place_name, '')", "COALESCE(history, '')",
			"category", "latitude", "longitude", "user_id", "user_name", "image_data", "created_at").
		From("doors").
		OrderBy("created_at DESC")

	if category != "" {
		builder = builder.Where(sq.Eq{"category": category})
	}

	return builder.ToSql()
}

// buildListNotificationsQuery builds the notifications listing SELECT for a
// single recipient, newest first, bounded to limit rows.
func buildListNotificationsQuery(userID string, limit uint64) (string, []any, error) {
	return psql.
		Select("id", "user_id", "door_id", "title", "message", "is_read", "created_at").
		From("notifications").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		Limit(limit).
		ToSql()
}

// buildMarkReadQuery builds the UPDATE flipping a notification's read flag.
// The user_id predicate scopes the update to the caller's own notifications:
// someone else's notification matches zero rows, same as a nonexistent one.
func buildMarkReadQuery(notificationID, userID string) (string, []any, error) {
	return psql.
		Update("notifications").
		Set("is_read", true).
		Where(sq.Eq{"id": notificationID, "user_id": userID}).
		ToSql()
}
