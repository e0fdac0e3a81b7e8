package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new
	// user fails because a user with the same email already exists.
	ErrEmailAlreadyExists = errors.New("email already registered")

	// ErrNoUserWasFound is returned when a lookup by email or ID matches no
	// user record.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrDoorNotFound is returned when a query targets a door that does not
	// exist in the database.
	ErrDoorNotFound = errors.New("door not found")

	// ErrNotificationNotFound is returned when an update targets a
	// notification that either does not exist or is owned by a different
	// user. The two cases are deliberately indistinguishable so that one
	// user cannot probe for another user's notification IDs.
	ErrNotificationNotFound = errors.New("notification not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
