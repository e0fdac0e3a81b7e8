package http

import (
	"errors"
	"net/http"

	"github.com/doorhub/door-discovery/internal/service"
	"github.com/doorhub/door-discovery/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidCategory:         http.StatusBadRequest,
	service.ErrInvalidImage:            http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	store.ErrEmailAlreadyExists:   http.StatusBadRequest,
	store.ErrNoUserWasFound:       http.StatusUnauthorized,
	store.ErrDoorNotFound:         http.StatusNotFound,
	store.ErrNotificationNotFound: http.StatusNotFound,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// errorDetailMap overrides the surfaced detail string for sentinels whose
// public API wording differs in casing from the error message itself.
var errorDetailMap = map[error]string{
	store.ErrDoorNotFound:         "Door not found",
	store.ErrNotificationNotFound: "Notification not found",
}

// writeError surfaces a failure to the caller with the human-readable detail
// string of the closest matching sentinel, or a generic 500 otherwise.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	detail := http.StatusText(status)

	for target := range errorStatusMap {
		if errors.Is(err, target) {
			detail = target.Error()
			if override, ok := errorDetailMap[target]; ok {
				detail = override
			}
			break
		}
	}

	http.Error(w, detail, status)
}
