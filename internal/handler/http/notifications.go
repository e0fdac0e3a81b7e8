package http

import (
	"net/http"

	"github.com/doorhub/door-discovery/internal/logger"
	"github.com/doorhub/door-discovery/internal/utils"
	"github.com/doorhub/door-discovery/models"
	"github.com/go-chi/chi/v5"
)

// listNotifications returns the caller's notifications, newest first.
func (h *Handler) listNotifications(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetCurrentUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	notifications, err := h.services.NotificationService.ListNotifications(ctx, user)
	if err != nil {
		log.Err(err).Msg("notifications listing ended with error")
		writeError(w, err)
		return
	}

	if notifications == nil {
		notifications = []models.Notification{}
	}

	utils.WriteJSON(w, notifications, http.StatusOK)
}

// markNotificationRead acknowledges one of the caller's notifications.
// Another user's notification is reported as not found.
func (h *Handler) markNotificationRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetCurrentUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	notificationID := chi.URLParam(r, "id")

	if err := h.services.NotificationService.MarkRead(ctx, notificationID, user); err != nil {
		log.Err(err).Str("notification_id", notificationID).Msg("mark-read ended with error")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}
