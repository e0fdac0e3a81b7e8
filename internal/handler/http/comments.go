package http

import (
	"encoding/json"
	"net/http"

	"github.com/doorhub/door-discovery/internal/logger"
	"github.com/doorhub/door-discovery/internal/utils"
	"github.com/doorhub/door-discovery/models"
	"github.com/go-chi/chi/v5"
)

// createComment attaches a comment to an existing door.
func (h *Handler) createComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	author, ok := utils.GetCurrentUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var request models.CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	comment, err := h.services.CommentService.AddComment(ctx, request.DoorID, request.Text, author)
	if err != nil {
		log.Err(err).Str("door_id", request.DoorID).Msg("comment creation ended with error")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, comment, http.StatusOK)
}

// listComments returns every comment attached to the door named in the path.
func (h *Handler) listComments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	doorID := chi.URLParam(r, "door_id")

	comments, err := h.services.CommentService.ListComments(ctx, doorID)
	if err != nil {
		log.Err(err).Str("door_id", doorID).Msg("comments listing ended with error")
		writeError(w, err)
		return
	}

	if comments == nil {
		comments = []models.Comment{}
	}

	utils.WriteJSON(w, comments, http.StatusOK)
}
