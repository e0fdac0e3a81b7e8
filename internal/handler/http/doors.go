package http

import (
	"io"
	"net/http"
	"strconv"

	"github.com/doorhub/door-discovery/internal/logger"
	"github.com/doorhub/door-discovery/internal/utils"
	"github.com/doorhub/door-discovery/models"
	"github.com/go-chi/chi/v5"
)

// maxDoorFormMemory bounds how much of a multipart door submission is held
// in memory before spilling to disk.
const maxDoorFormMemory = 32 << 20 // 32 MiB

// createDoor accepts a multipart form carrying the door metadata and the
// image file, and hands both to the door service.
func (h *Handler) createDoor(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	author, ok := utils.GetCurrentUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(maxDoorFormMemory); err != nil {
		log.Err(err).Msg("invalid multipart form was passed")
		http.Error(w, "invalid multipart form was passed", http.StatusBadRequest)
		return
	}

	latitude, latErr := strconv.ParseFloat(r.PostFormValue("latitude"), 64)
	longitude, lonErr := strconv.ParseFloat(r.PostFormValue("longitude"), 64)
	if latErr != nil || lonErr != nil {
		log.Error().
			Str("latitude", r.PostFormValue("latitude")).
			Str("longitude", r.PostFormValue("longitude")).
			Msg("invalid coordinates provided")
		http.Error(w, "invalid coordinates provided", http.StatusBadRequest)
		return
	}

	input := models.Door{
		Title:       r.PostFormValue("title"),
		Description: r.PostFormValue("description"),
		PlaceName:   r.PostFormValue("place_name"),
		History:     r.PostFormValue("history"),
		Category:    r.PostFormValue("category"),
		Location: models.Location{
			Latitude:  latitude,
			Longitude: longitude,
		},
	}

	if input.Title == "" || input.Description == "" {
		log.Error().Msg("missing required door fields")
		http.Error(w, "title and description are required", http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		log.Err(err).Msg("missing image file in door submission")
		http.Error(w, "image file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	imageData, err := io.ReadAll(file)
	if err != nil {
		log.Err(err).Msg("error reading uploaded image")
		http.Error(w, "error reading uploaded image", http.StatusBadRequest)
		return
	}

	door, err := h.services.DoorService.SubmitDoor(ctx, input, imageData, author)
	if err != nil {
		log.Err(err).Str("title", input.Title).Msg("door submission ended with error")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, door, http.StatusOK)
}

// listDoors returns doors of every category, or only those matching the
// optional ?category= query parameter.
func (h *Handler) listDoors(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	category := r.URL.Query().Get("category")

	doors, err := h.services.DoorService.ListDoors(ctx, category)
	if err != nil {
		log.Err(err).Str("category", category).Msg("doors listing ended with error")
		writeError(w, err)
		return
	}

	if doors == nil {
		doors = []models.Door{}
	}

	utils.WriteJSON(w, doors, http.StatusOK)
}

// getDoor returns a single door by its path identifier.
func (h *Handler) getDoor(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	doorID := chi.URLParam(r, "id")

	door, err := h.services.DoorService.GetDoor(ctx, doorID)
	if err != nil {
		log.Err(err).Str("door_id", doorID).Msg("door lookup ended with error")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, door, http.StatusOK)
}
