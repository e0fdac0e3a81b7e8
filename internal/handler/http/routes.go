package http

import (
	"net/http"

	"github.com/doorhub/door-discovery/internal/utils"
	"github.com/doorhub/door-discovery/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withCORS)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/", h.root)
		r.Post("/api/register", h.register)
		r.Post("/api/token", h.token)
	})

	// routes behind bearer-token authentication
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/users/me", h.usersMe)

		r.Post("/api/doors", h.createDoor)
		r.Get("/api/doors", h.listDoors)
		r.Get("/api/doors/{id}", h.getDoor)

		r.Post("/api/comments", h.createComment)
		r.Get("/api/comments/{door_id}", h.listComments)

		r.Get("/api/notifications", h.listNotifications)
		r.Post("/api/notifications/{id}/read", h.markNotificationRead)
	})

	return router
}

// root is an unauthenticated liveness probe for the API prefix.
func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.MessageResponse{Message: "Door Discovery API"}, http.StatusOK)
}
