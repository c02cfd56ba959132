package httpserver

import (
	"net/http"

	"campus-portal-go/internal/config"
	"campus-portal-go/internal/transport/httpserver/handler"
	authmw "campus-portal-go/internal/transport/httpserver/middleware"
	"campus-portal-go/pkg/logger"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(cfg config.Config, handlers *handler.Handlers, profiles authmw.ProfileSaver, log logger.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(cfg.RequestTimeout))
	r.Use(authmw.NewCORS(cfg.CORSOrigins))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Common.Health)
		r.Get("/client-config", handlers.Common.ClientConfig)

		auth := authmw.NewJWTAuth(cfg.Auth, profiles, log)
		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware)

			r.Get("/auth/me", handlers.Common.AuthMe)

			r.Get("/announcements", handlers.Announcements.ListAnnouncements)
			r.Post("/announcements", handlers.Announcements.CreateAnnouncement)
			r.Delete("/announcements/{id}", handlers.Announcements.DeleteAnnouncement)

			r.Get("/events", handlers.Events.ListEvents)
			r.Post("/events", handlers.Events.CreateEvent)
			r.Delete("/events/{id}", handlers.Events.DeleteEvent)
			r.Post("/events/{id}/rsvp", handlers.Events.ToggleRSVP)

			r.Get("/clubs", handlers.Clubs.ListClubs)
			r.Post("/clubs", handlers.Clubs.CreateClub)
			r.Delete("/clubs/{id}", handlers.Clubs.DeleteClub)
			r.Post("/clubs/{id}/membership", handlers.Clubs.ToggleMembership)

			r.Get("/placements", handlers.Placements.ListPlacements)
			r.Post("/placements", handlers.Placements.CreatePlacement)
			r.Delete("/placements/{id}", handlers.Placements.DeletePlacement)
			r.Post("/placements/{id}/application", handlers.Placements.ToggleApplication)

			r.Get("/todos", handlers.Todos.ListTodos)
			r.Post("/todos", handlers.Todos.CreateTodo)
			r.Patch("/todos/{id}", handlers.Todos.UpdateTodo)
			r.Delete("/todos/{id}", handlers.Todos.DeleteTodo)

			r.Get("/rooms", handlers.Rooms.ListRooms)
			r.Put("/rooms/{id}/status", handlers.Rooms.SetRoomStatus)

			r.Get("/notifications", handlers.Notifications.ListNotifications)
			r.Post("/notifications/read-all", handlers.Notifications.MarkAllRead)
			r.Post("/notifications/{id}/read", handlers.Notifications.MarkRead)
		})
	})

	return r
}
