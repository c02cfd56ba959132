package handler

import (
	"campus-portal-go/internal/transport/httpserver/handler/announcements"
	"campus-portal-go/internal/transport/httpserver/handler/clubs"
	"campus-portal-go/internal/transport/httpserver/handler/common"
	"campus-portal-go/internal/transport/httpserver/handler/events"
	"campus-portal-go/internal/transport/httpserver/handler/notifications"
	"campus-portal-go/internal/transport/httpserver/handler/placements"
	"campus-portal-go/internal/transport/httpserver/handler/rooms"
	"campus-portal-go/internal/transport/httpserver/handler/todos"
	"campus-portal-go/pkg/logger"
)

// Services groups the domain services the HTTP surface calls.
type Services struct {
	Profiles      common.ProfileReader
	Client        common.ClientSettings
	Announcements announcements.Service
	Events        events.Service
	Clubs         clubs.Service
	Placements    placements.Service
	Todos         todos.Service
	Rooms         rooms.Service
	Notifications notifications.Service
}

type Handlers struct {
	Common        *common.Handlers
	Announcements *announcements.Handlers
	Events        *events.Handlers
	Clubs         *clubs.Handlers
	Placements    *placements.Handlers
	Todos         *todos.Handlers
	Rooms         *rooms.Handlers
	Notifications *notifications.Handlers
}

func New(services Services, log logger.Logger) *Handlers {
	return &Handlers{
		Common:        common.New(services.Profiles, services.Client, log),
		Announcements: announcements.New(services.Announcements, log),
		Events:        events.New(services.Events, log),
		Clubs:         clubs.New(services.Clubs, log),
		Placements:    placements.New(services.Placements, log),
		Todos:         todos.New(services.Todos, log),
		Rooms:         rooms.New(services.Rooms, log),
		Notifications: notifications.New(services.Notifications, log),
	}
}
