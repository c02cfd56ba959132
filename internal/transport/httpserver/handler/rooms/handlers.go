package rooms

import (
	"context"

	"campus-portal-go/internal/domain/principal"
	roomsdomain "campus-portal-go/internal/domain/rooms"
	"campus-portal-go/pkg/logger"
)

type Service interface {
	ListStatuses(ctx context.Context, hour *int) ([]roomsdomain.Status, error)
	SetOverride(ctx context.Context, p principal.Principal, roomID, value string) (*roomsdomain.Status, error)
}

type Handlers struct {
	Rooms Service
	log   logger.Logger
}

func New(rooms Service, log logger.Logger) *Handlers {
	return &Handlers{
		Rooms: rooms,
		log:   log,
	}
}
