package events

import (
	"context"

	eventsdomain "campus-portal-go/internal/domain/events"
	"campus-portal-go/internal/domain/principal"
	"campus-portal-go/internal/domain/toggle"
	"campus-portal-go/pkg/logger"
)

type Service interface {
	List(ctx context.Context, p principal.Principal) ([]eventsdomain.View, error)
	Create(ctx context.Context, p principal.Principal, input eventsdomain.CreateInput) (*eventsdomain.CreateResult, error)
	Delete(ctx context.Context, p principal.Principal, id string) error
	ToggleRSVP(ctx context.Context, p principal.Principal, eventID string) (toggle.Result, error)
}

type Handlers struct {
	Events Service
	log    logger.Logger
}

func New(events Service, log logger.Logger) *Handlers {
	return &Handlers{
		Events: events,
		log:    log,
	}
}
