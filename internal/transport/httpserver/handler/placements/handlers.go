package placements

import (
	"context"

	placementsdomain "campus-portal-go/internal/domain/placements"
	"campus-portal-go/internal/domain/principal"
	"campus-portal-go/pkg/logger"
)

type Service interface {
	List(ctx context.Context, p principal.Principal) ([]placementsdomain.View, error)
	Create(ctx context.Context, p principal.Principal, input placementsdomain.CreateInput) (*placementsdomain.CreateResult, error)
	Delete(ctx context.Context, p principal.Principal, id string) error
	ToggleApplication(ctx context.Context, p principal.Principal, placementID string) (placementsdomain.ApplicationStatus, error)
}

type Handlers struct {
	Placements Service
	log        logger.Logger
}

func New(placements Service, log logger.Logger) *Handlers {
	return &Handlers{
		Placements: placements,
		log:        log,
	}
}
