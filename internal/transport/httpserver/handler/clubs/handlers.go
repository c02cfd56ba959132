package clubs

import (
	"context"

	clubsdomain "campus-portal-go/internal/domain/clubs"
	"campus-portal-go/internal/domain/principal"
	"campus-portal-go/internal/domain/toggle"
	"campus-portal-go/pkg/logger"
)

type Service interface {
	List(ctx context.Context, p principal.Principal) ([]clubsdomain.View, error)
	Create(ctx context.Context, p principal.Principal, input clubsdomain.CreateInput) (*clubsdomain.CreateResult, error)
	Delete(ctx context.Context, p principal.Principal, id string) error
	ToggleMembership(ctx context.Context, p principal.Principal, clubID string) (toggle.Result, error)
}

type Handlers struct {
	Clubs Service
	log   logger.Logger
}

func New(clubs Service, log logger.Logger) *Handlers {
	return &Handlers{
		Clubs: clubs,
		log:   log,
	}
}
