package placements

import (
	"context"

	"campus-portal-go/internal/domain/audience"
)

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	CreatePlacement(ctx context.Context, placement *Placement) error
	ListPlacements(ctx context.Context, audiences []audience.Directive) ([]Placement, error)
	DeletePlacement(ctx context.Context, id string) (bool, error)
	DeleteApplicationsByPlacement(ctx context.Context, placementID string) (int64, error)
	DeleteNotificationsBySource(ctx context.Context, sourceID string) (int64, error)
}
