package clubs

import (
	"context"

	"campus-portal-go/internal/domain/audience"
)

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	CreateClub(ctx context.Context, club *Club) error
	ListClubs(ctx context.Context, audiences []audience.Directive) ([]Club, error)
	DeleteClub(ctx context.Context, id string) (bool, error)
	DeleteMembersByClub(ctx context.Context, clubID string) (int64, error)
	DeleteNotificationsBySource(ctx context.Context, sourceID string) (int64, error)
}
