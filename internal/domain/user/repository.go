package user

import (
	"context"

	"campus-portal-go/internal/domain/principal"
)

type Repository interface {
	// UpsertProfile stores profile and reports whether the stored role
	// changed, including first insertion.
	UpsertProfile(ctx context.Context, profile *Profile) (bool, error)
	GetProfile(ctx context.Context, userID string) (*Profile, error)
	ListIDsByRoles(ctx context.Context, roles []principal.Role) ([]string, error)
}
