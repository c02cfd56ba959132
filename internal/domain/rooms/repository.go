package rooms

import (
	"context"

	"campus-portal-go/internal/domain/toggle"
)

type Repository interface {
	// SetOverride writes status_override, NULL for auto. It reports false
	// when no room has roomID.
	SetOverride(ctx context.Context, roomID string, value *string) (bool, error)
	ListRooms(ctx context.Context) ([]Room, error)
	GetRoom(ctx context.Context, roomID string) (*Room, error)
}

// overrideFlags exposes room overrides as a flag. Rooms have no owner, so a
// request scoped to one matches no row.
type overrideFlags struct {
	repo Repository
}

var _ toggle.FlagRepository[*string] = overrideFlags{}

func (f overrideFlags) SetFlag(ctx context.Context, ownerID, roomID string, value *string) (bool, error) {
	if ownerID != "" {
		return false, nil
	}
	return f.repo.SetOverride(ctx, roomID, value)
}
