package audience

import (
	"context"

	"campus-portal-go/internal/domain/principal"
)

// Directory is the read-only user directory consulted to resolve recipients.
type Directory interface {
	ListIDsByRoles(ctx context.Context, roles []principal.Role) ([]string, error)
}
