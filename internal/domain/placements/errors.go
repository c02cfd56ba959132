package placements

import (
	"errors"
	"fmt"

	"campus-portal-go/internal/domain/toggle"
)

var (
	ErrPlacementNotFound = fmt.Errorf("placement not found: %w", toggle.ErrNotFound)
	ErrCompanyRequired   = errors.New("company is required")
)
