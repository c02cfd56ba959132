package clubs

import (
	"errors"
	"fmt"

	"campus-portal-go/internal/domain/toggle"
)

var (
	ErrClubNotFound = fmt.Errorf("club not found: %w", toggle.ErrNotFound)
	ErrNameRequired = errors.New("name is required")
)
