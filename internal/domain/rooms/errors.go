package rooms

import (
	"errors"
	"fmt"

	"campus-portal-go/internal/domain/toggle"
)

var (
	ErrRoomNotFound    = fmt.Errorf("room not found: %w", toggle.ErrNotFound)
	ErrInvalidHour     = errors.New("hour must be between 0 and 23")
	ErrInvalidOverride = errors.New("status must be available, occupied or auto")
)
