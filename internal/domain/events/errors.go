package events

import (
	"errors"
	"fmt"

	"campus-portal-go/internal/domain/toggle"
)

var (
	ErrEventNotFound = fmt.Errorf("event not found: %w", toggle.ErrNotFound)
	ErrTitleRequired = errors.New("title is required")
)
