package todos

import (
	"errors"
	"fmt"

	"campus-portal-go/internal/domain/toggle"
)

var (
	ErrTodoNotFound  = fmt.Errorf("todo not found: %w", toggle.ErrNotFound)
	ErrTitleRequired = errors.New("title is required")
)
