package todos

import (
	"context"

	"campus-portal-go/internal/domain/toggle"
)

type Repository interface {
	toggle.FlagRepository[bool]
	ListTodos(ctx context.Context, ownerID string) ([]Todo, error)
	CreateTodo(ctx context.Context, todo *Todo) error
	SoftDeleteTodo(ctx context.Context, ownerID, todoID string) (bool, error)
}
