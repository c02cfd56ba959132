package todos

import (
	"context"

	"campus-portal-go/internal/domain/principal"
	"campus-portal-go/internal/domain/toggle"
	todosdomain "campus-portal-go/internal/domain/todos"
	"campus-portal-go/pkg/logger"
)

type Service interface {
	ListTodos(ctx context.Context, p principal.Principal) ([]todosdomain.Todo, error)
	CreateTodo(ctx context.Context, p principal.Principal, input todosdomain.CreateTodoInput) (*todosdomain.Todo, error)
	SetDone(ctx context.Context, p principal.Principal, todoID string, done bool) (toggle.Flag[bool], error)
	DeleteTodo(ctx context.Context, p principal.Principal, todoID string) error
}

type Handlers struct {
	Todos Service
	log   logger.Logger
}

func New(todos Service, log logger.Logger) *Handlers {
	return &Handlers{
		Todos: todos,
		log:   log,
	}
}
