package todos

import (
	"context"
	"strings"

	"campus-portal-go/internal/domain/principal"
	"campus-portal-go/internal/domain/toggle"
	"github.com/google/uuid"
)

type Service struct {
	repo  Repository
	flags *toggle.FlagStore[bool]
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:  repo,
		flags: toggle.NewFlagStore[bool](repo, ErrTodoNotFound),
	}
}

func (s *Service) ListTodos(ctx context.Context, p principal.Principal) ([]Todo, error) {
	items, err := s.repo.ListTodos(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []Todo{}
	}
	return items, nil
}

func (s *Service) CreateTodo(ctx context.Context, p principal.Principal, input CreateTodoInput) (*Todo, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	todo := Todo{
		ID:      uuid.NewString(),
		OwnerID: p.ID,
		Title:   title,
	}
	if err := s.repo.CreateTodo(ctx, &todo); err != nil {
		return nil, err
	}
	return &todo, nil
}

// SetDone overwrites the done flag. Another owner's to-do is reported as
// not found.
func (s *Service) SetDone(ctx context.Context, p principal.Principal, todoID string, done bool) (toggle.Flag[bool], error) {
	if strings.TrimSpace(p.ID) == "" {
		return toggle.Flag[bool]{}, ErrTodoNotFound
	}
	return s.flags.SetFlag(ctx, p.ID, todoID, done)
}

func (s *Service) DeleteTodo(ctx context.Context, p principal.Principal, todoID string) error {
	deleted, err := s.repo.SoftDeleteTodo(ctx, p.ID, strings.TrimSpace(todoID))
	if err != nil {
		return err
	}
	if !deleted {
		return ErrTodoNotFound
	}
	return nil
}
