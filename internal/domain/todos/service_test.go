package todos

import (
	"context"
	"errors"
	"testing"

	"campus-portal-go/internal/domain/principal"
	"campus-portal-go/internal/domain/toggle"
)

type fakeTodoRepo struct {
	items map[string]*Todo
	order []string
}

func newFakeTodoRepo() *fakeTodoRepo {
	return &fakeTodoRepo{items: make(map[string]*Todo)}
}

func (r *fakeTodoRepo) SetFlag(ctx context.Context, ownerID, entityID string, value bool) (bool, error) {
	item, ok := r.items[entityID]
	if !ok || item.OwnerID != ownerID {
		return false, nil
	}
	item.Done = value
	return true, nil
}

func (r *fakeTodoRepo) ListTodos(ctx context.Context, ownerID string) ([]Todo, error) {
	var result []Todo
	for _, id := range r.order {
		if item, ok := r.items[id]; ok && item.OwnerID == ownerID {
			result = append(result, *item)
		}
	}
	return result, nil
}

func (r *fakeTodoRepo) CreateTodo(ctx context.Context, todo *Todo) error {
	copy := *todo
	r.items[todo.ID] = &copy
	r.order = append(r.order, todo.ID)
	return nil
}

func (r *fakeTodoRepo) SoftDeleteTodo(ctx context.Context, ownerID, todoID string) (bool, error) {
	item, ok := r.items[todoID]
	if !ok || item.OwnerID != ownerID {
		return false, nil
	}
	delete(r.items, todoID)
	return true, nil
}

var (
	owner    = principal.Principal{ID: "stu-1", Role: principal.RoleStudent}
	stranger = principal.Principal{ID: "stu-2", Role: principal.RoleStudent}
)

func TestCreateAndListTodos(t *testing.T) {
	svc := NewService(newFakeTodoRepo())

	if _, err := svc.CreateTodo(context.Background(), owner, CreateTodoInput{Title: "  "}); !errors.Is(err, ErrTitleRequired) {
		t.Fatalf("expected ErrTitleRequired, got %v", err)
	}
	todo, err := svc.CreateTodo(context.Background(), owner, CreateTodoInput{Title: " Submit lab report "})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if todo.Title != "Submit lab report" || todo.Done {
		t.Fatalf("unexpected todo %+v", todo)
	}

	mine, err := svc.ListTodos(context.Background(), owner)
	if err != nil || len(mine) != 1 {
		t.Fatalf("expected 1 todo, got %d %v", len(mine), err)
	}
	theirs, err := svc.ListTodos(context.Background(), stranger)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if theirs == nil || len(theirs) != 0 {
		t.Fatalf("expected empty non-nil list, got %v", theirs)
	}
}

func TestSetDoneIsIdempotentOverwrite(t *testing.T) {
	svc := NewService(newFakeTodoRepo())
	todo, err := svc.CreateTodo(context.Background(), owner, CreateTodoInput{Title: "Read chapter 4"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	for i := 0; i < 2; i++ {
		flag, err := svc.SetDone(context.Background(), owner, todo.ID, true)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if flag.EntityID != todo.ID || !flag.Value {
			t.Fatalf("unexpected flag %+v", flag)
		}
	}

	flag, err := svc.SetDone(context.Background(), owner, todo.ID, false)
	if err != nil || flag.Value {
		t.Fatalf("expected done=false, got %+v %v", flag, err)
	}
}

func TestSetDoneRejectsOtherOwner(t *testing.T) {
	svc := NewService(newFakeTodoRepo())
	todo, err := svc.CreateTodo(context.Background(), owner, CreateTodoInput{Title: "Read chapter 4"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	_, err = svc.SetDone(context.Background(), stranger, todo.ID, true)
	if !errors.Is(err, ErrTodoNotFound) || !errors.Is(err, toggle.ErrNotFound) {
		t.Fatalf("expected ErrTodoNotFound, got %v", err)
	}
	if _, err := svc.SetDone(context.Background(), principal.Principal{}, todo.ID, true); !errors.Is(err, ErrTodoNotFound) {
		t.Fatalf("expected ErrTodoNotFound for anonymous principal, got %v", err)
	}
}

func TestDeleteTodo(t *testing.T) {
	svc := NewService(newFakeTodoRepo())
	todo, err := svc.CreateTodo(context.Background(), owner, CreateTodoInput{Title: "Pay fees"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if err := svc.DeleteTodo(context.Background(), stranger, todo.ID); !errors.Is(err, ErrTodoNotFound) {
		t.Fatalf("expected ErrTodoNotFound, got %v", err)
	}
	if err := svc.DeleteTodo(context.Background(), owner, todo.ID); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := svc.DeleteTodo(context.Background(), owner, todo.ID); !errors.Is(err, ErrTodoNotFound) {
		t.Fatalf("expected ErrTodoNotFound, got %v", err)
	}
}
