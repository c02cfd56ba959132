package todos

import (
	"errors"
	"net/http"
	"time"

	todosdomain "campus-portal-go/internal/domain/todos"
	commonhandler "campus-portal-go/internal/transport/httpserver/handler/common"
	"github.com/go-chi/chi/v5"
)

type createTodoRequest struct {
	Title string `json:"title" validate:"notblank,max=500"`
}

type updateTodoRequest struct {
	Done *bool `json:"done" validate:"required"`
}

type todoResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type todoListResponse struct {
	Items []todoResponse `json:"items"`
}

type todoDoneResponse struct {
	ID   string `json:"id"`
	Done bool   `json:"done"`
}

func (h *Handlers) ListTodos(w http.ResponseWriter, r *http.Request) {
	user, ok := commonhandler.RequirePrincipal(w, r)
	if !ok {
		return
	}

	items, err := h.Todos.ListTodos(r.Context(), user.Principal())
	if err != nil {
		commonhandler.WriteInternalError(w, h.log, "todos.list", err, "user_id", user.ID)
		return
	}

	response := make([]todoResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toTodoResponse(item))
	}
	writeJSON(w, http.StatusOK, todoListResponse{Items: response})
}

func (h *Handlers) CreateTodo(w http.ResponseWriter, r *http.Request) {
	user, ok := commonhandler.RequirePrincipal(w, r)
	if !ok {
		return
	}

	var req createTodoRequest
	if !commonhandler.DecodeValid(w, r, &req) {
		return
	}

	todo, err := h.Todos.CreateTodo(r.Context(), user.Principal(), todosdomain.CreateTodoInput{Title: req.Title})
	if err != nil {
		if errors.Is(err, todosdomain.ErrTitleRequired) {
			h.log.BusinessError("todos.create: title required", err, "user_id", user.ID)
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
			return
		}
		commonhandler.WriteInternalError(w, h.log, "todos.create", err, "user_id", user.ID)
		return
	}

	writeJSON(w, http.StatusCreated, toTodoResponse(*todo))
}

func (h *Handlers) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	user, ok := commonhandler.RequirePrincipal(w, r)
	if !ok {
		return
	}

	id, ok := commonhandler.ParseID(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", todosdomain.ErrTodoNotFound.Error())
		return
	}

	var req updateTodoRequest
	if !commonhandler.DecodeValid(w, r, &req) {
		return
	}

	flag, err := h.Todos.SetDone(r.Context(), user.Principal(), id, *req.Done)
	if err != nil {
		if commonhandler.WriteDomainError(w, h.log, "todos.update", err, "user_id", user.ID, "todo_id", id) {
			return
		}
		commonhandler.WriteInternalError(w, h.log, "todos.update", err, "user_id", user.ID, "todo_id", id)
		return
	}

	writeJSON(w, http.StatusOK, todoDoneResponse{ID: flag.EntityID, Done: flag.Value})
}

func (h *Handlers) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	user, ok := commonhandler.RequirePrincipal(w, r)
	if !ok {
		return
	}

	id, ok := commonhandler.ParseID(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", todosdomain.ErrTodoNotFound.Error())
		return
	}

	if err := h.Todos.DeleteTodo(r.Context(), user.Principal(), id); err != nil {
		if commonhandler.WriteDomainError(w, h.log, "todos.delete", err, "user_id", user.ID, "todo_id", id) {
			return
		}
		commonhandler.WriteInternalError(w, h.log, "todos.delete", err, "user_id", user.ID, "todo_id", id)
		return
	}

	commonhandler.WriteNoContent(w)
}

func toTodoResponse(todo todosdomain.Todo) todoResponse {
	return todoResponse{
		ID:        todo.ID,
		Title:     todo.Title,
		Done:      todo.Done,
		CreatedAt: todo.CreatedAt,
		UpdatedAt: todo.UpdatedAt,
	}
}
