package httpserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"campus-portal-go/internal/config"
	"campus-portal-go/internal/domain/principal"
	"campus-portal-go/internal/domain/toggle"
	todosdomain "campus-portal-go/internal/domain/todos"
	userdomain "campus-portal-go/internal/domain/user"
	"campus-portal-go/internal/transport/httpserver/handler"
	"campus-portal-go/internal/transport/httpserver/handler/common"
	"campus-portal-go/pkg/logger"
	"github.com/stretchr/testify/assert"
)

type noopProfiles struct{}

func (noopProfiles) UpsertProfile(ctx context.Context, input userdomain.UpsertProfileInput) error {
	return nil
}

type todosStub struct{}

func (todosStub) ListTodos(ctx context.Context, p principal.Principal) ([]todosdomain.Todo, error) {
	return []todosdomain.Todo{{ID: "t-1", OwnerID: p.ID, Title: "Read chapter 4"}}, nil
}

func (todosStub) CreateTodo(ctx context.Context, p principal.Principal, input todosdomain.CreateTodoInput) (*todosdomain.Todo, error) {
	return nil, nil
}

func (todosStub) SetDone(ctx context.Context, p principal.Principal, id string, done bool) (toggle.Flag[bool], error) {
	return toggle.Flag[bool]{}, nil
}

func (todosStub) DeleteTodo(ctx context.Context, p principal.Principal, id string) error {
	return nil
}

func newTestRouter(auth config.AuthConfig) http.Handler {
	cfg := config.Config{
		CORSOrigins:    []string{"http://localhost:5173"},
		RequestTimeout: 5 * time.Second,
		Auth:           auth,
	}
	handlers := handler.New(handler.Services{
		Todos:  todosStub{},
		Client: common.ClientSettings{PollInterval: 20 * time.Second},
	}, logger.Nop())
	return NewRouter(cfg, handlers, noopProfiles{}, logger.Nop())
}

func TestHealthIsPublic(t *testing.T) {
	router := newTestRouter(config.AuthConfig{JWTSecret: "secret"})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestClientConfigIsPublic(t *testing.T) {
	router := newTestRouter(config.AuthConfig{JWTSecret: "secret"})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/client-config", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"poll_interval_seconds":20,"campus_timezone":"UTC"}`, rec.Body.String())
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router := newTestRouter(config.AuthConfig{JWTSecret: "secret"})

	for _, path := range []string{"/api/events", "/api/todos", "/api/notifications", "/api/rooms"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}
}

func TestMockUserReachesHandlers(t *testing.T) {
	router := newTestRouter(config.AuthConfig{SkipAuth: true, MockUserID: "stu-1", MockUserRole: "student"})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/todos", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Read chapter 4")
}
