package placements

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	placementsdomain "campus-portal-go/internal/domain/placements"
	"campus-portal-go/internal/domain/principal"
	"campus-portal-go/internal/transport/httpserver/middleware"
	"campus-portal-go/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	views   []placementsdomain.View
	created *placementsdomain.CreateResult
	status  placementsdomain.ApplicationStatus
	input   placementsdomain.CreateInput
	err     error
}

func (s *stubService) List(ctx context.Context, p principal.Principal) ([]placementsdomain.View, error) {
	return s.views, s.err
}

func (s *stubService) Create(ctx context.Context, p principal.Principal, input placementsdomain.CreateInput) (*placementsdomain.CreateResult, error) {
	s.input = input
	return s.created, s.err
}

func (s *stubService) Delete(ctx context.Context, p principal.Principal, id string) error {
	return s.err
}

func (s *stubService) ToggleApplication(ctx context.Context, p principal.Principal, placementID string) (placementsdomain.ApplicationStatus, error) {
	return s.status, s.err
}

const placementID = "16fd2706-8baf-433b-82eb-8c7fada847da"

func serve(svc Service, role principal.Role, method, path, body string) *httptest.ResponseRecorder {
	h := New(svc, logger.Nop())
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			user := middleware.User{ID: "user-1", Role: role}
			next.ServeHTTP(w, req.WithContext(middleware.WithUser(req.Context(), user)))
		})
	})
	r.Get("/placements", h.ListPlacements)
	r.Post("/placements", h.CreatePlacement)
	r.Delete("/placements/{id}", h.DeletePlacement)
	r.Post("/placements/{id}/application", h.ToggleApplication)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
	return rec
}

func TestCreatePlacementAudienceOptional(t *testing.T) {
	svc := &stubService{created: &placementsdomain.CreateResult{
		Placement:     placementsdomain.Placement{ID: placementID, Company: "Acme", Role: "SDE", Audience: "students"},
		NotifiedCount: 42,
	}}

	rec := serve(svc, principal.RoleAdmin, http.MethodPost, "/placements", `{"company":"Acme","role":"SDE"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "", svc.input.Audience)
	assert.Contains(t, rec.Body.String(), `"notified_count":42`)
	assert.NotContains(t, rec.Body.String(), `"warning"`)
}

func TestCreatePlacementRequiresCompany(t *testing.T) {
	rec := serve(&stubService{}, principal.RoleAdmin, http.MethodPost, "/placements", `{"company":"  "}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_request")
}

func TestToggleApplicationStatus(t *testing.T) {
	svc := &stubService{status: placementsdomain.StatusAdded}

	rec := serve(svc, principal.RoleStudent, http.MethodPost, "/placements/"+placementID+"/application", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"placement_id":"`+placementID+`","status":"added"}`, rec.Body.String())
}

func TestListPlacementsHasApplied(t *testing.T) {
	svc := &stubService{views: []placementsdomain.View{{
		Placement:  placementsdomain.Placement{ID: placementID, Company: "Acme"},
		HasApplied: true,
	}}}

	rec := serve(svc, principal.RoleStudent, http.MethodGet, "/placements", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"has_applied":true`)
}

func TestDeletePlacementMissing(t *testing.T) {
	rec := serve(&stubService{err: placementsdomain.ErrPlacementNotFound}, principal.RoleAdmin, http.MethodDelete, "/placements/"+placementID, "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
