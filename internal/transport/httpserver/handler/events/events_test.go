package events

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	eventsdomain "campus-portal-go/internal/domain/events"
	"campus-portal-go/internal/domain/principal"
	"campus-portal-go/internal/domain/toggle"
	"campus-portal-go/internal/transport/httpserver/middleware"
	"campus-portal-go/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

type stubService struct {
	views  []eventsdomain.View
	result toggle.Result
	err    error
}

func (s *stubService) List(ctx context.Context, p principal.Principal) ([]eventsdomain.View, error) {
	return s.views, s.err
}

func (s *stubService) Create(ctx context.Context, p principal.Principal, input eventsdomain.CreateInput) (*eventsdomain.CreateResult, error) {
	return nil, s.err
}

func (s *stubService) Delete(ctx context.Context, p principal.Principal, id string) error {
	return s.err
}

func (s *stubService) ToggleRSVP(ctx context.Context, p principal.Principal, eventID string) (toggle.Result, error) {
	return s.result, s.err
}

const eventID = "0f8fad5b-d9cb-469f-a165-70867728950e"

func serve(svc Service, method, path string) *httptest.ResponseRecorder {
	h := New(svc, logger.Nop())
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			user := middleware.User{ID: "stu-1", Role: principal.RoleStudent}
			next.ServeHTTP(w, req.WithContext(middleware.WithUser(req.Context(), user)))
		})
	})
	r.Get("/events", h.ListEvents)
	r.Post("/events/{id}/rsvp", h.ToggleRSVP)
	r.Delete("/events/{id}", h.DeleteEvent)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestToggleRSVPReportsState(t *testing.T) {
	svc := &stubService{result: toggle.Result{State: toggle.StateJoined}}

	rec := serve(svc, http.MethodPost, "/events/"+eventID+"/rsvp")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"event_id":"`+eventID+`","status":"joined"}`, rec.Body.String())
}

func TestToggleRSVPNotFound(t *testing.T) {
	svc := &stubService{err: eventsdomain.ErrEventNotFound}

	rec := serve(svc, http.MethodPost, "/events/"+eventID+"/rsvp")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(&stubService{}, http.MethodPost, "/events/nope/rsvp")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListEventsAnnotations(t *testing.T) {
	svc := &stubService{views: []eventsdomain.View{{
		Event:     eventsdomain.Event{ID: eventID, Title: "Hackathon", Audience: "all"},
		RSVPCount: 12,
		IsRSVPd:   true,
	}}}

	rec := serve(svc, http.MethodGet, "/events")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"rsvp_count":12`)
	assert.Contains(t, rec.Body.String(), `"is_rsvpd":true`)
}

func TestDeleteEventForbidden(t *testing.T) {
	rec := serve(&stubService{err: principal.ErrForbidden}, http.MethodDelete, "/events/"+eventID)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
