package events

import (
	"errors"
	"net/http"
	"time"

	eventsdomain "campus-portal-go/internal/domain/events"
	commonhandler "campus-portal-go/internal/transport/httpserver/handler/common"
	"github.com/go-chi/chi/v5"
)

type createEventRequest struct {
	Title       string     `json:"title" validate:"notblank,max=200"`
	Description string     `json:"description" validate:"max=5000"`
	Location    string     `json:"location" validate:"max=200"`
	StartsAt    *time.Time `json:"starts_at"`
	Audience    string     `json:"audience" validate:"required,audience"`
}

type eventResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	StartsAt    *time.Time `json:"starts_at"`
	Audience    string     `json:"audience"`
	CreatedBy   string     `json:"created_by"`
	CreatedAt   time.Time  `json:"created_at"`
	RSVPCount   int64      `json:"rsvp_count"`
	IsRSVPd     bool       `json:"is_rsvpd"`
}

type eventListResponse struct {
	Items []eventResponse `json:"items"`
}

type createEventResponse struct {
	Event         eventResponse `json:"event"`
	NotifiedCount int           `json:"notified_count"`
	Warning       string        `json:"warning,omitempty"`
}

type rsvpResponse struct {
	EventID string `json:"event_id"`
	Status  string `json:"status"`
}

func (h *Handlers) ListEvents(w http.ResponseWriter, r *http.Request) {
	user, ok := commonhandler.RequirePrincipal(w, r)
	if !ok {
		return
	}

	views, err := h.Events.List(r.Context(), user.Principal())
	if err != nil {
		commonhandler.WriteInternalError(w, h.log, "events.list", err, "user_id", user.ID)
		return
	}

	response := make([]eventResponse, 0, len(views))
	for _, view := range views {
		response = append(response, toEventResponse(view))
	}
	writeJSON(w, http.StatusOK, eventListResponse{Items: response})
}

func (h *Handlers) CreateEvent(w http.ResponseWriter, r *http.Request) {
	user, ok := commonhandler.RequirePrincipal(w, r)
	if !ok {
		return
	}

	var req createEventRequest
	if !commonhandler.DecodeValid(w, r, &req) {
		return
	}

	result, err := h.Events.Create(r.Context(), user.Principal(), eventsdomain.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		StartsAt:    req.StartsAt,
		Audience:    req.Audience,
	})
	if err != nil {
		if commonhandler.WriteDomainError(w, h.log, "events.create", err, "user_id", user.ID) {
			return
		}
		if errors.Is(err, eventsdomain.ErrTitleRequired) {
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
			return
		}
		commonhandler.WriteInternalError(w, h.log, "events.create", err, "user_id", user.ID)
		return
	}

	response := createEventResponse{
		Event:         toEventResponse(eventsdomain.View{Event: result.Event}),
		NotifiedCount: result.NotifiedCount,
	}
	if result.Warning != nil {
		h.log.InternalError("events.create: fan-out incomplete", result.Warning, "user_id", user.ID, "event_id", result.Event.ID)
		response.Warning = result.Warning.Error()
	}
	writeJSON(w, http.StatusCreated, response)
}

func (h *Handlers) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	user, ok := commonhandler.RequirePrincipal(w, r)
	if !ok {
		return
	}

	id, ok := commonhandler.ParseID(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", eventsdomain.ErrEventNotFound.Error())
		return
	}

	if err := h.Events.Delete(r.Context(), user.Principal(), id); err != nil {
		if commonhandler.WriteDomainError(w, h.log, "events.delete", err, "user_id", user.ID, "event_id", id) {
			return
		}
		commonhandler.WriteInternalError(w, h.log, "events.delete", err, "user_id", user.ID, "event_id", id)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handlers) ToggleRSVP(w http.ResponseWriter, r *http.Request) {
	user, ok := commonhandler.RequirePrincipal(w, r)
	if !ok {
		return
	}

	id, ok := commonhandler.ParseID(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", eventsdomain.ErrEventNotFound.Error())
		return
	}

	result, err := h.Events.ToggleRSVP(r.Context(), user.Principal(), id)
	if err != nil {
		if commonhandler.WriteDomainError(w, h.log, "events.rsvp", err, "user_id", user.ID, "event_id", id) {
			return
		}
		commonhandler.WriteInternalError(w, h.log, "events.rsvp", err, "user_id", user.ID, "event_id", id)
		return
	}
	if result.ConflictIgnored {
		h.log.Debug("events.rsvp: concurrent insert ignored", "user_id", user.ID, "event_id", id)
	}

	writeJSON(w, http.StatusOK, rsvpResponse{EventID: id, Status: string(result.State)})
}

func toEventResponse(view eventsdomain.View) eventResponse {
	return eventResponse{
		ID:          view.Event.ID,
		Title:       view.Event.Title,
		Description: view.Event.Description,
		Location:    view.Event.Location,
		StartsAt:    view.Event.StartsAt,
		Audience:    string(view.Event.Audience),
		CreatedBy:   view.Event.CreatedBy,
		CreatedAt:   view.Event.CreatedAt,
		RSVPCount:   view.RSVPCount,
		IsRSVPd:     view.IsRSVPd,
	}
}
