package placements

import (
	"errors"
	"net/http"
	"time"

	placementsdomain "campus-portal-go/internal/domain/placements"
	commonhandler "campus-portal-go/internal/transport/httpserver/handler/common"
	"github.com/go-chi/chi/v5"
)

type createPlacementRequest struct {
	Company     string     `json:"company" validate:"notblank,max=200"`
	Role        string     `json:"role" validate:"max=200"`
	Description string     `json:"description" validate:"max=5000"`
	Deadline    *time.Time `json:"deadline"`
	Audience    string     `json:"audience" validate:"omitempty,audience"`
}

type placementResponse struct {
	ID               string     `json:"id"`
	Company          string     `json:"company"`
	Role             string     `json:"role"`
	Description      string     `json:"description"`
	Deadline         *time.Time `json:"deadline"`
	Audience         string     `json:"audience"`
	CreatedBy        string     `json:"created_by"`
	CreatedAt        time.Time  `json:"created_at"`
	ApplicationCount int64      `json:"application_count"`
	HasApplied       bool       `json:"has_applied"`
}

type placementListResponse struct {
	Items []placementResponse `json:"items"`
}

type createPlacementResponse struct {
	Placement     placementResponse `json:"placement"`
	NotifiedCount int               `json:"notified_count"`
	Warning       string            `json:"warning,omitempty"`
}

type applicationResponse struct {
	PlacementID string `json:"placement_id"`
	Status      string `json:"status"`
}

func (h *Handlers) ListPlacements(w http.ResponseWriter, r *http.Request) {
	user, ok := commonhandler.RequirePrincipal(w, r)
	if !ok {
		return
	}

	views, err := h.Placements.List(r.Context(), user.Principal())
	if err != nil {
		commonhandler.WriteInternalError(w, h.log, "placements.list", err, "user_id", user.ID)
		return
	}

	response := make([]placementResponse, 0, len(views))
	for _, view := range views {
		response = append(response, toPlacementResponse(view))
	}
	writeJSON(w, http.StatusOK, placementListResponse{Items: response})
}

func (h *Handlers) CreatePlacement(w http.ResponseWriter, r *http.Request) {
	user, ok := commonhandler.RequirePrincipal(w, r)
	if !ok {
		return
	}

	var req createPlacementRequest
	if !commonhandler.DecodeValid(w, r, &req) {
		return
	}

	result, err := h.Placements.Create(r.Context(), user.Principal(), placementsdomain.CreateInput{
		Company:     req.Company,
		Role:        req.Role,
		Description: req.Description,
		Deadline:    req.Deadline,
		Audience:    req.Audience,
	})
	if err != nil {
		if commonhandler.WriteDomainError(w, h.log, "placements.create", err, "user_id", user.ID) {
			return
		}
		if errors.Is(err, placementsdomain.ErrCompanyRequired) {
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
			return
		}
		commonhandler.WriteInternalError(w, h.log, "placements.create", err, "user_id", user.ID)
		return
	}

	response := createPlacementResponse{
		Placement:     toPlacementResponse(placementsdomain.View{Placement: result.Placement}),
		NotifiedCount: result.NotifiedCount,
	}
	if result.Warning != nil {
		h.log.InternalError("placements.create: fan-out incomplete", result.Warning, "user_id", user.ID, "placement_id", result.Placement.ID)
		response.Warning = result.Warning.Error()
	}
	writeJSON(w, http.StatusCreated, response)
}

func (h *Handlers) DeletePlacement(w http.ResponseWriter, r *http.Request) {
	user, ok := commonhandler.RequirePrincipal(w, r)
	if !ok {
		return
	}

	id, ok := commonhandler.ParseID(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", placementsdomain.ErrPlacementNotFound.Error())
		return
	}

	if err := h.Placements.Delete(r.Context(), user.Principal(), id); err != nil {
		if commonhandler.WriteDomainError(w, h.log, "placements.delete", err, "user_id", user.ID, "placement_id", id) {
			return
		}
		commonhandler.WriteInternalError(w, h.log, "placements.delete", err, "user_id", user.ID, "placement_id", id)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handlers) ToggleApplication(w http.ResponseWriter, r *http.Request) {
	user, ok := commonhandler.RequirePrincipal(w, r)
	if !ok {
		return
	}

	id, ok := commonhandler.ParseID(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", placementsdomain.ErrPlacementNotFound.Error())
		return
	}

	status, err := h.Placements.ToggleApplication(r.Context(), user.Principal(), id)
	if err != nil {
		if commonhandler.WriteDomainError(w, h.log, "placements.application", err, "user_id", user.ID, "placement_id", id) {
			return
		}
		commonhandler.WriteInternalError(w, h.log, "placements.application", err, "user_id", user.ID, "placement_id", id)
		return
	}

	writeJSON(w, http.StatusOK, applicationResponse{PlacementID: id, Status: string(status)})
}

func toPlacementResponse(view placementsdomain.View) placementResponse {
	return placementResponse{
		ID:               view.Placement.ID,
		Company:          view.Placement.Company,
		Role:             view.Placement.Role,
		Description:      view.Placement.Description,
		Deadline:         view.Placement.Deadline,
		Audience:         string(view.Placement.Audience),
		CreatedBy:        view.Placement.CreatedBy,
		CreatedAt:        view.Placement.CreatedAt,
		ApplicationCount: view.ApplicationCount,
		HasApplied:       view.HasApplied,
	}
}
