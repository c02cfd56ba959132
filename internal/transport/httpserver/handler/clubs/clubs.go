package clubs

import (
	"errors"
	"net/http"
	"time"

	clubsdomain "campus-portal-go/internal/domain/clubs"
	commonhandler "campus-portal-go/internal/transport/httpserver/handler/common"
	"github.com/go-chi/chi/v5"
)

type createClubRequest struct {
	Name        string `json:"name" validate:"notblank,max=120"`
	Description string `json:"description" validate:"max=5000"`
	Audience    string `json:"audience" validate:"required,audience"`
}

type clubResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Audience    string    `json:"audience"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	MemberCount int64     `json:"member_count"`
	IsMember    bool      `json:"is_member"`
}

type clubListResponse struct {
	Items []clubResponse `json:"items"`
}

type createClubResponse struct {
	Club          clubResponse `json:"club"`
	NotifiedCount int          `json:"notified_count"`
	Warning       string       `json:"warning,omitempty"`
}

type membershipResponse struct {
	ClubID string `json:"club_id"`
	Status string `json:"status"`
}

func (h *Handlers) ListClubs(w http.ResponseWriter, r *http.Request) {
	user, ok := commonhandler.RequirePrincipal(w, r)
	if !ok {
		return
	}

	views, err := h.Clubs.List(r.Context(), user.Principal())
	if err != nil {
		commonhandler.WriteInternalError(w, h.log, "clubs.list", err, "user_id", user.ID)
		return
	}

	response := make([]clubResponse, 0, len(views))
	for _, view := range views {
		response = append(response, toClubResponse(view))
	}
	writeJSON(w, http.StatusOK, clubListResponse{Items: response})
}

func (h *Handlers) CreateClub(w http.ResponseWriter, r *http.Request) {
	user, ok := commonhandler.RequirePrincipal(w, r)
	if !ok {
		return
	}

	var req createClubRequest
	if !commonhandler.DecodeValid(w, r, &req) {
		return
	}

	result, err := h.Clubs.Create(r.Context(), user.Principal(), clubsdomain.CreateInput{
		Name:        req.Name,
		Description: req.Description,
		Audience:    req.Audience,
	})
	if err != nil {
		if commonhandler.WriteDomainError(w, h.log, "clubs.create", err, "user_id", user.ID) {
			return
		}
		if errors.Is(err, clubsdomain.ErrNameRequired) {
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
			return
		}
		commonhandler.WriteInternalError(w, h.log, "clubs.create", err, "user_id", user.ID)
		return
	}

	response := createClubResponse{
		Club:          toClubResponse(clubsdomain.View{Club: result.Club}),
		NotifiedCount: result.NotifiedCount,
	}
	if result.Warning != nil {
		h.log.InternalError("clubs.create: fan-out incomplete", result.Warning, "user_id", user.ID, "club_id", result.Club.ID)
		response.Warning = result.Warning.Error()
	}
	writeJSON(w, http.StatusCreated, response)
}

func (h *Handlers) DeleteClub(w http.ResponseWriter, r *http.Request) {
	user, ok := commonhandler.RequirePrincipal(w, r)
	if !ok {
		return
	}

	id, ok := commonhandler.ParseID(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", clubsdomain.ErrClubNotFound.Error())
		return
	}

	if err := h.Clubs.Delete(r.Context(), user.Principal(), id); err != nil {
		if commonhandler.WriteDomainError(w, h.log, "clubs.delete", err, "user_id", user.ID, "club_id", id) {
			return
		}
		commonhandler.WriteInternalError(w, h.log, "clubs.delete", err, "user_id", user.ID, "club_id", id)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handlers) ToggleMembership(w http.ResponseWriter, r *http.Request) {
	user, ok := commonhandler.RequirePrincipal(w, r)
	if !ok {
		return
	}

	id, ok := commonhandler.ParseID(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", clubsdomain.ErrClubNotFound.Error())
		return
	}

	result, err := h.Clubs.ToggleMembership(r.Context(), user.Principal(), id)
	if err != nil {
		if commonhandler.WriteDomainError(w, h.log, "clubs.membership", err, "user_id", user.ID, "club_id", id) {
			return
		}
		commonhandler.WriteInternalError(w, h.log, "clubs.membership", err, "user_id", user.ID, "club_id", id)
		return
	}

	writeJSON(w, http.StatusOK, membershipResponse{ClubID: id, Status: string(result.State)})
}

func toClubResponse(view clubsdomain.View) clubResponse {
	return clubResponse{
		ID:          view.Club.ID,
		Name:        view.Club.Name,
		Description: view.Club.Description,
		Audience:    string(view.Club.Audience),
		CreatedBy:   view.Club.CreatedBy,
		CreatedAt:   view.Club.CreatedAt,
		MemberCount: view.MemberCount,
		IsMember:    view.IsMember,
	}
}
