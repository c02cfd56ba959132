package announcements

import (
	"errors"
	"net/http"
	"time"

	announcementsdomain "campus-portal-go/internal/domain/announcements"
	commonhandler "campus-portal-go/internal/transport/httpserver/handler/common"
	"github.com/go-chi/chi/v5"
)

type createAnnouncementRequest struct {
	Title    string `json:"title" validate:"notblank,max=200"`
	Body     string `json:"body" validate:"max=5000"`
	Audience string `json:"audience" validate:"required,audience"`
	Urgent   bool   `json:"urgent"`
}

type announcementResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Audience  string    `json:"audience"`
	Urgent    bool      `json:"urgent"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

type announcementListResponse struct {
	Items []announcementResponse `json:"items"`
}

type createAnnouncementResponse struct {
	Announcement  announcementResponse `json:"announcement"`
	NotifiedCount int                  `json:"notified_count"`
	Warning       string               `json:"warning,omitempty"`
}

func (h *Handlers) ListAnnouncements(w http.ResponseWriter, r *http.Request) {
	user, ok := commonhandler.RequirePrincipal(w, r)
	if !ok {
		return
	}

	items, err := h.Announcements.List(r.Context(), user.Principal())
	if err != nil {
		commonhandler.WriteInternalError(w, h.log, "announcements.list", err, "user_id", user.ID)
		return
	}

	response := make([]announcementResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toAnnouncementResponse(item))
	}
	writeJSON(w, http.StatusOK, announcementListResponse{Items: response})
}

func (h *Handlers) CreateAnnouncement(w http.ResponseWriter, r *http.Request) {
	user, ok := commonhandler.RequirePrincipal(w, r)
	if !ok {
		return
	}

	var req createAnnouncementRequest
	if !commonhandler.DecodeValid(w, r, &req) {
		return
	}

	result, err := h.Announcements.Create(r.Context(), user.Principal(), announcementsdomain.CreateInput{
		Title:    req.Title,
		Body:     req.Body,
		Audience: req.Audience,
		Urgent:   req.Urgent,
	})
	if err != nil {
		if commonhandler.WriteDomainError(w, h.log, "announcements.create", err, "user_id", user.ID) {
			return
		}
		if errors.Is(err, announcementsdomain.ErrTitleRequired) {
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
			return
		}
		commonhandler.WriteInternalError(w, h.log, "announcements.create", err, "user_id", user.ID)
		return
	}

	response := createAnnouncementResponse{
		Announcement:  toAnnouncementResponse(result.Announcement),
		NotifiedCount: result.NotifiedCount,
	}
	if result.Warning != nil {
		h.log.InternalError("announcements.create: fan-out incomplete", result.Warning, "user_id", user.ID, "announcement_id", result.Announcement.ID)
		response.Warning = result.Warning.Error()
	}
	writeJSON(w, http.StatusCreated, response)
}

func (h *Handlers) DeleteAnnouncement(w http.ResponseWriter, r *http.Request) {
	user, ok := commonhandler.RequirePrincipal(w, r)
	if !ok {
		return
	}

	id, ok := commonhandler.ParseID(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", announcementsdomain.ErrAnnouncementNotFound.Error())
		return
	}

	if err := h.Announcements.Delete(r.Context(), user.Principal(), id); err != nil {
		if commonhandler.WriteDomainError(w, h.log, "announcements.delete", err, "user_id", user.ID, "announcement_id", id) {
			return
		}
		if errors.Is(err, announcementsdomain.ErrAnnouncementNotFound) {
			h.log.BusinessError("announcements.delete: not found", err, "user_id", user.ID, "announcement_id", id)
			writeError(w, http.StatusNotFound, "not_found", err.Error())
			return
		}
		commonhandler.WriteInternalError(w, h.log, "announcements.delete", err, "user_id", user.ID, "announcement_id", id)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func toAnnouncementResponse(item announcementsdomain.Announcement) announcementResponse {
	return announcementResponse{
		ID:        item.ID,
		Title:     item.Title,
		Body:      item.Body,
		Audience:  string(item.Audience),
		Urgent:    item.Urgent,
		CreatedBy: item.CreatedBy,
		CreatedAt: item.CreatedAt,
	}
}
