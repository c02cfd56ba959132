package notifications

import (
	"errors"
	"net/http"
	"time"

	notificationsdomain "campus-portal-go/internal/domain/notifications"
	commonhandler "campus-portal-go/internal/transport/httpserver/handler/common"
	"github.com/go-chi/chi/v5"
)

type notificationResponse struct {
	ID         string    `json:"id"`
	Message    string    `json:"message"`
	Type       string    `json:"type"`
	Read       bool      `json:"read"`
	SourceType string    `json:"source_type"`
	SourceID   string    `json:"source_id"`
	CreatedAt  time.Time `json:"created_at"`
}

type notificationListResponse struct {
	Items       []notificationResponse `json:"items"`
	UnreadCount int64                  `json:"unread_count"`
}

type markReadResponse struct {
	ID   string `json:"id"`
	Read bool   `json:"read"`
}

type markAllReadResponse struct {
	Updated int64 `json:"updated"`
}

func (h *Handlers) ListNotifications(w http.ResponseWriter, r *http.Request) {
	user, ok := commonhandler.RequirePrincipal(w, r)
	if !ok {
		return
	}

	limit, err := commonhandler.ParseIntParam(r.URL.Query().Get("limit"), 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid limit")
		return
	}

	items, unread, err := h.Notifications.List(r.Context(), user.Principal(), limit)
	if err != nil {
		commonhandler.WriteInternalError(w, h.log, "notifications.list", err, "user_id", user.ID)
		return
	}

	response := make([]notificationResponse, 0, len(items))
	for _, item := range items {
		response = append(response, notificationResponse{
			ID:         item.ID,
			Message:    item.Message,
			Type:       string(item.Type),
			Read:       item.Read,
			SourceType: string(item.SourceType),
			SourceID:   item.SourceID,
			CreatedAt:  item.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, notificationListResponse{Items: response, UnreadCount: unread})
}

func (h *Handlers) MarkRead(w http.ResponseWriter, r *http.Request) {
	user, ok := commonhandler.RequirePrincipal(w, r)
	if !ok {
		return
	}

	id, ok := commonhandler.ParseID(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", notificationsdomain.ErrNotificationNotFound.Error())
		return
	}

	if err := h.Notifications.MarkRead(r.Context(), user.Principal(), id); err != nil {
		if errors.Is(err, notificationsdomain.ErrNotificationNotFound) {
			h.log.BusinessError("notifications.read: not found", err, "user_id", user.ID, "notification_id", id)
			writeError(w, http.StatusNotFound, "not_found", err.Error())
			return
		}
		commonhandler.WriteInternalError(w, h.log, "notifications.read", err, "user_id", user.ID, "notification_id", id)
		return
	}

	writeJSON(w, http.StatusOK, markReadResponse{ID: id, Read: true})
}

func (h *Handlers) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	user, ok := commonhandler.RequirePrincipal(w, r)
	if !ok {
		return
	}

	updated, err := h.Notifications.MarkAllRead(r.Context(), user.Principal())
	if err != nil {
		commonhandler.WriteInternalError(w, h.log, "notifications.read_all", err, "user_id", user.ID)
		return
	}

	writeJSON(w, http.StatusOK, markAllReadResponse{Updated: updated})
}
