package rooms

import (
	"errors"
	"net/http"

	roomsdomain "campus-portal-go/internal/domain/rooms"
	commonhandler "campus-portal-go/internal/transport/httpserver/handler/common"
	"github.com/go-chi/chi/v5"
)

type setStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=available occupied auto"`
}

type roomResponse struct {
	ID       string  `json:"id"`
	Code     string  `json:"code"`
	Name     string  `json:"name"`
	Building string  `json:"building"`
	Override *string `json:"status_override"`
	Hour     int     `json:"hour"`
	Occupied bool    `json:"occupied"`
	Label    *string `json:"label"`
}

type roomListResponse struct {
	Items []roomResponse `json:"items"`
}

func (h *Handlers) ListRooms(w http.ResponseWriter, r *http.Request) {
	user, ok := commonhandler.RequirePrincipal(w, r)
	if !ok {
		return
	}

	hour, err := commonhandler.ParseOptionalIntParam(r.URL.Query().Get("hour"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid hour")
		return
	}

	statuses, err := h.Rooms.ListStatuses(r.Context(), hour)
	if err != nil {
		if errors.Is(err, roomsdomain.ErrInvalidHour) {
			h.log.BusinessError("rooms.list: invalid hour", err, "user_id", user.ID)
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
			return
		}
		commonhandler.WriteInternalError(w, h.log, "rooms.list", err, "user_id", user.ID)
		return
	}

	response := make([]roomResponse, 0, len(statuses))
	for _, status := range statuses {
		response = append(response, toRoomResponse(status))
	}
	writeJSON(w, http.StatusOK, roomListResponse{Items: response})
}

func (h *Handlers) SetRoomStatus(w http.ResponseWriter, r *http.Request) {
	user, ok := commonhandler.RequirePrincipal(w, r)
	if !ok {
		return
	}

	id, ok := commonhandler.ParseID(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", roomsdomain.ErrRoomNotFound.Error())
		return
	}

	var req setStatusRequest
	if !commonhandler.DecodeValid(w, r, &req) {
		return
	}

	status, err := h.Rooms.SetOverride(r.Context(), user.Principal(), id, req.Status)
	if err != nil {
		if commonhandler.WriteDomainError(w, h.log, "rooms.set_status", err, "user_id", user.ID, "room_id", id) {
			return
		}
		if errors.Is(err, roomsdomain.ErrInvalidOverride) {
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
			return
		}
		commonhandler.WriteInternalError(w, h.log, "rooms.set_status", err, "user_id", user.ID, "room_id", id)
		return
	}

	h.log.Info("rooms.set_status: override updated", "user_id", user.ID, "room_id", id, "status", req.Status)
	writeJSON(w, http.StatusOK, toRoomResponse(*status))
}

func toRoomResponse(status roomsdomain.Status) roomResponse {
	return roomResponse{
		ID:       status.Room.ID,
		Code:     status.Room.Code,
		Name:     status.Room.Name,
		Building: status.Room.Building,
		Override: status.Room.StatusOverride,
		Hour:     status.Hour,
		Occupied: status.Occupancy.Occupied,
		Label:    status.Occupancy.Label,
	}
}
