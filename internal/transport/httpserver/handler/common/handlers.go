package common

import (
	"context"
	"net/http"
	"time"

	userdomain "campus-portal-go/internal/domain/user"
	"campus-portal-go/pkg/logger"
)

type ProfileReader interface {
	GetProfile(ctx context.Context, userID string) (*userdomain.Profile, error)
}

// ClientSettings is what polling clients need to know about the server.
type ClientSettings struct {
	PollInterval   time.Duration
	CampusTimezone string
}

type Handlers struct {
	Profiles ProfileReader
	settings ClientSettings
	log      logger.Logger
}

func New(profiles ProfileReader, settings ClientSettings, log logger.Logger) *Handlers {
	return &Handlers{
		Profiles: profiles,
		settings: settings,
		log:      log,
	}
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type clientSettingsResponse struct {
	PollIntervalSeconds int    `json:"poll_interval_seconds"`
	CampusTimezone      string `json:"campus_timezone"`
}

func (h *Handlers) ClientConfig(w http.ResponseWriter, r *http.Request) {
	interval := h.settings.PollInterval
	if interval <= 0 {
		interval = 15 * time.Second
	}
	timezone := h.settings.CampusTimezone
	if timezone == "" {
		timezone = "UTC"
	}
	writeJSON(w, http.StatusOK, clientSettingsResponse{
		PollIntervalSeconds: int(interval / time.Second),
		CampusTimezone:      timezone,
	})
}
