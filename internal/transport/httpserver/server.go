package httpserver

import (
	"net/http"
	"time"

	"campus-portal-go/internal/config"
)

func New(cfg config.Config, handler http.Handler) *http.Server {
	writeTimeout := cfg.RequestTimeout + 5*time.Second
	if cfg.RequestTimeout <= 0 {
		writeTimeout = 35 * time.Second
	}
	return &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       2 * time.Minute,
	}
}
