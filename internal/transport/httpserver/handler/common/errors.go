package common

import (
	"errors"
	"net/http"

	"campus-portal-go/internal/domain/audience"
	"campus-portal-go/internal/domain/principal"
	"campus-portal-go/internal/domain/toggle"
	"campus-portal-go/pkg/logger"
)

// WriteDomainError maps the shared domain errors to HTTP responses and logs
// them under op. It reports false when err is not one of them, leaving the
// response untouched.
func WriteDomainError(w http.ResponseWriter, log logger.Logger, op string, err error, attrs ...any) bool {
	switch {
	case errors.Is(err, principal.ErrForbidden):
		log.BusinessError(op+": forbidden", err, attrs...)
		writeError(w, http.StatusForbidden, "forbidden", "admin role required")
	case errors.Is(err, audience.ErrInvalidAudience):
		log.BusinessError(op+": invalid audience", err, attrs...)
		writeError(w, http.StatusBadRequest, "invalid_audience", "audience must be all, students or faculty")
	case errors.Is(err, toggle.ErrInvalidKey):
		log.BusinessError(op+": invalid key", err, attrs...)
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid id")
	case errors.Is(err, toggle.ErrNotFound):
		log.BusinessError(op+": not found", err, attrs...)
		writeError(w, http.StatusNotFound, "not_found", err.Error())
	default:
		return false
	}
	return true
}

// WriteInternalError logs err and writes the generic 500 envelope.
func WriteInternalError(w http.ResponseWriter, log logger.Logger, op string, err error, attrs ...any) {
	log.InternalError(op+": failed", err, attrs...)
	writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
}
