package common

import (
	"errors"
	"net/http"

	userdomain "campus-portal-go/internal/domain/user"
	"campus-portal-go/internal/transport/httpserver/middleware"
)

type authMeResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func (h *Handlers) AuthMe(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	response := authMeResponse{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  string(user.Role),
	}

	if h.Profiles != nil {
		profile, err := h.Profiles.GetProfile(r.Context(), user.ID)
		switch {
		case err == nil:
			if response.Email == "" && profile.Email != nil {
				response.Email = *profile.Email
			}
			if response.Name == "" && profile.Name != nil {
				response.Name = *profile.Name
			}
		case errors.Is(err, userdomain.ErrProfileNotFound):
		default:
			h.log.InternalError("auth.me: get profile failed", err, "user_id", user.ID)
		}
	}

	writeJSON(w, http.StatusOK, response)
}

// RequirePrincipal writes 401 and returns false when the request carries no
// verified caller.
func RequirePrincipal(w http.ResponseWriter, r *http.Request) (middleware.User, bool) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return middleware.User{}, false
	}
	return user, true
}
