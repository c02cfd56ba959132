package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"campus-portal-go/internal/config"
	"campus-portal-go/internal/domain/principal"
	userdomain "campus-portal-go/internal/domain/user"
	"campus-portal-go/pkg/logger"
	"github.com/golang-jwt/jwt/v4"
)

// JWTAuth verifies HS256 bearer tokens issued by the campus identity
// provider and attaches the caller to the request context.
type JWTAuth struct {
	secret    []byte
	issuer    string
	roleClaim string
	profiles  ProfileSaver
	skipAuth  bool
	mockUser  User
	log       logger.Logger
}

type contextKey int

const (
	userIDKey contextKey = iota
	userKey
)

type User struct {
	ID    string
	Email string
	Name  string
	Role  principal.Role
}

func (u User) Principal() principal.Principal {
	return principal.Principal{ID: u.ID, Role: u.Role}
}

type ProfileSaver interface {
	UpsertProfile(ctx context.Context, input userdomain.UpsertProfileInput) error
}

var errMissingClaim = errors.New("missing claim")

func NewJWTAuth(cfg config.AuthConfig, profiles ProfileSaver, log logger.Logger) *JWTAuth {
	roleClaim := strings.TrimSpace(cfg.RoleClaim)
	if roleClaim == "" {
		roleClaim = "role"
	}
	if log == nil {
		log = logger.Nop()
	}

	mockRole, err := principal.ParseRole(cfg.MockUserRole)
	if err != nil {
		mockRole = principal.RoleStudent
	}

	return &JWTAuth{
		secret:    []byte(cfg.JWTSecret),
		issuer:    strings.TrimSpace(cfg.Issuer),
		roleClaim: roleClaim,
		profiles:  profiles,
		skipAuth:  cfg.SkipAuth,
		mockUser: User{
			ID:    strings.TrimSpace(cfg.MockUserID),
			Email: strings.TrimSpace(cfg.MockUserEmail),
			Name:  strings.TrimSpace(cfg.MockUserName),
			Role:  mockRole,
		},
		log: log,
	}
}

func (a *JWTAuth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if a.skipAuth {
			user := a.mockUser
			if user.ID == "" {
				writeError(w, http.StatusInternalServerError, "auth_not_configured", "auth mock user id not configured")
				return
			}
			a.saveProfile(r.Context(), user)
			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
			return
		}

		if len(a.secret) == 0 {
			writeError(w, http.StatusInternalServerError, "auth_not_configured", "auth not configured")
			return
		}

		token, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			unauthorized(w)
			return
		}

		user, err := a.verify(token)
		if err != nil {
			a.log.BusinessError("auth: token rejected", err)
			unauthorized(w)
			return
		}

		a.saveProfile(r.Context(), user)
		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
	})
}

func (a *JWTAuth) verify(raw string) (User, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		return User{}, err
	}

	if a.issuer != "" && !claims.VerifyIssuer(a.issuer, true) {
		return User{}, fmt.Errorf("issuer: %w", jwt.ErrTokenInvalidIssuer)
	}

	userID := firstNonEmpty(stringClaim(claims, "sub"), stringClaim(claims, "user_id"))
	if userID == "" {
		return User{}, fmt.Errorf("sub: %w", errMissingClaim)
	}

	role, err := principal.ParseRole(firstNonEmpty(stringClaim(claims, a.roleClaim), nestedStringClaim(claims, "app_metadata", a.roleClaim)))
	if err != nil {
		return User{}, fmt.Errorf("%s: %w", a.roleClaim, err)
	}

	return User{
		ID:    userID,
		Email: stringClaim(claims, "email"),
		Name:  firstNonEmpty(stringClaim(claims, "name"), nestedStringClaim(claims, "user_metadata", "full_name")),
		Role:  role,
	}, nil
}

func (a *JWTAuth) saveProfile(ctx context.Context, user User) {
	if a.profiles == nil {
		return
	}
	err := a.profiles.UpsertProfile(ctx, userdomain.UpsertProfileInput{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Role:   user.Role,
	})
	if err != nil {
		a.log.InternalError("auth: upsert profile failed", err, "user_id", user.ID)
	}
}

func bearerToken(value string) (string, bool) {
	parts := strings.Fields(value)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

func unauthorized(w http.ResponseWriter) {
	writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
}

func WithUser(ctx context.Context, user User) context.Context {
	ctx = context.WithValue(ctx, userKey, user)
	return context.WithValue(ctx, userIDKey, user.ID)
}

func UserFromContext(ctx context.Context) (User, bool) {
	value := ctx.Value(userKey)
	user, ok := value.(User)
	if !ok || user.ID == "" {
		return User{}, false
	}
	return user, true
}

// PrincipalFromContext returns the verified caller.
func PrincipalFromContext(ctx context.Context) (principal.Principal, bool) {
	user, ok := UserFromContext(ctx)
	if !ok {
		return principal.Principal{}, false
	}
	return user.Principal(), true
}

func UserIDFromContext(ctx context.Context) (string, bool) {
	value := ctx.Value(userIDKey)
	userID, ok := value.(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}

func stringClaim(claims jwt.MapClaims, key string) string {
	value, ok := claims[key]
	if !ok {
		return ""
	}
	parsed, ok := value.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(parsed)
}

func nestedStringClaim(claims jwt.MapClaims, parent, key string) string {
	values, ok := claims[parent].(map[string]interface{})
	if !ok {
		return ""
	}
	return stringClaim(jwt.MapClaims(values), key)
}
