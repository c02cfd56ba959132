package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"campus-portal-go/internal/config"
	"campus-portal-go/internal/domain/principal"
	userdomain "campus-portal-go/internal/domain/user"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "campus-test-secret"

type recordingProfiles struct {
	inputs []userdomain.UpsertProfileInput
}

func (p *recordingProfiles) UpsertProfile(ctx context.Context, input userdomain.UpsertProfileInput) error {
	p.inputs = append(p.inputs, input)
	return nil
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func serveWithAuth(auth *JWTAuth, header string) (*httptest.ResponseRecorder, principal.Principal) {
	var seen principal.Principal
	handler := auth.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = PrincipalFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec, seen
}

func TestJWTAuthAcceptsValidToken(t *testing.T) {
	profiles := &recordingProfiles{}
	auth := NewJWTAuth(config.AuthConfig{JWTSecret: testSecret}, profiles, nil)
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub":   "fac-7",
		"email": "prof@campus.edu",
		"role":  "faculty",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	rec, seen := serveWithAuth(auth, "Bearer "+token)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, principal.Principal{ID: "fac-7", Role: principal.RoleFaculty}, seen)
	require.Len(t, profiles.inputs, 1)
	assert.Equal(t, "prof@campus.edu", profiles.inputs[0].Email)
}

func TestJWTAuthReadsRoleFromAppMetadata(t *testing.T) {
	auth := NewJWTAuth(config.AuthConfig{JWTSecret: testSecret}, nil, nil)
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub":          "adm-1",
		"app_metadata": map[string]interface{}{"role": "admin"},
	})

	rec, seen := serveWithAuth(auth, "Bearer "+token)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, seen.IsAdmin())
}

func TestJWTAuthRejects(t *testing.T) {
	auth := NewJWTAuth(config.AuthConfig{JWTSecret: testSecret, Issuer: "campus-idp"}, nil, nil)

	cases := map[string]string{
		"missing header": "",
		"not bearer":     "Basic abc",
		"bad signature":  "Bearer " + signToken(t, "other-secret", jwt.MapClaims{"sub": "u", "role": "student", "iss": "campus-idp"}),
		"expired":        "Bearer " + signToken(t, testSecret, jwt.MapClaims{"sub": "u", "role": "student", "iss": "campus-idp", "exp": time.Now().Add(-time.Minute).Unix()}),
		"wrong issuer":   "Bearer " + signToken(t, testSecret, jwt.MapClaims{"sub": "u", "role": "student", "iss": "elsewhere"}),
		"unknown role":   "Bearer " + signToken(t, testSecret, jwt.MapClaims{"sub": "u", "role": "dean", "iss": "campus-idp"}),
		"no subject":     "Bearer " + signToken(t, testSecret, jwt.MapClaims{"role": "student", "iss": "campus-idp"}),
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			rec, _ := serveWithAuth(auth, header)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), "invalid_token")
		})
	}
}

func TestJWTAuthSkipUsesMockUser(t *testing.T) {
	auth := NewJWTAuth(config.AuthConfig{SkipAuth: true, MockUserID: "adm-9", MockUserRole: "admin"}, nil, nil)

	rec, seen := serveWithAuth(auth, "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, principal.Principal{ID: "adm-9", Role: principal.RoleAdmin}, seen)
}

func TestJWTAuthNotConfigured(t *testing.T) {
	auth := NewJWTAuth(config.AuthConfig{}, nil, nil)

	rec, _ := serveWithAuth(auth, "Bearer token")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "auth_not_configured")
}
