package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"identity-service/pkg/token"
	"identity-service/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAuth_BearerToken(t *testing.T) {
	issuer := token.NewIssuer("test-secret", time.Hour)
	accountID := uuid.New()

	tok, _, err := issuer.Issue(accountID, "user")
	require.NoError(t, err)

	var gotID uuid.UUID
	var gotRole string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = utils.GetAccountIDFromContext(r.Context())
		gotRole, _ = utils.GetRoleFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/user/profile", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()

	Auth(issuer, zap.NewNop())(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, accountID, gotID)
	assert.Equal(t, "user", gotRole)
}

func TestAuth_Cookie(t *testing.T) {
	issuer := token.NewIssuer("test-secret", time.Hour)

	tok, _, err := issuer.Issue(uuid.New(), "user")
	require.NoError(t, err)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/user/profile", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: tok})
	rec := httptest.NewRecorder()

	Auth(issuer, zap.NewNop())(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuth_NonBearerHeaderFallsBackToCookie(t *testing.T) {
	issuer := token.NewIssuer("test-secret", time.Hour)

	tok, _, err := issuer.Issue(uuid.New(), "user")
	require.NoError(t, err)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// An unrelated Authorization scheme must not shadow the cookie session
	req := httptest.NewRequest(http.MethodGet, "/api/user/profile", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	req.AddCookie(&http.Cookie{Name: "access_token", Value: tok})
	rec := httptest.NewRecorder()

	Auth(issuer, zap.NewNop())(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuth_MissingToken(t *testing.T) {
	issuer := token.NewIssuer("test-secret", time.Hour)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not run")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/user/profile", nil)
	rec := httptest.NewRecorder()

	Auth(issuer, zap.NewNop())(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_ExpiredToken(t *testing.T) {
	expiredIssuer := token.NewIssuer("test-secret", -time.Minute)

	tok, _, err := expiredIssuer.Issue(uuid.New(), "user")
	require.NoError(t, err)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not run")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/user/profile", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()

	Auth(token.NewIssuer("test-secret", time.Hour), zap.NewNop())(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
