package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BRB-BookingService/internal/domain"
	"github.com/m04kA/BRB-BookingService/internal/integrations/authservice"
)

type fakeVerifier struct {
	profile  *authservice.Profile
	err      error
	gotToken string
}

func (f *fakeVerifier) VerifyToken(_ context.Context, token string) (*authservice.Profile, error) {
	f.gotToken = token
	if f.err != nil {
		return nil, f.err
	}
	return f.profile, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func authedHandler(t *testing.T, called *bool, want *domain.Profile) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		profile, ok := ProfileFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, want, profile)
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuth_ValidTokenPutsProfileIntoContext(t *testing.T) {
	verifier := &fakeVerifier{profile: &authservice.Profile{
		ID:       "user-1",
		TenantID: 42,
		FullName: "Ana Souza",
		Role:     domain.RoleClient,
	}}

	var called bool
	want := &domain.Profile{ID: "user-1", TenantID: 42, FullName: "Ana Souza", Role: domain.RoleClient}
	handler := Auth(verifier, nopLogger{})(authedHandler(t, &called, want))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me/bookings", nil)
	req.Header.Set("Authorization", "Bearer token-abc")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "token-abc", verifier.gotToken)
}

func TestAuth_MissingHeaderUnauthorized(t *testing.T) {
	verifier := &fakeVerifier{}
	var called bool
	handler := Auth(verifier, nopLogger{})(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"требуется аутентификация"}`, rec.Body.String())
}

func TestAuth_MalformedHeaderUnauthorized(t *testing.T) {
	cases := []string{
		"token-abc",      // без схемы
		"Basic dXNlcg==", // чужая схема
		"Bearer",         // без токена
		"Bearer ",        // пустой токен
	}
	for _, header := range cases {
		verifier := &fakeVerifier{}
		handler := Auth(verifier, nopLogger{})(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			t.Fatalf("handler must not be called for header %q", header)
		}))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
	}
}

func TestAuth_InvalidTokenUnauthorized(t *testing.T) {
	verifier := &fakeVerifier{err: authservice.ErrUnauthenticated}
	handler := Auth(verifier, nopLogger{})(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler must not be called")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
	req.Header.Set("Authorization", "Bearer expired")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"недействительный токен"}`, rec.Body.String())
}

func TestAuth_VerifierFailureInternalError(t *testing.T) {
	verifier := &fakeVerifier{err: errors.New("auth service is down")}
	handler := Auth(verifier, nopLogger{})(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler must not be called")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
	req.Header.Set("Authorization", "Bearer token-abc")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
