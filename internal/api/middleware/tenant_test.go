package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BRB-BookingService/internal/domain"
	tenantRepo "github.com/m04kA/BRB-BookingService/internal/infra/storage/tenant"
)

type fakeTenantRepo struct {
	tenants map[string]*domain.Tenant
}

func (f *fakeTenantRepo) GetBySlug(_ context.Context, slug string) (*domain.Tenant, error) {
	tenant, ok := f.tenants[slug]
	if !ok {
		return nil, tenantRepo.ErrTenantNotFound
	}
	return tenant, nil
}

func testTenantRepo() *fakeTenantRepo {
	return &fakeTenantRepo{tenants: map[string]*domain.Tenant{
		"ze-barbearia": {ID: 42, Slug: "ze-barbearia", Name: "Zé Barbearia"},
	}}
}

func tenantCapturingHandler(t *testing.T, called *bool, wantID int64) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		tenant, ok := TenantFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, wantID, tenant.ID)
		w.WriteHeader(http.StatusOK)
	})
}

func TestTenant_ResolvedFromHeader(t *testing.T) {
	var called bool
	handler := Tenant(testTenantRepo(), nopLogger{})(tenantCapturingHandler(t, &called, 42))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/services", nil)
	req.Header.Set(TenantSlugHeader, "ze-barbearia")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTenant_ResolvedFromSubdomain(t *testing.T) {
	var called bool
	handler := Tenant(testTenantRepo(), nopLogger{})(tenantCapturingHandler(t, &called, 42))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/services", nil)
	req.Host = "ze-barbearia.example.com"
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTenant_SubdomainWithPortResolved(t *testing.T) {
	var called bool
	handler := Tenant(testTenantRepo(), nopLogger{})(tenantCapturingHandler(t, &called, 42))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/services", nil)
	req.Host = "ze-barbearia.example.com:8080"
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.True(t, called)
}

func TestTenant_HeaderTakesPrecedenceOverSubdomain(t *testing.T) {
	repo := testTenantRepo()
	repo.tenants["outro"] = &domain.Tenant{ID: 7, Slug: "outro", Name: "Outro"}

	var called bool
	handler := Tenant(repo, nopLogger{})(tenantCapturingHandler(t, &called, 7))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/services", nil)
	req.Host = "ze-barbearia.example.com"
	req.Header.Set(TenantSlugHeader, "outro")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.True(t, called)
}

func TestTenant_UnknownSlugNotFound(t *testing.T) {
	handler := Tenant(testTenantRepo(), nopLogger{})(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler must not be called")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/services", nil)
	req.Header.Set(TenantSlugHeader, "no-such-shop")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"барбершоп не найден"}`, rec.Body.String())
}

func TestTenant_HostWithoutSubdomainNotFound(t *testing.T) {
	cases := []string{"localhost", "localhost:8080", "example.com"}
	for _, host := range cases {
		handler := Tenant(testTenantRepo(), nopLogger{})(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			t.Fatalf("handler must not be called for host %q", host)
		}))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/services", nil)
		req.Host = host
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code, "host %q", host)
	}
}
