package httpapi

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portail-rse/internal/platform/middleware"
	"portail-rse/pkg/requestcontext"
	"portail-rse/pkg/testutil"
)

type stubValidator struct {
	user uuid.UUID
}

func (s stubValidator) ValidateToken(token string) (*middleware.JWTClaims, error) {
	if token != "good" {
		return nil, errors.New("bad token")
	}
	return &middleware.JWTClaims{UserID: s.user, Entreprises: []string{"123456789"}}, nil
}

type whoami struct{}

func (whoami) Register(r chi.Router) {
	r.Get("/moi", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(requestcontext.UserID(r.Context()).String()))
	})
}

func (whoami) RegisterPublic(r chi.Router) {
	r.Get("/public", func(w http.ResponseWriter, r *http.Request) {
		if requestcontext.IsAuthenticated(r.Context()) {
			_, _ = w.Write([]byte("user"))
			return
		}
		_, _ = w.Write([]byte("anonymous"))
	})
}

func newRouter(user uuid.UUID, health ...HealthCheck) http.Handler {
	return NewRouter(Deps{
		Validator: stubValidator{user: user},
		Protected: []Registrar{whoami{}},
		Public:    []PublicRegistrar{whoami{}},
		Health:    health,
	})
}

func TestAuthGroups(t *testing.T) {
	user := uuid.New()
	router := newRouter(user)

	req := testutil.NewJSONRequest(t, http.MethodGet, "/moi", nil)
	rr := testutil.DoRequest(router, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	req = testutil.NewJSONRequest(t, http.MethodGet, "/moi", nil)
	req.Header.Set("Authorization", "Bearer good")
	rr = testutil.DoRequest(router, req)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, user.String(), rr.Body.String())
	assert.NotEmpty(t, rr.Header().Get(middleware.HeaderRequestID))

	req = testutil.NewJSONRequest(t, http.MethodGet, "/public", nil)
	rr = testutil.DoRequest(router, req)
	assert.Equal(t, "anonymous", rr.Body.String())

	req = testutil.NewJSONRequest(t, http.MethodGet, "/public", nil)
	req.Header.Set("Authorization", "Bearer good")
	rr = testutil.DoRequest(router, req)
	assert.Equal(t, "user", rr.Body.String())
}

func TestHealthz(t *testing.T) {
	ok := HealthCheck{Name: "postgres", Check: func(context.Context) error { return nil }}
	down := HealthCheck{Name: "redis", Check: func(context.Context) error { return errors.New("connection refused") }}

	rr := testutil.DoRequest(newRouter(uuid.New(), ok), testutil.NewJSONRequest(t, http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	resp := testutil.UnmarshalResponse[healthResponse](t, rr)
	assert.Equal(t, "ok", resp.Status)

	rr = testutil.DoRequest(newRouter(uuid.New(), ok, down), testutil.NewJSONRequest(t, http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusServiceUnavailable, rr.Code)
	resp = testutil.UnmarshalResponse[healthResponse](t, rr)
	assert.Equal(t, "degraded", resp.Status)
	assert.Equal(t, "connection refused", resp.Checks["redis"])
	assert.Equal(t, "ok", resp.Checks["postgres"])
}

func TestMetricsEndpoint(t *testing.T) {
	rr := testutil.DoRequest(newRouter(uuid.New()), testutil.NewJSONRequest(t, http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}
