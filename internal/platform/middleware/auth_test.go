package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portail-rse/pkg/requestcontext"
)

type stubValidator struct {
	claims *JWTClaims
	err    error
}

func (s stubValidator) ValidateToken(string) (*JWTClaims, error) {
	return s.claims, s.err
}

func captureUser(seen *uuid.UUID, member *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*seen = requestcontext.UserID(r.Context())
		*member = requestcontext.IsMember(r.Context(), "552100554")
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestRequireAuth(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	userID := uuid.New()
	ok := stubValidator{claims: &JWTClaims{UserID: userID, Entreprises: []string{"552100554"}}}

	t.Run("valid token places user in context", func(t *testing.T) {
		var seen uuid.UUID
		var member bool
		h := RequireAuth(ok, logger)(captureUser(&seen, &member))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer token")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, userID, seen)
		assert.True(t, member)
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		var seen uuid.UUID
		var member bool
		h := RequireAuth(ok, logger)(captureUser(&seen, &member))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"error":"unauthorized","error_description":"Missing or invalid Authorization header"}`, rec.Body.String())
	})

	t.Run("invalid token is rejected", func(t *testing.T) {
		var seen uuid.UUID
		var member bool
		h := RequireAuth(stubValidator{err: errors.New("bad")}, logger)(captureUser(&seen, &member))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer nope")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestOptionalAuthLetsAnonymousThrough(t *testing.T) {
	var seen uuid.UUID
	var member bool
	h := OptionalAuth(stubValidator{err: errors.New("unused")}, slog.New(slog.DiscardHandler))(captureUser(&seen, &member))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/simulations", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, uuid.Nil, seen)
	assert.False(t, member)
}

func TestRequestIDEchoesHeader(t *testing.T) {
	var got string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = requestcontext.RequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "req-42")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "req-42", got)
	assert.Equal(t, "req-42", rec.Header().Get(HeaderRequestID))
}

func TestRequireMember(t *testing.T) {
	r := chi.NewRouter()
	r.With(RequireMember).Get("/entreprises/{siren}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	t.Run("member", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/entreprises/123456789", nil)
		req = req.WithContext(requestcontext.WithUser(req.Context(), uuid.New(), []string{"123456789"}))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("other company", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/entreprises/987654321", nil)
		req = req.WithContext(requestcontext.WithUser(req.Context(), uuid.New(), []string{"123456789"}))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
