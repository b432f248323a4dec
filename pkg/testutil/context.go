package testutil

import (
	"net/http"

	"github.com/google/uuid"

	"portail-rse/pkg/requestcontext"
)

// WithMember simulates what the auth middleware does for a user who belongs to sirens.
func WithMember(req *http.Request, userID uuid.UUID, sirens ...string) *http.Request {
	return req.WithContext(requestcontext.WithUser(req.Context(), userID, sirens))
}
