package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	dErrors "portail-rse/pkg/domain-errors"
	"portail-rse/pkg/platform/httputil"
	"portail-rse/pkg/requestcontext"
)

// RequireMember rejects requests whose user is not attached to the company
// named by the {siren} route parameter. It must run after RequireAuth.
func RequireMember(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siren := chi.URLParam(r, "siren")
		if !requestcontext.IsMember(r.Context(), siren) {
			httputil.WriteError(w, dErrors.New(dErrors.CodeForbidden, "vous n'êtes pas membre de cette entreprise"))
			return
		}
		next.ServeHTTP(w, r)
	})
}
