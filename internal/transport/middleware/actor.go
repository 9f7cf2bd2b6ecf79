package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/formabase/formabase-backend/pkg/ctxutil"
)

// Actor reads the X-Actor-Id and X-Tenant-Id headers and stores them in the
// context. Identity verification happens upstream at the API gateway; this
// service trusts the forwarded headers. Missing or malformed headers leave
// the context untouched so that handler-level validation reports them.
func Actor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if raw := r.Header.Get("X-Actor-Id"); raw != "" {
			if id, err := uuid.Parse(raw); err == nil {
				ctx = ctxutil.WithActorID(ctx, id)
			}
		}
		if raw := r.Header.Get("X-Tenant-Id"); raw != "" {
			if id, err := uuid.Parse(raw); err == nil {
				ctx = ctxutil.WithTenantID(ctx, id)
			}
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
