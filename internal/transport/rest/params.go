package rest

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/formabase/formabase-backend/internal/domain"
	"github.com/formabase/formabase-backend/pkg/ctxutil"
)

// uuidParam parses a UUID path parameter. A parse failure writes a 400 and
// returns ok=false.
func uuidParam(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// requireActor extracts the actor ID placed in the context by the Actor
// middleware. Absence means the gateway did not forward an identity.
func requireActor(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, ok := ctxutil.ActorIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing actor identity")
		return uuid.Nil, false
	}
	return id, true
}

// requireTenant extracts the tenant ID placed in the context by the Actor
// middleware.
func requireTenant(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, ok := ctxutil.TenantIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusBadRequest, "missing tenant identity")
		return uuid.Nil, false
	}
	return id, true
}

// pageFromQuery reads page/limit query parameters into a PageFilter.
func pageFromQuery(r *http.Request) domain.PageFilter {
	var page domain.PageFilter
	if v := r.URL.Query().Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			page.Page = n
		}
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			page.Limit = n
		}
	}
	return page
}
