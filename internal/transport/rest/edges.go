package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/formabase/formabase-backend/internal/domain"
	"github.com/formabase/formabase-backend/internal/service/relation"
)

// relationService defines the minimal interface needed by EdgeHandler.
type relationService interface {
	CreateEdge(ctx context.Context, input relation.CreateEdgeInput) (*domain.RelationEdge, error)
	GetEdge(ctx context.Context, input relation.GetEdgeInput) (*domain.RelationEdge, error)
	QueryEdges(ctx context.Context, input relation.QueryEdgesInput) ([]*domain.RelationEdge, int, error)
	UpdateEdge(ctx context.Context, input relation.UpdateEdgeInput) (*domain.RelationEdge, error)
	DeleteEdge(ctx context.Context, input relation.DeleteEdgeInput) (bool, error)
	FindByURN(ctx context.Context, tenantID uuid.UUID, urn string) ([]*domain.RelationEdge, error)
	FindByURNPair(ctx context.Context, tenantID uuid.UUID, a, b string) ([]*domain.RelationEdge, error)
}

// EdgeHandler serves relation graph endpoints.
type EdgeHandler struct {
	svc relationService
	log *slog.Logger
}

// NewEdgeHandler creates an EdgeHandler.
func NewEdgeHandler(svc relationService, logger *slog.Logger) *EdgeHandler {
	return &EdgeHandler{svc: svc, log: logger.With("handler", "edges")}
}

type createEdgeRequest struct {
	FromURN  string         `json:"fromUrn"`
	ToURN    string         `json:"toUrn"`
	Type     string         `json:"type"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

type updateEdgeRequest struct {
	FromURN  *string        `json:"fromUrn,omitempty"`
	ToURN    *string        `json:"toUrn,omitempty"`
	Type     *string        `json:"type,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

type edgeResponse struct {
	ID        uuid.UUID      `json:"id"`
	TenantID  uuid.UUID      `json:"tenantId"`
	FromURN   string         `json:"fromUrn"`
	ToURN     string         `json:"toUrn"`
	Type      string         `json:"type"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedBy uuid.UUID      `json:"createdBy"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt *time.Time     `json:"deletedAt,omitempty"`
}

type edgeListResponse struct {
	Edges []edgeResponse `json:"edges"`
	Total int            `json:"total"`
}

func toEdgeResponse(e *domain.RelationEdge) edgeResponse {
	return edgeResponse{
		ID:        e.ID,
		TenantID:  e.TenantID,
		FromURN:   e.FromURN,
		ToURN:     e.ToURN,
		Type:      e.Type.String(),
		Metadata:  e.Metadata,
		CreatedBy: e.CreatedBy,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
		DeletedAt: e.DeletedAt,
	}
}

func toEdgeResponses(edges []*domain.RelationEdge) []edgeResponse {
	out := make([]edgeResponse, 0, len(edges))
	for _, e := range edges {
		out = append(out, toEdgeResponse(e))
	}
	return out
}

// CreateEdge handles POST /edges.
func (h *EdgeHandler) CreateEdge(w http.ResponseWriter, r *http.Request) {
	actorID, ok := requireActor(w, r)
	if !ok {
		return
	}
	tenantID, ok := requireTenant(w, r)
	if !ok {
		return
	}

	var req createEdgeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	edge, err := h.svc.CreateEdge(r.Context(), relation.CreateEdgeInput{
		TenantID: tenantID,
		ActorID:  actorID,
		FromURN:  req.FromURN,
		ToURN:    req.ToURN,
		Type:     domain.RelationType(req.Type),
		Metadata: req.Metadata,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toEdgeResponse(edge))
}

// QueryEdges handles GET /edges?fromUrn=&toUrn=&type=&page=&limit=.
// With urn= set it switches to endpoint search (either side).
func (h *EdgeHandler) QueryEdges(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := requireTenant(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	if urn := q.Get("urn"); urn != "" {
		edges, err := h.svc.FindByURN(r.Context(), tenantID, urn)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, edgeListResponse{Edges: toEdgeResponses(edges), Total: len(edges)})
		return
	}

	filter := domain.EdgeFilter{TenantID: &tenantID}
	if v := q.Get("fromUrn"); v != "" {
		filter.FromURN = &v
	}
	if v := q.Get("toUrn"); v != "" {
		filter.ToURN = &v
	}
	if v := q.Get("type"); v != "" {
		t := domain.RelationType(v)
		filter.Type = &t
	}

	edges, total, err := h.svc.QueryEdges(r.Context(), relation.QueryEdgesInput{
		Filter: filter,
		Page:   pageFromQuery(r),
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, edgeListResponse{Edges: toEdgeResponses(edges), Total: total})
}

// GetEdge handles GET /edges/{edgeID}.
func (h *EdgeHandler) GetEdge(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := requireTenant(w, r)
	if !ok {
		return
	}
	edgeID, ok := uuidParam(w, r, "edgeID")
	if !ok {
		return
	}

	edge, err := h.svc.GetEdge(r.Context(), relation.GetEdgeInput{
		TenantID: tenantID,
		EdgeID:   edgeID,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toEdgeResponse(edge))
}

// UpdateEdge handles PATCH /edges/{edgeID}.
func (h *EdgeHandler) UpdateEdge(w http.ResponseWriter, r *http.Request) {
	actorID, ok := requireActor(w, r)
	if !ok {
		return
	}
	tenantID, ok := requireTenant(w, r)
	if !ok {
		return
	}
	edgeID, ok := uuidParam(w, r, "edgeID")
	if !ok {
		return
	}

	var req updateEdgeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	params := domain.EdgeUpdateParams{
		FromURN:  req.FromURN,
		ToURN:    req.ToURN,
		Metadata: req.Metadata,
	}
	if req.Type != nil {
		t := domain.RelationType(*req.Type)
		params.Type = &t
	}

	edge, err := h.svc.UpdateEdge(r.Context(), relation.UpdateEdgeInput{
		TenantID: tenantID,
		ActorID:  actorID,
		EdgeID:   edgeID,
		Params:   params,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toEdgeResponse(edge))
}

// DeleteEdge handles DELETE /edges/{edgeID}. Idempotent: a repeat delete
// still returns 204.
func (h *EdgeHandler) DeleteEdge(w http.ResponseWriter, r *http.Request) {
	actorID, ok := requireActor(w, r)
	if !ok {
		return
	}
	tenantID, ok := requireTenant(w, r)
	if !ok {
		return
	}
	edgeID, ok := uuidParam(w, r, "edgeID")
	if !ok {
		return
	}

	_, err := h.svc.DeleteEdge(r.Context(), relation.DeleteEdgeInput{
		TenantID: tenantID,
		ActorID:  actorID,
		EdgeID:   edgeID,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
