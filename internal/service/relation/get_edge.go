package relation

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/formabase/formabase-backend/internal/domain"
)

// GetEdge returns an edge by id, soft-deleted ones included.
func (s *Service) GetEdge(ctx context.Context, input GetEdgeInput) (*domain.RelationEdge, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	return s.edges.GetByID(ctx, input.TenantID, input.EdgeID)
}

// QueryEdges returns live edges matching the conjunctive filter, newest
// first, plus the total match count.
func (s *Service) QueryEdges(ctx context.Context, input QueryEdgesInput) ([]*domain.RelationEdge, int, error) {
	if err := input.Validate(); err != nil {
		return nil, 0, err
	}
	return s.edges.Query(ctx, input.Filter, input.Page)
}

// FindByURN returns all live edges touching the URN as either endpoint.
func (s *Service) FindByURN(ctx context.Context, tenantID uuid.UUID, urn string) ([]*domain.RelationEdge, error) {
	if tenantID == uuid.Nil {
		return nil, domain.NewValidationError("tenant_id", "required")
	}
	if err := domain.ValidateURN(urn); err != nil {
		return nil, err
	}
	return s.edges.FindByURN(ctx, tenantID, urn)
}

// FindByURNPair returns live edges matching the unordered pair in either
// direction.
func (s *Service) FindByURNPair(ctx context.Context, tenantID uuid.UUID, a, b string) ([]*domain.RelationEdge, error) {
	if tenantID == uuid.Nil {
		return nil, domain.NewValidationError("tenant_id", "required")
	}
	if err := domain.ValidateURN(a); err != nil {
		return nil, fmt.Errorf("first urn: %w", err)
	}
	if err := domain.ValidateURN(b); err != nil {
		return nil, fmt.Errorf("second urn: %w", err)
	}
	return s.edges.FindByURNPair(ctx, tenantID, a, b)
}
