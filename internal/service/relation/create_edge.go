package relation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/formabase/formabase-backend/internal/domain"
)

// CreateEdge creates a live edge between two URNs. At most one live edge may
// exist per unordered pair: the pre-check covers both directions, and the
// canonical-pair unique index settles any race between concurrent writers
// coming from opposite sides.
func (s *Service) CreateEdge(ctx context.Context, input CreateEdgeInput) (*domain.RelationEdge, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := domain.ValidateURN(input.FromURN); err != nil {
		return nil, err
	}
	if err := domain.ValidateURN(input.ToURN); err != nil {
		return nil, err
	}

	var edge *domain.RelationEdge
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		existing, err := s.edges.FindByURNPair(txCtx, input.TenantID, input.FromURN, input.ToURN)
		if err != nil {
			return fmt.Errorf("check urn pair: %w", err)
		}
		if len(existing) > 0 {
			return fmt.Errorf("pair %s / %s: %w", input.FromURN, input.ToURN, domain.ErrEdgeExists)
		}

		edge, err = s.edges.Create(txCtx, &domain.RelationEdge{
			TenantID:  input.TenantID,
			FromURN:   input.FromURN,
			ToURN:     input.ToURN,
			Type:      input.Type,
			Metadata:  input.Metadata,
			CreatedBy: input.ActorID,
		})
		if err != nil {
			return fmt.Errorf("create edge: %w", err)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    input.ActorID,
			EntityType: domain.EntityTypeRelationEdge,
			EntityID:   &edge.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"from_urn": map[string]any{"new": input.FromURN},
				"to_urn":   map[string]any{"new": input.ToURN},
				"type":     map[string]any{"new": input.Type.String()},
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "edge created",
		slog.String("tenant_id", input.TenantID.String()),
		slog.String("edge_id", edge.ID.String()),
		slog.String("from_urn", edge.FromURN),
		slog.String("to_urn", edge.ToURN),
	)

	return edge, nil
}
