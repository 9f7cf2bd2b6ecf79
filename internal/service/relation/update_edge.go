package relation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/formabase/formabase-backend/internal/domain"
)

// UpdateEdge mutates an edge's endpoints, cardinality, or metadata. Changed
// URNs are re-validated against the grammar. The duplicate-pair invariant is
// not re-checked here explicitly, but the canonical-pair index still rejects
// an update that would produce a second live edge for the same unordered
// pair, so such updates fail with ErrEdgeExists.
func (s *Service) UpdateEdge(ctx context.Context, input UpdateEdgeInput) (*domain.RelationEdge, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if input.Params.FromURN != nil {
		if err := domain.ValidateURN(*input.Params.FromURN); err != nil {
			return nil, err
		}
	}
	if input.Params.ToURN != nil {
		if err := domain.ValidateURN(*input.Params.ToURN); err != nil {
			return nil, err
		}
	}

	var edge *domain.RelationEdge
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var updateErr error
		edge, updateErr = s.edges.Update(txCtx, input.TenantID, input.EdgeID, input.Params)
		if updateErr != nil {
			return fmt.Errorf("update edge: %w", updateErr)
		}

		changes := map[string]any{}
		if input.Params.FromURN != nil {
			changes["from_urn"] = map[string]any{"new": *input.Params.FromURN}
		}
		if input.Params.ToURN != nil {
			changes["to_urn"] = map[string]any{"new": *input.Params.ToURN}
		}
		if input.Params.Type != nil {
			changes["type"] = map[string]any{"new": input.Params.Type.String()}
		}
		if input.Params.Metadata != nil {
			changes["metadata"] = map[string]any{"new": input.Params.Metadata}
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    input.ActorID,
			EntityType: domain.EntityTypeRelationEdge,
			EntityID:   &edge.ID,
			Action:     domain.AuditActionUpdate,
			Changes:    changes,
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "edge updated",
		slog.String("tenant_id", input.TenantID.String()),
		slog.String("edge_id", edge.ID.String()),
	)

	return edge, nil
}
