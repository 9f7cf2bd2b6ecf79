package relation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/formabase/formabase-backend/internal/domain"
)

// DeleteEdge soft-deletes an edge. Idempotent: returns true when the edge
// was live and is now deleted, false when it was already deleted or absent.
func (s *Service) DeleteEdge(ctx context.Context, input DeleteEdgeInput) (bool, error) {
	if err := input.Validate(); err != nil {
		return false, err
	}

	var deleted bool
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var delErr error
		deleted, delErr = s.edges.SoftDelete(txCtx, input.TenantID, input.EdgeID)
		if delErr != nil {
			return fmt.Errorf("delete edge: %w", delErr)
		}
		if !deleted {
			return nil
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    input.ActorID,
			EntityType: domain.EntityTypeRelationEdge,
			EntityID:   &input.EdgeID,
			Action:     domain.AuditActionDelete,
			Changes:    map[string]any{},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return false, err
	}

	if deleted {
		s.log.InfoContext(ctx, "edge deleted",
			slog.String("tenant_id", input.TenantID.String()),
			slog.String("edge_id", input.EdgeID.String()),
		)
	}

	return deleted, nil
}

// PurgeDeleted physically removes edges soft-deleted before the threshold.
// Called by the cleanup command only.
func (s *Service) PurgeDeleted(ctx context.Context, input PurgeInput) (int64, error) {
	if err := input.Validate(); err != nil {
		return 0, err
	}

	purged, err := s.edges.HardDeleteOld(ctx, input.Threshold)
	if err != nil {
		return 0, fmt.Errorf("purge deleted edges: %w", err)
	}

	s.log.InfoContext(ctx, "deleted edges purged",
		slog.Int64("purged", purged),
		slog.Time("threshold", input.Threshold),
	)

	return purged, nil
}
