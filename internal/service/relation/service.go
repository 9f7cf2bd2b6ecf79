// Package relation is the tenant-scoped, URN-addressed edge graph store. It
// knows nothing about directories or fields, only URNs and cardinalities.
package relation

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/formabase/formabase-backend/internal/domain"
)

type edgeRepo interface {
	Create(ctx context.Context, e *domain.RelationEdge) (*domain.RelationEdge, error)
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.RelationEdge, error)
	Query(ctx context.Context, filter domain.EdgeFilter, page domain.PageFilter) ([]*domain.RelationEdge, int, error)
	Update(ctx context.Context, tenantID, id uuid.UUID, params domain.EdgeUpdateParams) (*domain.RelationEdge, error)
	SoftDelete(ctx context.Context, tenantID, id uuid.UUID) (bool, error)
	FindByURN(ctx context.Context, tenantID uuid.UUID, urn string) ([]*domain.RelationEdge, error)
	FindByURNPair(ctx context.Context, tenantID uuid.UUID, a, b string) ([]*domain.RelationEdge, error)
	HardDeleteOld(ctx context.Context, threshold time.Time) (int64, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides relation edge management operations.
type Service struct {
	edges edgeRepo
	audit auditLogger
	tx    txManager
	log   *slog.Logger
}

// NewService creates a new relation graph service.
func NewService(log *slog.Logger, edges edgeRepo, audit auditLogger, tx txManager) *Service {
	return &Service{
		edges: edges,
		audit: audit,
		tx:    tx,
		log:   log.With("service", "relation"),
	}
}
