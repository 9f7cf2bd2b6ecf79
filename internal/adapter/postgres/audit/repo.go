// Package audit persists audit log records. Records are written inside the
// same transaction as the mutation they describe.
package audit

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/formabase/formabase-backend/internal/adapter/postgres"
	"github.com/formabase/formabase-backend/internal/domain"
)

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new audit repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Log inserts a single audit record.
func (r *Repo) Log(ctx context.Context, record domain.AuditRecord) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	changes := record.Changes
	if changes == nil {
		changes = map[string]any{}
	}

	sql, args, err := postgres.Builder().
		Insert("audit_log").
		Columns("actor_id", "entity_type", "entity_id", "action", "changes").
		Values(record.ActorID, record.EntityType, record.EntityID, record.Action, changes).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert audit record: %w", err)
	}
	return nil
}
