// Package record exposes read-only counts from the record engine's storage.
// The records table is owned and migrated by the record engine; this adapter
// only answers the emptiness question the schema registry needs before a
// directory can be deleted.
package record

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/formabase/formabase-backend/internal/adapter/postgres"
)

// Repo provides record counts backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new record count repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// CountByDirectory returns the number of live records in a directory.
// Soft-deleted records do not block directory deletion.
func (r *Repo) CountByDirectory(ctx context.Context, directoryID uuid.UUID) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select("COUNT(*)").
		From("records").
		Where(squirrel.Eq{"directory_id": directoryID, "deleted_at": nil}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count: %w", err)
	}

	var count int64
	if err := q.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}
	return count, nil
}
