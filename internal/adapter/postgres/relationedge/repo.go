// Package relationedge implements the RelationEdge repository using
// PostgreSQL. A partial unique index on the canonical (least, greatest) URN
// pair keeps at most one live edge per unordered pair per tenant; a race-lost
// insert surfaces as domain.ErrEdgeExists.
package relationedge

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/formabase/formabase-backend/internal/adapter/postgres"
	"github.com/formabase/formabase-backend/internal/domain"
)

const table = "relation_edges"

var columns = []string{
	"id", "tenant_id", "from_urn", "to_urn", "relation_type", "metadata",
	"created_by", "created_at", "updated_at", "deleted_at",
}

// Repo provides relation edge persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new relation edge repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func scanEdge(row pgx.Row) (*domain.RelationEdge, error) {
	var e domain.RelationEdge
	err := row.Scan(
		&e.ID, &e.TenantID, &e.FromURN, &e.ToURN, &e.Type, &e.Metadata,
		&e.CreatedBy, &e.CreatedAt, &e.UpdatedAt, &e.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func collectEdges(rows pgx.Rows) ([]*domain.RelationEdge, error) {
	defer rows.Close()

	edges := []*domain.RelationEdge{}
	for rows.Next() {
		e, err := scanEdge(rows)
		if err != nil {
			return nil, fmt.Errorf("scan edge: %w", err)
		}
		edges = append(edges, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return edges, nil
}

// Create inserts a new edge and returns the persisted row. The live-pair
// unique index rejects a second live edge for the same unordered pair with
// domain.ErrEdgeExists, closing the race between opposite-direction writers.
func (r *Repo) Create(ctx context.Context, e *domain.RelationEdge) (*domain.RelationEdge, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	metadata := e.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("tenant_id", "from_urn", "to_urn", "relation_type", "metadata", "created_by").
		Values(e.TenantID, e.FromURN, e.ToURN, e.Type, metadata, e.CreatedBy).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	created, err := scanEdge(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "edge", e.FromURN+" -> "+e.ToURN, domain.ErrEdgeExists)
	}
	return created, nil
}

// GetByID returns an edge by primary key, soft-deleted rows included;
// callers decide whether a deleted edge is acceptable.
func (r *Repo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.RelationEdge, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	e, err := scanEdge(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "edge", id.String(), nil)
	}
	return e, nil
}

// Query returns live edges matching the filter, newest first, with the total
// count of matches before pagination.
func (r *Repo) Query(ctx context.Context, filter domain.EdgeFilter, page domain.PageFilter) ([]*domain.RelationEdge, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	page = page.Normalize()

	where := squirrel.And{squirrel.Eq{"deleted_at": nil}}
	if filter.TenantID != nil {
		where = append(where, squirrel.Eq{"tenant_id": *filter.TenantID})
	}
	if filter.FromURN != nil {
		where = append(where, squirrel.Eq{"from_urn": *filter.FromURN})
	}
	if filter.ToURN != nil {
		where = append(where, squirrel.Eq{"to_urn": *filter.ToURN})
	}
	if filter.Type != nil {
		where = append(where, squirrel.Eq{"relation_type": *filter.Type})
	}

	countSQL, countArgs, err := postgres.Builder().
		Select("COUNT(*)").
		From(table).
		Where(where).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count edges: %w", err)
	}

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset())).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build select: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query edges: %w", err)
	}

	edges, err := collectEdges(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("query edges: %w", err)
	}
	return edges, total, nil
}

// Update applies partial updates to a live edge and returns the updated row.
// A URN change that collides with another live pair violates the canonical
// index and surfaces as domain.ErrEdgeExists.
func (r *Repo) Update(ctx context.Context, tenantID, id uuid.UUID, params domain.EdgeUpdateParams) (*domain.RelationEdge, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	update := postgres.Builder().
		Update(table).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID, "deleted_at": nil})

	if params.FromURN != nil {
		update = update.Set("from_urn", *params.FromURN)
	}
	if params.ToURN != nil {
		update = update.Set("to_urn", *params.ToURN)
	}
	if params.Type != nil {
		update = update.Set("relation_type", *params.Type)
	}
	if params.Metadata != nil {
		update = update.Set("metadata", params.Metadata)
	}

	sql, args, err := update.Suffix("RETURNING " + strings.Join(columns, ", ")).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}

	e, err := scanEdge(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "edge", id.String(), domain.ErrEdgeExists)
	}
	return e, nil
}

// SoftDelete marks an edge deleted. Returns false without error when the
// edge is already deleted or absent, making the operation idempotent.
func (r *Repo) SoftDelete(ctx context.Context, tenantID, id uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Update(table).
		Set("deleted_at", squirrel.Expr("now()")).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID, "deleted_at": nil}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build delete: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return false, postgres.MapError(err, "edge", id.String(), nil)
	}
	return tag.RowsAffected() > 0, nil
}

// FindByURN returns all live edges where the URN appears as either endpoint,
// newest first.
func (r *Repo) FindByURN(ctx context.Context, tenantID uuid.UUID, urn string) ([]*domain.RelationEdge, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"tenant_id": tenantID, "deleted_at": nil}).
		Where(squirrel.Or{squirrel.Eq{"from_urn": urn}, squirrel.Eq{"to_urn": urn}}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("find by urn: %w", err)
	}

	edges, err := collectEdges(rows)
	if err != nil {
		return nil, fmt.Errorf("find by urn: %w", err)
	}
	return edges, nil
}

// FindByURNPair returns live edges matching the unordered pair {a, b}
// in either direction. This is the primitive the duplicate check builds on.
func (r *Repo) FindByURNPair(ctx context.Context, tenantID uuid.UUID, a, b string) ([]*domain.RelationEdge, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"tenant_id": tenantID, "deleted_at": nil}).
		Where(squirrel.Or{
			squirrel.Eq{"from_urn": a, "to_urn": b},
			squirrel.Eq{"from_urn": b, "to_urn": a},
		}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("find by urn pair: %w", err)
	}

	edges, err := collectEdges(rows)
	if err != nil {
		return nil, fmt.Errorf("find by urn pair: %w", err)
	}
	return edges, nil
}

// HardDeleteOld physically removes soft-deleted edges whose deleted_at is
// before the threshold. Invoked by the cleanup command, never in-process.
func (r *Repo) HardDeleteOld(ctx context.Context, threshold time.Time) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Lt{"deleted_at": threshold}).
		Where(squirrel.NotEq{"deleted_at": nil}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("hard delete edges: %w", err)
	}
	return tag.RowsAffected(), nil
}
