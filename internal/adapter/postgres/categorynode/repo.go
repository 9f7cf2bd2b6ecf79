// Package categorynode implements the CategoryNode repository using
// PostgreSQL. Trees are parent-indexed adjacency rows; deleting a node
// removes the whole subtree through the ON DELETE CASCADE constraint in a
// single statement.
package categorynode

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/formabase/formabase-backend/internal/adapter/postgres"
	"github.com/formabase/formabase-backend/internal/domain"
)

const table = "category_nodes"

var columns = []string{
	"id", "tree_id", "parent_id", "name", "position", "created_at", "updated_at",
}

// Repo provides category node persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new category node repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func scanNode(row pgx.Row) (*domain.CategoryNode, error) {
	var n domain.CategoryNode
	err := row.Scan(&n.ID, &n.TreeID, &n.ParentID, &n.Name, &n.Position, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// Create inserts a node at the end of its sibling list and returns it.
// Returns domain.ErrDuplicateName if a sibling already carries the name.
func (r *Repo) Create(ctx context.Context, treeID uuid.UUID, parentID *uuid.UUID, name string) (*domain.CategoryNode, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	position := squirrel.Expr(
		"(SELECT COALESCE(MAX(position) + 1, 0) FROM "+table+
			" WHERE tree_id = ? AND parent_id IS NOT DISTINCT FROM ?)",
		treeID, parentID,
	)

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("tree_id", "parent_id", "name", "position").
		Values(treeID, parentID, name, position).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	n, err := scanNode(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "category node", name, domain.ErrDuplicateName)
	}
	return n, nil
}

// GetByID returns a node by primary key scoped to its tree.
func (r *Repo) GetByID(ctx context.Context, treeID, id uuid.UUID) (*domain.CategoryNode, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id, "tree_id": treeID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	n, err := scanNode(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "category node", id.String(), nil)
	}
	return n, nil
}

// ListChildren returns the direct children of parentID (nil for roots)
// ordered by position. Returns an empty slice (not nil) when there are none.
func (r *Repo) ListChildren(ctx context.Context, treeID uuid.UUID, parentID *uuid.UUID) ([]*domain.CategoryNode, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	where := squirrel.And{squirrel.Eq{"tree_id": treeID}}
	if parentID == nil {
		where = append(where, squirrel.Eq{"parent_id": nil})
	} else {
		where = append(where, squirrel.Eq{"parent_id": *parentID})
	}

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		OrderBy("position ASC", "created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list children: %w", err)
	}
	defer rows.Close()

	nodes := []*domain.CategoryNode{}
	for rows.Next() {
		n, err := scanNode(rows)
		if err != nil {
			return nil, fmt.Errorf("scan node: %w", err)
		}
		nodes = append(nodes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list children: %w", err)
	}
	return nodes, nil
}

// Rename updates the node's name in place; identity and children are
// untouched. Returns domain.ErrDuplicateName on a sibling collision.
func (r *Repo) Rename(ctx context.Context, treeID, id uuid.UUID, name string) (*domain.CategoryNode, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Update(table).
		Set("name", name).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "tree_id": treeID}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}

	n, err := scanNode(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "category node", id.String(), domain.ErrDuplicateName)
	}
	return n, nil
}

// SetParent reparents a node. Depth and cycle checks belong to the service.
func (r *Repo) SetParent(ctx context.Context, treeID, id uuid.UUID, parentID *uuid.UUID) (*domain.CategoryNode, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	position := squirrel.Expr(
		"(SELECT COALESCE(MAX(position) + 1, 0) FROM "+table+
			" WHERE tree_id = ? AND parent_id IS NOT DISTINCT FROM ?)",
		treeID, parentID,
	)

	sql, args, err := postgres.Builder().
		Update(table).
		Set("parent_id", parentID).
		Set("position", position).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "tree_id": treeID}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}

	n, err := scanNode(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "category node", id.String(), domain.ErrDuplicateName)
	}
	return n, nil
}

// Delete removes a node; descendants go with it via ON DELETE CASCADE, so
// the subtree disappears atomically within the surrounding transaction.
// Returns domain.ErrNotFound if absent.
func (r *Repo) Delete(ctx context.Context, treeID, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": id, "tree_id": treeID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "category node", id.String(), nil)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("category node %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// SubtreeHeight returns the height of the subtree rooted at id: 1 for a
// leaf, 2 if it has children, 3 if it has grandchildren. Trees never exceed
// three levels so the recursive CTE is bounded.
func (r *Repo) SubtreeHeight(ctx context.Context, treeID, id uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	const sql = `
WITH RECURSIVE subtree AS (
    SELECT id, 1 AS depth FROM category_nodes WHERE id = $1 AND tree_id = $2
    UNION ALL
    SELECT c.id, s.depth + 1 FROM category_nodes c
    JOIN subtree s ON c.parent_id = s.id
)
SELECT COALESCE(MAX(depth), 0) FROM subtree`

	var height int
	if err := q.QueryRow(ctx, sql, id, treeID).Scan(&height); err != nil {
		return 0, fmt.Errorf("subtree height: %w", err)
	}
	if height == 0 {
		return 0, fmt.Errorf("category node %s: %w", id, domain.ErrNotFound)
	}
	return height, nil
}

// Depth returns how deep the node sits in its tree: 1 for a root. Walks the
// parent chain upward with a recursive CTE.
func (r *Repo) Depth(ctx context.Context, treeID, id uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	const sql = `
WITH RECURSIVE ancestors AS (
    SELECT id, parent_id, 1 AS depth FROM category_nodes WHERE id = $1 AND tree_id = $2
    UNION ALL
    SELECT c.id, c.parent_id, a.depth + 1 FROM category_nodes c
    JOIN ancestors a ON c.id = a.parent_id
)
SELECT COALESCE(MAX(depth), 0) FROM ancestors`

	var depth int
	if err := q.QueryRow(ctx, sql, id, treeID).Scan(&depth); err != nil {
		return 0, fmt.Errorf("node depth: %w", err)
	}
	if depth == 0 {
		return 0, fmt.Errorf("category node %s: %w", id, domain.ErrNotFound)
	}
	return depth, nil
}

// IsDescendant reports whether candidate sits in the subtree rooted at id.
func (r *Repo) IsDescendant(ctx context.Context, treeID, id, candidate uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	const sql = `
WITH RECURSIVE subtree AS (
    SELECT id FROM category_nodes WHERE id = $1 AND tree_id = $2
    UNION ALL
    SELECT c.id FROM category_nodes c JOIN subtree s ON c.parent_id = s.id
)
SELECT EXISTS (SELECT 1 FROM subtree WHERE id = $3)`

	var found bool
	if err := q.QueryRow(ctx, sql, id, treeID, candidate).Scan(&found); err != nil {
		return false, fmt.Errorf("is descendant: %w", err)
	}
	return found, nil
}
