// Package fieldcategory implements the FieldCategory repository using
// PostgreSQL. Category names are unique per directory (case-insensitive).
package fieldcategory

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

const table = "field_categories"

var columns = []string{
	"id", "directory_id", "name", "description", "position",
	"is_enabled", "is_system", "predefined", "created_at", "updated_at",
}

// Repo provides field category persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new field category repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func scanCategory(row pgx.Row) (*domain.FieldCategory, error) {
	var c domain.FieldCategory
	err := row.Scan(
		&c.ID, &c.DirectoryID, &c.Name, &c.Description, &c.Position,
		&c.IsEnabled, &c.IsSystem, &c.Predefined, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a new field category and returns the persisted row.
// Returns domain.ErrDuplicateName on a per-directory name collision.
func (r *Repo) Create(ctx context.Context, c *domain.FieldCategory) (*domain.FieldCategory, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	predefined := c.Predefined
	if predefined == nil {
		predefined = []domain.PredefinedField{}
	}

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("directory_id", "name", "description", "position", "is_enabled", "is_system", "predefined").
		Values(c.DirectoryID, c.Name, c.Description, c.Position, c.IsEnabled, c.IsSystem, predefined).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	created, err := scanCategory(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "field category", c.Name, domain.ErrDuplicateName)
	}
	return created, nil
}

// GetByID returns a field category by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.FieldCategory, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	c, err := scanCategory(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "field category", id.String(), nil)
	}
	return c, nil
}

// ListByDirectory returns all field categories of a directory ordered by
// position. Returns an empty slice (not nil) when there are none.
func (r *Repo) ListByDirectory(ctx context.Context, directoryID uuid.UUID) ([]*domain.FieldCategory, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"directory_id": directoryID}).
		OrderBy("position ASC", "created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list field categories: %w", err)
	}
	defer rows.Close()

	cats := []*domain.FieldCategory{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan field category: %w", err)
		}
		cats = append(cats, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list field categories: %w", err)
	}
	return cats, nil
}

// Update applies partial updates and returns the updated row.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.FieldCategoryUpdateParams) (*domain.FieldCategory, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	update := postgres.Builder().
		Update(table).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id})

	if params.Name != nil {
		update = update.Set("name", *params.Name)
	}
	if params.Description != nil {
		if *params.Description == "" {
			update = update.Set("description", nil)
		} else {
			update = update.Set("description", *params.Description)
		}
	}
	if params.Position != nil {
		update = update.Set("position", *params.Position)
	}
	if params.IsEnabled != nil {
		update = update.Set("is_enabled", *params.IsEnabled)
	}

	sql, args, err := update.Suffix("RETURNING " + strings.Join(columns, ", ")).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}

	c, err := scanCategory(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "field category", id.String(), domain.ErrDuplicateName)
	}
	return c, nil
}

// Delete removes a field category. Fields pointing at it get their
// category_id cleared by the ON DELETE SET NULL constraint, but the service
// layer rejects deletion while dependent fields exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "field category", id.String(), nil)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("field category %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
