// Package directory implements the Directory repository using PostgreSQL.
// Directories are application-scoped; name uniqueness is enforced by a
// case-insensitive unique index mapped to domain.ErrDuplicateName.
package directory

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

const table = "directories"

var columns = []string{
	"id", "application_id", "module_id", "name", "kind", "supports_category",
	"position", "is_enabled", "is_system", "config", "created_at", "updated_at",
}

// Repo provides directory persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new directory repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func scanDirectory(row pgx.Row) (*domain.Directory, error) {
	var d domain.Directory
	err := row.Scan(
		&d.ID, &d.ApplicationID, &d.ModuleID, &d.Name, &d.Kind, &d.SupportsCategory,
		&d.Position, &d.IsEnabled, &d.IsSystem, &d.Config, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Create inserts a new directory and returns the persisted row.
// Returns domain.ErrDuplicateName if the application already has a directory
// with the same name (case-insensitive).
func (r *Repo) Create(ctx context.Context, d *domain.Directory) (*domain.Directory, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	config := d.Config
	if config == nil {
		config = map[string]any{}
	}

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("application_id", "module_id", "name", "kind", "supports_category",
			"position", "is_enabled", "is_system", "config").
		Values(d.ApplicationID, d.ModuleID, d.Name, d.Kind, d.SupportsCategory,
			d.Position, d.IsEnabled, d.IsSystem, config).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	created, err := scanDirectory(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "directory", d.Name, domain.ErrDuplicateName)
	}
	return created, nil
}

// GetByID returns a directory by primary key scoped to an application.
// Returns domain.ErrNotFound if absent or owned by another application.
func (r *Repo) GetByID(ctx context.Context, applicationID, id uuid.UUID) (*domain.Directory, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id, "application_id": applicationID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	d, err := scanDirectory(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "directory", id.String(), nil)
	}
	return d, nil
}

// List returns all directories of an application ordered by position.
// Returns an empty slice (not nil) when the application has none.
func (r *Repo) List(ctx context.Context, applicationID uuid.UUID) ([]*domain.Directory, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"application_id": applicationID}).
		OrderBy("position ASC", "created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list directories: %w", err)
	}
	defer rows.Close()

	dirs := []*domain.Directory{}
	for rows.Next() {
		d, err := scanDirectory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan directory: %w", err)
		}
		dirs = append(dirs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list directories: %w", err)
	}
	return dirs, nil
}

// Update applies partial updates to a directory and returns the updated row.
// Returns domain.ErrNotFound if absent, domain.ErrDuplicateName on a rename
// collision.
func (r *Repo) Update(ctx context.Context, applicationID, id uuid.UUID, params domain.DirectoryUpdateParams) (*domain.Directory, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	update := postgres.Builder().
		Update(table).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "application_id": applicationID})

	if params.Name != nil {
		update = update.Set("name", *params.Name)
	}
	if params.Position != nil {
		update = update.Set("position", *params.Position)
	}
	if params.IsEnabled != nil {
		update = update.Set("is_enabled", *params.IsEnabled)
	}
	if params.Config != nil {
		update = update.Set("config", params.Config)
	}

	sql, args, err := update.Suffix("RETURNING " + joinColumns()).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}

	d, err := scanDirectory(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "directory", id.String(), domain.ErrDuplicateName)
	}
	return d, nil
}

// Delete removes a directory. Field definitions and field categories cascade
// at the storage level; the service layer runs the emptiness guards first.
// Returns domain.ErrNotFound if absent or owned by another application.
func (r *Repo) Delete(ctx context.Context, applicationID, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": id, "application_id": applicationID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "directory", id.String(), nil)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("directory %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func joinColumns() string {
	return strings.Join(columns, ", ")
}
