// Package field implements the FieldDefinition repository using PostgreSQL.
// The (directory_id, key) unique index maps to domain.ErrDuplicateKey; the
// type-specific config round-trips through the jsonb config column.
package field

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

const table = "field_definitions"

var columns = []string{
	"id", "directory_id", "category_id", "key", "label", "field_type",
	"is_required", "is_unique", "is_locked", "is_enabled",
	"show_in_list", "show_in_form", "show_in_detail",
	"position", "config", "created_at", "updated_at",
}

// Repo provides field definition persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new field repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func scanField(row pgx.Row) (*domain.FieldDefinition, error) {
	var f domain.FieldDefinition
	err := row.Scan(
		&f.ID, &f.DirectoryID, &f.CategoryID, &f.Key, &f.Label, &f.Type,
		&f.IsRequired, &f.IsUnique, &f.IsLocked, &f.IsEnabled,
		&f.ShowInList, &f.ShowInForm, &f.ShowInDetail,
		&f.Position, &f.Config, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// Create inserts a new field definition and returns the persisted row.
// Returns domain.ErrDuplicateKey if the directory already has the key.
func (r *Repo) Create(ctx context.Context, f *domain.FieldDefinition) (*domain.FieldDefinition, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("directory_id", "category_id", "key", "label", "field_type",
			"is_required", "is_unique", "is_locked", "is_enabled",
			"show_in_list", "show_in_form", "show_in_detail", "position", "config").
		Values(f.DirectoryID, f.CategoryID, f.Key, f.Label, f.Type,
			f.IsRequired, f.IsUnique, f.IsLocked, f.IsEnabled,
			f.ShowInList, f.ShowInForm, f.ShowInDetail, f.Position, f.Config).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	created, err := scanField(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "field", f.Key, domain.ErrDuplicateKey)
	}
	return created, nil
}

// GetByID returns a field by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.FieldDefinition, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	f, err := scanField(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "field", id.String(), nil)
	}
	return f, nil
}

// ListByDirectory returns all fields of a directory ordered by position.
// Returns an empty slice (not nil) when the directory has none.
func (r *Repo) ListByDirectory(ctx context.Context, directoryID uuid.UUID) ([]*domain.FieldDefinition, error) {
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
		return nil, fmt.Errorf("list fields: %w", err)
	}
	defer rows.Close()

	fields := []*domain.FieldDefinition{}
	for rows.Next() {
		f, err := scanField(rows)
		if err != nil {
			return nil, fmt.Errorf("scan field: %w", err)
		}
		fields = append(fields, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list fields: %w", err)
	}
	return fields, nil
}

// Update applies partial updates and returns the updated row. The key column
// is never touched here; immutability is enforced at the service layer.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.FieldUpdateParams) (*domain.FieldDefinition, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	update := postgres.Builder().
		Update(table).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id})

	if params.Label != nil {
		update = update.Set("label", *params.Label)
	}
	if params.IsRequired != nil {
		update = update.Set("is_required", *params.IsRequired)
	}
	if params.IsUnique != nil {
		update = update.Set("is_unique", *params.IsUnique)
	}
	if params.IsEnabled != nil {
		update = update.Set("is_enabled", *params.IsEnabled)
	}
	if params.ShowInList != nil {
		update = update.Set("show_in_list", *params.ShowInList)
	}
	if params.ShowInForm != nil {
		update = update.Set("show_in_form", *params.ShowInForm)
	}
	if params.ShowInDetail != nil {
		update = update.Set("show_in_detail", *params.ShowInDetail)
	}
	if params.Position != nil {
		update = update.Set("position", *params.Position)
	}
	if params.CategoryID != nil {
		update = update.Set("category_id", *params.CategoryID)
	}
	if params.Config != nil {
		update = update.Set("config", *params.Config)
	}

	sql, args, err := update.Suffix("RETURNING " + strings.Join(columns, ", ")).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}

	f, err := scanField(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "field", id.String(), domain.ErrDuplicateKey)
	}
	return f, nil
}

// Delete removes a field definition.
// Returns domain.ErrNotFound if absent.
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
		return postgres.MapError(err, "field", id.String(), nil)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("field %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// SetPositions rewrites the position of every listed field in one batch.
// Intended to run inside a transaction started by the caller.
func (r *Repo) SetPositions(ctx context.Context, directoryID uuid.UUID, orderedIDs []uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	batch := &pgx.Batch{}
	for pos, id := range orderedIDs {
		sql, args, err := postgres.Builder().
			Update(table).
			Set("position", pos).
			Set("updated_at", squirrel.Expr("now()")).
			Where(squirrel.Eq{"id": id, "directory_id": directoryID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("build position update: %w", err)
		}
		batch.Queue(sql, args...)
	}

	results := q.SendBatch(ctx, batch)
	defer results.Close()

	for range orderedIDs {
		if _, err := results.Exec(); err != nil {
			return postgres.MapError(err, "field order", directoryID.String(), nil)
		}
	}
	return nil
}

// CountByCategory returns how many fields are assigned to a field category.
// Used by the category deletion guard.
func (r *Repo) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select("COUNT(*)").
		From(table).
		Where(squirrel.Eq{"category_id": categoryID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count: %w", err)
	}

	var count int
	if err := q.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count fields by category: %w", err)
	}
	return count, nil
}

// ListRelationTargets returns fields across all directories of an application
// whose relation config targets the given directory. This is the reverse
// index behind the directory deletion guard.
func (r *Repo) ListRelationTargets(ctx context.Context, applicationID, targetDirectoryID uuid.UUID) ([]*domain.FieldDefinition, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	prefixed := make([]string, len(columns))
	for i, c := range columns {
		prefixed[i] = "f." + c
	}

	sql, args, err := postgres.Builder().
		Select(prefixed...).
		From(table + " f").
		Join("directories d ON d.id = f.directory_id").
		Where(squirrel.Eq{"d.application_id": applicationID}).
		Where(squirrel.Eq{"f.field_type": []string{
			domain.FieldTypeRelationOne.String(), domain.FieldTypeRelationMany.String(),
		}}).
		Where(squirrel.Expr("f.config -> 'relation' ->> 'target_directory_id' = ?", targetDirectoryID.String())).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list relation targets: %w", err)
	}
	defer rows.Close()

	fields := []*domain.FieldDefinition{}
	for rows.Next() {
		f, err := scanField(rows)
		if err != nil {
			return nil, fmt.Errorf("scan field: %w", err)
		}
		fields = append(fields, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list relation targets: %w", err)
	}
	return fields, nil
}
