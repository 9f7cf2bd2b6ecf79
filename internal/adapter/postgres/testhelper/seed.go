package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/formabase/formabase-backend/internal/domain"
)

// SeedDirectory inserts a directory row directly and returns it.
// Names get a random suffix so parallel tests don't collide on the
// per-application unique index.
func SeedDirectory(t *testing.T, pool *pgxpool.Pool, applicationID uuid.UUID) *domain.Directory {
	t.Helper()

	d := &domain.Directory{
		ApplicationID:    applicationID,
		ModuleID:         uuid.New(),
		Name:             "dir-" + uuid.New().String()[:8],
		Kind:             domain.DirectoryKindTable,
		SupportsCategory: true,
		IsEnabled:        true,
	}

	err := pool.QueryRow(context.Background(), `
INSERT INTO directories (application_id, module_id, name, kind, supports_category, is_enabled)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, created_at, updated_at`,
		d.ApplicationID, d.ModuleID, d.Name, d.Kind, d.SupportsCategory, d.IsEnabled,
	).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: seed directory: %v", err)
	}
	return d
}

// SeedFieldCategory inserts a field category row directly and returns it.
func SeedFieldCategory(t *testing.T, pool *pgxpool.Pool, directoryID uuid.UUID) *domain.FieldCategory {
	t.Helper()

	c := &domain.FieldCategory{
		DirectoryID: directoryID,
		Name:        "cat-" + uuid.New().String()[:8],
		IsEnabled:   true,
	}

	err := pool.QueryRow(context.Background(), `
INSERT INTO field_categories (directory_id, name, is_enabled)
VALUES ($1, $2, $3)
RETURNING id, created_at, updated_at`,
		c.DirectoryID, c.Name, c.IsEnabled,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: seed field category: %v", err)
	}
	return c
}

// SeedField inserts a field definition row directly and returns it.
func SeedField(t *testing.T, pool *pgxpool.Pool, directoryID uuid.UUID, key string) *domain.FieldDefinition {
	t.Helper()

	f := &domain.FieldDefinition{
		DirectoryID: directoryID,
		Key:         key,
		Label:       key,
		Type:        domain.FieldTypeText,
		IsEnabled:   true,
		ShowInList:  true,
		ShowInForm:  true,
		ShowInDetail: true,
	}

	err := pool.QueryRow(context.Background(), `
INSERT INTO field_definitions (directory_id, key, label, field_type, is_enabled, show_in_list, show_in_form, show_in_detail)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id, created_at, updated_at`,
		f.DirectoryID, f.Key, f.Label, f.Type, f.IsEnabled, f.ShowInList, f.ShowInForm, f.ShowInDetail,
	).Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: seed field: %v", err)
	}
	return f
}
