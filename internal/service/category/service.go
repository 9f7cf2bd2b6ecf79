// Package category manages two tree-shaped groupings: field categories
// (named sections of a directory's field list) and category nodes (the
// depth-capped taxonomy trees cascader fields select from).
package category

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/formabase/formabase-backend/internal/domain"
)

type nodeRepo interface {
	Create(ctx context.Context, treeID uuid.UUID, parentID *uuid.UUID, name string) (*domain.CategoryNode, error)
	GetByID(ctx context.Context, treeID, id uuid.UUID) (*domain.CategoryNode, error)
	ListChildren(ctx context.Context, treeID uuid.UUID, parentID *uuid.UUID) ([]*domain.CategoryNode, error)
	Rename(ctx context.Context, treeID, id uuid.UUID, name string) (*domain.CategoryNode, error)
	SetParent(ctx context.Context, treeID, id uuid.UUID, parentID *uuid.UUID) (*domain.CategoryNode, error)
	Delete(ctx context.Context, treeID, id uuid.UUID) error
	SubtreeHeight(ctx context.Context, treeID, id uuid.UUID) (int, error)
	Depth(ctx context.Context, treeID, id uuid.UUID) (int, error)
	IsDescendant(ctx context.Context, treeID, id, candidate uuid.UUID) (bool, error)
}

type fieldCategoryRepo interface {
	Create(ctx context.Context, c *domain.FieldCategory) (*domain.FieldCategory, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.FieldCategory, error)
	ListByDirectory(ctx context.Context, directoryID uuid.UUID) ([]*domain.FieldCategory, error)
	Update(ctx context.Context, id uuid.UUID, params domain.FieldCategoryUpdateParams) (*domain.FieldCategory, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type fieldCounter interface {
	CountByCategory(ctx context.Context, categoryID uuid.UUID) (int, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides field category and category tree operations.
type Service struct {
	nodes      nodeRepo
	categories fieldCategoryRepo
	fields     fieldCounter
	audit      auditLogger
	tx         txManager
	log        *slog.Logger
}

// NewService creates a new category service.
func NewService(log *slog.Logger, nodes nodeRepo, categories fieldCategoryRepo, fields fieldCounter, audit auditLogger, tx txManager) *Service {
	return &Service{
		nodes:      nodes,
		categories: categories,
		fields:     fields,
		audit:      audit,
		tx:         tx,
		log:        log.With("service", "category"),
	}
}
