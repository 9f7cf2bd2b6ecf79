// Package schema is the registry of directories and their field definitions.
// It owns structural metadata only; record contents live behind the record
// store collaborator.
package schema

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/formabase/formabase-backend/internal/domain"
)

type directoryRepo interface {
	Create(ctx context.Context, d *domain.Directory) (*domain.Directory, error)
	GetByID(ctx context.Context, applicationID, id uuid.UUID) (*domain.Directory, error)
	List(ctx context.Context, applicationID uuid.UUID) ([]*domain.Directory, error)
	Update(ctx context.Context, applicationID, id uuid.UUID, params domain.DirectoryUpdateParams) (*domain.Directory, error)
	Delete(ctx context.Context, applicationID, id uuid.UUID) error
}

type fieldRepo interface {
	Create(ctx context.Context, f *domain.FieldDefinition) (*domain.FieldDefinition, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.FieldDefinition, error)
	ListByDirectory(ctx context.Context, directoryID uuid.UUID) ([]*domain.FieldDefinition, error)
	Update(ctx context.Context, id uuid.UUID, params domain.FieldUpdateParams) (*domain.FieldDefinition, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SetPositions(ctx context.Context, directoryID uuid.UUID, orderedIDs []uuid.UUID) error
	ListRelationTargets(ctx context.Context, applicationID, targetDirectoryID uuid.UUID) ([]*domain.FieldDefinition, error)
}

type fieldCategoryGetter interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.FieldCategory, error)
}

// recordStore answers how many records a directory holds. The actual record
// engine lives in another system; only the emptiness check crosses over here.
type recordStore interface {
	CountByDirectory(ctx context.Context, directoryID uuid.UUID) (int64, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides directory and field definition management.
type Service struct {
	directories directoryRepo
	fields      fieldRepo
	categories  fieldCategoryGetter
	records     recordStore
	audit       auditLogger
	tx          txManager
	log         *slog.Logger
}

// NewService creates a new schema registry service.
func NewService(
	log *slog.Logger,
	directories directoryRepo,
	fields fieldRepo,
	categories fieldCategoryGetter,
	records recordStore,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		directories: directories,
		fields:      fields,
		categories:  categories,
		records:     records,
		audit:       audit,
		tx:          tx,
		log:         log.With("service", "schema"),
	}
}
