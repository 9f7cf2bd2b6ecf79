package schema

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/formabase/formabase-backend/internal/domain"
)

var _ directoryRepo = &directoryRepoMock{}

type directoryRepoMock struct {
	CreateFunc  func(ctx context.Context, d *domain.Directory) (*domain.Directory, error)
	GetByIDFunc func(ctx context.Context, applicationID, id uuid.UUID) (*domain.Directory, error)
	ListFunc    func(ctx context.Context, applicationID uuid.UUID) ([]*domain.Directory, error)
	UpdateFunc  func(ctx context.Context, applicationID, id uuid.UUID, params domain.DirectoryUpdateParams) (*domain.Directory, error)
	DeleteFunc  func(ctx context.Context, applicationID, id uuid.UUID) error

	calls struct {
		Delete []struct{ ID uuid.UUID }
	}
	lock sync.RWMutex
}

func (m *directoryRepoMock) Create(ctx context.Context, d *domain.Directory) (*domain.Directory, error) {
	if m.CreateFunc == nil {
		panic("directoryRepoMock.CreateFunc: method is nil but directoryRepo.Create was just called")
	}
	return m.CreateFunc(ctx, d)
}

func (m *directoryRepoMock) GetByID(ctx context.Context, applicationID, id uuid.UUID) (*domain.Directory, error) {
	if m.GetByIDFunc == nil {
		panic("directoryRepoMock.GetByIDFunc: method is nil but directoryRepo.GetByID was just called")
	}
	return m.GetByIDFunc(ctx, applicationID, id)
}

func (m *directoryRepoMock) List(ctx context.Context, applicationID uuid.UUID) ([]*domain.Directory, error) {
	if m.ListFunc == nil {
		panic("directoryRepoMock.ListFunc: method is nil but directoryRepo.List was just called")
	}
	return m.ListFunc(ctx, applicationID)
}

func (m *directoryRepoMock) Update(ctx context.Context, applicationID, id uuid.UUID, params domain.DirectoryUpdateParams) (*domain.Directory, error) {
	if m.UpdateFunc == nil {
		panic("directoryRepoMock.UpdateFunc: method is nil but directoryRepo.Update was just called")
	}
	return m.UpdateFunc(ctx, applicationID, id, params)
}

func (m *directoryRepoMock) Delete(ctx context.Context, applicationID, id uuid.UUID) error {
	if m.DeleteFunc == nil {
		panic("directoryRepoMock.DeleteFunc: method is nil but directoryRepo.Delete was just called")
	}
	m.lock.Lock()
	m.calls.Delete = append(m.calls.Delete, struct{ ID uuid.UUID }{id})
	m.lock.Unlock()
	return m.DeleteFunc(ctx, applicationID, id)
}

func (m *directoryRepoMock) DeleteCalls() []struct{ ID uuid.UUID } {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.calls.Delete
}

var _ fieldRepo = &fieldRepoMock{}

type fieldRepoMock struct {
	CreateFunc              func(ctx context.Context, f *domain.FieldDefinition) (*domain.FieldDefinition, error)
	GetByIDFunc             func(ctx context.Context, id uuid.UUID) (*domain.FieldDefinition, error)
	ListByDirectoryFunc     func(ctx context.Context, directoryID uuid.UUID) ([]*domain.FieldDefinition, error)
	UpdateFunc              func(ctx context.Context, id uuid.UUID, params domain.FieldUpdateParams) (*domain.FieldDefinition, error)
	DeleteFunc              func(ctx context.Context, id uuid.UUID) error
	SetPositionsFunc        func(ctx context.Context, directoryID uuid.UUID, orderedIDs []uuid.UUID) error
	ListRelationTargetsFunc func(ctx context.Context, applicationID, targetDirectoryID uuid.UUID) ([]*domain.FieldDefinition, error)

	calls struct {
		Create       []struct{ Field *domain.FieldDefinition }
		SetPositions []struct{ OrderedIDs []uuid.UUID }
	}
	lock sync.RWMutex
}

func (m *fieldRepoMock) Create(ctx context.Context, f *domain.FieldDefinition) (*domain.FieldDefinition, error) {
	if m.CreateFunc == nil {
		panic("fieldRepoMock.CreateFunc: method is nil but fieldRepo.Create was just called")
	}
	m.lock.Lock()
	m.calls.Create = append(m.calls.Create, struct{ Field *domain.FieldDefinition }{f})
	m.lock.Unlock()
	return m.CreateFunc(ctx, f)
}

func (m *fieldRepoMock) CreateCalls() []struct{ Field *domain.FieldDefinition } {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.calls.Create
}

func (m *fieldRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.FieldDefinition, error) {
	if m.GetByIDFunc == nil {
		panic("fieldRepoMock.GetByIDFunc: method is nil but fieldRepo.GetByID was just called")
	}
	return m.GetByIDFunc(ctx, id)
}

func (m *fieldRepoMock) ListByDirectory(ctx context.Context, directoryID uuid.UUID) ([]*domain.FieldDefinition, error) {
	if m.ListByDirectoryFunc == nil {
		panic("fieldRepoMock.ListByDirectoryFunc: method is nil but fieldRepo.ListByDirectory was just called")
	}
	return m.ListByDirectoryFunc(ctx, directoryID)
}

func (m *fieldRepoMock) Update(ctx context.Context, id uuid.UUID, params domain.FieldUpdateParams) (*domain.FieldDefinition, error) {
	if m.UpdateFunc == nil {
		panic("fieldRepoMock.UpdateFunc: method is nil but fieldRepo.Update was just called")
	}
	return m.UpdateFunc(ctx, id, params)
}

func (m *fieldRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc == nil {
		panic("fieldRepoMock.DeleteFunc: method is nil but fieldRepo.Delete was just called")
	}
	return m.DeleteFunc(ctx, id)
}

func (m *fieldRepoMock) SetPositions(ctx context.Context, directoryID uuid.UUID, orderedIDs []uuid.UUID) error {
	if m.SetPositionsFunc == nil {
		panic("fieldRepoMock.SetPositionsFunc: method is nil but fieldRepo.SetPositions was just called")
	}
	m.lock.Lock()
	m.calls.SetPositions = append(m.calls.SetPositions, struct{ OrderedIDs []uuid.UUID }{orderedIDs})
	m.lock.Unlock()
	return m.SetPositionsFunc(ctx, directoryID, orderedIDs)
}

func (m *fieldRepoMock) SetPositionsCalls() []struct{ OrderedIDs []uuid.UUID } {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.calls.SetPositions
}

func (m *fieldRepoMock) ListRelationTargets(ctx context.Context, applicationID, targetDirectoryID uuid.UUID) ([]*domain.FieldDefinition, error) {
	if m.ListRelationTargetsFunc == nil {
		panic("fieldRepoMock.ListRelationTargetsFunc: method is nil but fieldRepo.ListRelationTargets was just called")
	}
	return m.ListRelationTargetsFunc(ctx, applicationID, targetDirectoryID)
}

var _ fieldCategoryGetter = &fieldCategoryGetterMock{}

type fieldCategoryGetterMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.FieldCategory, error)
}

func (m *fieldCategoryGetterMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.FieldCategory, error) {
	if m.GetByIDFunc == nil {
		panic("fieldCategoryGetterMock.GetByIDFunc: method is nil but fieldCategoryGetter.GetByID was just called")
	}
	return m.GetByIDFunc(ctx, id)
}

var _ recordStore = &recordStoreMock{}

type recordStoreMock struct {
	CountByDirectoryFunc func(ctx context.Context, directoryID uuid.UUID) (int64, error)
}

func (m *recordStoreMock) CountByDirectory(ctx context.Context, directoryID uuid.UUID) (int64, error) {
	if m.CountByDirectoryFunc == nil {
		panic("recordStoreMock.CountByDirectoryFunc: method is nil but recordStore.CountByDirectory was just called")
	}
	return m.CountByDirectoryFunc(ctx, directoryID)
}

var _ auditLogger = &auditLoggerMock{}

type auditLoggerMock struct {
	LogFunc func(ctx context.Context, record domain.AuditRecord) error

	calls struct {
		Log []struct{ Record domain.AuditRecord }
	}
	lock sync.RWMutex
}

func (m *auditLoggerMock) Log(ctx context.Context, record domain.AuditRecord) error {
	if m.LogFunc == nil {
		panic("auditLoggerMock.LogFunc: method is nil but auditLogger.Log was just called")
	}
	m.lock.Lock()
	m.calls.Log = append(m.calls.Log, struct{ Record domain.AuditRecord }{record})
	m.lock.Unlock()
	return m.LogFunc(ctx, record)
}

func (m *auditLoggerMock) LogCalls() []struct{ Record domain.AuditRecord } {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.calls.Log
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	return m.RunInTxFunc(ctx, fn)
}
