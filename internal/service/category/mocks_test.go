package category

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/formabase/formabase-backend/internal/domain"
)

var _ nodeRepo = &nodeRepoMock{}

type nodeRepoMock struct {
	CreateFunc        func(ctx context.Context, treeID uuid.UUID, parentID *uuid.UUID, name string) (*domain.CategoryNode, error)
	GetByIDFunc       func(ctx context.Context, treeID, id uuid.UUID) (*domain.CategoryNode, error)
	ListChildrenFunc  func(ctx context.Context, treeID uuid.UUID, parentID *uuid.UUID) ([]*domain.CategoryNode, error)
	RenameFunc        func(ctx context.Context, treeID, id uuid.UUID, name string) (*domain.CategoryNode, error)
	SetParentFunc     func(ctx context.Context, treeID, id uuid.UUID, parentID *uuid.UUID) (*domain.CategoryNode, error)
	DeleteFunc        func(ctx context.Context, treeID, id uuid.UUID) error
	SubtreeHeightFunc func(ctx context.Context, treeID, id uuid.UUID) (int, error)
	DepthFunc         func(ctx context.Context, treeID, id uuid.UUID) (int, error)
	IsDescendantFunc  func(ctx context.Context, treeID, id, candidate uuid.UUID) (bool, error)

	calls struct {
		Create    []struct{ Name string }
		SetParent []struct{ ParentID *uuid.UUID }
		Delete    []struct{ ID uuid.UUID }
	}
	lock sync.RWMutex
}

func (m *nodeRepoMock) Create(ctx context.Context, treeID uuid.UUID, parentID *uuid.UUID, name string) (*domain.CategoryNode, error) {
	if m.CreateFunc == nil {
		panic("nodeRepoMock.CreateFunc: method is nil but nodeRepo.Create was just called")
	}
	m.lock.Lock()
	m.calls.Create = append(m.calls.Create, struct{ Name string }{name})
	m.lock.Unlock()
	return m.CreateFunc(ctx, treeID, parentID, name)
}

func (m *nodeRepoMock) CreateCalls() []struct{ Name string } {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.calls.Create
}

func (m *nodeRepoMock) GetByID(ctx context.Context, treeID, id uuid.UUID) (*domain.CategoryNode, error) {
	if m.GetByIDFunc == nil {
		panic("nodeRepoMock.GetByIDFunc: method is nil but nodeRepo.GetByID was just called")
	}
	return m.GetByIDFunc(ctx, treeID, id)
}

func (m *nodeRepoMock) ListChildren(ctx context.Context, treeID uuid.UUID, parentID *uuid.UUID) ([]*domain.CategoryNode, error) {
	if m.ListChildrenFunc == nil {
		panic("nodeRepoMock.ListChildrenFunc: method is nil but nodeRepo.ListChildren was just called")
	}
	return m.ListChildrenFunc(ctx, treeID, parentID)
}

func (m *nodeRepoMock) Rename(ctx context.Context, treeID, id uuid.UUID, name string) (*domain.CategoryNode, error) {
	if m.RenameFunc == nil {
		panic("nodeRepoMock.RenameFunc: method is nil but nodeRepo.Rename was just called")
	}
	return m.RenameFunc(ctx, treeID, id, name)
}

func (m *nodeRepoMock) SetParent(ctx context.Context, treeID, id uuid.UUID, parentID *uuid.UUID) (*domain.CategoryNode, error) {
	if m.SetParentFunc == nil {
		panic("nodeRepoMock.SetParentFunc: method is nil but nodeRepo.SetParent was just called")
	}
	m.lock.Lock()
	m.calls.SetParent = append(m.calls.SetParent, struct{ ParentID *uuid.UUID }{parentID})
	m.lock.Unlock()
	return m.SetParentFunc(ctx, treeID, id, parentID)
}

func (m *nodeRepoMock) SetParentCalls() []struct{ ParentID *uuid.UUID } {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.calls.SetParent
}

func (m *nodeRepoMock) Delete(ctx context.Context, treeID, id uuid.UUID) error {
	if m.DeleteFunc == nil {
		panic("nodeRepoMock.DeleteFunc: method is nil but nodeRepo.Delete was just called")
	}
	m.lock.Lock()
	m.calls.Delete = append(m.calls.Delete, struct{ ID uuid.UUID }{id})
	m.lock.Unlock()
	return m.DeleteFunc(ctx, treeID, id)
}

func (m *nodeRepoMock) DeleteCalls() []struct{ ID uuid.UUID } {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.calls.Delete
}

func (m *nodeRepoMock) SubtreeHeight(ctx context.Context, treeID, id uuid.UUID) (int, error) {
	if m.SubtreeHeightFunc == nil {
		panic("nodeRepoMock.SubtreeHeightFunc: method is nil but nodeRepo.SubtreeHeight was just called")
	}
	return m.SubtreeHeightFunc(ctx, treeID, id)
}

func (m *nodeRepoMock) Depth(ctx context.Context, treeID, id uuid.UUID) (int, error) {
	if m.DepthFunc == nil {
		panic("nodeRepoMock.DepthFunc: method is nil but nodeRepo.Depth was just called")
	}
	return m.DepthFunc(ctx, treeID, id)
}

func (m *nodeRepoMock) IsDescendant(ctx context.Context, treeID, id, candidate uuid.UUID) (bool, error) {
	if m.IsDescendantFunc == nil {
		panic("nodeRepoMock.IsDescendantFunc: method is nil but nodeRepo.IsDescendant was just called")
	}
	return m.IsDescendantFunc(ctx, treeID, id, candidate)
}

var _ fieldCategoryRepo = &fieldCategoryRepoMock{}

type fieldCategoryRepoMock struct {
	CreateFunc          func(ctx context.Context, c *domain.FieldCategory) (*domain.FieldCategory, error)
	GetByIDFunc         func(ctx context.Context, id uuid.UUID) (*domain.FieldCategory, error)
	ListByDirectoryFunc func(ctx context.Context, directoryID uuid.UUID) ([]*domain.FieldCategory, error)
	UpdateFunc          func(ctx context.Context, id uuid.UUID, params domain.FieldCategoryUpdateParams) (*domain.FieldCategory, error)
	DeleteFunc          func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Delete []struct{ ID uuid.UUID }
	}
	lock sync.RWMutex
}

func (m *fieldCategoryRepoMock) Create(ctx context.Context, c *domain.FieldCategory) (*domain.FieldCategory, error) {
	if m.CreateFunc == nil {
		panic("fieldCategoryRepoMock.CreateFunc: method is nil but fieldCategoryRepo.Create was just called")
	}
	return m.CreateFunc(ctx, c)
}

func (m *fieldCategoryRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.FieldCategory, error) {
	if m.GetByIDFunc == nil {
		panic("fieldCategoryRepoMock.GetByIDFunc: method is nil but fieldCategoryRepo.GetByID was just called")
	}
	return m.GetByIDFunc(ctx, id)
}

func (m *fieldCategoryRepoMock) ListByDirectory(ctx context.Context, directoryID uuid.UUID) ([]*domain.FieldCategory, error) {
	if m.ListByDirectoryFunc == nil {
		panic("fieldCategoryRepoMock.ListByDirectoryFunc: method is nil but fieldCategoryRepo.ListByDirectory was just called")
	}
	return m.ListByDirectoryFunc(ctx, directoryID)
}

func (m *fieldCategoryRepoMock) Update(ctx context.Context, id uuid.UUID, params domain.FieldCategoryUpdateParams) (*domain.FieldCategory, error) {
	if m.UpdateFunc == nil {
		panic("fieldCategoryRepoMock.UpdateFunc: method is nil but fieldCategoryRepo.Update was just called")
	}
	return m.UpdateFunc(ctx, id, params)
}

func (m *fieldCategoryRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc == nil {
		panic("fieldCategoryRepoMock.DeleteFunc: method is nil but fieldCategoryRepo.Delete was just called")
	}
	m.lock.Lock()
	m.calls.Delete = append(m.calls.Delete, struct{ ID uuid.UUID }{id})
	m.lock.Unlock()
	return m.DeleteFunc(ctx, id)
}

func (m *fieldCategoryRepoMock) DeleteCalls() []struct{ ID uuid.UUID } {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.calls.Delete
}

var _ fieldCounter = &fieldCounterMock{}

type fieldCounterMock struct {
	CountByCategoryFunc func(ctx context.Context, categoryID uuid.UUID) (int, error)
}

func (m *fieldCounterMock) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int, error) {
	if m.CountByCategoryFunc == nil {
		panic("fieldCounterMock.CountByCategoryFunc: method is nil but fieldCounter.CountByCategory was just called")
	}
	return m.CountByCategoryFunc(ctx, categoryID)
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
