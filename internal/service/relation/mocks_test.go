package relation

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/formabase/formabase-backend/internal/domain"
)

var _ edgeRepo = &edgeRepoMock{}

type edgeRepoMock struct {
	CreateFunc        func(ctx context.Context, e *domain.RelationEdge) (*domain.RelationEdge, error)
	GetByIDFunc       func(ctx context.Context, tenantID, id uuid.UUID) (*domain.RelationEdge, error)
	QueryFunc         func(ctx context.Context, filter domain.EdgeFilter, page domain.PageFilter) ([]*domain.RelationEdge, int, error)
	UpdateFunc        func(ctx context.Context, tenantID, id uuid.UUID, params domain.EdgeUpdateParams) (*domain.RelationEdge, error)
	SoftDeleteFunc    func(ctx context.Context, tenantID, id uuid.UUID) (bool, error)
	FindByURNFunc     func(ctx context.Context, tenantID uuid.UUID, urn string) ([]*domain.RelationEdge, error)
	FindByURNPairFunc func(ctx context.Context, tenantID uuid.UUID, a, b string) ([]*domain.RelationEdge, error)
	HardDeleteOldFunc func(ctx context.Context, threshold time.Time) (int64, error)

	calls struct {
		Create        []struct{ Edge *domain.RelationEdge }
		SoftDelete    []struct{ ID uuid.UUID }
		FindByURNPair []struct{ A, B string }
	}
	lock sync.RWMutex
}

func (m *edgeRepoMock) Create(ctx context.Context, e *domain.RelationEdge) (*domain.RelationEdge, error) {
	if m.CreateFunc == nil {
		panic("edgeRepoMock.CreateFunc: method is nil but edgeRepo.Create was just called")
	}
	m.lock.Lock()
	m.calls.Create = append(m.calls.Create, struct{ Edge *domain.RelationEdge }{e})
	m.lock.Unlock()
	return m.CreateFunc(ctx, e)
}

func (m *edgeRepoMock) CreateCalls() []struct{ Edge *domain.RelationEdge } {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.calls.Create
}

func (m *edgeRepoMock) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.RelationEdge, error) {
	if m.GetByIDFunc == nil {
		panic("edgeRepoMock.GetByIDFunc: method is nil but edgeRepo.GetByID was just called")
	}
	return m.GetByIDFunc(ctx, tenantID, id)
}

func (m *edgeRepoMock) Query(ctx context.Context, filter domain.EdgeFilter, page domain.PageFilter) ([]*domain.RelationEdge, int, error) {
	if m.QueryFunc == nil {
		panic("edgeRepoMock.QueryFunc: method is nil but edgeRepo.Query was just called")
	}
	return m.QueryFunc(ctx, filter, page)
}

func (m *edgeRepoMock) Update(ctx context.Context, tenantID, id uuid.UUID, params domain.EdgeUpdateParams) (*domain.RelationEdge, error) {
	if m.UpdateFunc == nil {
		panic("edgeRepoMock.UpdateFunc: method is nil but edgeRepo.Update was just called")
	}
	return m.UpdateFunc(ctx, tenantID, id, params)
}

func (m *edgeRepoMock) SoftDelete(ctx context.Context, tenantID, id uuid.UUID) (bool, error) {
	if m.SoftDeleteFunc == nil {
		panic("edgeRepoMock.SoftDeleteFunc: method is nil but edgeRepo.SoftDelete was just called")
	}
	m.lock.Lock()
	m.calls.SoftDelete = append(m.calls.SoftDelete, struct{ ID uuid.UUID }{id})
	m.lock.Unlock()
	return m.SoftDeleteFunc(ctx, tenantID, id)
}

func (m *edgeRepoMock) SoftDeleteCalls() []struct{ ID uuid.UUID } {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.calls.SoftDelete
}

func (m *edgeRepoMock) FindByURN(ctx context.Context, tenantID uuid.UUID, urn string) ([]*domain.RelationEdge, error) {
	if m.FindByURNFunc == nil {
		panic("edgeRepoMock.FindByURNFunc: method is nil but edgeRepo.FindByURN was just called")
	}
	return m.FindByURNFunc(ctx, tenantID, urn)
}

func (m *edgeRepoMock) FindByURNPair(ctx context.Context, tenantID uuid.UUID, a, b string) ([]*domain.RelationEdge, error) {
	if m.FindByURNPairFunc == nil {
		panic("edgeRepoMock.FindByURNPairFunc: method is nil but edgeRepo.FindByURNPair was just called")
	}
	m.lock.Lock()
	m.calls.FindByURNPair = append(m.calls.FindByURNPair, struct{ A, B string }{a, b})
	m.lock.Unlock()
	return m.FindByURNPairFunc(ctx, tenantID, a, b)
}

func (m *edgeRepoMock) FindByURNPairCalls() []struct{ A, B string } {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.calls.FindByURNPair
}

func (m *edgeRepoMock) HardDeleteOld(ctx context.Context, threshold time.Time) (int64, error) {
	if m.HardDeleteOldFunc == nil {
		panic("edgeRepoMock.HardDeleteOldFunc: method is nil but edgeRepo.HardDeleteOld was just called")
	}
	return m.HardDeleteOldFunc(ctx, threshold)
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
