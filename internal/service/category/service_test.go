package category

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/formabase/formabase-backend/internal/domain"
)

func newTestService(nodes *nodeRepoMock, cats *fieldCategoryRepoMock, fields *fieldCounterMock, audit *auditLoggerMock, tx *txManagerMock) *Service {
	return NewService(slog.Default(), nodes, cats, fields, audit, tx)
}

func defaultTxMock() *txManagerMock {
	return &txManagerMock{
		RunInTxFunc: func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	}
}

func defaultAuditMock() *auditLoggerMock {
	return &auditLoggerMock{
		LogFunc: func(ctx context.Context, record domain.AuditRecord) error {
			return nil
		},
	}
}

func someNode(treeID uuid.UUID, parentID *uuid.UUID, name string) *domain.CategoryNode {
	return &domain.CategoryNode{
		ID:        uuid.New(),
		TreeID:    treeID,
		ParentID:  parentID,
		Name:      name,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

// ---------------------------------------------------------------------------
// AddNode
// ---------------------------------------------------------------------------

func TestAddNode_RootSuccess(t *testing.T) {
	t.Parallel()

	treeID := uuid.New()
	nodes := &nodeRepoMock{
		CreateFunc: func(ctx context.Context, tid uuid.UUID, parentID *uuid.UUID, name string) (*domain.CategoryNode, error) {
			return someNode(tid, parentID, name), nil
		},
	}
	audit := defaultAuditMock()
	svc := newTestService(nodes, &fieldCategoryRepoMock{}, &fieldCounterMock{}, audit, defaultTxMock())

	node, err := svc.AddNode(context.Background(), AddNodeInput{
		ActorID: uuid.New(),
		TreeID:  treeID,
		Name:    "  Electronics  ",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if node.Name != "Electronics" {
		t.Errorf("name not trimmed: %q", node.Name)
	}
	if len(audit.LogCalls()) != 1 {
		t.Errorf("audit Log calls: got %d, want 1", len(audit.LogCalls()))
	}
}

func TestAddNode_DepthCap(t *testing.T) {
	t.Parallel()

	treeID := uuid.New()
	levelThree := uuid.New()
	nodes := &nodeRepoMock{
		DepthFunc: func(ctx context.Context, tid, id uuid.UUID) (int, error) {
			return domain.MaxCategoryDepth, nil
		},
	}
	svc := newTestService(nodes, &fieldCategoryRepoMock{}, &fieldCounterMock{}, defaultAuditMock(), defaultTxMock())

	_, err := svc.AddNode(context.Background(), AddNodeInput{
		ActorID:  uuid.New(),
		TreeID:   treeID,
		ParentID: &levelThree,
		Name:     "Too deep",
	})
	if !errors.Is(err, domain.ErrDepthExceeded) {
		t.Fatalf("expected ErrDepthExceeded, got %v", err)
	}
	if len(nodes.CreateCalls()) != 0 {
		t.Error("Create must not be called when the cap is hit")
	}
}

func TestAddNode_SiblingNameCollision(t *testing.T) {
	t.Parallel()

	nodes := &nodeRepoMock{
		DepthFunc: func(ctx context.Context, tid, id uuid.UUID) (int, error) {
			return 1, nil
		},
		CreateFunc: func(ctx context.Context, tid uuid.UUID, parentID *uuid.UUID, name string) (*domain.CategoryNode, error) {
			return nil, domain.ErrDuplicateName
		},
	}
	svc := newTestService(nodes, &fieldCategoryRepoMock{}, &fieldCounterMock{}, defaultAuditMock(), defaultTxMock())

	parent := uuid.New()
	_, err := svc.AddNode(context.Background(), AddNodeInput{
		ActorID:  uuid.New(),
		TreeID:   uuid.New(),
		ParentID: &parent,
		Name:     "Phones",
	})
	if !errors.Is(err, domain.ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}
}

func TestAddNode_BlankName(t *testing.T) {
	t.Parallel()

	svc := newTestService(&nodeRepoMock{}, &fieldCategoryRepoMock{}, &fieldCounterMock{}, defaultAuditMock(), defaultTxMock())

	_, err := svc.AddNode(context.Background(), AddNodeInput{
		ActorID: uuid.New(),
		TreeID:  uuid.New(),
		Name:    "   ",
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// MoveNode
// ---------------------------------------------------------------------------

func TestMoveNode_UnderOwnDescendantRejected(t *testing.T) {
	t.Parallel()

	nodes := &nodeRepoMock{
		SubtreeHeightFunc: func(ctx context.Context, tid, id uuid.UUID) (int, error) {
			return 2, nil
		},
		IsDescendantFunc: func(ctx context.Context, tid, id, candidate uuid.UUID) (bool, error) {
			return true, nil
		},
	}
	svc := newTestService(nodes, &fieldCategoryRepoMock{}, &fieldCounterMock{}, defaultAuditMock(), defaultTxMock())

	child := uuid.New()
	_, err := svc.MoveNode(context.Background(), MoveNodeInput{
		ActorID:     uuid.New(),
		TreeID:      uuid.New(),
		NodeID:      uuid.New(),
		NewParentID: &child,
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if len(nodes.SetParentCalls()) != 0 {
		t.Error("SetParent must not be called on a cycle")
	}
}

func TestMoveNode_DepthOverflowRejected(t *testing.T) {
	t.Parallel()

	// Subtree of height 2 moved under a level-2 parent lands its leaves at
	// level 4.
	nodes := &nodeRepoMock{
		SubtreeHeightFunc: func(ctx context.Context, tid, id uuid.UUID) (int, error) {
			return 2, nil
		},
		IsDescendantFunc: func(ctx context.Context, tid, id, candidate uuid.UUID) (bool, error) {
			return false, nil
		},
		DepthFunc: func(ctx context.Context, tid, id uuid.UUID) (int, error) {
			return 2, nil
		},
	}
	svc := newTestService(nodes, &fieldCategoryRepoMock{}, &fieldCounterMock{}, defaultAuditMock(), defaultTxMock())

	parent := uuid.New()
	_, err := svc.MoveNode(context.Background(), MoveNodeInput{
		ActorID:     uuid.New(),
		TreeID:      uuid.New(),
		NodeID:      uuid.New(),
		NewParentID: &parent,
	})
	if !errors.Is(err, domain.ErrDepthExceeded) {
		t.Fatalf("expected ErrDepthExceeded, got %v", err)
	}
}

func TestMoveNode_ToRootSuccess(t *testing.T) {
	t.Parallel()

	treeID := uuid.New()
	nodes := &nodeRepoMock{
		SubtreeHeightFunc: func(ctx context.Context, tid, id uuid.UUID) (int, error) {
			return 3, nil
		},
		SetParentFunc: func(ctx context.Context, tid, id uuid.UUID, parentID *uuid.UUID) (*domain.CategoryNode, error) {
			n := someNode(tid, parentID, "Moved")
			n.ID = id
			return n, nil
		},
	}
	audit := defaultAuditMock()
	svc := newTestService(nodes, &fieldCategoryRepoMock{}, &fieldCounterMock{}, audit, defaultTxMock())

	node, err := svc.MoveNode(context.Background(), MoveNodeInput{
		ActorID: uuid.New(),
		TreeID:  treeID,
		NodeID:  uuid.New(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if node.ParentID != nil {
		t.Error("expected node at root level")
	}
	if len(audit.LogCalls()) != 1 {
		t.Errorf("audit Log calls: got %d, want 1", len(audit.LogCalls()))
	}
}

func TestMoveNode_SelfParentRejected(t *testing.T) {
	t.Parallel()

	svc := newTestService(&nodeRepoMock{}, &fieldCategoryRepoMock{}, &fieldCounterMock{}, defaultAuditMock(), defaultTxMock())

	id := uuid.New()
	_, err := svc.MoveNode(context.Background(), MoveNodeInput{
		ActorID:     uuid.New(),
		TreeID:      uuid.New(),
		NodeID:      id,
		NewParentID: &id,
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// RenameNode / DeleteNode
// ---------------------------------------------------------------------------

func TestRenameNode_KeepsIdentity(t *testing.T) {
	t.Parallel()

	treeID := uuid.New()
	nodeID := uuid.New()
	nodes := &nodeRepoMock{
		RenameFunc: func(ctx context.Context, tid, id uuid.UUID, name string) (*domain.CategoryNode, error) {
			n := someNode(tid, nil, name)
			n.ID = id
			return n, nil
		},
	}
	svc := newTestService(nodes, &fieldCategoryRepoMock{}, &fieldCounterMock{}, defaultAuditMock(), defaultTxMock())

	node, err := svc.RenameNode(context.Background(), RenameNodeInput{
		ActorID: uuid.New(),
		TreeID:  treeID,
		NodeID:  nodeID,
		Name:    "Gadgets",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if node.ID != nodeID {
		t.Error("rename must not change the node id")
	}
	if node.Name != "Gadgets" {
		t.Errorf("name: got %q, want %q", node.Name, "Gadgets")
	}
}

func TestDeleteNode_Subtree(t *testing.T) {
	t.Parallel()

	nodes := &nodeRepoMock{
		DeleteFunc: func(ctx context.Context, tid, id uuid.UUID) error {
			return nil
		},
	}
	audit := defaultAuditMock()
	svc := newTestService(nodes, &fieldCategoryRepoMock{}, &fieldCounterMock{}, audit, defaultTxMock())

	err := svc.DeleteNode(context.Background(), DeleteNodeInput{
		ActorID: uuid.New(),
		TreeID:  uuid.New(),
		NodeID:  uuid.New(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(nodes.DeleteCalls()) != 1 {
		t.Errorf("Delete calls: got %d, want 1", len(nodes.DeleteCalls()))
	}
	if len(audit.LogCalls()) != 1 {
		t.Errorf("audit Log calls: got %d, want 1", len(audit.LogCalls()))
	}
}

func TestDeleteNode_NotFound(t *testing.T) {
	t.Parallel()

	nodes := &nodeRepoMock{
		DeleteFunc: func(ctx context.Context, tid, id uuid.UUID) error {
			return domain.ErrNotFound
		},
	}
	audit := defaultAuditMock()
	svc := newTestService(nodes, &fieldCategoryRepoMock{}, &fieldCounterMock{}, audit, defaultTxMock())

	err := svc.DeleteNode(context.Background(), DeleteNodeInput{
		ActorID: uuid.New(),
		TreeID:  uuid.New(),
		NodeID:  uuid.New(),
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(audit.LogCalls()) != 0 {
		t.Error("audit must not fire on a failed delete")
	}
}

// ---------------------------------------------------------------------------
// Field categories
// ---------------------------------------------------------------------------

func TestCreateFieldCategory_Success(t *testing.T) {
	t.Parallel()

	cats := &fieldCategoryRepoMock{
		CreateFunc: func(ctx context.Context, c *domain.FieldCategory) (*domain.FieldCategory, error) {
			out := *c
			out.ID = uuid.New()
			return &out, nil
		},
	}
	svc := newTestService(&nodeRepoMock{}, cats, &fieldCounterMock{}, defaultAuditMock(), defaultTxMock())

	cat, err := svc.CreateFieldCategory(context.Background(), CreateFieldCategoryInput{
		ActorID:     uuid.New(),
		DirectoryID: uuid.New(),
		Name:        "General",
		Predefined: []domain.PredefinedField{
			{Key: "title", Label: "Title", Type: domain.FieldTypeText},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cat.IsEnabled {
		t.Error("new categories start enabled")
	}
}

func TestCreateFieldCategory_BadPredefinedKey(t *testing.T) {
	t.Parallel()

	svc := newTestService(&nodeRepoMock{}, &fieldCategoryRepoMock{}, &fieldCounterMock{}, defaultAuditMock(), defaultTxMock())

	_, err := svc.CreateFieldCategory(context.Background(), CreateFieldCategoryInput{
		ActorID:     uuid.New(),
		DirectoryID: uuid.New(),
		Name:        "General",
		Predefined: []domain.PredefinedField{
			{Key: "9lives", Label: "Nope", Type: domain.FieldTypeText},
		},
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestUpdateFieldCategory_SystemRejected(t *testing.T) {
	t.Parallel()

	cats := &fieldCategoryRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.FieldCategory, error) {
			return &domain.FieldCategory{ID: id, Name: "Base", IsSystem: true}, nil
		},
	}
	svc := newTestService(&nodeRepoMock{}, cats, &fieldCounterMock{}, defaultAuditMock(), defaultTxMock())

	name := "Renamed"
	_, err := svc.UpdateFieldCategory(context.Background(), UpdateFieldCategoryInput{
		ActorID:    uuid.New(),
		CategoryID: uuid.New(),
		Params:     domain.FieldCategoryUpdateParams{Name: &name},
	})
	if !errors.Is(err, domain.ErrSystemManaged) {
		t.Fatalf("expected ErrSystemManaged, got %v", err)
	}
}

func TestUpdateFieldCategory_SystemRepositionAllowed(t *testing.T) {
	t.Parallel()

	cats := &fieldCategoryRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.FieldCategory, error) {
			return &domain.FieldCategory{ID: id, Name: "Base", IsSystem: true}, nil
		},
		UpdateFunc: func(ctx context.Context, id uuid.UUID, params domain.FieldCategoryUpdateParams) (*domain.FieldCategory, error) {
			return &domain.FieldCategory{ID: id, Name: "Base", IsSystem: true, Position: *params.Position}, nil
		},
	}
	svc := newTestService(&nodeRepoMock{}, cats, &fieldCounterMock{}, defaultAuditMock(), defaultTxMock())

	pos := 5
	cat, err := svc.UpdateFieldCategory(context.Background(), UpdateFieldCategoryInput{
		ActorID:    uuid.New(),
		CategoryID: uuid.New(),
		Params:     domain.FieldCategoryUpdateParams{Position: &pos},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cat.Position != 5 {
		t.Errorf("position: got %d, want 5", cat.Position)
	}
}

func TestDeleteFieldCategory_WithFieldsRejected(t *testing.T) {
	t.Parallel()

	cats := &fieldCategoryRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.FieldCategory, error) {
			return &domain.FieldCategory{ID: id, Name: "General"}, nil
		},
	}
	fields := &fieldCounterMock{
		CountByCategoryFunc: func(ctx context.Context, categoryID uuid.UUID) (int, error) {
			return 3, nil
		},
	}
	svc := newTestService(&nodeRepoMock{}, cats, fields, defaultAuditMock(), defaultTxMock())

	err := svc.DeleteFieldCategory(context.Background(), DeleteFieldCategoryInput{
		ActorID:    uuid.New(),
		CategoryID: uuid.New(),
	})
	if !errors.Is(err, domain.ErrCategoryNotEmpty) {
		t.Fatalf("expected ErrCategoryNotEmpty, got %v", err)
	}
	if len(cats.DeleteCalls()) != 0 {
		t.Error("Delete must not be called while fields remain")
	}
}

func TestDeleteFieldCategory_EmptySuccess(t *testing.T) {
	t.Parallel()

	cats := &fieldCategoryRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.FieldCategory, error) {
			return &domain.FieldCategory{ID: id, Name: "General"}, nil
		},
		DeleteFunc: func(ctx context.Context, id uuid.UUID) error {
			return nil
		},
	}
	fields := &fieldCounterMock{
		CountByCategoryFunc: func(ctx context.Context, categoryID uuid.UUID) (int, error) {
			return 0, nil
		},
	}
	audit := defaultAuditMock()
	svc := newTestService(&nodeRepoMock{}, cats, fields, audit, defaultTxMock())

	err := svc.DeleteFieldCategory(context.Background(), DeleteFieldCategoryInput{
		ActorID:    uuid.New(),
		CategoryID: uuid.New(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cats.DeleteCalls()) != 1 {
		t.Errorf("Delete calls: got %d, want 1", len(cats.DeleteCalls()))
	}
	if len(audit.LogCalls()) != 1 {
		t.Errorf("audit Log calls: got %d, want 1", len(audit.LogCalls()))
	}
}
