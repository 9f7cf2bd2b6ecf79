package relationedge_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/formabase/formabase-backend/internal/adapter/postgres/relationedge"
	"github.com/formabase/formabase-backend/internal/adapter/postgres/testhelper"
	"github.com/formabase/formabase-backend/internal/domain"
)

// newRepo sets up a test DB and returns a ready Repo + pool.
func newRepo(t *testing.T) (*relationedge.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return relationedge.New(pool), pool
}

// someURN builds a unique record URN so parallel tests never share pairs.
func someURN() string {
	return "urn:app:dir:record:" + uuid.New().String()
}

func someEdge(tenantID uuid.UUID) *domain.RelationEdge {
	return &domain.RelationEdge{
		TenantID:  tenantID,
		FromURN:   someURN(),
		ToURN:     someURN(),
		Type:      domain.RelationOneToMany,
		CreatedBy: uuid.New(),
	}
}

func TestRepo_Create_AndGetByID(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()
	tenantID := uuid.New()

	e := someEdge(tenantID)
	e.Metadata = map[string]any{"source": "import"}

	created, err := repo.Create(ctx, e)
	if err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Error("expected non-nil edge ID")
	}
	if created.DeletedAt != nil {
		t.Error("new edge must not be deleted")
	}

	got, err := repo.GetByID(ctx, tenantID, created.ID)
	if err != nil {
		t.Fatalf("GetByID: unexpected error: %v", err)
	}
	if got.FromURN != e.FromURN || got.ToURN != e.ToURN {
		t.Errorf("URN mismatch: got %s -> %s", got.FromURN, got.ToURN)
	}
	if got.Metadata["source"] != "import" {
		t.Errorf("metadata did not round-trip: got %v", got.Metadata)
	}
}

func TestRepo_Create_ReversedPairRejected(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()
	tenantID := uuid.New()

	e := someEdge(tenantID)
	if _, err := repo.Create(ctx, e); err != nil {
		t.Fatalf("Create first: %v", err)
	}

	// Same pair in the opposite direction hits the canonical index.
	reversed := someEdge(tenantID)
	reversed.FromURN = e.ToURN
	reversed.ToURN = e.FromURN
	_, err := repo.Create(ctx, reversed)
	assertIsDomainError(t, err, domain.ErrEdgeExists)
}

func TestRepo_Create_SamePairDifferentTenants(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	e := someEdge(uuid.New())
	if _, err := repo.Create(ctx, e); err != nil {
		t.Fatalf("Create first: %v", err)
	}

	other := someEdge(uuid.New())
	other.FromURN = e.FromURN
	other.ToURN = e.ToURN
	if _, err := repo.Create(ctx, other); err != nil {
		t.Fatalf("Create for second tenant: expected success, got: %v", err)
	}
}

func TestRepo_SoftDelete_IdempotentAndFreesPair(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()
	tenantID := uuid.New()

	created, err := repo.Create(ctx, someEdge(tenantID))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	deleted, err := repo.SoftDelete(ctx, tenantID, created.ID)
	if err != nil {
		t.Fatalf("SoftDelete: %v", err)
	}
	if !deleted {
		t.Error("first delete should report true")
	}

	deleted, err = repo.SoftDelete(ctx, tenantID, created.ID)
	if err != nil {
		t.Fatalf("SoftDelete repeat: %v", err)
	}
	if deleted {
		t.Error("repeat delete should report false")
	}

	// The row survives for GetByID, marked deleted.
	got, err := repo.GetByID(ctx, tenantID, created.ID)
	if err != nil {
		t.Fatalf("GetByID after delete: %v", err)
	}
	if got.DeletedAt == nil {
		t.Error("expected DeletedAt set")
	}

	// The pair is free again: the partial index only covers live rows.
	again := someEdge(tenantID)
	again.FromURN = created.FromURN
	again.ToURN = created.ToURN
	if _, err := repo.Create(ctx, again); err != nil {
		t.Fatalf("Create after delete: expected success, got: %v", err)
	}
}

func TestRepo_FindByURNPair_BothDirections(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()
	tenantID := uuid.New()

	created, err := repo.Create(ctx, someEdge(tenantID))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	edges, err := repo.FindByURNPair(ctx, tenantID, created.FromURN, created.ToURN)
	if err != nil {
		t.Fatalf("FindByURNPair forward: %v", err)
	}
	if len(edges) != 1 || edges[0].ID != created.ID {
		t.Fatalf("forward lookup: expected the created edge, got %d edges", len(edges))
	}

	edges, err = repo.FindByURNPair(ctx, tenantID, created.ToURN, created.FromURN)
	if err != nil {
		t.Fatalf("FindByURNPair reversed: %v", err)
	}
	if len(edges) != 1 || edges[0].ID != created.ID {
		t.Fatalf("reversed lookup: expected the created edge, got %d edges", len(edges))
	}
}

func TestRepo_FindByURN_EitherEndpoint(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()
	tenantID := uuid.New()

	shared := someURN()

	out := someEdge(tenantID)
	out.FromURN = shared
	if _, err := repo.Create(ctx, out); err != nil {
		t.Fatalf("Create outgoing: %v", err)
	}

	in := someEdge(tenantID)
	in.ToURN = shared
	if _, err := repo.Create(ctx, in); err != nil {
		t.Fatalf("Create incoming: %v", err)
	}

	unrelated := someEdge(tenantID)
	if _, err := repo.Create(ctx, unrelated); err != nil {
		t.Fatalf("Create unrelated: %v", err)
	}

	edges, err := repo.FindByURN(ctx, tenantID, shared)
	if err != nil {
		t.Fatalf("FindByURN: %v", err)
	}
	if len(edges) != 2 {
		t.Fatalf("expected 2 edges touching the URN, got %d", len(edges))
	}
}

func TestRepo_Query_FilterAndPagination(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()
	tenantID := uuid.New()

	for range 3 {
		e := someEdge(tenantID)
		e.Type = domain.RelationManyToMany
		if _, err := repo.Create(ctx, e); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	other := someEdge(tenantID)
	other.Type = domain.RelationOneToOne
	if _, err := repo.Create(ctx, other); err != nil {
		t.Fatalf("Create other type: %v", err)
	}

	relType := domain.RelationManyToMany
	edges, total, err := repo.Query(ctx,
		domain.EdgeFilter{TenantID: &tenantID, Type: &relType},
		domain.PageFilter{Page: 1, Limit: 2},
	)
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if total != 3 {
		t.Errorf("total: got %d, want 3", total)
	}
	if len(edges) != 2 {
		t.Errorf("page size: got %d, want 2", len(edges))
	}
	for _, e := range edges {
		if e.Type != domain.RelationManyToMany {
			t.Errorf("unexpected type in filtered result: %s", e.Type)
		}
	}
}

func TestRepo_Update_URNChangeCollision(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()
	tenantID := uuid.New()

	a, err := repo.Create(ctx, someEdge(tenantID))
	if err != nil {
		t.Fatalf("Create a: %v", err)
	}
	b, err := repo.Create(ctx, someEdge(tenantID))
	if err != nil {
		t.Fatalf("Create b: %v", err)
	}

	// Retargeting b onto a's pair violates the canonical index.
	_, err = repo.Update(ctx, tenantID, b.ID, domain.EdgeUpdateParams{
		FromURN: &a.FromURN,
		ToURN:   &a.ToURN,
	})
	assertIsDomainError(t, err, domain.ErrEdgeExists)
}

func TestRepo_HardDeleteOld(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	tenantID := uuid.New()

	old, err := repo.Create(ctx, someEdge(tenantID))
	if err != nil {
		t.Fatalf("Create old: %v", err)
	}
	recent, err := repo.Create(ctx, someEdge(tenantID))
	if err != nil {
		t.Fatalf("Create recent: %v", err)
	}
	live, err := repo.Create(ctx, someEdge(tenantID))
	if err != nil {
		t.Fatalf("Create live: %v", err)
	}

	if _, err := repo.SoftDelete(ctx, tenantID, old.ID); err != nil {
		t.Fatalf("SoftDelete old: %v", err)
	}
	if _, err := repo.SoftDelete(ctx, tenantID, recent.ID); err != nil {
		t.Fatalf("SoftDelete recent: %v", err)
	}

	// Age the first tombstone past the threshold.
	if _, err := pool.Exec(ctx,
		`UPDATE relation_edges SET deleted_at = now() - interval '40 days' WHERE id = $1`,
		old.ID,
	); err != nil {
		t.Fatalf("age tombstone: %v", err)
	}

	purged, err := repo.HardDeleteOld(ctx, time.Now().AddDate(0, 0, -30))
	if err != nil {
		t.Fatalf("HardDeleteOld: %v", err)
	}
	if purged < 1 {
		t.Errorf("expected at least 1 purged edge, got %d", purged)
	}

	_, err = repo.GetByID(ctx, tenantID, old.ID)
	assertIsDomainError(t, err, domain.ErrNotFound)

	if _, err := repo.GetByID(ctx, tenantID, recent.ID); err != nil {
		t.Errorf("recent tombstone should survive: %v", err)
	}
	if _, err := repo.GetByID(ctx, tenantID, live.ID); err != nil {
		t.Errorf("live edge should survive: %v", err)
	}
}

func assertIsDomainError(t *testing.T, err error, target error) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error wrapping %v, got nil", target)
	}
	if !errors.Is(err, target) {
		t.Fatalf("expected error wrapping %v, got: %v", target, err)
	}
}
