package domain

import (
	"time"

	"github.com/google/uuid"
)

// RelationEdge is a tenant-scoped, directed, soft-deletable connection
// between two URNs. At most one live edge may exist per unordered URN pair
// within a tenant, regardless of direction.
type RelationEdge struct {
	ID        uuid.UUID
	TenantID  uuid.UUID
	FromURN   string
	ToURN     string
	Type      RelationType
	Metadata  map[string]any
	CreatedBy uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// IsDeleted reports whether the edge has been soft-deleted.
func (e *RelationEdge) IsDeleted() bool { return e.DeletedAt != nil }

// EdgeUpdateParams holds the mutable edge attributes. Nil means "leave
// unchanged".
type EdgeUpdateParams struct {
	FromURN  *string
	ToURN    *string
	Type     *RelationType
	Metadata map[string]any
}

// EdgeFilter narrows QueryEdges results. All set filters are conjunctive;
// only live edges match.
type EdgeFilter struct {
	TenantID *uuid.UUID
	FromURN  *string
	ToURN    *string
	Type     *RelationType
}
