package domain

import (
	"time"

	"github.com/google/uuid"
)

// Directory is a virtual table inside one application. It owns field
// definitions and (indirectly) records; record storage itself lives behind
// the record-store collaborator.
type Directory struct {
	ID               uuid.UUID
	ApplicationID    uuid.UUID
	ModuleID         uuid.UUID
	Name             string
	Kind             DirectoryKind
	SupportsCategory bool
	Position         int
	IsEnabled        bool
	IsSystem         bool
	Config           map[string]any
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// DirectoryUpdateParams holds the mutable directory attributes.
// Nil means "leave unchanged".
type DirectoryUpdateParams struct {
	Name      *string
	Position  *int
	IsEnabled *bool
	Config    map[string]any
}

// AuditRecord is a single audit log entry written alongside a mutation.
type AuditRecord struct {
	ID         uuid.UUID
	ActorID    uuid.UUID
	EntityType EntityType
	EntityID   *uuid.UUID
	Action     AuditAction
	Changes    map[string]any
	CreatedAt  time.Time
}
