package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxCategoryDepth caps category trees at three levels
// (root -> level 2 -> level 3).
const MaxCategoryDepth = 3

// FieldCategory is a named, orderable grouping of fields within one
// directory. System categories are immutable and undeletable.
type FieldCategory struct {
	ID          uuid.UUID
	DirectoryID uuid.UUID
	Name        string
	Description *string
	Position    int
	IsEnabled   bool
	IsSystem    bool
	Predefined  []PredefinedField
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PredefinedField is a field descriptor a category suggests for new fields.
type PredefinedField struct {
	Key   string    `json:"key"`
	Label string    `json:"label"`
	Type  FieldType `json:"type"`
}

// FieldCategoryUpdateParams holds the mutable category attributes.
// Nil means "leave unchanged".
type FieldCategoryUpdateParams struct {
	Name        *string
	Description *string
	Position    *int
	IsEnabled   *bool
}

// CategoryNode is one node of a depth-capped taxonomy tree. Identity is the
// id: renames mutate the name in place so values referencing nodes by id
// survive them. TreeID scopes the tree to its owning collection.
type CategoryNode struct {
	ID        uuid.UUID
	TreeID    uuid.UUID
	ParentID  *uuid.UUID
	Name      string
	Position  int
	CreatedAt time.Time
	UpdatedAt time.Time
}
