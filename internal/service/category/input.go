package category

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/formabase/formabase-backend/internal/domain"
)

// AddNodeInput holds the parameters for adding a tree node.
type AddNodeInput struct {
	ActorID  uuid.UUID
	TreeID   uuid.UUID
	ParentID *uuid.UUID
	Name     string
}

// Validate checks all fields and collects all errors.
func (i AddNodeInput) Validate() error {
	var errs []domain.FieldError

	if i.ActorID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "actor_id", Message: "required"})
	}
	if i.TreeID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "tree_id", Message: "required"})
	}
	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RenameNodeInput holds the parameters for renaming a tree node.
type RenameNodeInput struct {
	ActorID uuid.UUID
	TreeID  uuid.UUID
	NodeID  uuid.UUID
	Name    string
}

// Validate checks all fields and collects all errors.
func (i RenameNodeInput) Validate() error {
	var errs []domain.FieldError

	if i.ActorID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "actor_id", Message: "required"})
	}
	if i.TreeID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "tree_id", Message: "required"})
	}
	if i.NodeID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "node_id", Message: "required"})
	}
	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// MoveNodeInput holds the parameters for reparenting a tree node.
// A nil NewParentID moves the node to the root level.
type MoveNodeInput struct {
	ActorID     uuid.UUID
	TreeID      uuid.UUID
	NodeID      uuid.UUID
	NewParentID *uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i MoveNodeInput) Validate() error {
	var errs []domain.FieldError

	if i.ActorID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "actor_id", Message: "required"})
	}
	if i.TreeID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "tree_id", Message: "required"})
	}
	if i.NodeID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "node_id", Message: "required"})
	}
	if i.NewParentID != nil && *i.NewParentID == i.NodeID {
		errs = append(errs, domain.FieldError{Field: "new_parent_id", Message: "node cannot be its own parent"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteNodeInput holds the parameters for deleting a node and its subtree.
type DeleteNodeInput struct {
	ActorID uuid.UUID
	TreeID  uuid.UUID
	NodeID  uuid.UUID
}

// Validate checks all fields.
func (i DeleteNodeInput) Validate() error {
	var errs []domain.FieldError
	if i.ActorID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "actor_id", Message: "required"})
	}
	if i.TreeID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "tree_id", Message: "required"})
	}
	if i.NodeID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "node_id", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateFieldCategoryInput holds the parameters for creating a field category.
type CreateFieldCategoryInput struct {
	ActorID     uuid.UUID
	DirectoryID uuid.UUID
	Name        string
	Description *string
	Position    int
	Predefined  []domain.PredefinedField
}

// Validate checks all fields and collects all errors.
func (i CreateFieldCategoryInput) Validate() error {
	var errs []domain.FieldError

	if i.ActorID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "actor_id", Message: "required"})
	}
	if i.DirectoryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "directory_id", Message: "required"})
	}
	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	for idx, pf := range i.Predefined {
		if !domain.IsValidFieldKey(pf.Key) {
			errs = append(errs, domain.FieldError{Field: "predefined", Message: "invalid key at index " + strconv.Itoa(idx)})
		}
		if !pf.Type.IsValid() {
			errs = append(errs, domain.FieldError{Field: "predefined", Message: "unknown type at index " + strconv.Itoa(idx)})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateFieldCategoryInput holds the parameters for updating a field category.
type UpdateFieldCategoryInput struct {
	ActorID    uuid.UUID
	CategoryID uuid.UUID
	Params     domain.FieldCategoryUpdateParams
}

// Validate checks all fields and collects all errors.
func (i UpdateFieldCategoryInput) Validate() error {
	var errs []domain.FieldError

	if i.ActorID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "actor_id", Message: "required"})
	}
	if i.CategoryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "category_id", Message: "required"})
	}
	if i.Params.Name == nil && i.Params.Description == nil && i.Params.Position == nil && i.Params.IsEnabled == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Params.Name != nil && strings.TrimSpace(*i.Params.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "must not be blank"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteFieldCategoryInput holds the parameters for deleting a field category.
type DeleteFieldCategoryInput struct {
	ActorID    uuid.UUID
	CategoryID uuid.UUID
}

// Validate checks all fields.
func (i DeleteFieldCategoryInput) Validate() error {
	var errs []domain.FieldError
	if i.ActorID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "actor_id", Message: "required"})
	}
	if i.CategoryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "category_id", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
