package schema

import (
	"strings"

	"github.com/google/uuid"

	"github.com/formabase/formabase-backend/internal/domain"
)

// CreateDirectoryInput holds the parameters for creating a directory.
type CreateDirectoryInput struct {
	ActorID          uuid.UUID
	ApplicationID    uuid.UUID
	ModuleID         uuid.UUID
	Name             string
	Kind             domain.DirectoryKind
	SupportsCategory bool
	Position         int
	Config           map[string]any
}

// Validate checks all fields and collects all errors.
func (i CreateDirectoryInput) Validate() error {
	var errs []domain.FieldError

	if i.ActorID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "actor_id", Message: "required"})
	}
	if i.ApplicationID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "application_id", Message: "required"})
	}
	if i.ModuleID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "module_id", Message: "required"})
	}
	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if !i.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "unknown directory kind"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateDirectoryInput holds the parameters for updating a directory.
type UpdateDirectoryInput struct {
	ActorID       uuid.UUID
	ApplicationID uuid.UUID
	DirectoryID   uuid.UUID
	Params        domain.DirectoryUpdateParams
}

// Validate checks all fields and collects all errors.
func (i UpdateDirectoryInput) Validate() error {
	var errs []domain.FieldError

	if i.ActorID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "actor_id", Message: "required"})
	}
	if i.ApplicationID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "application_id", Message: "required"})
	}
	if i.DirectoryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "directory_id", Message: "required"})
	}
	if i.Params.Name == nil && i.Params.Position == nil && i.Params.IsEnabled == nil && i.Params.Config == nil {
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

// DeleteDirectoryInput holds the parameters for deleting a directory.
type DeleteDirectoryInput struct {
	ActorID       uuid.UUID
	ApplicationID uuid.UUID
	DirectoryID   uuid.UUID
}

// Validate checks all fields.
func (i DeleteDirectoryInput) Validate() error {
	var errs []domain.FieldError
	if i.ActorID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "actor_id", Message: "required"})
	}
	if i.ApplicationID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "application_id", Message: "required"})
	}
	if i.DirectoryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "directory_id", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateFieldInput holds the parameters for adding a field to a directory.
type CreateFieldInput struct {
	ActorID      uuid.UUID
	DirectoryID  uuid.UUID
	CategoryID   *uuid.UUID
	Key          string
	Label        string
	Type         domain.FieldType
	IsRequired   bool
	IsUnique     bool
	ShowInList   bool
	ShowInForm   bool
	ShowInDetail bool
	Position     int
	Config       *domain.FieldConfig
}

// Validate checks all fields and collects all errors. Config contents are
// validated separately against the type catalog.
func (i CreateFieldInput) Validate() error {
	var errs []domain.FieldError

	if i.ActorID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "actor_id", Message: "required"})
	}
	if i.DirectoryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "directory_id", Message: "required"})
	}
	if !domain.IsValidFieldKey(i.Key) {
		errs = append(errs, domain.FieldError{Field: "key", Message: "must match [A-Za-z_][A-Za-z0-9_]*"})
	}
	if strings.TrimSpace(i.Label) == "" {
		errs = append(errs, domain.FieldError{Field: "label", Message: "required"})
	}
	if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "unknown field type"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateFieldInput holds the parameters for updating a field definition.
// Key is not updatable: it is carried here only so a caller that tries to
// change it gets ErrImmutableField instead of a silent no-op.
type UpdateFieldInput struct {
	ActorID uuid.UUID
	FieldID uuid.UUID
	Key     *string
	Params  domain.FieldUpdateParams
}

// Validate checks all fields and collects all errors.
func (i UpdateFieldInput) Validate() error {
	var errs []domain.FieldError

	if i.ActorID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "actor_id", Message: "required"})
	}
	if i.FieldID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "field_id", Message: "required"})
	}
	p := i.Params
	if i.Key == nil && p.Label == nil && p.IsRequired == nil && p.IsUnique == nil && p.IsEnabled == nil &&
		p.ShowInList == nil && p.ShowInForm == nil && p.ShowInDetail == nil &&
		p.Position == nil && p.CategoryID == nil && p.Config == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if p.Label != nil && strings.TrimSpace(*p.Label) == "" {
		errs = append(errs, domain.FieldError{Field: "label", Message: "must not be blank"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteFieldInput holds the parameters for deleting a field definition.
type DeleteFieldInput struct {
	ActorID uuid.UUID
	FieldID uuid.UUID
}

// Validate checks all fields.
func (i DeleteFieldInput) Validate() error {
	var errs []domain.FieldError
	if i.ActorID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "actor_id", Message: "required"})
	}
	if i.FieldID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "field_id", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ReorderFieldsInput holds the full desired ordering of a directory's fields.
type ReorderFieldsInput struct {
	ActorID     uuid.UUID
	DirectoryID uuid.UUID
	OrderedIDs  []uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i ReorderFieldsInput) Validate() error {
	var errs []domain.FieldError

	if i.ActorID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "actor_id", Message: "required"})
	}
	if i.DirectoryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "directory_id", Message: "required"})
	}
	if len(i.OrderedIDs) == 0 {
		errs = append(errs, domain.FieldError{Field: "ordered_ids", Message: "required"})
	}
	seen := make(map[uuid.UUID]struct{}, len(i.OrderedIDs))
	for _, id := range i.OrderedIDs {
		if _, dup := seen[id]; dup {
			errs = append(errs, domain.FieldError{Field: "ordered_ids", Message: "duplicate id " + id.String()})
			break
		}
		seen[id] = struct{}{}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
