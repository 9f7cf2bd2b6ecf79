package relation

import (
	"time"

	"github.com/google/uuid"

	"github.com/formabase/formabase-backend/internal/domain"
)

// CreateEdgeInput holds the parameters for creating a relation edge.
type CreateEdgeInput struct {
	TenantID uuid.UUID
	ActorID  uuid.UUID
	FromURN  string
	ToURN    string
	Type     domain.RelationType
	Metadata map[string]any
}

// Validate checks all fields and collects all errors.
func (i CreateEdgeInput) Validate() error {
	var errs []domain.FieldError

	if i.TenantID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "tenant_id", Message: "required"})
	}
	if i.ActorID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "actor_id", Message: "required"})
	}
	if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "unknown cardinality"})
	}
	if i.FromURN == i.ToURN {
		errs = append(errs, domain.FieldError{Field: "to_urn", Message: "must differ from from_urn"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// GetEdgeInput holds the parameters for fetching a single edge.
type GetEdgeInput struct {
	TenantID uuid.UUID
	EdgeID   uuid.UUID
}

// Validate checks all fields.
func (i GetEdgeInput) Validate() error {
	var errs []domain.FieldError
	if i.TenantID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "tenant_id", Message: "required"})
	}
	if i.EdgeID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "edge_id", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// QueryEdgesInput holds the parameters for a filtered edge listing.
type QueryEdgesInput struct {
	Filter domain.EdgeFilter
	Page   domain.PageFilter
}

// Validate checks the URN filters against the grammar.
func (i QueryEdgesInput) Validate() error {
	if i.Filter.FromURN != nil {
		if err := domain.ValidateURN(*i.Filter.FromURN); err != nil {
			return err
		}
	}
	if i.Filter.ToURN != nil {
		if err := domain.ValidateURN(*i.Filter.ToURN); err != nil {
			return err
		}
	}
	if i.Filter.Type != nil && !i.Filter.Type.IsValid() {
		return domain.NewValidationError("type", "unknown cardinality")
	}
	return nil
}

// UpdateEdgeInput holds the parameters for updating an edge.
type UpdateEdgeInput struct {
	TenantID uuid.UUID
	ActorID  uuid.UUID
	EdgeID   uuid.UUID
	Params   domain.EdgeUpdateParams
}

// Validate checks all fields and collects all errors.
func (i UpdateEdgeInput) Validate() error {
	var errs []domain.FieldError

	if i.TenantID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "tenant_id", Message: "required"})
	}
	if i.ActorID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "actor_id", Message: "required"})
	}
	if i.EdgeID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "edge_id", Message: "required"})
	}
	if i.Params.FromURN == nil && i.Params.ToURN == nil && i.Params.Type == nil && i.Params.Metadata == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Params.Type != nil && !i.Params.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "unknown cardinality"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// PurgeInput holds the parameters for the retention purge.
type PurgeInput struct {
	Threshold time.Time
}

// Validate checks the threshold is set and in the past.
func (i PurgeInput) Validate() error {
	if i.Threshold.IsZero() {
		return domain.NewValidationError("threshold", "required")
	}
	if i.Threshold.After(time.Now()) {
		return domain.NewValidationError("threshold", "must be in the past")
	}
	return nil
}

// DeleteEdgeInput holds the parameters for soft-deleting an edge.
type DeleteEdgeInput struct {
	TenantID uuid.UUID
	ActorID  uuid.UUID
	EdgeID   uuid.UUID
}

// Validate checks all fields.
func (i DeleteEdgeInput) Validate() error {
	var errs []domain.FieldError
	if i.TenantID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "tenant_id", Message: "required"})
	}
	if i.ActorID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "actor_id", Message: "required"})
	}
	if i.EdgeID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "edge_id", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
