package schema

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/formabase/formabase-backend/internal/domain"
	"github.com/formabase/formabase-backend/internal/typecatalog"
)

// CreateField adds a field definition to a directory. The key is checked
// against the identifier grammar, the config against the type catalog, and
// the category (when set) must belong to the same directory.
func (s *Service) CreateField(ctx context.Context, input CreateFieldInput) (*domain.FieldDefinition, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	cfg := typecatalog.DefaultConfig(input.Type)
	if input.Config != nil {
		cfg = *input.Config
	}
	if err := typecatalog.ValidateConfig(input.Type, cfg); err != nil {
		return nil, err
	}

	var field *domain.FieldDefinition
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if input.CategoryID != nil {
			cat, err := s.categories.GetByID(txCtx, *input.CategoryID)
			if err != nil {
				return fmt.Errorf("get field category: %w", err)
			}
			if cat.DirectoryID != input.DirectoryID {
				return fmt.Errorf("category %s belongs to directory %s: %w",
					cat.ID, cat.DirectoryID, domain.ErrCategoryMismatch)
			}
		}

		var createErr error
		field, createErr = s.fields.Create(txCtx, &domain.FieldDefinition{
			DirectoryID:  input.DirectoryID,
			CategoryID:   input.CategoryID,
			Key:          input.Key,
			Label:        input.Label,
			Type:         input.Type,
			IsRequired:   input.IsRequired,
			IsUnique:     input.IsUnique,
			IsEnabled:    true,
			ShowInList:   input.ShowInList,
			ShowInForm:   input.ShowInForm,
			ShowInDetail: input.ShowInDetail,
			Position:     input.Position,
			Config:       cfg,
		})
		if createErr != nil {
			return fmt.Errorf("create field: %w", createErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    input.ActorID,
			EntityType: domain.EntityTypeField,
			EntityID:   &field.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"key":  map[string]any{"new": field.Key},
				"type": map[string]any{"new": field.Type.String()},
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "field created",
		slog.String("directory_id", input.DirectoryID.String()),
		slog.String("field_id", field.ID.String()),
		slog.String("key", field.Key),
	)

	return field, nil
}

// UpdateField applies partial updates to a field definition. The key and the
// type are immutable; locked fields reject every change. A replaced config is
// re-validated against the field's type, and a new category association must
// stay within the field's directory.
func (s *Service) UpdateField(ctx context.Context, input UpdateFieldInput) (*domain.FieldDefinition, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var field *domain.FieldDefinition
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.fields.GetByID(txCtx, input.FieldID)
		if err != nil {
			return fmt.Errorf("get field: %w", err)
		}
		if current.IsLocked {
			return fmt.Errorf("field %s: %w", current.Key, domain.ErrFieldLocked)
		}
		if input.Key != nil && *input.Key != current.Key {
			return fmt.Errorf("field %s: %w", current.Key, domain.ErrImmutableField)
		}

		if input.Params.Config != nil {
			if err := typecatalog.ValidateConfig(current.Type, *input.Params.Config); err != nil {
				return err
			}
		}
		if input.Params.CategoryID != nil && *input.Params.CategoryID != nil {
			cat, err := s.categories.GetByID(txCtx, **input.Params.CategoryID)
			if err != nil {
				return fmt.Errorf("get field category: %w", err)
			}
			if cat.DirectoryID != current.DirectoryID {
				return fmt.Errorf("category %s belongs to directory %s: %w",
					cat.ID, cat.DirectoryID, domain.ErrCategoryMismatch)
			}
		}

		field, err = s.fields.Update(txCtx, input.FieldID, input.Params)
		if err != nil {
			return fmt.Errorf("update field: %w", err)
		}

		changes := map[string]any{}
		if input.Params.Label != nil {
			changes["label"] = map[string]any{"old": current.Label, "new": *input.Params.Label}
		}
		if input.Params.IsRequired != nil {
			changes["is_required"] = map[string]any{"old": current.IsRequired, "new": *input.Params.IsRequired}
		}
		if input.Params.IsEnabled != nil {
			changes["is_enabled"] = map[string]any{"old": current.IsEnabled, "new": *input.Params.IsEnabled}
		}
		if input.Params.Config != nil {
			changes["config"] = map[string]any{"new": *input.Params.Config}
		}
		if input.Params.CategoryID != nil {
			changes["category_id"] = map[string]any{"old": current.CategoryID, "new": *input.Params.CategoryID}
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    input.ActorID,
			EntityType: domain.EntityTypeField,
			EntityID:   &field.ID,
			Action:     domain.AuditActionUpdate,
			Changes:    changes,
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "field updated",
		slog.String("field_id", field.ID.String()),
	)

	return field, nil
}

// DeleteField removes a field definition. Locked fields cannot be deleted.
func (s *Service) DeleteField(ctx context.Context, input DeleteFieldInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.fields.GetByID(txCtx, input.FieldID)
		if err != nil {
			return fmt.Errorf("get field: %w", err)
		}
		if current.IsLocked {
			return fmt.Errorf("field %s: %w", current.Key, domain.ErrFieldLocked)
		}

		if err := s.fields.Delete(txCtx, input.FieldID); err != nil {
			return fmt.Errorf("delete field: %w", err)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    input.ActorID,
			EntityType: domain.EntityTypeField,
			EntityID:   &input.FieldID,
			Action:     domain.AuditActionDelete,
			Changes: map[string]any{
				"key": map[string]any{"old": current.Key},
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "field deleted",
		slog.String("field_id", input.FieldID.String()),
	)

	return nil
}

// ReorderFields replaces the full ordering of a directory's fields. The
// supplied ids must be exactly the directory's current field set.
func (s *Service) ReorderFields(ctx context.Context, input ReorderFieldsInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		existing, err := s.fields.ListByDirectory(txCtx, input.DirectoryID)
		if err != nil {
			return fmt.Errorf("list fields: %w", err)
		}
		if len(existing) != len(input.OrderedIDs) {
			return domain.NewValidationError("ordered_ids",
				fmt.Sprintf("expected %d ids, got %d", len(existing), len(input.OrderedIDs)))
		}
		known := make(map[uuid.UUID]struct{}, len(existing))
		for _, f := range existing {
			known[f.ID] = struct{}{}
		}
		for _, id := range input.OrderedIDs {
			if _, ok := known[id]; !ok {
				return domain.NewValidationError("ordered_ids", "unknown field id "+id.String())
			}
		}

		if err := s.fields.SetPositions(txCtx, input.DirectoryID, input.OrderedIDs); err != nil {
			return fmt.Errorf("set positions: %w", err)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    input.ActorID,
			EntityType: domain.EntityTypeDirectory,
			EntityID:   &input.DirectoryID,
			Action:     domain.AuditActionUpdate,
			Changes: map[string]any{
				"field_order": map[string]any{"new": input.OrderedIDs},
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "fields reordered",
		slog.String("directory_id", input.DirectoryID.String()),
		slog.Int("count", len(input.OrderedIDs)),
	)

	return nil
}

// GetField returns a single field definition.
func (s *Service) GetField(ctx context.Context, fieldID uuid.UUID) (*domain.FieldDefinition, error) {
	if fieldID == uuid.Nil {
		return nil, domain.NewValidationError("field_id", "required")
	}
	return s.fields.GetByID(ctx, fieldID)
}

// ListFields returns all field definitions of a directory ordered by
// position.
func (s *Service) ListFields(ctx context.Context, directoryID uuid.UUID) ([]*domain.FieldDefinition, error) {
	if directoryID == uuid.Nil {
		return nil, domain.NewValidationError("directory_id", "required")
	}
	return s.fields.ListByDirectory(ctx, directoryID)
}
