package category

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/formabase/formabase-backend/internal/domain"
)

// CreateFieldCategory creates a named section in a directory's field list.
func (s *Service) CreateFieldCategory(ctx context.Context, input CreateFieldCategoryInput) (*domain.FieldCategory, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var cat *domain.FieldCategory
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		cat, createErr = s.categories.Create(txCtx, &domain.FieldCategory{
			DirectoryID: input.DirectoryID,
			Name:        strings.TrimSpace(input.Name),
			Description: input.Description,
			Position:    input.Position,
			IsEnabled:   true,
			Predefined:  input.Predefined,
		})
		if createErr != nil {
			return fmt.Errorf("create field category: %w", createErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    input.ActorID,
			EntityType: domain.EntityTypeFieldCategory,
			EntityID:   &cat.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"name": map[string]any{"new": cat.Name},
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

	s.log.InfoContext(ctx, "field category created",
		slog.String("directory_id", input.DirectoryID.String()),
		slog.String("category_id", cat.ID.String()),
	)

	return cat, nil
}

// UpdateFieldCategory applies partial updates. System categories cannot be
// renamed or disabled, only repositioned.
func (s *Service) UpdateFieldCategory(ctx context.Context, input UpdateFieldCategoryInput) (*domain.FieldCategory, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var cat *domain.FieldCategory
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.categories.GetByID(txCtx, input.CategoryID)
		if err != nil {
			return fmt.Errorf("get field category: %w", err)
		}
		if current.IsSystem && (input.Params.Name != nil || input.Params.Description != nil || input.Params.IsEnabled != nil) {
			return fmt.Errorf("field category %s: %w", current.Name, domain.ErrSystemManaged)
		}

		cat, err = s.categories.Update(txCtx, input.CategoryID, input.Params)
		if err != nil {
			return fmt.Errorf("update field category: %w", err)
		}

		changes := map[string]any{}
		if input.Params.Name != nil {
			changes["name"] = map[string]any{"old": current.Name, "new": *input.Params.Name}
		}
		if input.Params.Position != nil {
			changes["position"] = map[string]any{"old": current.Position, "new": *input.Params.Position}
		}
		if input.Params.IsEnabled != nil {
			changes["is_enabled"] = map[string]any{"old": current.IsEnabled, "new": *input.Params.IsEnabled}
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    input.ActorID,
			EntityType: domain.EntityTypeFieldCategory,
			EntityID:   &cat.ID,
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

	s.log.InfoContext(ctx, "field category updated",
		slog.String("category_id", cat.ID.String()),
	)

	return cat, nil
}

// DeleteFieldCategory removes a category. Refused while any field still
// belongs to it, and always refused for system categories.
func (s *Service) DeleteFieldCategory(ctx context.Context, input DeleteFieldCategoryInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.categories.GetByID(txCtx, input.CategoryID)
		if err != nil {
			return fmt.Errorf("get field category: %w", err)
		}
		if current.IsSystem {
			return fmt.Errorf("field category %s: %w", current.Name, domain.ErrSystemManaged)
		}

		count, err := s.fields.CountByCategory(txCtx, input.CategoryID)
		if err != nil {
			return fmt.Errorf("count fields: %w", err)
		}
		if count > 0 {
			return fmt.Errorf("field category %s still holds %d fields: %w", current.Name, count, domain.ErrCategoryNotEmpty)
		}

		if err := s.categories.Delete(txCtx, input.CategoryID); err != nil {
			return fmt.Errorf("delete field category: %w", err)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    input.ActorID,
			EntityType: domain.EntityTypeFieldCategory,
			EntityID:   &input.CategoryID,
			Action:     domain.AuditActionDelete,
			Changes:    map[string]any{},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "field category deleted",
		slog.String("category_id", input.CategoryID.String()),
	)

	return nil
}

// GetFieldCategory returns a single field category.
func (s *Service) GetFieldCategory(ctx context.Context, categoryID uuid.UUID) (*domain.FieldCategory, error) {
	if categoryID == uuid.Nil {
		return nil, domain.NewValidationError("category_id", "required")
	}
	return s.categories.GetByID(ctx, categoryID)
}

// ListFieldCategories returns all categories of a directory ordered by
// position.
func (s *Service) ListFieldCategories(ctx context.Context, directoryID uuid.UUID) ([]*domain.FieldCategory, error) {
	if directoryID == uuid.Nil {
		return nil, domain.NewValidationError("directory_id", "required")
	}
	return s.categories.ListByDirectory(ctx, directoryID)
}
