package schema

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/formabase/formabase-backend/internal/domain"
)

// CreateDirectory registers a new directory in the application. Names are
// unique per application (case-insensitive).
func (s *Service) CreateDirectory(ctx context.Context, input CreateDirectoryInput) (*domain.Directory, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var dir *domain.Directory
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		dir, createErr = s.directories.Create(txCtx, &domain.Directory{
			ApplicationID:    input.ApplicationID,
			ModuleID:         input.ModuleID,
			Name:             input.Name,
			Kind:             input.Kind,
			SupportsCategory: input.SupportsCategory,
			Position:         input.Position,
			IsEnabled:        true,
			Config:           input.Config,
		})
		if createErr != nil {
			return fmt.Errorf("create directory: %w", createErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    input.ActorID,
			EntityType: domain.EntityTypeDirectory,
			EntityID:   &dir.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"name": map[string]any{"new": dir.Name},
				"kind": map[string]any{"new": dir.Kind.String()},
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

	s.log.InfoContext(ctx, "directory created",
		slog.String("application_id", input.ApplicationID.String()),
		slog.String("directory_id", dir.ID.String()),
		slog.String("name", dir.Name),
	)

	return dir, nil
}

// UpdateDirectory applies partial updates. System directories only accept
// position and config changes.
func (s *Service) UpdateDirectory(ctx context.Context, input UpdateDirectoryInput) (*domain.Directory, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var dir *domain.Directory
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.directories.GetByID(txCtx, input.ApplicationID, input.DirectoryID)
		if err != nil {
			return fmt.Errorf("get directory: %w", err)
		}
		if current.IsSystem && (input.Params.Name != nil || input.Params.IsEnabled != nil) {
			return fmt.Errorf("directory %s: %w", current.Name, domain.ErrDirectoryLocked)
		}

		dir, err = s.directories.Update(txCtx, input.ApplicationID, input.DirectoryID, input.Params)
		if err != nil {
			return fmt.Errorf("update directory: %w", err)
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
		if input.Params.Config != nil {
			changes["config"] = map[string]any{"new": input.Params.Config}
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    input.ActorID,
			EntityType: domain.EntityTypeDirectory,
			EntityID:   &dir.ID,
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

	s.log.InfoContext(ctx, "directory updated",
		slog.String("directory_id", dir.ID.String()),
	)

	return dir, nil
}

// DeleteDirectory removes a directory and its field definitions. Refused for
// system directories, while the directory still holds records, and while any
// relation field elsewhere in the application targets it.
func (s *Service) DeleteDirectory(ctx context.Context, input DeleteDirectoryInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.directories.GetByID(txCtx, input.ApplicationID, input.DirectoryID)
		if err != nil {
			return fmt.Errorf("get directory: %w", err)
		}
		if current.IsSystem {
			return fmt.Errorf("directory %s: %w", current.Name, domain.ErrDirectoryLocked)
		}

		count, err := s.records.CountByDirectory(txCtx, input.DirectoryID)
		if err != nil {
			return fmt.Errorf("count records: %w", err)
		}
		if count > 0 {
			return fmt.Errorf("directory %s holds %d records: %w", current.Name, count, domain.ErrDirectoryNotEmpty)
		}

		inbound, err := s.fields.ListRelationTargets(txCtx, input.ApplicationID, input.DirectoryID)
		if err != nil {
			return fmt.Errorf("list inbound relations: %w", err)
		}
		if len(inbound) > 0 {
			return fmt.Errorf("directory %s is targeted by %d relation fields: %w",
				current.Name, len(inbound), domain.ErrDirectoryNotEmpty)
		}

		if err := s.directories.Delete(txCtx, input.ApplicationID, input.DirectoryID); err != nil {
			return fmt.Errorf("delete directory: %w", err)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    input.ActorID,
			EntityType: domain.EntityTypeDirectory,
			EntityID:   &input.DirectoryID,
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

	s.log.InfoContext(ctx, "directory deleted",
		slog.String("directory_id", input.DirectoryID.String()),
	)

	return nil
}

// GetDirectory returns a single directory.
func (s *Service) GetDirectory(ctx context.Context, applicationID, directoryID uuid.UUID) (*domain.Directory, error) {
	if applicationID == uuid.Nil {
		return nil, domain.NewValidationError("application_id", "required")
	}
	if directoryID == uuid.Nil {
		return nil, domain.NewValidationError("directory_id", "required")
	}
	return s.directories.GetByID(ctx, applicationID, directoryID)
}

// ListDirectories returns all directories of an application ordered by
// position.
func (s *Service) ListDirectories(ctx context.Context, applicationID uuid.UUID) ([]*domain.Directory, error) {
	if applicationID == uuid.Nil {
		return nil, domain.NewValidationError("application_id", "required")
	}
	return s.directories.List(ctx, applicationID)
}
