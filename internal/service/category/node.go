package category

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/formabase/formabase-backend/internal/domain"
)

// AddNode appends a node to the end of its sibling list. Sibling names are
// unique per parent (case-insensitive) and trees never exceed
// domain.MaxCategoryDepth levels.
func (s *Service) AddNode(ctx context.Context, input AddNodeInput) (*domain.CategoryNode, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var node *domain.CategoryNode
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if input.ParentID != nil {
			parentDepth, err := s.nodes.Depth(txCtx, input.TreeID, *input.ParentID)
			if err != nil {
				return fmt.Errorf("parent depth: %w", err)
			}
			if parentDepth >= domain.MaxCategoryDepth {
				return fmt.Errorf("parent at level %d: %w", parentDepth, domain.ErrDepthExceeded)
			}
		}

		var err error
		node, err = s.nodes.Create(txCtx, input.TreeID, input.ParentID, strings.TrimSpace(input.Name))
		if err != nil {
			return fmt.Errorf("create node: %w", err)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    input.ActorID,
			EntityType: domain.EntityTypeCategoryNode,
			EntityID:   &node.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"name": map[string]any{"new": node.Name},
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

	s.log.InfoContext(ctx, "category node added",
		slog.String("tree_id", input.TreeID.String()),
		slog.String("node_id", node.ID.String()),
	)

	return node, nil
}

// RenameNode changes a node's display name. The id is the stable identity,
// so records referencing the node keep pointing at it across renames.
func (s *Service) RenameNode(ctx context.Context, input RenameNodeInput) (*domain.CategoryNode, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var node *domain.CategoryNode
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var renameErr error
		node, renameErr = s.nodes.Rename(txCtx, input.TreeID, input.NodeID, strings.TrimSpace(input.Name))
		if renameErr != nil {
			return fmt.Errorf("rename node: %w", renameErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    input.ActorID,
			EntityType: domain.EntityTypeCategoryNode,
			EntityID:   &node.ID,
			Action:     domain.AuditActionUpdate,
			Changes: map[string]any{
				"name": map[string]any{"new": node.Name},
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

	s.log.InfoContext(ctx, "category node renamed",
		slog.String("tree_id", input.TreeID.String()),
		slog.String("node_id", node.ID.String()),
	)

	return node, nil
}

// MoveNode reparents a node together with its subtree. The move is rejected
// when the target parent sits inside the moved subtree, or when the combined
// depth of the new location and the subtree's height would exceed the cap.
func (s *Service) MoveNode(ctx context.Context, input MoveNodeInput) (*domain.CategoryNode, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var node *domain.CategoryNode
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		height, err := s.nodes.SubtreeHeight(txCtx, input.TreeID, input.NodeID)
		if err != nil {
			return fmt.Errorf("subtree height: %w", err)
		}

		parentDepth := 0
		if input.NewParentID != nil {
			descendant, err := s.nodes.IsDescendant(txCtx, input.TreeID, input.NodeID, *input.NewParentID)
			if err != nil {
				return fmt.Errorf("descendant check: %w", err)
			}
			if descendant {
				return domain.NewValidationError("new_parent_id", "cannot move a node under its own descendant")
			}

			parentDepth, err = s.nodes.Depth(txCtx, input.TreeID, *input.NewParentID)
			if err != nil {
				return fmt.Errorf("parent depth: %w", err)
			}
		}

		if parentDepth+height > domain.MaxCategoryDepth {
			return fmt.Errorf("subtree of height %d at level %d: %w", height, parentDepth+1, domain.ErrDepthExceeded)
		}

		node, err = s.nodes.SetParent(txCtx, input.TreeID, input.NodeID, input.NewParentID)
		if err != nil {
			return fmt.Errorf("move node: %w", err)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    input.ActorID,
			EntityType: domain.EntityTypeCategoryNode,
			EntityID:   &node.ID,
			Action:     domain.AuditActionUpdate,
			Changes: map[string]any{
				"parent_id": map[string]any{"new": node.ParentID},
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

	s.log.InfoContext(ctx, "category node moved",
		slog.String("tree_id", input.TreeID.String()),
		slog.String("node_id", node.ID.String()),
	)

	return node, nil
}

// DeleteNode removes a node and its entire subtree in one transaction.
func (s *Service) DeleteNode(ctx context.Context, input DeleteNodeInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.nodes.Delete(txCtx, input.TreeID, input.NodeID); err != nil {
			return fmt.Errorf("delete node: %w", err)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    input.ActorID,
			EntityType: domain.EntityTypeCategoryNode,
			EntityID:   &input.NodeID,
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

	s.log.InfoContext(ctx, "category node deleted",
		slog.String("tree_id", input.TreeID.String()),
		slog.String("node_id", input.NodeID.String()),
	)

	return nil
}

// GetNode returns a single node.
func (s *Service) GetNode(ctx context.Context, treeID, nodeID uuid.UUID) (*domain.CategoryNode, error) {
	if treeID == uuid.Nil {
		return nil, domain.NewValidationError("tree_id", "required")
	}
	if nodeID == uuid.Nil {
		return nil, domain.NewValidationError("node_id", "required")
	}
	return s.nodes.GetByID(ctx, treeID, nodeID)
}

// ListChildren returns the direct children of parentID ordered by position.
// A nil parentID lists the tree's root nodes.
func (s *Service) ListChildren(ctx context.Context, treeID uuid.UUID, parentID *uuid.UUID) ([]*domain.CategoryNode, error) {
	if treeID == uuid.Nil {
		return nil, domain.NewValidationError("tree_id", "required")
	}
	return s.nodes.ListChildren(ctx, treeID, parentID)
}
