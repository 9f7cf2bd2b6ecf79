package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/formabase/formabase-backend/internal/domain"
	"github.com/formabase/formabase-backend/internal/service/category"
)

// categoryService defines the minimal interface needed by CategoryHandler.
type categoryService interface {
	AddNode(ctx context.Context, input category.AddNodeInput) (*domain.CategoryNode, error)
	RenameNode(ctx context.Context, input category.RenameNodeInput) (*domain.CategoryNode, error)
	MoveNode(ctx context.Context, input category.MoveNodeInput) (*domain.CategoryNode, error)
	DeleteNode(ctx context.Context, input category.DeleteNodeInput) error
	GetNode(ctx context.Context, treeID, nodeID uuid.UUID) (*domain.CategoryNode, error)
	ListChildren(ctx context.Context, treeID uuid.UUID, parentID *uuid.UUID) ([]*domain.CategoryNode, error)

	CreateFieldCategory(ctx context.Context, input category.CreateFieldCategoryInput) (*domain.FieldCategory, error)
	UpdateFieldCategory(ctx context.Context, input category.UpdateFieldCategoryInput) (*domain.FieldCategory, error)
	DeleteFieldCategory(ctx context.Context, input category.DeleteFieldCategoryInput) error
	GetFieldCategory(ctx context.Context, categoryID uuid.UUID) (*domain.FieldCategory, error)
	ListFieldCategories(ctx context.Context, directoryID uuid.UUID) ([]*domain.FieldCategory, error)
}

// CategoryHandler serves category tree and field category endpoints.
type CategoryHandler struct {
	svc categoryService
	log *slog.Logger
}

// NewCategoryHandler creates a CategoryHandler.
func NewCategoryHandler(svc categoryService, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{svc: svc, log: logger.With("handler", "category")}
}

type addNodeRequest struct {
	ParentID *uuid.UUID `json:"parentId,omitempty"`
	Name     string     `json:"name"`
}

type renameNodeRequest struct {
	Name string `json:"name"`
}

type moveNodeRequest struct {
	NewParentID *uuid.UUID `json:"newParentId,omitempty"`
}

type nodeResponse struct {
	ID        uuid.UUID  `json:"id"`
	TreeID    uuid.UUID  `json:"treeId"`
	ParentID  *uuid.UUID `json:"parentId,omitempty"`
	Name      string     `json:"name"`
	Position  int        `json:"position"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func toNodeResponse(n *domain.CategoryNode) nodeResponse {
	return nodeResponse{
		ID:        n.ID,
		TreeID:    n.TreeID,
		ParentID:  n.ParentID,
		Name:      n.Name,
		Position:  n.Position,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

// AddNode handles POST /trees/{treeID}/nodes.
func (h *CategoryHandler) AddNode(w http.ResponseWriter, r *http.Request) {
	actorID, ok := requireActor(w, r)
	if !ok {
		return
	}
	treeID, ok := uuidParam(w, r, "treeID")
	if !ok {
		return
	}

	var req addNodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	node, err := h.svc.AddNode(r.Context(), category.AddNodeInput{
		ActorID:  actorID,
		TreeID:   treeID,
		ParentID: req.ParentID,
		Name:     req.Name,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toNodeResponse(node))
}

// ListNodes handles GET /trees/{treeID}/nodes?parentId=. Without parentId it
// returns the root nodes.
func (h *CategoryHandler) ListNodes(w http.ResponseWriter, r *http.Request) {
	treeID, ok := uuidParam(w, r, "treeID")
	if !ok {
		return
	}

	var parentID *uuid.UUID
	if raw := r.URL.Query().Get("parentId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid parentId")
			return
		}
		parentID = &id
	}

	nodes, err := h.svc.ListChildren(r.Context(), treeID, parentID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	out := make([]nodeResponse, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, toNodeResponse(n))
	}
	writeJSON(w, http.StatusOK, out)
}

// GetNode handles GET /trees/{treeID}/nodes/{nodeID}.
func (h *CategoryHandler) GetNode(w http.ResponseWriter, r *http.Request) {
	treeID, ok := uuidParam(w, r, "treeID")
	if !ok {
		return
	}
	nodeID, ok := uuidParam(w, r, "nodeID")
	if !ok {
		return
	}

	node, err := h.svc.GetNode(r.Context(), treeID, nodeID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toNodeResponse(node))
}

// RenameNode handles PATCH /trees/{treeID}/nodes/{nodeID}.
func (h *CategoryHandler) RenameNode(w http.ResponseWriter, r *http.Request) {
	actorID, ok := requireActor(w, r)
	if !ok {
		return
	}
	treeID, ok := uuidParam(w, r, "treeID")
	if !ok {
		return
	}
	nodeID, ok := uuidParam(w, r, "nodeID")
	if !ok {
		return
	}

	var req renameNodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	node, err := h.svc.RenameNode(r.Context(), category.RenameNodeInput{
		ActorID: actorID,
		TreeID:  treeID,
		NodeID:  nodeID,
		Name:    req.Name,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toNodeResponse(node))
}

// MoveNode handles PUT /trees/{treeID}/nodes/{nodeID}/parent.
func (h *CategoryHandler) MoveNode(w http.ResponseWriter, r *http.Request) {
	actorID, ok := requireActor(w, r)
	if !ok {
		return
	}
	treeID, ok := uuidParam(w, r, "treeID")
	if !ok {
		return
	}
	nodeID, ok := uuidParam(w, r, "nodeID")
	if !ok {
		return
	}

	var req moveNodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	node, err := h.svc.MoveNode(r.Context(), category.MoveNodeInput{
		ActorID:     actorID,
		TreeID:      treeID,
		NodeID:      nodeID,
		NewParentID: req.NewParentID,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toNodeResponse(node))
}

// DeleteNode handles DELETE /trees/{treeID}/nodes/{nodeID}. The whole subtree
// goes with the node.
func (h *CategoryHandler) DeleteNode(w http.ResponseWriter, r *http.Request) {
	actorID, ok := requireActor(w, r)
	if !ok {
		return
	}
	treeID, ok := uuidParam(w, r, "treeID")
	if !ok {
		return
	}
	nodeID, ok := uuidParam(w, r, "nodeID")
	if !ok {
		return
	}

	err := h.svc.DeleteNode(r.Context(), category.DeleteNodeInput{
		ActorID: actorID,
		TreeID:  treeID,
		NodeID:  nodeID,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type createFieldCategoryRequest struct {
	Name        string                   `json:"name"`
	Description *string                  `json:"description,omitempty"`
	Position    int                      `json:"position"`
	Predefined  []domain.PredefinedField `json:"predefined,omitempty"`
}

type updateFieldCategoryRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Position    *int    `json:"position,omitempty"`
	IsEnabled   *bool   `json:"isEnabled,omitempty"`
}

type fieldCategoryResponse struct {
	ID          uuid.UUID                `json:"id"`
	DirectoryID uuid.UUID                `json:"directoryId"`
	Name        string                   `json:"name"`
	Description *string                  `json:"description,omitempty"`
	Position    int                      `json:"position"`
	IsEnabled   bool                     `json:"isEnabled"`
	IsSystem    bool                     `json:"isSystem"`
	Predefined  []domain.PredefinedField `json:"predefined,omitempty"`
	CreatedAt   time.Time                `json:"createdAt"`
	UpdatedAt   time.Time                `json:"updatedAt"`
}

func toFieldCategoryResponse(c *domain.FieldCategory) fieldCategoryResponse {
	return fieldCategoryResponse{
		ID:          c.ID,
		DirectoryID: c.DirectoryID,
		Name:        c.Name,
		Description: c.Description,
		Position:    c.Position,
		IsEnabled:   c.IsEnabled,
		IsSystem:    c.IsSystem,
		Predefined:  c.Predefined,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// CreateFieldCategory handles POST /directories/{directoryID}/field-categories.
func (h *CategoryHandler) CreateFieldCategory(w http.ResponseWriter, r *http.Request) {
	actorID, ok := requireActor(w, r)
	if !ok {
		return
	}
	dirID, ok := uuidParam(w, r, "directoryID")
	if !ok {
		return
	}

	var req createFieldCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cat, err := h.svc.CreateFieldCategory(r.Context(), category.CreateFieldCategoryInput{
		ActorID:     actorID,
		DirectoryID: dirID,
		Name:        req.Name,
		Description: req.Description,
		Position:    req.Position,
		Predefined:  req.Predefined,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toFieldCategoryResponse(cat))
}

// ListFieldCategories handles GET /directories/{directoryID}/field-categories.
func (h *CategoryHandler) ListFieldCategories(w http.ResponseWriter, r *http.Request) {
	dirID, ok := uuidParam(w, r, "directoryID")
	if !ok {
		return
	}

	cats, err := h.svc.ListFieldCategories(r.Context(), dirID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	out := make([]fieldCategoryResponse, 0, len(cats))
	for _, c := range cats {
		out = append(out, toFieldCategoryResponse(c))
	}
	writeJSON(w, http.StatusOK, out)
}

// GetFieldCategory handles GET /field-categories/{categoryID}.
func (h *CategoryHandler) GetFieldCategory(w http.ResponseWriter, r *http.Request) {
	catID, ok := uuidParam(w, r, "categoryID")
	if !ok {
		return
	}

	cat, err := h.svc.GetFieldCategory(r.Context(), catID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toFieldCategoryResponse(cat))
}

// UpdateFieldCategory handles PATCH /field-categories/{categoryID}.
func (h *CategoryHandler) UpdateFieldCategory(w http.ResponseWriter, r *http.Request) {
	actorID, ok := requireActor(w, r)
	if !ok {
		return
	}
	catID, ok := uuidParam(w, r, "categoryID")
	if !ok {
		return
	}

	var req updateFieldCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cat, err := h.svc.UpdateFieldCategory(r.Context(), category.UpdateFieldCategoryInput{
		ActorID:    actorID,
		CategoryID: catID,
		Params: domain.FieldCategoryUpdateParams{
			Name:        req.Name,
			Description: req.Description,
			Position:    req.Position,
			IsEnabled:   req.IsEnabled,
		},
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toFieldCategoryResponse(cat))
}

// DeleteFieldCategory handles DELETE /field-categories/{categoryID}.
func (h *CategoryHandler) DeleteFieldCategory(w http.ResponseWriter, r *http.Request) {
	actorID, ok := requireActor(w, r)
	if !ok {
		return
	}
	catID, ok := uuidParam(w, r, "categoryID")
	if !ok {
		return
	}

	err := h.svc.DeleteFieldCategory(r.Context(), category.DeleteFieldCategoryInput{
		ActorID:    actorID,
		CategoryID: catID,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
