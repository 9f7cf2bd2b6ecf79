package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/formabase/formabase-backend/internal/domain"
	"github.com/formabase/formabase-backend/internal/service/schema"
)

// schemaService defines the minimal interface needed by SchemaHandler.
type schemaService interface {
	CreateDirectory(ctx context.Context, input schema.CreateDirectoryInput) (*domain.Directory, error)
	UpdateDirectory(ctx context.Context, input schema.UpdateDirectoryInput) (*domain.Directory, error)
	DeleteDirectory(ctx context.Context, input schema.DeleteDirectoryInput) error
	GetDirectory(ctx context.Context, applicationID, directoryID uuid.UUID) (*domain.Directory, error)
	ListDirectories(ctx context.Context, applicationID uuid.UUID) ([]*domain.Directory, error)

	CreateField(ctx context.Context, input schema.CreateFieldInput) (*domain.FieldDefinition, error)
	UpdateField(ctx context.Context, input schema.UpdateFieldInput) (*domain.FieldDefinition, error)
	DeleteField(ctx context.Context, input schema.DeleteFieldInput) error
	ReorderFields(ctx context.Context, input schema.ReorderFieldsInput) error
	GetField(ctx context.Context, fieldID uuid.UUID) (*domain.FieldDefinition, error)
	ListFields(ctx context.Context, directoryID uuid.UUID) ([]*domain.FieldDefinition, error)
}

// SchemaHandler serves directory and field definition endpoints.
type SchemaHandler struct {
	svc schemaService
	log *slog.Logger
}

// NewSchemaHandler creates a SchemaHandler.
func NewSchemaHandler(svc schemaService, logger *slog.Logger) *SchemaHandler {
	return &SchemaHandler{svc: svc, log: logger.With("handler", "schema")}
}

type createDirectoryRequest struct {
	ModuleID         uuid.UUID      `json:"moduleId"`
	Name             string         `json:"name"`
	Kind             string         `json:"kind"`
	SupportsCategory bool           `json:"supportsCategory"`
	Position         int            `json:"position"`
	Config           map[string]any `json:"config,omitempty"`
}

type updateDirectoryRequest struct {
	Name      *string        `json:"name,omitempty"`
	Position  *int           `json:"position,omitempty"`
	IsEnabled *bool          `json:"isEnabled,omitempty"`
	Config    map[string]any `json:"config,omitempty"`
}

type directoryResponse struct {
	ID               uuid.UUID      `json:"id"`
	ApplicationID    uuid.UUID      `json:"applicationId"`
	ModuleID         uuid.UUID      `json:"moduleId"`
	Name             string         `json:"name"`
	Kind             string         `json:"kind"`
	SupportsCategory bool           `json:"supportsCategory"`
	Position         int            `json:"position"`
	IsEnabled        bool           `json:"isEnabled"`
	IsSystem         bool           `json:"isSystem"`
	Config           map[string]any `json:"config,omitempty"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
}

func toDirectoryResponse(d *domain.Directory) directoryResponse {
	return directoryResponse{
		ID:               d.ID,
		ApplicationID:    d.ApplicationID,
		ModuleID:         d.ModuleID,
		Name:             d.Name,
		Kind:             d.Kind.String(),
		SupportsCategory: d.SupportsCategory,
		Position:         d.Position,
		IsEnabled:        d.IsEnabled,
		IsSystem:         d.IsSystem,
		Config:           d.Config,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

// CreateDirectory handles POST /applications/{applicationID}/directories.
func (h *SchemaHandler) CreateDirectory(w http.ResponseWriter, r *http.Request) {
	actorID, ok := requireActor(w, r)
	if !ok {
		return
	}
	appID, ok := uuidParam(w, r, "applicationID")
	if !ok {
		return
	}

	var req createDirectoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	dir, err := h.svc.CreateDirectory(r.Context(), schema.CreateDirectoryInput{
		ActorID:          actorID,
		ApplicationID:    appID,
		ModuleID:         req.ModuleID,
		Name:             req.Name,
		Kind:             domain.DirectoryKind(req.Kind),
		SupportsCategory: req.SupportsCategory,
		Position:         req.Position,
		Config:           req.Config,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toDirectoryResponse(dir))
}

// ListDirectories handles GET /applications/{applicationID}/directories.
func (h *SchemaHandler) ListDirectories(w http.ResponseWriter, r *http.Request) {
	appID, ok := uuidParam(w, r, "applicationID")
	if !ok {
		return
	}

	dirs, err := h.svc.ListDirectories(r.Context(), appID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	out := make([]directoryResponse, 0, len(dirs))
	for _, d := range dirs {
		out = append(out, toDirectoryResponse(d))
	}
	writeJSON(w, http.StatusOK, out)
}

// GetDirectory handles GET /applications/{applicationID}/directories/{directoryID}.
func (h *SchemaHandler) GetDirectory(w http.ResponseWriter, r *http.Request) {
	appID, ok := uuidParam(w, r, "applicationID")
	if !ok {
		return
	}
	dirID, ok := uuidParam(w, r, "directoryID")
	if !ok {
		return
	}

	dir, err := h.svc.GetDirectory(r.Context(), appID, dirID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toDirectoryResponse(dir))
}

// UpdateDirectory handles PATCH /applications/{applicationID}/directories/{directoryID}.
func (h *SchemaHandler) UpdateDirectory(w http.ResponseWriter, r *http.Request) {
	actorID, ok := requireActor(w, r)
	if !ok {
		return
	}
	appID, ok := uuidParam(w, r, "applicationID")
	if !ok {
		return
	}
	dirID, ok := uuidParam(w, r, "directoryID")
	if !ok {
		return
	}

	var req updateDirectoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	dir, err := h.svc.UpdateDirectory(r.Context(), schema.UpdateDirectoryInput{
		ActorID:       actorID,
		ApplicationID: appID,
		DirectoryID:   dirID,
		Params: domain.DirectoryUpdateParams{
			Name:      req.Name,
			Position:  req.Position,
			IsEnabled: req.IsEnabled,
			Config:    req.Config,
		},
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toDirectoryResponse(dir))
}

// DeleteDirectory handles DELETE /applications/{applicationID}/directories/{directoryID}.
func (h *SchemaHandler) DeleteDirectory(w http.ResponseWriter, r *http.Request) {
	actorID, ok := requireActor(w, r)
	if !ok {
		return
	}
	appID, ok := uuidParam(w, r, "applicationID")
	if !ok {
		return
	}
	dirID, ok := uuidParam(w, r, "directoryID")
	if !ok {
		return
	}

	err := h.svc.DeleteDirectory(r.Context(), schema.DeleteDirectoryInput{
		ActorID:       actorID,
		ApplicationID: appID,
		DirectoryID:   dirID,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
