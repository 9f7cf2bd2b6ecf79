package rest

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/formabase/formabase-backend/internal/domain"
	"github.com/formabase/formabase-backend/internal/service/schema"
)

type createFieldRequest struct {
	CategoryID   *uuid.UUID          `json:"categoryId,omitempty"`
	Key          string              `json:"key"`
	Label        string              `json:"label"`
	Type         string              `json:"type"`
	IsRequired   bool                `json:"isRequired"`
	IsUnique     bool                `json:"isUnique"`
	ShowInList   bool                `json:"showInList"`
	ShowInForm   bool                `json:"showInForm"`
	ShowInDetail bool                `json:"showInDetail"`
	Position     int                 `json:"position"`
	Config       *domain.FieldConfig `json:"config,omitempty"`
}

type updateFieldRequest struct {
	Key          *string             `json:"key,omitempty"`
	Label        *string             `json:"label,omitempty"`
	IsRequired   *bool               `json:"isRequired,omitempty"`
	IsUnique     *bool               `json:"isUnique,omitempty"`
	IsEnabled    *bool               `json:"isEnabled,omitempty"`
	ShowInList   *bool               `json:"showInList,omitempty"`
	ShowInForm   *bool               `json:"showInForm,omitempty"`
	ShowInDetail *bool               `json:"showInDetail,omitempty"`
	Position     *int                `json:"position,omitempty"`
	CategoryID   *uuid.UUID          `json:"categoryId,omitempty"`
	ClearCategory bool               `json:"clearCategory,omitempty"`
	Config       *domain.FieldConfig `json:"config,omitempty"`
}

type reorderFieldsRequest struct {
	OrderedIDs []uuid.UUID `json:"orderedIds"`
}

type fieldResponse struct {
	ID           uuid.UUID          `json:"id"`
	DirectoryID  uuid.UUID          `json:"directoryId"`
	CategoryID   *uuid.UUID         `json:"categoryId,omitempty"`
	Key          string             `json:"key"`
	Label        string             `json:"label"`
	Type         string             `json:"type"`
	IsRequired   bool               `json:"isRequired"`
	IsUnique     bool               `json:"isUnique"`
	IsLocked     bool               `json:"isLocked"`
	IsEnabled    bool               `json:"isEnabled"`
	ShowInList   bool               `json:"showInList"`
	ShowInForm   bool               `json:"showInForm"`
	ShowInDetail bool               `json:"showInDetail"`
	Position     int                `json:"position"`
	Config       domain.FieldConfig `json:"config"`
	CreatedAt    time.Time          `json:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt"`
}

func toFieldResponse(f *domain.FieldDefinition) fieldResponse {
	return fieldResponse{
		ID:           f.ID,
		DirectoryID:  f.DirectoryID,
		CategoryID:   f.CategoryID,
		Key:          f.Key,
		Label:        f.Label,
		Type:         f.Type.String(),
		IsRequired:   f.IsRequired,
		IsUnique:     f.IsUnique,
		IsLocked:     f.IsLocked,
		IsEnabled:    f.IsEnabled,
		ShowInList:   f.ShowInList,
		ShowInForm:   f.ShowInForm,
		ShowInDetail: f.ShowInDetail,
		Position:     f.Position,
		Config:       f.Config,
		CreatedAt:    f.CreatedAt,
		UpdatedAt:    f.UpdatedAt,
	}
}

// CreateField handles POST /directories/{directoryID}/fields.
func (h *SchemaHandler) CreateField(w http.ResponseWriter, r *http.Request) {
	actorID, ok := requireActor(w, r)
	if !ok {
		return
	}
	dirID, ok := uuidParam(w, r, "directoryID")
	if !ok {
		return
	}

	var req createFieldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	field, err := h.svc.CreateField(r.Context(), schema.CreateFieldInput{
		ActorID:      actorID,
		DirectoryID:  dirID,
		CategoryID:   req.CategoryID,
		Key:          req.Key,
		Label:        req.Label,
		Type:         domain.FieldType(req.Type),
		IsRequired:   req.IsRequired,
		IsUnique:     req.IsUnique,
		ShowInList:   req.ShowInList,
		ShowInForm:   req.ShowInForm,
		ShowInDetail: req.ShowInDetail,
		Position:     req.Position,
		Config:       req.Config,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toFieldResponse(field))
}

// ListFields handles GET /directories/{directoryID}/fields.
func (h *SchemaHandler) ListFields(w http.ResponseWriter, r *http.Request) {
	dirID, ok := uuidParam(w, r, "directoryID")
	if !ok {
		return
	}

	fields, err := h.svc.ListFields(r.Context(), dirID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	out := make([]fieldResponse, 0, len(fields))
	for _, f := range fields {
		out = append(out, toFieldResponse(f))
	}
	writeJSON(w, http.StatusOK, out)
}

// GetField handles GET /fields/{fieldID}.
func (h *SchemaHandler) GetField(w http.ResponseWriter, r *http.Request) {
	fieldID, ok := uuidParam(w, r, "fieldID")
	if !ok {
		return
	}

	field, err := h.svc.GetField(r.Context(), fieldID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toFieldResponse(field))
}

// UpdateField handles PATCH /fields/{fieldID}. Setting clearCategory removes
// the category association; supplying categoryId replaces it.
func (h *SchemaHandler) UpdateField(w http.ResponseWriter, r *http.Request) {
	actorID, ok := requireActor(w, r)
	if !ok {
		return
	}
	fieldID, ok := uuidParam(w, r, "fieldID")
	if !ok {
		return
	}

	var req updateFieldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	params := domain.FieldUpdateParams{
		Label:        req.Label,
		IsRequired:   req.IsRequired,
		IsUnique:     req.IsUnique,
		IsEnabled:    req.IsEnabled,
		ShowInList:   req.ShowInList,
		ShowInForm:   req.ShowInForm,
		ShowInDetail: req.ShowInDetail,
		Position:     req.Position,
		Config:       req.Config,
	}
	if req.ClearCategory {
		var cleared *uuid.UUID
		params.CategoryID = &cleared
	} else if req.CategoryID != nil {
		params.CategoryID = &req.CategoryID
	}

	field, err := h.svc.UpdateField(r.Context(), schema.UpdateFieldInput{
		ActorID: actorID,
		FieldID: fieldID,
		Key:     req.Key,
		Params:  params,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toFieldResponse(field))
}

// DeleteField handles DELETE /fields/{fieldID}.
func (h *SchemaHandler) DeleteField(w http.ResponseWriter, r *http.Request) {
	actorID, ok := requireActor(w, r)
	if !ok {
		return
	}
	fieldID, ok := uuidParam(w, r, "fieldID")
	if !ok {
		return
	}

	err := h.svc.DeleteField(r.Context(), schema.DeleteFieldInput{
		ActorID: actorID,
		FieldID: fieldID,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ReorderFields handles PUT /directories/{directoryID}/fields/order.
func (h *SchemaHandler) ReorderFields(w http.ResponseWriter, r *http.Request) {
	actorID, ok := requireActor(w, r)
	if !ok {
		return
	}
	dirID, ok := uuidParam(w, r, "directoryID")
	if !ok {
		return
	}

	var req reorderFieldsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.svc.ReorderFields(r.Context(), schema.ReorderFieldsInput{
		ActorID:     actorID,
		DirectoryID: dirID,
		OrderedIDs:  req.OrderedIDs,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
