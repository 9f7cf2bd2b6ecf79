package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/formabase/formabase-backend/internal/domain"
)

type errorResponse struct {
	Error   string              `json:"error"`
	Code    string              `json:"code,omitempty"`
	Details []fieldErrorPayload `json:"details,omitempty"`
}

type fieldErrorPayload struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeDomainError maps domain sentinels onto HTTP statuses. Validation
// errors carry their field details; everything unrecognized becomes a 500.
func writeDomainError(w http.ResponseWriter, err error) {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		details := make([]fieldErrorPayload, 0, len(vErr.Errors))
		for _, fe := range vErr.Errors {
			details = append(details, fieldErrorPayload{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:   "validation failed",
			Code:    "VALIDATION",
			Details: details,
		})
		return
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found", Code: "NOT_FOUND"})
	case errors.Is(err, domain.ErrDuplicateName):
		writeJSON(w, http.StatusConflict, errorResponse{Error: "name already in use", Code: "DUPLICATE_NAME"})
	case errors.Is(err, domain.ErrDuplicateKey):
		writeJSON(w, http.StatusConflict, errorResponse{Error: "key already in use", Code: "DUPLICATE_KEY"})
	case errors.Is(err, domain.ErrEdgeExists):
		writeJSON(w, http.StatusConflict, errorResponse{Error: "edge already exists for this pair", Code: "EDGE_EXISTS"})
	case errors.Is(err, domain.ErrInvalidFieldConfig):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error(), Code: "INVALID_FIELD_CONFIG"})
	case errors.Is(err, domain.ErrInvalidURN):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid urn", Code: "INVALID_URN"})
	case errors.Is(err, domain.ErrCategoryMismatch):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "category belongs to another directory", Code: "CATEGORY_MISMATCH"})
	case errors.Is(err, domain.ErrDepthExceeded):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "category depth limit exceeded", Code: "DEPTH_EXCEEDED"})
	case errors.Is(err, domain.ErrFieldLocked):
		writeJSON(w, http.StatusConflict, errorResponse{Error: "field is locked", Code: "FIELD_LOCKED"})
	case errors.Is(err, domain.ErrDirectoryLocked):
		writeJSON(w, http.StatusConflict, errorResponse{Error: "directory is locked", Code: "DIRECTORY_LOCKED"})
	case errors.Is(err, domain.ErrImmutableField):
		writeJSON(w, http.StatusConflict, errorResponse{Error: "field key is immutable", Code: "IMMUTABLE_FIELD"})
	case errors.Is(err, domain.ErrSystemManaged):
		writeJSON(w, http.StatusConflict, errorResponse{Error: "entity is system-managed", Code: "SYSTEM_MANAGED"})
	case errors.Is(err, domain.ErrDirectoryNotEmpty):
		writeJSON(w, http.StatusConflict, errorResponse{Error: "directory is not empty", Code: "DIRECTORY_NOT_EMPTY"})
	case errors.Is(err, domain.ErrCategoryNotEmpty):
		writeJSON(w, http.StatusConflict, errorResponse{Error: "category is not empty", Code: "CATEGORY_NOT_EMPTY"})
	case errors.Is(err, domain.ErrStorageUnavailable):
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "storage unavailable", Code: "STORAGE_UNAVAILABLE"})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}
