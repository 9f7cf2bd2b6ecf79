package rest

import (
	"net/http"

	"github.com/formabase/formabase-backend/internal/domain"
	"github.com/formabase/formabase-backend/internal/typecatalog"
)

type typeDescriptorResponse struct {
	Type            string             `json:"type"`
	Label           string             `json:"label"`
	NeedsOptions    bool               `json:"needsOptions"`
	AcceptsRelation bool               `json:"acceptsRelation"`
	NeedsTree       bool               `json:"needsTree"`
	ListColumn      bool               `json:"listColumn"`
	Default         domain.FieldConfig `json:"default"`
}

// TypesHandler serves the static field type catalog.
type TypesHandler struct{}

// NewTypesHandler creates a TypesHandler.
func NewTypesHandler() *TypesHandler {
	return &TypesHandler{}
}

// List handles GET /field-types.
func (h *TypesHandler) List(w http.ResponseWriter, r *http.Request) {
	descriptors := typecatalog.List()
	out := make([]typeDescriptorResponse, 0, len(descriptors))
	for _, d := range descriptors {
		out = append(out, typeDescriptorResponse{
			Type:            d.Type.String(),
			Label:           d.Label,
			NeedsOptions:    d.NeedsOptions,
			AcceptsRelation: d.AcceptsRelation,
			NeedsTree:       d.NeedsTree,
			ListColumn:      d.ListColumn,
			Default:         d.Default,
		})
	}
	writeJSON(w, http.StatusOK, out)
}
