// Package typecatalog is the static enumeration of field types and the
// validator for their per-type configuration shapes. It has no side effects
// and no persistence; every other schema component consults it.
package typecatalog

import (
	"github.com/google/uuid"

	"github.com/formabase/formabase-backend/internal/domain"
)

// TypeDescriptor states what a field type needs and how it presents.
type TypeDescriptor struct {
	Type            domain.FieldType
	Label           string
	NeedsOptions    bool
	AcceptsRelation bool
	NeedsTree       bool
	ListColumn      bool
	Default         domain.FieldConfig
}

// descriptors is ordered the way types are presented to builders.
var descriptors = []TypeDescriptor{
	{Type: domain.FieldTypeText, Label: "Text", ListColumn: true,
		Default: domain.FieldConfig{Text: &domain.TextConfig{MaxLength: 255}}},
	{Type: domain.FieldTypeTextarea, Label: "Long text",
		Default: domain.FieldConfig{Text: &domain.TextConfig{MaxLength: 4000, Multiline: true}}},
	{Type: domain.FieldTypeNumber, Label: "Number", ListColumn: true,
		Default: domain.FieldConfig{Number: &domain.NumberConfig{}}},
	{Type: domain.FieldTypeBoolean, Label: "Checkbox", ListColumn: true},
	{Type: domain.FieldTypeDate, Label: "Date", ListColumn: true,
		Default: domain.FieldConfig{Date: &domain.DateConfig{Mode: domain.DateModeDate}}},
	{Type: domain.FieldTypeSelect, Label: "Select", NeedsOptions: true, ListColumn: true,
		Default: domain.FieldConfig{Select: &domain.SelectConfig{}}},
	{Type: domain.FieldTypeMultiSelect, Label: "Multi-select", NeedsOptions: true,
		Default: domain.FieldConfig{Select: &domain.SelectConfig{}}},
	{Type: domain.FieldTypeCascader, Label: "Cascader", NeedsTree: true,
		Default: domain.FieldConfig{Cascader: &domain.CascaderConfig{Levels: domain.MaxCategoryDepth}}},
	{Type: domain.FieldTypeRelationOne, Label: "Relation (single)", AcceptsRelation: true, ListColumn: true,
		Default: domain.FieldConfig{Relation: &domain.RelationConfig{}}},
	{Type: domain.FieldTypeRelationMany, Label: "Relation (multiple)", AcceptsRelation: true,
		Default: domain.FieldConfig{Relation: &domain.RelationConfig{}}},
}

var byType = func() map[domain.FieldType]TypeDescriptor {
	m := make(map[domain.FieldType]TypeDescriptor, len(descriptors))
	for _, d := range descriptors {
		m[d.Type] = d
	}
	return m
}()

// List returns all type descriptors in presentation order.
func List() []TypeDescriptor {
	out := make([]TypeDescriptor, len(descriptors))
	copy(out, descriptors)
	return out
}

// Get returns the descriptor for t.
func Get(t domain.FieldType) (TypeDescriptor, bool) {
	d, ok := byType[t]
	return d, ok
}

// DefaultConfig returns a copy of the default configuration for t.
func DefaultConfig(t domain.FieldType) domain.FieldConfig {
	d, ok := byType[t]
	if !ok {
		return domain.FieldConfig{}
	}
	return d.Default
}

// ValidateConfig checks cfg against the shape required by t. It returns a
// *domain.ConfigError (unwrapping to domain.ErrInvalidFieldConfig) on the
// first violation.
func ValidateConfig(t domain.FieldType, cfg domain.FieldConfig) error {
	d, ok := byType[t]
	if !ok {
		return domain.NewConfigError(t, "type", "unknown field type")
	}

	if d.NeedsOptions {
		if cfg.Select == nil || len(cfg.Select.Options) == 0 {
			return domain.NewConfigError(t, "options", "at least one option is required")
		}
		seen := make(map[string]struct{}, len(cfg.Select.Options))
		for _, opt := range cfg.Select.Options {
			if opt.Value == "" {
				return domain.NewConfigError(t, "options", "option value must not be empty")
			}
			if _, dup := seen[opt.Value]; dup {
				return domain.NewConfigError(t, "options", "duplicate option value "+opt.Value)
			}
			seen[opt.Value] = struct{}{}
		}
	}

	if d.AcceptsRelation {
		if cfg.Relation == nil || cfg.Relation.TargetDirectoryID == uuid.Nil {
			return domain.NewConfigError(t, "relation.target_directory_id", "required")
		}
	}

	if d.NeedsTree {
		if cfg.Cascader == nil || cfg.Cascader.TreeID == uuid.Nil {
			return domain.NewConfigError(t, "cascader.tree_id", "required")
		}
		// Levels 0 means the full tree depth.
		if cfg.Cascader.Levels < 0 || cfg.Cascader.Levels > domain.MaxCategoryDepth {
			return domain.NewConfigError(t, "cascader.levels", "must be between 0 and 3")
		}
	}

	if cfg.Number != nil {
		if cfg.Number.Min != nil && cfg.Number.Max != nil && *cfg.Number.Min > *cfg.Number.Max {
			return domain.NewConfigError(t, "number", "min must not exceed max")
		}
		if cfg.Number.Precision < 0 {
			return domain.NewConfigError(t, "number.precision", "must not be negative")
		}
	}

	if cfg.Text != nil && cfg.Text.MaxLength < 0 {
		return domain.NewConfigError(t, "text.max_length", "must not be negative")
	}

	if t == domain.FieldTypeDate {
		if cfg.Date != nil && !cfg.Date.Mode.IsValid() {
			return domain.NewConfigError(t, "date.mode", "unknown mode "+cfg.Date.Mode.String())
		}
	}

	return nil
}
