package domain

import (
	"github.com/google/uuid"
)

// FieldConfig is the per-type configuration of a field definition. It is a
// tagged union keyed by the field's type: exactly the section matching the
// type is consulted, the rest stay nil. The zero value is a valid config for
// types without required settings (text, boolean, ...).
//
// The struct round-trips to the jsonb config column as-is.
type FieldConfig struct {
	Text     *TextConfig     `json:"text,omitempty"`
	Number   *NumberConfig   `json:"number,omitempty"`
	Date     *DateConfig     `json:"date,omitempty"`
	Select   *SelectConfig   `json:"select,omitempty"`
	Cascader *CascaderConfig `json:"cascader,omitempty"`
	Relation *RelationConfig `json:"relation,omitempty"`
}

// TextConfig constrains text and textarea fields.
type TextConfig struct {
	MaxLength   int    `json:"max_length,omitempty"`
	Placeholder string `json:"placeholder,omitempty"`
	Multiline   bool   `json:"multiline,omitempty"`
}

// NumberConfig bounds numeric fields. Min/Max nil means unbounded.
type NumberConfig struct {
	Min       *float64 `json:"min,omitempty"`
	Max       *float64 `json:"max,omitempty"`
	Precision int      `json:"precision,omitempty"`
	Unit      string   `json:"unit,omitempty"`
}

// DateConfig selects the precision of date fields.
type DateConfig struct {
	Mode DateMode `json:"mode"`
}

// SelectOption is one choice of a select or multi_select field.
type SelectOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Color string `json:"color,omitempty"`
}

// SelectConfig lists the choices of select and multi_select fields.
type SelectConfig struct {
	Options []SelectOption `json:"options"`
}

// CascaderConfig binds a cascader field to a 3-level category tree.
type CascaderConfig struct {
	TreeID uuid.UUID `json:"tree_id"`
	Levels int       `json:"levels,omitempty"`
}

// RelationConfig points relation_one/relation_many fields at their target
// directory. DisplayFieldKey names the target field rendered as the label.
type RelationConfig struct {
	TargetDirectoryID uuid.UUID `json:"target_directory_id"`
	DisplayFieldKey   string    `json:"display_field_key,omitempty"`
}
