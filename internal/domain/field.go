package domain

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

// fieldKeyRe is the grammar for stable machine identifiers.
var fieldKeyRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// IsValidFieldKey reports whether key matches [A-Za-z_][A-Za-z0-9_]*.
func IsValidFieldKey(key string) bool {
	return fieldKeyRe.MatchString(key)
}

// FieldDefinition is a typed, named attribute of a directory.
// Key is immutable once created and unique within the directory.
type FieldDefinition struct {
	ID          uuid.UUID
	DirectoryID uuid.UUID
	CategoryID  *uuid.UUID
	Key         string
	Label       string
	Type        FieldType
	IsRequired  bool
	IsUnique    bool
	IsLocked    bool
	IsEnabled   bool
	ShowInList  bool
	ShowInForm  bool
	ShowInDetail bool
	Position    int
	Config      FieldConfig
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FieldUpdateParams holds the mutable field attributes. Nil means "leave
// unchanged"; CategoryID uses a double pointer so ptr(nil) clears the
// association while nil leaves it alone.
type FieldUpdateParams struct {
	Label        *string
	IsRequired   *bool
	IsUnique     *bool
	IsEnabled    *bool
	ShowInList   *bool
	ShowInForm   *bool
	ShowInDetail *bool
	Position     *int
	CategoryID   **uuid.UUID
	Config       *FieldConfig
}
