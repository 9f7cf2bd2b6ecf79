package domain

// FieldType identifies an entry of the type catalog.
type FieldType string

const (
	FieldTypeText         FieldType = "text"
	FieldTypeTextarea     FieldType = "textarea"
	FieldTypeNumber       FieldType = "number"
	FieldTypeBoolean      FieldType = "boolean"
	FieldTypeDate         FieldType = "date"
	FieldTypeSelect       FieldType = "select"
	FieldTypeMultiSelect  FieldType = "multi_select"
	FieldTypeCascader     FieldType = "cascader"
	FieldTypeRelationOne  FieldType = "relation_one"
	FieldTypeRelationMany FieldType = "relation_many"
)

func (t FieldType) String() string { return string(t) }

func (t FieldType) IsValid() bool {
	switch t {
	case FieldTypeText, FieldTypeTextarea, FieldTypeNumber, FieldTypeBoolean,
		FieldTypeDate, FieldTypeSelect, FieldTypeMultiSelect, FieldTypeCascader,
		FieldTypeRelationOne, FieldTypeRelationMany:
		return true
	}
	return false
}

// IsRelation reports whether values of this type are backed by relation edges.
func (t FieldType) IsRelation() bool {
	return t == FieldTypeRelationOne || t == FieldTypeRelationMany
}

// DirectoryKind distinguishes how a directory is presented and used.
type DirectoryKind string

const (
	DirectoryKindTable    DirectoryKind = "table"
	DirectoryKindCategory DirectoryKind = "category"
	DirectoryKindForm     DirectoryKind = "form"
)

func (k DirectoryKind) String() string { return string(k) }

func (k DirectoryKind) IsValid() bool {
	switch k {
	case DirectoryKindTable, DirectoryKindCategory, DirectoryKindForm:
		return true
	}
	return false
}

// RelationType is the cardinality of a relation edge.
type RelationType string

const (
	RelationOneToOne   RelationType = "one_to_one"
	RelationOneToMany  RelationType = "one_to_many"
	RelationManyToMany RelationType = "many_to_many"
)

func (r RelationType) String() string { return string(r) }

func (r RelationType) IsValid() bool {
	switch r {
	case RelationOneToOne, RelationOneToMany, RelationManyToMany:
		return true
	}
	return false
}

// DateMode selects the precision of a date field.
type DateMode string

const (
	DateModeDate     DateMode = "date"
	DateModeDateTime DateMode = "datetime"
	DateModeYear     DateMode = "year"
	DateModeMonth    DateMode = "month"
)

func (m DateMode) String() string { return string(m) }

func (m DateMode) IsValid() bool {
	switch m {
	case DateModeDate, DateModeDateTime, DateModeYear, DateModeMonth:
		return true
	}
	return false
}

// EntityType identifies the kind of domain entity (used in audit logs).
type EntityType string

const (
	EntityTypeDirectory     EntityType = "DIRECTORY"
	EntityTypeField         EntityType = "FIELD"
	EntityTypeFieldCategory EntityType = "FIELD_CATEGORY"
	EntityTypeCategoryNode  EntityType = "CATEGORY_NODE"
	EntityTypeRelationEdge  EntityType = "RELATION_EDGE"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeDirectory, EntityTypeField, EntityTypeFieldCategory,
		EntityTypeCategoryNode, EntityTypeRelationEdge:
		return true
	}
	return false
}

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionUpdate AuditAction = "UPDATE"
	AuditActionDelete AuditAction = "DELETE"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionDelete:
		return true
	}
	return false
}
