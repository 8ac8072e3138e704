// Package database resolves a parsed schema into a read-only graph of models,
// fields and indexes, and provides walkers over it.
package database

import (
	"github.com/satishbabariya/pslcheck/psl/diagnostics"
	"github.com/satishbabariya/pslcheck/psl/parsing/ast"
)

// ScalarType represents a built-in scalar type.
type ScalarType string

const (
	ScalarTypeString   ScalarType = "String"
	ScalarTypeInt      ScalarType = "Int"
	ScalarTypeFloat    ScalarType = "Float"
	ScalarTypeBoolean  ScalarType = "Boolean"
	ScalarTypeDateTime ScalarType = "DateTime"
	ScalarTypeJson     ScalarType = "Json"
	ScalarTypeBytes    ScalarType = "Bytes"
	ScalarTypeBigInt   ScalarType = "BigInt"
	ScalarTypeDecimal  ScalarType = "Decimal"
)

// ParseScalarType returns the built-in scalar type with the given name.
func ParseScalarType(name string) (ScalarType, bool) {
	switch st := ScalarType(name); st {
	case ScalarTypeString, ScalarTypeInt, ScalarTypeFloat, ScalarTypeBoolean, ScalarTypeDateTime,
		ScalarTypeJson, ScalarTypeBytes, ScalarTypeBigInt, ScalarTypeDecimal:
		return st, true
	default:
		return "", false
	}
}

// ScalarFieldType represents the type of a scalar field.
type ScalarFieldType struct {
	// One of these will be set:
	EnumID        *EnumId
	BuiltInScalar *ScalarType
	Unsupported   *string
}

// IsUnsupported reports whether the field has an Unsupported("...") type.
func (t ScalarFieldType) IsUnsupported() bool {
	return t.Unsupported != nil
}

// IsBuiltIn reports whether the field type is the given built-in scalar.
func (t ScalarFieldType) IsBuiltIn(st ScalarType) bool {
	return t.BuiltInScalar != nil && *t.BuiltInScalar == st
}

// ScalarField represents a scalar field in a model.
type ScalarField struct {
	ModelID    ModelId
	AstField   *ast.Field
	Type       ScalarFieldType
	Arity      ast.FieldArity
	MappedName *string
	// Native type: (datasource prefix, native type name, arguments, span).
	// For example: @db.Text would translate to ("db", "Text", [], span)
	NativeType *NativeTypeInfo
}

// NativeTypeInfo represents a raw native type attribute.
type NativeTypeInfo struct {
	Scope     string
	TypeName  string
	Arguments []string
	Span      diagnostics.Span
}

// RelationField represents a field whose type is another model.
type RelationField struct {
	ModelID         ModelId
	AstField        *ast.Field
	ReferencedModel ModelId
}

// ModelAttributes holds attributes for a model.
type ModelAttributes struct {
	// @@index and @(@)unique explicitly written to the schema AST
	AstIndexes []IndexAttribute
	// @@map
	MappedName *string
	// @(@)id
	HasPrimaryKey bool
}

// IndexAttribute represents an index attribute.
type IndexAttribute struct {
	Type   IndexType
	Fields []FieldWithArgs
	// Set when the index was declared with a field-level @unique.
	SourceField *ScalarFieldId
	Name        *string
	MappedName  *string
	Algorithm   *IndexAlgorithm
	// AttributeName is how the index was written: @@index, @@unique or @unique.
	AttributeName string
	// Span covers the attribute without its leading @ or @@.
	Span diagnostics.Span
	// TypeSpan covers the `type:` argument, when present.
	TypeSpan *diagnostics.Span
}

// IndexType represents the type of an index.
type IndexType int

const (
	IndexTypeNormal IndexType = iota
	IndexTypeUnique
)

// String returns the name of the index type.
func (t IndexType) String() string {
	if t == IndexTypeUnique {
		return "Unique"
	}
	return "Normal"
}

// FieldWithArgs represents a field with arguments (for indexes, unique constraints, etc.).
type FieldWithArgs struct {
	Field         ScalarFieldId
	SortOrder     *SortOrder
	OperatorClass *OperatorClassStore
	Length        *int
}

// SortOrder represents the sort order for an index field.
type SortOrder int

const (
	SortOrderAsc SortOrder = iota
	SortOrderDesc
)

// String returns the schema spelling of the sort order.
func (s SortOrder) String() string {
	if s == SortOrderDesc {
		return "Desc"
	}
	return "Asc"
}
