package database

import (
	"github.com/satishbabariya/pslcheck/psl/diagnostics"
	"github.com/satishbabariya/pslcheck/psl/parsing/ast"
)

// ScalarFieldWalker provides access to a scalar field in a model.
type ScalarFieldWalker struct {
	db *ParserDatabase
	id ScalarFieldId
}

// ID returns the scalar field identifier.
func (w *ScalarFieldWalker) ID() ScalarFieldId {
	return w.id
}

func (w *ScalarFieldWalker) attributes() *ScalarField {
	return &w.db.types.ScalarFields[w.id]
}

// Name returns the name of the field.
func (w *ScalarFieldWalker) Name() string {
	return w.AstField().GetName()
}

// AstField returns the AST node for the field.
func (w *ScalarFieldWalker) AstField() *ast.Field {
	return w.attributes().AstField
}

// Span covers the whole field declaration, attributes included.
func (w *ScalarFieldWalker) Span() diagnostics.Span {
	return w.AstField().Span()
}

// Model returns the parent model walker.
func (w *ScalarFieldWalker) Model() *ModelWalker {
	return w.db.WalkModel(w.attributes().ModelID)
}

// ScalarFieldType returns the resolved type of the field.
func (w *ScalarFieldWalker) ScalarFieldType() ScalarFieldType {
	return w.attributes().Type
}

// ScalarType returns the built-in scalar type, or nil for enums and Unsupported types.
func (w *ScalarFieldWalker) ScalarType() *ScalarType {
	return w.attributes().Type.BuiltInScalar
}

// IsEnum reports whether the field's type is an enum.
func (w *ScalarFieldWalker) IsEnum() bool {
	return w.attributes().Type.EnumID != nil
}

// IsUnsupported reports whether the field has an Unsupported("...") type.
func (w *ScalarFieldWalker) IsUnsupported() bool {
	return w.attributes().Type.IsUnsupported()
}

// Arity returns the field arity.
func (w *ScalarFieldWalker) Arity() ast.FieldArity {
	return w.attributes().Arity
}

// IsList reports whether the field is a list (`Type[]`).
func (w *ScalarFieldWalker) IsList() bool {
	return w.attributes().Arity.IsList()
}

// RawNativeType returns the native type attribute as written, e.g. @db.Inet.
func (w *ScalarFieldWalker) RawNativeType() *NativeTypeInfo {
	return w.attributes().NativeType
}

// DatabaseName returns the column name, honoring @map.
func (w *ScalarFieldWalker) DatabaseName() string {
	if mapped := w.attributes().MappedName; mapped != nil {
		return *mapped
	}
	return w.Name()
}
