package database

import (
	"github.com/satishbabariya/pslcheck/psl/parsing/ast"
)

// ModelWalker provides access to a model declaration in the schema.
type ModelWalker struct {
	db *ParserDatabase
	id ModelId
}

// ID returns the model identifier.
func (w *ModelWalker) ID() ModelId {
	return w.id
}

// Name returns the name of the model.
func (w *ModelWalker) Name() string {
	return w.AstModel().GetName()
}

// AstModel returns the AST node for the model.
func (w *ModelWalker) AstModel() *ast.Model {
	return w.db.models[w.id].ast
}

// IsView reports whether the block was declared with `view`.
func (w *ModelWalker) IsView() bool {
	return w.AstModel().IsView()
}

// Attributes returns the resolved attributes of the model.
func (w *ModelWalker) Attributes() *ModelAttributes {
	return &w.db.models[w.id].attributes
}

// DatabaseName returns the name of the database table the model points to.
func (w *ModelWalker) DatabaseName() string {
	if mapped := w.Attributes().MappedName; mapped != nil {
		return *mapped
	}
	return w.Name()
}

// ScalarFields returns the model's scalar fields in declaration order.
func (w *ModelWalker) ScalarFields() []*ScalarFieldWalker {
	ids := w.db.models[w.id].scalarFields
	result := make([]*ScalarFieldWalker, 0, len(ids))
	for _, id := range ids {
		result = append(result, w.db.WalkScalarField(id))
	}
	return result
}

// FindScalarField returns the scalar field with the given name.
func (w *ModelWalker) FindScalarField(name string) *ScalarFieldWalker {
	ref, ok := w.db.models[w.id].fields[name]
	if !ok || ref.scalar == nil {
		return nil
	}
	return w.db.WalkScalarField(*ref.scalar)
}

// Indexes returns @@index, @@unique and field-level @unique definitions,
// ordered by their position in the source.
func (w *ModelWalker) Indexes() []*IndexWalker {
	indexes := w.Attributes().AstIndexes
	result := make([]*IndexWalker, 0, len(indexes))
	for i := range indexes {
		result = append(result, w.db.WalkIndex(IndexId{Model: w.id, Index: uint32(i)}))
	}
	return result
}

// HasPrimaryKey reports whether the model declares @id or @@id.
func (w *ModelWalker) HasPrimaryKey() bool {
	return w.Attributes().HasPrimaryKey
}
