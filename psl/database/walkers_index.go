package database

import (
	"github.com/satishbabariya/pslcheck/psl/diagnostics"
)

// IndexWalker provides access to an index (@@index, @@unique or @unique).
type IndexWalker struct {
	db *ParserDatabase
	id IndexId
}

func (w *IndexWalker) index() *IndexAttribute {
	return &w.db.models[w.id.Model].attributes.AstIndexes[w.id.Index]
}

// ID returns the index identifier.
func (w *IndexWalker) ID() IndexId {
	return w.id
}

// Model returns the model this index belongs to.
func (w *IndexWalker) Model() *ModelWalker {
	return w.db.WalkModel(w.id.Model)
}

// Type returns the type of the index.
func (w *IndexWalker) Type() IndexType {
	return w.index().Type
}

// IsUnique returns whether this is a unique index.
func (w *IndexWalker) IsUnique() bool {
	return w.index().Type == IndexTypeUnique
}

// IsNormal returns whether this is a normal index.
func (w *IndexWalker) IsNormal() bool {
	return w.index().Type == IndexTypeNormal
}

// IsDefinedOnField reports whether the index comes from a field-level @unique.
func (w *IndexWalker) IsDefinedOnField() bool {
	return w.index().SourceField != nil
}

// AttributeName returns the attribute the index was declared with.
func (w *IndexWalker) AttributeName() string {
	return w.index().AttributeName
}

// Span covers the index attribute without its leading @ or @@.
func (w *IndexWalker) Span() diagnostics.Span {
	return w.index().Span
}

// TypeSpan covers the `type:` argument, falling back to the attribute span.
func (w *IndexWalker) TypeSpan() diagnostics.Span {
	if span := w.index().TypeSpan; span != nil {
		return *span
	}
	return w.Span()
}

// Algorithm returns the index algorithm if specified.
func (w *IndexWalker) Algorithm() *IndexAlgorithm {
	return w.index().Algorithm
}

// Name returns the client name given with `name:` on @@unique.
func (w *IndexWalker) Name() *string {
	return w.index().Name
}

// MappedName returns the database name given with `map:`.
func (w *IndexWalker) MappedName() *string {
	return w.index().MappedName
}

// Fields returns all fields that are part of the index.
func (w *IndexWalker) Fields() []*IndexFieldWalker {
	fields := w.index().Fields
	result := make([]*IndexFieldWalker, 0, len(fields))
	for _, f := range fields {
		result = append(result, &IndexFieldWalker{
			db:            w.db,
			fieldWithArgs: f,
		})
	}
	return result
}

// IndexFieldWalker provides access to a field in an index.
type IndexFieldWalker struct {
	db            *ParserDatabase
	fieldWithArgs FieldWithArgs
}

// ScalarField returns the scalar field walker.
func (w *IndexFieldWalker) ScalarField() *ScalarFieldWalker {
	return w.db.WalkScalarField(w.fieldWithArgs.Field)
}

// Name returns the name of the referenced field.
func (w *IndexFieldWalker) Name() string {
	return w.ScalarField().Name()
}

// SortOrder returns the sort order if specified.
func (w *IndexFieldWalker) SortOrder() *SortOrder {
	return w.fieldWithArgs.SortOrder
}

// Length returns the length prefix if specified.
func (w *IndexFieldWalker) Length() *int {
	return w.fieldWithArgs.Length
}

// OperatorClass returns the operator class if specified.
func (w *IndexFieldWalker) OperatorClass() *OperatorClassStore {
	return w.fieldWithArgs.OperatorClass
}
