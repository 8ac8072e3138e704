package database

import (
	"github.com/satishbabariya/pslcheck/internal/debug"
	"github.com/satishbabariya/pslcheck/psl/diagnostics"
	"github.com/satishbabariya/pslcheck/psl/parsing/ast"
)

// ParserDatabase is a container for a Schema AST, together with information
// gathered while resolving names, types and attributes. It is immutable once
// NewParserDatabase returns and may be read from several goroutines.
type ParserDatabase struct {
	ast            *ast.SchemaAst
	datasourceName string

	models     []modelData
	enums      []*ast.Enum
	modelNames map[string]ModelId
	enumNames  map[string]EnumId

	types Types
}

type modelData struct {
	ast          *ast.Model
	scalarFields []ScalarFieldId
	fields       map[string]fieldRef
	attributes   ModelAttributes
}

// fieldRef points at either a scalar or a relation field of a model.
type fieldRef struct {
	scalar   *ScalarFieldId
	relation *RelationFieldId
}

// Types holds resolved type information.
type Types struct {
	ScalarFields   []ScalarField
	RelationFields []RelationField
}

// NewParserDatabase resolves the schema AST into a ParserDatabase. Every
// problem found is pushed to diags; resolution continues past errors.
func NewParserDatabase(schema *ast.SchemaAst, diags *diagnostics.Diagnostics) *ParserDatabase {
	db := &ParserDatabase{
		ast:        schema,
		modelNames: make(map[string]ModelId),
		enumNames:  make(map[string]EnumId),
	}
	if schema == nil {
		return db
	}

	ctx := newContext(db, diags)
	resolveNames(ctx)
	resolveTypes(ctx)
	resolveAttributes(ctx)

	debug.Debug("Parser database built",
		"models", len(db.models),
		"enums", len(db.enums),
		"scalarFields", len(db.types.ScalarFields),
	)
	return db
}

// Ast returns the schema AST the database was built from.
func (pd *ParserDatabase) Ast() *ast.SchemaAst {
	return pd.ast
}

// DatasourceName returns the name of the first datasource block, which is the
// prefix expected on native type attributes. It is empty without a datasource.
func (pd *ParserDatabase) DatasourceName() string {
	return pd.datasourceName
}

// ModelsCount returns the number of models in the schema.
func (pd *ParserDatabase) ModelsCount() int {
	return len(pd.models)
}

// EnumsCount returns the number of enums in the schema.
func (pd *ParserDatabase) EnumsCount() int {
	return len(pd.enums)
}
