package database

import (
	"github.com/satishbabariya/pslcheck/psl/diagnostics"
	"github.com/satishbabariya/pslcheck/psl/parsing/ast"
)

// resolveNames registers top-level names and reports duplicates.
func resolveNames(ctx *Context) {
	db := ctx.db
	seen := make(map[string]string)

	if sources := db.ast.Sources(); len(sources) > 0 {
		db.datasourceName = sources[0].GetName()
	}

	for _, top := range db.ast.Tops {
		var kind string
		var ident *ast.Identifier
		switch t := top.(type) {
		case *ast.Model:
			kind, ident = "model", t.Name
			if t.IsView() {
				kind = "view"
			}
		case *ast.Enum:
			kind, ident = "enum", t.Name
		default:
			continue
		}

		name := ident.String()
		if existing, ok := seen[name]; ok {
			ctx.PushError(diagnostics.NewDuplicateTopError(name, kind, existing, ident.Span()))
			continue
		}
		seen[name] = kind

		switch t := top.(type) {
		case *ast.Model:
			db.modelNames[name] = ModelId(len(db.models))
			db.models = append(db.models, modelData{
				ast:    t,
				fields: make(map[string]fieldRef),
			})
		case *ast.Enum:
			db.enumNames[name] = EnumId(len(db.enums))
			db.enums = append(db.enums, t)
		}
	}
}

// resolveTypes classifies every model field as scalar or relation field.
// Scalar fields are pushed in (model, field) order, so a model's fields are contiguous.
func resolveTypes(ctx *Context) {
	db := ctx.db
	for i := range db.models {
		modelID := ModelId(i)
		model := &db.models[i]
		seen := make(map[string]bool, len(model.ast.Fields))

		for _, field := range model.ast.Fields {
			name := field.GetName()
			if seen[name] {
				container := "model"
				if model.ast.IsView() {
					container = "view"
				}
				ctx.PushError(diagnostics.NewDuplicateFieldError(model.ast.GetName(), name, container, field.Name.Span()))
				continue
			}
			seen[name] = true

			if referenced, ok := db.modelNames[field.GetTypeName()]; ok && !field.Type.IsUnsupported() {
				id := RelationFieldId(len(db.types.RelationFields))
				db.types.RelationFields = append(db.types.RelationFields, RelationField{
					ModelID:         modelID,
					AstField:        field,
					ReferencedModel: referenced,
				})
				model.fields[name] = fieldRef{relation: &id}
				continue
			}

			fieldType, ok := resolveScalarFieldType(ctx, field)
			if !ok {
				continue
			}

			id := ScalarFieldId(len(db.types.ScalarFields))
			db.types.ScalarFields = append(db.types.ScalarFields, ScalarField{
				ModelID:  modelID,
				AstField: field,
				Type:     fieldType,
				Arity:    field.Arity(),
			})
			model.scalarFields = append(model.scalarFields, id)
			model.fields[name] = fieldRef{scalar: &id}
		}
	}
}

func resolveScalarFieldType(ctx *Context, field *ast.Field) (ScalarFieldType, bool) {
	if field.Type.IsUnsupported() {
		return ScalarFieldType{Unsupported: field.Type.Unsupported}, true
	}

	typeName := field.GetTypeName()
	if st, ok := ParseScalarType(typeName); ok {
		return ScalarFieldType{BuiltInScalar: &st}, true
	}
	if enumID, ok := ctx.db.enumNames[typeName]; ok {
		return ScalarFieldType{EnumID: &enumID}, true
	}

	ctx.PushError(diagnostics.NewTypeNotFoundError(typeName, field.Type.Span()))
	return ScalarFieldType{}, false
}
