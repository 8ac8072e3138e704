package database

import (
	"sort"

	"github.com/satishbabariya/pslcheck/psl/diagnostics"
	"github.com/satishbabariya/pslcheck/psl/parsing/ast"
)

// Field attributes that are accepted without further interpretation.
var passthroughFieldAttributes = map[string]bool{
	"default":   true,
	"updatedAt": true,
	"relation":  true,
	"ignore":    true,
}

// Block attributes that are accepted without further interpretation.
var passthroughBlockAttributes = map[string]bool{
	"ignore": true,
	"schema": true,
}

// resolveAttributes processes field and block attributes of every model.
// Scalar field attributes are resolved first, then the model's block attributes.
func resolveAttributes(ctx *Context) {
	for i := range ctx.db.models {
		modelID := ModelId(i)
		model := &ctx.db.models[i]

		for _, sfid := range model.scalarFields {
			visitScalarFieldAttributes(sfid, &model.attributes, ctx)
		}
		for _, rf := range ctx.db.types.RelationFields {
			if rf.ModelID == modelID {
				visitRelationFieldAttributes(rf.AstField, ctx)
			}
		}
		for _, attr := range model.ast.BlockAttributes {
			visitModelAttribute(modelID, model, attr, ctx)
		}

		sort.SliceStable(model.attributes.AstIndexes, func(a, b int) bool {
			return model.attributes.AstIndexes[a].Span.Less(model.attributes.AstIndexes[b].Span)
		})
	}
}

func visitScalarFieldAttributes(sfid ScalarFieldId, modelAttrs *ModelAttributes, ctx *Context) {
	field := &ctx.db.types.ScalarFields[sfid]

	for _, attr := range field.AstField.Attributes {
		ctx.visitFieldAttribute(attr)

		if len(attr.Path) == 2 {
			handleNativeTypeAttribute(field, attr, ctx)
			continue
		}

		switch name := attr.GetName(); name {
		case "id":
			modelAttrs.HasPrimaryKey = true
		case "unique":
			HandleFieldUnique(sfid, modelAttrs, attr, ctx)
		case "map":
			field.MappedName = getMapArgument(attr.Arguments, ctx)
		default:
			if !passthroughFieldAttributes[name] {
				ctx.PushError(diagnostics.NewAttributeNotKnownError(name, attr.Span()))
			}
		}
	}
}

func visitRelationFieldAttributes(field *ast.Field, ctx *Context) {
	for _, attr := range field.Attributes {
		ctx.visitFieldAttribute(attr)
		switch name := attr.GetName(); name {
		case "relation", "ignore":
		case "id", "unique", "default", "map":
			ctx.PushAttributeValidationError("The attribute `@" + name + "` cannot be used on relation fields.")
		default:
			ctx.PushError(diagnostics.NewAttributeNotKnownError(name, attr.Span()))
		}
	}
}

func visitModelAttribute(modelID ModelId, model *modelData, attr *ast.BlockAttribute, ctx *Context) {
	ctx.visitBlockAttribute(attr)

	switch name := attr.GetName(); name {
	case "index":
		HandleModelIndex(modelID, &model.attributes, attr, ctx)
	case "unique":
		HandleModelUnique(modelID, &model.attributes, attr, ctx)
	case "id":
		model.attributes.HasPrimaryKey = true
	case "map":
		model.attributes.MappedName = getMapArgument(attr.Arguments, ctx)
	default:
		if !passthroughBlockAttributes[name] {
			ctx.PushError(diagnostics.NewAttributeNotKnownError("@"+name, attr.Span()))
		}
	}
}

// getMapArgument reads the database name of a @map or @@map attribute.
func getMapArgument(args *ast.ArgumentsList, ctx *Context) *string {
	arg, ok := args.Positional()
	if !ok {
		arg, ok = args.Named("name")
	}
	if !ok {
		ctx.PushAttributeValidationError("Argument \"name\" is missing.")
		return nil
	}
	name, ok := CoerceString(arg.Value, ctx.diagnostics)
	if !ok {
		return nil
	}
	return &name
}
