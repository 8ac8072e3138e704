package database

import (
	"errors"
	"fmt"
	"strings"

	"github.com/satishbabariya/pslcheck/psl/diagnostics"
	"github.com/satishbabariya/pslcheck/psl/parsing/ast"
)

var (
	errFieldResolutionFailed           = errors.New("field resolution failed")
	errFieldResolutionAlreadyDealtWith = errors.New("field resolution error already reported")
)

var indexArguments = map[string]bool{"fields": true, "name": true, "map": true, "type": true, "clustered": true}

// HandleModelIndex handles @@index on a model.
func HandleModelIndex(modelID ModelId, modelAttrs *ModelAttributes, attr *ast.BlockAttribute, ctx *Context) {
	indexAttr := IndexAttribute{
		Type:          IndexTypeNormal,
		AttributeName: "@@index",
		Span:          attr.SpanWithoutPrefix(),
	}

	if !commonIndexValidations(&indexAttr, modelID, attr.Arguments, ctx) {
		return
	}

	name := getNameArgument(attr.Arguments, ctx)
	mappedName := getIndexMappedName(attr.Arguments, ctx)
	if name != nil && mappedName != nil {
		ctx.PushAttributeValidationError(
			"The `@@index` attribute accepts the `name` argument as an alias for the `map` argument for legacy reasons. It does not accept both though. Please use the `map` argument to specify the database name of the index.",
		)
		mappedName = nil
	} else if mappedName == nil {
		// Backwards compatibility: accept name arg on normal indexes and use it as map arg
		mappedName = name
	}
	indexAttr.MappedName = mappedName
	indexAttr.Algorithm, indexAttr.TypeSpan = getIndexAlgorithm(attr.Arguments, ctx)

	modelAttrs.AstIndexes = append(modelAttrs.AstIndexes, indexAttr)
}

// HandleModelUnique handles @@unique on a model.
func HandleModelUnique(modelID ModelId, modelAttrs *ModelAttributes, attr *ast.BlockAttribute, ctx *Context) {
	indexAttr := IndexAttribute{
		Type:          IndexTypeUnique,
		AttributeName: "@@unique",
		Span:          attr.SpanWithoutPrefix(),
	}

	if !commonIndexValidations(&indexAttr, modelID, attr.Arguments, ctx) {
		return
	}

	indexAttr.Name = getNameArgument(attr.Arguments, ctx)
	indexAttr.MappedName = getIndexMappedName(attr.Arguments, ctx)
	indexAttr.Algorithm, indexAttr.TypeSpan = getIndexAlgorithm(attr.Arguments, ctx)

	modelAttrs.AstIndexes = append(modelAttrs.AstIndexes, indexAttr)
}

// HandleFieldUnique handles @unique on a scalar field.
func HandleFieldUnique(sfid ScalarFieldId, modelAttrs *ModelAttributes, attr *ast.Attribute, ctx *Context) {
	field := FieldWithArgs{Field: sfid}

	for _, arg := range attr.Arguments.Iter() {
		switch arg.GetName() {
		case "sort":
			field.SortOrder = parseSortOrder(arg.Value, ctx)
		case "length":
			if length, ok := CoerceInteger(arg.Value, ctx.diagnostics); ok {
				field.Length = &length
			}
		case "map":
		case "clustered":
			ctx.diagnostics.PushWarning(diagnostics.NewUnusedArgumentWarning("clustered", "@unique", arg.Span()))
		default:
			ctx.PushAttributeValidationErrorAt("No such argument.", arg.Span())
		}
	}

	source := sfid
	modelAttrs.AstIndexes = append(modelAttrs.AstIndexes, IndexAttribute{
		Type:          IndexTypeUnique,
		Fields:        []FieldWithArgs{field},
		SourceField:   &source,
		MappedName:    getIndexMappedName(attr.Arguments, ctx),
		AttributeName: "@unique",
		Span:          attr.SpanWithoutPrefix(),
	})
}

// commonIndexValidations resolves the `fields` argument shared by @@index and @@unique.
// It reports false when the index cannot be built.
func commonIndexValidations(indexData *IndexAttribute, modelID ModelId, args *ast.ArgumentsList, ctx *Context) bool {
	for _, arg := range args.Iter() {
		if !arg.IsNamed() {
			continue
		}
		switch name := arg.GetName(); {
		case !indexArguments[name]:
			ctx.PushAttributeValidationErrorAt("No such argument.", arg.Span())
		case name == "clustered":
			ctx.diagnostics.PushWarning(diagnostics.NewUnusedArgumentWarning(name, indexData.AttributeName, arg.Span()))
		}
	}

	fieldsArg, ok := args.Named("fields")
	if !ok {
		fieldsArg, ok = args.Positional()
	}
	if !ok {
		ctx.PushAttributeValidationError("Argument \"fields\" is missing.")
		return false
	}

	resolved, err := resolveFieldArrayWithArgs(fieldsArg.Value, modelID, indexData.Type == IndexTypeUnique, ctx)
	if err != nil {
		return false
	}
	if len(resolved) == 0 {
		ctx.PushAttributeValidationError("The list of fields in an index cannot be empty. Please specify at least one field.")
		return false
	}

	indexData.Fields = resolved
	return true
}

// resolveFieldArrayWithArgs resolves an array of field references with optional
// arguments, e.g. [a, b(sort: Desc), c(ops: JsonbPathOps)].
func resolveFieldArrayWithArgs(values ast.Expression, modelID ModelId, isUnique bool, ctx *Context) ([]FieldWithArgs, error) {
	model := &ctx.db.models[modelID]
	attributeSpan := ctx.CurrentAttributeSpan()

	var resolvedFields []FieldWithArgs
	var unknownFields []string
	var relationFields []string

	for _, elem := range CoerceArray(values) {
		var fieldName string
		var fieldArgs *ast.ArgumentsList

		if fn, ok := elem.AsFunction(); ok {
			fieldName, fieldArgs = fn.Name, fn.Arguments
		} else if constant, ok := elem.AsConstantValue(); ok {
			fieldName = constant.Value
		} else {
			ctx.PushError(diagnostics.NewValueParserError("a field reference", elem.String(), elem.Span()))
			return nil, errFieldResolutionAlreadyDealtWith
		}

		ref, ok := model.fields[fieldName]
		switch {
		case !ok:
			unknownFields = append(unknownFields, fieldName)
			continue
		case ref.relation != nil:
			relationFields = append(relationFields, fieldName)
			continue
		}

		for _, existing := range resolvedFields {
			if existing.Field == *ref.scalar {
				ctx.PushError(diagnostics.NewModelValidationError(
					fmt.Sprintf("The index definition refers to the field %s multiple times.", fieldName),
					"model",
					model.ast.GetName(),
					attributeSpan,
				))
				return nil, errFieldResolutionAlreadyDealtWith
			}
		}

		resolved := FieldWithArgs{Field: *ref.scalar}
		for _, arg := range fieldArgs.Iter() {
			switch arg.GetName() {
			case "sort":
				resolved.SortOrder = parseSortOrder(arg.Value, ctx)
			case "length":
				if length, ok := CoerceInteger(arg.Value, ctx.diagnostics); ok {
					resolved.Length = &length
				}
			case "ops":
				resolved.OperatorClass = parseOperatorClass(arg.Value, ctx)
			default:
				ctx.PushAttributeValidationErrorAt("No such argument.", arg.Span())
			}
		}
		resolvedFields = append(resolvedFields, resolved)
	}

	if len(unknownFields) > 0 {
		prefix := ""
		if isUnique {
			prefix = "unique "
		}
		ctx.PushError(diagnostics.NewModelValidationError(
			fmt.Sprintf("The %sindex definition refers to the unknown fields: %s.", prefix, strings.Join(unknownFields, ", ")),
			"model",
			model.ast.GetName(),
			attributeSpan,
		))
	}

	if len(relationFields) > 0 {
		ctx.PushError(diagnostics.NewModelValidationError(
			fmt.Sprintf("The index definition refers to the relation fields: %s. Index definitions must reference only scalar fields.", strings.Join(relationFields, ", ")),
			"model",
			model.ast.GetName(),
			attributeSpan,
		))
	}

	if len(unknownFields) > 0 || len(relationFields) > 0 {
		return nil, errFieldResolutionFailed
	}
	return resolvedFields, nil
}

// parseOperatorClass reads an `ops:` argument: a known class or raw("...").
func parseOperatorClass(expr ast.Expression, ctx *Context) *OperatorClassStore {
	if constant, ok := expr.AsConstantValue(); ok {
		class, known := ParseOperatorClass(constant.Value)
		if !known {
			ctx.PushAttributeValidationErrorAt(fmt.Sprintf("Unknown operator class: %s.", constant.Value), expr.Span())
			return nil
		}
		return &OperatorClassStore{Class: class, Span: expr.Span()}
	}

	if fn, ok := expr.AsFunction(); ok && fn.Name == "raw" {
		if arg, ok := fn.Arguments.Positional(); ok {
			if raw, ok := CoerceString(arg.Value, ctx.diagnostics); ok {
				return &OperatorClassStore{Raw: &raw, Span: expr.Span()}
			}
			return nil
		}
	}

	ctx.PushError(diagnostics.NewValueParserError("an operator class", expr.String(), expr.Span()))
	return nil
}

func parseSortOrder(expr ast.Expression, ctx *Context) *SortOrder {
	value, ok := CoerceConstant(expr, ctx.diagnostics)
	if !ok {
		return nil
	}
	var order SortOrder
	switch value {
	case "Asc":
		order = SortOrderAsc
	case "Desc":
		order = SortOrderDesc
	default:
		ctx.PushAttributeValidationErrorAt(fmt.Sprintf("Unknown sort order: %s. Expected Asc or Desc.", value), expr.Span())
		return nil
	}
	return &order
}

// getNameArgument reads the client name given with `name:`.
func getNameArgument(args *ast.ArgumentsList, ctx *Context) *string {
	arg, ok := args.Named("name")
	if !ok {
		return nil
	}
	name, ok := CoerceString(arg.Value, ctx.diagnostics)
	if !ok {
		return nil
	}
	if name == "" {
		ctx.PushAttributeValidationError("The `name` argument cannot be an empty string.")
		return nil
	}
	return &name
}

// getIndexMappedName extracts the database name given with `map:`.
func getIndexMappedName(args *ast.ArgumentsList, ctx *Context) *string {
	arg, ok := args.Named("map")
	if !ok {
		return nil
	}
	name, ok := CoerceString(arg.Value, ctx.diagnostics)
	if !ok {
		return nil
	}
	if name == "" {
		ctx.PushAttributeValidationError("The `map` argument cannot be an empty string.")
		return nil
	}
	return &name
}

// getIndexAlgorithm extracts and validates the algorithm (type argument) from an index attribute.
func getIndexAlgorithm(args *ast.ArgumentsList, ctx *Context) (*IndexAlgorithm, *diagnostics.Span) {
	arg, ok := args.Named("type")
	if !ok {
		return nil, nil
	}
	span := arg.Span()

	algoName, ok := CoerceConstant(arg.Value, ctx.diagnostics)
	if !ok {
		return nil, &span
	}

	algo, ok := ParseIndexAlgorithm(algoName)
	if !ok {
		ctx.PushAttributeValidationErrorAt(fmt.Sprintf("Unknown index type: %s.", algoName), span)
		return nil, &span
	}
	return &algo, &span
}
