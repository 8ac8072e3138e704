package database

import (
	"github.com/satishbabariya/pslcheck/psl/diagnostics"
	"github.com/satishbabariya/pslcheck/psl/parsing/ast"
)

// handleNativeTypeAttribute records a native type attribute such as @db.Text
// on a scalar field. The prefix must be the name of the datasource.
func handleNativeTypeAttribute(field *ScalarField, attr *ast.Attribute, ctx *Context) {
	prefix, typeName := attr.Path[0], attr.Path[1]

	datasource := ctx.db.datasourceName
	if datasource == "" {
		ctx.PushError(diagnostics.NewAttributeNotKnownError(attr.GetName(), attr.Span()))
		return
	}
	if prefix != datasource {
		ctx.PushError(diagnostics.NewInvalidPrefixForNativeTypesError(
			prefix,
			datasource,
			datasource+"."+typeName,
			attr.Span(),
		))
		return
	}
	if field.NativeType != nil {
		ctx.PushError(diagnostics.NewDuplicateAttributeError(attr.GetName(), attr.Span()))
		return
	}

	args := make([]string, 0, len(attr.Arguments.Iter()))
	for _, arg := range attr.Arguments.Iter() {
		args = append(args, expressionToString(arg.Value))
	}

	field.NativeType = &NativeTypeInfo{
		Scope:     prefix,
		TypeName:  typeName,
		Arguments: args,
		Span:      attr.Span(),
	}
}
