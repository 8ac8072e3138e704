package database

import (
	"strconv"

	"github.com/satishbabariya/pslcheck/psl/diagnostics"
	"github.com/satishbabariya/pslcheck/psl/parsing/ast"
)

// CoerceString coerces an expression to a string literal value.
func CoerceString(expr ast.Expression, diags *diagnostics.Diagnostics) (string, bool) {
	if strVal, ok := expr.AsStringValue(); ok {
		return strVal.Value, true
	}
	diags.PushError(diagnostics.NewValueParserError("a string value", expr.String(), expr.Span()))
	return "", false
}

// CoerceConstant coerces an expression to a constant (bare identifier).
func CoerceConstant(expr ast.Expression, diags *diagnostics.Diagnostics) (string, bool) {
	if constVal, ok := expr.AsConstantValue(); ok {
		return constVal.Value, true
	}
	diags.PushError(diagnostics.NewValueParserError("a constant value", expr.String(), expr.Span()))
	return "", false
}

// CoerceInteger coerces an expression to an integer.
func CoerceInteger(expr ast.Expression, diags *diagnostics.Diagnostics) (int, bool) {
	if numVal, ok := expr.AsNumericValue(); ok {
		if val, err := strconv.Atoi(numVal.Value); err == nil {
			return val, true
		}
	}
	diags.PushError(diagnostics.NewValueParserError("a numeric value", expr.String(), expr.Span()))
	return 0, false
}

// CoerceArray coerces an expression to the elements of an array literal.
// A single non-array value is treated as a one-element array.
func CoerceArray(expr ast.Expression) []ast.Expression {
	if arr, ok := expr.AsArray(); ok {
		return arr.Elements
	}
	return []ast.Expression{expr}
}

// expressionToString renders a native type argument the way it was written.
func expressionToString(expr ast.Expression) string {
	if strVal, ok := expr.AsStringValue(); ok {
		return strVal.Value
	}
	return expr.String()
}
