package ast

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/satishbabariya/pslcheck/psl/diagnostics"
)

// Expression represents a value expression in the schema.
// This is a union type that can be one of several expression types.
type Expression interface {
	isExpression()
	Span() diagnostics.Span
	String() string

	AsStringValue() (*StringValue, bool)
	AsNumericValue() (*NumericValue, bool)
	AsConstantValue() (*ConstantValue, bool)
	AsFunction() (*FunctionCall, bool)
	AsArray() (*ArrayExpression, bool)
}

// StringValue represents a quoted string literal. The parser unquotes it.
type StringValue struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Value  string `@String`
}

func (s *StringValue) isExpression() {}

// Span returns the source span.
func (s *StringValue) Span() diagnostics.Span { return SpanFromPositions(s.Pos, s.EndPos) }

// String returns the string representation.
func (s *StringValue) String() string { return fmt.Sprintf("%q", s.Value) }

// NumericValue represents a numeric literal (int or float).
type NumericValue struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Value  string `@Number`
}

func (n *NumericValue) isExpression() {}

// Span returns the source span.
func (n *NumericValue) Span() diagnostics.Span { return SpanFromPositions(n.Pos, n.EndPos) }

// String returns the string representation.
func (n *NumericValue) String() string { return n.Value }

// ConstantValue represents a bare identifier value (true, false, enum values, field references).
type ConstantValue struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Value  string `@Ident`
}

func (c *ConstantValue) isExpression() {}

// Span returns the source span.
func (c *ConstantValue) Span() diagnostics.Span { return SpanFromPositions(c.Pos, c.EndPos) }

// String returns the string representation.
func (c *ConstantValue) String() string { return c.Value }

// FunctionCall represents a function call expression like env("DATABASE_URL")
// or a field reference with arguments like a(ops: InetOps).
type FunctionCall struct {
	Pos       lexer.Position
	EndPos    lexer.Position
	Name      string         `@Ident`
	Arguments *ArgumentsList `"(" @@? ")"`
}

func (f *FunctionCall) isExpression() {}

// Span returns the source span.
func (f *FunctionCall) Span() diagnostics.Span { return SpanFromPositions(f.Pos, f.EndPos) }

// String returns the string representation.
func (f *FunctionCall) String() string {
	return fmt.Sprintf("%s(%s)", f.Name, f.Arguments.String())
}

// ArrayExpression represents an array literal like [1, 2, 3] or [field1, field2].
type ArrayExpression struct {
	Pos      lexer.Position
	EndPos   lexer.Position
	Elements []Expression `"[" ( @@ ( "," @@ )* ","? )? "]"`
}

func (a *ArrayExpression) isExpression() {}

// Span returns the source span.
func (a *ArrayExpression) Span() diagnostics.Span { return SpanFromPositions(a.Pos, a.EndPos) }

// String returns the string representation.
func (a *ArrayExpression) String() string {
	parts := make([]string, len(a.Elements))
	for i, elem := range a.Elements {
		parts[i] = elem.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// AsStringValue returns the StringValue if the expression is one.
func (s *StringValue) AsStringValue() (*StringValue, bool)     { return s, true }
func (n *NumericValue) AsStringValue() (*StringValue, bool)    { return nil, false }
func (c *ConstantValue) AsStringValue() (*StringValue, bool)   { return nil, false }
func (f *FunctionCall) AsStringValue() (*StringValue, bool)    { return nil, false }
func (a *ArrayExpression) AsStringValue() (*StringValue, bool) { return nil, false }

// AsNumericValue returns the NumericValue if the expression is one.
func (s *StringValue) AsNumericValue() (*NumericValue, bool)     { return nil, false }
func (n *NumericValue) AsNumericValue() (*NumericValue, bool)    { return n, true }
func (c *ConstantValue) AsNumericValue() (*NumericValue, bool)   { return nil, false }
func (f *FunctionCall) AsNumericValue() (*NumericValue, bool)    { return nil, false }
func (a *ArrayExpression) AsNumericValue() (*NumericValue, bool) { return nil, false }

// AsConstantValue returns the ConstantValue if the expression is one.
func (s *StringValue) AsConstantValue() (*ConstantValue, bool)     { return nil, false }
func (n *NumericValue) AsConstantValue() (*ConstantValue, bool)    { return nil, false }
func (c *ConstantValue) AsConstantValue() (*ConstantValue, bool)   { return c, true }
func (f *FunctionCall) AsConstantValue() (*ConstantValue, bool)    { return nil, false }
func (a *ArrayExpression) AsConstantValue() (*ConstantValue, bool) { return nil, false }

// AsFunction returns the FunctionCall if the expression is one.
func (s *StringValue) AsFunction() (*FunctionCall, bool)     { return nil, false }
func (n *NumericValue) AsFunction() (*FunctionCall, bool)    { return nil, false }
func (c *ConstantValue) AsFunction() (*FunctionCall, bool)   { return nil, false }
func (f *FunctionCall) AsFunction() (*FunctionCall, bool)    { return f, true }
func (a *ArrayExpression) AsFunction() (*FunctionCall, bool) { return nil, false }

// AsArray returns the ArrayExpression if the expression is one.
func (s *StringValue) AsArray() (*ArrayExpression, bool)     { return nil, false }
func (n *NumericValue) AsArray() (*ArrayExpression, bool)    { return nil, false }
func (c *ConstantValue) AsArray() (*ArrayExpression, bool)   { return nil, false }
func (f *FunctionCall) AsArray() (*ArrayExpression, bool)    { return nil, false }
func (a *ArrayExpression) AsArray() (*ArrayExpression, bool) { return a, true }
