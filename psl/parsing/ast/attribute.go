package ast

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/satishbabariya/pslcheck/psl/diagnostics"
)

// Attribute represents a field-level attribute (@attribute).
// Native type attributes carry a datasource prefix, e.g. @db.Inet.
type Attribute struct {
	Pos       lexer.Position
	EndPos    lexer.Position
	Path      []string       `"@" @(Ident | Keyword) ( "." @(Ident | Keyword) )*`
	Arguments *ArgumentsList `( "(" @@ ")" )?`
}

// GetName returns the attribute name without the leading @.
func (a *Attribute) GetName() string {
	return strings.Join(a.Path, ".")
}

// String returns the string representation of the attribute.
func (a *Attribute) String() string {
	return "@" + a.GetName() + argumentsSuffix(a.Arguments)
}

// Span returns the span of the attribute including the leading @.
func (a *Attribute) Span() diagnostics.Span {
	return SpanFromPositions(a.Pos, a.EndPos)
}

// SpanWithoutPrefix returns the attribute span starting after the leading @.
func (a *Attribute) SpanWithoutPrefix() diagnostics.Span {
	span := a.Span()
	span.Start++
	return span
}

// BlockAttribute represents a block-level attribute (@@attribute).
type BlockAttribute struct {
	Pos       lexer.Position
	EndPos    lexer.Position
	Path      []string       `"@@" @(Ident | Keyword) ( "." @(Ident | Keyword) )*`
	Arguments *ArgumentsList `( "(" @@ ")" )?`
}

// GetName returns the block attribute name without the leading @@.
func (b *BlockAttribute) GetName() string {
	return strings.Join(b.Path, ".")
}

// String returns the string representation of the block attribute.
func (b *BlockAttribute) String() string {
	return "@@" + b.GetName() + argumentsSuffix(b.Arguments)
}

// Span returns the span of the attribute including the leading @@.
func (b *BlockAttribute) Span() diagnostics.Span {
	return SpanFromPositions(b.Pos, b.EndPos)
}

// SpanWithoutPrefix returns the attribute span starting after the leading @@.
func (b *BlockAttribute) SpanWithoutPrefix() diagnostics.Span {
	span := b.Span()
	span.Start += 2
	return span
}

func argumentsSuffix(args *ArgumentsList) string {
	if args == nil || len(args.Arguments) == 0 {
		return ""
	}
	return "(" + args.String() + ")"
}
