package ast

import (
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/satishbabariya/pslcheck/psl/diagnostics"
)

// Identifier represents a named identifier in the schema.
// Keywords are accepted so that fields and arguments may be called `type` or `model`.
type Identifier struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Name   string `@(Ident | Keyword)`
}

// String returns the identifier name.
func (i *Identifier) String() string {
	if i == nil {
		return ""
	}
	return i.Name
}

// Span returns the source span of the identifier.
func (i *Identifier) Span() diagnostics.Span {
	return SpanFromPositions(i.Pos, i.EndPos)
}
