// Package ast defines the Abstract Syntax Tree types for Prisma Schema Language.
package ast

import (
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/satishbabariya/pslcheck/psl/diagnostics"
)

// SpanFromPositions creates a diagnostics span from participle start and end positions.
func SpanFromPositions(start, end lexer.Position) diagnostics.Span {
	if end.Offset < start.Offset {
		end = start
	}
	return diagnostics.NewSpan(start.Offset, end.Offset, diagnostics.FileIDZero)
}
