package ast

import (
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/satishbabariya/pslcheck/psl/diagnostics"
)

// Model represents a model or view declaration.
// Fields and block attributes may be interleaved in the source.
type Model struct {
	Pos             lexer.Position
	EndPos          lexer.Position
	Keyword         string            `@("model" | "view")`
	Name            *Identifier       `@@`
	Fields          []*Field          `"{" ( @@`
	BlockAttributes []*BlockAttribute `    | @@ )* "}"`
}

// IsView returns true if this is a view declaration.
func (m *Model) IsView() bool {
	return m.Keyword == "view"
}

// GetName returns the model name.
func (m *Model) GetName() string {
	if m.Name == nil {
		return ""
	}
	return m.Name.Name
}

// Span returns the span of the whole declaration.
func (m *Model) Span() diagnostics.Span {
	return SpanFromPositions(m.Pos, m.EndPos)
}

// FindField returns the field with the given name.
func (m *Model) FindField(name string) (*Field, bool) {
	for _, f := range m.Fields {
		if f.GetName() == name {
			return f, true
		}
	}
	return nil, false
}
