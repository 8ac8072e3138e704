package ast

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Top is a union interface for all top-level schema declarations.
type Top interface {
	isTop()
	GetName() string
	TopPos() lexer.Position
}

func (m *Model) isTop()                 {}
func (m *Model) TopPos() lexer.Position { return m.Pos }

func (e *Enum) isTop()                 {}
func (e *Enum) TopPos() lexer.Position { return e.Pos }

func (s *SourceConfig) isTop()                 {}
func (s *SourceConfig) TopPos() lexer.Position { return s.Pos }

func (g *GeneratorConfig) isTop()                 {}
func (g *GeneratorConfig) TopPos() lexer.Position { return g.Pos }

// SchemaAst represents the complete parsed Prisma schema.
type SchemaAst struct {
	Tops []Top
}

// Sources returns all datasource blocks.
func (s *SchemaAst) Sources() []*SourceConfig {
	var result []*SourceConfig
	for _, top := range s.Tops {
		if src, ok := top.(*SourceConfig); ok {
			result = append(result, src)
		}
	}
	return result
}

// Generators returns all generator blocks.
func (s *SchemaAst) Generators() []*GeneratorConfig {
	var result []*GeneratorConfig
	for _, top := range s.Tops {
		if gen, ok := top.(*GeneratorConfig); ok {
			result = append(result, gen)
		}
	}
	return result
}

// Models returns all model and view declarations in declaration order.
func (s *SchemaAst) Models() []*Model {
	var result []*Model
	for _, top := range s.Tops {
		if model, ok := top.(*Model); ok {
			result = append(result, model)
		}
	}
	return result
}

// Enums returns all enum declarations.
func (s *SchemaAst) Enums() []*Enum {
	var result []*Enum
	for _, top := range s.Tops {
		if enum, ok := top.(*Enum); ok {
			result = append(result, enum)
		}
	}
	return result
}
