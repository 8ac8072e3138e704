package ast

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Enum represents an enum declaration.
type Enum struct {
	Pos             lexer.Position
	Keyword         string            `@"enum"`
	Name            *Identifier       `@@`
	Values          []*EnumValue      `"{" ( @@`
	BlockAttributes []*BlockAttribute `    | @@ )* "}"`
}

// GetName returns the enum name.
func (e *Enum) GetName() string {
	if e.Name == nil {
		return ""
	}
	return e.Name.Name
}

// EnumValue represents a single enum value.
type EnumValue struct {
	Pos        lexer.Position
	Name       *Identifier  `@@`
	Attributes []*Attribute `@@*`
}

// GetName returns the enum value name.
func (v *EnumValue) GetName() string {
	if v.Name == nil {
		return ""
	}
	return v.Name.Name
}
