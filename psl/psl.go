// Package psl provides the main API for parsing and validating schemas.
package psl

import (
	"github.com/satishbabariya/pslcheck/psl/core"
	"github.com/satishbabariya/pslcheck/psl/diagnostics"
	"github.com/satishbabariya/pslcheck/psl/parsing"
	"github.com/satishbabariya/pslcheck/psl/parsing/ast"
	"github.com/satishbabariya/pslcheck/psl/validation"
)

// Re-export key types for convenience
type (
	SourceFile      = core.SourceFile
	Configuration   = core.Configuration
	Datasource      = core.Datasource
	Generator       = core.Generator
	Diagnostics     = diagnostics.Diagnostics
	SchemaAst       = ast.SchemaAst
	ValidatedSchema = validation.ValidatedSchema
)

// ParseSchema parses a schema file and returns the AST and diagnostics.
func ParseSchema(file core.SourceFile) (*ast.SchemaAst, diagnostics.Diagnostics) {
	return parsing.ParseSchema(file)
}

// ParseSchemaString parses a schema held in memory.
func ParseSchemaString(input string) (*ast.SchemaAst, diagnostics.Diagnostics) {
	return parsing.ParseSchemaString(input)
}

// Validate parses the file and validates it against its datasource's
// connector. A file that does not parse is not validated further.
func Validate(file core.SourceFile, opts ...validation.Option) validation.ValidatedSchema {
	schema, diags := parsing.ParseSchema(file)
	if diags.HasErrors() {
		return validation.ValidatedSchema{Diagnostics: diags}
	}
	return validation.ValidateSchema(schema, diags, opts...)
}

// ValidateString is Validate for a schema held in memory.
func ValidateString(input string, opts ...validation.Option) validation.ValidatedSchema {
	return Validate(core.NewSourceFile("schema.prisma", input), opts...)
}

// NewSourceFile creates a new source file.
func NewSourceFile(path, data string) core.SourceFile {
	return core.NewSourceFile(path, data)
}
