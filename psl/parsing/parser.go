// Package parsing provides the participle-based parser for schema files.
package parsing

import (
	"errors"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/satishbabariya/pslcheck/internal/debug"
	"github.com/satishbabariya/pslcheck/psl/core"
	"github.com/satishbabariya/pslcheck/psl/diagnostics"
	"github.com/satishbabariya/pslcheck/psl/parsing/ast"
)

// RawSchema is the raw parse tree structure that matches the grammar.
// This is converted to SchemaAst after parsing.
type RawSchema struct {
	Pos   lexer.Position
	Items []*TopLevelItem `@@*`
}

// TopLevelItem is a union of all possible top-level declarations.
type TopLevelItem struct {
	Pos        lexer.Position
	Model      *ast.Model           `  @@`
	Enum       *ast.Enum            `| @@`
	Datasource *ast.SourceConfig    `| @@`
	Generator  *ast.GeneratorConfig `| @@`
}

// ToTop converts the item to the Top interface.
func (t *TopLevelItem) ToTop() ast.Top {
	switch {
	case t.Model != nil:
		return t.Model
	case t.Enum != nil:
		return t.Enum
	case t.Datasource != nil:
		return t.Datasource
	case t.Generator != nil:
		return t.Generator
	default:
		return nil
	}
}

var parser = participle.MustBuild[RawSchema](
	participle.Lexer(SchemaLexer),
	participle.Elide("Whitespace", "Newline", "Comment", "DocComment", "MultiLineComment"),
	participle.Unquote("String"),
	participle.UseLookahead(10),
	participle.Union[ast.Expression](
		&ast.FunctionCall{},
		&ast.ArrayExpression{},
		&ast.StringValue{},
		&ast.NumericValue{},
		&ast.ConstantValue{},
	),
)

// ParseSchema parses a schema file. A syntax error is reported as a single
// diagnostic positioned where the parser stopped; the returned AST is nil then.
func ParseSchema(file core.SourceFile) (*ast.SchemaAst, diagnostics.Diagnostics) {
	diags := diagnostics.NewDiagnostics()

	raw, err := parser.Parse(file.Path, strings.NewReader(file.Data))
	if err != nil {
		diags.PushError(parserErrorToDiagnostic(err))
		debug.Debug("Schema parse failed", "path", file.Path, "error", err)
		return nil, diags
	}

	schema := &ast.SchemaAst{Tops: make([]ast.Top, 0, len(raw.Items))}
	for _, item := range raw.Items {
		if top := item.ToTop(); top != nil {
			schema.Tops = append(schema.Tops, top)
		}
	}
	debug.Debug("Schema parsed", "path", file.Path, "tops", len(schema.Tops))
	return schema, diags
}

// ParseSchemaString parses a schema held in memory under a placeholder file name.
func ParseSchemaString(input string) (*ast.SchemaAst, diagnostics.Diagnostics) {
	return ParseSchema(core.NewSourceFile("schema.prisma", input))
}

func parserErrorToDiagnostic(err error) diagnostics.DatamodelError {
	var perr participle.Error
	if errors.As(err, &perr) {
		pos := perr.Position()
		return diagnostics.NewParserError(perr.Message(), diagnostics.NewSpan(pos.Offset, pos.Offset, diagnostics.FileIDZero))
	}
	return diagnostics.NewParserError(err.Error(), diagnostics.EmptySpan())
}
