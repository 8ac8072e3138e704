package validation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/satishbabariya/pslcheck/psl/diagnostics"
	"github.com/satishbabariya/pslcheck/psl/parsing"
	"github.com/satishbabariya/pslcheck/psl/parsing/ast"
)

const postgresHeader = `datasource test {
  provider = "postgresql"
  url      = env("TEST_DATABASE_URL")
}
`

func parsingSchema(t *testing.T, schema string) (*ast.SchemaAst, diagnostics.Diagnostics) {
	t.Helper()
	parsed, diags := parsing.ParseSchemaString(schema)
	require.False(t, diags.HasErrors(), diags.ToPrettyString("schema.prisma", schema))
	return parsed, diags
}

// validateDml parses and validates a schema body against the Postgres connector.
func validateDml(t *testing.T, dml string, opts ...Option) (string, ValidatedSchema) {
	t.Helper()
	schema := postgresHeader + dml
	parsed, diags := parsingSchema(t, schema)
	return schema, ValidateSchema(parsed, diags, opts...)
}

func messages(diags diagnostics.Diagnostics) []string {
	result := []string{}
	for _, err := range diags.Errors() {
		result = append(result, err.Message())
	}
	return result
}

func attributeError(attribute, message string) string {
	return `Error parsing attribute "` + attribute + `": ` + message
}

// assertValid fails the test when the schema produces any error.
func assertValid(t *testing.T, dml string) {
	t.Helper()
	schema, result := validateDml(t, dml)
	require.Empty(t, messages(result.Diagnostics), result.Diagnostics.ToPrettyString("schema.prisma", schema))
}

// assertSingleError checks that the schema produces exactly the given error.
func assertSingleError(t *testing.T, dml, expected string) diagnostics.DatamodelError {
	t.Helper()
	_, result := validateDml(t, dml)
	require.Equal(t, []string{expected}, messages(result.Diagnostics))
	return result.Diagnostics.Errors()[0]
}
