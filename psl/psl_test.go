package psl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satishbabariya/pslcheck/psl/validation"
)

const schema = `datasource db {
  provider = "postgresql"
  url      = env("DATABASE_URL")
}

model Post {
  id      Int      @id
  body    String   @db.Text
  tags    String[]
  address String   @db.Inet

  @@index([tags], type: Gin)
  @@index([address(ops: InetOps)], type: Gist)
  @@index([body(ops: InetOps)], type: Gist)
}
`

func TestValidate(t *testing.T) {
	result := Validate(NewSourceFile("schema.prisma", schema), validation.WithParallelism(2))
	require.NotNil(t, result.Connector)

	errs := result.Diagnostics.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, "Error parsing attribute \"@@index\": The given operator class `InetOps` does not support native type `Text` of field `body`.", errs[0].Message())

	pretty := result.Diagnostics.ToPrettyString("schema.prisma", schema)
	assert.Contains(t, pretty, "schema.prisma:14")
	assert.Contains(t, pretty, "index([body(ops: InetOps)], type: Gist)")
}

func TestValidateStopsAtParseErrors(t *testing.T) {
	result := ValidateString("model {")
	assert.True(t, result.Diagnostics.HasErrors())
	assert.Nil(t, result.Db)
	assert.Nil(t, result.Connector)
}

func TestParseSchemaString(t *testing.T) {
	ast, diags := ParseSchemaString(schema)
	require.False(t, diags.HasErrors())
	require.Len(t, ast.Models(), 1)
	assert.Equal(t, "Post", ast.Models()[0].GetName())
}
