package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satishbabariya/pslcheck/psl/diagnostics"
	"github.com/satishbabariya/pslcheck/psl/parsing"
)

func buildDatabase(t *testing.T, input string) (*ParserDatabase, diagnostics.Diagnostics) {
	t.Helper()
	schema, diags := parsing.ParseSchemaString(input)
	require.False(t, diags.HasErrors(), diags.ToPrettyString("schema.prisma", input))
	db := NewParserDatabase(schema, &diags)
	return db, diags
}

func errorMessages(diags diagnostics.Diagnostics) []string {
	var messages []string
	for _, err := range diags.Errors() {
		messages = append(messages, err.Message())
	}
	return messages
}

func TestResolveIndexWithOperatorClasses(t *testing.T) {
	input := `
datasource test {
  provider = "postgresql"
  url      = env("TEST_DATABASE_URL")
}

model A {
  id   Int    @id
  a    String @test.Inet
  b    Json
  c    String

  @@index([a(ops: InetOps)], type: Gist)
  @@index([b(ops: JsonbPathOps, sort: Desc), c(ops: raw("gin_trgm_ops"), length: 10)], type: Gin, map: "idx_b")
}
`
	db, diags := buildDatabase(t, input)
	require.Empty(t, errorMessages(diags))
	assert.Equal(t, "test", db.DatasourceName())

	model := db.FindModel("A")
	require.NotNil(t, model)
	indexes := model.Indexes()
	require.Len(t, indexes, 2)

	gist := indexes[0]
	assert.True(t, gist.IsNormal())
	assert.Equal(t, "@@index", gist.AttributeName())
	require.NotNil(t, gist.Algorithm())
	assert.Equal(t, IndexAlgorithmGist, *gist.Algorithm())
	assert.Equal(t, "index([a(ops: InetOps)], type: Gist)", input[gist.Span().Start:gist.Span().End])
	assert.Equal(t, "type: Gist", input[gist.TypeSpan().Start:gist.TypeSpan().End])

	fields := gist.Fields()
	require.Len(t, fields, 1)
	assert.Equal(t, "a", fields[0].Name())
	require.NotNil(t, fields[0].OperatorClass())
	assert.Equal(t, OperatorClassInetOps, fields[0].OperatorClass().Class)

	native := fields[0].ScalarField().RawNativeType()
	require.NotNil(t, native)
	assert.Equal(t, "test", native.Scope)
	assert.Equal(t, "Inet", native.TypeName)

	gin := indexes[1]
	require.NotNil(t, gin.Algorithm())
	assert.Equal(t, IndexAlgorithmGin, *gin.Algorithm())
	require.NotNil(t, gin.MappedName())
	assert.Equal(t, "idx_b", *gin.MappedName())

	fields = gin.Fields()
	require.Len(t, fields, 2)
	assert.Equal(t, OperatorClassJsonbPathOps, fields[0].OperatorClass().Class)
	require.NotNil(t, fields[0].SortOrder())
	assert.Equal(t, SortOrderDesc, *fields[0].SortOrder())

	raw := fields[1].OperatorClass()
	require.NotNil(t, raw)
	assert.True(t, raw.IsRaw())
	assert.Equal(t, "gin_trgm_ops", *raw.Raw)
	require.NotNil(t, fields[1].Length())
	assert.Equal(t, 10, *fields[1].Length())
}

func TestIndexesAreOrderedBySource(t *testing.T) {
	input := `
model A {
  id Int    @id
  a  String @unique
  b  String

  @@unique([b])
  @@index([a, b])
}
`
	db, diags := buildDatabase(t, input)
	require.Empty(t, errorMessages(diags))

	indexes := db.FindModel("A").Indexes()
	require.Len(t, indexes, 3)
	assert.Equal(t, "@unique", indexes[0].AttributeName())
	assert.True(t, indexes[0].IsDefinedOnField())
	assert.Equal(t, "@@unique", indexes[1].AttributeName())
	assert.Equal(t, "@@index", indexes[2].AttributeName())
	assert.Nil(t, indexes[2].Algorithm())
}

func TestResolveIndexErrors(t *testing.T) {
	tests := []struct {
		name     string
		index    string
		expected string
	}{
		{
			name:     "unknown index type",
			index:    `@@index([a], type: Foo)`,
			expected: `Error parsing attribute "@@index": Unknown index type: Foo.`,
		},
		{
			name:     "unknown operator class",
			index:    `@@index([a(ops: FooOps)], type: Gist)`,
			expected: `Error parsing attribute "@@index": Unknown operator class: FooOps.`,
		},
		{
			name:     "unknown field",
			index:    `@@index([nope])`,
			expected: `Error validating model "A": The index definition refers to the unknown fields: nope.`,
		},
		{
			name:     "unknown field in unique",
			index:    `@@unique([nope])`,
			expected: `Error validating model "A": The unique index definition refers to the unknown fields: nope.`,
		},
		{
			name:     "relation field",
			index:    `@@index([b])`,
			expected: `Error validating model "A": The index definition refers to the relation fields: b. Index definitions must reference only scalar fields.`,
		},
		{
			name:     "duplicate field",
			index:    `@@index([a, a])`,
			expected: `Error validating model "A": The index definition refers to the field a multiple times.`,
		},
		{
			name:     "missing fields",
			index:    `@@index(map: "x")`,
			expected: `Error parsing attribute "@@index": Argument "fields" is missing.`,
		},
		{
			name:     "bad sort order",
			index:    `@@index([a(sort: Up)])`,
			expected: `Error parsing attribute "@@index": Unknown sort order: Up. Expected Asc or Desc.`,
		},
		{
			name:     "unknown argument",
			index:    `@@index([a], foo: "bar")`,
			expected: `Error parsing attribute "@@index": No such argument.`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := `
model A {
  id Int    @id
  a  String
  b  B
  ` + tt.index + `
}

model B {
  id Int @id
}
`
			_, diags := buildDatabase(t, input)
			assert.Equal(t, []string{tt.expected}, errorMessages(diags))
		})
	}
}

func TestUnknownFieldsDropIndex(t *testing.T) {
	input := `
model A {
  id Int    @id
  a  String

  @@index([a, nope], type: Gist)
}
`
	db, diags := buildDatabase(t, input)
	assert.Len(t, diags.Errors(), 1)
	assert.Empty(t, db.FindModel("A").Indexes())
}

func TestResolveTypeErrors(t *testing.T) {
	input := `
model A {
  id Int @id
  a  Foo
  a  String
}

enum A {
  X
}
`
	_, diags := buildDatabase(t, input)
	assert.ElementsMatch(t, []string{
		`The enum "A" cannot be defined because a model with that name already exists.`,
		`Type "Foo" is neither a built-in type, nor refers to another model, composite type, or enum.`,
		`Field "a" is already defined on model "A".`,
	}, errorMessages(diags))
}

func TestNativeTypeAttributes(t *testing.T) {
	t.Run("wrong prefix", func(t *testing.T) {
		input := `
datasource db {
  provider = "postgresql"
  url      = env("DATABASE_URL")
}

model A {
  id Int    @id
  a  String @pg.Text
}
`
		_, diags := buildDatabase(t, input)
		assert.Equal(t, []string{
			"The prefix pg is invalid. It must be equal to the name of an existing datasource e.g. db. Did you mean to use db.Text?",
		}, errorMessages(diags))
	})

	t.Run("no datasource", func(t *testing.T) {
		input := `
model A {
  id Int    @id
  a  String @db.Text
}
`
		_, diags := buildDatabase(t, input)
		assert.Equal(t, []string{`Attribute not known: "@db.Text".`}, errorMessages(diags))
	})

	t.Run("arguments are kept", func(t *testing.T) {
		input := `
datasource db {
  provider = "postgresql"
  url      = env("DATABASE_URL")
}

model A {
  id Int    @id
  a  String @db.VarChar(255)
}
`
		db, diags := buildDatabase(t, input)
		require.Empty(t, errorMessages(diags))
		native := db.FindModel("A").FindScalarField("a").RawNativeType()
		require.NotNil(t, native)
		assert.Equal(t, "VarChar", native.TypeName)
		assert.Equal(t, []string{"255"}, native.Arguments)
	})
}

func TestScalarFieldWalker(t *testing.T) {
	input := `
model A {
  id    Int      @id
  tags  String[]
  maybe Json?
  odd   Unsupported("tsvector")
  kind  Kind
}

enum Kind {
  One
  Two
}
`
	db, diags := buildDatabase(t, input)
	require.Empty(t, errorMessages(diags))
	assert.Equal(t, []string{"Kind"}, db.EnumNames())

	model := db.FindModel("A")
	require.NotNil(t, model)
	assert.True(t, model.HasPrimaryKey())
	require.Len(t, model.ScalarFields(), 5)

	tags := model.FindScalarField("tags")
	assert.True(t, tags.IsList())
	require.NotNil(t, tags.ScalarType())
	assert.Equal(t, ScalarTypeString, *tags.ScalarType())

	maybe := model.FindScalarField("maybe")
	assert.True(t, maybe.Arity().IsOptional())
	assert.True(t, maybe.ScalarFieldType().IsBuiltIn(ScalarTypeJson))

	odd := model.FindScalarField("odd")
	assert.True(t, odd.IsUnsupported())
	assert.Nil(t, odd.ScalarType())

	kind := model.FindScalarField("kind")
	assert.True(t, kind.IsEnum())
	assert.Equal(t, "A", kind.Model().Name())

	assert.Nil(t, model.FindScalarField("missing"))
	assert.Nil(t, db.FindModel("Missing"))
}

func TestClusteredArgumentIsIgnored(t *testing.T) {
	input := `
model A {
  id Int    @id
  a  String @unique(clustered: true)
  b  String

  @@index([b], clustered: false)
}
`
	db, diags := buildDatabase(t, input)
	require.Empty(t, errorMessages(diags))
	require.Len(t, db.FindModel("A").Indexes(), 2)

	warnings := diags.Warnings()
	require.Len(t, warnings, 2)

	var messages []string
	for _, warning := range warnings {
		messages = append(messages, warning.Message())
	}
	assert.ElementsMatch(t, []string{
		"The `clustered` argument of `@unique` is ignored by the current connector.",
		"The `clustered` argument of `@@index` is ignored by the current connector.",
	}, messages)

	for _, warning := range warnings {
		assert.Contains(t, input[warning.Span().Start:warning.Span().End], "clustered: ")
	}
}
