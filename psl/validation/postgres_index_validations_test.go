package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satishbabariya/pslcheck/psl/diagnostics"
)

func TestGistIndexes(t *testing.T) {
	t.Run("inet ops on inet field", func(t *testing.T) {
		assertValid(t, `
model A {
  id Int    @id
  a  String @test.Inet

  @@index([a(ops: InetOps)], type: Gist)
}
`)
	})

	t.Run("default class on inet field", func(t *testing.T) {
		assertValid(t, `
model A {
  id Int    @id
  a  String @test.Inet

  @@index([a], type: Gist)
}
`)
	})

	t.Run("inet ops without native type", func(t *testing.T) {
		err := assertSingleError(t, `
model A {
  id Int    @id
  a  String

  @@index([a(ops: InetOps)], type: Gist)
}
`, attributeError("@@index", "The given operator class `InetOps` expects the field `a` to define a valid native type."))
		assert.Equal(t, diagnostics.ErrorKindMissingNativeType, err.Kind())
	})

	t.Run("inet ops on text field", func(t *testing.T) {
		err := assertSingleError(t, `
model A {
  id Int    @id
  a  String @test.Text

  @@index([a(ops: InetOps)], type: Gist)
}
`, attributeError("@@index", "The given operator class `InetOps` does not support native type `Text` of field `a`."))
		assert.Equal(t, diagnostics.ErrorKindNativeTypeOperatorClassMismatch, err.Kind())
	})

	t.Run("text field has no default class", func(t *testing.T) {
		err := assertSingleError(t, `
model A {
  id Int    @id
  a  String @test.Text

  @@index([a], type: Gist)
}
`, attributeError("@@index", "The Gist index field type `Text` has no default operator class."))
		assert.Equal(t, diagnostics.ErrorKindNoDefaultOperatorClass, err.Kind())
	})

	t.Run("int field is not indexable", func(t *testing.T) {
		err := assertSingleError(t, `
model A {
  id Int @id
  a  Int

  @@index([a], type: Gist)
}
`, attributeError("@@index", "The Gist index type does not support the type of the field `a`."))
		assert.Equal(t, diagnostics.ErrorKindUnsupportedFieldType, err.Kind())
	})

	t.Run("spgist class with gist", func(t *testing.T) {
		err := assertSingleError(t, `
model A {
  id Int    @id
  a  String @test.Text

  @@index([a(ops: TextOps)], type: Gist)
}
`, attributeError("@@index", "The given operator class `TextOps` is not supported with the `Gist` index type."))
		assert.Equal(t, diagnostics.ErrorKindAlgorithmOperatorClassMismatch, err.Kind())
	})
}

func TestGinIndexes(t *testing.T) {
	t.Run("jsonb path ops on jsonb field", func(t *testing.T) {
		assertValid(t, `
model A {
  id Int  @id
  a  Json @test.JsonB

  @@index([a(ops: JsonbPathOps)], type: Gin)
}
`)
	})

	t.Run("jsonb ops on json field without native type", func(t *testing.T) {
		assertValid(t, `
model A {
  id Int  @id
  a  Json

  @@index([a(ops: JsonbOps)], type: Gin)
}
`)
	})

	t.Run("jsonb ops on int field", func(t *testing.T) {
		err := assertSingleError(t, `
model A {
  id Int @id
  a  Int

  @@index([a(ops: JsonbOps)], type: Gin)
}
`, attributeError("@@index", "The given operator class `JsonbOps` points to the field `a` that is not of Json type."))
		assert.Equal(t, diagnostics.ErrorKindLogicalTypeMismatch, err.Kind())
	})

	t.Run("jsonb ops on json native type", func(t *testing.T) {
		assertSingleError(t, `
model A {
  id Int  @id
  a  Json @test.Json

  @@index([a(ops: JsonbOps)], type: Gin)
}
`, attributeError("@@index", "The given operator class `JsonbOps` does not support native type `Json` of field `a`."))
	})

	t.Run("array ops on list field", func(t *testing.T) {
		assertValid(t, `
model A {
  id Int   @id
  a  Int[]

  @@index([a(ops: ArrayOps)], type: Gin)
}
`)
	})

	t.Run("array ops on scalar field", func(t *testing.T) {
		err := assertSingleError(t, `
model A {
  id Int @id
  a  Int

  @@index([a(ops: ArrayOps)], type: Gin)
}
`, attributeError("@@index", "The given operator class `ArrayOps` expects the type of field `a` to be an array."))
		assert.Equal(t, diagnostics.ErrorKindLogicalTypeMismatch, err.Kind())
	})

	t.Run("default class on list field", func(t *testing.T) {
		assertValid(t, `
model A {
  id Int      @id
  a  String[]

  @@index([a], type: Gin)
}
`)
	})

	t.Run("default class on json field", func(t *testing.T) {
		assertValid(t, `
model A {
  id Int  @id
  a  Json

  @@index([a], type: Gin)
}
`)
	})

	t.Run("json native type has no default class", func(t *testing.T) {
		assertSingleError(t, `
model A {
  id Int  @id
  a  Json @test.Json

  @@index([a], type: Gin)
}
`, attributeError("@@index", "The Gin index field type `Json` has no default operator class."))
	})

	t.Run("int field is not indexable", func(t *testing.T) {
		assertSingleError(t, `
model A {
  id Int @id
  a  Int

  @@index([a], type: Gin)
}
`, attributeError("@@index", "The Gin index type does not support the type of the field `a`."))
	})
}

func TestSpGistIndexes(t *testing.T) {
	valid := map[string]string{
		"raw ops on unsupported type": `
model A {
  id Int                      @id
  a  Unsupported("polygon")

  @@index([a(ops: raw("poly_ops"))], type: SpGist)
}
`,
		"default class on unsupported type": `
model A {
  id Int                      @id
  a  Unsupported("polygon")

  @@index([a], type: SpGist)
}
`,
		"default class on inet": `
model A {
  id Int    @id
  a  String @test.Inet

  @@index([a], type: SpGist)
}
`,
		"network ops on inet": `
model A {
  id Int    @id
  a  String @test.Inet

  @@index([a(ops: NetworkOps)], type: SpGist)
}
`,
		"network ops on string": `
model A {
  id Int    @id
  a  String

  @@index([a(ops: NetworkOps)], type: SpGist)
}
`,
		"default class on text": `
model A {
  id Int    @id
  a  String @test.Text

  @@index([a], type: SpGist)
}
`,
		"default class on string": `
model A {
  id Int    @id
  a  String

  @@index([a], type: SpGist)
}
`,
		"text ops on text": `
model A {
  id Int    @id
  a  String @test.Text

  @@index([a(ops: TextOps)], type: SpGist)
}
`,
		"text ops on string": `
model A {
  id Int    @id
  a  String

  @@index([a(ops: TextOps)], type: SpGist)
}
`,
	}
	for name, dml := range valid {
		t.Run(name, func(t *testing.T) {
			assertValid(t, dml)
		})
	}

	t.Run("network ops on int", func(t *testing.T) {
		assertSingleError(t, `
model A {
  id Int @id
  a  Int

  @@index([a(ops: NetworkOps)], type: SpGist)
}
`, attributeError("@@index", "The given operator class `NetworkOps` expects the field `a` to define a valid native type."))
	})

	t.Run("network ops with gist", func(t *testing.T) {
		assertSingleError(t, `
model A {
  id Int    @id
  a  String @test.Inet

  @@index([a(ops: NetworkOps)], type: Gist)
}
`, attributeError("@@index", "The given operator class `NetworkOps` is not supported with the `Gist` index type."))
	})

	t.Run("text ops on int", func(t *testing.T) {
		assertSingleError(t, `
model A {
  id Int @id
  a  Int

  @@index([a(ops: TextOps)], type: SpGist)
}
`, attributeError("@@index", "The given operator class `TextOps` points to the field `a` that is not of String type."))
	})

	t.Run("int field is not indexable", func(t *testing.T) {
		assertSingleError(t, `
model A {
  id Int @id
  a  Int

  @@index([a], type: SpGist)
}
`, attributeError("@@index", "The SpGist index type does not support the type of the field `a`."))
	})

	t.Run("multi column", func(t *testing.T) {
		assertSingleError(t, `
model A {
  id Int    @id
  a  String
  b  String

  @@index([a, b], type: SpGist)
}
`, attributeError("@@index", "SpGist does not support multi-column indices."))
	})

	t.Run("error span points at the attribute", func(t *testing.T) {
		schema, result := validateDml(t, `
model A {
  id Int @id
  a  Int

  @@index([a(ops: NetworkOps)], type: SpGist)
}
`)
		errs := result.Diagnostics.Errors()
		require.Len(t, errs, 1)
		span := errs[0].Span()
		assert.Equal(t, "index([a(ops: NetworkOps)], type: SpGist)", schema[span.Start:span.End])
		assert.Equal(t, "@@index", errs[0].Attribute())
	})
}

func TestBrinIndexes(t *testing.T) {
	valid := map[string]string{
		"raw ops on int": `
model A {
  id Int @id
  a  Int

  @@index([a(ops: raw("int4_minmax_ops"))], type: Brin)
}
`,
		"raw ops on unsupported type": `
model A {
  id Int                       @id
  a  Unsupported("tsvector")

  @@index([a(ops: raw("tsvector_ops"))], type: Brin)
}
`,
		"minmax ops on integer": `
model A {
  id Int @id
  a  Int @test.Integer

  @@index([a(ops: Int4MinMaxOps)], type: Brin)
}
`,
		"bloom ops on plain int": `
model A {
  id Int @id
  a  Int

  @@index([a(ops: Int4BloomOps)], type: Brin)
}
`,
		"date ops on date": `
model A {
  id Int      @id
  a  DateTime @test.Date

  @@index([a(ops: DateMinMaxOps)], type: Brin)
}
`,
		"text ops on varchar": `
model A {
  id Int    @id
  a  String @test.VarChar(255)

  @@index([a(ops: TextMinMaxOps)], type: Brin)
}
`,
		"inclusion ops on inet": `
model A {
  id Int    @id
  a  String @test.Inet

  @@index([a(ops: InetInclusionOps)], type: Brin)
}
`,
		"default class on uuid": `
model A {
  id Int    @id
  a  String @test.Uuid

  @@index([a], type: Brin)
}
`,
		"default class on plain int": `
model A {
  id Int @id
  a  Int

  @@index([a], type: Brin)
}
`,
	}
	for name, dml := range valid {
		t.Run(name, func(t *testing.T) {
			assertValid(t, dml)
		})
	}

	t.Run("minmax ops on string", func(t *testing.T) {
		assertSingleError(t, `
model A {
  id Int    @id
  a  String

  @@index([a(ops: Int4MinMaxOps)], type: Brin)
}
`, attributeError("@@index", "The given operator class `Int4MinMaxOps` points to the field `a` that is not of Int type."))
	})

	t.Run("minmax ops on smallint", func(t *testing.T) {
		assertSingleError(t, `
model A {
  id Int @id
  a  Int @test.SmallInt

  @@index([a(ops: Int4MinMaxOps)], type: Brin)
}
`, attributeError("@@index", "The given operator class `Int4MinMaxOps` does not support native type `SmallInt` of field `a`."))
	})

	t.Run("date ops without native type", func(t *testing.T) {
		assertSingleError(t, `
model A {
  id Int      @id
  a  DateTime

  @@index([a(ops: DateMinMaxOps)], type: Brin)
}
`, attributeError("@@index", "The given operator class `DateMinMaxOps` expects the field `a` to define a valid native type."))
	})

	t.Run("boolean is not indexable", func(t *testing.T) {
		assertSingleError(t, `
model A {
  id Int     @id
  a  Boolean

  @@index([a], type: Brin)
}
`, attributeError("@@index", "The Brin index type does not support the type of the field `a`."))
	})

	t.Run("jsonb has no default class", func(t *testing.T) {
		assertSingleError(t, `
model A {
  id Int  @id
  a  Json @test.JsonB

  @@index([a], type: Brin)
}
`, attributeError("@@index", "The Brin index field type `JsonB` has no default operator class."))
	})

	t.Run("brin class with gin", func(t *testing.T) {
		assertSingleError(t, `
model A {
  id Int @id
  a  Int @test.Integer

  @@index([a(ops: Int4MinMaxOps)], type: Gin)
}
`, attributeError("@@index", "The given operator class `Int4MinMaxOps` is not supported with the `Gin` index type."))
	})
}

func TestBTreeAndHashIndexes(t *testing.T) {
	t.Run("any field without class", func(t *testing.T) {
		assertValid(t, `
model A {
  id Int    @id
  a  Json
  b  String @test.Inet

  @@index([a])
  @@index([b], type: Hash)
}
`)
	})

	t.Run("named class on default btree", func(t *testing.T) {
		assertSingleError(t, `
model A {
  id Int    @id
  a  String @test.Inet

  @@index([a(ops: InetOps)])
}
`, attributeError("@@index", "The given operator class `InetOps` is not supported with the `BTree` index type."))
	})

	t.Run("raw class on btree", func(t *testing.T) {
		assertValid(t, `
model A {
  id Int    @id
  a  String

  @@index([a(ops: raw("text_pattern_ops"))])
}
`)
	})

	t.Run("hash with sort order", func(t *testing.T) {
		assertSingleError(t, `
model A {
  id Int    @id
  a  String

  @@index([a(sort: Desc)], type: Hash)
}
`, attributeError("@@index", "Hash type does not support sort option."))
	})
}

func TestXmlFieldsInIndexes(t *testing.T) {
	t.Run("normal index", func(t *testing.T) {
		schema, result := validateDml(t, `
model A {
  id Int    @id
  a  String @test.Xml

  @@index([a])
}
`)
		errs := result.Diagnostics.Errors()
		require.Len(t, errs, 1)
		assert.Equal(t, "You cannot define an index on fields with native type `Xml` of Postgres.", errs[0].Message())
		assert.Equal(t, diagnostics.ErrorKindGloballyForbiddenNativeType, errs[0].Kind())
		span := errs[0].Span()
		assert.Equal(t, "a  String @test.Xml", schema[span.Start:span.End])
	})

	t.Run("compound unique reports the first field only", func(t *testing.T) {
		assertSingleError(t, `
model A {
  id Int    @id
  a  String @test.Xml
  b  String @test.Xml

  @@unique([a, b])
}
`, "Native type `Xml` cannot be unique in Postgres.")
	})

	t.Run("field level unique", func(t *testing.T) {
		assertSingleError(t, `
model A {
  id Int    @id
  a  String @test.Xml @unique
}
`, "Native type `Xml` cannot be unique in Postgres.")
	})

	t.Run("no further checks after xml", func(t *testing.T) {
		assertSingleError(t, `
model A {
  id Int    @id
  a  String @test.Xml
  b  Int

  @@index([a, b(ops: TextOps)], type: Gist)
}
`, "You cannot define an index on fields with native type `Xml` of Postgres.")
	})
}

func TestIndexArgumentRules(t *testing.T) {
	t.Run("operator class on unique", func(t *testing.T) {
		_, result := validateDml(t, `
model A {
  id Int    @id
  a  String @test.Inet

  @@unique([a(ops: InetOps)])
}
`)
		assert.Equal(t, []string{
			attributeError("@@unique", "Operator classes are only allowed in normal indices, not in @@unique or @@fulltext."),
			attributeError("@@unique", "The given operator class `InetOps` is not supported with the `BTree` index type."),
		}, messages(result.Diagnostics))
	})

	t.Run("length prefix", func(t *testing.T) {
		assertSingleError(t, `
model A {
  id Int    @id
  a  String

  @@index([a(length: 10)])
}
`, attributeError("@@index", "The length argument is not supported in an index definition with the current connector"))
	})
}

func TestNativeTypeValidations(t *testing.T) {
	t.Run("incompatible scalar type", func(t *testing.T) {
		assertSingleError(t, `
model A {
  id Int @id
  a  Int @test.Text
}
`, "Native type Text is not compatible with declared field type Int, expected field type String.")
	})

	t.Run("unknown native type", func(t *testing.T) {
		assertSingleError(t, `
model A {
  id Int    @id
  a  String @test.Foo
}
`, "Native type Foo is not supported for Postgres connector.")
	})

	t.Run("wrong argument count", func(t *testing.T) {
		assertSingleError(t, `
model A {
  id Int    @id
  a  String @test.VarChar(1, 2)
}
`, "Native type VarChar takes 1 arguments, but received 2.")
	})

	t.Run("unresolved native type is reported once", func(t *testing.T) {
		assertSingleError(t, `
model A {
  id Int    @id
  a  String @test.Inet(5)

  @@index([a(ops: InetOps)], type: Gist)
}
`, "Native type Inet takes 0 arguments, but received 1.")
	})
}

func TestUnknownProviderSkipsValidation(t *testing.T) {
	schema := `datasource db {
  provider = "oracle"
}

model A {
  id Int    @id
  a  String @db.Xml

  @@index([a])
}
`
	parsed, diags := parsingSchema(t, schema)
	result := ValidateSchema(parsed, diags)
	assert.Nil(t, result.Connector)
	assert.Equal(t, []string{`Datasource provider not known: "oracle".`}, messages(result.Diagnostics))
}
