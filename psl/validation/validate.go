package validation

import (
	"github.com/sourcegraph/conc/pool"

	"github.com/satishbabariya/pslcheck/internal/debug"
	"github.com/satishbabariya/pslcheck/psl/core"
	"github.com/satishbabariya/pslcheck/psl/database"
	"github.com/satishbabariya/pslcheck/psl/diagnostics"
	"github.com/satishbabariya/pslcheck/psl/parsing/ast"
)

// ValidatedSchema is the result of validating a parsed schema.
type ValidatedSchema struct {
	Configuration core.Configuration
	Db            *database.ParserDatabase
	Connector     Connector
	Diagnostics   diagnostics.Diagnostics
}

type options struct {
	parallelism int
}

// Option configures Validate.
type Option func(*options)

// WithParallelism validates up to n models concurrently. Values below 2
// validate sequentially.
func WithParallelism(n int) Option {
	return func(o *options) {
		o.parallelism = n
	}
}

// ValidationContext provides context for validation operations.
type ValidationContext struct {
	Db          *database.ParserDatabase
	Connector   Connector
	Diagnostics *diagnostics.Diagnostics
}

// PushError adds an error to the diagnostics.
func (ctx *ValidationContext) PushError(err diagnostics.DatamodelError) {
	ctx.Diagnostics.PushError(err)
}

// HasCapability checks if the connector has a specific capability.
func (ctx *ValidationContext) HasCapability(capability ConnectorCapability) bool {
	return ctx.Connector != nil && ctx.Connector.HasCapability(capability)
}

// ValidateSchema resolves the configuration and the schema graph of a parsed
// schema, then validates it against the datasource's connector.
func ValidateSchema(schema *ast.SchemaAst, diags diagnostics.Diagnostics, opts ...Option) ValidatedSchema {
	config := ExtractConfiguration(schema, &diags)
	connector := ResolveConnector(config, &diags)
	db := database.NewParserDatabase(schema, &diags)

	output := ValidatedSchema{
		Configuration: config,
		Db:            db,
		Connector:     connector,
		Diagnostics:   diags,
	}
	if connector == nil {
		output.Diagnostics.SortBySpan()
		return output
	}

	found := Validate(db, connector, opts...)
	output.Diagnostics.Extend(found)
	output.Diagnostics.SortBySpan()
	return output
}

// Validate runs the native type and index validations of every model. The
// result is sorted by source position and does not depend on parallelism.
func Validate(db *database.ParserDatabase, connector Connector, opts ...Option) diagnostics.Diagnostics {
	o := options{parallelism: 1}
	for _, opt := range opts {
		opt(&o)
	}

	models := db.WalkModels()
	perModel := make([]diagnostics.Diagnostics, len(models))

	validateOne := func(i int) {
		perModel[i] = diagnostics.NewDiagnostics()
		ctx := &ValidationContext{Db: db, Connector: connector, Diagnostics: &perModel[i]}
		validateModel(models[i], ctx)
	}

	if o.parallelism > 1 && len(models) > 1 {
		p := pool.New().WithMaxGoroutines(o.parallelism)
		for i := range models {
			i := i
			p.Go(func() { validateOne(i) })
		}
		p.Wait()
	} else {
		for i := range models {
			validateOne(i)
		}
	}

	result := diagnostics.NewDiagnostics()
	for _, d := range perModel {
		result.Extend(d)
	}
	result.SortBySpan()

	debug.Debug("Validation finished",
		"models", len(models),
		"errors", len(result.Errors()),
		"parallelism", o.parallelism,
	)
	return result
}

// ValidateIndexes appends a diagnostic for every index of the schema whose
// algorithm, operator classes and field types do not fit the connector.
func ValidateIndexes(db *database.ParserDatabase, connector Connector, diags *diagnostics.Diagnostics) {
	ctx := &ValidationContext{Db: db, Connector: connector, Diagnostics: diags}
	for _, model := range db.WalkModels() {
		validateModelIndexes(model, ctx)
	}
}

func validateModel(model *database.ModelWalker, ctx *ValidationContext) {
	validateNativeTypes(model, ctx)
	validateModelIndexes(model, ctx)
}
