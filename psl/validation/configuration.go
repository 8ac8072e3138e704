package validation

import (
	"github.com/satishbabariya/pslcheck/internal/debug"
	"github.com/satishbabariya/pslcheck/psl/core"
	"github.com/satishbabariya/pslcheck/psl/diagnostics"
	"github.com/satishbabariya/pslcheck/psl/parsing/ast"
)

// ExtractConfiguration extracts datasource and generator configuration from the AST.
func ExtractConfiguration(schema *ast.SchemaAst, diags *diagnostics.Diagnostics) core.Configuration {
	config := core.Configuration{}
	if schema == nil {
		return config
	}

	for _, source := range schema.Sources() {
		if ds, ok := extractDatasource(source, diags); ok {
			config.Datasources = append(config.Datasources, ds)
		}
	}
	for _, generator := range schema.Generators() {
		config.Generators = append(config.Generators, extractGenerator(generator))
	}

	if len(config.Datasources) > 1 {
		for _, ds := range config.Datasources[1:] {
			diags.PushError(diagnostics.NewValidationError("You defined more than one datasource. This is not allowed yet because support for multiple databases has not been implemented yet.", ds.Span))
		}
	}
	return config
}

// extractDatasource extracts datasource configuration from a source AST node.
func extractDatasource(source *ast.SourceConfig, diags *diagnostics.Diagnostics) (core.Datasource, bool) {
	ds := core.Datasource{
		Name: source.GetName(),
		Span: source.Name.Span(),
	}

	prop := source.GetProperty("provider")
	if prop == nil {
		diags.PushError(diagnostics.NewValidationError("Datasource must have a provider.", ds.Span))
		return ds, false
	}

	strVal, ok := prop.Value.AsStringValue()
	if !ok {
		diags.PushError(diagnostics.NewValueParserError("a string value", prop.Value.String(), prop.Value.Span()))
		return ds, false
	}
	ds.Provider = strVal.Value
	ds.ProviderSpan = prop.Value.Span()
	return ds, true
}

// extractGenerator extracts generator configuration from a generator AST node.
func extractGenerator(generator *ast.GeneratorConfig) core.Generator {
	g := core.Generator{
		Name: generator.GetName(),
		Span: generator.Name.Span(),
	}
	if prop := generator.GetProperty("provider"); prop != nil {
		if strVal, ok := prop.Value.AsStringValue(); ok {
			g.Provider = strVal.Value
		}
	}
	return g
}

// ResolveConnector picks the connector of the first datasource. A schema
// without a datasource, or with an unknown provider, has no connector.
func ResolveConnector(config core.Configuration, diags *diagnostics.Diagnostics) Connector {
	ds, ok := config.FirstDatasource()
	if !ok {
		return nil
	}
	registry := NewBuiltinConnectors()
	connector := registry.GetConnector(ds.Provider)
	if connector == nil {
		debug.Warn("Unknown datasource provider", "provider", ds.Provider, "known", registry.ProviderNames())
		diags.PushError(diagnostics.NewDatasourceProviderNotKnownError(ds.Provider, ds.ProviderSpan))
	}
	return connector
}
