package core

import "github.com/satishbabariya/pslcheck/psl/diagnostics"

// Configuration represents the parsed configuration from datasources and generators.
type Configuration struct {
	Datasources []Datasource
	Generators  []Generator
}

// FirstDatasource returns the datasource the schema is validated against.
func (c Configuration) FirstDatasource() (Datasource, bool) {
	if len(c.Datasources) == 0 {
		return Datasource{}, false
	}
	return c.Datasources[0], true
}

// Datasource represents a datasource configuration.
// Name doubles as the prefix of native type attributes, e.g. @db.Inet.
type Datasource struct {
	Name         string
	Provider     string
	Span         diagnostics.Span
	ProviderSpan diagnostics.Span
}

// Generator represents a generator configuration. It is carried through
// parsing but never interpreted.
type Generator struct {
	Name     string
	Provider string
	Span     diagnostics.Span
}
