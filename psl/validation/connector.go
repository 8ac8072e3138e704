// Package validation checks a resolved schema against the capabilities of its
// datasource's connector and reports every problem as a diagnostic.
package validation

import (
	"github.com/satishbabariya/pslcheck/psl/database"
	"github.com/satishbabariya/pslcheck/psl/diagnostics"
)

// ConnectorCapability is a feature a connector may support.
type ConnectorCapability int

const (
	ConnectorCapabilityEnums ConnectorCapability = iota
	ConnectorCapabilityJson
	ConnectorCapabilityNativeTypes
	ConnectorCapabilityOperatorClasses
	ConnectorCapabilityIndexColumnLengthPrefixing
)

// ConnectorCapabilities is a bit set of ConnectorCapability values.
type ConnectorCapabilities uint64

// NewConnectorCapabilities builds a bit set from the given capabilities.
func NewConnectorCapabilities(caps ...ConnectorCapability) ConnectorCapabilities {
	var set ConnectorCapabilities
	for _, c := range caps {
		set |= 1 << uint(c)
	}
	return set
}

// Has reports whether the capability is in the set.
func (c ConnectorCapabilities) Has(capability ConnectorCapability) bool {
	return c&(1<<uint(capability)) != 0
}

// NativeTypeInstance is a native type resolved by a connector. Value holds the
// connector's own enumeration member, e.g. a PostgresType.
type NativeTypeInstance struct {
	Name  string
	Args  []int
	Value any
}

// Connector describes one database engine: its native types and what its
// index machinery accepts.
type Connector interface {
	// Name is the engine name used in messages, e.g. "Postgres".
	Name() string
	ProviderName() string
	IsProvider(name string) bool
	HasCapability(capability ConnectorCapability) bool

	SupportedIndexAlgorithms() []database.IndexAlgorithm
	SupportsIndexAlgorithm(algo database.IndexAlgorithm) bool
	DefaultIndexAlgorithm() database.IndexAlgorithm

	// ParseNativeType resolves a native type attribute, pushing problems to diags.
	ParseNativeType(info *database.NativeTypeInfo, diags *diagnostics.Diagnostics) *NativeTypeInstance
	// ValidateNativeTypeForField checks that the native type fits the field's logical type.
	ValidateNativeTypeForField(instance *NativeTypeInstance, field *database.ScalarFieldWalker, diags *diagnostics.Diagnostics)
	NativeInstanceError(instance *NativeTypeInstance) diagnostics.NativeTypeErrorFactory

	// ValidateIndex runs the engine specific index rules. algo is the declared
	// algorithm, or DefaultIndexAlgorithm when the index names none.
	ValidateIndex(index *database.IndexWalker, algo database.IndexAlgorithm, diags *diagnostics.Diagnostics)
}

// FieldNativeType resolves the native type of a field for the connector.
// Fields without a native type, or with one the connector cannot resolve,
// yield nil. Resolution problems are reported by the native type pass, not here.
func FieldNativeType(field *database.ScalarFieldWalker, connector Connector) *NativeTypeInstance {
	info := field.RawNativeType()
	if info == nil {
		return nil
	}
	scratch := diagnostics.NewDiagnostics()
	return connector.ParseNativeType(info, &scratch)
}
