package validation

import (
	"strings"

	"github.com/satishbabariya/pslcheck/psl/database"
	"github.com/satishbabariya/pslcheck/psl/diagnostics"
)

const postgresConnectorName = "Postgres"

// PostgresConnector implements the Connector interface for PostgreSQL.
type PostgresConnector struct {
	capabilities ConnectorCapabilities
}

// NewPostgresConnector creates a new PostgreSQL connector.
func NewPostgresConnector() *PostgresConnector {
	return &PostgresConnector{
		capabilities: NewConnectorCapabilities(
			ConnectorCapabilityEnums,
			ConnectorCapabilityJson,
			ConnectorCapabilityNativeTypes,
			ConnectorCapabilityOperatorClasses,
		),
	}
}

// Name returns the connector name.
func (c *PostgresConnector) Name() string {
	return postgresConnectorName
}

// ProviderName returns the datasource provider selecting this connector.
func (c *PostgresConnector) ProviderName() string {
	return "postgresql"
}

// IsProvider accepts "postgresql" and its "postgres" alias.
func (c *PostgresConnector) IsProvider(name string) bool {
	return name == "postgresql" || name == "postgres"
}

// HasCapability checks if the connector has a specific capability.
func (c *PostgresConnector) HasCapability(capability ConnectorCapability) bool {
	return c.capabilities.Has(capability)
}

// SupportedIndexAlgorithms returns every index algorithm Postgres offers.
func (c *PostgresConnector) SupportedIndexAlgorithms() []database.IndexAlgorithm {
	return database.IndexAlgorithms
}

// SupportsIndexAlgorithm checks if the connector supports the given index algorithm.
func (c *PostgresConnector) SupportsIndexAlgorithm(algo database.IndexAlgorithm) bool {
	for _, supported := range c.SupportedIndexAlgorithms() {
		if supported == algo {
			return true
		}
	}
	return false
}

// DefaultIndexAlgorithm is BTree.
func (c *PostgresConnector) DefaultIndexAlgorithm() database.IndexAlgorithm {
	return database.IndexAlgorithmBTree
}

// ParseNativeType resolves a @db.X attribute into a Postgres native type.
func (c *PostgresConnector) ParseNativeType(info *database.NativeTypeInfo, diags *diagnostics.Diagnostics) *NativeTypeInstance {
	parsed := ParsePostgresNativeType(info.TypeName, info.Arguments, info.Span, diags)
	if parsed == nil {
		return nil
	}
	return &NativeTypeInstance{
		Name:  parsed.Type.String(),
		Args:  parsed.Args,
		Value: parsed.Type,
	}
}

// ValidateNativeTypeForField checks the native type against the field's logical type.
func (c *PostgresConnector) ValidateNativeTypeForField(instance *NativeTypeInstance, field *database.ScalarFieldWalker, diags *diagnostics.Diagnostics) {
	pgType, ok := instance.Value.(PostgresType)
	if !ok {
		return
	}
	scalar := field.ScalarType()
	if scalar != nil && PostgresNativeTypeAcceptsScalar(pgType, *scalar) {
		return
	}

	fieldType := field.AstField().GetTypeName()
	expected := make([]string, 0, 1)
	for _, st := range postgresNativeTypeConstructors[pgType].ScalarTypes {
		expected = append(expected, string(st))
	}
	diags.PushError(c.NativeInstanceError(instance).NewIncompatibleScalarTypeError(
		fieldType,
		strings.Join(expected, " or "),
		field.RawNativeType().Span,
	))
}

// NativeInstanceError returns the error factory for a native type.
func (c *PostgresConnector) NativeInstanceError(instance *NativeTypeInstance) diagnostics.NativeTypeErrorFactory {
	return diagnostics.NewNativeTypeErrorFactory(instance.Name, c.Name())
}

// ValidateIndex runs the Postgres specific index rules. An index holding an
// Xml field gets no further checks.
func (c *PostgresConnector) ValidateIndex(index *database.IndexWalker, algo database.IndexAlgorithm, diags *diagnostics.Diagnostics) {
	if !compatibleNativeTypes(index, c, diags) {
		return
	}
	spgistIndexedColumnCount(index, algo, diags)
	generalizedIndexValidations(index, algo, c, diags)
}

func postgresTypeOf(field *database.ScalarFieldWalker, c Connector) *PostgresType {
	instance := FieldNativeType(field, c)
	if instance == nil {
		return nil
	}
	if t, ok := instance.Value.(PostgresType); ok {
		return &t
	}
	return nil
}
