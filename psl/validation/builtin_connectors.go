package validation

// BuiltinConnectors manages the registry of builtin connectors.
type BuiltinConnectors struct {
	connectors []Connector
}

// NewBuiltinConnectors creates a new builtin connectors registry.
func NewBuiltinConnectors() *BuiltinConnectors {
	bc := &BuiltinConnectors{}
	bc.RegisterConnector(NewPostgresConnector())
	return bc
}

// RegisterConnector registers a new connector.
func (bc *BuiltinConnectors) RegisterConnector(connector Connector) {
	bc.connectors = append(bc.connectors, connector)
}

// GetConnector returns a connector by provider name.
func (bc *BuiltinConnectors) GetConnector(providerName string) Connector {
	for _, connector := range bc.connectors {
		if connector.IsProvider(providerName) {
			return connector
		}
	}
	return nil
}

// GetAllConnectors returns all available connectors.
func (bc *BuiltinConnectors) GetAllConnectors() []Connector {
	return bc.connectors
}

// ProviderNames returns the canonical provider of every registered connector.
func (bc *BuiltinConnectors) ProviderNames() []string {
	names := make([]string, 0, len(bc.connectors))
	for _, connector := range bc.GetAllConnectors() {
		names = append(names, connector.ProviderName())
	}
	return names
}
