package database

// WalkModels returns a walker for every model, in declaration order.
func (pd *ParserDatabase) WalkModels() []*ModelWalker {
	result := make([]*ModelWalker, 0, len(pd.models))
	for i := range pd.models {
		result = append(result, pd.WalkModel(ModelId(i)))
	}
	return result
}

// WalkModel creates a ModelWalker for the given ModelId.
func (pd *ParserDatabase) WalkModel(id ModelId) *ModelWalker {
	return &ModelWalker{
		db: pd,
		id: id,
	}
}

// WalkScalarField creates a ScalarFieldWalker for the given ScalarFieldId.
func (pd *ParserDatabase) WalkScalarField(id ScalarFieldId) *ScalarFieldWalker {
	return &ScalarFieldWalker{
		db: pd,
		id: id,
	}
}

// WalkIndex creates an IndexWalker for the given IndexId.
func (pd *ParserDatabase) WalkIndex(id IndexId) *IndexWalker {
	return &IndexWalker{
		db: pd,
		id: id,
	}
}

// FindModel finds a model by name.
func (pd *ParserDatabase) FindModel(name string) *ModelWalker {
	id, ok := pd.modelNames[name]
	if !ok {
		return nil
	}
	return pd.WalkModel(id)
}

// EnumNames returns the enum names in declaration order.
func (pd *ParserDatabase) EnumNames() []string {
	names := make([]string, 0, len(pd.enums))
	for _, e := range pd.enums {
		names = append(names, e.GetName())
	}
	return names
}
