package database

// ModelId is the position of a model among the schema's models, in declaration order.
type ModelId uint32

// EnumId is the position of an enum among the schema's enums.
type EnumId uint32

// ScalarFieldId identifies a scalar field across all models.
type ScalarFieldId uint32

// RelationFieldId identifies a relation field across all models.
type RelationFieldId uint32

// IndexId identifies an index by its model and its position among the model's indexes.
type IndexId struct {
	Model ModelId
	Index uint32
}
