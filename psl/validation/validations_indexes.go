package validation

import (
	"github.com/satishbabariya/pslcheck/internal/debug"
	"github.com/satishbabariya/pslcheck/psl/database"
	"github.com/satishbabariya/pslcheck/psl/diagnostics"
)

// validateModelIndexes runs the connector independent index checks, then the
// connector's own rules, for every index of the model in source order.
func validateModelIndexes(model *database.ModelWalker, ctx *ValidationContext) {
	for _, index := range model.Indexes() {
		algo := indexAlgorithm(index, ctx.Connector)
		debug.Debug("Validating index",
			"model", model.Name(),
			"attribute", index.AttributeName(),
			"algorithm", algo.String(),
			"fields", len(index.Fields()),
		)

		if !validateIndexAlgorithmIsSupported(index, ctx) {
			continue
		}
		validateHashIndexMustNotUseSortParam(index, algo, ctx)
		validateOpclassesAreNotAllowedWithOtherThanNormalIndices(index, ctx)
		validateIndexFieldLengthPrefix(index, ctx)

		ctx.Connector.ValidateIndex(index, algo, ctx.Diagnostics)
	}
}

// indexAlgorithm returns the declared algorithm, or the connector's default.
func indexAlgorithm(index *database.IndexWalker, connector Connector) database.IndexAlgorithm {
	if algo := index.Algorithm(); algo != nil {
		return *algo
	}
	return connector.DefaultIndexAlgorithm()
}

// validateIndexAlgorithmIsSupported reports algorithms the connector does not offer.
func validateIndexAlgorithmIsSupported(index *database.IndexWalker, ctx *ValidationContext) bool {
	algo := index.Algorithm()
	if algo == nil || ctx.Connector.SupportsIndexAlgorithm(*algo) {
		return true
	}
	ctx.PushError(diagnostics.NewAttributeValidationError(
		"The given index type is not supported with the current connector",
		index.AttributeName(),
		index.TypeSpan(),
	))
	return false
}

// validateHashIndexMustNotUseSortParam validates that hash indexes don't use sort parameters.
func validateHashIndexMustNotUseSortParam(index *database.IndexWalker, algo database.IndexAlgorithm, ctx *ValidationContext) {
	if algo != database.IndexAlgorithmHash {
		return
	}

	for _, field := range index.Fields() {
		if field.SortOrder() != nil {
			ctx.PushError(diagnostics.NewAttributeValidationError(
				"Hash type does not support sort option.",
				index.AttributeName(),
				index.Span(),
			))
			return
		}
	}
}

// validateOpclassesAreNotAllowedWithOtherThanNormalIndices validates that operator classes are only allowed in normal indices.
func validateOpclassesAreNotAllowedWithOtherThanNormalIndices(index *database.IndexWalker, ctx *ValidationContext) {
	if index.IsNormal() {
		return
	}

	for _, field := range index.Fields() {
		if field.OperatorClass() != nil {
			ctx.PushError(diagnostics.NewAttributeValidationError(
				"Operator classes are only allowed in normal indices, not in @@unique or @@fulltext.",
				index.AttributeName(),
				index.Span(),
			))
			return
		}
	}
}

// validateIndexFieldLengthPrefix validates that index field length prefix is supported.
func validateIndexFieldLengthPrefix(index *database.IndexWalker, ctx *ValidationContext) {
	if ctx.HasCapability(ConnectorCapabilityIndexColumnLengthPrefixing) {
		return
	}

	for _, field := range index.Fields() {
		if field.Length() != nil {
			ctx.PushError(diagnostics.NewAttributeValidationError(
				"The length argument is not supported in an index definition with the current connector",
				index.AttributeName(),
				index.Span(),
			))
			return
		}
	}
}
