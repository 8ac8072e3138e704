package validation

import (
	"github.com/satishbabariya/pslcheck/psl/database"
	"github.com/satishbabariya/pslcheck/psl/diagnostics"
)

// validateNativeTypes resolves every native type attribute of the model's
// scalar fields and checks it against the field's logical type.
func validateNativeTypes(model *database.ModelWalker, ctx *ValidationContext) {
	for _, field := range model.ScalarFields() {
		info := field.RawNativeType()
		if info == nil {
			continue
		}

		if !ctx.HasCapability(ConnectorCapabilityNativeTypes) {
			ctx.PushError(diagnostics.NewNativeTypesNotSupportedError(ctx.Connector.Name(), info.Span))
			continue
		}

		instance := ctx.Connector.ParseNativeType(info, ctx.Diagnostics)
		if instance == nil || field.IsUnsupported() {
			continue
		}
		ctx.Connector.ValidateNativeTypeForField(instance, field, ctx.Diagnostics)
	}
}
