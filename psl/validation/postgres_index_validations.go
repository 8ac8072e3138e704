package validation

import (
	"fmt"

	"github.com/satishbabariya/pslcheck/internal/debug"
	"github.com/satishbabariya/pslcheck/psl/database"
	"github.com/satishbabariya/pslcheck/psl/diagnostics"
)

// compatibleNativeTypes rejects Xml fields in any index. Only the first
// offending field is reported. It returns false when the index must not be
// checked further.
func compatibleNativeTypes(index *database.IndexWalker, connector Connector, diags *diagnostics.Diagnostics) bool {
	for _, field := range index.Fields() {
		sf := field.ScalarField()
		instance := FieldNativeType(sf, connector)
		if instance == nil {
			continue
		}
		if t, ok := instance.Value.(PostgresType); !ok || t != PostgresTypeXml {
			continue
		}

		factory := connector.NativeInstanceError(instance)
		span := sf.Span()
		if index.IsUnique() {
			diags.PushError(factory.NewIncompatibleNativeTypeWithUniqueError("", span))
		} else {
			diags.PushError(factory.NewIncompatibleNativeTypeWithIndexError("", span))
		}
		return false
	}
	return true
}

// spgistIndexedColumnCount rejects SP-GiST indexes over more than one column.
func spgistIndexedColumnCount(index *database.IndexWalker, algo database.IndexAlgorithm, diags *diagnostics.Diagnostics) {
	if algo != database.IndexAlgorithmSpGist || len(index.Fields()) <= 1 {
		return
	}
	diags.PushError(diagnostics.NewAttributeValidationError(
		"SpGist does not support multi-column indices.",
		index.AttributeName(),
		index.Span(),
	))
}

// generalizedIndexValidations checks every field's operator class against the
// index algorithm, then against the field's native and logical type.
func generalizedIndexValidations(index *database.IndexWalker, algo database.IndexAlgorithm, connector Connector, diags *diagnostics.Diagnostics) {

	push := func(message string, kind diagnostics.ErrorKind) {
		debug.Debug("Index field rejected",
			"model", index.Model().Name(),
			"attribute", index.AttributeName(),
			"algorithm", algo.String(),
			"kind", kind.String(),
		)
		diags.PushError(diagnostics.NewAttributeValidationError(message, index.AttributeName(), index.Span()).WithKind(kind))
	}

	for _, field := range index.Fields() {
		sf := field.ScalarField()
		declared := field.OperatorClass()

		if declared != nil && declared.IsRaw() {
			continue
		}

		var class *database.OperatorClass
		if declared != nil {
			class = &declared.Class
			if !AlgorithmAccepts(*class, algo) {
				push(
					fmt.Sprintf("The given operator class `%s` is not supported with the `%s` index type.", *class, algo),
					diagnostics.ErrorKindAlgorithmOperatorClassMismatch,
				)
				continue
			}
		} else if sf.IsUnsupported() {
			continue
		}

		fieldType := IndexFieldType{
			Native: postgresTypeOf(sf, connector),
			Scalar: sf.ScalarType(),
			IsList: sf.IsList(),
		}
		// The native type pass already reported an annotation that does not resolve.
		if fieldType.Native == nil && sf.RawNativeType() != nil {
			continue
		}

		verdict := OperatorClassAccepts(class, fieldType, algo)
		if verdict == VerdictOk {
			continue
		}
		push(verdictMessage(verdict, class, fieldType, algo, sf.Name()), verdict.ErrorKind())
	}
}

func verdictMessage(verdict Verdict, class *database.OperatorClass, field IndexFieldType, algo database.IndexAlgorithm, fieldName string) string {
	switch verdict {
	case VerdictWrongNativeType:
		return fmt.Sprintf("The given operator class `%s` does not support native type `%s` of field `%s`.", *class, *field.Native, fieldName)
	case VerdictWrongLogicalType:
		rule, _ := PostgresOperatorClassRule(*class)
		expected := "the expected"
		if rule.Fallback != nil {
			expected = string(*rule.Fallback)
		}
		return fmt.Sprintf("The given operator class `%s` points to the field `%s` that is not of %s type.", *class, fieldName, expected)
	case VerdictNotAList:
		return fmt.Sprintf("The given operator class `%s` expects the type of field `%s` to be an array.", *class, fieldName)
	case VerdictMissingNativeType:
		return fmt.Sprintf("The given operator class `%s` expects the field `%s` to define a valid native type.", *class, fieldName)
	case VerdictNoDefaultOperatorClass:
		return fmt.Sprintf("The %s index field type `%s` has no default operator class.", algo, *field.Native)
	default:
		return fmt.Sprintf("The %s index type does not support the type of the field `%s`.", algo, fieldName)
	}
}
