package diagnostics

import (
	"fmt"
	"io"
)

// ErrorKind classifies a DatamodelError.
type ErrorKind int

const (
	// ErrorKindGeneric is any error outside the index capability taxonomy.
	ErrorKindGeneric ErrorKind = iota
	// ErrorKindAlgorithmOperatorClassMismatch: operator class not accepted by the index algorithm.
	ErrorKindAlgorithmOperatorClassMismatch
	// ErrorKindNativeTypeOperatorClassMismatch: operator class declared on a field with the wrong native type.
	ErrorKindNativeTypeOperatorClassMismatch
	// ErrorKindLogicalTypeMismatch: operator class expects a String, Json or list field.
	ErrorKindLogicalTypeMismatch
	// ErrorKindMissingNativeType: operator class requires a native type annotation.
	ErrorKindMissingNativeType
	// ErrorKindNoDefaultOperatorClass: native type has no implicit operator class for the algorithm.
	ErrorKindNoDefaultOperatorClass
	// ErrorKindUnsupportedFieldType: the algorithm cannot index the field's type at all.
	ErrorKindUnsupportedFieldType
	// ErrorKindGloballyForbiddenNativeType: native type cannot be part of any index.
	ErrorKindGloballyForbiddenNativeType
)

// String returns the name of the kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrorKindAlgorithmOperatorClassMismatch:
		return "AlgorithmOperatorClassMismatch"
	case ErrorKindNativeTypeOperatorClassMismatch:
		return "NativeTypeOperatorClassMismatch"
	case ErrorKindLogicalTypeMismatch:
		return "LogicalTypeMismatch"
	case ErrorKindMissingNativeType:
		return "MissingNativeType"
	case ErrorKindNoDefaultOperatorClass:
		return "NoDefaultOperatorClass"
	case ErrorKindUnsupportedFieldType:
		return "UnsupportedFieldType"
	case ErrorKindGloballyForbiddenNativeType:
		return "GloballyForbiddenNativeType"
	default:
		return "Generic"
	}
}

// MarshalText encodes the kind by name.
func (k ErrorKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// DatamodelError represents a validation or parser error in a Prisma schema.
type DatamodelError struct {
	span      Span
	message   string
	attribute string
	kind      ErrorKind
}

// NewDatamodelError creates a new DatamodelError with the given message and span.
func NewDatamodelError(message string, span Span) DatamodelError {
	return DatamodelError{
		message: message,
		span:    span,
	}
}

// NewAttributeValidationError creates an error for invalid attribute parsing.
func NewAttributeValidationError(message, attributeName string, span Span) DatamodelError {
	err := NewDatamodelError(fmt.Sprintf("Error parsing attribute \"%s\": %s", attributeName, message), span)
	err.attribute = attributeName
	return err
}

// NewAttributeNotKnownError creates an error for unknown attributes.
func NewAttributeNotKnownError(attributeName string, span Span) DatamodelError {
	return NewDatamodelError(fmt.Sprintf("Attribute not known: \"@%s\".", attributeName), span)
}

// NewDuplicateAttributeError creates an error for duplicate attributes.
func NewDuplicateAttributeError(attributeName string, span Span) DatamodelError {
	return NewDatamodelError(fmt.Sprintf("Attribute \"@%s\" can only be defined once.", attributeName), span)
}

// NewInvalidPrefixForNativeTypesError creates an error for invalid native type prefixes.
func NewInvalidPrefixForNativeTypesError(givenPrefix, expectedPrefix, suggestion string, span Span) DatamodelError {
	return NewDatamodelError(fmt.Sprintf("The prefix %s is invalid. It must be equal to the name of an existing datasource e.g. %s. Did you mean to use %s?", givenPrefix, expectedPrefix, suggestion), span)
}

// NewNativeTypesNotSupportedError creates an error when native types are not supported.
func NewNativeTypesNotSupportedError(connectorName string, span Span) DatamodelError {
	return NewDatamodelError(fmt.Sprintf("Native types are not supported with %s connector", connectorName), span)
}

// NewDuplicateTopError creates an error for duplicate top-level definitions.
func NewDuplicateTopError(name, topType, existingTopType string, span Span) DatamodelError {
	return NewDatamodelError(fmt.Sprintf("The %s \"%s\" cannot be defined because a %s with that name already exists.", topType, name, existingTopType), span)
}

// NewDuplicateFieldError creates an error for duplicate fields.
func NewDuplicateFieldError(modelName, fieldName, container string, span Span) DatamodelError {
	return NewDatamodelError(fmt.Sprintf("Field \"%s\" is already defined on %s \"%s\".", fieldName, container, modelName), span)
}

// NewModelValidationError creates an error for model validation issues.
func NewModelValidationError(message, blockType, modelName string, span Span) DatamodelError {
	return NewDatamodelError(fmt.Sprintf("Error validating %s \"%s\": %s", blockType, modelName, message), span)
}

// NewValidationError creates a general validation error.
func NewValidationError(message string, span Span) DatamodelError {
	return NewDatamodelError(fmt.Sprintf("Error validating: %s", message), span)
}

// NewParserError creates a parser error from the parser's own description.
func NewParserError(message string, span Span) DatamodelError {
	return NewDatamodelError(fmt.Sprintf("Error parsing schema: %s", message), span)
}

// NewTypeNotFoundError creates an error for unknown types.
func NewTypeNotFoundError(typeName string, span Span) DatamodelError {
	return NewDatamodelError(fmt.Sprintf("Type \"%s\" is neither a built-in type, nor refers to another model, composite type, or enum.", typeName), span)
}

// NewDatasourceProviderNotKnownError creates an error for unknown datasource providers.
func NewDatasourceProviderNotKnownError(provider string, span Span) DatamodelError {
	return NewDatamodelError(fmt.Sprintf("Datasource provider not known: \"%s\".", provider), span)
}

// NewValueParserError creates an error for value parsing issues.
func NewValueParserError(expectedType, raw string, span Span) DatamodelError {
	return NewDatamodelError(fmt.Sprintf("Expected %s, but found %s.", expectedType, raw), span)
}

// NewNativeTypeArgumentCountMismatchError creates an error for native type argument count mismatches.
func NewNativeTypeArgumentCountMismatchError(nativeType string, requiredCount, givenCount int, span Span) DatamodelError {
	return NewDatamodelError(fmt.Sprintf("Native type %s takes %d arguments, but received %d.", nativeType, requiredCount, givenCount), span)
}

// NewNativeTypeNameUnknownError creates an error for unknown native types.
func NewNativeTypeNameUnknownError(connectorName, nativeType string, span Span) DatamodelError {
	return NewDatamodelError(fmt.Sprintf("Native type %s is not supported for %s connector.", nativeType, connectorName), span)
}

// WithKind returns a copy of the error tagged with kind.
func (e DatamodelError) WithKind(kind ErrorKind) DatamodelError {
	e.kind = kind
	return e
}

// Span returns the span of the error.
func (e DatamodelError) Span() Span {
	return e.span
}

// Message returns the error message.
func (e DatamodelError) Message() string {
	return e.message
}

// Attribute returns the attribute the error was raised on, e.g. "@@index".
// It is empty for errors that are not attribute validation errors.
func (e DatamodelError) Attribute() string {
	return e.attribute
}

// Kind returns the classification of the error.
func (e DatamodelError) Kind() ErrorKind {
	return e.kind
}

// Error implements the error interface.
func (e DatamodelError) Error() string {
	return e.message
}

// PrettyPrint writes a pretty-printed representation of the error to the writer.
func (e DatamodelError) PrettyPrint(w io.Writer, fileName, text string) error {
	return PrettyPrint(w, fileName, text, e.span, e.message, ErrorColorer{})
}
