package diagnostics

import "fmt"

// NativeTypeErrorFactory creates errors related to native types for a specific connector.
type NativeTypeErrorFactory struct {
	nativeType string
	connector  string
}

// NewNativeTypeErrorFactory creates a new NativeTypeErrorFactory.
func NewNativeTypeErrorFactory(nativeType, connector string) NativeTypeErrorFactory {
	return NativeTypeErrorFactory{
		nativeType: nativeType,
		connector:  connector,
	}
}

// NewIncompatibleNativeTypeWithIndexError creates an error for incompatible native types with indexes.
func (f NativeTypeErrorFactory) NewIncompatibleNativeTypeWithIndexError(message string, span Span) DatamodelError {
	return NewDatamodelError(fmt.Sprintf("You cannot define an index on fields with native type `%s` of %s.%s", f.nativeType, f.connector, message), span).
		WithKind(ErrorKindGloballyForbiddenNativeType)
}

// NewIncompatibleNativeTypeWithUniqueError creates an error for incompatible native types with unique constraints.
func (f NativeTypeErrorFactory) NewIncompatibleNativeTypeWithUniqueError(message string, span Span) DatamodelError {
	return NewDatamodelError(fmt.Sprintf("Native type `%s` cannot be unique in %s.%s", f.nativeType, f.connector, message), span).
		WithKind(ErrorKindGloballyForbiddenNativeType)
}

// NativeTypeNameUnknown creates an error for unknown native type names.
func (f NativeTypeErrorFactory) NativeTypeNameUnknown(span Span) DatamodelError {
	return NewDatamodelError(fmt.Sprintf("Native type %s is not supported for %s connector.", f.nativeType, f.connector), span)
}

// NewIncompatibleScalarTypeError reports a native type attached to a field of the wrong logical type.
func (f NativeTypeErrorFactory) NewIncompatibleScalarTypeError(fieldType, expectedType string, span Span) DatamodelError {
	return NewDatamodelError(fmt.Sprintf("Native type %s is not compatible with declared field type %s, expected field type %s.", f.nativeType, fieldType, expectedType), span)
}
