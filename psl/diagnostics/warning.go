package diagnostics

import (
	"fmt"
	"io"
)

// DatamodelWarning represents a non-fatal warning emitted by the schema parser.
type DatamodelWarning struct {
	message string
	span    Span
}

// NewDatamodelWarning creates a new DatamodelWarning with the given message and span.
func NewDatamodelWarning(message string, span Span) DatamodelWarning {
	return DatamodelWarning{
		message: message,
		span:    span,
	}
}

// NewUnusedArgumentWarning is raised for index arguments that have no effect on the connector.
func NewUnusedArgumentWarning(argument, attribute string, span Span) DatamodelWarning {
	return NewDatamodelWarning(fmt.Sprintf("The `%s` argument of `%s` is ignored by the current connector.", argument, attribute), span)
}

// Message returns the warning message.
func (w DatamodelWarning) Message() string {
	return w.message
}

// Span returns the span of the warning.
func (w DatamodelWarning) Span() Span {
	return w.span
}

// PrettyPrint writes a pretty-printed representation of the warning to the writer.
func (w DatamodelWarning) PrettyPrint(writer io.Writer, fileName, text string) error {
	return PrettyPrint(writer, fileName, text, w.span, w.message, WarningColorer{})
}
