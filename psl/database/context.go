package database

import (
	"github.com/satishbabariya/pslcheck/psl/diagnostics"
	"github.com/satishbabariya/pslcheck/psl/parsing/ast"
)

// Context is the state used while the ParserDatabase is being built.
// It is discarded once the database is complete.
//
// The Context also tracks the attribute currently being resolved, so that
// argument errors can be reported against it without threading its name
// and span through every helper.
type Context struct {
	db          *ParserDatabase
	diagnostics *diagnostics.Diagnostics

	attributeName string
	attributeSpan diagnostics.Span
}

func newContext(db *ParserDatabase, diags *diagnostics.Diagnostics) *Context {
	return &Context{
		db:          db,
		diagnostics: diags,
	}
}

// PushError adds an error to the diagnostics.
func (ctx *Context) PushError(err diagnostics.DatamodelError) {
	ctx.diagnostics.PushError(err)
}

// PushAttributeValidationError reports a problem with the current attribute.
func (ctx *Context) PushAttributeValidationError(message string) {
	ctx.PushError(diagnostics.NewAttributeValidationError(message, ctx.attributeName, ctx.attributeSpan))
}

// PushAttributeValidationErrorAt reports a problem with the current attribute at a narrower span.
func (ctx *Context) PushAttributeValidationErrorAt(message string, span diagnostics.Span) {
	ctx.PushError(diagnostics.NewAttributeValidationError(message, ctx.attributeName, span))
}

// visitBlockAttribute makes a block attribute the current attribute.
func (ctx *Context) visitBlockAttribute(attr *ast.BlockAttribute) {
	ctx.attributeName = "@@" + attr.GetName()
	ctx.attributeSpan = attr.SpanWithoutPrefix()
}

// visitFieldAttribute makes a field attribute the current attribute.
func (ctx *Context) visitFieldAttribute(attr *ast.Attribute) {
	ctx.attributeName = "@" + attr.GetName()
	ctx.attributeSpan = attr.SpanWithoutPrefix()
}

// CurrentAttributeName returns the name of the attribute being resolved, e.g. "@@index".
func (ctx *Context) CurrentAttributeName() string {
	return ctx.attributeName
}

// CurrentAttributeSpan returns the span of the attribute being resolved, prefix excluded.
func (ctx *Context) CurrentAttributeSpan() diagnostics.Span {
	return ctx.attributeSpan
}

// Diagnostics returns the sink errors are pushed to.
func (ctx *Context) Diagnostics() *diagnostics.Diagnostics {
	return ctx.diagnostics
}
