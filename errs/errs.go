// Package errs defines the error taxonomy shared by every layer of the
// kernel: expr, kernel, theory, and their satellites. Each error kind is a
// distinct struct type that errors.As can tell apart, mirroring the
// hierarchy ulkb's error.py gives Python exceptions; a cause is carried as
// message text, not wrapped.
package errs

import "fmt"

// ArgumentError reports that a constructor was called with an
// argument of the wrong shape or kind — wrong arity, a non-variable where a
// binder was required, a non-closed term where a closed one was required.
type ArgumentError struct {
	Func string
	Arg  string
	Msg  string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: argument %s: %s", e.Func, e.Arg, e.Msg)
}

// NewArgumentError builds an *ArgumentError.
func NewArgumentError(fn, arg, msg string) error {
	return &ArgumentError{Func: fn, Arg: arg, Msg: msg}
}

// RuleError reports that a primitive or derived inference rule's
// preconditions were not met by its arguments.
type RuleError struct {
	Rule string
	Msg  string
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("rule %s: %s", e.Rule, e.Msg)
}

// NewRuleError builds a *RuleError.
func NewRuleError(rule, msg string) error {
	return &RuleError{Rule: rule, Msg: msg}
}

// ExtensionError reports that Theory.Extend rejected a proposed extension.
type ExtensionError struct {
	ID  string
	Msg string
}

func (e *ExtensionError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("extension error: %s", e.Msg)
	}
	return fmt.Sprintf("extension %q: %s", e.ID, e.Msg)
}

// NewExtensionError builds an *ExtensionError.
func NewExtensionError(id, msg string) error {
	return &ExtensionError{ID: id, Msg: msg}
}

// LookupError reports that a named lookup in a Theory failed and no
// default was supplied.
type LookupError struct {
	Kind string
	Name string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("no %s named %q", e.Kind, e.Name)
}

// NewLookupError builds a *LookupError.
func NewLookupError(kind, name string) error {
	return &LookupError{Kind: kind, Name: name}
}

// ConversionError reports that a Conversion failed to rewrite its input.
type ConversionError struct {
	Conv string
	Msg  string
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("conversion %s: %s", e.Conv, e.Msg)
}

// NewConversionError builds a *ConversionError.
func NewConversionError(conv, msg string) error {
	return &ConversionError{Conv: conv, Msg: msg}
}

// ParserError and SerializerError are treated as opaque per spec: any error
// returned by theoryscript or serializer is acceptable as long as it
// satisfies the error interface, so no dedicated struct is required, but we
// give them names for callers that want to errors.As against a stable type.

// ParserError reports a malformed theory script.
type ParserError struct {
	Line int
	Msg  string
}

func (e *ParserError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// NewParserError builds a *ParserError.
func NewParserError(line int, msg string) error {
	return &ParserError{Line: line, Msg: msg}
}

// SerializerError reports a malformed AST-interchange record.
type SerializerError struct {
	Msg string
}

func (e *SerializerError) Error() string {
	return fmt.Sprintf("serializer: %s", e.Msg)
}

// NewSerializerError builds a *SerializerError.
func NewSerializerError(msg string) error {
	return &SerializerError{Msg: msg}
}
