package dirq

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the engine's failure classes. Typed errors below
// match these via errors.Is, so callers can branch on the class without
// caring about the concrete type.
var (
	// ErrMapping indicates malformed entity metadata. It is surfaced once,
	// at metadata construction time, and is fatal for that entity.
	ErrMapping = errors.New("dirq: invalid entity mapping")

	// ErrParse indicates an unparseable method-name descriptor. It is
	// surfaced at repository construction time, before any query runs.
	ErrParse = errors.New("dirq: invalid query descriptor")

	// ErrCompile indicates a predicate that cannot be rendered into a
	// filter, typically because a literal value is not representable.
	// It depends on runtime values and surfaces per invocation.
	ErrCompile = errors.New("dirq: cannot compile filter")

	// ErrUnsupported indicates a request for a capability the directory
	// protocol does not have, such as result paging or sorting.
	ErrUnsupported = errors.New("dirq: unsupported feature")
)

// MappingError represents a malformed entity metadata definition.
type MappingError struct {
	Entity   string // Entity name
	Property string // Property name (if applicable)
	Message  string
}

// Error implements the error interface.
func (e *MappingError) Error() string {
	var b strings.Builder
	b.WriteString("dirq: mapping error")
	if e.Entity != "" {
		b.WriteString(" on entity ")
		b.WriteString(e.Entity)
	}
	if e.Property != "" {
		b.WriteString(" property ")
		b.WriteString(e.Property)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// Is reports whether the target matches the sentinel error for MappingError.
func (e *MappingError) Is(target error) bool {
	return target == ErrMapping
}

// NewMappingError returns a new MappingError.
func NewMappingError(entity, property, message string) *MappingError {
	return &MappingError{Entity: entity, Property: property, Message: message}
}

// IsMappingError returns true if the error is a MappingError.
func IsMappingError(err error) bool {
	if err == nil {
		return false
	}
	var e *MappingError
	return errors.As(err, &e) || errors.Is(err, ErrMapping)
}

// ParseError represents a method-name descriptor that does not follow the
// supported grammar or references an unknown property.
type ParseError struct {
	Descriptor string // The descriptor string being parsed
	Segment    string // The segment that failed (if applicable)
	Message    string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString("dirq: parsing ")
	fmt.Fprintf(&b, "%q", e.Descriptor)
	if e.Segment != "" {
		fmt.Fprintf(&b, " segment %q", e.Segment)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// Is reports whether the target matches the sentinel error for ParseError.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// NewParseError returns a new ParseError.
func NewParseError(descriptor, segment, message string) *ParseError {
	return &ParseError{Descriptor: descriptor, Segment: segment, Message: message}
}

// IsParseError returns true if the error is a ParseError.
func IsParseError(err error) bool {
	if err == nil {
		return false
	}
	var e *ParseError
	return errors.As(err, &e) || errors.Is(err, ErrParse)
}

// CompileError represents a predicate that cannot be rendered into a valid
// filter string. Unlike mapping and parse errors, it depends on the values
// supplied at invocation time and is recoverable by retrying with different
// values.
type CompileError struct {
	Property string // Property being rendered (if applicable)
	Value    any    // The offending value (if applicable)
	Message  string
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	var b strings.Builder
	b.WriteString("dirq: compile error")
	if e.Property != "" {
		fmt.Fprintf(&b, " on property %q", e.Property)
	}
	if e.Value != nil {
		fmt.Fprintf(&b, " (value: %v)", e.Value)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// Is reports whether the target matches the sentinel error for CompileError.
func (e *CompileError) Is(target error) bool {
	return target == ErrCompile
}

// NewCompileError returns a new CompileError.
func NewCompileError(property string, value any, message string) *CompileError {
	return &CompileError{Property: property, Value: value, Message: message}
}

// IsCompileError returns true if the error is a CompileError.
func IsCompileError(err error) bool {
	if err == nil {
		return false
	}
	var e *CompileError
	return errors.As(err, &e) || errors.Is(err, ErrCompile)
}

// UnsupportedFeatureError represents a request for a capability the
// directory protocol cannot express, such as result paging or sorting.
// The caller must adapt the request rather than expect emulation.
type UnsupportedFeatureError struct {
	Feature string
}

// Error implements the error interface.
func (e *UnsupportedFeatureError) Error() string {
	return fmt.Sprintf("dirq: unsupported feature: %s", e.Feature)
}

// Is reports whether the target matches the sentinel error for
// UnsupportedFeatureError.
func (e *UnsupportedFeatureError) Is(target error) bool {
	return target == ErrUnsupported
}

// NewUnsupportedFeatureError returns a new UnsupportedFeatureError.
func NewUnsupportedFeatureError(feature string) *UnsupportedFeatureError {
	return &UnsupportedFeatureError{Feature: feature}
}

// IsUnsupportedFeatureError returns true if the error is an
// UnsupportedFeatureError.
func IsUnsupportedFeatureError(err error) bool {
	if err == nil {
		return false
	}
	var e *UnsupportedFeatureError
	return errors.As(err, &e) || errors.Is(err, ErrUnsupported)
}
