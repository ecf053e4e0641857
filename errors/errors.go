package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseCompile  Phase = "compile"  // descriptor construction and loading
	PhaseEncode   Phase = "encode"   // value to wire/plain form
	PhaseDecode   Phase = "decode"   // wire/plain form to value
	PhaseValidate Phase = "validate" // layout validation
)

// Kind categorizes the error
type Kind string

const (
	KindUnrecognizedType        Kind = "unrecognized_type"
	KindValueTooLarge           Kind = "value_too_large"
	KindInvalidValue            Kind = "invalid_value"
	KindTypeMismatch            Kind = "type_mismatch"
	KindFieldMissing            Kind = "field_missing"
	KindInvalidLength           Kind = "invalid_length"
	KindUnsupportedStructLayout Kind = "unsupported_struct_layout"
	KindUnsupportedArrayLayout  Kind = "unsupported_array_layout"
	KindInvalidEnum             Kind = "invalid_enum"
	KindInvalidDescriptor       Kind = "invalid_descriptor"
	KindOverflow                Kind = "overflow"
	KindExternal                Kind = "external"
	KindUnsupported             Kind = "unsupported"
)

// Sentinels for errors.Is. A sentinel has no phase and matches an error of
// the same kind raised in any phase.
var (
	ErrUnrecognizedType        = &Error{Kind: KindUnrecognizedType}
	ErrValueTooLarge           = &Error{Kind: KindValueTooLarge}
	ErrInvalidValue            = &Error{Kind: KindInvalidValue}
	ErrTypeMismatch            = &Error{Kind: KindTypeMismatch}
	ErrFieldMissing            = &Error{Kind: KindFieldMissing}
	ErrInvalidLength           = &Error{Kind: KindInvalidLength}
	ErrUnsupportedStructLayout = &Error{Kind: KindUnsupportedStructLayout}
	ErrUnsupportedArrayLayout  = &Error{Kind: KindUnsupportedArrayLayout}
	ErrInvalidEnum             = &Error{Kind: KindInvalidEnum}
	ErrInvalidDescriptor       = &Error{Kind: KindInvalidDescriptor}
	ErrOverflow                = &Error{Kind: KindOverflow}
	ErrExternal                = &Error{Kind: KindExternal}
)

// Error is the structured error type used throughout the codec
type Error struct {
	Value   any
	Cause   error
	Phase   Phase
	Kind    Kind
	GoType  string
	AbiType string
	Detail  string
	Path    []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	if e.Phase != "" {
		b.WriteByte('[')
		b.WriteString(string(e.Phase))
		b.WriteString("] ")
	}
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(JoinPath(e.Path))
	}

	if e.GoType != "" || e.AbiType != "" {
		b.WriteString(": ")
		if e.GoType != "" && e.AbiType != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
			b.WriteString(", ABI type ")
			b.WriteString(e.AbiType)
		} else if e.GoType != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
		} else {
			b.WriteString("ABI type ")
			b.WriteString(e.AbiType)
		}
	}

	if e.Detail != "" {
		if e.GoType != "" || e.AbiType != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error. A target without a phase
// matches on kind alone.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Phase == "" {
		return e.Kind == t.Kind
	}
	return e.Phase == t.Phase && e.Kind == t.Kind
}

// Is forwards to the standard library errors.Is.
func Is(err, target error) bool { return stderrors.Is(err, target) }

// As forwards to the standard library errors.As.
func As(err error, target any) bool { return stderrors.As(err, target) }

// JoinPath renders a field path, attaching index segments ("[2]") to the
// preceding segment: items[2].owner
func JoinPath(path []string) string {
	var b strings.Builder
	for i, p := range path {
		if i > 0 && !strings.HasPrefix(p, "[") {
			b.WriteByte('.')
		}
		b.WriteString(p)
	}
	return b.String()
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// GoType sets the Go type name
func (b *Builder) GoType(t string) *Builder {
	b.err.GoType = t
	return b
}

// AbiType sets the ABI type name
func (b *Builder) AbiType(t string) *Builder {
	b.err.AbiType = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// UnrecognizedType creates an error for a scalar that matches no coercion rule
func UnrecognizedType(phase Phase, path []string, goType string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnrecognizedType,
		Path:   path,
		GoType: goType,
		Detail: "did not recognize type",
	}
}

// ValueTooLarge creates an error for a value wider than its target width
func ValueTooLarge(phase Phase, path []string, have, limit int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindValueTooLarge,
		Path:   path,
		Detail: fmt.Sprintf("input too large: maximum %d bytes, value had %d bytes", limit, have),
		Value:  have,
	}
}

// InvalidValue creates an error for a malformed or negative scalar
func InvalidValue(phase Phase, path []string, value any, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidValue,
		Path:   path,
		Detail: detail,
		Value:  value,
	}
}

// TypeMismatch creates a type mismatch error
func TypeMismatch(phase Phase, path []string, goType, abiType string) *Error {
	return &Error{
		Phase:   phase,
		Kind:    KindTypeMismatch,
		Path:    path,
		GoType:  goType,
		AbiType: abiType,
	}
}

// FieldMissing creates a missing field error
func FieldMissing(phase Phase, path []string, fieldName string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindFieldMissing,
		Path:   path,
		Detail: fmt.Sprintf("required field %q not found", fieldName),
	}
}

// InvalidLength creates a length mismatch error
func InvalidLength(phase Phase, path []string, have, want int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidLength,
		Path:   path,
		Detail: fmt.Sprintf("expected length %d, got %d", want, have),
		Value:  have,
	}
}

// UnsupportedStructLayout creates an error for a struct that cannot be
// unpacked from a packed buffer
func UnsupportedStructLayout(phase Phase, path []string, structName string) *Error {
	return &Error{
		Phase:   phase,
		Kind:    KindUnsupportedStructLayout,
		Path:    path,
		AbiType: structName,
		Detail:  "structs with a dynamic field before the last position or a dynamic trailing composite can not be decoded from packed ABI",
	}
}

// UnsupportedArrayLayout creates an error for an array whose element
// boundaries cannot be located in a packed buffer
func UnsupportedArrayLayout(phase Phase, path []string, abiType string) *Error {
	return &Error{
		Phase:   phase,
		Kind:    KindUnsupportedArrayLayout,
		Path:    path,
		AbiType: abiType,
		Detail:  "dynamic-length array of dynamic elements can not be decoded from packed ABI",
	}
}

// InvalidEnum creates an out-of-range enum index error
func InvalidEnum(phase Phase, path []string, index uint64, enumName string, numVariants int) *Error {
	return &Error{
		Phase:   phase,
		Kind:    KindInvalidEnum,
		Path:    path,
		AbiType: enumName,
		Detail:  fmt.Sprintf("index %d out of range (%d variants)", index, numVariants),
		Value:   index,
	}
}

// InvalidDescriptor creates a descriptor construction error
func InvalidDescriptor(path []string, detail string) *Error {
	return &Error{
		Phase:  PhaseCompile,
		Kind:   KindInvalidDescriptor,
		Path:   path,
		Detail: detail,
	}
}

// Overflow creates a limit exceeded error
func Overflow(phase Phase, path []string, value any, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOverflow,
		Path:   path,
		Detail: detail,
		Value:  value,
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// External wraps a failure reported by the standard ABI library
func External(phase Phase, abiType string, cause error) *Error {
	return &Error{
		Phase:   phase,
		Kind:    KindExternal,
		AbiType: abiType,
		Detail:  "standard ABI codec failed",
		Cause:   cause,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
