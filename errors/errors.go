package errors

import (
	"fmt"
	"strings"
)

// Phase indicates which box operation the error occurred in
type Phase string

const (
	PhaseConstruct Phase = "construct" // binding a box to a concrete object
	PhaseClone     Phase = "clone"     // duplication during copy
	PhaseCast      Phase = "cast"      // upcast/downcast entry points
	PhaseRelease   Phase = "release"   // ownership transfer out
	PhaseAlloc     Phase = "alloc"     // pool-routed allocation
	PhaseTable     Phase = "table"     // handle table operations
)

// Kind categorizes the error
type Kind string

const (
	KindTypeMismatch Kind = "type_mismatch"
	KindNilPointer   Kind = "nil_pointer"
	KindAllocation   Kind = "allocation"
	KindCastFailed   Kind = "cast_failed"
	KindNotFound     Kind = "not_found"
	KindClosed       Kind = "closed"
	KindInvalidInput Kind = "invalid_input"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value    any
	Cause    error
	Phase    Phase
	Kind     Kind
	GoType   string
	ViewType string
	Detail   string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.GoType != "" || e.ViewType != "" {
		b.WriteString(": ")
		if e.GoType != "" && e.ViewType != "" {
			b.WriteString("concrete type ")
			b.WriteString(e.GoType)
			b.WriteString(", view type ")
			b.WriteString(e.ViewType)
		} else if e.GoType != "" {
			b.WriteString("concrete type ")
			b.WriteString(e.GoType)
		} else {
			b.WriteString("view type ")
			b.WriteString(e.ViewType)
		}
	}

	if e.Detail != "" {
		if e.GoType != "" || e.ViewType != "" {
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

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
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

// GoType sets the concrete Go type name
func (b *Builder) GoType(t string) *Builder {
	b.err.GoType = t
	return b
}

// ViewType sets the view (interface) type name
func (b *Builder) ViewType(t string) *Builder {
	b.err.ViewType = t
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

// TypeMismatch creates a type mismatch error
func TypeMismatch(phase Phase, goType, viewType string) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindTypeMismatch,
		GoType:   goType,
		ViewType: viewType,
	}
}

// NotAssignable reports a concrete type that cannot be viewed as viewType
func NotAssignable(phase Phase, goType, viewType string) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindTypeMismatch,
		GoType:   goType,
		ViewType: viewType,
		Detail:   fmt.Sprintf("%s does not satisfy view %s", goType, viewType),
	}
}

// AliasedConstruction reports binding a box to an interface-typed slot,
// which would copy the reference instead of the object
func AliasedConstruction(goType string) *Error {
	return &Error{
		Phase:  PhaseConstruct,
		Kind:   KindTypeMismatch,
		GoType: goType,
		Detail: "dynamic and static type mismatch: an interface slot would alias the owned object; bind the concrete type",
	}
}

// AllocationFailed creates an allocation failure error
func AllocationFailed(phase Phase, goType string, cause error) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindAllocation,
		GoType: goType,
		Detail: "failed to allocate object",
		Cause:  cause,
	}
}

// CloneFailed wraps a duplication strategy failure
func CloneFailed(goType string, cause error) *Error {
	return &Error{
		Phase:  PhaseClone,
		Kind:   KindAllocation,
		GoType: goType,
		Detail: "duplication strategy failed",
		Cause:  cause,
	}
}

// NilPointer creates a nil pointer error
func NilPointer(phase Phase, goType string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNilPointer,
		GoType: goType,
		Detail: "nil pointer",
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s not found", what),
	}
}

// Closed creates an error for operations on a closed container
func Closed(what string) *Error {
	return &Error{
		Phase:  PhaseTable,
		Kind:   KindClosed,
		Detail: fmt.Sprintf("%s is closed", what),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
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
