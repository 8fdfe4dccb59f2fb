// Package errors provides structured error types for the poly library.
//
// Errors are categorized by Phase (which box operation failed) and Kind
// (error category). The Error type includes rich context: concrete and view
// type names, the offending value, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseConstruct, errors.KindTypeMismatch).
//		GoType("*app.Circle").
//		ViewType("app.Shape").
//		Detail("circle does not implement the shape view").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.NotAssignable(errors.PhaseCast, "*app.Circle", "app.Solid")
//	err := errors.CloneFailed("*app.Conn", cause)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
