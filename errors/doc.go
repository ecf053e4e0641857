// Package errors provides structured error types for the ABI codec.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: field path, Go/ABI type names, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseEncode, errors.KindTypeMismatch).
//		Path("order", "items").
//		GoType("string").
//		AbiType("uint256[]").
//		Detail("expected a sequence").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.TypeMismatch(errors.PhaseEncode, path, "string", "uint256[]")
//	err := errors.InvalidLength(errors.PhaseDecode, path, 31, 32)
//
// All errors implement the standard error interface and support errors.Is/As.
// The Err* sentinels carry no phase and match any error of their kind:
//
//	if errors.Is(err, abierrors.ErrInvalidLength) { ... }
package errors
