// Package errors provides structured error types for the logwire module.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type carries a human-readable detail message, the
// offending value where one exists, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseParse, errors.KindUnknownHint).
//		Value("bogus").
//		Detail("unknown display hint: %q", "bogus").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.UnmatchedBrace('{')
//	err := errors.Truncated(errors.PhaseDecode, "entry payload", 12, 4)
//
// All errors implement the standard error interface and support errors.Is/As.
// The encode hot path returns the preallocated ErrCapacity sentinel so that
// failing writes on the constrained producer side never allocate.
package errors
