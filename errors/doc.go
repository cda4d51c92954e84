// Package errors provides structured error types for the nbt module.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: entry path, byte offset, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindInvalidData).
//		Path("Level", "Sections", "3").
//		Offset(1024).
//		Detail("list element type 0x%02x", 0x0b).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.UnexpectedEOF(path, offset, 4, 1)
//	err := errors.UnknownTag(path, offset, 0xff)
//
// All errors implement the standard error interface and support errors.Is/As.
// Matching with errors.Is compares Phase and Kind only, so a template such as
// &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindUnknownTag}
// matches every unknown tag failure regardless of where it happened.
package errors
