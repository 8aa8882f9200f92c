// Package errors provides structured error handling for the angler engine.
//
// This package provides:
//   - Structured errors with codes, messages, and metadata
//   - Error context preservation through wrapping
//   - Validation error helpers
//   - Type-safe error checking
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("no save data found")
//	err := errors.InvalidArgumentf("invalid quest slot: %d", slot)
//
// Adding metadata:
//
//	err := errors.FailedPrecondition("zone is locked").
//	    WithMeta("zone", zone)
//
// Wrapping errors:
//
//	if err := repo.Save(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to commit game state")
//	}
//
// # Error Checking
//
// Extracting information:
//
//	code := errors.GetCode(err)
//	message := errors.GetMessage(err)
//
// # Layer-Specific Guidelines
//
// Repository layer:
//   - Return NotFound when no save document exists
//   - Return DataLoss when the integrity digest does not match; callers
//     must treat DataLoss as fatal and refuse to proceed
//
// Orchestrator layer:
//   - Validate inputs and return InvalidArgument errors
//   - Check resource preconditions (balance, unlock flags, key items) and
//     return FailedPrecondition errors
//
// # Error Codes
//
// The following error codes are available:
//   - InvalidArgument: malformed command or out-of-range choice
//   - NotFound: requested resource or save document does not exist
//   - FailedPrecondition: insufficient balance, missing unlock or key item
//   - OutOfRange: numeric value outside its valid range
//   - DataLoss: save document failed the tamper check (fatal)
//   - Internal: unexpected internal failure
package errors
