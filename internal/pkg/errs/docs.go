// Package errs provides standardized error types for the print-shop backend.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ObjectNotFoundError: For when an object cannot be found
//   - InvalidStateError: For when an operation is forbidden by the object's current state
//   - IntegrityError: For when a required related entity cannot be resolved
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// The sentinel errors are what the HTTP adapter maps onto status codes:
// required and invalid values become 400, not-found becomes 404, invalid
// state becomes 409, and integrity violations become 500.
package errs
