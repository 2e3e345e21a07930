// Package errs provides standardized error types for the ordering service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For numeric values outside their bounds
//   - FieldsError: For per-field validation failures of a request body
//   - ObjectNotFoundError: For when an object or a non-empty collection cannot be found
//   - AccessError: For authentication, role and ownership denials
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// The HTTP adapter classifies failures with errors.Is against the sentinels, so
// every layer can wrap freely without losing the status mapping.
package errs
