// Package errs provides standardized error types for the parcel pricing service.
// Every type wraps a sentinel so callers can classify failures with errors.Is,
// and carries an optional cause that is matched as well:
//
//	err := errs.NewValueIsInvalidErrorWithCause("distance_km", kernel.ErrInvalidDistance)
//	errors.Is(err, errs.ErrValueIsInvalid)   // true
//	errors.Is(err, kernel.ErrInvalidDistance) // true
//
// The package includes:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value failed validation
//   - ValueIsOutOfRangeError: a value is outside its allowed bounds
//   - ObjectNotFoundError: a persisted object could not be found
package errs
