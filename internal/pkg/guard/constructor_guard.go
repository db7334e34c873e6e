// Package guard provides ConstructorGuard, a marker embedded in value objects and
// commands so that zero values built with a struct literal fail validation.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is given.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether its owner went through a constructor.
//
// Example usage:
//
//	type Parcel struct {
//	    size  SizeTier
//	    guard guard.ConstructorGuard
//	}
//
//	func NewParcel(size SizeTier) (Parcel, error) {
//	    return Parcel{size: size, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (p Parcel) Validate() error {
//	    return p.guard.Validate(ErrParcelIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking its owner as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero-value guard it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
