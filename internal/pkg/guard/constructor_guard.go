// Package guard provides a constructor-guard pattern for domain objects.
// Embedding a ConstructorGuard in a struct makes zero-value instances
// detectable, so commands, queries, and value objects can enforce creation
// through their designated constructor functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied and the object was not properly constructed.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard tracks whether the embedding object went through its
// constructor. The zero value always fails validation.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the object as properly constructed.
// Call it from the object's constructor:
//
//	func NewCommand(...) (Command, error) {
//	    return Command{..., guard: guard.NewConstructorGuard()}, nil
//	}
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object was properly constructed. Otherwise it
// returns validationError, or ErrDefaultConstructorGuard when that is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
