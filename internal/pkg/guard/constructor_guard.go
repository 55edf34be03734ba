// Package guard provides a defensive construction marker for value objects,
// commands, and queries. Embedding a ConstructorGuard in a struct makes
// zero-value instances detectable, so code paths can insist that objects
// were created through their designated constructor functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil error is
// passed as the validation error. This ensures validation always fails with
// a meaningful message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard distinguishes properly constructed objects from zero
// values. The internal flag is only set by NewConstructorGuard, so any
// zero-value struct that embeds the guard fails validation.
//
// Example usage:
//
//	var ErrStatsQueryNotConstructed = errors.New("StatsQuery must be created via NewStatsQuery")
//
//	type StatsQuery struct {
//	    guard guard.ConstructorGuard
//	}
//
//	func NewStatsQuery() StatsQuery {
//	    return StatsQuery{guard: guard.NewConstructorGuard()}
//	}
//
//	func (q StatsQuery) Validate() error {
//	    return q.guard.Validate(ErrStatsQueryNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly
// constructed. Call it in the constructor of the guarded object.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate reports whether the guarded object was created through its
// constructor. For zero-value guards it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
