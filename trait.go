// trait.go - the error trait contract a domain supplies to instantiate Result.
//
// A trait bundles, at the type level:
//   - the code type C (any integer kind, so "Code N" is always well defined),
//   - the distinguished success code,
//   - the code used when a result is built without an explicit one,
//   - a total, pure description function.
//
// Traits are called through their zero value, so they should be empty structs:
//
//	type Code int
//
//	const (
//	    OK Code = iota
//	    NotFound
//	)
//
//	type Trait struct{}
//
//	func (Trait) Success() Code      { return OK }
//	func (Trait) DefaultError() Code { return NotFound }
//	func (Trait) CodeToString(c Code) string {
//	    if c == NotFound {
//	        return "not found"
//	    }
//	    return "unknown"
//	}
//
//	type Result = xgxresult.Result[Trait, Code]
package xgxresult

import "golang.org/x/exp/constraints"

// Code is the constraint for trait code types.
type Code interface {
	constraints.Integer
}

// ErrorTrait is the capability set a domain provides for its codes.
//
// CodeToString MUST handle every value of C, including values the domain
// never declared; Result never validates codes.
type ErrorTrait[C Code] interface {
	// Success returns the unique "no error" code.
	Success() C
	// DefaultError returns the code used by Default.
	DefaultError() C
	// CodeToString describes c for humans.
	CodeToString(c C) string
}

// traitOf returns the zero value of T, which is the trait instance all
// methods are invoked on.
func traitOf[T ErrorTrait[C], C Code]() T {
	var t T
	return t
}
