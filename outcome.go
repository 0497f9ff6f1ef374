// outcome.go - trait-erased, read-only view shared by every Result instantiation.
//
// Result[T, C] for two different traits are unrelated Go types. Outcome is the
// one interface they all satisfy, so cross-trait operations (Wrap, appending a
// result to a result, the adapter packages) accept "any result" without
// knowing its trait. The interface is sealed: only Result implements it.
package xgxresult

// Outcome is implemented by Result[T, C] and *Result[T, C] for every trait.
type Outcome interface {
	IsSuccess() bool
	IsFailure() bool
	// String is the formatted result ("Success" or "Code N: desc (msg)").
	String() string
	Message() string
	CodeValue() int64
	CodeString() string
	Description() string
	// Err is nil on success.
	Err() error

	outcome()
}

func (Result[T, C]) outcome() {}

// nilOutcome is only in the method set of *Result.
func (r *Result[T, C]) nilOutcome() bool { return r == nil }

// IsNil reports whether o is nil or a nil *Result. Wrap and Append treat
// such an outcome as absent; the adapter packages record it as a success.
func IsNil(o Outcome) bool {
	if o == nil {
		return true
	}
	p, ok := o.(interface{ nilOutcome() bool })
	return ok && p.nilOutcome()
}

// OrSuccess returns o, or the Generic success result when IsNil(o).
func OrSuccess(o Outcome) Outcome {
	if IsNil(o) {
		return Success[Generic, GenericCode]()
	}
	return o
}
