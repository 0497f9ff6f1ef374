// wrap.go - cross-trait wrapping conversion.
//
// A layer translates a lower layer's outcome into its own vocabulary:
//
//	in failed     → code = failure, msg = in.String()
//	in succeeded  → code = success, msg = ""
//
// The inner result can be of any trait. Its formatted text (not its raw
// message) becomes the new message, so each layer of wrapping nests one more
// "(...)" group when the outer result is printed. A successful inner result
// contributes nothing; its String would only ever be "Success".
//
// A nil Outcome (or nil *Result) is treated as success.
package xgxresult

// Wrap converts in into trait T, using failure when in failed and
// T.Success() otherwise.
func Wrap[T ErrorTrait[C], C Code](in Outcome, failure C) Result[T, C] {
	return WrapOr[T, C](in, failure, traitOf[T, C]().Success())
}

// WrapOr is Wrap with an explicit code for the success case.
func WrapOr[T ErrorTrait[C], C Code](in Outcome, failure, success C) Result[T, C] {
	if IsNil(in) || !in.IsFailure() {
		return Result[T, C]{code: success}
	}
	r := Result[T, C]{code: failure}
	r.appendOutcome(in)
	return r
}
