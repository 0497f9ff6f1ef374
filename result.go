// result.go - the Result value type: construction, queries and comparison.
//
// Semantics:
//   - A Result holds exactly one code and an append-only message.
//   - Success is decided by the trait alone: code == T.Success().
//   - Equal compares codes only; messages may differ between equal results.
//   - Nothing here panics or returns an error.
//
// Note that the builtin == on two Result values also compares messages.
// Use Equal (or Is against a raw code) for the code-only comparison.
package xgxresult

// Result is either success or one failure code of trait T, plus a free-form
// diagnostic message.
//
// The zero value holds C(0) and an empty message. For the common trait shape
// where success is 0, a zero Result therefore reports success: a function
// that declares "var r Result" and returns it early fails open. Start such
// functions from Default, which holds T.DefaultError().
type Result[T ErrorTrait[C], C Code] struct {
	code C
	msg  string
}

// New returns a result holding code and an empty message. Any value of C is
// accepted.
func New[T ErrorTrait[C], C Code](code C) Result[T, C] {
	return Result[T, C]{code: code}
}

// Default returns a result holding T.DefaultError().
func Default[T ErrorTrait[C], C Code]() Result[T, C] {
	return Result[T, C]{code: traitOf[T, C]().DefaultError()}
}

// Code returns the stored code. On a success result this is the trait's
// success code; guard with IsFailure before reading it as an error.
func (r Result[T, C]) Code() C { return r.code }

// Message returns the raw accumulated message, which may be empty.
func (r Result[T, C]) Message() string { return r.msg }

func (r Result[T, C]) IsSuccess() bool { return r.code == traitOf[T, C]().Success() }
func (r Result[T, C]) IsFailure() bool { return !r.IsSuccess() }

// Is reports whether r holds code.
func (r Result[T, C]) Is(code C) bool { return r.code == code }

// Equal reports whether r and other hold the same code. Messages are ignored.
func (r Result[T, C]) Equal(other Result[T, C]) bool { return r.code == other.code }

// CodeValue returns the code widened to int64. Unsigned codes above
// math.MaxInt64 wrap to negative values, and so do the numeric code fields
// of the zap, zerolog and otel adapters and the input of a grpc Mapper.
// CodeString and String print them exactly.
func (r Result[T, C]) CodeValue() int64 { return int64(r.code) }

// CodeString returns the code in decimal, exact for every integer kind.
func (r Result[T, C]) CodeString() string { return codeText(r.code) }

// Description returns T.CodeToString for the stored code.
func (r Result[T, C]) Description() string {
	return traitOf[T, C]().CodeToString(r.code)
}
