// err.go - interop with Go's error values.
//
// Result itself is not an error: a success result would then be a non-nil
// error. Err bridges the two worlds explicitly:
//
//	if err := r.Err(); err != nil { return err }
//
// The returned error keeps the result, so CodeOf and FromError can recover
// the code further up, through any fmt.Errorf("%w") or errors.Join layers.
package xgxresult

import "errors"

// resultError carries a failed result through error-returning code.
type resultError[T ErrorTrait[C], C Code] struct {
	r Result[T, C]
}

func (e *resultError[T, C]) Error() string { return e.r.String() }

// Is matches another result error of the same trait holding the same code.
func (e *resultError[T, C]) Is(target error) bool {
	t, ok := target.(*resultError[T, C])
	return ok && t.r.Equal(e.r)
}

func (e *resultError[T, C]) result() Result[T, C] { return e.r }

// Err returns nil for a success result and an error rendering r.String()
// otherwise.
func (r Result[T, C]) Err() error {
	if r.IsSuccess() {
		return nil
	}
	return &resultError[T, C]{r: r}
}

// carrier is implemented by resultError of one specific trait.
type carrier[T ErrorTrait[C], C Code] interface {
	result() Result[T, C]
}

// CodeOf returns the code of the first trait-T result found along err's
// unwrap chain.
func CodeOf[T ErrorTrait[C], C Code](err error) (C, bool) {
	var c carrier[T, C]
	if err != nil && errors.As(err, &c) {
		return c.result().Code(), true
	}
	var zero C
	return zero, false
}

// FromError converts err into a trait-T result:
//   - nil → Success
//   - an error carrying a trait-T result → that result
//   - anything else → failure with err.Error() as the message
func FromError[T ErrorTrait[C], C Code](err error, failure C) Result[T, C] {
	if err == nil {
		return Success[T, C]()
	}
	var c carrier[T, C]
	if errors.As(err, &c) {
		return c.result()
	}
	r := New[T, C](failure)
	r.msg = err.Error()
	return r
}
