// append.go - message accumulation.
//
// Two rules, chosen by the dynamic type of the appended value:
//
//	plain value v   → msg += fmt.Sprint(v)              (no separator)
//	any Result  o   → msg += ": " (if msg != "") + o.String()
//
// The second rule is what turns repeated wrapping into a readable cause chain:
//
//	Code 3: request failed (Code 2: query failed (Code 1: not found (users/42)))
//
// A nil *Result is not a result for this purpose and appends as "<nil>".
package xgxresult

import "fmt"

// Append adds the textual form of v to the message and returns a copy of the
// updated result. The receiver keeps the change.
func (r *Result[T, C]) Append(v any) Result[T, C] {
	if o, ok := v.(Outcome); ok && !IsNil(o) {
		r.appendOutcome(o)
		return *r
	}
	r.msg += fmt.Sprint(v)
	return *r
}

// Appendf appends fmt.Sprintf(format, args...) as a plain value.
func (r *Result[T, C]) Appendf(format string, args ...any) Result[T, C] {
	r.msg += fmt.Sprintf(format, args...)
	return *r
}

func (r *Result[T, C]) appendOutcome(o Outcome) {
	// o may alias r; render it before touching msg.
	s := o.String()
	if r.msg != "" {
		r.msg += ": "
	}
	r.msg += s
}
