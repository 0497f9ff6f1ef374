// codes.go - a small, reusable vocabulary for callers without their own trait.
//
// Intent:
//   - Give tests, examples and small tools a ready-made trait.
//   - Keep semantics open-ended: no HTTP/status/retry policy attached.
//   - Projects with a real domain define their own trait (see trait.go), or
//     generate one from a catalog with cmd/xgx-resultgen.
package xgxresult

import "strconv"

// GenericCode enumerates the builtin codes.
type GenericCode int

const (
	GenericOK GenericCode = iota
	GenericUnknown
	GenericBadRequest
	GenericUnauthorized
	GenericForbidden
	GenericNotFound
	GenericConflict
	GenericInvalid
	GenericTimeout
	GenericUnavailable
	GenericInternal
	GenericInterrupted
)

// Order is stable to minimize churn in docs and examples.
var allBuiltinCodes = []GenericCode{
	GenericOK,
	GenericUnknown,
	GenericBadRequest,
	GenericUnauthorized,
	GenericForbidden,
	GenericNotFound,
	GenericConflict,
	GenericInvalid,
	GenericTimeout,
	GenericUnavailable,
	GenericInternal,
	GenericInterrupted,
}

var genericDescriptions = map[GenericCode]string{
	GenericOK:           "success",
	GenericUnknown:      "unknown error",
	GenericBadRequest:   "bad request",
	GenericUnauthorized: "unauthorized",
	GenericForbidden:    "forbidden",
	GenericNotFound:     "not found",
	GenericConflict:     "conflict",
	GenericInvalid:      "invalid",
	GenericTimeout:      "timeout",
	GenericUnavailable:  "unavailable",
	GenericInternal:     "internal error",
	GenericInterrupted:  "interrupted",
}

// BuiltinCodes returns a copy of the builtin codes in a stable order.
func BuiltinCodes() []GenericCode {
	out := make([]GenericCode, len(allBuiltinCodes))
	copy(out, allBuiltinCodes)
	return out
}

// IsBuiltin reports whether c is one of the declared builtin codes.
func (c GenericCode) IsBuiltin() bool {
	_, ok := genericDescriptions[c]
	return ok
}

// Generic is the trait of GenericCode.
type Generic struct{}

func (Generic) Success() GenericCode      { return GenericOK }
func (Generic) DefaultError() GenericCode { return GenericUnknown }

// CodeToString describes c; undeclared values render as "unknown code N".
func (Generic) CodeToString(c GenericCode) string {
	if s, ok := genericDescriptions[c]; ok {
		return s
	}
	return "unknown code " + strconv.Itoa(int(c))
}

// GenericResult is a Result over the builtin vocabulary.
type GenericResult = Result[Generic, GenericCode]
