// doc.go - package documentation for xgx-result
//
// Package xgxresult provides a generic, value-typed result: success or one
// failure code of a caller-defined vocabulary (the error trait), plus a
// free-form diagnostic message that can absorb the formatted text of lower
// layer results. It is designed to be:
//   - Value-typed (no pointers to share, copies are independent)
//   - Trait-driven (each domain owns its codes and descriptions)
//   - Policy-free (no logging/HTTP/retry rules in core; see adapter/)
//
// # Defining a Trait
//
//	type Code int
//
//	const (
//	    OK Code = iota
//	    NotFound
//	    BadFormat
//	)
//
//	type Trait struct{}
//
//	func (Trait) Success() Code      { return OK }
//	func (Trait) DefaultError() Code { return NotFound }
//	func (Trait) CodeToString(c Code) string { ... }
//
//	type Result = xgxresult.Result[Trait, Code]
//
// Traits can also be generated from a YAML catalog with cmd/xgx-resultgen.
//
// # Message Semantics
//
// The message only grows. Append picks one of two rules from the value it is
// given:
//
//   - plain values are concatenated with no separator:
//     r.Append("file.txt") → msg "file.txt"
//   - results (of any trait) are appended as their String(), preceded by
//     ": " when the message is already non-empty.
//
//	r := xgxresult.New[Trait](NotFound)
//	r.Append("file.txt")
//	r.String() // "Code 1: not found (file.txt)"
//
// # Wrapping Across Layers
//
// Wrap re-codes a lower layer's result into the current vocabulary and keeps
// its formatted text as the message:
//
//	db := xgxresult.New[DBTrait](DBNotFound)
//	api := xgxresult.Wrap[APITrait](db, APIUpstream)
//	api.String() // "Code 7: upstream failed (Code 1: not found)"
//
// A successful inner result maps to the success code (or the one given to
// WrapOr) with an empty message.
//
// # Equality
//
// Equal compares codes only. Two results with the same code and different
// messages are Equal. The == operator also compares messages; prefer Equal.
//
// # Success
//
// Success returns a process-wide shared success result per trait, created on
// first use. String() of any success result is exactly "Success", even when a
// message was appended to it. Only %+v shows such a message.
//
// # Interop
//
//   - Err() turns a failure into an error (nil on success).
//   - CodeOf / FromError recover a result from an error chain.
//   - Adapters for zerolog, zap, OpenTelemetry, Prometheus and gRPC live under
//     adapter/ and accept any result through the Outcome interface.
package xgxresult
