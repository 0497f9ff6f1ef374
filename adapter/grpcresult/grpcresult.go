// Package grpcresult maps results to and from gRPC statuses.
//
// The mapping of domain codes to gRPC codes is the caller's policy; this
// package only applies it.
package grpcresult

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	xgxresult "github.com/xgx-io/xgx-result"
)

// Mapper picks the gRPC code for a failed result's numeric code.
type Mapper func(code int64) codes.Code

// Unknown maps every failure to codes.Unknown.
func Unknown(int64) codes.Code { return codes.Unknown }

// Status returns OK for a success and mapper(code) with the formatted result
// as message for a failure. A nil mapper behaves like Unknown. A mapper that
// returns codes.OK for a failure is overridden with codes.Unknown, so a failure
// never crosses the wire as success. A nil o is a success.
func Status(o xgxresult.Outcome, mapper Mapper) *status.Status {
	if xgxresult.IsNil(o) || o.IsSuccess() {
		return status.New(codes.OK, "")
	}
	if mapper == nil {
		mapper = Unknown
	}
	c := mapper(o.CodeValue())
	if c == codes.OK {
		c = codes.Unknown
	}
	return status.New(c, o.String())
}

// Err is Status(o, mapper).Err(): nil for a success.
func Err(o xgxresult.Outcome, mapper Mapper) error {
	return Status(o, mapper).Err()
}

// FromStatus converts st into a trait-T result. OK (or a nil status) becomes
// Success; anything else becomes failure with "<grpc code>: <message>" as the
// message.
func FromStatus[T xgxresult.ErrorTrait[C], C xgxresult.Code](st *status.Status, failure C) xgxresult.Result[T, C] {
	if st.Code() == codes.OK {
		return xgxresult.Success[T, C]()
	}
	r := xgxresult.New[T, C](failure)
	r.Append(st.Code().String())
	if msg := st.Message(); msg != "" {
		r.Append(": ")
		r.Append(msg)
	}
	return r
}
