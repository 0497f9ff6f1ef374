// Package zapresult hands results to zap.
package zapresult

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	xgxresult "github.com/xgx-io/xgx-result"
)

type object struct {
	o xgxresult.Outcome
}

func (ob object) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddBool("success", ob.o.IsSuccess())
	enc.AddInt64("code", ob.o.CodeValue())
	if ob.o.IsFailure() {
		enc.AddString("description", ob.o.Description())
	}
	if msg := ob.o.Message(); msg != "" {
		enc.AddString("message", msg)
	}
	enc.AddString("result", ob.o.String())
	return nil
}

// Field returns o as a structured zap field. A nil o logs as a success.
func Field(key string, o xgxresult.Outcome) zap.Field {
	return zap.Object(key, object{o: xgxresult.OrSuccess(o)})
}

// Log writes o under the "result" key: failures at error level, successes at
// debug level.
func Log(logger *zap.Logger, msg string, o xgxresult.Outcome) {
	o = xgxresult.OrSuccess(o)
	level := zapcore.DebugLevel
	if o.IsFailure() {
		level = zapcore.ErrorLevel
	}
	if ce := logger.Check(level, msg); ce != nil {
		ce.Write(Field("result", o))
	}
}
