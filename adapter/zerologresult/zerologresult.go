// Package zerologresult hands results to zerolog.
//
// Field layout (shared with zapresult):
//
//	success      bool
//	code         int64
//	description  string  (failures only)
//	message      string  (only when non-empty)
//	result       string  (the formatted result)
package zerologresult

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	xgxresult "github.com/xgx-io/xgx-result"
)

type object struct {
	o xgxresult.Outcome
}

func (ob object) MarshalZerologObject(e *zerolog.Event) {
	e.Bool("success", ob.o.IsSuccess()).Int64("code", ob.o.CodeValue())
	if ob.o.IsFailure() {
		e.Str("description", ob.o.Description())
	}
	if msg := ob.o.Message(); msg != "" {
		e.Str("message", msg)
	}
	e.Str("result", ob.o.String())
}

// Object wraps o for zerolog's Object/EmbedObject. A nil o logs as a success.
func Object(o xgxresult.Outcome) zerolog.LogObjectMarshaler {
	return object{o: xgxresult.OrSuccess(o)}
}

// Log writes o under the "result" key: failures at error level, successes at
// debug level.
func Log(l *zerolog.Logger, msg string, o xgxresult.Outcome) {
	o = xgxresult.OrSuccess(o)
	level := zerolog.DebugLevel
	if o.IsFailure() {
		level = zerolog.ErrorLevel
	}
	l.WithLevel(level).Object("result", Object(o)).Msg(msg)
}

func logAt(level zerolog.Level, msg string, o xgxresult.Outcome, logger ...*zerolog.Logger) {
	l := &log.Logger
	if len(logger) > 0 {
		l = logger[0]
	}
	l.WithLevel(level).Msg(msg + ": " + xgxresult.OrSuccess(o).String())
}

// LogError logs "msg: <result>" at error level on the given logger, or on the
// global zerolog logger.
func LogError(msg string, o xgxresult.Outcome, logger ...*zerolog.Logger) {
	logAt(zerolog.ErrorLevel, msg, o, logger...)
}

func LogWarn(msg string, o xgxresult.Outcome, logger ...*zerolog.Logger) {
	logAt(zerolog.WarnLevel, msg, o, logger...)
}

func LogDebug(msg string, o xgxresult.Outcome, logger ...*zerolog.Logger) {
	logAt(zerolog.DebugLevel, msg, o, logger...)
}
