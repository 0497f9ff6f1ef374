// Package otelresult records results on OpenTelemetry spans.
package otelresult

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	xgxresult "github.com/xgx-io/xgx-result"
)

// Attribute keys set by Record.
const (
	CodeKey        = attribute.Key("result.code")
	DescriptionKey = attribute.Key("result.description")
	MessageKey     = attribute.Key("result.message")
)

// Attributes returns the span attributes describing o. Description is only
// set for failures and message only when non-empty. A nil o is described as
// a success.
func Attributes(o xgxresult.Outcome) []attribute.KeyValue {
	o = xgxresult.OrSuccess(o)
	attrs := []attribute.KeyValue{CodeKey.Int64(o.CodeValue())}
	if o.IsFailure() {
		attrs = append(attrs, DescriptionKey.String(o.Description()))
	}
	if msg := o.Message(); msg != "" {
		attrs = append(attrs, MessageKey.String(msg))
	}
	return attrs
}

// Record sets span's status from o and attaches Attributes(o). A failure is
// also recorded as an error event carrying the formatted result.
func Record(span trace.Span, o xgxresult.Outcome) {
	o = xgxresult.OrSuccess(o)
	span.SetAttributes(Attributes(o)...)
	if o.IsSuccess() {
		span.SetStatus(codes.Ok, "")
		return
	}
	span.RecordError(o.Err())
	span.SetStatus(codes.Error, o.String())
}
