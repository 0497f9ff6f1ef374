// format.go - human-readable rendering of a Result.
//
// String (the canonical form):
//
//	success         → Success
//	failure         → Code <N>: <desc>
//	failure + msg   → Code <N>: <desc> (<msg>)
//
// A message attached to a success result never shows in String; success
// always renders the same way.
//
// fmt verbs:
//
//	%s, %v   → String()
//	%q       → quoted String()
//	%d       → numeric code only
//	%+v      → code=<N> desc="<desc>" msg="<msg>"   (failure)
//	           code=<N> success msg="<msg>"          (success)
//
// %+v is the only place where a success message is visible. Width, precision
// and the '-' flag apply to every verb except %+v.
package xgxresult

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

const successText = "Success"

// String formats r as "Success" or "Code N: desc" with an optional " (msg)".
func (r Result[T, C]) String() string {
	if r.IsSuccess() {
		return successText
	}
	var sb strings.Builder
	sb.WriteString("Code ")
	sb.WriteString(codeText(r.code))
	sb.WriteString(": ")
	sb.WriteString(r.Description())
	if r.msg != "" {
		sb.WriteString(" (")
		sb.WriteString(r.msg)
		sb.WriteByte(')')
	}
	return sb.String()
}

// Format implements fmt.Formatter.
func (r Result[T, C]) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			r.formatVerbose(s)
			return
		}
		_, _ = fmt.Fprintf(s, fmt.FormatString(s, 's'), r.String())
	case 'q':
		_, _ = fmt.Fprintf(s, fmt.FormatString(s, 'q'), r.String())
	case 'd':
		_, _ = fmt.Fprintf(s, fmt.FormatString(s, 's'), codeText(r.code))
	default:
		_, _ = fmt.Fprintf(s, fmt.FormatString(s, 's'), r.String())
	}
}

func (r Result[T, C]) formatVerbose(w io.Writer) {
	_, _ = fmt.Fprintf(w, "code=%s ", codeText(r.code))
	if r.IsSuccess() {
		_, _ = io.WriteString(w, "success ")
	} else {
		_, _ = fmt.Fprintf(w, "desc=%q ", r.Description())
	}
	_, _ = fmt.Fprintf(w, "msg=%q", r.msg)
}

// codeText prints c exactly, whatever its integer kind.
func codeText[C Code](c C) string {
	var zero C
	if zero-1 < zero {
		return strconv.FormatInt(int64(c), 10)
	}
	return strconv.FormatUint(uint64(c), 10)
}
