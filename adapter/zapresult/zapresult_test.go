package zapresult

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	xgxresult "github.com/xgx-io/xgx-result"
)

func TestLog_Failure(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	inner := xgxresult.New[xgxresult.Generic](xgxresult.GenericTimeout)
	r := xgxresult.Wrap[xgxresult.Generic](inner, xgxresult.GenericUnavailable)
	Log(logger, "fetch", r)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.ErrorLevel, entry.Level)
	assert.Equal(t, "fetch", entry.Message)
	assert.Equal(t, map[string]any{
		"success":     false,
		"code":        int64(9),
		"description": "unavailable",
		"message":     "Code 8: timeout",
		"result":      "Code 9: unavailable (Code 8: timeout)",
	}, entry.ContextMap()["result"])
}

func TestLog_SuccessRespectsLevel(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	Log(zap.New(core), "fetch", xgxresult.Success[xgxresult.Generic, xgxresult.GenericCode]())
	assert.Equal(t, 0, logs.Len())

	core, logs = observer.New(zapcore.DebugLevel)
	Log(zap.New(core), "fetch", xgxresult.Success[xgxresult.Generic, xgxresult.GenericCode]())
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, map[string]any{
		"success": true,
		"code":    int64(0),
		"result":  "Success",
	}, logs.All()[0].ContextMap()["result"])
}

func TestField(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	zap.New(core).Info("done", Field("outcome", xgxresult.New[xgxresult.Generic](xgxresult.GenericForbidden)))

	require.Equal(t, 1, logs.Len())
	got, ok := logs.All()[0].ContextMap()["outcome"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "forbidden", got["description"])
	assert.NotContains(t, got, "message")
}

func TestLog_NilIsSuccess(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	var p *xgxresult.GenericResult
	Log(zap.New(core), "fetch", p)
	zap.New(core).Info("done", Field("outcome", nil))

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, zapcore.DebugLevel, logs.All()[0].Level)
	for _, entry := range logs.All() {
		for _, v := range entry.ContextMap() {
			assert.Equal(t, map[string]any{
				"success": true,
				"code":    int64(0),
				"result":  "Success",
			}, v)
		}
	}
}
