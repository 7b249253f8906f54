package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	return out
}

func TestPgxLogger_TraceKeepsSQL(t *testing.T) {
	var buf bytes.Buffer
	l := newPgxLogger(zerolog.New(&buf).Level(zerolog.TraceLevel))

	data := map[string]any{"sql": "SELECT 1", "args": []any{1}, "time": 3 * time.Millisecond}
	l.Log(context.Background(), tracelog.LogLevelTrace, "Query", data)

	line := decodeLine(t, &buf)
	assert.Equal(t, "pgx", line["component"])
	assert.Equal(t, "SELECT 1", line["sql"])
	assert.Contains(t, line, "args")
	assert.Contains(t, line, "took")
	assert.NotContains(t, line, "time")
	// the caller's map is left alone
	assert.Contains(t, data, "sql")
}

func TestPgxLogger_InfoDropsSQL(t *testing.T) {
	var buf bytes.Buffer
	l := newPgxLogger(zerolog.New(&buf))

	l.Log(context.Background(), tracelog.LogLevelInfo, "Query", map[string]any{"sql": "SELECT 1", "rowCount": 2})

	line := decodeLine(t, &buf)
	assert.NotContains(t, line, "sql")
	assert.EqualValues(t, 2, line["rowCount"])
	assert.Equal(t, "info", line["level"])
}

func TestPgxLogger_NoneIsSilent(t *testing.T) {
	var buf bytes.Buffer
	l := newPgxLogger(zerolog.New(&buf))
	l.Log(context.Background(), tracelog.LogLevelNone, "Query", nil)
	assert.Zero(t, buf.Len())
}

func TestTraceLevel(t *testing.T) {
	assert.Equal(t, tracelog.LogLevelTrace, traceLevel(zerolog.TraceLevel))
	assert.Equal(t, tracelog.LogLevelDebug, traceLevel(zerolog.DebugLevel))
	assert.Equal(t, tracelog.LogLevelInfo, traceLevel(zerolog.InfoLevel))
	assert.Equal(t, tracelog.LogLevelWarn, traceLevel(zerolog.WarnLevel))
	assert.Equal(t, tracelog.LogLevelError, traceLevel(zerolog.ErrorLevel))
}
