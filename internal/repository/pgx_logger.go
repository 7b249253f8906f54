package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
)

// maxLoggedSQL bounds the SQL text copied into a log line; search queries can be long.
const maxLoggedSQL = 512

// pgxLogger adapts zerolog.Logger to pgx's tracelog interface.
type pgxLogger struct {
	logger zerolog.Logger
}

// newPgxLogger builds a child logger scoped to the pgx component so SQL noise stays filterable.
func newPgxLogger(logger zerolog.Logger) *pgxLogger {
	l := logger.With().Str("component", "pgx").Logger()
	return &pgxLogger{logger: l}
}

// Log implements tracelog.Logger. Query duration becomes "took", SQL text and
// args are attached at trace level only, everything else passes through as fields.
func (l *pgxLogger) Log(_ context.Context, level tracelog.LogLevel, msg string, data map[string]any) {
	var event *zerolog.Event
	switch level {
	case tracelog.LogLevelNone:
		return
	case tracelog.LogLevelTrace:
		event = l.logger.Trace()
	case tracelog.LogLevelDebug:
		event = l.logger.Debug()
	case tracelog.LogLevelInfo:
		event = l.logger.Info()
	case tracelog.LogLevelWarn:
		event = l.logger.Warn()
	case tracelog.LogLevelError:
		event = l.logger.Error()
	default:
		event = l.logger.Info().Str("pgx_log_level", level.String())
	}

	fields := make(map[string]any, len(data))
	for k, v := range data {
		fields[k] = v
	}

	if d, ok := fields["time"].(time.Duration); ok {
		event = event.Dur("took", d)
		delete(fields, "time")
	}
	if level == tracelog.LogLevelTrace {
		if s, ok := fields["sql"].(string); ok {
			if len(s) > maxLoggedSQL {
				s = s[:maxLoggedSQL] + "…"
			}
			event = event.Str("sql", s)
		}
		if args, ok := fields["args"]; ok {
			event = event.Interface("args", args)
		}
	}
	delete(fields, "sql")
	delete(fields, "args")

	if len(fields) > 0 {
		event = event.Fields(fields)
	}
	event.Msg(msg)
}
