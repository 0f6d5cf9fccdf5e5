package telemetry

import (
	"context"
	"log/slog"
)

// SlogLogger forwards records to a structured logger at INFO level, using the
// record name as the message.
type SlogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger creates a SlogLogger. A nil logger uses slog.Default().
func NewSlogLogger(logger *slog.Logger) *SlogLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogLogger{logger: logger}
}

// Emit logs the record.
func (l *SlogLogger) Emit(rec Record) {
	stamp(&rec)

	attrs := make([]slog.Attr, 0, len(rec.Attrs)+2)
	attrs = append(attrs, slog.Uint64("seq", rec.Seq))
	if rec.Session != "" {
		attrs = append(attrs, slog.String("session", rec.Session))
	}
	for _, a := range rec.Attrs {
		if a.Kind == AttrInt {
			attrs = append(attrs, slog.Int64(a.Key, a.Int))
		} else {
			attrs = append(attrs, slog.String(a.Key, a.Str))
		}
	}

	l.logger.LogAttrs(context.Background(), slog.LevelInfo, rec.Name, attrs...)
}

// Flush is a no-op; slog handlers write synchronously.
func (l *SlogLogger) Flush() error {
	return nil
}

// Close is a no-op.
func (l *SlogLogger) Close() error {
	return nil
}
