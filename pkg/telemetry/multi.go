package telemetry

// MultiLogger fans out records to multiple loggers.
type MultiLogger struct {
	loggers []Logger
}

// NewMultiLogger creates a MultiLogger that emits to all provided loggers.
// Nil loggers are skipped.
func NewMultiLogger(loggers ...Logger) *MultiLogger {
	kept := make([]Logger, 0, len(loggers))
	for _, l := range loggers {
		if l != nil {
			kept = append(kept, l)
		}
	}
	return &MultiLogger{loggers: kept}
}

// Emit sends the record to all underlying loggers. The sequence number is
// assigned once so every sink sees the same value.
func (m *MultiLogger) Emit(rec Record) {
	stamp(&rec)
	for _, l := range m.loggers {
		l.Emit(rec)
	}
}

// Flush flushes all underlying loggers and returns the first error.
func (m *MultiLogger) Flush() error {
	var firstErr error
	for _, l := range m.loggers {
		if err := l.Flush(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Close closes all underlying loggers and returns the first error.
func (m *MultiLogger) Close() error {
	var firstErr error
	for _, l := range m.loggers {
		if err := l.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
