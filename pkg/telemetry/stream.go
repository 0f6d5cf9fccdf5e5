package telemetry

import (
	"io"
	"sync"
)

// StreamLogger writes records immediately to an io.Writer.
type StreamLogger struct {
	mu     sync.Mutex
	w      io.Writer
	format Format
	err    error // first write error, reported by Flush
}

// NewStreamLogger creates a new StreamLogger.
func NewStreamLogger(w io.Writer, format Format) *StreamLogger {
	return &StreamLogger{w: w, format: format}
}

// Emit writes a record to the output. Write errors are kept for Flush rather
// than surfaced to the emitter.
func (l *StreamLogger) Emit(rec Record) {
	stamp(&rec)
	data := FormatRecord(rec, l.format)

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, err := l.w.Write(data); err != nil && l.err == nil {
		l.err = err
	}
}

// Flush reports the first write error and flushes the writer if it buffers.
func (l *StreamLogger) Flush() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.err != nil {
		return l.err
	}
	if flusher, ok := l.w.(interface{ Flush() error }); ok {
		return flusher.Flush()
	}
	return nil
}

// Close flushes and closes the writer if it implements io.Closer.
func (l *StreamLogger) Close() error {
	flushErr := l.Flush()

	l.mu.Lock()
	defer l.mu.Unlock()

	if closer, ok := l.w.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			return err
		}
	}
	return flushErr
}
