package telemetry

// nopLogger discards all records.
type nopLogger struct{}

func (nopLogger) Emit(Record) {}

func (nopLogger) Flush() error { return nil }

func (nopLogger) Close() error { return nil }

// Nop is the package-level singleton no-op logger.
var Nop Logger = nopLogger{}
