// Package telemetry carries click telemetry records from the instrumentation
// core to one or more sinks.
//
// The core only ever calls Logger.Emit and expects it to return promptly.
// Sinks available:
//
//   - Nop: discards everything
//   - RingLogger: keeps the last N records in memory
//   - StreamLogger: writes text or NDJSON lines to an io.Writer
//   - MsgpackLogger: writes a msgpack record stream to an io.Writer
//   - SlogLogger: forwards records to a *slog.Logger
//   - MultiLogger: fans out to several sinks
//
// Use New to build a sink from a Config.
package telemetry
