package telemetry

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger is the telemetry channel the instrumentation core emits into.
type Logger interface {
	// Emit records a telemetry record. Must not block for long and must be
	// goroutine-safe.
	Emit(rec Record)

	// Flush ensures all buffered records are written.
	Flush() error

	// Close flushes and releases resources.
	Close() error
}

// ErrUnknownMode is returned for a storage mode that New does not support.
var ErrUnknownMode = errors.New("unknown telemetry mode")

// Mode determines which sink New builds.
type Mode uint8

const (
	ModeSlog    Mode = iota + 1 // records as slog lines
	ModeStream                  // text or NDJSON lines
	ModeRing                    // in-memory ring buffer
	ModeMsgpack                 // msgpack record stream
	ModeMulti                   // stream + ring
)

// String returns the string representation of Mode.
func (m Mode) String() string {
	switch m {
	case ModeSlog:
		return "slog"
	case ModeStream:
		return "stream"
	case ModeRing:
		return "ring"
	case ModeMsgpack:
		return "msgpack"
	case ModeMulti:
		return "multi"
	default:
		return "unknown"
	}
}

// ParseMode converts a string to Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "slog":
		return ModeSlog, nil
	case "stream":
		return ModeStream, nil
	case "ring":
		return ModeRing, nil
	case "msgpack":
		return ModeMsgpack, nil
	case "multi":
		return ModeMulti, nil
	default:
		return ModeSlog, fmt.Errorf("%w: %q (expected: slog|stream|ring|msgpack|multi)", ErrUnknownMode, s)
	}
}

// DefaultRingSize is the ring capacity used when Config.RingSize is unset.
const DefaultRingSize = 1024

// Config holds sink configuration.
type Config struct {
	Mode       Mode
	Format     Format       // stream and multi modes
	Output     io.Writer    // if nil, OutputPath is opened
	OutputPath string       // "-" or empty for stderr
	RingSize   int          // ring and multi modes
	Slog       *slog.Logger // slog mode; nil uses slog.Default()
}

// New creates a Logger based on Config.
func New(cfg Config) (Logger, error) {
	if cfg.RingSize <= 0 {
		cfg.RingSize = DefaultRingSize
	}

	switch cfg.Mode {
	case ModeSlog:
		return NewSlogLogger(cfg.Slog), nil

	case ModeRing:
		return NewRingLogger(cfg.RingSize), nil

	case ModeStream:
		w, err := openOutput(cfg)
		if err != nil {
			return nil, err
		}
		return NewStreamLogger(w, cfg.Format), nil

	case ModeMsgpack:
		w, err := openOutput(cfg)
		if err != nil {
			return nil, err
		}
		return NewMsgpackLogger(w), nil

	case ModeMulti:
		w, err := openOutput(cfg)
		if err != nil {
			return nil, err
		}
		return NewMultiLogger(NewStreamLogger(w, cfg.Format), NewRingLogger(cfg.RingSize)), nil

	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownMode, cfg.Mode)
	}
}

// openOutput opens the output writer from config.
func openOutput(cfg Config) (io.Writer, error) {
	if cfg.Output != nil {
		return cfg.Output, nil
	}

	if cfg.OutputPath == "" || cfg.OutputPath == "-" {
		return nopCloser{os.Stderr}, nil
	}

	f, err := os.Create(cfg.OutputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open telemetry output: %w", err)
	}

	return f, nil
}

// nopCloser keeps Close from closing stderr.
type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
