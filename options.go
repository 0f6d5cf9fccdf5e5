package clicktrack

import (
	"fmt"
	"log/slog"
	"time"
)

// Option is a functional option for configuring a Generator.
type Option func(*Generator) error

// WithLogger sets the diagnostics logger. Default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) error {
		if logger == nil {
			return fmt.Errorf("logger must not be nil")
		}
		g.log = logger
		return nil
	}
}

// WithClock sets the time source used to stamp records. Default is time.Now.
func WithClock(clock func() time.Time) Option {
	return func(g *Generator) error {
		if clock == nil {
			return fmt.Errorf("clock must not be nil")
		}
		g.clock = clock
		return nil
	}
}

// WithMaxDepth bounds how deep the resolver walks. Zero means unlimited.
func WithMaxDepth(depth int) Option {
	return func(g *Generator) error {
		if depth < 0 {
			return fmt.Errorf("max depth must not be negative")
		}
		g.resolver.MaxDepth = depth
		return nil
	}
}

// WithSessionIDs sets the generator of per-session identifiers. Default
// produces random UUIDs.
func WithSessionIDs(fn func() string) Option {
	return func(g *Generator) error {
		if fn == nil {
			return fmt.Errorf("session id generator must not be nil")
		}
		g.newSession = fn
		return nil
	}
}
