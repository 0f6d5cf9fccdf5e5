package telemetry

import (
	"io"
	"sync"
)

// RingLogger keeps the last N records in memory (circular buffer).
type RingLogger struct {
	mu       sync.RWMutex
	records  []Record
	capacity int
	head     int  // next write position
	full     bool // has wrapped around
}

// NewRingLogger creates a new RingLogger with the given capacity.
func NewRingLogger(capacity int) *RingLogger {
	if capacity <= 0 {
		capacity = DefaultRingSize
	}

	return &RingLogger{
		records:  make([]Record, capacity),
		capacity: capacity,
	}
}

// Emit adds a record to the ring buffer.
func (l *RingLogger) Emit(rec Record) {
	stamp(&rec)
	if len(rec.Attrs) > 0 {
		rec.Attrs = append([]Attr(nil), rec.Attrs...)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.records[l.head] = rec
	l.head = (l.head + 1) % l.capacity
	if l.head == 0 {
		l.full = true
	}
}

// Len returns the number of records currently held.
func (l *RingLogger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.full {
		return l.capacity
	}
	return l.head
}

// Snapshot returns a copy of all stored records in emission order.
func (l *RingLogger) Snapshot() []Record {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if !l.full {
		result := make([]Record, l.head)
		copy(result, l.records[:l.head])
		return result
	}

	result := make([]Record, l.capacity)
	copy(result, l.records[l.head:])
	copy(result[l.capacity-l.head:], l.records[:l.head])
	return result
}

// Reset drops all stored records.
func (l *RingLogger) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()

	clear(l.records)
	l.head = 0
	l.full = false
}

// Dump writes all records to w in the given format.
func (l *RingLogger) Dump(w io.Writer, format Format) error {
	for _, rec := range l.Snapshot() {
		if _, err := w.Write(FormatRecord(rec, format)); err != nil {
			return err
		}
	}
	return nil
}

// Flush is a no-op since everything is in memory.
func (l *RingLogger) Flush() error {
	return nil
}

// Close is a no-op.
func (l *RingLogger) Close() error {
	return nil
}
