package telemetry

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// wireRecord is the msgpack shape of a Record.
type wireRecord struct {
	TimeUnixNano int64      `msgpack:"t"`
	Seq          uint64     `msgpack:"seq"`
	Session      string     `msgpack:"session,omitempty"`
	Name         string     `msgpack:"name"`
	Attrs        []wireAttr `msgpack:"attrs,omitempty"`
}

type wireAttr struct {
	Key  string   `msgpack:"k"`
	Kind AttrKind `msgpack:"kind"`
	Int  int64    `msgpack:"i,omitempty"`
	Str  string   `msgpack:"s,omitempty"`
}

func toWire(rec Record) wireRecord {
	w := wireRecord{
		Seq:     rec.Seq,
		Session: rec.Session,
		Name:    rec.Name,
	}
	if !rec.Time.IsZero() {
		w.TimeUnixNano = rec.Time.UnixNano()
	}
	for _, a := range rec.Attrs {
		w.Attrs = append(w.Attrs, wireAttr(a))
	}
	return w
}

func fromWire(w wireRecord) Record {
	rec := Record{
		Seq:     w.Seq,
		Session: w.Session,
		Name:    w.Name,
	}
	if w.TimeUnixNano != 0 {
		rec.Time = time.Unix(0, w.TimeUnixNano).UTC()
	}
	for _, a := range w.Attrs {
		rec.Attrs = append(rec.Attrs, Attr(a))
	}
	return rec
}

// MsgpackLogger writes records as a stream of msgpack values.
type MsgpackLogger struct {
	mu  sync.Mutex
	w   io.Writer
	enc *msgpack.Encoder
	err error
}

// NewMsgpackLogger creates a MsgpackLogger writing to w.
func NewMsgpackLogger(w io.Writer) *MsgpackLogger {
	return &MsgpackLogger{w: w, enc: msgpack.NewEncoder(w)}
}

// Emit encodes the record. Encode errors are kept for Flush.
func (l *MsgpackLogger) Emit(rec Record) {
	stamp(&rec)
	wire := toWire(rec)

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.enc.Encode(&wire); err != nil && l.err == nil {
		l.err = fmt.Errorf("encode telemetry record: %w", err)
	}
}

// Flush reports the first encode error and flushes the writer if it buffers.
func (l *MsgpackLogger) Flush() error {
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
func (l *MsgpackLogger) Close() error {
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

// DecodeMsgpack reads every record from a stream written by MsgpackLogger.
func DecodeMsgpack(r io.Reader) ([]Record, error) {
	dec := msgpack.NewDecoder(r)

	var out []Record
	for {
		var wire wireRecord
		if err := dec.Decode(&wire); err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			return out, fmt.Errorf("decode telemetry record %d: %w", len(out), err)
		}
		out = append(out, fromWire(wire))
	}
}
