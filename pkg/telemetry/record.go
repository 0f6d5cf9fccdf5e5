package telemetry

import (
	"sync/atomic"
	"time"
)

// AttrKind identifies the value type held by an Attr.
type AttrKind uint8

const (
	// AttrInt marks an int64 attribute.
	AttrInt AttrKind = iota + 1
	// AttrString marks a string attribute.
	AttrString
)

// String returns the string representation of AttrKind.
func (k AttrKind) String() string {
	switch k {
	case AttrInt:
		return "int"
	case AttrString:
		return "string"
	default:
		return "unknown"
	}
}

// Attr is a single typed key/value pair on a Record.
type Attr struct {
	Key  string
	Kind AttrKind
	Int  int64
	Str  string
}

// Int creates an integer attribute.
func Int(key string, v int64) Attr {
	return Attr{Key: key, Kind: AttrInt, Int: v}
}

// String creates a string attribute.
func String(key, v string) Attr {
	return Attr{Key: key, Kind: AttrString, Str: v}
}

// Value returns the attribute value as an untyped interface.
func (a Attr) Value() any {
	if a.Kind == AttrInt {
		return a.Int
	}
	return a.Str
}

// Record is one telemetry event.
type Record struct {
	Time    time.Time // wall-clock timestamp
	Seq     uint64    // assigned by the first sink that sees the record
	Session string    // tracking session identifier
	Name    string    // event name, e.g. "app.screen.click"
	Attrs   []Attr
}

// Attr returns the attribute with the given key.
func (r Record) Attr(key string) (Attr, bool) {
	for _, a := range r.Attrs {
		if a.Key == key {
			return a, true
		}
	}
	return Attr{}, false
}

// IntAttr returns the integer attribute with the given key.
func (r Record) IntAttr(key string) (int64, bool) {
	a, ok := r.Attr(key)
	if !ok || a.Kind != AttrInt {
		return 0, false
	}
	return a.Int, true
}

// StringAttr returns the string attribute with the given key.
func (r Record) StringAttr(key string) (string, bool) {
	a, ok := r.Attr(key)
	if !ok || a.Kind != AttrString {
		return "", false
	}
	return a.Str, true
}

var seqCounter atomic.Uint64

// NextSeq returns a monotonically increasing sequence number.
func NextSeq() uint64 {
	return seqCounter.Add(1)
}

// stamp assigns a sequence number to records that do not have one yet.
func stamp(rec *Record) {
	if rec.Seq == 0 {
		rec.Seq = NextSeq()
	}
}
