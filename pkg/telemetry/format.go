package telemetry

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Format represents the output format for stream records.
type Format uint8

const (
	FormatText   Format = iota // human-readable text
	FormatNDJSON               // newline-delimited JSON
)

// String returns the string representation of Format.
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatNDJSON:
		return "ndjson"
	default:
		return "unknown"
	}
}

// ParseFormat converts a string to Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return FormatText, nil
	case "ndjson", "json":
		return FormatNDJSON, nil
	default:
		return FormatText, fmt.Errorf("invalid telemetry format: %q (expected: text|ndjson)", s)
	}
}

const timeLayout = "2006-01-02T15:04:05.000000Z07:00"

// FormatRecord formats a record according to the specified format.
func FormatRecord(rec Record, format Format) []byte {
	switch format {
	case FormatNDJSON:
		return formatNDJSON(rec)
	default:
		return formatText(rec)
	}
}

type jsonRecord struct {
	Time    string         `json:"time"`
	Seq     uint64         `json:"seq"`
	Session string         `json:"session,omitempty"`
	Name    string         `json:"name"`
	Attrs   map[string]any `json:"attrs,omitempty"`
}

// formatNDJSON formats a record as newline-delimited JSON.
func formatNDJSON(rec Record) []byte {
	j := jsonRecord{
		Time:    rec.Time.UTC().Format(timeLayout),
		Seq:     rec.Seq,
		Session: rec.Session,
		Name:    rec.Name,
	}
	if len(rec.Attrs) > 0 {
		j.Attrs = make(map[string]any, len(rec.Attrs))
		for _, a := range rec.Attrs {
			j.Attrs[a.Key] = a.Value()
		}
	}

	data, _ := json.Marshal(j)
	data = append(data, '\n')
	return data
}

// formatText formats a record as a single human-readable line.
// Format: [seq] name key=value key=value
func formatText(rec Record) []byte {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("[%6d] ", rec.Seq))
	if !rec.Time.IsZero() {
		sb.WriteString(rec.Time.UTC().Format(time.TimeOnly))
		sb.WriteByte(' ')
	}
	sb.WriteString(rec.Name)

	for _, a := range rec.Attrs {
		sb.WriteByte(' ')
		sb.WriteString(a.Key)
		sb.WriteByte('=')
		if a.Kind == AttrInt {
			sb.WriteString(strconv.FormatInt(a.Int, 10))
		} else {
			sb.WriteString(strconv.Quote(a.Str))
		}
	}

	sb.WriteByte('\n')
	return []byte(sb.String())
}
