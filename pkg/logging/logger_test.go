package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/grindlemire/clicktrack/pkg/config"
)

func TestNewJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Level: "debug", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.Debug("hello", "node", 3)

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("decode %q: %v", buf.String(), err)
	}
	if line["msg"] != "hello" {
		t.Fatalf("msg = %v", line["msg"])
	}
	if line["node"] != float64(3) {
		t.Fatalf("node = %v", line["node"])
	}
	ts, ok := line["time"].(string)
	if !ok || !strings.HasSuffix(ts, "Z") {
		t.Fatalf("time not rendered as UTC RFC3339: %v", line["time"])
	}
}

func TestNewFiltersByLevel(t *testing.T) {
	type tc struct {
		level string
		want  bool
	}

	tests := map[string]tc{
		"info drops debug":  {level: "info", want: false},
		"debug keeps debug": {level: "debug", want: true},
		"empty means info":  {level: "", want: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			log, err := New(Options{Level: tt.level, Format: "text", Output: &buf})
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			log.Debug("probe")
			if got := strings.Contains(buf.String(), "probe"); got != tt.want {
				t.Fatalf("debug line written = %v, want %v (%q)", got, tt.want, buf.String())
			}
		})
	}
}

func TestNewRejectsBadOptions(t *testing.T) {
	if _, err := New(Options{Level: "chatty"}); err == nil {
		t.Fatal("expected error for unknown level")
	}
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestFromConfig(t *testing.T) {
	var buf bytes.Buffer
	log, err := FromConfig(config.Default().Logging, &buf)
	if err != nil {
		t.Fatalf("FromConfig: %v", err)
	}
	log.Info("ready")
	if !strings.Contains(buf.String(), "msg=ready") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}
