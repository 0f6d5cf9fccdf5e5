package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grindlemire/clicktrack/pkg/telemetry"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Source != "<defaults>" {
		t.Fatalf("expected default source marker, got %q", cfg.Source)
	}
	if cfg.Telemetry.Mode != "stream" {
		t.Fatalf("unexpected default mode: %q", cfg.Telemetry.Mode)
	}
	if cfg.Telemetry.RingSize != telemetry.DefaultRingSize {
		t.Fatalf("unexpected default ring size: %d", cfg.Telemetry.RingSize)
	}
}

func TestLoadExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestLoadFromFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "clicktrack.toml")
	content := `
[telemetry]
mode = "msgpack"
output = "clicks.msgpack"
ring_size = 16

[logging]
level = "DEBUG"
format = "json"

[tracking]
max_depth = 64
`
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Telemetry.Mode != "msgpack" {
		t.Fatalf("unexpected mode: %q", cfg.Telemetry.Mode)
	}
	if cfg.Telemetry.Format != "text" {
		t.Fatalf("format default not kept: %q", cfg.Telemetry.Format)
	}
	if cfg.Telemetry.RingSize != 16 {
		t.Fatalf("unexpected ring size: %d", cfg.Telemetry.RingSize)
	}
	if cfg.Tracking.MaxDepth != 64 {
		t.Fatalf("unexpected max depth: %d", cfg.Tracking.MaxDepth)
	}
	if cfg.Source != cfgPath {
		t.Fatalf("unexpected source: %q", cfg.Source)
	}

	sink, err := cfg.TelemetrySink()
	if err != nil {
		t.Fatalf("TelemetrySink: %v", err)
	}
	if sink.Mode != telemetry.ModeMsgpack || sink.OutputPath != "clicks.msgpack" || sink.RingSize != 16 {
		t.Fatalf("unexpected sink config: %+v", sink)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	type tc struct {
		content string
		wantErr string
	}

	tests := map[string]tc{
		"unknown mode": {
			content: "[telemetry]\nmode = \"kafka\"\n",
			wantErr: "telemetry.mode",
		},
		"bad format": {
			content: "[telemetry]\nformat = \"xml\"\n",
			wantErr: "telemetry.format",
		},
		"bad level": {
			content: "[logging]\nlevel = \"loud\"\n",
			wantErr: "logging.level",
		},
		"negative depth": {
			content: "[tracking]\nmax_depth = -1\n",
			wantErr: "tracking.max_depth",
		},
		"unknown key": {
			content: "[telemetry]\nmoed = \"ring\"\n",
			wantErr: "unknown keys: telemetry.moed",
		},
		"malformed toml": {
			content: "[telemetry\n",
			wantErr: "decode config file",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "clicktrack.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, err := Load(path)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Load() error = %v, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestNormalizeLogFormat(t *testing.T) {
	for in, want := range map[string]string{"": "text", "JSON": "json", "console": "text"} {
		got, err := NormalizeLogFormat(in)
		if err != nil || got != want {
			t.Errorf("NormalizeLogFormat(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := NormalizeLogFormat("yaml"); err == nil {
		t.Error("NormalizeLogFormat(yaml) expected error")
	}
}
