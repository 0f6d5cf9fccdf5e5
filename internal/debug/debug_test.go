package debug

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriterDiscardsWhenDisabled(t *testing.T) {
	if err := Init(""); err != nil {
		t.Fatalf("Init: %v", err)
	}
	n, err := Writer().Write([]byte("dropped"))
	if err != nil || n != len("dropped") {
		t.Fatalf("Write = %d, %v", n, err)
	}
	var buf bytes.Buffer
	if Tee(&buf) != &buf {
		t.Fatal("Tee should return the writer unchanged when disabled")
	}
}

func TestInitFromEnvAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "debug.log")
	t.Setenv(EnvVar, path)
	if err := InitFromEnv(); err != nil {
		t.Fatalf("InitFromEnv: %v", err)
	}
	defer Close()

	if !Enabled() {
		t.Fatal("expected debug output to be enabled")
	}
	var buf bytes.Buffer
	if _, err := Tee(&buf).Write([]byte("line\n")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(data), "line") || buf.String() != "line\n" {
		t.Fatalf("file=%q buf=%q", data, buf.String())
	}
}
