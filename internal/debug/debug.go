// Package debug provides optional file-based debug logging.
//
// When the CLICKTRACK_DEBUG environment variable is set to a file path, debug
// output is appended to that file. Otherwise, writes are discarded.
package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
)

// EnvVar names the environment variable holding the debug log path.
const EnvVar = "CLICKTRACK_DEBUG"

var (
	logFile *os.File
	mu      sync.Mutex
)

// Init opens path for appending. An empty path disables debug output.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	if path == "" {
		return nil
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create debug log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}
	logFile = f
	return nil
}

// InitFromEnv calls Init with the value of CLICKTRACK_DEBUG.
func InitFromEnv() error {
	return Init(os.Getenv(EnvVar))
}

// Enabled reports whether a debug file is open.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return logFile != nil
}

// Close closes the debug log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

type writer struct{}

func (writer) Write(p []byte) (int, error) {
	mu.Lock()
	defer mu.Unlock()

	if logFile == nil {
		return len(p), nil
	}
	return logFile.Write(p)
}

// Writer returns an io.Writer that appends to the debug file when one is
// open and discards otherwise.
func Writer() io.Writer {
	return writer{}
}

// Tee returns w combined with the debug writer when debug output is enabled.
func Tee(w io.Writer) io.Writer {
	if !Enabled() {
		return w
	}
	return io.MultiWriter(w, Writer())
}
