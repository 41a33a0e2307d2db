// ABOUTME: File-backed logger for the storefront TUI
// ABOUTME: Keeps background failures out of the alt-screen display

// Package debuglog appends timestamped records to debug.log under the
// seed-store config directory. The TUI owns the terminal, so anything
// worth recording while it runs goes here instead of stderr.
package debuglog

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const fileName = "debug.log"

var (
	mu      sync.Mutex
	logFile *os.File
)

// Init opens the log file under configDir, creating the directory when
// needed. An empty configDir disables logging entirely.
func Init(configDir string) error {
	mu.Lock()
	defer mu.Unlock()

	if configDir == "" {
		return nil
	}
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return err
	}

	f, err := os.OpenFile(filepath.Join(configDir, fileName), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return err
	}
	logFile = f
	return nil
}

// Close releases the log file. Safe to call when Init failed or never ran.
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

// Log appends one formatted record. A disabled logger drops it silently.
func Log(format string, args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()

	if logFile == nil {
		return
	}
	fmt.Fprintf(logFile, "[%s] %s\n",
		time.Now().Format("2006-01-02 15:04:05"), fmt.Sprintf(format, args...))
}

// Error records a failed operation by name. A nil error is ignored so
// callers can pass results through unguarded.
func Error(op string, err error) {
	if err == nil {
		return
	}
	Log("ERROR [%s]: %v", op, err)
}
