// Package logger collects console output: lines are kept in memory for the
// terminal history and appended to a log file on disk.
package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// LogFilePath is the path to the sandbox log file, relative to the working
// directory (project root when run via go run ./cmd/sandbox).
const LogFilePath = "logs/sandbox.txt"

// Logger stores timestamped lines in memory and streams them to the log
// file. The file is opened once and held for the process lifetime; logging
// happens every console interaction, so no per-line open/close.
type Logger struct {
	mu    sync.Mutex
	lines []string
	file  *os.File
}

// New returns a Logger appending to LogFilePath, creating the logs directory
// as needed. If the file cannot be opened, logging still works in memory.
func New() *Logger {
	_ = os.MkdirAll(filepath.Dir(LogFilePath), 0755)
	f, err := os.OpenFile(LogFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		f = nil
	}
	return &Logger{file: f}
}

// Log appends a line to the history and the log file, prefixed with a
// [timestamp].
func (l *Logger) Log(line string) {
	stamped := "[" + time.Now().Format("2006-01-02 15:04:05") + "] " + line

	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, stamped)
	if l.file != nil {
		_, _ = l.file.WriteString(stamped + "\n")
	}
}

// Logf formats and logs a line.
func (l *Logger) Logf(format string, args ...any) {
	l.Log(fmt.Sprintf(format, args...))
}

// Lines returns a copy of all stored lines.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// Close flushes and closes the log file. Further Log calls keep the in-memory
// history only.
func (l *Logger) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		_ = l.file.Close()
		l.file = nil
	}
}
