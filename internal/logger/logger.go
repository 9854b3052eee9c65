package logger

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DefaultPath is the log file used when none is configured, relative to the working directory.
const DefaultPath = "logs/playground.txt"

// MaxLines is how many recent lines are kept in memory for the console.
const MaxLines = 512

// queueSize is how many lines may wait for the file writer before new ones skip the file.
const queueSize = 1024

// Logger keeps recent lines in memory (drawn by the console) and appends every line to a file.
// The file is opened once by New and written by its own goroutine through a buffered handle, so
// Log never touches the disk. An empty path keeps lines in memory only. Safe for concurrent use;
// Close flushes the file.
type Logger struct {
	mu      sync.Mutex
	lines   []string
	now     func() time.Time
	queue   chan string
	done    chan struct{}
	closed  bool
	dropped int
	err     error
}

// New returns a Logger appending to path, creating its directory if needed. If the file cannot
// be opened the logger keeps lines in memory only and Err reports why.
func New(path string) *Logger {
	return newLogger(path, func(path string) (io.WriteCloser, error) {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, err
		}
		return f, nil
	})
}

func newLogger(path string, open func(string) (io.WriteCloser, error)) *Logger {
	l := &Logger{lines: make([]string, 0, 64), now: time.Now}
	if path == "" {
		return l
	}
	f, err := open(path)
	if err != nil {
		l.err = fmt.Errorf("open log %s: %w", path, err)
		return l
	}
	l.queue = make(chan string, queueSize)
	l.done = make(chan struct{})
	go l.write(f)
	return l
}

// Err returns the error that kept the log file from opening, or nil.
func (l *Logger) Err() error {
	return l.err
}

// write drains the queue into f, flushing whenever the queue runs empty.
func (l *Logger) write(f io.WriteCloser) {
	defer close(l.done)

	w := bufio.NewWriter(f)
	for line := range l.queue {
		_, _ = w.WriteString(line)
		_ = w.WriteByte('\n')
		if len(l.queue) == 0 {
			_ = w.Flush()
		}
	}
	_ = w.Flush()
	_ = f.Close()
}

// Log appends a line prefixed with [timestamp] to memory and queues it for the log file. When the
// file writer falls queueSize lines behind, the line is kept in memory only.
func (l *Logger) Log(line string) {
	stamped := "[" + l.now().Format("2006-01-02 15:04:05") + "] " + line

	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.lines) == MaxLines {
		copy(l.lines, l.lines[1:])
		l.lines = l.lines[:MaxLines-1]
	}
	l.lines = append(l.lines, stamped)

	if l.queue == nil || l.closed {
		return
	}
	select {
	case l.queue <- stamped:
	default:
		l.dropped++
	}
}

// Dropped returns how many lines skipped the file because the writer was behind.
func (l *Logger) Dropped() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.dropped
}

// Close writes out every queued line and closes the file. Lines logged afterwards stay in
// memory only. Calling Close more than once is fine.
func (l *Logger) Close() {
	l.mu.Lock()
	if l.queue == nil || l.closed {
		l.mu.Unlock()
		return
	}
	l.closed = true
	close(l.queue)
	l.mu.Unlock()
	<-l.done
}

// Logf formats according to format and logs the result.
func (l *Logger) Logf(format string, args ...any) {
	l.Log(fmt.Sprintf(format, args...))
}

// Lines returns a copy of the stored lines, oldest first.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// Tail returns up to n of the most recent lines, oldest first.
func (l *Logger) Tail(n int) []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	start := max(0, len(l.lines)-n)
	out := make([]string, len(l.lines)-start)
	copy(out, l.lines[start:])
	return out
}
