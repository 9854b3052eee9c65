package logger

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLogWritesMemoryAndFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "run.txt")
	l := New(path)
	l.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

	l.Logf("Ball spawned at x: %.1f, y: %.1f", 10.0, 20.5)
	l.Close()

	want := "[2026-01-02 03:04:05] Ball spawned at x: 10.0, y: 20.5"
	lines := l.Lines()
	if len(lines) != 1 || lines[0] != want {
		t.Fatalf("Expected %q, got %v", want, lines)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Expected log file, got %v", err)
	}
	if strings.TrimSpace(string(data)) != want {
		t.Errorf("Expected file to contain %q, got %q", want, data)
	}
}

func TestLogKeepsRecentLines(t *testing.T) {
	l := New("")
	for i := 0; i < MaxLines+10; i++ {
		l.Logf("line %d", i)
	}

	lines := l.Lines()
	if len(lines) != MaxLines {
		t.Fatalf("Expected %d lines, got %d", MaxLines, len(lines))
	}
	if !strings.HasSuffix(lines[0], "line 10") {
		t.Errorf("Expected oldest kept line to be 10, got %q", lines[0])
	}

	tail := l.Tail(2)
	if len(tail) != 2 || !strings.HasSuffix(tail[1], "line 521") {
		t.Errorf("Expected last two lines, got %v", tail)
	}
	if got := New("").Tail(5); len(got) != 0 {
		t.Errorf("Expected empty tail, got %v", got)
	}
}

// blockingFile records writes and holds every Write until release is closed.
type blockingFile struct {
	release chan struct{}
	buf     bytes.Buffer
	closed  bool
}

func (f *blockingFile) Write(p []byte) (int, error) {
	<-f.release
	return f.buf.Write(p)
}

func (f *blockingFile) Close() error {
	f.closed = true
	return nil
}

func TestLogOpensFileOnceAndNeverWaitsForIt(t *testing.T) {
	file := &blockingFile{release: make(chan struct{})}
	opens := 0
	l := newLogger("run.txt", func(string) (io.WriteCloser, error) {
		opens++
		return file, nil
	})

	// The writer is stuck on the file, so these only return if Log does no file I/O itself.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			l.Logf("Ball auto-spawned at x: %d.0, y: 1.0", i)
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Expected Log to return while the file writer is blocked")
	}
	if got := len(l.Lines()); got != 100 {
		t.Errorf("Expected 100 lines in memory, got %d", got)
	}

	close(file.release)
	l.Close()

	if opens != 1 {
		t.Errorf("Expected the file to be opened once, got %d", opens)
	}
	if !file.closed {
		t.Error("Expected Close to close the file")
	}
	written := strings.Split(strings.TrimSpace(file.buf.String()), "\n")
	if len(written) != 100 || !strings.HasSuffix(written[99], "x: 99.0, y: 1.0") {
		t.Errorf("Expected 100 lines in order in the file, got %d", len(written))
	}
}

func TestLogDropsFileLinesWhenWriterIsBehind(t *testing.T) {
	file := &blockingFile{release: make(chan struct{})}
	l := newLogger("run.txt", func(string) (io.WriteCloser, error) { return file, nil })

	const extra = 500
	for i := 0; i < queueSize+extra; i++ {
		l.Log(fmt.Sprintf("line %d", i))
	}
	// the writer may have buffered a few lines before blocking, the queue holds queueSize more
	if got := l.Dropped(); got == 0 || got >= extra {
		t.Errorf("Expected between 1 and %d dropped lines, got %d", extra-1, got)
	}

	close(file.release)
	l.Close()
	l.Close()
	l.Log("after close")
	if tail := l.Tail(1); !strings.HasSuffix(tail[0], "after close") {
		t.Errorf("Expected lines after Close to stay in memory, got %v", tail)
	}
}

func TestLogOpenFailureKeepsMemory(t *testing.T) {
	l := newLogger("run.txt", func(string) (io.WriteCloser, error) {
		return nil, errors.New("read-only")
	})
	l.Log("hello")
	l.Close()
	if lines := l.Lines(); len(lines) != 1 {
		t.Errorf("Expected the line in memory, got %v", lines)
	}
	if err := l.Err(); err == nil || !strings.Contains(err.Error(), "read-only") {
		t.Errorf("Expected the open error to be reported, got %v", err)
	}
}
