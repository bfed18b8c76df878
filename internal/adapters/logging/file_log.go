package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/ghalamif/PacketFlow/internal/ports"
)

// FileLog appends timestamped lines to a single text file. Every failure is
// swallowed: an unavailable log file must never affect pipeline correctness.
type FileLog struct {
	mu   sync.Mutex
	file *os.File
}

func NewFileLog(path string) *FileLog {
	if dir := filepath.Dir(path); dir != "." {
		_ = os.MkdirAll(dir, 0o755)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return &FileLog{}
	}
	return &FileLog{file: f}
}

func (l *FileLog) Append(line string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return
	}
	_, _ = fmt.Fprintf(l.file, "%s %s\n", time.Now().Format(time.RFC3339), line)
}

func (l *FileLog) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

var _ ports.EventLog = (*FileLog)(nil)
