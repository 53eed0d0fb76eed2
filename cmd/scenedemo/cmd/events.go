package cmd

import (
	"strings"
	"sync"
)

// eventLog keeps the most recent lines written to it.
type eventLog struct {
	mu    sync.Mutex
	max   int
	lines []string
	part  string
}

func newEventLog(max int) *eventLog {
	return &eventLog{max: max}
}

// Write implements io.Writer. Lines are split on newlines; a trailing
// partial line is held until completed.
func (l *eventLog) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	text := l.part + string(p)
	parts := strings.Split(text, "\n")
	l.part = parts[len(parts)-1]
	for _, line := range parts[:len(parts)-1] {
		if line = strings.TrimRight(line, "\r"); line != "" {
			l.lines = append(l.lines, line)
		}
	}
	if over := len(l.lines) - l.max; over > 0 {
		l.lines = append([]string(nil), l.lines[over:]...)
	}
	return len(p), nil
}

// Lines returns the retained lines, oldest first.
func (l *eventLog) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.lines...)
}
