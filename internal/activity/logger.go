// Package activity records a human-readable line for each catalog access.
package activity

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Logger is the activity logging contract. Implementations must be safe for
// concurrent use.
type Logger interface {
	Log(message string)
}

// ConsoleLogger writes one timestamped line per call to an output stream.
type ConsoleLogger struct {
	out io.Writer
	now func() time.Time
}

// NewConsoleLogger creates a logger writing to out, typically os.Stdout.
func NewConsoleLogger(out io.Writer) *ConsoleLogger {
	return &ConsoleLogger{out: out, now: time.Now}
}

func (l *ConsoleLogger) Log(message string) {
	fmt.Fprintf(l.out, "%s %s\n", l.now().Format(time.RFC3339), message)
}

// Recorder captures logged messages for test assertions.
type Recorder struct {
	mu       sync.Mutex
	messages []string
}

func (r *Recorder) Log(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, message)
}

// Messages returns a copy of everything logged so far.
func (r *Recorder) Messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.messages...)
}
