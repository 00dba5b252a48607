// Package eventlog records completion events from the execution units.
package eventlog

import (
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/ezrec/minisys/internal/logging"
)

// Log is an append-only record of event lines. Many threads may attach to
// the same Log; their lines are kept in arrival order.
type Log struct {
	Logger *slog.Logger // Mirror of every record, at debug level.

	mutex sync.Mutex
	text  strings.Builder
	lines []string
}

// NewLog creates an empty log.
func NewLog(logger *slog.Logger) *Log {
	return &Log{Logger: logging.OrDiscard(logger)}
}

// Update appends message as a new line.
func (l *Log) Update(message string) {
	l.mutex.Lock()
	l.lines = append(l.lines, message)
	l.text.WriteString(message)
	l.text.WriteString("\n")
	l.mutex.Unlock()

	if l.Logger != nil {
		l.Logger.Debug("eventlog: update", "message", message)
	}
}

// Lines returns the recorded lines, without terminators.
func (l *Log) Lines() []string {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	return slices.Clone(l.lines)
}

// Text returns the whole log, one terminated line per record.
func (l *Log) Text() string {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	return l.text.String()
}

func (l *Log) String() string {
	return "SystemEventLog{\nlog='\n" + l.Text() + "'}"
}
