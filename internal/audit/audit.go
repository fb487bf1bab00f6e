// Package audit accumulates the outcome of every attempted operation in one
// provisioning cycle and renders a durable human-readable report.
package audit

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ReportFilePattern is the dated report name. Repeated runs on the same
// calendar day overwrite the earlier report.
const ReportFilePattern = "boardsetup-report-%s.log"

// Outcome is one timestamped record of an attempted operation.
type Outcome struct {
	Command   string
	Timestamp time.Time
}

// Log is an ordered record of one executor run plus its run metadata. At most
// one failure can be recorded, because execution halts on the first failure.
type Log struct {
	user      string
	workDir   string
	started   time.Time
	successes []Outcome
	failure   *Outcome
}

// New creates a log scoped to one cycle, stamped with the invoking user and
// working directory.
func New(user, workDir string) *Log {
	return &Log{
		user:      user,
		workDir:   workDir,
		started:   time.Now(),
		successes: make([]Outcome, 0),
	}
}

// RecordSuccess appends a successful operation with its completion time.
func (l *Log) RecordSuccess(command string, at time.Time) {
	l.successes = append(l.successes, Outcome{Command: command, Timestamp: at})
}

// RecordFailure records the single fatal failure of the run. Only the first
// failure is kept; the executor never produces a second one.
func (l *Log) RecordFailure(command string, at time.Time) {
	if l.failure != nil {
		return
	}
	l.failure = &Outcome{Command: command, Timestamp: at}
}

// Successes returns a copy of the recorded successful operations in order.
func (l *Log) Successes() []Outcome {
	out := make([]Outcome, len(l.successes))
	copy(out, l.successes)
	return out
}

// Failure returns the recorded failure, or nil if the run had none.
func (l *Log) Failure() *Outcome {
	if l.failure == nil {
		return nil
	}
	f := *l.failure
	return &f
}

// Reset clears all records so the log can serve the next cycle.
func (l *Log) Reset() {
	l.successes = l.successes[:0]
	l.failure = nil
	l.started = time.Now()
}

// WriteReport renders the accumulated records to a dated file in dir and
// returns the file's path.
func (l *Log) WriteReport(dir string) (string, error) {
	name := fmt.Sprintf(ReportFilePattern, time.Now().Format("2006-01-02"))
	path := filepath.Join(dir, name)

	var b strings.Builder
	b.WriteString("boardsetup provisioning report\n")
	b.WriteString(strings.Repeat("=", 50) + "\n")
	fmt.Fprintf(&b, "Date:              %s\n", l.started.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Invoking user:     %s\n", l.user)
	fmt.Fprintf(&b, "Working directory: %s\n", l.workDir)
	b.WriteString("\n")

	b.WriteString("Completed operations:\n")
	if len(l.successes) == 0 {
		b.WriteString("  (none)\n")
	}
	for _, s := range l.successes {
		fmt.Fprintf(&b, "  [%s] %s\n", s.Timestamp.Format("15:04:05"), s.Command)
	}
	b.WriteString("\n")

	if l.failure != nil {
		b.WriteString("Failed operation:\n")
		fmt.Fprintf(&b, "  [%s] %s\n", l.failure.Timestamp.Format("15:04:05"), l.failure.Command)
	} else {
		b.WriteString("No failures recorded.\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return "", fmt.Errorf("failed to write report '%s': %w", path, err)
	}
	return path, nil
}
