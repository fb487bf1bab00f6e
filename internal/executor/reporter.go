package executor

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/boardsetup-cli/boardsetup/internal/plan"
)

var (
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")) // Green

	failureStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")) // Red

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // Grey
)

// Reporter receives execution progress events.
type Reporter interface {
	ReportStart(totalOperations int)
	ReportNothingToDo()
	ReportOperationStart(op plan.Operation, index int)
	ReportOperationSuccess(outcome Outcome, index int)
	ReportOperationFailure(outcome Outcome, index int)
	ReportComplete(result Result)
}

// ConsoleReporter implements Reporter for console output
type ConsoleReporter struct {
	writer  io.Writer
	verbose bool
}

// NewConsoleReporter creates a new console reporter
func NewConsoleReporter(writer io.Writer, verbose bool) *ConsoleReporter {
	return &ConsoleReporter{
		writer:  writer,
		verbose: verbose,
	}
}

// ReportStart reports the beginning of a run
func (r *ConsoleReporter) ReportStart(totalOperations int) {
	fmt.Fprintf(r.writer, "Running %d operation(s)\n\n", totalOperations)
}

// ReportNothingToDo reports an empty plan: every precheck was already satisfied
func (r *ConsoleReporter) ReportNothingToDo() {
	fmt.Fprintf(r.writer, "Nothing to do, system already configured\n")
}

// ReportOperationStart reports when an operation starts executing
func (r *ConsoleReporter) ReportOperationStart(op plan.Operation, index int) {
	fmt.Fprintf(r.writer, "[%d] %s\n", index+1, dimStyle.Render(op.CommandLine()))
}

// ReportOperationSuccess reports successful operation completion
func (r *ConsoleReporter) ReportOperationSuccess(outcome Outcome, index int) {
	fmt.Fprintf(r.writer, "[%d] %s '%s' (%s)\n",
		index+1, successStyle.Render("✓"), outcome.Operation.Name, formatDuration(outcome.Duration))

	if r.verbose && outcome.Output != "" {
		lines := strings.Split(outcome.Output, "\n")
		if len(lines) > 3 {
			for i := 0; i < 3; i++ {
				fmt.Fprintf(r.writer, "    %s\n", lines[i])
			}
			fmt.Fprintf(r.writer, "    ... (%d more lines)\n", len(lines)-3)
		} else {
			for _, line := range lines {
				fmt.Fprintf(r.writer, "    %s\n", line)
			}
		}
	}
}

// ReportOperationFailure reports the fatal operation failure
func (r *ConsoleReporter) ReportOperationFailure(outcome Outcome, index int) {
	fmt.Fprintf(r.writer, "[%d] %s '%s' failed (%s)\n",
		index+1, failureStyle.Render("✗"), outcome.Operation.Name, formatDuration(outcome.Duration))
	fmt.Fprintf(r.writer, "    Command: %s\n", outcome.Operation.CommandLine())
	fmt.Fprintf(r.writer, "    Exit code: %d\n", outcome.ExitCode)
	if outcome.Output != "" {
		fmt.Fprintf(r.writer, "    Output: %s\n", outcome.Output)
	}
}

// ReportComplete reports overall run completion
func (r *ConsoleReporter) ReportComplete(result Result) {
	fmt.Fprintln(r.writer)
	fmt.Fprintf(r.writer, "%s All operations completed successfully (%d/%d)\n",
		successStyle.Render("✓"), result.SuccessCount(), len(result.Outcomes))

	if r.verbose {
		totalDuration := time.Duration(0)
		for _, o := range result.Outcomes {
			totalDuration += o.Duration
		}
		fmt.Fprintf(r.writer, "Total execution time: %s\n", formatDuration(totalDuration))
	}
}

// formatDuration formats a duration for human-readable output
func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%.2fμs", float64(d.Nanoseconds())/1000.0)
	} else if d < time.Second {
		return fmt.Sprintf("%.0fms", float64(d.Nanoseconds())/1000000.0)
	} else if d < time.Minute {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	return fmt.Sprintf("%.1fm", d.Minutes())
}
