package executor

import (
	"context"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/boardsetup-cli/boardsetup/internal/plan"
)

type Executor struct {
	reporter Reporter
	verbose  bool
}

// New creates an executor reporting through reporter. A nil reporter falls
// back to a console reporter on stdout.
func New(reporter Reporter, verbose bool) *Executor {
	if reporter == nil {
		reporter = NewConsoleReporter(os.Stdout, verbose)
	}
	return &Executor{reporter: reporter, verbose: verbose}
}

// Run executes the plan's operations in insertion order, stopping at the
// first failure. The returned Result holds one Outcome per attempted
// operation; the error is non-nil exactly when an operation failed (an
// *OperationError) or the context was cancelled between operations. A
// cancellation never interrupts an in-flight command: killing a
// package-manager transaction mid-flight leaves the system half-applied, so
// the plan stops only at the next operation boundary. An empty plan succeeds
// trivially: when every precheck is already satisfied there is nothing to do.
func (e *Executor) Run(ctx context.Context, p *plan.Plan) (Result, error) {
	ops := p.Operations()
	result := Result{
		State:    StateReady,
		Outcomes: make([]Outcome, 0, len(ops)),
	}

	if len(ops) == 0 {
		result.State = StateSuccess
		e.reporter.ReportNothingToDo()
		return result, nil
	}

	e.reporter.ReportStart(len(ops))
	result.State = StateRunning

	for i, op := range ops {
		select {
		case <-ctx.Done():
			result.State = StateFailed
			return result, ctx.Err()
		default:
		}

		e.reporter.ReportOperationStart(op, i)

		outcome := e.runOperation(op)
		result.Outcomes = append(result.Outcomes, outcome)

		if !outcome.Success {
			result.State = StateFailed
			e.reporter.ReportOperationFailure(outcome, i)
			return result, &OperationError{
				Name:          op.Name,
				CommandLine:   op.CommandLine(),
				ExitCode:      outcome.ExitCode,
				Output:        outcome.Output,
				OriginalError: outcome.err,
			}
		}

		e.reporter.ReportOperationSuccess(outcome, i)
	}

	result.State = StateSuccess
	e.reporter.ReportComplete(result)
	return result, nil
}

// runOperation always lets the command run to completion. Cancellation is
// checked by Run between operations only.
func (e *Executor) runOperation(op plan.Operation) Outcome {
	start := time.Now()

	cmd := exec.Command(op.Program, op.Args...)
	output, err := cmd.CombinedOutput()

	outcome := Outcome{
		Operation: op,
		Output:    strings.TrimSpace(string(output)),
		Timestamp: time.Now(),
		Duration:  time.Since(start),
	}

	if err != nil {
		outcome.Success = false
		outcome.err = err
		if exitError, ok := err.(*exec.ExitError); ok {
			outcome.ExitCode = exitError.ExitCode()
		} else {
			outcome.ExitCode = -1
		}
		return outcome
	}

	outcome.Success = true
	outcome.ExitCode = 0
	return outcome
}
