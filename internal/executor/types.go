package executor

import (
	"time"

	"github.com/boardsetup-cli/boardsetup/internal/plan"
)

type State int

const (
	StateReady State = iota
	StateRunning
	StateSuccess
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateRunning:
		return "running"
	case StateSuccess:
		return "success"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome records one attempted operation. Timestamp is the completion time
// used by the audit report.
type Outcome struct {
	Operation plan.Operation
	Success   bool
	ExitCode  int
	Output    string
	Timestamp time.Time
	Duration  time.Duration

	err error
}

// Err returns the underlying execution error for a failed outcome.
func (o Outcome) Err() error {
	return o.err
}

// Result is the observable outcome of one Run. Outcomes are in execution
// order; at most the final outcome can be a failure, and operations after it
// were never attempted.
type Result struct {
	State    State
	Outcomes []Outcome
}

// SuccessCount returns the number of successful outcomes.
func (r Result) SuccessCount() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Success {
			n++
		}
	}
	return n
}

// Failed returns the failing outcome, or nil when the run succeeded.
func (r Result) Failed() *Outcome {
	for i := range r.Outcomes {
		if !r.Outcomes[i].Success {
			return &r.Outcomes[i]
		}
	}
	return nil
}
