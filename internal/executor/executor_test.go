package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/boardsetup-cli/boardsetup/internal/plan"
)

func TestState_String(t *testing.T) {
	tests := []struct {
		state    State
		expected string
	}{
		{StateReady, "ready"},
		{StateRunning, "running"},
		{StateSuccess, "success"},
		{StateFailed, "failed"},
		{State(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.state.String(); got != tt.expected {
				t.Errorf("State.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestExecutor_Run_AllSuccess(t *testing.T) {
	var buf bytes.Buffer
	exec := New(NewConsoleReporter(&buf, false), false)

	p := plan.New()
	p.Append(
		plan.Shell("one", "exit 0"),
		plan.Shell("two", "exit 0"),
		plan.Shell("three", "exit 0"),
	)

	result, err := exec.Run(context.Background(), p)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if result.State != StateSuccess {
		t.Errorf("expected state success, got %v", result.State)
	}
	if len(result.Outcomes) != 3 {
		t.Fatalf("expected 3 outcomes, got %d", len(result.Outcomes))
	}
	if result.SuccessCount() != 3 {
		t.Errorf("expected 3 successes, got %d", result.SuccessCount())
	}
	if result.Failed() != nil {
		t.Error("expected no failed outcome")
	}
	for i, outcome := range result.Outcomes {
		if !outcome.Success || outcome.ExitCode != 0 {
			t.Errorf("outcome %d: expected success with exit 0, got success=%v exit=%d",
				i, outcome.Success, outcome.ExitCode)
		}
	}
}

func TestExecutor_Run_FailFast(t *testing.T) {
	var buf bytes.Buffer
	exec := New(NewConsoleReporter(&buf, false), false)

	p := plan.New()
	p.Append(
		plan.Shell("ok", "exit 0"),
		plan.Shell("boom", "exit 3"),
		plan.Shell("never-runs", "exit 0"),
	)

	result, err := exec.Run(context.Background(), p)
	if err == nil {
		t.Fatal("expected error for failing plan, got nil")
	}

	var opErr *OperationError
	if !errors.As(err, &opErr) {
		t.Fatalf("expected *OperationError, got %T", err)
	}
	if opErr.Name != "boom" {
		t.Errorf("expected failing operation 'boom', got %q", opErr.Name)
	}
	if opErr.ExitCode != 3 {
		t.Errorf("expected exit code 3, got %d", opErr.ExitCode)
	}

	if result.State != StateFailed {
		t.Errorf("expected state failed, got %v", result.State)
	}
	// Exactly k-1 successes, one failure, nothing after the failure.
	if len(result.Outcomes) != 2 {
		t.Fatalf("expected 2 outcomes (operations after the failure never run), got %d", len(result.Outcomes))
	}
	if result.SuccessCount() != 1 {
		t.Errorf("expected 1 success before the failure, got %d", result.SuccessCount())
	}
	failed := result.Failed()
	if failed == nil {
		t.Fatal("expected a failed outcome")
	}
	if failed.Operation.Name != "boom" {
		t.Errorf("expected failed outcome for 'boom', got %q", failed.Operation.Name)
	}

	if !strings.Contains(buf.String(), "Exit code: 3") {
		t.Errorf("reporter output missing exit code:\n%s", buf.String())
	}
}

func TestExecutor_Run_FirstOperationFails(t *testing.T) {
	exec := New(NewConsoleReporter(&bytes.Buffer{}, false), false)

	p := plan.New()
	p.Append(
		plan.Shell("boom", "exit 1"),
		plan.Shell("never-runs", "exit 0"),
	)

	result, err := exec.Run(context.Background(), p)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if len(result.Outcomes) != 1 {
		t.Errorf("expected exactly 1 outcome, got %d", len(result.Outcomes))
	}
	if result.SuccessCount() != 0 {
		t.Errorf("expected 0 successes, got %d", result.SuccessCount())
	}
}

func TestExecutor_Run_EmptyPlan(t *testing.T) {
	var buf bytes.Buffer
	exec := New(NewConsoleReporter(&buf, false), false)

	result, err := exec.Run(context.Background(), plan.New())
	if err != nil {
		t.Fatalf("expected empty plan to succeed, got: %v", err)
	}
	if result.State != StateSuccess {
		t.Errorf("expected state success, got %v", result.State)
	}
	if len(result.Outcomes) != 0 {
		t.Errorf("expected no outcomes, got %d", len(result.Outcomes))
	}
	if !strings.Contains(buf.String(), "Nothing to do") {
		t.Errorf("expected 'Nothing to do' notice, got:\n%s", buf.String())
	}
}

func TestExecutor_Run_CapturesOutput(t *testing.T) {
	exec := New(NewConsoleReporter(&bytes.Buffer{}, false), false)

	p := plan.New()
	p.Append(plan.Shell("greet", "echo hello"))

	result, err := exec.Run(context.Background(), p)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if result.Outcomes[0].Output != "hello" {
		t.Errorf("expected output 'hello', got %q", result.Outcomes[0].Output)
	}
}

func TestExecutor_Run_StructuredOperation(t *testing.T) {
	exec := New(NewConsoleReporter(&bytes.Buffer{}, false), false)

	p := plan.New()
	p.Append(plan.Command("echo", "echo", "structured"))

	result, err := exec.Run(context.Background(), p)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if result.Outcomes[0].Output != "structured" {
		t.Errorf("expected output 'structured', got %q", result.Outcomes[0].Output)
	}
}

func TestExecutor_Run_ContextCancelled(t *testing.T) {
	exec := New(NewConsoleReporter(&bytes.Buffer{}, false), false)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := plan.New()
	p.Append(plan.Shell("op", "exit 0"))

	result, err := exec.Run(ctx, p)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got: %v", err)
	}
	if len(result.Outcomes) != 0 {
		t.Errorf("expected no outcomes for cancelled context, got %d", len(result.Outcomes))
	}
}

func TestExecutor_Run_CancelStopsAtOperationBoundary(t *testing.T) {
	dir := t.TempDir()
	marker := filepath.Join(dir, "marker")
	second := filepath.Join(dir, "second")

	exec := New(NewConsoleReporter(&bytes.Buffer{}, false), false)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(100 * time.Millisecond)
		cancel()
	}()

	p := plan.New()
	p.Append(plan.Shell("slow-op", fmt.Sprintf("sleep 0.5 && touch %s", marker)))
	p.Append(plan.Shell("after-cancel", fmt.Sprintf("touch %s", second)))

	result, err := exec.Run(ctx, p)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled at the operation boundary, got: %v", err)
	}

	// The in-flight command must run to completion despite the cancellation.
	if len(result.Outcomes) != 1 {
		t.Fatalf("expected exactly the in-flight outcome, got %d", len(result.Outcomes))
	}
	if !result.Outcomes[0].Success {
		t.Errorf("expected the in-flight operation to succeed, got exit code %d", result.Outcomes[0].ExitCode)
	}
	if _, statErr := os.Stat(marker); statErr != nil {
		t.Errorf("in-flight command was interrupted: %v", statErr)
	}
	if _, statErr := os.Stat(second); statErr == nil {
		t.Error("operation queued after the cancellation should not run")
	}
}

func TestExecutor_NilReporterDefaults(t *testing.T) {
	exec := New(nil, false)
	if exec.reporter == nil {
		t.Fatal("expected nil reporter to default to a console reporter")
	}
}

func TestOperationError(t *testing.T) {
	underlying := errors.New("exit status 2")
	err := &OperationError{
		Name:          "install-git",
		CommandLine:   "apt-get install -y git",
		ExitCode:      2,
		OriginalError: underlying,
	}

	msg := err.Error()
	for _, want := range []string{"install-git", "apt-get install -y git", "Exit Code: 2"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error message missing %q: %s", want, msg)
		}
	}

	if !errors.Is(err, underlying) {
		t.Error("expected Unwrap to expose the original error")
	}
}
