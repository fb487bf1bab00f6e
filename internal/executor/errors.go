package executor

import "fmt"

// OperationError represents the first operation failure of a run.
type OperationError struct {
	Name          string
	CommandLine   string
	ExitCode      int
	Output        string
	OriginalError error
}

// Error implements the error interface
func (e *OperationError) Error() string {
	return fmt.Sprintf("operation '%s' failed: %v\n  Command: %s\n  Exit Code: %d",
		e.Name, e.OriginalError, e.CommandLine, e.ExitCode)
}

// Unwrap returns the original error for error unwrapping
func (e *OperationError) Unwrap() error {
	return e.OriginalError
}
