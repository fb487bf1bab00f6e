// Package plan defines the ordered list of external operations queued for
// one provisioning cycle.
//
// A Plan is built fresh for every menu selection and fully cleared after the
// cycle completes, so stale operations from a prior run can never re-execute.
// Execution order is exactly insertion order: later operations may assume the
// side effects of earlier ones (a package must be installed before a check
// that depends on its binary existing), so operations are never reordered.
package plan

import "strings"

// Operation describes one external command to run. Built-in checks and
// filesystem changes use a structured program plus argument list; opaque
// package-manager command lines that need shell evaluation are constructed
// with Shell.
type Operation struct {
	Name    string
	Program string
	Args    []string
}

// Command builds a structured operation that runs program directly with the
// given arguments, without shell interpretation.
func Command(name, program string, args ...string) Operation {
	return Operation{Name: name, Program: program, Args: args}
}

// Shell builds an operation that hands command to a POSIX shell for
// evaluation. The only contract relied upon is the exit status: 0 means
// success, anything else is a failure.
func Shell(name, command string) Operation {
	return Operation{Name: name, Program: "sh", Args: []string{"-c", command}}
}

// CommandLine returns the operation as a single printable command line,
// unwrapping shell operations back to their original text.
func (o Operation) CommandLine() string {
	if o.Program == "sh" && len(o.Args) == 2 && o.Args[0] == "-c" {
		return o.Args[1]
	}
	if len(o.Args) == 0 {
		return o.Program
	}
	return o.Program + " " + strings.Join(o.Args, " ")
}

// Plan is an ordered, mutable sequence of operations scoped to one menu
// selection's lifetime.
type Plan struct {
	ops []Operation
}

// New creates an empty plan.
func New() *Plan {
	return &Plan{ops: make([]Operation, 0)}
}

// Append adds operations to the end of the plan in the order given.
func (p *Plan) Append(ops ...Operation) {
	p.ops = append(p.ops, ops...)
}

// Operations returns a copy of the queued operations in execution order.
func (p *Plan) Operations() []Operation {
	out := make([]Operation, len(p.ops))
	copy(out, p.ops)
	return out
}

// Len returns the number of queued operations.
func (p *Plan) Len() int {
	return len(p.ops)
}

// IsEmpty reports whether the plan has no queued operations.
func (p *Plan) IsEmpty() bool {
	return len(p.ops) == 0
}

// Clear removes all queued operations. Called at cycle boundaries so a
// second menu selection starts from an empty plan.
func (p *Plan) Clear() {
	p.ops = p.ops[:0]
}
