// Package executor runs a provisioning plan sequentially with fail-fast
// semantics.
//
// The executor processes operations one at a time in plan order. Each
// operation blocks until its external command completes; package managers
// hold exclusive system locks, so serial execution avoids lock contention
// instead of coordinating around it. If any operation exits nonzero,
// execution stops immediately: installation steps are order-dependent, and
// continuing on top of a broken state makes debugging harder. A context
// cancellation is honored only between operations; an in-flight command
// always runs to completion.
//
// # States
//
//	Ready → Running → Success
//	          ↓
//	        Failed (stop execution)
//
// # Results
//
// Run returns a Result carrying one Outcome per attempted operation plus the
// first failure as an error, rather than terminating the process itself. The
// caller decides how to surface the failure; tests can observe the result
// without the test process exiting.
package executor
