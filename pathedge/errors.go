// Package pathedge: typed errors.
//
// LocalPathEdges never fails on well-formed input (spec.md §7): queries
// return an empty/absent result rather than an error when nothing matches.
// The only error this package raises is ContractViolationError, for inputs
// or internal states that indicate a caller bug, not a normal miss.
package pathedge

import "fmt"

// ContractViolationError reports a negative n/i/j argument, or — under
// paranoid mode — an internal cross-check failure between the fast and slow
// implementations of Reachable. It is fatal: the caller has a bug.
//
// Modeled on lvlath's flow.EdgeError (a struct error type carrying the
// offending values, rather than a bare sentinel) since, unlike a simple
// not-found condition, the caller needs the actual bad values to debug it.
type ContractViolationError struct {
	Op      string // e.g. "Add", "Contains", "Reachable"
	I, N, J int
	Reason  string
}

func (e *ContractViolationError) Error() string {
	return fmt.Sprintf("pathedge: %s(i=%d, n=%d, j=%d): %s", e.Op, e.I, e.N, e.J, e.Reason)
}

func newContractViolation(op string, i, n, j int, reason string) *ContractViolationError {
	return &ContractViolationError{Op: op, I: i, N: n, J: j, Reason: reason}
}
