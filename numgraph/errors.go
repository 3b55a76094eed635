package numgraph

import (
	"errors"
	"fmt"
)

// ErrNotInGraph indicates an edge operation named a node the
// NumberedNodeManager could not resolve to a nonnegative number.
//
// Modeled on lvlath/flow's ErrSourceNotFound/ErrSinkNotFound sentinel idiom:
// a plain sentinel suffices here because, unlike ContractViolationError,
// there is no extra diagnostic payload worth attaching beyond "which node".
var ErrNotInGraph = errors.New("numgraph: node not in graph")

// ContractViolationError reports an internal invariant breach detected under
// WithAudit. A negative node number from the NumberedNodeManager is not
// reported this way; it yields ErrNotInGraph. Fatal: indicates a caller or
// collaborator bug, not a normal miss.
type ContractViolationError struct {
	Op     string
	Detail string
}

func (e *ContractViolationError) Error() string {
	return fmt.Sprintf("numgraph: %s: %s", e.Op, e.Detail)
}

func newContractViolation(op, detail string) *ContractViolationError {
	return &ContractViolationError{Op: op, Detail: detail}
}
