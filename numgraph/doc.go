// Package numgraph implements SparseNumberedEdgeManager: a directed graph
// over externally-numbered nodes, keeping forward (succ) and reverse (pred)
// adjacency in lockstep plus a cached has-any-successor bit per node.
//
// Node identity is resolved through a NumberedNodeManager[T], an external
// collaborator mapping a caller's node type T to a dense nonnegative number
// (or -1 for "not registered"). This package never registers nodes itself —
// that is the manager's job — it only rejects edges touching an unresolved
// endpoint with ErrNotInGraph.
//
// Invariants, maintained after every exported mutator (spec.md §3/§4.3):
//
//	(x, y) ∈ succ ⇔ (y, x) ∈ pred
//	hasSuccessor[x] = 1 ⇔ succ(x) ≠ ∅
//
// WithAudit() re-verifies both after every mutation and panics with
// ContractViolationError on breach, re-modeling spec.md §9's "process-wide
// debug level" as an opt-in constructor knob.
//
// Nothing here is safe for concurrent use; see the module's Non-goals.
package numgraph
