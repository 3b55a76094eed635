// Package pathedge implements LocalPathEdges: the per-procedure store of
// IFDS path edges ⟨s_p, i⟩ → ⟨n, j⟩, where n is a basic-block id and i, j
// are dataflow-fact ids (0 = Λ, the tautological fact).
//
// Three cooperating stores partition the logical edge set, dispatched by
// add/contains on (i, j):
//
//	paths[j]         relation.Relation over (n, i), for i ≠ 0 ∧ i ≠ j
//	identityPaths[i] intset.BitVector of n,          for i = j ≠ 0
//	zeroPaths[j]     intset.BitVector of n,          for i = 0
//
// An optional fourth store, altPaths[i] (a relation.Relation over (n, j)),
// mirrors all three when constructed WithFastMerge(): it trades roughly 2x
// memory for an O(Related) Reachable(n, i) instead of an O(#paths rows) scan.
//
// Dedicated bit-sets for the identity and zero cases exist because most IFDS
// edges are one or the other (Λ-propagation or identity propagation); storing
// them in the general relation would cost an order of magnitude more memory.
//
// LocalPathEdges never fails on well-formed input: queries return an
// empty/nil result, never an error, when nothing matches. The only error is
// ContractViolationError, raised as a panic (this is a caller-bug class, not
// a recoverable condition — see spec.md §7) for negative n/i/j, or, in
// paranoid mode, for a detected mismatch between the fast and slow
// Reachable(n, i) implementations.
//
// Nothing here is safe for concurrent use; see the module's Non-goals.
package pathedge
