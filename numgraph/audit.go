package numgraph

// checkInvariants re-verifies the succ/pred symmetry and hasSuccessor cache
// invariants of spec.md §3. A no-op unless the Graph was built WithAudit();
// panics with ContractViolationError on any breach.
func (g *Graph[T]) checkInvariants(op string) {
	if !g.audit {
		return
	}

	g.succ.ForEach(func(x, y int) bool {
		if !g.pred.Contains(y, x) {
			panic(newContractViolation(op, "succ/pred symmetry broken: succ has edge not mirrored in pred"))
		}
		return true
	})
	g.pred.ForEach(func(y, x int) bool {
		if !g.succ.Contains(x, y) {
			panic(newContractViolation(op, "succ/pred symmetry broken: pred has edge not mirrored in succ"))
		}
		return true
	})

	g.succ.ForEach(func(x, _ int) bool {
		if !g.hasSuccessor.Test(x) {
			panic(newContractViolation(op, "hasSuccessor cache stale: node has successors but bit unset"))
		}
		return true
	})
	g.hasSuccessor.ForEach(func(x int) bool {
		if g.succ.RelatedCount(x) == 0 {
			panic(newContractViolation(op, "hasSuccessor cache stale: bit set but node has no successors"))
		}
		return true
	})
}
