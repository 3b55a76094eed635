package numgraph

import "github.com/katalvlaran/ifds/relation"

// clearHasSuccessor clears bit x and, since this is the one BitVector in the
// module whose high end actually shrinks back down over a long mutation
// sequence, compacts away any trailing all-zero words the clear exposed —
// the same clear-then-compact idiom gaissmai-bart's internal/bitset uses.
func (g *Graph[T]) clearHasSuccessor(x int) {
	g.hasSuccessor.Clear(x)
	g.hasSuccessor.Compact()
}

// resolve returns the numbers for s and d, or ErrNotInGraph if either is
// unregistered with the manager.
func (g *Graph[T]) resolve(s, d T) (x, y int, err error) {
	x = g.manager.Number(s)
	if x < 0 {
		return 0, 0, ErrNotInGraph
	}
	y = g.manager.Number(d)
	if y < 0 {
		return 0, 0, ErrNotInGraph
	}
	return x, y, nil
}

// AddEdge inserts s→d, idempotent. Returns ErrNotInGraph if either endpoint
// is unresolved.
func (g *Graph[T]) AddEdge(s, d T) error {
	x, y, err := g.resolve(s, d)
	if err != nil {
		return err
	}
	g.succ.Add(x, y)
	g.pred.Add(y, x)
	g.hasSuccessor.Set(x)
	g.checkInvariants("AddEdge")
	return nil
}

// HasEdge reports whether s→d exists. Unresolved endpoints report false
// rather than an error, per spec.md §4.3.
func (g *Graph[T]) HasEdge(s, d T) bool {
	x := g.manager.Number(s)
	if x < 0 {
		return false
	}
	y := g.manager.Number(d)
	if y < 0 {
		return false
	}
	return g.succ.Contains(x, y)
}

// RemoveEdge deletes s→d. Idempotent: removing a non-existent edge between
// two valid endpoints is a silent no-op (spec.md §9).
func (g *Graph[T]) RemoveEdge(s, d T) error {
	x, y, err := g.resolve(s, d)
	if err != nil {
		return err
	}
	g.succ.Remove(x, y)
	if g.succ.RelatedCount(x) == 0 {
		g.clearHasSuccessor(x)
	}
	g.pred.Remove(y, x)
	g.checkInvariants("RemoveEdge")
	return nil
}

// RemoveOutgoingEdges deletes every edge n→*.
func (g *Graph[T]) RemoveOutgoingEdges(n T) error {
	x := g.manager.Number(n)
	if x < 0 {
		return ErrNotInGraph
	}
	g.succ.Related(x).ForEach(func(y int) bool {
		g.pred.Remove(y, x)
		return true
	})
	g.succ.RemoveAll(x)
	g.clearHasSuccessor(x)
	g.checkInvariants("RemoveOutgoingEdges")
	return nil
}

// RemoveIncomingEdges deletes every edge *→n.
func (g *Graph[T]) RemoveIncomingEdges(n T) error {
	y := g.manager.Number(n)
	if y < 0 {
		return ErrNotInGraph
	}
	g.pred.Related(y).ForEach(func(x int) bool {
		g.succ.Remove(x, y)
		if g.succ.RelatedCount(x) == 0 {
			g.clearHasSuccessor(x)
		}
		return true
	})
	g.pred.RemoveAll(y)
	g.checkInvariants("RemoveIncomingEdges")
	return nil
}

// RemoveAllIncidentEdges deletes every edge touching n, in either direction.
func (g *Graph[T]) RemoveAllIncidentEdges(n T) error {
	if err := g.RemoveOutgoingEdges(n); err != nil {
		return err
	}
	if err := g.RemoveIncomingEdges(n); err != nil {
		return err
	}
	x := g.manager.Number(n)
	g.clearHasSuccessor(x)
	g.checkInvariants("RemoveAllIncidentEdges")
	return nil
}

// SuccNodes returns every direct successor of n.
func (g *Graph[T]) SuccNodes(n T) ([]T, error) {
	return g.realize(g.succ, n)
}

// PredNodes returns every direct predecessor of n.
func (g *Graph[T]) PredNodes(n T) ([]T, error) {
	return g.realize(g.pred, n)
}

// SuccNodeCount returns |succ(n)|.
func (g *Graph[T]) SuccNodeCount(n T) (int, error) {
	x := g.manager.Number(n)
	if x < 0 {
		return 0, ErrNotInGraph
	}
	return g.succ.RelatedCount(x), nil
}

// PredNodeCount returns |pred(n)|.
func (g *Graph[T]) PredNodeCount(n T) (int, error) {
	y := g.manager.Number(n)
	if y < 0 {
		return 0, ErrNotInGraph
	}
	return g.pred.RelatedCount(y), nil
}

// SuccNodeNumbers returns the live set of successor numbers, aliasing
// interior storage; see relation.Relation.Related.
func (g *Graph[T]) SuccNodeNumbers(n T) (relation.Set, error) {
	x := g.manager.Number(n)
	if x < 0 {
		return nil, ErrNotInGraph
	}
	return g.succ.Related(x), nil
}

// PredNodeNumbers returns the live set of predecessor numbers, aliasing
// interior storage; see relation.Relation.Related.
func (g *Graph[T]) PredNodeNumbers(n T) (relation.Set, error) {
	y := g.manager.Number(n)
	if y < 0 {
		return nil, ErrNotInGraph
	}
	return g.pred.Related(y), nil
}

// HasAnySuccessor reports whether n has at least one outgoing edge, via the
// cached hasSuccessor bit rather than a RelatedCount scan.
func (g *Graph[T]) HasAnySuccessor(n T) (bool, error) {
	x := g.manager.Number(n)
	if x < 0 {
		return false, ErrNotInGraph
	}
	return g.hasSuccessor.Test(x), nil
}

// NodeCount returns the number of nodes the manager has registered.
func (g *Graph[T]) NodeCount() int {
	return len(g.manager.AllNodes())
}

// EdgeCount returns the number of edges currently stored.
func (g *Graph[T]) EdgeCount() int {
	count := 0
	g.succ.ForEach(func(int, int) bool {
		count++
		return true
	})
	return count
}

// realize resolves n to a number, collects rel's related numbers, and
// converts each back into a node identity via the manager.
func (g *Graph[T]) realize(rel *relation.Relation, n T) ([]T, error) {
	x := g.manager.Number(n)
	if x < 0 {
		return nil, ErrNotInGraph
	}
	var out []T
	rel.Related(x).ForEach(func(y int) bool {
		if node, ok := g.manager.NodeFor(y); ok {
			out = append(out, node)
		}
		return true
	})
	return out, nil
}
