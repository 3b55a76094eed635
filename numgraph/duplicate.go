package numgraph

// Duplicate builds a fresh Graph, backed by a new SlowNumberedNodeManager,
// with the same nodes and edges as g: spec.md §4.3 — "first mirror all
// nodes, then mirror all succ edges. No edge-adding pass may precede full
// node mirroring."
func Duplicate[T comparable](g *Graph[T]) *Graph[T] {
	mgr := NewSlowNumberedNodeManager[T]()
	fresh := New[T](mgr)

	nodes := g.manager.AllNodes()
	for _, n := range nodes {
		mgr.Register(n)
	}

	for _, s := range nodes {
		x := g.manager.Number(s)
		g.succ.Related(x).ForEach(func(y int) bool {
			if d, ok := g.manager.NodeFor(y); ok {
				_ = fresh.AddEdge(s, d)
			}
			return true
		})
	}

	return fresh
}
