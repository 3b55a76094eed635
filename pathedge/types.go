package pathedge

import (
	"github.com/katalvlaran/ifds/intset"
	"github.com/katalvlaran/ifds/relation"
)

// Option configures a LocalPathEdges before use.
type Option func(*LocalPathEdges)

// WithFastMerge maintains the altPaths mirror so Reachable(n, i) runs in
// O(cost of Related) instead of falling back to an O(#paths rows) scan.
func WithFastMerge() Option {
	return func(p *LocalPathEdges) { p.fastMerge = true }
}

// WithParanoidChecks cross-checks the fast and slow Reachable(n, i)
// implementations on every call when fastMerge is enabled, panicking with a
// ContractViolationError on disagreement. Re-models spec.md §9's "process-
// wide debug level" as an opt-in constructor knob instead of global state.
func WithParanoidChecks() Option {
	return func(p *LocalPathEdges) { p.paranoid = true }
}

// LocalPathEdges is the per-procedure path-edge store for a fixed entry s_p.
type LocalPathEdges struct {
	fastMerge bool
	paranoid  bool

	paths         map[int]*relation.Relation // j -> relation over (n, i), i ∉ {0, j}
	identityPaths map[int]intset.BitVector   // i -> set of n, for i = j ≠ 0
	zeroPaths     map[int]intset.BitVector   // j -> set of n, for i = 0
	altPaths      map[int]*relation.Relation // i -> relation over (n, j); only if fastMerge
}

// New creates an empty LocalPathEdges.
func New(opts ...Option) *LocalPathEdges {
	p := &LocalPathEdges{
		paths:         make(map[int]*relation.Relation),
		identityPaths: make(map[int]intset.BitVector),
		zeroPaths:     make(map[int]intset.BitVector),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.fastMerge {
		p.altPaths = make(map[int]*relation.Relation)
	}
	return p
}

// Stats reports row/member counts per store, a diagnostic for callers
// deciding whether WithFastMerge is worth its memory.
type Stats struct {
	PathsRows         int
	IdentityRows      int
	ZeroRows          int
	AltPathsRows      int
	TotalEdgesApprox  int // sum of member counts across paths/identity/zero
}

// Stats computes Stats by walking every store once.
func (p *LocalPathEdges) Stats() Stats {
	var s Stats
	s.PathsRows = len(p.paths)
	s.IdentityRows = len(p.identityPaths)
	s.ZeroRows = len(p.zeroPaths)
	s.AltPathsRows = len(p.altPaths)
	for _, rel := range p.paths {
		rel.ForEach(func(int, int) bool { s.TotalEdgesApprox++; return true })
	}
	for _, bv := range p.identityPaths {
		s.TotalEdgesApprox += bv.Count()
	}
	for _, bv := range p.zeroPaths {
		s.TotalEdgesApprox += bv.Count()
	}
	return s
}
