package pathedge

import (
	"github.com/katalvlaran/ifds/intset"
	"github.com/katalvlaran/ifds/relation"
)

func (p *LocalPathEdges) assertNonNeg(op string, i, n, j int) {
	if i < 0 || n < 0 || j < 0 {
		panic(newContractViolation(op, i, n, j, "negative argument"))
	}
}

func setBit(m map[int]intset.BitVector, key, n int) {
	bv := m[key]
	bv.Set(n)
	m[key] = bv
}

func testBit(m map[int]intset.BitVector, key, n int) bool {
	bv, ok := m[key]
	if !ok {
		return false
	}
	return bv.Test(n)
}

// Add inserts path edge (i, n, j). Exactly one primary store is touched; see
// the package doc comment for the dispatch table. Idempotent.
func (p *LocalPathEdges) Add(i, n, j int) {
	p.assertNonNeg("Add", i, n, j)
	switch {
	case i == 0:
		setBit(p.zeroPaths, j, n)
		if p.fastMerge {
			p.altRelation(0).Add(n, j)
		}
	case i == j:
		setBit(p.identityPaths, i, n)
		if p.fastMerge {
			p.altRelation(i).Add(n, i)
		}
	default:
		p.pathsRelation(j).Add(n, i)
		if p.fastMerge {
			p.altRelation(i).Add(n, j)
		}
	}
}

func (p *LocalPathEdges) pathsRelation(j int) *relation.Relation {
	rel, ok := p.paths[j]
	if !ok {
		rel = relation.New()
		p.paths[j] = rel
	}
	return rel
}

func (p *LocalPathEdges) altRelation(i int) *relation.Relation {
	rel, ok := p.altPaths[i]
	if !ok {
		rel = relation.New()
		p.altPaths[i] = rel
	}
	return rel
}

// Contains reports whether (i, n, j) was added. Mirrors Add's dispatch
// exactly: a caller asking Contains(d2, n, d2) with d2 ≠ 0 is answered from
// identityPaths and never from paths, per spec.md §4.2.2.
func (p *LocalPathEdges) Contains(i, n, j int) bool {
	p.assertNonNeg("Contains", i, n, j)
	switch {
	case i == 0:
		return testBit(p.zeroPaths, j, n)
	case i == j:
		return testBit(p.identityPaths, i, n)
	default:
		rel, ok := p.paths[j]
		if !ok {
			return false
		}
		return rel.Contains(n, i)
	}
}

// Inverse enumerates {i : ⟨s_p, i⟩ → ⟨n, d2⟩}, or nil if empty.
//
// Documented under-approximation (spec.md §4.2.3): when the zero-path
// short-circuit is in effect, Inverse reports 0 if it is among the answers
// but does not additionally re-derive other i ≠ 0 that would imply the same
// (n, d2) via the zero fact. This is intentional and must not be tightened.
func (p *LocalPathEdges) Inverse(n, d2 int) []int {
	p.assertNonNeg("Inverse", 0, n, d2)
	var result []int
	if rel, ok := p.paths[d2]; ok {
		rel.Related(n).ForEach(func(i int) bool {
			result = append(result, i)
			return true
		})
	}
	if testBit(p.identityPaths, d2, n) {
		result = append(result, d2)
	}
	if testBit(p.zeroPaths, d2, n) {
		result = append(result, 0)
	}
	return result
}

// Reachable enumerates {j : ⟨s_p, d1⟩ → ⟨n, j⟩}, or nil if empty.
//
// Runs the fast path (altPaths[d1].Related(n)) when WithFastMerge is set;
// otherwise the slow path unions across the three primary stores. Under
// WithParanoidChecks, both are computed and cross-checked even when the
// fast path is available, panicking with ContractViolationError on
// disagreement (spec.md §4.2.4, Testable Property 4).
func (p *LocalPathEdges) Reachable(n, d1 int) []int {
	p.assertNonNeg("Reachable", d1, n, 0)

	if p.fastMerge && !p.paranoid {
		return p.reachableFast(n, d1)
	}
	slow := p.reachableSlow(n, d1)
	if !p.fastMerge {
		return slow
	}
	fast := p.reachableFast(n, d1)
	if !sameSet(fast, slow) {
		panic(newContractViolation("Reachable", d1, n, 0, "fast/slow path disagreement"))
	}
	return fast
}

func (p *LocalPathEdges) reachableFast(n, d1 int) []int {
	rel, ok := p.altPaths[d1]
	if !ok {
		return nil
	}
	var result []int
	rel.Related(n).ForEach(func(j int) bool {
		result = append(result, j)
		return true
	})
	return result
}

func (p *LocalPathEdges) reachableSlow(n, d1 int) []int {
	var result []int
	for j, rel := range p.paths {
		if rel.Contains(n, d1) {
			result = append(result, j)
		}
	}
	if testBit(p.identityPaths, d1, n) {
		result = append(result, d1)
	}
	if d1 == 0 {
		for j, bv := range p.zeroPaths {
			if bv.Test(n) {
				result = append(result, j)
			}
		}
	}
	return result
}

// ReachableAll enumerates {j : ∃ i. ⟨s_p, i⟩ → ⟨n, j⟩}, or nil if empty.
func (p *LocalPathEdges) ReachableAll(n int) []int {
	p.assertNonNeg("ReachableAll", 0, n, 0)
	seen := make(map[int]struct{})
	for j, rel := range p.paths {
		if rel.RelatedCount(n) > 0 {
			seen[j] = struct{}{}
		}
	}
	for d1, bv := range p.identityPaths {
		if bv.Test(n) {
			seen[d1] = struct{}{}
		}
	}
	for j, bv := range p.zeroPaths {
		if bv.Test(n) {
			seen[j] = struct{}{}
		}
	}
	return setToSlice(seen)
}

// ReachedNodes returns the set of every n appearing in any stored edge.
func (p *LocalPathEdges) ReachedNodes() []int {
	seen := make(map[int]struct{})
	for _, rel := range p.paths {
		rel.ForEachRow(func(n int) bool {
			seen[n] = struct{}{}
			return true
		})
	}
	for _, bv := range p.zeroPaths {
		bv.ForEach(func(n int) bool {
			seen[n] = struct{}{}
			return true
		})
	}
	for _, bv := range p.identityPaths {
		bv.ForEach(func(n int) bool {
			seen[n] = struct{}{}
			return true
		})
	}
	return setToSlice(seen)
}

func setToSlice(s map[int]struct{}) []int {
	if len(s) == 0 {
		return nil
	}
	out := make([]int, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	return out
}

func sameSet(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[int]int, len(a))
	for _, v := range a {
		seen[v]++
	}
	for _, v := range b {
		seen[v]--
	}
	for _, c := range seen {
		if c != 0 {
			return false
		}
	}
	return true
}
