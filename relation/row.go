package relation

import "github.com/katalvlaran/ifds/intset"

// rowPromoteThreshold is the row size beyond which a simpleRow auto-promotes
// to a sparseRow. Spec.md §4.1 suggests "≤ ~8" for the simple encoding.
const rowPromoteThreshold = 8

// Kind selects a row's starting encoding.
type Kind int

const (
	// Simple is a compact, space-stingy list encoding, best for small rows.
	Simple Kind = iota
	// Sparse is a two-level sparse bit vector, best for rows that grow large.
	Sparse
)

// Set is a read-only view over one row: the live set Y_x for some x.
// Implementations alias interior storage; see package doc comment.
type Set interface {
	// Contains reports whether y is a member.
	Contains(y int) bool
	// Count returns the number of members.
	Count() int
	// ForEach visits every member in some order, stopping early if f
	// returns false.
	ForEach(f func(y int) bool)
}

// row is the mutable superset of Set that Relation operates on internally.
type row interface {
	Set
	add(y int)
	remove(y int)
	clone() row
	kind() Kind
}

// emptySet is the sentinel returned by Related for an absent row.
type emptySet struct{}

func (emptySet) Contains(int) bool      { return false }
func (emptySet) Count() int             { return 0 }
func (emptySet) ForEach(func(int) bool) {}

var theEmptySet Set = emptySet{}

// simpleRow is an unsorted, append-only list. Good for rows of size
// ≤ rowPromoteThreshold; contains/remove are linear scans, which is cheaper
// in practice than any indexed structure at this size.
type simpleRow struct {
	ys []int
}

func (r *simpleRow) Contains(y int) bool {
	for _, v := range r.ys {
		if v == y {
			return true
		}
	}
	return false
}

func (r *simpleRow) Count() int { return len(r.ys) }

func (r *simpleRow) ForEach(f func(y int) bool) {
	for _, v := range r.ys {
		if !f(v) {
			return
		}
	}
}

func (r *simpleRow) add(y int) {
	if r.Contains(y) {
		return
	}
	r.ys = append(r.ys, y)
}

func (r *simpleRow) remove(y int) {
	for i, v := range r.ys {
		if v == y {
			last := len(r.ys) - 1
			r.ys[i] = r.ys[last]
			r.ys = r.ys[:last]
			return
		}
	}
}

func (r *simpleRow) clone() row {
	return &simpleRow{ys: append([]int(nil), r.ys...)}
}

func (r *simpleRow) kind() Kind { return Simple }

// promote converts a simpleRow into an equivalent sparseRow.
func (r *simpleRow) promote() *sparseRow {
	sr := &sparseRow{}
	for _, v := range r.ys {
		sr.set.Add(v)
	}
	return sr
}

// sparseRow is a two-level sparse bit vector row, backed by
// intset.SparseWordSet. Good for rows that grow large.
type sparseRow struct {
	set intset.SparseWordSet
}

func (r *sparseRow) Contains(y int) bool        { return r.set.Contains(y) }
func (r *sparseRow) Count() int                 { return r.set.Count() }
func (r *sparseRow) ForEach(f func(y int) bool) { r.set.ForEach(f) }
func (r *sparseRow) add(y int)                  { r.set.Add(y) }
func (r *sparseRow) remove(y int)               { r.set.Remove(y) }
func (r *sparseRow) kind() Kind                 { return Sparse }

func (r *sparseRow) clone() row {
	return &sparseRow{set: *r.set.Clone()}
}

// newRow creates an empty row of the given kind.
func newRow(k Kind) row {
	switch k {
	case Sparse:
		return &sparseRow{}
	default:
		return &simpleRow{}
	}
}
