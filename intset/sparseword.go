package intset

import "math/bits"

// pageBits is the width of one page: naturals [page*pageBits, (page+1)*pageBits)
// share a single compacted word.
const pageBits = wordSize

// SparseWordSet is a two-level sparse bit vector: naturals are grouped into
// pageBits-wide pages, and only pages that contain at least one member are
// materialized. An outer BitVector marks which page indices are populated;
// a parallel, popcount-compacted slice holds the actual 64-bit word for each
// populated page, in page order.
//
// This specializes gaissmai-bart's internal/sparse.Array[T] popcount
// compaction (there generic over a payload T) to T = uint64, since here the
// "payload" of a populated page is itself a bitmask.
type SparseWordSet struct {
	pages BitVector // bit p set iff page p has a nonzero word
	words []uint64  // words[pages.Rank(p)] == the word for page p, when pages.Test(p)
}

func (s *SparseWordSet) pageOf(y int) (page int, bit uint) {
	return y / pageBits, uint(y % pageBits)
}

// Contains reports whether y is a member.
func (s *SparseWordSet) Contains(y int) bool {
	page, bit := s.pageOf(y)
	if !s.pages.Test(page) {
		return false
	}
	return s.words[s.pages.Rank(page)]&(1<<bit) != 0
}

// Add inserts y, idempotent.
func (s *SparseWordSet) Add(y int) {
	page, bit := s.pageOf(y)
	rank := s.pages.Rank(page)
	if s.pages.Test(page) {
		s.words[rank] |= 1 << bit
		return
	}
	s.pages.Set(page)
	s.words = append(s.words, 0)
	copy(s.words[rank+1:], s.words[rank:])
	s.words[rank] = 1 << bit
}

// Remove deletes y, a no-op if absent. A page whose last bit is cleared is
// dropped from the compacted slice entirely.
func (s *SparseWordSet) Remove(y int) {
	page, bit := s.pageOf(y)
	if !s.pages.Test(page) {
		return
	}
	rank := s.pages.Rank(page)
	s.words[rank] &^= 1 << bit
	if s.words[rank] != 0 {
		return
	}
	// page emptied: drop it from both the outer bitset and the compacted slice
	s.pages.Clear(page)
	copy(s.words[rank:], s.words[rank+1:])
	s.words = s.words[:len(s.words)-1]
}

// Count returns the number of members.
func (s *SparseWordSet) Count() int {
	n := 0
	for _, w := range s.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// ForEach calls f for every member in ascending order, stopping early if f
// returns false.
func (s *SparseWordSet) ForEach(f func(y int) bool) {
	idx := 0
	s.pages.ForEach(func(page int) bool {
		w := s.words[idx]
		idx++
		base := page * pageBits
		for w != 0 {
			j := bits.TrailingZeros64(w)
			if !f(base + j) {
				return false
			}
			w &= w - 1
		}
		return true
	})
}

// Clone returns an independent deep copy.
func (s *SparseWordSet) Clone() *SparseWordSet {
	c := &SparseWordSet{pages: s.pages.Clone(), words: append([]uint64(nil), s.words...)}
	return c
}
