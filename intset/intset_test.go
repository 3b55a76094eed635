package intset_test

import (
	"testing"

	"github.com/katalvlaran/ifds/intset"
	"github.com/stretchr/testify/assert"
)

func TestBitVector_SetTestClear(t *testing.T) {
	var b intset.BitVector
	assert.False(t, b.Test(5))

	b.Set(5)
	b.Set(130)
	assert.True(t, b.Test(5))
	assert.True(t, b.Test(130))
	assert.False(t, b.Test(6))
	assert.Equal(t, 2, b.Count())

	b.Clear(5)
	assert.False(t, b.Test(5))
	assert.Equal(t, 1, b.Count())
}

func TestBitVector_RankAndForEach(t *testing.T) {
	var b intset.BitVector
	for _, i := range []int{2, 5, 9, 64, 70} {
		b.Set(i)
	}
	assert.Equal(t, 0, b.Rank(2))
	assert.Equal(t, 3, b.Rank(64))
	assert.Equal(t, 5, b.Rank(1000))

	var got []int
	b.ForEach(func(i int) bool {
		got = append(got, i)
		return true
	})
	assert.Equal(t, []int{2, 5, 9, 64, 70}, got)
}

func TestBitVector_ForEach_EarlyStop(t *testing.T) {
	var b intset.BitVector
	b.Set(1)
	b.Set(2)
	b.Set(3)

	count := 0
	b.ForEach(func(i int) bool {
		count++
		return false
	})
	assert.Equal(t, 1, count)
}

func TestBitVector_Clone(t *testing.T) {
	var b intset.BitVector
	b.Set(1)
	c := b.Clone()
	c.Set(2)
	assert.False(t, b.Test(2))
	assert.True(t, c.Test(2))
}

func TestSparseWordSet_AddContainsRemove(t *testing.T) {
	var s intset.SparseWordSet
	assert.False(t, s.Contains(100))

	s.Add(100)
	s.Add(200) // different page: 200/64 = 3, vs 100/64 = 101/64 = 1
	s.Add(101)
	assert.True(t, s.Contains(100))
	assert.True(t, s.Contains(200))
	assert.True(t, s.Contains(101))
	assert.Equal(t, 3, s.Count())

	s.Remove(100)
	assert.False(t, s.Contains(100))
	assert.True(t, s.Contains(101))
	assert.Equal(t, 2, s.Count())
}

func TestSparseWordSet_SparseAcrossWidePages(t *testing.T) {
	var s intset.SparseWordSet
	s.Add(5)
	s.Add(1_000_000)

	var got []int
	s.ForEach(func(y int) bool {
		got = append(got, y)
		return true
	})
	assert.Equal(t, []int{5, 1_000_000}, got)
	assert.Equal(t, 2, s.Count())
}

func TestSparseWordSet_RemoveEmptiesPage(t *testing.T) {
	var s intset.SparseWordSet
	s.Add(10)
	s.Remove(10)
	assert.Equal(t, 0, s.Count())
	assert.False(t, s.Contains(10))

	// re-adding after the page was dropped must still work
	s.Add(10)
	assert.True(t, s.Contains(10))
}

func TestSparseWordSet_Clone(t *testing.T) {
	var s intset.SparseWordSet
	s.Add(1)
	c := s.Clone()
	c.Add(2)
	assert.False(t, s.Contains(2))
	assert.True(t, c.Contains(2))
}
