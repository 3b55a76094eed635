package relation_test

import (
	"testing"

	"github.com/katalvlaran/ifds/relation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelation_AddContains(t *testing.T) {
	r := relation.New()
	require.False(t, r.Contains(3, 7))

	r.Add(3, 7)
	assert.True(t, r.Contains(3, 7))
	assert.False(t, r.Contains(3, 8))
	assert.False(t, r.Contains(4, 7))

	// idempotent
	r.Add(3, 7)
	assert.Equal(t, 1, r.RelatedCount(3))
}

func TestRelation_RemoveAndRemoveAll(t *testing.T) {
	r := relation.New()
	r.Add(1, 10)
	r.Add(1, 11)
	r.Add(2, 10)

	r.Remove(1, 10)
	assert.False(t, r.Contains(1, 10))
	assert.True(t, r.Contains(1, 11))

	r.Remove(1, 999) // no-op on absent pair
	assert.Equal(t, 1, r.RelatedCount(1))

	r.RemoveAll(2)
	assert.Equal(t, 0, r.RelatedCount(2))
	assert.False(t, r.Contains(2, 10))
}

func TestRelation_Related_EmptySentinel(t *testing.T) {
	r := relation.New()
	set := r.Related(42)
	assert.Equal(t, 0, set.Count())
	assert.False(t, set.Contains(0))
}

func TestRelation_AutoPromotion(t *testing.T) {
	r := relation.New()
	for y := 0; y < 50; y++ {
		r.Add(5, y)
	}
	assert.Equal(t, 50, r.RelatedCount(5))
	for y := 0; y < 50; y++ {
		assert.True(t, r.Contains(5, y))
	}
	// a row well past the promotion threshold must still answer correctly
	r.Remove(5, 25)
	assert.False(t, r.Contains(5, 25))
	assert.Equal(t, 49, r.RelatedCount(5))
}

func TestRelation_ImplementationVector(t *testing.T) {
	r := relation.New(
		relation.WithImplementationVector([]relation.Kind{relation.Sparse, relation.Simple}),
		relation.WithDelegate(relation.Sparse),
	)
	r.Add(0, 1)
	r.Add(1, 1)
	r.Add(2, 1)
	// behavior is observable only through the contract, not the internal
	// encoding; this just exercises every branch of startKind.
	assert.True(t, r.Contains(0, 1))
	assert.True(t, r.Contains(1, 1))
	assert.True(t, r.Contains(2, 1))
}

func TestRelation_ForEach_VisitsEveryPairOnce(t *testing.T) {
	r := relation.New()
	want := map[[2]int]bool{
		{0, 1}: true,
		{0, 2}: true,
		{3, 9}: true,
	}
	for k := range want {
		r.Add(k[0], k[1])
	}

	got := map[[2]int]bool{}
	r.ForEach(func(x, y int) bool {
		got[[2]int{x, y}] = true
		return true
	})
	assert.Equal(t, want, got)
}

func TestRelation_ForEach_EarlyStop(t *testing.T) {
	r := relation.New()
	r.Add(0, 1)
	r.Add(0, 2)
	r.Add(0, 3)

	count := 0
	r.ForEach(func(x, y int) bool {
		count++
		return false
	})
	assert.Equal(t, 1, count)
}

func TestRelation_Clone_Independence(t *testing.T) {
	r := relation.New()
	r.Add(1, 2)

	c := r.Clone()
	c.Add(1, 3)

	assert.False(t, r.Contains(1, 3))
	assert.True(t, c.Contains(1, 3))
}
