package llrb //nolint:testpackage // tests inspect the unexported hibernation state.

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHibernateBoot_RoundTrip(t *testing.T) {
	t.Parallel()

	tree := New[int]()

	for i := range 5000 {
		tree.Insert(i * 7 % 5000)
	}

	// Leave a few freed slots behind so the free list round-trips too.
	for range 100 {
		_, ok := tree.TakeMin()
		require.True(t, ok)
	}

	wantLen := tree.Len()
	wantFree := tree.Allocator().FreeCount()

	tree.Allocator().Hibernate()
	assert.Nil(t, tree.alloc.storage)
	assert.Nil(t, tree.alloc.free)
	assert.Positive(t, tree.alloc.hibernatedStorageLen)

	tree.Allocator().Boot()
	assert.Equal(t, 0, tree.alloc.hibernatedStorageLen)
	assert.Equal(t, wantLen, tree.Len())
	assert.Equal(t, wantFree, tree.Allocator().FreeCount())
	require.NoError(t, tree.Validate())

	for i := 100; i < 5000; i++ {
		require.True(t, tree.Member(i), "member %d after boot", i)
	}

	got, ok := tree.TakeMin()
	require.True(t, ok)
	assert.Equal(t, 100, got)
}

func TestHibernate_PanicsAndMisuse(t *testing.T) {
	t.Parallel()

	tree := New[int]()

	for i := range 1000 {
		tree.Insert(i)
	}

	alloc := tree.Allocator()
	alloc.Hibernate()

	assert.PanicsWithValue(t, "cannot hibernate an already hibernated allocator", alloc.Hibernate)
	assert.PanicsWithValue(t, "hibernated allocators cannot be used", func() { alloc.Used() })
	assert.PanicsWithValue(t, "hibernated allocators cannot be used", func() { alloc.malloc(1, true) })
	assert.PanicsWithValue(t, "hibernated allocators cannot be used", func() { tree.Insert(5) })
	assert.PanicsWithValue(t, "hibernated allocators cannot be used", func() { tree.Member(5) })

	alloc.Boot()
	assert.True(t, tree.Member(5))
	require.NoError(t, tree.Validate())
}

func TestHibernate_ThresholdGate(t *testing.T) {
	t.Parallel()

	tree := New[int]()
	tree.Insert(1)
	tree.Insert(2)

	alloc := tree.Allocator()
	alloc.HibernationThreshold = 1000

	alloc.Hibernate()
	assert.Equal(t, 0, alloc.hibernatedStorageLen)
	assert.NotNil(t, alloc.storage)
	assert.True(t, tree.Member(1))
}

func TestHibernateBoot_Empty(t *testing.T) {
	t.Parallel()

	alloc := NewAllocator[int]()
	alloc.Hibernate()
	assert.Nil(t, alloc.storage)

	alloc.Boot()
	assert.NotNil(t, alloc.storage)
	assert.Equal(t, 0, alloc.Size())
	assert.Equal(t, 0, alloc.Used())
}

func TestBoot_LiveAllocatorIsNoop(t *testing.T) {
	t.Parallel()

	tree := New[int]()
	tree.Insert(9)

	tree.Allocator().Boot()
	assert.True(t, tree.Member(9))
	assert.Equal(t, 1, tree.Len())
}
