package memory

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFreeListPlaceOnEmptyListPushesFront(t *testing.T) {
	var l freeList
	id := uuid.New()
	l.place(selectBestFit, id, 100)

	require.NotNil(t, l.head)
	assert.Equal(t, id, l.head.owner)
	assert.Equal(t, 100, l.head.size)
	assert.False(t, l.head.free)
}

func TestFreeListPlaceSplitsOversizedFreeBlock(t *testing.T) {
	var l freeList
	l.head = &block{free: true, size: 500}

	id := uuid.New()
	l.place(selectBestFit, id, 200)

	// original node shrinks to the request and is taken by id; the free
	// remainder is inserted after it.
	assert.False(t, l.head.free)
	assert.Equal(t, 200, l.head.size)
	require.NotNil(t, l.head.next)
	assert.Equal(t, id, l.head.owner)
	assert.Equal(t, 300, l.head.next.size)
	assert.True(t, l.head.next.free)
}

func TestFreeListPlaceTakesExactFitWhole(t *testing.T) {
	var l freeList
	l.head = &block{free: true, size: 200}

	id := uuid.New()
	l.place(selectBestFit, id, 200)

	assert.Equal(t, id, l.head.owner)
	assert.False(t, l.head.free)
	assert.Nil(t, l.head.next)
}

func TestFreeListReleaseCoalescesNeighbors(t *testing.T) {
	idHead := uuid.New()
	idA := uuid.New()
	idB := uuid.New()
	head := &block{owner: idHead, size: 10}
	a := &block{owner: idA, size: 100}
	mid := &block{free: true, size: 50}
	b := &block{owner: idB, size: 100}
	head.next, a.prev = a, head
	a.next, mid.prev = mid, a
	mid.next, b.prev = b, mid

	l := freeList{head: head}
	l.release(idA)
	l.release(idB)

	// both neighbors of the originally-free middle block are now free
	// too, so cleanUp should merge all three into one block behind the
	// still-occupied head.
	assert.Equal(t, idHead, l.head.owner)
	assert.True(t, l.head.next.free)
	assert.Equal(t, 250, l.head.next.size)
	assert.Nil(t, l.head.next.next)
}

func TestSelectBestFitPicksSmallestSufficientBlock(t *testing.T) {
	l := freeList{head: &block{free: true, size: 500}}
	l.head.next = &block{free: true, size: 150, prev: l.head}
	l.head.next.next = &block{free: true, size: 300, prev: l.head.next}

	got, ok := selectBestFit(&l, 100)
	require.True(t, ok)
	assert.Equal(t, 150, got.size)
}

func TestSelectWorstFitPicksLargestSufficientBlock(t *testing.T) {
	l := freeList{head: &block{free: true, size: 500}}
	l.head.next = &block{free: true, size: 150, prev: l.head}
	l.head.next.next = &block{free: true, size: 300, prev: l.head.next}

	got, ok := selectWorstFit(&l, 100)
	require.True(t, ok)
	assert.Equal(t, 500, got.size)
}

func TestSelectReturnsNotFoundWhenNothingFits(t *testing.T) {
	l := freeList{head: &block{free: true, size: 10}}

	_, ok := selectBestFit(&l, 1000)
	assert.False(t, ok)

	_, ok = selectWorstFit(&l, 1000)
	assert.False(t, ok)
}
