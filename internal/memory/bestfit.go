package memory

import (
	"sync"

	"github.com/google/uuid"
)

// FreeListManager backs both BestFit and WorstFit: a simple available-
// bytes counter gates admission (mirroring `AvailableMemory >=
// MemoryRequested`), then strategy picks which free block to carve from
// the underlying freeList.
type FreeListManager struct {
	mu        sync.Mutex
	name      string
	strategy  selectFn
	total     int64
	available int64
	list      freeList
}

// NewFreeListManager constructs a manager named name that places blocks
// using strategy (selectBestFit or selectWorstFit).
func NewFreeListManager(name string, totalBytes int64, strategy selectFn) *FreeListManager {
	return &FreeListManager{
		name:      name,
		strategy:  strategy,
		total:     totalBytes,
		available: totalBytes,
	}
}

func (m *FreeListManager) Name() string { return m.name }

// Admit checks the available-bytes counter first, same as the
// reference's guard before calling bestFit/worstFit, then places the
// block.
func (m *FreeListManager) Admit(id uuid.UUID, bytes int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.available < int64(bytes) {
		return false
	}
	m.list.place(m.strategy, id, bytes)
	m.available -= int64(bytes)
	return true
}

// Release frees id's block, coalesces neighboring free blocks, and
// restores the available-bytes counter.
func (m *FreeListManager) Release(id uuid.UUID, bytes int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.list.release(id)
	m.available += int64(bytes)
	if m.available > m.total {
		m.available = m.total
	}
}

func (m *FreeListManager) Available() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.available
}
