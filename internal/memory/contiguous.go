package memory

import (
	"sync"

	"github.com/google/uuid"
)

// Contiguous is the OMAP policy: a single free-byte counter, no tracking
// of which process holds which range. Admission is a simple threshold
// check against AvailableMemory in the reference LongtermScheduler.
type Contiguous struct {
	mu        sync.Mutex
	total     int64
	available int64
}

// NewContiguous creates a Contiguous manager with totalBytes available.
func NewContiguous(totalBytes int64) *Contiguous {
	return &Contiguous{total: totalBytes, available: totalBytes}
}

func (c *Contiguous) Name() string { return "Contiguous" }

// Admit reserves bytes if currently available, mirroring
// `if (AvailableMemory >= MemoryRequested) AvailableMemory -= MemoryRequested`.
func (c *Contiguous) Admit(_ uuid.UUID, bytes int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.available < int64(bytes) {
		return false
	}
	c.available -= int64(bytes)
	return true
}

// Release returns bytes to the counter, mirroring
// `AvailableMemory += MemoryRequested` on process completion.
func (c *Contiguous) Release(_ uuid.UUID, bytes int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.available += int64(bytes)
	if c.available > c.total {
		c.available = c.total
	}
}

func (c *Contiguous) Available() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.available
}
