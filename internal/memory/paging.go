package memory

import (
	"sync"

	"github.com/google/uuid"
	"github.com/jsosnowski/aubatch"
	"github.com/jsosnowski/aubatch/internal/constants"
)

// Paging tracks free and in-use pages rather than raw bytes. Admission
// requests are rounded up to whole pages, mirroring the reference
// LongtermScheduler's PAGING branch.
type Paging struct {
	mu             sync.Mutex
	totalPages     int64
	pagesAvailable int64
	pagesInUse     int64
	pageSize       int64
}

// NewPaging creates a Paging manager over totalBytes, using
// constants.PageSize as the page size.
func NewPaging(totalBytes int64) *Paging {
	pageSize := int64(constants.PageSize)
	total := totalBytes / pageSize
	return &Paging{
		totalPages:     total,
		pagesAvailable: total,
		pageSize:       pageSize,
	}
}

func (p *Paging) Name() string { return "Paging" }

func pagesFor(bytes int, pageSize int64) int64 {
	pages := int64(bytes) / pageSize
	if int64(bytes)%pageSize > 0 {
		pages++
	}
	return pages
}

// Admit reserves enough pages to cover bytes, rounding up. Returns false
// if there are not enough free pages.
func (p *Paging) Admit(_ uuid.UUID, bytes int) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	requested := pagesFor(bytes, p.pageSize)
	if requested > p.pagesAvailable {
		return false
	}
	p.pagesAvailable -= requested
	p.pagesInUse += requested
	p.checkInvariant()
	return true
}

// Release returns the pages bytes occupied.
func (p *Paging) Release(_ uuid.UUID, bytes int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	released := pagesFor(bytes, p.pageSize)
	p.pagesAvailable += released
	p.pagesInUse -= released
	p.checkInvariant()
}

func (p *Paging) Available() int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pagesAvailable * p.pageSize
}

// checkInvariant enforces that free and in-use pages always sum to the
// total, the exact check checkForMissingPages performed before exiting
// the whole process. Caller must hold p.mu. The panic carries the
// mandated wording in its Msg field, not the reference tool's slightly
// different text; the top-level recoverer (cmd/procsim) prints Msg
// verbatim rather than Error()'s "aubatch: ..." wrapping.
func (p *Paging) checkInvariant() {
	if p.pagesAvailable+p.pagesInUse != p.totalPages {
		panic(aubatch.NewError("Paging.checkInvariant", aubatch.ErrCodeInvariantViolation, "Error: Pages have gotten lost"))
	}
}
