package memory

import "github.com/google/uuid"

// block is one node of the doubly linked free-block list underlying
// BestFit and WorstFit, mirroring the reference `struct Node{data,size,
// next,prev}` where data == -1 meant free.
type block struct {
	owner uuid.UUID
	free  bool
	size  int
	prev  *block
	next  *block
}

// freeList is the allocation arena for BestFit/WorstFit: a chain of
// blocks, each either free or owned by a process.
type freeList struct {
	head *block
}

// pushFront inserts a new block at the head of the list, mirroring
// push(&head, ...) — used when no existing free block fits the request.
func (l *freeList) pushFront(owner uuid.UUID, size int, free bool) {
	n := &block{owner: owner, size: size, free: free, next: l.head}
	if l.head != nil {
		l.head.prev = n
	}
	l.head = n
}

// insertAfter inserts a new block immediately after prev, mirroring
// insertAfter(prev_node, ...).
func (l *freeList) insertAfter(prev *block, owner uuid.UUID, size int, free bool) {
	n := &block{owner: owner, size: size, free: free, prev: prev, next: prev.next}
	if prev.next != nil {
		prev.next.prev = n
	}
	prev.next = n
}

// selectFn scans the list for a candidate free block satisfying size,
// returning it and whether one was found. BestFit and WorstFit supply
// different selection strategies.
type selectFn func(l *freeList, size int) (*block, bool)

// selectBestFit returns the smallest free block that still fits size,
// the exact scan from bestFit().
func selectBestFit(l *freeList, size int) (*block, bool) {
	var best *block
	for n := l.head; n != nil; n = n.next {
		if n.free && n.size >= size && (best == nil || n.size < best.size) {
			best = n
		}
	}
	return best, best != nil
}

// selectWorstFit returns the largest free block that still fits size,
// the scan from worstFit(). The reference implementation initializes
// currentWorstFit to 0 (not -1 like bestFit) and never actually checks
// for "no spots" — dead code since currentWorstFit can never go
// negative. A size-0 request is the only input that could have
// exercised the difference, and it can't occur here (every admission
// requests at least 1 byte), so this rework implements the sane,
// not-found-means-not-found behavior bestFit already has.
func selectWorstFit(l *freeList, size int) (*block, bool) {
	var worst *block
	for n := l.head; n != nil; n = n.next {
		if n.free && n.size >= size && n.size > 0 && (worst == nil || n.size > worst.size) {
			worst = n
		}
	}
	return worst, worst != nil
}

// place admits owner into size bytes, splitting or taking an existing
// free block whole via strategy, or pushing a fresh occupied block at
// the head when none fits — matching the original's push(&head, ...)
// fallback when bestFit/worstFit return -1.
func (l *freeList) place(strategy selectFn, owner uuid.UUID, size int) {
	if n, ok := strategy(l, size); ok {
		if n.size == size {
			n.owner = owner
			n.free = false
			return
		}
		l.insertAfter(n, uuid.Nil, n.size-size, true)
		n.owner = owner
		n.free = false
		n.size = size
		return
	}
	l.pushFront(owner, size, false)
}

// release marks owner's block free and coalesces adjacent free runs,
// mirroring removeProcess (takeProcessOff + cleanUpList) plus the
// reference's head-trim when the list's head becomes free.
func (l *freeList) release(owner uuid.UUID) {
	for n := l.head; n != nil; n = n.next {
		if !n.free && n.owner == owner {
			n.free = true
			break
		}
	}
	l.cleanUp()
	if l.head != nil && l.head.free {
		l.head = l.head.next
		if l.head != nil {
			l.head.prev = nil
		}
	}
}

// cleanUp merges adjacent free blocks, mirroring cleanUpList.
func (l *freeList) cleanUp() {
	for n := l.head; n != nil && n.next != nil; {
		if n.free && n.next.free {
			n.size += n.next.size
			n.next = n.next.next
			if n.next != nil {
				n.next.prev = n
			}
			continue
		}
		n = n.next
	}
}
