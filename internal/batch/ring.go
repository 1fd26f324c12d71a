package batch

import (
	"sync"

	"github.com/jsosnowski/aubatch/internal/constants"
	"github.com/jsosnowski/aubatch/internal/interfaces"
)

// Ring is a fixed-capacity circular buffer of pending jobs shared between
// a producer (the REPL/benchmark generator) and a single dispatcher
// consumer. One mutex plus two condition variables guard head/tail/count
// and the slice contents, mirroring the reference scheduler's
// cmd_queue_lock/cmd_buf_not_full/cmd_buf_not_empty exactly.
//
// head and tail are monotonically increasing counters rather than raw
// array indices reset at capacity; this keeps the sortable range
// [tail+1, head) (or [tail, head) in batch-load mode) contiguous across
// wraps, which a raw-index version of the original's sort_buffer cannot
// guarantee once the ring has wrapped more than once.
type Ring struct {
	mu       sync.Mutex
	notFull  *sync.Cond
	notEmpty *sync.Cond

	slots []*Job
	head  int // next free logical slot
	tail  int // next job to dispatch (logical)
	count int

	policy       Policy
	batchLoading bool

	observer interfaces.Observer
}

// NewRing creates a ring with the given capacity and initial policy.
// A nil observer is replaced with a no-op so callers never need a nil check.
func NewRing(capacity int, policy Policy, observer interfaces.Observer) *Ring {
	if capacity <= 0 {
		capacity = constants.RingCapacity
	}
	if observer == nil {
		observer = noopObserver{}
	}
	r := &Ring{
		slots:    make([]*Job, capacity),
		policy:   policy,
		observer: observer,
	}
	r.notFull = sync.NewCond(&r.mu)
	r.notEmpty = sync.NewCond(&r.mu)
	return r
}

type noopObserver struct{}

func (noopObserver) ObserveSubmit(string)             {}
func (noopObserver) ObserveCompletion(string, uint64)  {}
func (noopObserver) ObserveRingStall()                {}
func (noopObserver) ObserveAdmissionFailure(string)    {}

// Capacity returns the ring's fixed capacity.
func (r *Ring) Capacity() int {
	return len(r.slots)
}

// Count returns the current number of queued jobs (including the
// in-flight job at tail, if any).
func (r *Ring) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// SetBatchLoading toggles batch-load mode, which widens the sortable
// range to include the tail slot since nothing is in flight yet (used by
// the benchmark generator while arrival_rate == 0).
func (r *Ring) SetBatchLoading(loading bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.batchLoading = loading
}

// SetPolicy atomically swaps the active ordering policy and re-sorts the
// ring in place, preserving any currently-dispatched job at tail.
func (r *Ring) SetPolicy(p Policy) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.policy = p
	r.sortLocked()
}

// Policy returns the active ordering policy.
func (r *Ring) Policy() Policy {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.policy
}

// Submit blocks while the ring is full, then inserts job at head,
// advances head, sorts the ring under the active policy, and signals
// the dispatcher.
func (r *Ring) Submit(job *Job) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for r.count == len(r.slots) {
		r.observer.ObserveRingStall()
		r.notFull.Wait()
	}

	r.slots[r.head%len(r.slots)] = job
	r.count++
	r.head++
	r.sortLocked()

	r.observer.ObserveSubmit(job.ID.String())
	r.notEmpty.Signal()
}

// ExpectedWait sums CPURemainingBurst across every currently queued job,
// used by the REPL's post-submit summary line.
func (r *Ring) ExpectedWait() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	wait := 0
	for i := r.tail; i < r.head; i++ {
		if j := r.slots[i%len(r.slots)]; j != nil {
			wait += j.CPURemainingBurst
		}
	}
	return wait
}

// Dequeue blocks while the ring is empty, then returns the job at tail
// without removing it — the dispatcher executes it in place so a policy
// re-sort can still observe (and must skip) the in-flight slot.
func (r *Ring) Dequeue() *Job {
	r.mu.Lock()
	defer r.mu.Unlock()

	for r.count == 0 {
		r.notEmpty.Wait()
	}

	job := r.slots[r.tail%len(r.slots)]
	r.notFull.Signal()
	return job
}

// Complete removes the job currently at tail and advances tail, signaling
// any producer waiting on not-full.
func (r *Ring) Complete() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.slots[r.tail%len(r.slots)] = nil
	r.count--
	r.tail++

	r.notFull.Signal()
}

// Snapshot returns every currently queued job (tail..head, in ring order)
// without removing them, for `list`-style reporting.
func (r *Ring) Snapshot() []*Job {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*Job, 0, r.count)
	for i := r.tail; i < r.head; i++ {
		if j := r.slots[i%len(r.slots)]; j != nil {
			out = append(out, j)
		}
	}
	return out
}

// sortLocked sorts the configured range under the active policy. Caller
// must hold r.mu. Range is [tail+1, head) normally, or [tail, head)
// during batch loading, since nothing is in flight yet in that mode.
func (r *Ring) sortLocked() {
	start := r.tail + 1
	if r.batchLoading {
		start = r.tail
	}
	sortRange(r.slots, start, r.head, r.policy)
}
