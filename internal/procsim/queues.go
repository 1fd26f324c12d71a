package procsim

// Queue is a single-threaded FIFO over *ProcessControlBlock, structurally
// the same ring-index-over-a-growable-slice shape as internal/batch's
// Ring, simplified: the process manager's main loop (IO/CPUScheduler/
// Dispatcher) runs on one goroutine, so there is no mutex or condition
// variable here — nothing else ever touches these queues concurrently.
type Queue struct {
	items []*ProcessControlBlock
	head  int // index of the next item to dequeue/peek ("Tail" in the reference queue)
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Enqueue appends p to the back of the queue.
func (q *Queue) Enqueue(p *ProcessControlBlock) {
	q.items = append(q.items, p)
}

// Dequeue removes and returns the front of the queue, or (nil, false) if
// empty.
func (q *Queue) Dequeue() (*ProcessControlBlock, bool) {
	if q.head >= len(q.items) {
		return nil, false
	}
	p := q.items[q.head]
	q.items[q.head] = nil
	q.head++
	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
	}
	return p, true
}

// pushFront re-inserts p at the front of the queue, used when admission
// fails and the head-of-line process must stay head-of-line.
func (q *Queue) pushFront(p *ProcessControlBlock) {
	if q.head > 0 {
		q.head--
		q.items[q.head] = p
		return
	}
	q.items = append([]*ProcessControlBlock{p}, q.items...)
}

// Peek returns the front of the queue without removing it, mirroring the
// reference Dispatcher's direct `Queues[RUNNINGQUEUE].Tail` read.
func (q *Queue) Peek() (*ProcessControlBlock, bool) {
	if q.head >= len(q.items) {
		return nil, false
	}
	return q.items[q.head], true
}

// Len reports how many processes are currently queued.
func (q *Queue) Len() int {
	return len(q.items) - q.head
}

// Snapshot returns every queued process, front to back, for inspection
// (e.g. a `list`-style REPL command over the simulation).
func (q *Queue) Snapshot() []*ProcessControlBlock {
	out := make([]*ProcessControlBlock, 0, q.Len())
	out = append(out, q.items[q.head:]...)
	return out
}

// Queues bundles the five named FIFOs the process manager moves PCBs
// through.
type Queues struct {
	Job     *Queue
	Ready   *Queue
	Running *Queue
	Waiting *Queue
	Exit    *Queue
}

// NewQueues builds an empty Queues set.
func NewQueues() *Queues {
	return &Queues{
		Job:     NewQueue(),
		Ready:   NewQueue(),
		Running: NewQueue(),
		Waiting: NewQueue(),
		Exit:    NewQueue(),
	}
}
