package batch

import "sync"

// FinishedLog is an append-only record of completed jobs, owned by the
// dispatcher worker and read by the REPL for `list` and metrics reporting.
// Entries are never mutated once appended, so reads only need to
// synchronize with concurrent appends, not with each other.
type FinishedLog struct {
	mu      sync.RWMutex
	entries []*FinishedJob
}

// NewFinishedLog creates an empty finished-job log.
func NewFinishedLog() *FinishedLog {
	return &FinishedLog{}
}

// Append adds a completed job to the log.
func (l *FinishedLog) Append(job *FinishedJob) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, job)
}

// Len returns the number of completed jobs recorded so far.
func (l *FinishedLog) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

// Snapshot returns a copy of every entry recorded so far, in completion
// order.
func (l *FinishedLog) Snapshot() []*FinishedJob {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]*FinishedJob, len(l.entries))
	copy(out, l.entries)
	return out
}

// Clear empties the log. Used by the benchmark command so a subsequent
// `test` run or `quit` report is not polluted by a prior benchmark.
func (l *FinishedLog) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = nil
}
