// Package interfaces holds shared interface definitions used across
// internal packages. Keeping them separate from the root package avoids
// import cycles: internal/batch, internal/memory, and internal/procsim
// all need to accept a Logger/Observer without importing the root
// package that wires them together.
package interfaces

import (
	"time"

	"github.com/google/uuid"
)

// MemoryManager is the interface every simulated memory admission policy
// implements (contiguous, paging, best-fit, worst-fit).
type MemoryManager interface {
	// Admit attempts to reserve bytes for the process identified by id.
	// Returns false if no policy-appropriate space is currently available.
	Admit(id uuid.UUID, bytes int) bool

	// Release returns the space previously admitted for id.
	Release(id uuid.UUID, bytes int)

	// Available reports the amount of free space by the policy's own
	// accounting (bytes for Contiguous/BestFit/WorstFit, page-bytes for Paging).
	Available() int64

	// Name identifies the policy, used in reports and log lines.
	Name() string
}

// Logger is the minimal logging surface internal packages depend on.
type Logger interface {
	Printf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// Observer receives job lifecycle events for metrics collection.
// Implementations must be thread-safe: the batch ring and dispatcher call
// these from different goroutines.
type Observer interface {
	ObserveSubmit(jobID string)
	ObserveCompletion(jobID string, turnaroundNs uint64)
	ObserveRingStall()
	ObserveAdmissionFailure(jobID string)
}

// Clock abstracts time so the process-manager simulation can be driven by
// either a real or virtual clock in tests.
type Clock interface {
	Now() time.Time
}

// CPU abstracts the act of running a job/process for a burst, so dispatch
// logic can be exercised deterministically in tests without sleeping.
type CPU interface {
	OnCPU(jobID string, burst time.Duration)
}
