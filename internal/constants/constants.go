// Package constants holds the fixed sizing parameters for the batch
// scheduler and simulated process manager.
package constants

import "time"

// Job ring sizing (§A.2/A.4 of SPEC_FULL.md)
const (
	// RingCapacity is the fixed capacity of the batch job ring.
	RingCapacity = 10

	// MaxCmdLen is the maximum accepted length of a submitted command line,
	// mirroring the original REPL's fixed input buffer.
	MaxCmdLen = 512
)

// Simulated memory sizing (§B.3)
const (
	// TotalMemoryBytes is the total amount of memory the simulated process
	// manager admits jobs against.
	TotalMemoryBytes = 1048576

	// PageSize is the page granularity used by the Paging memory manager.
	PageSize = 256

	// TotalPages is TotalMemoryBytes/PageSize, precomputed since the paging
	// manager's conservation invariant is checked on every call.
	TotalPages = TotalMemoryBytes / PageSize
)

// Scheduling defaults (§B.4, §B.7, §B.9)
const (
	// DefaultQuantum is the time slice granted to a process under
	// round-robin scheduling.
	DefaultQuantum = 2 * time.Second

	// BookkeepingArrivalCount is the number of arrivals the simulated
	// process manager processes before it computes and reports averages.
	BookkeepingArrivalCount = 250
)
