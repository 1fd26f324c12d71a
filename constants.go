package aubatch

import (
	"time"

	"github.com/jsosnowski/aubatch/internal/constants"
)

// Re-exported sizing constants for the public API.
const (
	RingCapacity            = constants.RingCapacity
	MaxCmdLen                = constants.MaxCmdLen
	TotalMemoryBytes         = constants.TotalMemoryBytes
	PageSize                 = constants.PageSize
	TotalPages               = constants.TotalPages
	BookkeepingArrivalCount  = constants.BookkeepingArrivalCount
)

// DefaultQuantum is the round-robin time slice.
const DefaultQuantum time.Duration = constants.DefaultQuantum
