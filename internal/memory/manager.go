// Package memory implements the four memory admission policies the
// simulated process manager can be configured with: contiguous
// allocation, paging, best-fit, and worst-fit.
package memory

import (
	"fmt"

	"github.com/jsosnowski/aubatch"
	"github.com/jsosnowski/aubatch/internal/interfaces"
)

// Manager is the memory admission interface every policy implements.
type Manager = interfaces.MemoryManager

// Policy names accepted by New, matching the reference tool's
// -m/--memory flag values.
const (
	PolicyContiguous = "contiguous"
	PolicyPaging     = "paging"
	PolicyBestFit    = "bestfit"
	PolicyWorstFit   = "worstfit"
)

// New constructs a Manager for the named policy over totalBytes of
// simulated memory. WorstFit is the reference tool's default.
func New(policy string, totalBytes int64) (Manager, error) {
	switch policy {
	case PolicyContiguous:
		return NewContiguous(totalBytes), nil
	case PolicyPaging:
		return NewPaging(totalBytes), nil
	case PolicyBestFit:
		return NewFreeListManager("BestFit", totalBytes, selectBestFit), nil
	case PolicyWorstFit:
		return NewFreeListManager("WorstFit", totalBytes, selectWorstFit), nil
	default:
		return nil, aubatch.NewError("memory.New", aubatch.ErrCodeUserInput, fmt.Sprintf("unknown memory policy %q", policy))
	}
}
