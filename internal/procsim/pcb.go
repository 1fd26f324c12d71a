// Package procsim implements the simulated process manager: a five-queue
// process lifecycle (job/ready/running/waiting/exit) driven by a
// pluggable CPU scheduling policy and memory admission manager.
package procsim

import (
	"time"

	"github.com/google/uuid"
)

// State is a process's position in the lifecycle.
type State int

const (
	StateNew State = iota
	StateReady
	StateRunning
	StateWaiting
	StateDone
)

func (s State) String() string {
	switch s {
	case StateNew:
		return "New"
	case StateReady:
		return "Ready"
	case StateRunning:
		return "Running"
	case StateWaiting:
		return "Waiting"
	case StateDone:
		return "Done"
	default:
		return "Unknown"
	}
}

// ProcessControlBlock tracks one simulated process through its entire
// lifecycle, mirroring the reference ProcessControlBlock struct.
type ProcessControlBlock struct {
	ID    uuid.UUID
	State State

	CPUBurstTime          time.Duration
	RemainingCPUBurstTime time.Duration
	IOBurstTime           time.Duration
	TimeIOBurstDone        time.Time

	TotalJobDuration time.Duration
	TimeInCPU        time.Duration
	TimeInReadyQueue time.Duration
	TimeInJobQueue   time.Duration
	TimeEnterWaiting time.Time

	MemoryRequested int

	JobArrivalTime time.Time
	JobStartTime   time.Time
	StartCPUTime   time.Time
	JobExitTime    time.Time
}

// NewPCB constructs a PCB freshly arrived in the job queue.
func NewPCB(cpuBurst, ioBurst, totalDuration time.Duration, memoryRequested int, arrival time.Time) *ProcessControlBlock {
	return &ProcessControlBlock{
		ID:                    uuid.New(),
		State:                 StateNew,
		CPUBurstTime:          cpuBurst,
		RemainingCPUBurstTime: cpuBurst,
		IOBurstTime:           ioBurst,
		TotalJobDuration:      totalDuration,
		MemoryRequested:       memoryRequested,
		JobArrivalTime:        arrival,
	}
}

// Complete reports whether the process has used its entire total job
// duration, the exact condition Dispatcher checks to move a process to
// the exit queue.
func (p *ProcessControlBlock) Complete() bool {
	return p.TimeInCPU >= p.TotalJobDuration
}
