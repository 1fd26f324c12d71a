// Package batch implements the batch job scheduler subsystem: a bounded
// job ring, pluggable ordering policy, dispatcher worker, benchmark
// generator, and metrics reporter.
package batch

import (
	"time"

	"github.com/google/uuid"
)

// Job is a submitted, possibly in-flight unit of work.
type Job struct {
	ID                uuid.UUID
	Cmd               string
	ArrivalTime       time.Time
	CPUBurst          int
	CPURemainingBurst int
	Priority          int
	Interruptions     int
	// FirstTimeOnCPU is the zero time.Time until the dispatcher first runs
	// this job; a non-zero value is the sentinel for "already dispatched".
	FirstTimeOnCPU time.Time
}

// NewJob constructs a submitted job, stamping ArrivalTime at creation time
// to mirror the reference scheduler capturing `time(NULL)` at enqueue.
func NewJob(cmd string, cpuBurst, priority int) *Job {
	j := getJob()
	j.ID = uuid.New()
	j.Cmd = cmd
	j.ArrivalTime = time.Now()
	j.CPUBurst = cpuBurst
	j.CPURemainingBurst = cpuBurst
	j.Priority = priority
	return j
}

// Dispatched reports whether the dispatcher has already run this job once.
func (j *Job) Dispatched() bool {
	return !j.FirstTimeOnCPU.IsZero()
}

// FinishedJob is a completed job's snapshot plus derived timing metrics.
type FinishedJob struct {
	ID             uuid.UUID
	Cmd            string
	ArrivalTime    time.Time
	CPUBurst       int
	Priority       int
	Interruptions  int
	FirstTimeOnCPU time.Time
	FinishTime     time.Time
	TurnaroundTime time.Duration
	WaitingTime    time.Duration
	ResponseTime   time.Duration
}

// Finish derives a FinishedJob from job at the given completion time.
// CPUBurst is recomputed from the elapsed wall time between first dispatch
// and finish, reflecting the time the job actually occupied the dispatcher
// rather than its declared burst.
func Finish(j *Job, finishTime time.Time) *FinishedJob {
	actualBurst := finishTime.Sub(j.FirstTimeOnCPU)

	turnaround := finishTime.Sub(j.ArrivalTime)
	waiting := turnaround - actualBurst
	if turnaround == 0 {
		waiting = 0
	}

	return &FinishedJob{
		ID:             j.ID,
		Cmd:            j.Cmd,
		ArrivalTime:    j.ArrivalTime,
		CPUBurst:       int(actualBurst.Seconds()),
		Priority:       j.Priority,
		Interruptions:  j.Interruptions,
		FirstTimeOnCPU: j.FirstTimeOnCPU,
		FinishTime:     finishTime,
		TurnaroundTime: turnaround,
		WaitingTime:    waiting,
		ResponseTime:   j.FirstTimeOnCPU.Sub(j.ArrivalTime),
	}
}
