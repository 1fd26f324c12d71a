package procsim

import (
	"github.com/jsosnowski/aubatch/internal/interfaces"
)

// IO performs one tick of I/O handling: the process currently on the CPU
// either moves to the waiting queue (burst exhausted) or back to ready
// (RR quantum expired mid-burst), then the waiting queue is scanned
// exactly once for processes whose I/O has completed, mirroring IO().
func IO(queues *Queues, clock interfaces.Clock) {
	if current, ok := queues.Running.Dequeue(); ok {
		if current.RemainingCPUBurstTime <= 0 {
			current.TimeEnterWaiting = clock.Now()
			current.TimeIOBurstDone = clock.Now().Add(current.IOBurstTime)
			current.State = StateWaiting
			queues.Waiting.Enqueue(current)
		} else {
			current.JobStartTime = clock.Now()
			current.State = StateReady
			queues.Ready.Enqueue(current)
		}
	}

	rotateWaiting(queues.Waiting, queues.Ready, clock)
}

// rotateWaiting scans the waiting queue exactly once using the same
// sentinel-ID technique SRTF uses: remember the first process's ID,
// requeue everyone whose I/O hasn't completed, and stop once that first
// process comes back around.
func rotateWaiting(waiting, ready *Queue, clock interfaces.Clock) {
	first, ok := waiting.Dequeue()
	if !ok {
		return
	}
	sentinelID := first.ID
	waiting.Enqueue(first)

	current, ok := waiting.Dequeue()
	for ok {
		if !clock.Now().Before(current.TimeIOBurstDone) {
			current.RemainingCPUBurstTime = current.CPUBurstTime
			current.JobStartTime = clock.Now()
			current.State = StateReady
			ready.Enqueue(current)
		} else {
			waiting.Enqueue(current)
		}

		if current.ID == sentinelID {
			break
		}
		current, ok = waiting.Dequeue()
	}
}
