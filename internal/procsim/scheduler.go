package procsim

// SchedulingPolicy selects how CPUScheduler picks the next process from
// the ready queue.
type SchedulingPolicy int

const (
	SchedFCFS SchedulingPolicy = iota
	SchedRR
	SchedSRTF
)

// CPUScheduler dequeues the next process to run per policy and moves it
// to the running queue, mirroring CPUScheduler(whichPolicy).
func CPUScheduler(policy SchedulingPolicy, queues *Queues) {
	var selected *ProcessControlBlock
	if policy == SchedFCFS || policy == SchedRR {
		selected, _ = queues.Ready.Dequeue()
	} else {
		selected = srtf(queues.Ready)
	}
	if selected == nil {
		return
	}
	selected.State = StateRunning
	queues.Running.Enqueue(selected)
}

// srtf performs the reference SRTF() algorithm exactly: dequeue the
// first candidate as the initial selection, then rotate through the
// rest of the ready queue exactly once — tracked via a sentinel ID so
// the scan stops after one full pass — re-enqueueing whichever of the
// current selection and the next candidate loses, and keeping the
// winner out of the queue until the pass completes.
func srtf(ready *Queue) *ProcessControlBlock {
	current, ok := ready.Dequeue()
	if !ok {
		return nil
	}

	shortestRemaining := current.TotalJobDuration - current.TimeInCPU
	sentinelID := current.ID
	ready.Enqueue(current)

	selected := (*ProcessControlBlock)(nil)
	current, ok = ready.Dequeue()
	for ok {
		remaining := current.TotalJobDuration - current.TimeInCPU
		if shortestRemaining >= remaining {
			if selected != nil {
				ready.Enqueue(selected)
			}
			selected = current
			shortestRemaining = remaining
		} else {
			ready.Enqueue(current)
		}

		if current.ID == sentinelID {
			break
		}
		current, ok = ready.Dequeue()
	}

	return selected
}
