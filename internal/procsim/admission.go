package procsim

import (
	"github.com/jsosnowski/aubatch/internal/interfaces"
)

// Admit drains JobQueue head-first, admitting each process's memory
// request through mem, exactly as LongtermScheduler() loops while its
// dequeue keeps returning a process. The first admission failure
// re-enqueues that process at the front of JobQueue and stops scanning —
// a long-term scheduler that can't fit the head of the line doesn't skip
// ahead to try a smaller job behind it.
func Admit(queues *Queues, mem interfaces.MemoryManager, clock interfaces.Clock, samples *Samples) {
	for {
		pcb, ok := queues.Job.Dequeue()
		if !ok {
			return
		}

		if !mem.Admit(pcb.ID, pcb.MemoryRequested) {
			queues.Job.pushFront(pcb)
			return
		}

		pcb.TimeInJobQueue = clock.Now().Sub(pcb.JobArrivalTime)
		samples.addJobQueue(pcb.TimeInJobQueue)
		pcb.JobStartTime = clock.Now()
		pcb.State = StateReady
		queues.Ready.Enqueue(pcb)
	}
}
