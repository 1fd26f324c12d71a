package procsim

import (
	"time"

	"github.com/jsosnowski/aubatch/internal/interfaces"
)

// Samples accumulates the duration samples Dispatcher feeds into
// bookkeeping, mirroring the running SumMetrics totals in BookKeeping().
type Samples struct {
	Turnaround []time.Duration
	Response   []time.Duration
	Waiting    []time.Duration
	JobQueue   []time.Duration
	CPUBurst   []time.Duration
	Completed  int
}

func (s *Samples) addTurnaround(d time.Duration) { s.Turnaround = append(s.Turnaround, d) }
func (s *Samples) addResponse(d time.Duration)    { s.Response = append(s.Response, d) }
func (s *Samples) addWaiting(d time.Duration)     { s.Waiting = append(s.Waiting, d) }
func (s *Samples) addJobQueue(d time.Duration)    { s.JobQueue = append(s.JobQueue, d) }
func (s *Samples) addCPUBurst(d time.Duration)    { s.CPUBurst = append(s.CPUBurst, d) }

// Dispatch inspects the tail of RunningQueue (a no-op when empty). The
// first time a process reaches the CPU, its response-time sample is
// recorded. A process whose total duration is used up moves to Done via
// ExitQueue and releases its memory; otherwise it's given a burst and
// sent back around through IO/CPUScheduler on the next tick, mirroring
// Dispatcher().
func Dispatch(queues *Queues, policy SchedulingPolicy, quantum time.Duration, mem interfaces.MemoryManager, cpu interfaces.CPU, clock interfaces.Clock, samples *Samples) {
	pcb, ok := queues.Running.Peek()
	if !ok {
		return
	}

	if pcb.StartCPUTime.IsZero() {
		pcb.StartCPUTime = clock.Now()
		samples.addResponse(pcb.StartCPUTime.Sub(pcb.JobArrivalTime))
	}

	if pcb.Complete() {
		queues.Running.Dequeue()
		mem.Release(pcb.ID, pcb.MemoryRequested)
		pcb.State = StateDone
		pcb.JobExitTime = clock.Now()
		queues.Exit.Enqueue(pcb)

		samples.addTurnaround(pcb.JobExitTime.Sub(pcb.JobArrivalTime))
		samples.addWaiting(pcb.TimeInReadyQueue)
		samples.addCPUBurst(pcb.TimeInCPU)
		samples.Completed++
		return
	}

	// Non-RR processes always run their full declared burst, matching
	// Dispatcher()'s unconditional processOnCPU->CpuBurstTime use for
	// FCFS/SRTF; RemainingCPUBurstTime is read instead for RR since a
	// quantum-sliced process may already be partway through its burst.
	burst := pcb.CPUBurstTime
	if policy == SchedRR {
		burst = pcb.RemainingCPUBurstTime
		if quantum < burst {
			burst = quantum
		}
	}

	if !pcb.JobStartTime.IsZero() {
		pcb.TimeInReadyQueue += clock.Now().Sub(pcb.JobStartTime)
	}

	cpu.OnCPU(pcb.ID.String(), burst)

	pcb.RemainingCPUBurstTime -= burst
	pcb.TimeInCPU += burst
}
