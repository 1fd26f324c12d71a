package procsim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pcbWithRemaining(remaining time.Duration) *ProcessControlBlock {
	return NewPCB(remaining, 0, remaining, 1, time.Now())
}

// TestSRTFSelectsShortestRemaining exercises the one-pass rotation with
// P1(remaining=8), P2(remaining=3), P3(remaining=5): SRTF must select P2.
// A single dequeue/enqueue pass that holds the running-best out of the
// queue necessarily rotates the untouched entries, so the two losers come
// back in [P3, P1] order rather than their original [P1, P3] order — this
// is the literal behavior of the one-pass algorithm, not a bug.
func TestSRTFSelectsShortestRemaining(t *testing.T) {
	ready := NewQueue()
	p1 := pcbWithRemaining(8 * time.Second)
	p2 := pcbWithRemaining(3 * time.Second)
	p3 := pcbWithRemaining(5 * time.Second)
	ready.Enqueue(p1)
	ready.Enqueue(p2)
	ready.Enqueue(p3)

	selected := srtf(ready)
	require.NotNil(t, selected)
	assert.Equal(t, p2.ID, selected.ID)

	remaining := ready.Snapshot()
	require.Len(t, remaining, 2)
	assert.Equal(t, p3.ID, remaining[0].ID)
	assert.Equal(t, p1.ID, remaining[1].ID)
}

func TestSRTFSingleProcess(t *testing.T) {
	ready := NewQueue()
	p1 := pcbWithRemaining(4 * time.Second)
	ready.Enqueue(p1)

	selected := srtf(ready)
	require.NotNil(t, selected)
	assert.Equal(t, p1.ID, selected.ID)
	assert.Equal(t, 0, ready.Len())
}

func TestSRTFEmptyQueue(t *testing.T) {
	ready := NewQueue()
	assert.Nil(t, srtf(ready))
}

func TestCPUSchedulerFCFS(t *testing.T) {
	queues := NewQueues()
	p1 := pcbWithRemaining(time.Second)
	p2 := pcbWithRemaining(time.Second)
	queues.Ready.Enqueue(p1)
	queues.Ready.Enqueue(p2)

	CPUScheduler(SchedFCFS, queues)

	running, ok := queues.Running.Peek()
	require.True(t, ok)
	assert.Equal(t, p1.ID, running.ID)
	assert.Equal(t, StateRunning, running.State)
	assert.Equal(t, 1, queues.Ready.Len())
}

func TestCPUSchedulerEmptyReady(t *testing.T) {
	queues := NewQueues()
	CPUScheduler(SchedFCFS, queues)
	assert.Equal(t, 0, queues.Running.Len())
}

func TestCPUSchedulerSRTF(t *testing.T) {
	queues := NewQueues()
	p1 := pcbWithRemaining(8 * time.Second)
	p2 := pcbWithRemaining(3 * time.Second)
	queues.Ready.Enqueue(p1)
	queues.Ready.Enqueue(p2)

	CPUScheduler(SchedSRTF, queues)

	running, ok := queues.Running.Peek()
	require.True(t, ok)
	assert.Equal(t, p2.ID, running.ID)
}
