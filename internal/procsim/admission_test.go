package procsim

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type toggleMemory struct {
	admit bool
}

func (t *toggleMemory) Admit(id uuid.UUID, bytes int) bool { return t.admit }
func (t *toggleMemory) Release(id uuid.UUID, bytes int)    {}
func (t *toggleMemory) Available() int64                   { return 0 }
func (t *toggleMemory) Name() string                       { return "toggle" }

func TestAdmitSuccessMovesToReady(t *testing.T) {
	queues := NewQueues()
	clock := NewSimClock(time.Unix(10, 0))
	pcb := NewPCB(time.Second, 0, time.Second, 64, time.Unix(5, 0))
	queues.Job.Enqueue(pcb)
	samples := &Samples{}

	Admit(queues, &toggleMemory{admit: true}, clock, samples)

	assert.Equal(t, 0, queues.Job.Len())
	ready, ok := queues.Ready.Peek()
	require.True(t, ok)
	assert.Equal(t, StateReady, ready.State)
	assert.Equal(t, 5*time.Second, ready.TimeInJobQueue)
	require.Len(t, samples.JobQueue, 1)
}

func TestAdmitFailureStallsAtFront(t *testing.T) {
	queues := NewQueues()
	clock := NewSimClock(time.Unix(0, 0))
	p1 := NewPCB(time.Second, 0, time.Second, 64, time.Unix(0, 0))
	p2 := NewPCB(time.Second, 0, time.Second, 64, time.Unix(0, 0))
	queues.Job.Enqueue(p1)
	queues.Job.Enqueue(p2)

	Admit(queues, &toggleMemory{admit: false}, clock, &Samples{})

	assert.Equal(t, 0, queues.Ready.Len())
	head, ok := queues.Job.Peek()
	require.True(t, ok)
	assert.Equal(t, p1.ID, head.ID)
	assert.Equal(t, 2, queues.Job.Len())
}

func TestAdmitEmptyJobQueueNoop(t *testing.T) {
	queues := NewQueues()
	clock := NewSimClock(time.Unix(0, 0))
	assert.NotPanics(t, func() {
		Admit(queues, &toggleMemory{admit: true}, clock, &Samples{})
	})
}
