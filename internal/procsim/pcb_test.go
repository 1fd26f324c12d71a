package procsim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewPCB(t *testing.T) {
	arrival := time.Now()
	pcb := NewPCB(4*time.Second, time.Second, 10*time.Second, 128, arrival)

	assert.Equal(t, StateNew, pcb.State)
	assert.Equal(t, 4*time.Second, pcb.CPUBurstTime)
	assert.Equal(t, 4*time.Second, pcb.RemainingCPUBurstTime)
	assert.Equal(t, 128, pcb.MemoryRequested)
	assert.Equal(t, arrival, pcb.JobArrivalTime)
	assert.NotEqual(t, pcb.ID.String(), "")
}

func TestPCBComplete(t *testing.T) {
	pcb := NewPCB(time.Second, 0, 5*time.Second, 64, time.Now())
	assert.False(t, pcb.Complete())

	pcb.TimeInCPU = 5 * time.Second
	assert.True(t, pcb.Complete())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "Ready", StateReady.String())
	assert.Equal(t, "Unknown", State(99).String())
}
