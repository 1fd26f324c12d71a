package procsim

import (
	"testing"
	"time"

	"github.com/jsosnowski/aubatch/internal/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManagerUnknownPolicy(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MemoryPolicy = "bogus"
	_, err := NewManager(cfg)
	assert.Error(t, err)
}

func TestNewManagerDefaults(t *testing.T) {
	m, err := NewManager(DefaultConfig())
	require.NoError(t, err)
	assert.NotNil(t, m.Queues())
	assert.False(t, m.Stopped())
}

func TestManagerTickDrivesArrivalThroughLifecycle(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MemoryPolicy = memory.PolicyContiguous
	cfg.BookkeepingAt = 1000 // high enough that the job completes before bookkeeping fires
	m, err := NewManager(cfg)
	require.NoError(t, err)

	pcb := NewPCB(time.Second, 0, time.Second, 64, cfg.Clock.Now())
	m.Arrive(pcb)

	for i := 0; i < 10 && m.queues.Exit.Len() == 0; i++ {
		m.Tick()
	}

	require.Equal(t, 1, m.queues.Exit.Len())
	assert.Equal(t, 1, m.samples.Completed)
}

func TestManagerTickNoopWhenStopped(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BookkeepingAt = 0
	m, err := NewManager(cfg)
	require.NoError(t, err)

	m.Tick()
	assert.True(t, m.Stopped())
	assert.NotPanics(t, func() { m.Tick() })
}
