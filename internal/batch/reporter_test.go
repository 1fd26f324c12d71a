package batch

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildReportEmpty(t *testing.T) {
	_, ok := BuildReport("FCFS", nil, 0)
	assert.False(t, ok)
}

func TestBuildReportAggregates(t *testing.T) {
	finished := []*FinishedJob{
		{
			TurnaroundTime: 10 * time.Second,
			WaitingTime:    4 * time.Second,
			ResponseTime:   2 * time.Second,
			CPUBurst:       6,
		},
		{
			TurnaroundTime: 20 * time.Second,
			WaitingTime:    8 * time.Second,
			ResponseTime:   5 * time.Second,
			CPUBurst:       12,
		},
	}

	r, ok := BuildReport("SJF", finished, 3)
	require.True(t, ok)

	assert.Equal(t, "SJF", r.Policy)
	assert.Equal(t, 2, r.JobsCompleted)
	assert.Equal(t, 5, r.JobsSubmitted)
	assert.InDelta(t, 15.0, r.AvgTurnaroundSeconds, 0.001)
	assert.InDelta(t, 6.0, r.AvgWaitingSeconds, 0.001)
	assert.InDelta(t, 3.5, r.AvgResponseSeconds, 0.001)
	assert.InDelta(t, 9.0, r.AvgCPUBurstSeconds, 0.001)
	assert.Equal(t, 18, r.TotalCPUBurstSeconds)
	assert.Equal(t, 10, r.MinTurnaroundSeconds)
	assert.Equal(t, 20, r.MaxTurnaroundSeconds)
}

func TestReportWriteToDoesNotPanic(t *testing.T) {
	r, ok := BuildReport("FCFS", []*FinishedJob{{TurnaroundTime: time.Second, CPUBurst: 1}}, 0)
	require.True(t, ok)

	var buf bytes.Buffer
	r.WriteTo(&buf)
	assert.Contains(t, buf.String(), "Reporting Metrics for FCFS")
	assert.Contains(t, buf.String(), "Total Number of Jobs Completed: 1")
}
