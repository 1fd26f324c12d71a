package aubatch

import (
	"testing"
	"time"
)

func TestMetrics(t *testing.T) {
	m := NewMetrics()

	snap := m.Snapshot()
	if snap.JobsCompleted != 0 {
		t.Errorf("Expected 0 initial completions, got %d", snap.JobsCompleted)
	}

	m.RecordSubmit()
	m.RecordSubmit()
	m.RecordCompletion(1_000_000) // 1ms
	m.RecordCompletion(2_000_000) // 2ms

	snap = m.Snapshot()

	if snap.JobsSubmitted != 2 {
		t.Errorf("Expected 2 submitted jobs, got %d", snap.JobsSubmitted)
	}
	if snap.JobsCompleted != 2 {
		t.Errorf("Expected 2 completed jobs, got %d", snap.JobsCompleted)
	}
}

func TestMetricsRingStallsAndAdmissionFailures(t *testing.T) {
	m := NewMetrics()

	m.RecordRingStall()
	m.RecordRingStall()
	m.RecordAdmissionFailure()

	snap := m.Snapshot()
	if snap.RingStalls != 2 {
		t.Errorf("Expected 2 ring stalls, got %d", snap.RingStalls)
	}
	if snap.AdmissionFailures != 1 {
		t.Errorf("Expected 1 admission failure, got %d", snap.AdmissionFailures)
	}
}

func TestMetricsAvgTurnaround(t *testing.T) {
	m := NewMetrics()

	m.RecordCompletion(1_000_000) // 1ms
	m.RecordCompletion(3_000_000) // 3ms

	snap := m.Snapshot()
	expectedAvgNs := uint64(2_000_000) // 2ms
	if snap.AvgTurnaroundNs != expectedAvgNs {
		t.Errorf("Expected avg turnaround %d ns, got %d ns", expectedAvgNs, snap.AvgTurnaroundNs)
	}
}

func TestMetricsUptime(t *testing.T) {
	m := NewMetrics()

	time.Sleep(10 * time.Millisecond)

	snap := m.Snapshot()
	if snap.UptimeNs < 10*1000000 {
		t.Errorf("Expected uptime >= 10ms, got %d ns", snap.UptimeNs)
	}

	m.Stop()
	time.Sleep(5 * time.Millisecond)

	snap2 := m.Snapshot()
	if snap2.UptimeNs > snap.UptimeNs+2*1000000 {
		t.Errorf("Uptime increased too much after stop: %d -> %d", snap.UptimeNs, snap2.UptimeNs)
	}
}

func TestMetricsReset(t *testing.T) {
	m := NewMetrics()

	m.RecordSubmit()
	m.RecordCompletion(1_000_000)
	m.RecordRingStall()

	snap := m.Snapshot()
	if snap.JobsCompleted == 0 {
		t.Error("Expected some completions before reset")
	}

	m.Reset()

	snap = m.Snapshot()
	if snap.JobsSubmitted != 0 {
		t.Errorf("Expected 0 submitted after reset, got %d", snap.JobsSubmitted)
	}
	if snap.JobsCompleted != 0 {
		t.Errorf("Expected 0 completed after reset, got %d", snap.JobsCompleted)
	}
	if snap.RingStalls != 0 {
		t.Errorf("Expected 0 ring stalls after reset, got %d", snap.RingStalls)
	}
}

func TestObserver(t *testing.T) {
	observer := &NoOpObserver{}
	observer.ObserveSubmit("job-1")
	observer.ObserveCompletion("job-1", 1_000_000)
	observer.ObserveRingStall()
	observer.ObserveAdmissionFailure("job-2")

	m := NewMetrics()
	metricsObserver := NewMetricsObserver(m)

	metricsObserver.ObserveSubmit("job-1")
	metricsObserver.ObserveCompletion("job-1", 1_000_000)

	snap := m.Snapshot()
	if snap.JobsSubmitted != 1 {
		t.Errorf("Expected 1 submitted job from observer, got %d", snap.JobsSubmitted)
	}
	if snap.JobsCompleted != 1 {
		t.Errorf("Expected 1 completed job from observer, got %d", snap.JobsCompleted)
	}
}

func TestMetricsThroughput(t *testing.T) {
	m := NewMetrics()

	startTime := time.Now()
	m.StartTime.Store(startTime.UnixNano())

	m.RecordCompletion(1_000_000)
	m.RecordCompletion(2_000_000)

	stopTime := startTime.Add(2 * time.Second)
	m.StopTime.Store(stopTime.UnixNano())

	snap := m.Snapshot()
	if snap.Throughput < 0.9 || snap.Throughput > 1.1 {
		t.Errorf("Expected throughput ~1.0 completions/sec, got %.2f", snap.Throughput)
	}
}

func TestMetricsHistogramPercentiles(t *testing.T) {
	m := NewMetrics()

	for i := 0; i < 50; i++ {
		m.RecordCompletion(5_000_000) // 5ms
	}
	for i := 0; i < 49; i++ {
		m.RecordCompletion(500_000_000) // 500ms
	}
	m.RecordCompletion(50_000_000_000) // 50s (the single slowest job)

	snap := m.Snapshot()

	if snap.JobsCompleted != 100 {
		t.Errorf("Expected 100 completions, got %d", snap.JobsCompleted)
	}

	if snap.TurnaroundP50Ns < 1_000_000 || snap.TurnaroundP50Ns > 100_000_000 {
		t.Errorf("Expected P50 in 1ms-100ms range, got %d ns", snap.TurnaroundP50Ns)
	}

	if snap.TurnaroundP99Ns < 1_000_000_000 {
		t.Errorf("Expected P99 in seconds range, got %d ns", snap.TurnaroundP99Ns)
	}

	totalInBuckets := uint64(0)
	for i := 0; i < len(snap.TurnaroundHistogram); i++ {
		totalInBuckets += snap.TurnaroundHistogram[i]
	}
	if totalInBuckets == 0 {
		t.Error("Expected histogram buckets to be populated")
	}
}
