package aubatch

import (
	"sync/atomic"
	"time"
)

// TurnaroundBuckets defines the turnaround-time histogram buckets in
// nanoseconds. Buckets cover from 1ms to 100s with logarithmic spacing,
// matching the range of simulated job burst/turnaround times.
var TurnaroundBuckets = []uint64{
	1_000_000,       // 1ms
	10_000_000,      // 10ms
	100_000_000,     // 100ms
	1_000_000_000,   // 1s
	10_000_000_000,  // 10s
	100_000_000_000, // 100s
}

const numTurnaroundBuckets = 6

// Metrics tracks job lifecycle statistics for a batch scheduler or
// simulated process manager run.
type Metrics struct {
	// Job lifecycle counters
	JobsSubmitted     atomic.Uint64 // Total jobs accepted into the ring/job queue
	JobsCompleted     atomic.Uint64 // Total jobs that finished dispatch/execution
	RingStalls        atomic.Uint64 // Times a producer blocked on a full ring
	AdmissionFailures atomic.Uint64 // Times a memory manager refused to admit a job

	// Turnaround-time tracking
	TotalTurnaroundNs atomic.Uint64 // Cumulative turnaround time in nanoseconds
	TurnaroundCount   atomic.Uint64 // Number of completions contributing to the sum

	// Turnaround histogram buckets (cumulative counts)
	// Each bucket[i] contains the count of completions with turnaround <= TurnaroundBuckets[i]
	TurnaroundHistogram [numTurnaroundBuckets]atomic.Uint64

	// Run lifecycle
	StartTime atomic.Int64 // Run start timestamp (UnixNano)
	StopTime  atomic.Int64 // Run stop timestamp (UnixNano)
}

// NewMetrics creates a new metrics instance.
func NewMetrics() *Metrics {
	m := &Metrics{}
	m.StartTime.Store(time.Now().UnixNano())
	return m
}

// RecordSubmit records a job entering the ring or job queue.
func (m *Metrics) RecordSubmit() {
	m.JobsSubmitted.Add(1)
}

// RecordCompletion records a job finishing, with its total turnaround time.
func (m *Metrics) RecordCompletion(turnaroundNs uint64) {
	m.JobsCompleted.Add(1)
	m.TotalTurnaroundNs.Add(turnaroundNs)
	m.TurnaroundCount.Add(1)

	for i, bucket := range TurnaroundBuckets {
		if turnaroundNs <= bucket {
			m.TurnaroundHistogram[i].Add(1)
		}
	}
}

// RecordRingStall records a producer blocking because the ring was full.
func (m *Metrics) RecordRingStall() {
	m.RingStalls.Add(1)
}

// RecordAdmissionFailure records a memory manager refusing to admit a job.
func (m *Metrics) RecordAdmissionFailure() {
	m.AdmissionFailures.Add(1)
}

// Stop marks the run as stopped.
func (m *Metrics) Stop() {
	m.StopTime.Store(time.Now().UnixNano())
}

// MetricsSnapshot is a point-in-time snapshot of metrics.
type MetricsSnapshot struct {
	JobsSubmitted     uint64
	JobsCompleted     uint64
	RingStalls        uint64
	AdmissionFailures uint64

	AvgTurnaroundNs uint64
	UptimeNs        uint64

	// Turnaround percentiles (in nanoseconds)
	TurnaroundP50Ns  uint64
	TurnaroundP99Ns  uint64
	TurnaroundP999Ns uint64

	TurnaroundHistogram [numTurnaroundBuckets]uint64

	Throughput float64 // completions per second
}

// Snapshot creates a point-in-time snapshot of metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	snap := MetricsSnapshot{
		JobsSubmitted:     m.JobsSubmitted.Load(),
		JobsCompleted:     m.JobsCompleted.Load(),
		RingStalls:        m.RingStalls.Load(),
		AdmissionFailures: m.AdmissionFailures.Load(),
	}

	turnaroundTotal := m.TotalTurnaroundNs.Load()
	turnaroundCount := m.TurnaroundCount.Load()
	if turnaroundCount > 0 {
		snap.AvgTurnaroundNs = turnaroundTotal / turnaroundCount
	}

	startTime := m.StartTime.Load()
	stopTime := m.StopTime.Load()
	if stopTime > 0 {
		snap.UptimeNs = uint64(stopTime - startTime)
	} else {
		snap.UptimeNs = uint64(time.Now().UnixNano() - startTime)
	}

	if snap.UptimeNs > 0 {
		uptimeSeconds := float64(snap.UptimeNs) / 1e9
		snap.Throughput = float64(snap.JobsCompleted) / uptimeSeconds
	}

	for i := 0; i < numTurnaroundBuckets; i++ {
		snap.TurnaroundHistogram[i] = m.TurnaroundHistogram[i].Load()
	}

	if turnaroundCount > 0 {
		snap.TurnaroundP50Ns = m.calculatePercentile(0.50)
		snap.TurnaroundP99Ns = m.calculatePercentile(0.99)
		snap.TurnaroundP999Ns = m.calculatePercentile(0.999)
	}

	return snap
}

// calculatePercentile estimates the turnaround time at the given
// percentile (0.0-1.0) using linear interpolation between histogram buckets.
func (m *Metrics) calculatePercentile(percentile float64) uint64 {
	totalCompletions := m.TurnaroundCount.Load()
	if totalCompletions == 0 {
		return 0
	}

	targetCount := uint64(float64(totalCompletions) * percentile)

	prevBucket := uint64(0)
	for i, bucket := range TurnaroundBuckets {
		bucketCount := m.TurnaroundHistogram[i].Load()
		if bucketCount >= targetCount {
			prevCount := uint64(0)
			if i > 0 {
				prevCount = m.TurnaroundHistogram[i-1].Load()
			}
			if bucketCount == prevCount {
				return bucket
			}
			fraction := float64(targetCount-prevCount) / float64(bucketCount-prevCount)
			return prevBucket + uint64(fraction*float64(bucket-prevBucket))
		}
		prevBucket = bucket
	}

	return TurnaroundBuckets[numTurnaroundBuckets-1]
}

// Reset resets all metrics counters (useful for testing).
func (m *Metrics) Reset() {
	m.JobsSubmitted.Store(0)
	m.JobsCompleted.Store(0)
	m.RingStalls.Store(0)
	m.AdmissionFailures.Store(0)
	m.TotalTurnaroundNs.Store(0)
	m.TurnaroundCount.Store(0)
	for i := 0; i < numTurnaroundBuckets; i++ {
		m.TurnaroundHistogram[i].Store(0)
	}
	m.StartTime.Store(time.Now().UnixNano())
	m.StopTime.Store(0)
}

// Observer allows pluggable metrics collection for job lifecycle events.
type Observer interface {
	// ObserveSubmit is called when a job enters the ring or job queue.
	ObserveSubmit(jobID string)

	// ObserveCompletion is called when a job finishes, with its turnaround time.
	ObserveCompletion(jobID string, turnaroundNs uint64)

	// ObserveRingStall is called when a producer blocks on a full ring.
	ObserveRingStall()

	// ObserveAdmissionFailure is called when a memory manager refuses a job.
	ObserveAdmissionFailure(jobID string)
}

// NoOpObserver is a no-op implementation of Observer.
type NoOpObserver struct{}

func (NoOpObserver) ObserveSubmit(string)                   {}
func (NoOpObserver) ObserveCompletion(string, uint64)        {}
func (NoOpObserver) ObserveRingStall()                      {}
func (NoOpObserver) ObserveAdmissionFailure(string)          {}

// MetricsObserver implements Observer using the built-in Metrics.
type MetricsObserver struct {
	metrics *Metrics
}

// NewMetricsObserver creates an observer that records to the given metrics.
func NewMetricsObserver(m *Metrics) *MetricsObserver {
	return &MetricsObserver{metrics: m}
}

func (o *MetricsObserver) ObserveSubmit(string) {
	o.metrics.RecordSubmit()
}

func (o *MetricsObserver) ObserveCompletion(_ string, turnaroundNs uint64) {
	o.metrics.RecordCompletion(turnaroundNs)
}

func (o *MetricsObserver) ObserveRingStall() {
	o.metrics.RecordRingStall()
}

func (o *MetricsObserver) ObserveAdmissionFailure(string) {
	o.metrics.RecordAdmissionFailure()
}

// Compile-time interface check
var _ Observer = (*MetricsObserver)(nil)
var _ Observer = (*NoOpObserver)(nil)
