package procsim

import (
	"fmt"
	"io"
	"time"
)

// Report is the set of averages BookKeeping prints once the configured
// arrival count is reached.
type Report struct {
	JobsCompleted      int
	AvgTurnaround      time.Duration
	AvgResponse        time.Duration
	AvgWaiting         time.Duration
	AvgJobQueueWait    time.Duration
	// CPUBurstRatio deliberately reproduces the original's
	// SumMetrics[CBT]/Now() — a ratio of total simulated CPU time consumed
	// to elapsed virtual time, not an average burst length. Kept exactly
	// as the reference computes it; see the documented Open Question.
	CPUBurstRatio float64
}

func average(samples []time.Duration) time.Duration {
	if len(samples) == 0 {
		return 0
	}
	var sum time.Duration
	for _, s := range samples {
		sum += s
	}
	return sum / time.Duration(len(samples))
}

// BookKeeping computes the report from accumulated samples and the
// current simulated time, mirroring BookKeeping()'s averaging (true
// averages for TAT/RT/WT/JQ) and its deliberately-preserved CBT ratio.
func BookKeeping(samples *Samples, now time.Time, simStart time.Time) Report {
	var cpuSum time.Duration
	for _, s := range samples.CPUBurst {
		cpuSum += s
	}

	elapsed := now.Sub(simStart)
	var ratio float64
	if elapsed > 0 {
		ratio = float64(cpuSum) / float64(elapsed)
	}

	return Report{
		JobsCompleted:   samples.Completed,
		AvgTurnaround:   average(samples.Turnaround),
		AvgResponse:     average(samples.Response),
		AvgWaiting:      average(samples.Waiting),
		AvgJobQueueWait: average(samples.JobQueue),
		CPUBurstRatio:   ratio,
	}
}

// WriteTo prints the report in the reference BookKeeping() layout.
func (r Report) WriteTo(w io.Writer) {
	fmt.Fprintf(w, "Jobs completed:\t\t%d\n", r.JobsCompleted)
	fmt.Fprintf(w, "Avg turnaround time:\t%s\n", r.AvgTurnaround)
	fmt.Fprintf(w, "Avg response time:\t%s\n", r.AvgResponse)
	fmt.Fprintf(w, "Avg waiting time:\t%s\n", r.AvgWaiting)
	fmt.Fprintf(w, "Avg job queue wait:\t%s\n", r.AvgJobQueueWait)
	fmt.Fprintf(w, "CPU burst ratio:\t%.4f\n", r.CPUBurstRatio)
}
