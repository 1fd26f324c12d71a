package batch

import (
	"fmt"
	"io"
	"math"
)

// Report is the aggregate metrics summary produced from a finished-job
// log, mirroring report_metrics()'s printed summary. Unlike the
// dispatcher's recorded burst, Averages here are computed from the true
// recorded per-job values — no bookkeeping-style approximation.
type Report struct {
	Policy               string
	JobsCompleted        int
	JobsSubmitted        int
	AvgTurnaroundSeconds float64
	AvgWaitingSeconds    float64
	AvgResponseSeconds   float64
	AvgCPUBurstSeconds   float64
	TotalCPUBurstSeconds int
	ThroughputPerSecond  float64

	MaxTurnaroundSeconds int
	MinTurnaroundSeconds int
	MaxWaitingSeconds    int
	MinWaitingSeconds    int
	MaxResponseSeconds   int
	MinResponseSeconds   int
	MaxCPUBurstSeconds   int
	MinCPUBurstSeconds   int
}

// BuildReport aggregates finished over the given policy label. jobsInFlight
// is the count of jobs still queued or on the dispatcher, added to len(finished)
// to report total submissions the way report_metrics() adds buf_head-buf_tail.
func BuildReport(policy string, finished []*FinishedJob, jobsInFlight int) (Report, bool) {
	if len(finished) == 0 {
		return Report{}, false
	}

	r := Report{
		Policy:               policy,
		JobsCompleted:        len(finished),
		JobsSubmitted:        len(finished) + jobsInFlight,
		MaxTurnaroundSeconds: math.MinInt32,
		MinTurnaroundSeconds: math.MaxInt32,
		MaxWaitingSeconds:    math.MinInt32,
		MinWaitingSeconds:    math.MaxInt32,
		MaxResponseSeconds:   math.MinInt32,
		MinResponseSeconds:   math.MaxInt32,
		MaxCPUBurstSeconds:   math.MinInt32,
		MinCPUBurstSeconds:   math.MaxInt32,
	}

	var totalTurnaround, totalWaiting, totalResponse, totalCPUBurst int
	for _, job := range finished {
		turnaround := int(job.TurnaroundTime.Seconds())
		waiting := int(job.WaitingTime.Seconds())
		response := int(job.ResponseTime.Seconds())
		burst := job.CPUBurst

		totalTurnaround += turnaround
		totalWaiting += waiting
		totalResponse += response
		totalCPUBurst += burst

		if turnaround < r.MinTurnaroundSeconds {
			r.MinTurnaroundSeconds = turnaround
		}
		if turnaround > r.MaxTurnaroundSeconds {
			r.MaxTurnaroundSeconds = turnaround
		}
		if waiting < r.MinWaitingSeconds {
			r.MinWaitingSeconds = waiting
		}
		if waiting > r.MaxWaitingSeconds {
			r.MaxWaitingSeconds = waiting
		}
		if response < r.MinResponseSeconds {
			r.MinResponseSeconds = response
		}
		if response > r.MaxResponseSeconds {
			r.MaxResponseSeconds = response
		}
		if burst < r.MinCPUBurstSeconds {
			r.MinCPUBurstSeconds = burst
		}
		if burst > r.MaxCPUBurstSeconds {
			r.MaxCPUBurstSeconds = burst
		}
	}

	n := float64(len(finished))
	r.AvgTurnaroundSeconds = float64(totalTurnaround) / n
	r.AvgWaitingSeconds = float64(totalWaiting) / n
	r.AvgResponseSeconds = float64(totalResponse) / n
	r.AvgCPUBurstSeconds = float64(totalCPUBurst) / n
	r.TotalCPUBurstSeconds = totalCPUBurst
	if r.AvgTurnaroundSeconds != 0 {
		r.ThroughputPerSecond = 1 / r.AvgTurnaroundSeconds
	}

	return r, true
}

// WriteTo prints the report in the reference tool's layout.
func (r Report) WriteTo(w io.Writer) {
	fmt.Fprintf(w, "\n=== Reporting Metrics for %s ===\n\n", r.Policy)
	fmt.Fprintf(w, "Overall Metrics for Batch:\n")
	fmt.Fprintf(w, "\tTotal Number of Jobs Completed: %d\n", r.JobsCompleted)
	fmt.Fprintf(w, "\tTotal Number of Jobs Submitted: %d\n", r.JobsSubmitted)
	fmt.Fprintf(w, "\tAverage Turnaround Time:        %.3f seconds\n", r.AvgTurnaroundSeconds)
	fmt.Fprintf(w, "\tAverage Waiting Time:           %.3f seconds\n", r.AvgWaitingSeconds)
	fmt.Fprintf(w, "\tAverage Response Time:          %.3f seconds\n", r.AvgResponseSeconds)
	fmt.Fprintf(w, "\tAverage CPU Burst:              %.3f seconds\n", r.AvgCPUBurstSeconds)
	fmt.Fprintf(w, "\tTotal CPU Burst:                %d seconds\n", r.TotalCPUBurstSeconds)
	fmt.Fprintf(w, "\tThroughput:                     %.3f No./second\n", r.ThroughputPerSecond)

	fmt.Fprintf(w, "\tMax Turnaround Time:            %d seconds\n", r.MaxTurnaroundSeconds)
	fmt.Fprintf(w, "\tMin Turnaround Time:            %d seconds\n\n", r.MinTurnaroundSeconds)

	fmt.Fprintf(w, "\tMax Waiting Time:               %d seconds\n", r.MaxWaitingSeconds)
	fmt.Fprintf(w, "\tMin Waiting Time:               %d seconds\n\n", r.MinWaitingSeconds)

	fmt.Fprintf(w, "\tMax Response Time:              %d seconds\n", r.MaxResponseSeconds)
	fmt.Fprintf(w, "\tMin Response Time:              %d seconds\n\n", r.MinResponseSeconds)

	fmt.Fprintf(w, "\tMax CPU Burst:                  %d seconds\n", r.MaxCPUBurstSeconds)
	fmt.Fprintf(w, "\tMin CPU Burst:                  %d seconds\n\n", r.MinCPUBurstSeconds)
}
