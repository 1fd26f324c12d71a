package batch

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jsosnowski/aubatch"
)

// BenchmarkConfig mirrors the `test <benchmark> <policy> <num_of_jobs>
// <arrival_rate> <priority_levels> <min_CPU_time> <max_CPU_time>` command's
// arguments.
type BenchmarkConfig struct {
	Name            string
	Policy          Policy
	NumJobs         int
	ArrivalRate     time.Duration
	PriorityLevels  int
	MinCPUBurst     int
	MaxCPUBurst     int
}

// Validate applies the exact checks cmd_test performs before generating
// jobs, in the same order, so callers can surface the same error text.
func (c BenchmarkConfig) Validate() error {
	if c.MinCPUBurst >= c.MaxCPUBurst {
		return aubatch.NewError("BenchmarkConfig.Validate", aubatch.ErrCodeUserInput, "min CPU time cannot be greater than or equal to max CPU time")
	}
	if c.NumJobs <= 0 {
		return aubatch.NewError("BenchmarkConfig.Validate", aubatch.ErrCodeUserInput, "num of jobs cannot be equal or less than zero")
	}
	if c.MinCPUBurst < 0 || c.MaxCPUBurst < 0 || c.PriorityLevels < 0 || c.ArrivalRate < 0 {
		return aubatch.NewError("BenchmarkConfig.Validate", aubatch.ErrCodeUserInput, "min/max CPU time, arrival rate, and priority levels must be greater than or equal to 0")
	}
	return nil
}

// GenerateBenchmark deterministically builds NumJobs jobs from a
// fixed-seed generator (seed 0), so repeated runs of the same config
// produce the same job set. Generation does not mutate the ring: callers
// submit the returned jobs themselves, honoring ArrivalRate between
// submissions as the reference generator's sleep(arrival_rate) did.
func GenerateBenchmark(cfg BenchmarkConfig) []*Job {
	rng := rand.New(rand.NewSource(0))

	jobs := make([]*Job, cfg.NumJobs)
	for i := 0; i < cfg.NumJobs; i++ {
		priority := rng.Intn(cfg.PriorityLevels+1) + 1
		burst := rng.Intn(cfg.MaxCPUBurst+1) + cfg.MinCPUBurst

		j := getJob()
		j.ID = uuid.New()
		j.Cmd = microbatchCmd
		j.ArrivalTime = time.Now()
		j.CPUBurst = burst
		j.CPURemainingBurst = burst
		j.Priority = priority
		jobs[i] = j
	}
	return jobs
}
