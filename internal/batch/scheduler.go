package batch

import (
	"context"
	"time"

	"github.com/jsosnowski/aubatch"
	"github.com/jsosnowski/aubatch/internal/constants"
	"github.com/jsosnowski/aubatch/internal/interfaces"
)

// Config holds the parameters needed to build a Scheduler, following the
// reference device's Params/Default*() constructor shape.
type Config struct {
	// RingCapacity bounds the number of jobs the ring holds at once.
	RingCapacity int
	// Policy is the initial ordering policy; the REPL can change it later.
	Policy Policy
	// Logger receives per-job execution failures. Nil means no logging.
	Logger interfaces.Logger
	// Observer receives lifecycle events for metrics. Nil means no-op.
	Observer interfaces.Observer
}

// DefaultConfig returns a Config matching the reference tool's startup
// defaults: a 10-slot ring under FCFS.
func DefaultConfig() Config {
	return Config{
		RingCapacity: constants.RingCapacity,
		Policy:       FCFS,
	}
}

// Scheduler ties together the job ring, dispatcher worker, and finished
// log into the single object the REPL drives.
type Scheduler struct {
	ring       *Ring
	dispatcher *Dispatcher
	log        *FinishedLog

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

// NewScheduler builds a Scheduler from cfg but does not start the
// dispatcher goroutine; call Start for that.
func NewScheduler(cfg Config) *Scheduler {
	ring := NewRing(cfg.RingCapacity, cfg.Policy, cfg.Observer)
	log := NewFinishedLog()
	dispatcher := NewDispatcher(ring, log, cfg.Logger, cfg.Observer)

	return &Scheduler{
		ring:       ring,
		dispatcher: dispatcher,
		log:        log,
	}
}

// Start launches the dispatcher's consumer loop in its own goroutine.
// Cancelling ctx (or calling Stop) ends the loop after the in-flight job
// completes.
func (s *Scheduler) Start(ctx context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}
	s.ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)
		s.dispatcher.Run(s.ctx)
	}()
}

// Stop cancels the dispatcher loop. It does not wait for the in-flight
// job to finish; callers that need that should use WaitForCompletion or
// WaitIdle first.
func (s *Scheduler) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
}

// Submit enqueues a job, blocking if the ring is full.
func (s *Scheduler) Submit(job *Job) {
	s.ring.Submit(job)
}

// ExpectedWait sums the remaining CPU burst of every currently queued job.
func (s *Scheduler) ExpectedWait() int {
	return s.ring.ExpectedWait()
}

// Policy returns the active ordering policy.
func (s *Scheduler) Policy() Policy {
	return s.ring.Policy()
}

// SetPolicy changes the ordering policy and re-sorts the ring in place.
func (s *Scheduler) SetPolicy(p Policy) {
	s.ring.SetPolicy(p)
}

// QueueSnapshot returns the currently queued (not yet finished) jobs.
func (s *Scheduler) QueueSnapshot() []*Job {
	return s.ring.Snapshot()
}

// WaitForNextCompletion blocks until the dispatcher finishes one more
// job, used by `quit -i`.
func (s *Scheduler) WaitForNextCompletion() {
	s.dispatcher.WaitForCompletion()
}

// WaitIdle blocks until the ring has fully drained, used by `quit -d`.
// It polls WaitForNextCompletion rather than the ring's count directly,
// so it never busy-spins the CPU the way the reference `while(count){}`
// loop did.
func (s *Scheduler) WaitIdle() {
	for s.ring.Count() > 0 {
		s.dispatcher.WaitForCompletion()
	}
}

// Report builds the aggregate metrics report from jobs finished so far.
func (s *Scheduler) Report() (Report, bool) {
	return BuildReport(s.Policy().String(), s.log.Snapshot(), s.ring.Count())
}

// RunBenchmark validates cfg, generates its job set deterministically,
// and submits every job honoring ArrivalRate between submissions —
// synchronous, so the caller decides whether to run it on its own
// goroutine the way `test_scheduler` ran on the REPL's calling thread.
func (s *Scheduler) RunBenchmark(cfg BenchmarkConfig) error {
	if err := cfg.Validate(); err != nil {
		return aubatch.WrapError("RunBenchmark", err)
	}
	if s.ring.Count() > 0 || s.log.Len() > 0 {
		return aubatch.NewError("RunBenchmark", aubatch.ErrCodeResourceBusy, "jobs current in queue / on CPU, no jobs should have ran if doing benchmark")
	}

	s.SetPolicy(cfg.Policy)
	batchLoading := cfg.ArrivalRate == 0
	s.ring.SetBatchLoading(batchLoading)
	defer s.ring.SetBatchLoading(false)

	jobs := GenerateBenchmark(cfg)
	for _, job := range jobs {
		s.Submit(job)
		if cfg.ArrivalRate > 0 {
			time.Sleep(cfg.ArrivalRate)
		}
	}
	return nil
}

// ClearFinished empties the finished log, matching `cmd_test`'s
// post-report cleanup so a later `quit` report isn't polluted by a
// prior benchmark run.
func (s *Scheduler) ClearFinished() {
	s.log.Clear()
}
