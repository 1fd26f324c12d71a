package batch

import (
	"context"
	"io"
	"os/exec"
	"strconv"
	"sync"
	"time"

	"github.com/jsosnowski/aubatch/internal/interfaces"
	"github.com/jsosnowski/aubatch/internal/logging"
)

// microbatchCmd is the reference workload binary; it is spawned with the
// job's remaining burst as its sole argument instead of through a shell.
const microbatchCmd = "./microbatch.out"

// Dispatcher is the single consumer goroutine draining the job ring:
// dequeue, execute to completion, record metrics, append to the finished
// log. A failing child process is logged but never aborts the ring — the
// job is still marked finished to preserve liveness.
type Dispatcher struct {
	ring     *Ring
	log      *FinishedLog
	logger   interfaces.Logger
	observer interfaces.Observer

	doneMu   sync.Mutex
	doneCond *sync.Cond
}

// NewDispatcher creates a dispatcher bound to ring and log. A nil logger
// or observer is replaced with a no-op.
func NewDispatcher(ring *Ring, log *FinishedLog, logger interfaces.Logger, observer interfaces.Observer) *Dispatcher {
	if logger == nil {
		logger = noopLogger{}
	}
	if observer == nil {
		observer = noopObserver{}
	}
	d := &Dispatcher{
		ring:     ring,
		log:      log,
		logger:   logger,
		observer: observer,
	}
	d.doneCond = sync.NewCond(&d.doneMu)
	return d
}

type noopLogger struct{}

func (noopLogger) Printf(string, ...interface{}) {}
func (noopLogger) Debugf(string, ...interface{}) {}

// Run blocks forever, draining the ring. Intended to run in its own
// goroutine; cancel ctx to stop after the current job completes.
func (d *Dispatcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		job := d.ring.Dequeue()
		d.execute(job)

		finished := Finish(job, time.Now())
		d.log.Append(finished)
		d.observer.ObserveCompletion(finished.ID.String(), uint64(finished.TurnaroundTime))

		d.ring.Complete()
		putJob(job)

		d.doneMu.Lock()
		d.doneCond.Broadcast()
		d.doneMu.Unlock()
	}
}

// WaitForCompletion blocks until the dispatcher has broadcast at least
// one completion after this call, replacing the reference `quit -i`'s
// busy poll on the ring count with a condition-variable wait.
func (d *Dispatcher) WaitForCompletion() {
	d.doneMu.Lock()
	defer d.doneMu.Unlock()
	d.doneCond.Wait()
}

// execute runs job to completion, blocking until the child exits.
// Execution failures are logged but never propagated — the ring must
// stay live.
func (d *Dispatcher) execute(job *Job) {
	if job.FirstTimeOnCPU.IsZero() {
		job.FirstTimeOnCPU = time.Now()
	}

	var cmd *exec.Cmd
	if job.Cmd == microbatchCmd {
		cmd = exec.CommandContext(context.Background(), job.Cmd, strconv.Itoa(job.CPURemainingBurst))
	} else {
		cmd = exec.CommandContext(context.Background(), "sh", "-c", job.Cmd)
	}
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard

	logger := d.logger
	if jl, ok := d.logger.(*logging.Logger); ok {
		logger = jl.WithJob(job.ID.String())
	}

	if err := cmd.Run(); err != nil {
		logger.Printf("execution failed: %v", err)
	}

	job.CPURemainingBurst = 0
}
