package procsim

import (
	"time"

	"github.com/jsosnowski/aubatch/internal/constants"
	"github.com/jsosnowski/aubatch/internal/interfaces"
	"github.com/jsosnowski/aubatch/internal/memory"
)

// Config configures a Manager, mirroring ManagementInitialization()'s
// defaults (WorstFit memory policy, 250-arrival bookkeeping trigger).
type Config struct {
	MemoryPolicy    string
	Policy          SchedulingPolicy
	Quantum         time.Duration
	BookkeepingAt   int
	Clock           interfaces.Clock
	CPU             interfaces.CPU
}

// DefaultConfig returns the reference defaults.
func DefaultConfig() Config {
	clock := NewSimClock(time.Time{})
	return Config{
		MemoryPolicy:  memory.PolicyWorstFit,
		Policy:        SchedFCFS,
		Quantum:       constants.DefaultQuantum,
		BookkeepingAt: constants.BookkeepingArrivalCount,
		Clock:         clock,
		CPU:           NewSimCPU(clock),
	}
}

// Manager drives the five-queue process lifecycle end to end: admission,
// CPU scheduling, dispatch, and I/O, stopping to report once the
// configured arrival count has been processed — analogous to
// ManageProcesses()'s main loop.
type Manager struct {
	cfg      Config
	queues   *Queues
	mem      interfaces.MemoryManager
	samples  *Samples
	simStart time.Time
	arrivals int
	stopped  bool
	lastReport Report
}

// NewManager constructs a Manager; an unknown memory policy name yields
// an error, matching memory.New's factory contract.
func NewManager(cfg Config) (*Manager, error) {
	mem, err := memory.New(cfg.MemoryPolicy, constants.TotalMemoryBytes)
	if err != nil {
		return nil, err
	}
	return &Manager{
		cfg:      cfg,
		queues:   NewQueues(),
		mem:      mem,
		samples:  &Samples{},
		simStart: cfg.Clock.Now(),
	}, nil
}

// Arrive admits a newly arrived process into the job queue.
func (m *Manager) Arrive(pcb *ProcessControlBlock) {
	m.queues.Job.Enqueue(pcb)
	m.arrivals++
}

// Stopped reports whether bookkeeping has fired and the simulation
// should stop accepting further ticks, replacing the reference's exit(0).
func (m *Manager) Stopped() bool {
	return m.stopped
}

// LastReport returns the most recently computed bookkeeping report.
func (m *Manager) LastReport() Report {
	return m.lastReport
}

// Queues exposes the underlying queue set for inspection (e.g. a `list`
// REPL command).
func (m *Manager) Queues() *Queues {
	return m.queues
}

// Tick runs one full cycle of the process manager. Longterm admission
// runs first — the original triggers it once per arrival via NewJobIn(),
// but since Tick() is the only place JobQueue ever gets drained here, it
// runs every cycle so a stalled admission retries as memory frees up.
// IO, CPUScheduler, and Dispatch then run in ManageProcesses()'s exact
// order, and bookkeeping fires once the configured arrival count has
// been reached.
func (m *Manager) Tick() {
	if m.stopped {
		return
	}

	Admit(m.queues, m.mem, m.cfg.Clock, m.samples)
	IO(m.queues, m.cfg.Clock)
	CPUScheduler(m.cfg.Policy, m.queues)
	Dispatch(m.queues, m.cfg.Policy, m.cfg.Quantum, m.mem, m.cfg.CPU, m.cfg.Clock, m.samples)

	if m.arrivals >= m.cfg.BookkeepingAt {
		m.lastReport = BookKeeping(m.samples, m.cfg.Clock.Now(), m.simStart)
		m.stopped = true
	}
}
