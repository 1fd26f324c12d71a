// Command procsim drives the simulated process manager standalone:
// admits a configurable number of synthetic arrivals, ticks the
// admission/scheduling/dispatch/IO loop until bookkeeping fires, and
// prints the resulting report.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/jsosnowski/aubatch"
	"github.com/jsosnowski/aubatch/internal/memory"
	"github.com/jsosnowski/aubatch/internal/procsim"
)

func main() {
	var (
		policyFlag   = flag.String("policy", "fcfs", "CPU scheduling policy: fcfs, rr, srtf")
		memPolicy    = flag.String("mem", memory.PolicyWorstFit, "memory policy: contiguous, paging, bestfit, worstfit")
		arrivals     = flag.Int("arrivals", 250, "number of synthetic arrivals before bookkeeping fires")
		quantum      = flag.Duration("quantum", 2*time.Second, "round-robin time quantum")
		maxTicks     = flag.Int("max-ticks", 1_000_000, "safety cap on simulation ticks")
	)
	flag.Parse()

	// Paging's invariant check panics with the exact legacy message on a
	// lost-page violation (internal/memory/paging.go); this is the only
	// place that recovers it, prints the message verbatim, and exits.
	defer func() {
		if r := recover(); r != nil {
			if aerr, ok := r.(*aubatch.Error); ok {
				fmt.Fprintln(os.Stderr, aerr.Msg)
			} else {
				fmt.Fprintln(os.Stderr, r)
			}
			os.Exit(1)
		}
	}()

	policy, err := parsePolicy(*policyFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cfg := procsim.DefaultConfig()
	cfg.MemoryPolicy = *memPolicy
	cfg.Policy = policy
	cfg.Quantum = *quantum
	cfg.BookkeepingAt = *arrivals

	mgr, err := procsim.NewManager(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	seedArrivals(mgr, *arrivals, cfg.Clock)

	ticks := 0
	for !mgr.Stopped() && ticks < *maxTicks {
		mgr.Tick()
		ticks++
	}
	if !mgr.Stopped() {
		fmt.Fprintf(os.Stderr, "simulation did not converge within %d ticks\n", *maxTicks)
		os.Exit(1)
	}

	mgr.LastReport().WriteTo(os.Stdout)
}

func parsePolicy(s string) (procsim.SchedulingPolicy, error) {
	switch s {
	case "fcfs":
		return procsim.SchedFCFS, nil
	case "rr":
		return procsim.SchedRR, nil
	case "srtf":
		return procsim.SchedSRTF, nil
	default:
		return 0, aubatch.NewError("parsePolicy", aubatch.ErrCodeUserInput, fmt.Sprintf("unknown policy %q: must be fcfs, rr, or srtf", s))
	}
}

// seedArrivals deterministically generates n synthetic arrivals (seed
// fixed at 0, matching the batch scheduler's benchmark generator).
func seedArrivals(mgr *procsim.Manager, n int, clock interface{ Now() time.Time }) {
	rng := rand.New(rand.NewSource(0))
	now := clock.Now()
	for i := 0; i < n; i++ {
		cpuBurst := time.Duration(rng.Intn(5)+1) * time.Second
		ioBurst := time.Duration(rng.Intn(3)+1) * time.Second
		totalDuration := cpuBurst * time.Duration(rng.Intn(3)+1)
		memReq := (rng.Intn(16) + 1) * 1024
		mgr.Arrive(procsim.NewPCB(cpuBurst, ioBurst, totalDuration, memReq, now))
	}
}
