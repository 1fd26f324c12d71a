// Command aubatch is the REPL front-end for the batch job scheduler:
// `run`/`list`/`fcfs`/`sjf`/`priority`/`test`/`help`/`quit` commands over
// a batch.Scheduler, mirroring commandline.c's cmdtable.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	aubatch "github.com/jsosnowski/aubatch"
	"github.com/jsosnowski/aubatch/internal/batch"
	"github.com/jsosnowski/aubatch/internal/logging"
	"github.com/jsosnowski/aubatch/internal/stream"
)

const prompt = "> [? for menu]: "

var helpMenu = []string{
	"run <job> <time> <priority>: submit a job named <job>, execution time is <time>, priority is <pr>",
	"list: display the job status",
	"help: print help menu",
	"fcfs: change the scheduling policy to FCFS",
	"sjf: changes the scheduling policy to SJF",
	"priority: changes the scheduling policy to priority",
	"test <benchmark> <policy> <num_of_jobs> <arrival_rate> <priority_levels> <min_CPU_time> <max_CPU_time>",
	"quit: exit AUbatch | -i quits after current job finishes | -d quits after all jobs finish",
}

type repl struct {
	sched  *batch.Scheduler
	logger *logging.Logger
	out    *bufio.Writer
}

func main() {
	var (
		verbose    = flag.Bool("v", false, "verbose logging")
		streamAddr = flag.String("stream-addr", "", "address to serve the live job feed WebSocket on (e.g. :8080); empty disables it")
	)
	flag.Parse()

	logConfig := logging.DefaultConfig()
	if *verbose {
		logConfig.Level = logging.LevelDebug
	}
	logger := logging.NewLogger(logConfig)

	var streamSrv *stream.Server
	if *streamAddr != "" {
		streamSrv = stream.NewServer()
		go func() {
			logger.Info("serving live job feed", "addr", *streamAddr)
			if err := http.ListenAndServe(*streamAddr, streamSrv.Handler()); err != nil {
				logger.Error("job feed server stopped", "error", err)
			}
		}()
	}

	metrics := aubatch.NewMetrics()
	observer := aubatch.NewMetricsObserver(metrics)

	cfg := batch.DefaultConfig()
	cfg.Logger = logger
	if streamSrv != nil {
		cfg.Observer = multiObserver{a: observer, b: streamSrv}
	} else {
		cfg.Observer = observer
	}

	sched := batch.NewScheduler(cfg)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sched.Start(ctx)

	r := &repl{sched: sched, logger: logger, out: bufio.NewWriter(os.Stdout)}
	r.run()
}

// multiObserver fans events out to two observers at once, since the
// batch.Config only accepts one.
type multiObserver struct {
	a, b interface {
		ObserveSubmit(string)
		ObserveCompletion(string, uint64)
		ObserveRingStall()
		ObserveAdmissionFailure(string)
	}
}

func (m multiObserver) ObserveSubmit(id string) {
	m.a.ObserveSubmit(id)
	m.b.ObserveSubmit(id)
}
func (m multiObserver) ObserveCompletion(id string, ns uint64) {
	m.a.ObserveCompletion(id, ns)
	m.b.ObserveCompletion(id, ns)
}
func (m multiObserver) ObserveRingStall() {
	m.a.ObserveRingStall()
	m.b.ObserveRingStall()
}
func (m multiObserver) ObserveAdmissionFailure(id string) {
	m.a.ObserveAdmissionFailure(id)
	m.b.ObserveAdmissionFailure(id)
}

func (r *repl) printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
	r.out.Flush()
}

func (r *repl) run() {
	r.printf("Welcome to AUbatch Version 2.0.\nType 'help' to find more about AUbatch commands.\n")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		r.printf(prompt)
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		args := strings.Fields(line)
		if r.dispatch(args) == -1 {
			return
		}
	}
}

// dispatch routes a command to its handler, returning -1 to signal a
// clean exit, 0 on success, and any other value as a non-fatal error
// already reported to the user.
func (r *repl) dispatch(args []string) int {
	switch args[0] {
	case "?", "h", "help":
		return r.cmdHelp()
	case "r", "run":
		return r.cmdRun(args)
	case "q", "quit":
		return r.cmdQuit(args)
	case "fcfs":
		return r.cmdSetPolicy(batch.FCFS)
	case "sjf":
		return r.cmdSetPolicy(batch.SJF)
	case "priority":
		return r.cmdSetPolicy(batch.Priority)
	case "list", "ls":
		return r.cmdList()
	case "test":
		return r.cmdTest(args)
	default:
		r.printf("%s: Command not found\n", args[0])
		return 1
	}
}

func (r *repl) cmdHelp() int {
	r.printf("\nAUbatch help menu\n")
	for _, line := range helpMenu {
		r.printf("%s\n", line)
	}
	r.printf("\n")
	return 0
}

func (r *repl) cmdRun(args []string) int {
	if len(args) != 4 {
		r.printf("Usage: run <job> <time> <priority>\n")
		return 1
	}
	f, err := os.Open(args[1])
	if err != nil {
		r.printf("Error file does not exist. Please use relative or full path\n")
		return 1
	}
	f.Close()
	burst, err1 := strconv.Atoi(args[2])
	priority, err2 := strconv.Atoi(args[3])
	if err1 != nil || err2 != nil {
		r.printf("Usage: run <job> <time> <priority>\n")
		return 1
	}
	job := batch.NewJob(args[1], burst, priority)
	r.sched.Submit(job)
	r.printf("Job %s was submitted.\nTotal number of jobs in the queue: %d\nExpected waiting time: %d seconds\n",
		args[1], len(r.sched.QueueSnapshot()), r.sched.ExpectedWait())
	r.logger.WithJob(job.ID.String()).Info("submitted", "burst", burst, "priority", priority)
	return 0
}

func (r *repl) cmdSetPolicy(p batch.Policy) int {
	r.sched.SetPolicy(p)
	r.printf("Scheduling policy is switched to %s. All the %d waiting jobs have been rescheduled.\n",
		p.String(), len(r.sched.QueueSnapshot()))
	return 0
}

func (r *repl) cmdList() int {
	jobs := r.sched.QueueSnapshot()
	if len(jobs) == 0 {
		r.printf("No processes loaded yet!\n")
		return 0
	}
	r.printf("Name               CPU_Time Pri Arrival_time             Progress\n")
	for _, j := range jobs {
		status := "-------"
		if j.Dispatched() {
			status = "running "
		}
		r.printf("%-18s %-8d %-3d %s %s\n", j.Cmd, j.CPUBurst, j.Priority, j.ArrivalTime.Format(time.RFC1123), status)
	}
	r.printf("\n")
	return 0
}

func (r *repl) cmdTest(args []string) int {
	if len(args) != 8 {
		r.printf("Usage: test <benchmark> <policy> <num_of_jobs> <arrival_rate> <priority_levels> <min_CPU_time> <max_CPU_time>\n")
		return 1
	}
	policy, ok := batch.ParsePolicy(args[2])
	if !ok {
		r.printf("Unknown policy: %s\n", args[2])
		return 1
	}
	numJobs, e1 := strconv.Atoi(args[3])
	arrivalRate, e2 := strconv.Atoi(args[4])
	priorityLevels, e3 := strconv.Atoi(args[5])
	minCPU, e4 := strconv.Atoi(args[6])
	maxCPU, e5 := strconv.Atoi(args[7])
	if e1 != nil || e2 != nil || e3 != nil || e4 != nil || e5 != nil {
		r.printf("Usage: test <benchmark> <policy> <num_of_jobs> <arrival_rate> <priority_levels> <min_CPU_time> <max_CPU_time>\n")
		return 1
	}

	cfg := batch.BenchmarkConfig{
		Name:           args[1],
		Policy:         policy,
		NumJobs:        numJobs,
		ArrivalRate:    time.Duration(arrivalRate) * time.Second,
		PriorityLevels: priorityLevels,
		MinCPUBurst:    minCPU,
		MaxCPUBurst:    maxCPU,
	}
	if err := r.sched.RunBenchmark(cfg); err != nil {
		r.printf("%s\n", err.Error())
		return 1
	}
	r.sched.WaitIdle()
	report, ok := r.sched.Report()
	if ok {
		report.WriteTo(r.out)
		r.out.Flush()
	}
	r.sched.ClearFinished()
	return 0
}

func (r *repl) cmdQuit(args []string) int {
	if len(args) == 2 {
		switch args[1] {
		case "-i":
			if len(r.sched.QueueSnapshot()) > 0 {
				r.printf("Waiting for current job to finish ... \n")
				r.sched.WaitForNextCompletion()
			}
		case "-d":
			r.printf("Waiting for all jobs to finish...\n")
			r.sched.WaitIdle()
		}
	}
	r.printf("Quiting AUBatch... \n")
	if report, ok := r.sched.Report(); ok {
		report.WriteTo(r.out)
		r.out.Flush()
	}
	return -1
}
