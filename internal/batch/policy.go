package batch

import "sort"

// Policy selects the comparator used to keep the job ring ordered.
type Policy int

const (
	// FCFS orders by ascending arrival time.
	FCFS Policy = iota
	// SJF orders by ascending remaining CPU burst (shortest job first).
	SJF
	// Priority orders by descending numeric priority — higher value
	// served first, matching the reference comparator's negated-left
	// operand (see Open Question 5).
	Priority
)

// String returns the human-readable policy name used in REPL output.
func (p Policy) String() string {
	switch p {
	case FCFS:
		return "FCFS"
	case SJF:
		return "SJF"
	case Priority:
		return "Priority"
	default:
		return "Unknown"
	}
}

// ParsePolicy maps a benchmark/test command's policy token to a Policy.
func ParsePolicy(s string) (Policy, bool) {
	switch s {
	case "fcfs":
		return FCFS, true
	case "sjf":
		return SJF, true
	case "priority":
		return Priority, true
	default:
		return 0, false
	}
}

// less returns a comparator for the given policy over the logical window
// passed to sortRange.
func less(p Policy, jobs []*Job) func(i, j int) bool {
	switch p {
	case FCFS:
		return func(i, j int) bool {
			return jobs[i].ArrivalTime.Before(jobs[j].ArrivalTime)
		}
	case SJF:
		return func(i, j int) bool {
			return jobs[i].CPURemainingBurst < jobs[j].CPURemainingBurst
		}
	case Priority:
		return func(i, j int) bool {
			return jobs[i].Priority > jobs[j].Priority
		}
	default:
		return func(i, j int) bool { return false }
	}
}

// sortRange stably sorts the logical window [start, end) of a circular
// slots slice under policy, leaving everything outside the window
// untouched. Logical indices map to physical slots via modulo, so the
// window stays contiguous across any number of ring wraps.
func sortRange(slots []*Job, start, end int, policy Policy) {
	n := end - start
	if n <= 1 {
		return
	}
	capacity := len(slots)

	window := make([]*Job, n)
	for i := 0; i < n; i++ {
		window[i] = slots[(start+i)%capacity]
	}

	sort.SliceStable(window, less(policy, window))

	for i := 0; i < n; i++ {
		slots[(start+i)%capacity] = window[i]
	}
}
