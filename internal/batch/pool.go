package batch

import "sync"

// jobPool recycles *Job allocations across submit/complete cycles, the
// same *T-pointer-via-sync.Pool pattern the reference buffer pool uses
// for I/O buffers. A benchmark run of thousands of jobs would otherwise
// churn one heap allocation per job for the ring's whole lifetime.
var jobPool = sync.Pool{
	New: func() any { return &Job{} },
}

// getJob returns a zeroed Job ready to be populated by the caller.
func getJob() *Job {
	return jobPool.Get().(*Job)
}

// putJob clears job and returns it to the pool. Callers must not retain
// any reference to job after calling this.
func putJob(job *Job) {
	*job = Job{}
	jobPool.Put(job)
}
