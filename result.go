package tlqsched

import "math"

// Result is the outcome of a single [Scheduler.Run].
type Result struct {
	// Order holds the id of the dispatched process, one entry per dispatch.
	// A level 1 dispatch covers a single tick, a level 2 dispatch a whole
	// round-robin slice.
	Order []int

	// Slices holds the timeline of dispatches, parallel to Order.
	Slices []Slice

	// Completed holds the terminated processes in completion order.
	Completed []*Process

	// Pending holds the processes that never completed. It is only ever
	// non-empty under [IdleHalt].
	Pending []*Process

	// EndTime is the value of the clock when the simulation stopped.
	EndTime int
}

// AverageTurnaroundTime returns the mean turnaround time over the completed
// processes, or NaN if none completed.
func (r *Result) AverageTurnaroundTime() float64 {
	return r.mean(func(p *Process) int { return p.TurnaroundTime })
}

// AverageWaitingTime returns the mean waiting time over the completed
// processes, or NaN if none completed.
func (r *Result) AverageWaitingTime() float64 {
	return r.mean(func(p *Process) int { return p.WaitingTime })
}

// Throughput returns the number of completed processes per tick, or NaN if
// the clock never advanced.
func (r *Result) Throughput() float64 {
	if r.EndTime == 0 {
		return math.NaN()
	}
	return float64(len(r.Completed)) / float64(r.EndTime)
}

// Ran returns the number of ticks each process was granted, keyed by id.
func (r *Result) Ran() map[int]int {
	ran := make(map[int]int)
	for _, s := range r.Slices {
		ran[s.PID] += s.Len()
	}
	return ran
}

func (r *Result) mean(field func(*Process) int) float64 {
	if len(r.Completed) == 0 {
		return math.NaN()
	}
	total := 0
	for _, p := range r.Completed {
		total += field(p)
	}
	return float64(total) / float64(len(r.Completed))
}
