package tlqsched

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
)

// ErrInvalidQuantum is returned when the round-robin time quantum is not
// positive.
var ErrInvalidQuantum = errors.New("time quantum must be positive")

// Level identifies one of the two ready queues.
type Level int

const (
	// Level1 runs fixed-priority preemptive scheduling.
	Level1 Level = iota + 1

	// Level2 runs round-robin scheduling over demoted processes.
	Level2
)

func (l Level) String() string {
	switch l {
	case Level1:
		return "priority"
	case Level2:
		return "round-robin"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// Slice records a single dispatch: the process ran on the given level from
// Start (inclusive) to Stop (exclusive).
type Slice struct {
	PID   int
	Level Level
	Start int
	Stop  int
}

// Len returns the number of ticks covered by the slice.
func (s Slice) Len() int {
	return s.Stop - s.Start
}

// Hook defines hooks for observing the simulation. Every method is called
// synchronously from [Scheduler.Run].
type Hook interface {
	OnAdmit(p *Process, at int)
	OnDispatch(s Slice, p *Process)
	OnDemote(p, by *Process, at int)
	OnComplete(p *Process)
}

// Scheduler simulates a two-level feedback queue:
//
//   - Level 1 orders ready processes by priority and runs the most urgent
//     one for a single tick at a time
//   - A process running on level 1 is demoted to level 2 when a strictly
//     more urgent process arrives
//   - Level 2 runs round-robin slices of at most one quantum, and only when
//     level 1 is empty
//
// A Scheduler holds no per-run state and may be reused.
type Scheduler struct {
	quantum int
	idle    IdlePolicy
	logger  *slog.Logger
	hook    Hook
}

// New creates a new [Scheduler] with the given round-robin time quantum and
// options.
func New(quantum int, opts ...Option) (*Scheduler, error) {
	if quantum <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidQuantum, quantum)
	}

	o := &Options{}
	for _, opt := range opts {
		opt(o)
	}

	logger := o.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Scheduler{
		quantum: quantum,
		idle:    o.IdlePolicy,
		logger:  logger,
		hook:    o.Hook,
	}, nil
}

// NewFromConfig creates a new [Scheduler] from the given configuration. The
// options are applied after the configuration and take precedence over it.
func NewFromConfig(c *Config, opts ...Option) (*Scheduler, error) {
	if c == nil {
		c = DefaultConfig()
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	var base []Option
	if c.IdlePolicy != "" {
		p, _ := ParseIdlePolicy(c.IdlePolicy)
		base = append(base, WithIdlePolicy(p))
	}
	return New(c.Quantum, append(base, opts...)...)
}

// Quantum returns the round-robin time quantum.
func (s *Scheduler) Quantum() int {
	return s.quantum
}

// Run simulates the given processes to completion and returns the resulting
// schedule. The processes are mutated in place; use [Process.Clone] to run the
// same workload more than once.
//
// The processes must be well formed: positive burst, non-negative arrival and
// unique ids. Run does not check this.
func (s *Scheduler) Run(processes []*Process) *Result {
	r := newRun(s, processes)
	r.loop()

	for _, p := range processes {
		if !p.Done() {
			r.result.Pending = append(r.result.Pending, p)
		}
	}
	r.result.EndTime = r.time
	return r.result
}

// run is the state of a single simulation.
type run struct {
	*Scheduler

	time   int
	level1 *Queue
	level2 *Queue

	// Processes indexed by arrival time, in input order within a tick.
	arrivals map[int][]*Process
	times    []int
	next     int

	result *Result
}

func newRun(s *Scheduler, processes []*Process) *run {
	r := &run{
		Scheduler: s,
		level1:    &Queue{},
		level2:    &Queue{},
		arrivals:  make(map[int][]*Process),
		result:    &Result{},
	}
	for _, p := range processes {
		if _, ok := r.arrivals[p.ArrivalTime]; !ok {
			r.times = append(r.times, p.ArrivalTime)
		}
		r.arrivals[p.ArrivalTime] = append(r.arrivals[p.ArrivalTime], p)
	}
	slices.Sort(r.times)
	return r
}

func (r *run) loop() {
	for {
		r.admit(r.time)
		r.level1 = SortByPriority(r.level1)

		switch {
		case !r.level1.IsEmpty():
			r.runPriority()
		case !r.level2.IsEmpty():
			r.runRoundRobin()
		case r.idle == IdleAdvance && r.next < len(r.times):
			r.logger.Debug("cpu idle", slog.Int("from", r.time), slog.Int("until", r.times[r.next]))
			r.time = r.times[r.next]
		default:
			return
		}
	}
}

// admit enqueues every process arriving at tick t into level 1. Each tick is
// admitted at most once, however many times it is checked.
func (r *run) admit(t int) {
	// Arrival times before the first tick are never admitted; such processes
	// are reported as pending.
	for r.next < len(r.times) && r.times[r.next] < t {
		r.next++
	}
	if r.next >= len(r.times) || r.times[r.next] != t {
		return
	}
	r.next++

	for _, p := range r.arrivals[t] {
		r.level1.Enqueue(p)
		r.logger.Debug("process admitted", slog.Int("pid", p.ID), slog.Int("time", t))
		if r.hook != nil {
			r.hook.OnAdmit(p, t)
		}
	}
}

// runPriority runs the head of level 1 for a single tick.
func (r *run) runPriority() {
	current := r.level1.Peek()
	start := r.time

	current.tick()
	r.time++
	r.dispatch(Slice{PID: current.ID, Level: Level1, Start: start, Stop: r.time}, current)

	if current.Done() {
		r.level1.Dequeue()
		r.complete(current)
		return
	}

	if by := r.preemptor(current); by != nil {
		Transfer(r.level1, r.level2)
		r.logger.Debug("process demoted",
			slog.Int("pid", current.ID),
			slog.Int("by", by.ID),
			slog.Int("time", r.time),
			slog.Int("remaining", current.Remaining()),
		)
		if r.hook != nil {
			r.hook.OnDemote(current, by, r.time)
		}
	}
}

// preemptor returns the first process arriving at the current tick that is
// strictly more urgent than current, or nil.
func (r *run) preemptor(current *Process) *Process {
	for _, p := range r.arrivals[r.time] {
		if p.Priority.Preempts(current.Priority) {
			return p
		}
	}
	return nil
}

// runRoundRobin runs the head of level 2 for at most one quantum, admitting
// arrivals into level 1 at every tick of the slice.
func (r *run) runRoundRobin() {
	current := r.level2.Peek()
	start := r.time

	for n := 0; n < r.quantum && !current.Done(); n++ {
		current.tick()
		r.time++
		r.admit(r.time)
	}
	r.dispatch(Slice{PID: current.ID, Level: Level2, Start: start, Stop: r.time}, current)

	if current.Done() {
		r.level2.Dequeue()
		r.complete(current)
		return
	}
	Transfer(r.level2, r.level2)
}

func (r *run) dispatch(s Slice, p *Process) {
	r.result.Order = append(r.result.Order, s.PID)
	r.result.Slices = append(r.result.Slices, s)

	r.logger.Debug("process dispatched",
		slog.Int("pid", s.PID),
		slog.String("level", s.Level.String()),
		slog.Int("start", s.Start),
		slog.Int("stop", s.Stop),
	)
	if r.hook != nil {
		r.hook.OnDispatch(s, p)
	}
}

func (r *run) complete(p *Process) {
	p.complete(r.time)
	r.result.Completed = append(r.result.Completed, p)

	r.logger.Debug("process completed",
		slog.Int("pid", p.ID),
		slog.Int("completion", p.CompletionTime),
		slog.Int("turnaround", p.TurnaroundTime),
		slog.Int("waiting", p.WaitingTime),
	)
	if r.hook != nil {
		r.hook.OnComplete(p)
	}
}
