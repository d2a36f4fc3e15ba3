package tlqsched

// Process represents a unit of work to be simulated. The identity, arrival,
// burst and priority are fixed when the process is created; the remaining
// fields are filled in by the [Scheduler] during a run.
type Process struct {
	ID          int
	ArrivalTime int
	BurstTime   int
	Priority    Priority

	// Set once the process terminates, zero until then.
	CompletionTime int
	TurnaroundTime int
	WaitingTime    int

	remaining int
}

// NewProcess creates a new [Process] that has not yet run.
func NewProcess(id, arrival, burst int, priority Priority) *Process {
	return &Process{
		ID:          id,
		ArrivalTime: arrival,
		BurstTime:   burst,
		Priority:    priority,
		remaining:   burst,
	}
}

// Remaining returns the CPU time the process still requires.
func (p *Process) Remaining() int {
	return p.remaining
}

// Done returns true once the process has consumed its whole burst.
func (p *Process) Done() bool {
	return p.remaining == 0
}

// Clone returns an unrun copy of the process with the same identity, arrival,
// burst and priority.
func (p *Process) Clone() *Process {
	return NewProcess(p.ID, p.ArrivalTime, p.BurstTime, p.Priority)
}

// tick runs the process for a single time unit.
func (p *Process) tick() {
	p.remaining--
}

func (p *Process) complete(at int) {
	p.CompletionTime = at
	p.TurnaroundTime = p.CompletionTime - p.ArrivalTime
	p.WaitingTime = p.TurnaroundTime - p.BurstTime
}
