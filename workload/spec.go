package workload

import (
	"errors"
	"fmt"

	"github.com/tomasbasham/tlqsched"
)

// Spec describes a complete simulation input.
type Spec struct {
	tlqsched.Config `yaml:",inline"`

	Processes []ProcessSpec `json:"processes" yaml:"processes"`
}

// ProcessSpec describes a single process. An omitted id defaults to the
// position of the process in the workload, starting at one; an explicit id
// must be positive.
type ProcessSpec struct {
	ID       *int              `json:"id,omitempty" yaml:"id,omitempty"`
	Arrival  int               `json:"arrival" yaml:"arrival"`
	Burst    int               `json:"burst" yaml:"burst"`
	Priority tlqsched.Priority `json:"priority" yaml:"priority"`
}

// Validate returns an aggregated error describing every invalid setting, or
// nil if the workload can be simulated.
func (s *Spec) Validate() error {
	var errs []error
	if s.Quantum <= 0 {
		errs = append(errs, fmt.Errorf("%w: got %d", ErrInvalidQuantum, s.Quantum))
	}
	if s.IdlePolicy != "" {
		if _, err := tlqsched.ParseIdlePolicy(s.IdlePolicy); err != nil {
			errs = append(errs, err)
		}
	}

	seen := make(map[int]int, len(s.Processes))
	for i, p := range s.Processes {
		id := p.id(i)
		if id <= 0 {
			errs = append(errs, fmt.Errorf("%w: process %d has id %d", ErrInvalidID, i+1, id))
		}
		if first, ok := seen[id]; ok {
			errs = append(errs, fmt.Errorf("%w: id %d used by processes %d and %d", ErrDuplicateID, id, first+1, i+1))
		} else {
			seen[id] = i
		}
		if p.Burst <= 0 {
			errs = append(errs, fmt.Errorf("%w: process %d has burst %d", ErrInvalidBurst, id, p.Burst))
		}
		if p.Arrival < 0 {
			errs = append(errs, fmt.Errorf("%w: process %d arrives at %d", ErrInvalidArrival, id, p.Arrival))
		}
	}
	return errors.Join(errs...)
}

// Build returns a fresh, unrun process for every entry of the workload.
func (s *Spec) Build() []*tlqsched.Process {
	processes := make([]*tlqsched.Process, 0, len(s.Processes))
	for i, p := range s.Processes {
		processes = append(processes, tlqsched.NewProcess(p.id(i), p.Arrival, p.Burst, p.Priority))
	}
	return processes
}

func (p ProcessSpec) id(i int) int {
	if p.ID == nil {
		return i + 1
	}
	return *p.ID
}
