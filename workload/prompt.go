package workload

import (
	"bufio"
	"fmt"
	"io"

	"github.com/tomasbasham/tlqsched"
)

// maxPromptHint bounds the capacity reserved up front for prompted processes.
const maxPromptHint = 64

// Prompt collects a workload interactively: the number of processes, the
// time quantum, and then the arrival, burst and priority of each process.
// Prompts are written to w and answers read from r. Processes are numbered
// from one in the order they are entered.
//
// Prompt only checks that every answer is an integer; use [Spec.Validate] to
// check the workload itself.
func Prompt(r io.Reader, w io.Writer) (*Spec, error) {
	in := bufio.NewReader(r)

	ask := func(label string) (int, error) {
		fmt.Fprint(w, label)
		var n int
		if _, err := fmt.Fscan(in, &n); err != nil {
			return 0, fmt.Errorf("workload: reading %q: %w", label, err)
		}
		return n, nil
	}

	n, err := ask("Enter the number of processes: ")
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("workload: negative number of processes %d", n)
	}

	quantum, err := ask("Enter the time quantum for round robin scheduling: ")
	if err != nil {
		return nil, err
	}

	spec := &Spec{
		Config:    tlqsched.Config{Quantum: quantum},
		Processes: make([]ProcessSpec, 0, min(n, maxPromptHint)),
	}

	fmt.Fprintln(w, "Enter arrival time, burst time, and priority for each process:")
	for i := range n {
		fmt.Fprintf(w, "Process %d:\n", i+1)

		id := i + 1
		p := ProcessSpec{ID: &id}
		if p.Arrival, err = ask("Arrival Time: "); err != nil {
			return nil, err
		}
		if p.Burst, err = ask("Burst Time: "); err != nil {
			return nil, err
		}
		var priority int
		if priority, err = ask("Priority: "); err != nil {
			return nil, err
		}
		p.Priority = tlqsched.Priority(priority)

		spec.Processes = append(spec.Processes, p)
	}
	return spec, nil
}
