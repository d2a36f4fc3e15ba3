package workload

import "errors"

var (
	// ErrInvalidQuantum is returned when the time quantum is not positive.
	ErrInvalidQuantum = errors.New("workload: time quantum must be positive")

	// ErrInvalidBurst is returned when a process burst time is not positive.
	ErrInvalidBurst = errors.New("workload: burst time must be positive")

	// ErrInvalidArrival is returned when a process arrives before tick zero.
	ErrInvalidArrival = errors.New("workload: arrival time must not be negative")

	// ErrInvalidID is returned when a process id is not positive.
	ErrInvalidID = errors.New("workload: process id must be positive")

	// ErrDuplicateID is returned when two processes share an id.
	ErrDuplicateID = errors.New("workload: duplicate process id")

	// ErrUnsupportedFormat is returned when the workload encoding cannot be
	// inferred from its name.
	ErrUnsupportedFormat = errors.New("workload: unsupported format")
)
