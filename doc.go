// Package tlqsched implements a discrete, single-core simulation of a
// two-level feedback queue CPU scheduler.
//
// The first level runs fixed-priority preemptive scheduling: at every tick
// the ready processes are ordered by priority and the most urgent one runs for
// a single time unit. When a strictly more urgent process arrives while a
// process is running, the running process is demoted to the second level.
//
// The second level runs round-robin scheduling over demoted processes, each
// dispatch granting at most one time quantum. The second level only runs when
// the first level is empty.
//
// The simulation produces an execution order, a timeline of dispatch slices,
// and per-process completion, turnaround and waiting times.
package tlqsched
