// Package workload loads and validates the processes a simulation runs.
//
// A workload is a time quantum plus a list of processes. It can be decoded
// from YAML or CSV, downloaded from any location supported by
// github.com/viant/afs, or collected interactively from a terminal.
// Validation happens here so that the scheduler only ever sees well formed
// input.
package workload
