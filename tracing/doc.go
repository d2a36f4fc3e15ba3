// Package tracing records simulations as OpenTelemetry traces. All
// instrumentation lives in this package so that applications which do not
// need tracing can leave it out of their build.
//
// Each run becomes a root span, each dispatch a child span, and admissions,
// demotions and completions become events on the root span. Simulated ticks
// are recorded as attributes since they bear no relation to wall-clock time.
package tracing
