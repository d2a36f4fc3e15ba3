package tlqsched

import "log/slog"

// Options holds configuration options for the [Scheduler].
type Options struct {
	IdlePolicy IdlePolicy
	Logger     *slog.Logger
	Hook       Hook
}

// Option is a function that configures [Options].
type Option func(*Options)

// WithIdlePolicy sets what the [Scheduler] does when both ready queues are
// empty.
func WithIdlePolicy(p IdlePolicy) Option {
	return func(o *Options) {
		o.IdlePolicy = p
	}
}

// WithLogger sets the structured logger the [Scheduler] reports its decisions
// to. Records are emitted at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithHook sets the hook notified of admission, dispatch, demotion and
// completion events.
func WithHook(hook Hook) Option {
	return func(o *Options) {
		o.Hook = hook
	}
}
