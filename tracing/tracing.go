package tracing

import (
	"context"
	"errors"
	"io"
	"math"
	"os"
	"sync"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/tomasbasham/tlqsched"
)

const instrumentationName = "github.com/tomasbasham/tlqsched"

// Init configures OpenTelemetry with the stdout exporter. If outputFile is
// empty the exporter writes to os.Stderr, keeping stdout free for the report;
// otherwise spans are written to the named file.
//
// The returned function flushes and shuts down the provider and closes the
// output file. Only the first successful call installs a provider; later
// calls open nothing and return a no-op shutdown.
func Init(serviceName, serviceVersion, outputFile string) (func(context.Context) error, error) {
	providerMu.Lock()
	defer providerMu.Unlock()

	if provider != nil {
		return func(context.Context) error { return nil }, nil
	}

	var w io.Writer = os.Stderr
	var closer io.Closer
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return nil, err
		}
		w, closer = f, f
	}

	tp, err := newProvider(serviceName, serviceVersion, w)
	if err != nil {
		if closer != nil {
			closer.Close()
		}
		return nil, err
	}
	provider = tp
	otel.SetTracerProvider(tp)

	return func(ctx context.Context) error {
		err := tp.Shutdown(ctx)
		if closer != nil {
			err = errors.Join(err, closer.Close())
		}
		return err
	}, nil
}

var (
	providerMu sync.Mutex
	provider   *sdktrace.TracerProvider
)

func newProvider(serviceName, serviceVersion string, w io.Writer) (*sdktrace.TracerProvider, error) {
	exporter, err := stdouttrace.New(stdouttrace.WithWriter(w), stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, err
	}
	res, err := resource.New(context.Background(),
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
		),
	)
	if err != nil {
		return nil, err
	}
	return sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(sdktrace.NewSimpleSpanProcessor(exporter)),
		sdktrace.WithResource(res),
	), nil
}

// Option configures a [Hook].
type Option func(*Hook)

// WithTracerProvider sets the provider spans are created from. The global
// provider is used by default.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(h *Hook) {
		h.tracer = tp.Tracer(instrumentationName)
	}
}

// Hook implements [tlqsched.Hook] by recording a simulation run as a trace.
// A Hook records a single run: create it with [Start] before the run and
// close it with [Hook.End] afterwards.
type Hook struct {
	tracer trace.Tracer
	ctx    context.Context
	root   trace.Span
	runID  string
}

var _ tlqsched.Hook = (*Hook)(nil)

// Start opens the root span of a simulation run and returns the hook to
// install with [tlqsched.WithHook].
func Start(ctx context.Context, name string, opts ...Option) *Hook {
	h := &Hook{runID: uuid.New().String()}
	for _, opt := range opts {
		opt(h)
	}
	if h.tracer == nil {
		h.tracer = otel.Tracer(instrumentationName)
	}

	h.ctx, h.root = h.tracer.Start(ctx, name,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attribute.String("simulation.run_id", h.runID)),
	)
	return h
}

// RunID returns the unique id attached to every span of the run.
func (h *Hook) RunID() string {
	return h.runID
}

func (h *Hook) OnAdmit(p *tlqsched.Process, at int) {
	h.root.AddEvent("process.admitted", trace.WithAttributes(
		attribute.Int("process.id", p.ID),
		attribute.Int("process.priority", int(p.Priority)),
		attribute.Int("simulation.tick", at),
	))
}

func (h *Hook) OnDispatch(s tlqsched.Slice, p *tlqsched.Process) {
	_, span := h.tracer.Start(h.ctx, "dispatch", trace.WithAttributes(
		attribute.String("simulation.run_id", h.runID),
		attribute.Int("process.id", s.PID),
		attribute.String("scheduler.level", s.Level.String()),
		attribute.Int("slice.start", s.Start),
		attribute.Int("slice.stop", s.Stop),
		attribute.Int("process.remaining", p.Remaining()),
	))
	span.End()
}

func (h *Hook) OnDemote(p, by *tlqsched.Process, at int) {
	h.root.AddEvent("process.demoted", trace.WithAttributes(
		attribute.Int("process.id", p.ID),
		attribute.Int("preempted_by", by.ID),
		attribute.Int("simulation.tick", at),
	))
}

func (h *Hook) OnComplete(p *tlqsched.Process) {
	h.root.AddEvent("process.completed", trace.WithAttributes(
		attribute.Int("process.id", p.ID),
		attribute.Int("process.completion_time", p.CompletionTime),
		attribute.Int("process.turnaround_time", p.TurnaroundTime),
		attribute.Int("process.waiting_time", p.WaitingTime),
	))
}

// End records the summary of r on the root span and ends it. A run that left
// processes pending is marked as an error.
func (h *Hook) End(r *tlqsched.Result) {
	attrs := []attribute.KeyValue{
		attribute.Int("simulation.end_time", r.EndTime),
		attribute.Int("simulation.completed", len(r.Completed)),
		attribute.Int("simulation.pending", len(r.Pending)),
	}
	if v := r.AverageTurnaroundTime(); !math.IsNaN(v) {
		attrs = append(attrs, attribute.Float64("simulation.avg_turnaround", v))
	}
	if v := r.AverageWaitingTime(); !math.IsNaN(v) {
		attrs = append(attrs, attribute.Float64("simulation.avg_waiting", v))
	}
	h.root.SetAttributes(attrs...)

	if len(r.Pending) > 0 {
		h.root.SetStatus(codes.Error, "simulation halted with pending processes")
	} else {
		h.root.SetStatus(codes.Ok, "")
	}
	h.root.End()
}
