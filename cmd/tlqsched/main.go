// Tlqsched simulates a two-level feedback queue scheduler over a workload and
// prints the resulting schedule.
//
// The workload is read from the file or URL given with -f, or collected
// interactively when -f is omitted.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomasbasham/tlqsched"
	"github.com/tomasbasham/tlqsched/internal/logging"
	"github.com/tomasbasham/tlqsched/report"
	"github.com/tomasbasham/tlqsched/tracing"
	"github.com/tomasbasham/tlqsched/workload"
)

const version = "0.1.0"

type flags struct {
	workload string
	quantum  int
	idle     string
	logLevel string
	logFile  string
	trace    bool
	traceOut string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func parseFlags(args []string, output io.Writer) (*flags, error) {
	f := &flags{}

	fs := flag.NewFlagSet("tlqsched", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&f.workload, "f", "", "workload file or URL (yaml, json or csv); prompts on stdin when empty")
	fs.IntVar(&f.quantum, "q", 0, "round-robin time quantum, overrides the workload")
	fs.StringVar(&f.idle, "idle", "", "idle policy when both queues are empty: halt or advance")
	fs.StringVar(&f.logLevel, "log-level", "INFO", "log level: DEBUG, INFO, WARN or ERROR")
	fs.StringVar(&f.logFile, "log-file", "", "also append logs to this file")
	fs.BoolVar(&f.trace, "trace", false, "export an OpenTelemetry trace of the run")
	fs.StringVar(&f.traceOut, "trace-file", "", "write the trace to this file instead of stderr")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	f, err := parseFlags(args, os.Stderr)
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.Open(f.logFile, f.logLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	spec, err := loadWorkload(ctx, f, stdin, stdout)
	if err != nil {
		return err
	}
	if f.quantum != 0 {
		spec.Quantum = f.quantum
	}
	if f.idle != "" {
		spec.IdlePolicy = f.idle
	}
	if err := spec.Validate(); err != nil {
		return fmt.Errorf("invalid workload: %w", err)
	}

	opts := []tlqsched.Option{tlqsched.WithLogger(logger)}

	var hook *tracing.Hook
	if f.trace || f.traceOut != "" {
		shutdown, err := tracing.Init("tlqsched", version, f.traceOut)
		if err != nil {
			return fmt.Errorf("init tracing: %w", err)
		}
		defer func() {
			if err := shutdown(context.WithoutCancel(ctx)); err != nil {
				logger.Error("shutting down tracing", slog.Any("error", err))
			}
		}()
		hook = tracing.Start(ctx, "simulation")
		opts = append(opts, tlqsched.WithHook(hook))
	}

	s, err := tlqsched.NewFromConfig(&spec.Config, opts...)
	if err != nil {
		return err
	}

	logger.Info("simulation started",
		slog.Int("processes", len(spec.Processes)),
		slog.Int("quantum", s.Quantum()),
		slog.String("idle_policy", spec.IdlePolicy),
	)
	result := s.Run(spec.Build())
	if hook != nil {
		hook.End(result)
	}
	logger.Info("simulation finished",
		slog.Int("end_time", result.EndTime),
		slog.Int("completed", len(result.Completed)),
		slog.Int("pending", len(result.Pending)),
	)
	if len(result.Pending) > 0 {
		logger.Warn("simulation halted before every process arrived; use -idle advance to run them")
	}

	return report.Write(stdout, "Two-level queue scheduling", result)
}

func loadWorkload(ctx context.Context, f *flags, stdin io.Reader, stdout io.Writer) (*workload.Spec, error) {
	if f.workload == "" {
		return workload.Prompt(stdin, stdout)
	}
	return workload.Load(ctx, f.workload)
}
