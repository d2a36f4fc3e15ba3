package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Prompt(t *testing.T) {
	var out bytes.Buffer
	input := "2\n2\n0 4 2\n2 2 1\n"

	err := run(context.Background(), []string{"-log-level", "ERROR"}, strings.NewReader(input), &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Enter the number of processes: ")
	assert.Contains(t, out.String(), "Execution order:\n1 1 2 2 1\n")
}

func TestRun_WorkloadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gap.csv")
	require.NoError(t, os.WriteFile(path, []byte("1,0,2,1\n2,5,1,1\n"), 0o644))

	tests := map[string]struct {
		args []string
		want string
	}{
		"halt policy leaves the late process pending": {
			args: []string{"-f", path, "-log-level", "ERROR"},
			want: "Not completed: 2",
		},
		"advance policy runs the late process": {
			args: []string{"-f", path, "-idle", "advance", "-log-level", "ERROR"},
			want: "Execution order:\n1 1 2\n",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, run(context.Background(), tt.args, strings.NewReader(""), &out))
			assert.Contains(t, out.String(), tt.want)
		})
	}
}

func TestRun_InvalidWorkload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("1,0,0,1\n"), 0o644))

	err := run(context.Background(), []string{"-f", path, "-log-level", "ERROR"}, strings.NewReader(""), &bytes.Buffer{})
	assert.ErrorContains(t, err, "invalid workload")
}

func TestRun_QuantumOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.yaml")
	doc := "quantum: 1\nprocesses:\n  - {id: 1, arrival: 0, burst: 4, priority: 2}\n  - {id: 2, arrival: 1, burst: 1, priority: 1}\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-f", path, "-q", "3", "-log-level", "ERROR"}, strings.NewReader(""), &out))

	// Process 1 is demoted at tick 1 and finishes its remaining 3 ticks in a
	// single quantum.
	assert.Contains(t, out.String(), "Execution order:\n1 2 1\n")
}

func TestRun_Trace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "demo.csv")
	require.NoError(t, os.WriteFile(path, []byte("1,0,2,1\n"), 0o644))
	spans := filepath.Join(dir, "spans.json")

	var out bytes.Buffer
	args := []string{"-f", path, "-trace", "-trace-file", spans, "-log-level", "ERROR"}
	require.NoError(t, run(context.Background(), args, strings.NewReader(""), &out))

	assert.Contains(t, out.String(), "Execution order:\n1 1\n")
	assert.NotContains(t, out.String(), "SpanContext", "spans must not be mixed into the report")

	data, err := os.ReadFile(spans)
	require.NoError(t, err)
	assert.Contains(t, string(data), "dispatch")
}
