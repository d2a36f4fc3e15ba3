// Package report renders the outcome of a simulation as text.
package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/tomasbasham/tlqsched"
)

// Write renders the execution order, a Gantt chart and the schedule table of
// r to w. Averages are omitted when no process completed.
func Write(w io.Writer, title string, r *tlqsched.Result) error {
	ew := &errWriter{w: w}

	writeTitle(ew, title)
	writeOrder(ew, r.Order)
	writeGantt(ew, Gantt(r.Slices))
	writeSchedule(ew, r)
	writePending(ew, r.Pending)

	return ew.err
}

// Gantt merges consecutive slices of the same process on the same level into
// a single bar.
func Gantt(slices []tlqsched.Slice) []tlqsched.Slice {
	bars := make([]tlqsched.Slice, 0, len(slices))
	for _, s := range slices {
		if n := len(bars); n > 0 {
			last := &bars[n-1]
			if last.PID == s.PID && last.Level == s.Level && last.Stop == s.Start {
				last.Stop = s.Stop
				continue
			}
		}
		bars = append(bars, s)
	}
	return bars
}

func writeTitle(w io.Writer, title string) {
	if title == "" {
		return
	}
	fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

func writeOrder(w io.Writer, order []int) {
	fmt.Fprintln(w, "Execution order:")
	ids := make([]string, len(order))
	for i, id := range order {
		ids[i] = strconv.Itoa(id)
	}
	fmt.Fprintf(w, "%s\n\n", strings.Join(ids, " "))
}

func writeGantt(w io.Writer, bars []tlqsched.Slice) {
	if len(bars) == 0 {
		return
	}

	fmt.Fprintln(w, "Gantt schedule")
	fmt.Fprint(w, "|")
	for _, b := range bars {
		label := "P" + strconv.Itoa(b.PID)
		if b.Level == tlqsched.Level2 {
			label += "*"
		}
		padding := strings.Repeat(" ", max(0, (8-len(label))/2))
		fmt.Fprint(w, padding, label, padding, "|")
	}
	fmt.Fprintln(w)
	for i, b := range bars {
		fmt.Fprint(w, strconv.Itoa(b.Start), "\t")
		if i == len(bars)-1 {
			fmt.Fprint(w, strconv.Itoa(b.Stop))
		}
	}
	fmt.Fprintf(w, "\n(* round-robin)\n\n")
}

func writeSchedule(w io.Writer, r *tlqsched.Result) {
	rows := make([][]string, 0, len(r.Completed))
	for _, p := range r.Completed {
		rows = append(rows, []string{
			strconv.Itoa(p.ID),
			strconv.Itoa(p.ArrivalTime),
			strconv.Itoa(p.BurstTime),
			strconv.Itoa(int(p.Priority)),
			strconv.Itoa(p.CompletionTime),
			strconv.Itoa(p.TurnaroundTime),
			strconv.Itoa(p.WaitingTime),
		})
	}

	fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"PID", "AT", "BT", "PR", "CT", "TAT", "WT"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "",
		"Throughput\n" + format(r.Throughput(), "%.2f/t"),
		"Average\n" + format(r.AverageTurnaroundTime(), "%.2f"),
		"Average\n" + format(r.AverageWaitingTime(), "%.2f"),
	})
	table.Render()
}

func writePending(w io.Writer, pending []*tlqsched.Process) {
	if len(pending) == 0 {
		return
	}
	ids := make([]string, len(pending))
	for i, p := range pending {
		ids[i] = strconv.Itoa(p.ID)
	}
	fmt.Fprintf(w, "Not completed: %s\n", strings.Join(ids, " "))
}

// format guards against the undefined averages of an empty simulation.
func format(v float64, layout string) string {
	if math.IsNaN(v) {
		return "-"
	}
	return fmt.Sprintf(layout, v)
}

// errWriter remembers the first write error and drops every later write.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	if _, err := e.w.Write(p); err != nil {
		e.err = err
	}
	return len(p), nil
}
