// Package history records a search run's improving solutions to a CSV file
// and prints the final banner, matching the didp-rust-models CLI tools'
// run_solver_and_dump_solution_history and print_solution_statistics.
package history

import (
	"fmt"
	"io"
	"os"

	"github.com/romfontaine/dpsearch/pkg/dpsearch"
)

// Namer decodes an opaque transition label into the name a CLI should print
// (e.g. "pack item 3"). The engine never interprets labels itself.
type Namer func(dpsearch.Label) string

// Writer implements dpsearch.HistorySink by appending one CSV row per
// improving solution: time, cost, bound (blank if absent), space-joined
// transition names, expanded, generated. Every write is flushed
// immediately so a killed or timed-out run leaves a readable file.
type Writer[C dpsearch.Number] struct {
	f     *os.File
	namer Namer
}

// NewWriter creates (or truncates) filename and returns a Writer over it.
// Callers must call Close when the run completes.
func NewWriter[C dpsearch.Number](filename string, namer Namer) (*Writer[C], error) {
	f, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open history file: %w", err)
	}
	return &Writer[C]{f: f, namer: namer}, nil
}

// Record appends a row for sol if it carries a cost; solutions with no
// cost yet (only a bound) are not written, matching the Rust original.
func (w *Writer[C]) Record(sol dpsearch.Solution[C]) error {
	if !sol.HasCost {
		return nil
	}

	names := make([]string, len(sol.Transitions))
	for i, l := range sol.Transitions {
		if w.namer != nil {
			names[i] = w.namer(l)
		} else {
			names[i] = fmt.Sprintf("%d", l)
		}
	}
	transitions := joinSpace(names)

	var line string
	if sol.HasBestBound {
		line = fmt.Sprintf("%g, %v, %v, %s, %d, %d\n",
			sol.Time.Seconds(), sol.Cost, sol.BestBound, transitions, sol.Expanded, sol.Generated)
	} else {
		line = fmt.Sprintf("%g, %v, , %s, %d, %d\n",
			sol.Time.Seconds(), sol.Cost, transitions, sol.Expanded, sol.Generated)
	}

	if _, err := w.f.WriteString(line); err != nil {
		return fmt.Errorf("write history row: %w", err)
	}
	return w.f.Sync()
}

// Close closes the underlying file.
func (w *Writer[C]) Close() error { return w.f.Close() }

// WriteRunHeader writes a leading "# run_id: ..." comment line identifying
// this invocation, so a batch of history files from a parameter sweep can
// be joined back to their run without re-parsing flags. Must be called
// before any Record, if at all.
func (w *Writer[C]) WriteRunHeader(runID string) error {
	_, err := fmt.Fprintf(w.f, "# run_id: %s\n", runID)
	return err
}

func joinSpace(items []string) string {
	out := ""
	for i, s := range items {
		if i > 0 {
			out += " "
		}
		out += s
	}
	return out
}

// PrintStatistics writes the final cost/bound/timing banner for sol to w,
// mirroring print_solution_statistics.
func PrintStatistics[C dpsearch.Number](w io.Writer, sol dpsearch.Solution[C]) {
	if sol.HasCost {
		fmt.Fprintf(w, "cost: %v\n", sol.Cost)
		if sol.IsOptimal {
			fmt.Fprintf(w, "optimal cost: %v\n", sol.Cost)
		}
	} else {
		fmt.Fprintln(w, "No solution is found.")
		if sol.IsInfeasible {
			fmt.Fprintln(w, "The problem is infeasible.")
		}
	}
	if sol.HasBestBound {
		fmt.Fprintf(w, "best bound: %v\n", sol.BestBound)
	}
	fmt.Fprintf(w, "Search time: %gs\n", sol.Time.Seconds())
	fmt.Fprintf(w, "Expanded: %d\n", sol.Expanded)
	fmt.Fprintf(w, "Generated: %d\n", sol.Generated)
}
