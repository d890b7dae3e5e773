package ui

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"cpubench/internal/bench"
	"cpubench/internal/store"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFF")).
			Background(lipgloss.Color("63")).
			Bold(true).
			Padding(0, 1)

	failStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("46"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// RunRow is one benchmark's outcome within a suite run, for display.
type RunRow struct {
	Name    string
	Value   string
	Summary bench.Summary
	Err     error
}

// RenderRun renders the per-benchmark summary table for a suite run.
func RenderRun(rows []RunRow) string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render("Benchmark results"))
	sb.WriteString("\n\n")

	w := tabwriter.NewWriter(&sb, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "BENCHMARK\tRESULT\tMEDIAN\tMIN\tMAX\tSTDDEV")
	for _, r := range rows {
		if r.Err != nil {
			fmt.Fprintf(w, "%s\t%s\t-\t-\t-\t-\n", r.Name, failStyle.Render("FAILED: "+r.Err.Error()))
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%.4fs\t%.4fs\t%.4fs\t%.4fs\n",
			r.Name, okStyle.Render(r.Value),
			r.Summary.Median, r.Summary.Min, r.Summary.Max, r.Summary.StdDev)
	}
	w.Flush()
	return sb.String()
}

// RenderRecords renders the stored records table, one row per run, one
// median column per benchmark seen in the data.
func RenderRecords(records []store.Record) string {
	if len(records) == 0 {
		return dimStyle.Render("No benchmark records yet. Run the suite first.") + "\n"
	}

	names := benchmarkNames(records)

	var sb strings.Builder
	sb.WriteString(headerStyle.Render(fmt.Sprintf("Stored records (%d)", len(records))))
	sb.WriteString("\n\n")

	w := tabwriter.NewWriter(&sb, 0, 0, 3, ' ', 0)
	fmt.Fprintf(w, "TIMESTAMP\tSYSTEM\tPLATFORM\tPROCESSOR")
	for _, n := range names {
		fmt.Fprintf(w, "\t%s", strings.ToUpper(n))
	}
	fmt.Fprintln(w)

	for _, rec := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s", rec.Timestamp, rec.SystemName, rec.Platform, rec.Processor)
		for _, n := range names {
			if s, ok := rec.Results[n]; ok {
				fmt.Fprintf(w, "\t%.4fs", s.Median)
			} else {
				fmt.Fprintf(w, "\t-")
			}
		}
		fmt.Fprintln(w)
	}
	w.Flush()
	return sb.String()
}

// benchmarkNames returns the union of benchmark names across records, in
// suite order first, then anything unknown alphabetically after.
func benchmarkNames(records []store.Record) []string {
	seen := map[string]bool{}
	for _, rec := range records {
		for n := range rec.Results {
			seen[n] = true
		}
	}

	order := []string{bench.NamePrimes, bench.NamePi, bench.NameHashing, bench.NameMemory}
	var names []string
	for _, n := range order {
		if seen[n] {
			names = append(names, n)
			delete(seen, n)
		}
	}
	var rest []string
	for n := range seen {
		rest = append(rest, n)
	}
	sort.Strings(rest)
	return append(names, rest...)
}
