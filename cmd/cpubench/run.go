package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"cpubench/internal/bench"
	"cpubench/internal/store"
	"cpubench/internal/sysinfo"
	"cpubench/internal/ui"
)

var (
	runSystemName string
	runSamples    int
	runMemory     bool
	runQuick      bool
	runNoSave     bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the benchmark suite and append a record",
	Long: `Runs each benchmark several times, prints median/min/max/stddev
timings, and appends one JSON line to the results file. A failing benchmark
is reported and the rest of the suite still runs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSuite(cmd, runSystemName)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVar(&runSystemName, "system-name", "", "Name for this system (skips the prompt)")
	runCmd.Flags().IntVar(&runSamples, "samples", 3, "Samples per benchmark")
	runCmd.Flags().BoolVar(&runMemory, "memory", false, "Include the memory bandwidth benchmark")
	runCmd.Flags().BoolVar(&runQuick, "quick", false, "Use reduced iteration counts for a fast smoke run")
	runCmd.Flags().BoolVar(&runNoSave, "no-save", false, "Do not append the record to the results file")
}

// runSuite executes the suite and appends the record. An empty systemName
// triggers the interactive prompt.
func runSuite(cmd *cobra.Command, systemName string) error {
	out := cmd.OutOrStdout()

	name := strings.TrimSpace(systemName)
	if name == "" {
		var err error
		name, err = ui.AskSystemName()
		if err != nil {
			return err
		}
	}

	cfg := bench.DefaultConfig()
	if runQuick {
		cfg = bench.QuickConfig()
	}
	samples := runSamples
	if samples < 1 {
		samples = 1
	}

	fmt.Fprintf(out, "Running CPU benchmark on: %s\n", name)
	fmt.Fprintln(out, strings.Repeat("=", 40))

	var rows []ui.RunRow
	results := make(map[string]bench.Summary)

	for _, b := range cfg.Suite(runMemory) {
		fmt.Fprintf(out, "%-10s ", b.Name)
		summary, outcome, err := bench.Measure(b.Run, samples)
		if err != nil {
			// report and keep going with the rest of the suite
			fmt.Fprintf(out, "FAILED: %v\n", err)
			rows = append(rows, ui.RunRow{Name: b.Name, Err: err})
			continue
		}
		fmt.Fprintf(out, "%s (median %.4fs over %d samples)\n", outcome.Value, summary.Median, samples)
		rows = append(rows, ui.RunRow{Name: b.Name, Value: outcome.Value, Summary: summary})
		results[b.Name] = summary
	}

	fmt.Fprintln(out)
	fmt.Fprint(out, ui.RenderRun(rows))

	if runNoSave {
		return nil
	}
	if len(results) == 0 {
		return fmt.Errorf("every benchmark failed, nothing to record")
	}

	info := sysinfo.Probe()
	rec := store.Record{
		Timestamp:  time.Now().Format(store.TimestampLayout),
		SystemName: name,
		Platform:   info.Platform,
		Processor:  info.Processor,
		Results:    results,
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	if err := st.Append(rec); err != nil {
		return fmt.Errorf("failed to save results: %w", err)
	}
	fmt.Fprintf(out, "\nRecord appended to %s\n", st.Path())
	return nil
}
