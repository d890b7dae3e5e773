package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"cpubench/internal/bench"
	"cpubench/internal/store"
)

var compareThreshold float64

var compareCmd = &cobra.Command{
	Use:   "compare <system-a> <system-b>",
	Short: "Compare two systems benchmark by benchmark",
	Long: `Compares the best (lowest) median timing per benchmark between two
recorded systems and prints the percentage difference. Differences beyond
the threshold are flagged.`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)
	compareCmd.Flags().Float64Var(&compareThreshold, "threshold", 10.0, "Percentage beyond which a difference is flagged")
}

func runCompare(cmd *cobra.Command, args []string) error {
	sysA, sysB := args[0], args[1]

	st, err := openStore()
	if err != nil {
		return err
	}
	records, skipped, err := st.LoadAll()
	if err != nil {
		return fmt.Errorf("failed to read results: %w", err)
	}
	if skipped > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: skipped %d malformed line(s) in %s\n", skipped, st.Path())
	}

	bestA := bestMedians(records, sysA)
	bestB := bestMedians(records, sysB)
	if len(bestA) == 0 {
		return fmt.Errorf("no records for system %q", sysA)
	}
	if len(bestB) == 0 {
		return fmt.Errorf("no records for system %q", sysB)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintf(w, "BENCHMARK\t%s\t%s\tDIFF %%\tSTATUS\n", sysA, sysB)

	for _, name := range []string{bench.NamePrimes, bench.NamePi, bench.NameHashing, bench.NameMemory} {
		a, okA := bestA[name]
		b, okB := bestB[name]
		if !okA && !okB {
			continue
		}
		if !okA || !okB {
			fmt.Fprintf(w, "%s\t%s\t%s\t-\tMISSING\n", name, medianOrDash(a, okA), medianOrDash(b, okB))
			continue
		}

		// positive diff: B slower than A
		diff := (b - a) / a * 100
		status := "EVEN"
		if diff > compareThreshold {
			status = "B SLOWER"
		} else if diff < -compareThreshold {
			status = "B FASTER"
		}
		fmt.Fprintf(w, "%s\t%.4fs\t%.4fs\t%+.2f%%\t%s\n", name, a, b, diff, status)
	}
	return w.Flush()
}

func medianOrDash(v float64, ok bool) string {
	if !ok {
		return "-"
	}
	return fmt.Sprintf("%.4fs", v)
}

// bestMedians returns the lowest recorded median per benchmark for a system.
func bestMedians(records []store.Record, system string) map[string]float64 {
	best := make(map[string]float64)
	for _, rec := range records {
		if rec.SystemName != system {
			continue
		}
		for name, s := range rec.Results {
			if cur, ok := best[name]; !ok || s.Median < cur {
				best[name] = s.Median
			}
		}
	}
	return best
}
