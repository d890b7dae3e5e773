package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"cpubench/internal/bench"
	"cpubench/internal/store"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored records as CSV or JSONL",
	Long: `Writes the results file in another shape. CSV mirrors the layout of
classic spreadsheet benchmark logs: a header row, then one row per run with
the median seconds per benchmark.`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "Output format: csv or jsonl")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "-", "Output file, or - for stdout")
}

func runExport(cmd *cobra.Command, args []string) error {
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

	var w io.Writer = cmd.OutOrStdout()
	if exportOutput != "-" && exportOutput != "" {
		f, err := os.Create(exportOutput)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", exportOutput, err)
		}
		defer f.Close()
		w = f
	}

	switch exportFormat {
	case "csv":
		return exportCSV(w, records)
	case "jsonl":
		return exportJSONL(w, records)
	default:
		return fmt.Errorf("unknown format %q (want csv or jsonl)", exportFormat)
	}
}

func exportCSV(w io.Writer, records []store.Record) error {
	names := []string{bench.NamePrimes, bench.NamePi, bench.NameHashing, bench.NameMemory}

	cw := csv.NewWriter(w)
	header := []string{"timestamp", "system_name", "platform", "processor"}
	for _, n := range names {
		header = append(header, n+"_median_s")
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, rec := range records {
		row := []string{rec.Timestamp, rec.SystemName, rec.Platform, rec.Processor}
		for _, n := range names {
			if s, ok := rec.Results[n]; ok {
				row = append(row, strconv.FormatFloat(s.Median, 'f', 4, 64))
			} else {
				row = append(row, "")
			}
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func exportJSONL(w io.Writer, records []store.Record) error {
	enc := json.NewEncoder(w)
	for _, rec := range records {
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}
	return nil
}
