package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"cpubench/internal/bench"
	"cpubench/internal/store"
)

// newTestCmd returns a command with captured stdout/stderr.
func newTestCmd() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	cmd := &cobra.Command{}
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	return cmd, out, errOut
}

// useTempStore points the configured store at a file under t.TempDir().
func useTempStore(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "results.jsonl")
	viper.Set("store.file", path)
	t.Cleanup(func() { viper.Set("store.file", store.DefaultFile) })
	return path
}

// seedRecord appends a record with the given medians to the test store.
func seedRecord(t *testing.T, path, system string, medians map[string]float64) {
	t.Helper()
	st, err := store.NewFileStore(path)
	require.NoError(t, err)

	results := make(map[string]bench.Summary, len(medians))
	for name, m := range medians {
		results[name] = bench.Summary{Median: m, Min: m, Max: m}
	}
	require.NoError(t, st.Append(store.Record{
		Timestamp:  "2026-08-23 10:00:00",
		SystemName: system,
		Platform:   "linux (x86_64)",
		Processor:  "Test CPU",
		Results:    results,
	}))
}
