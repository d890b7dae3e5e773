package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpubench/internal/bench"
)

func testRecord(system string) Record {
	return Record{
		Timestamp:  "2026-08-23 10:00:00",
		SystemName: system,
		Platform:   "linux (x86_64)",
		Processor:  "Test CPU",
		Results: map[string]bench.Summary{
			bench.NamePrimes: {Median: 0.41, Min: 0.40, Max: 0.43, StdDev: 0.01},
		},
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.jsonl")
	st, err := NewFileStore(path)
	require.NoError(t, err)

	// empty store before the file exists
	records, skipped, err := st.LoadAll()
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Zero(t, skipped)

	rec := testRecord("box-a")
	require.NoError(t, st.Append(rec))
	require.NoError(t, st.Append(testRecord("box-b")))

	records, skipped, err = st.LoadAll()
	require.NoError(t, err)
	assert.Zero(t, skipped)
	require.Len(t, records, 2)

	// appended record comes back unchanged, order preserved
	assert.Equal(t, rec, records[0])
	assert.Equal(t, "box-b", records[1].SystemName)
}

func TestAppendNeverOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.jsonl")
	st, err := NewFileStore(path)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.NoError(t, st.Append(testRecord("same-box")))
	}

	records, _, err := st.LoadAll()
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestLoadAllTolerancesTruncatedLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.jsonl")
	st, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, st.Append(testRecord("box-a")))

	// simulate a crash mid-append: partial trailing line
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
	require.NoError(t, err)
	_, err = f.WriteString(`{"timestamp":"2026-08-23","system_na`)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	records, skipped, err := st.LoadAll()
	require.NoError(t, err)
	assert.Equal(t, 1, skipped)
	require.Len(t, records, 1)
	assert.Equal(t, "box-a", records[0].SystemName)
}

func TestDeleteBySystem(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.jsonl")
	st, err := NewFileStore(path)
	require.NoError(t, err)

	require.NoError(t, st.Append(testRecord("box-a")))
	require.NoError(t, st.Append(testRecord("box-b")))
	require.NoError(t, st.Append(testRecord("box-a")))

	removed, err := st.DeleteBySystem("box-a")
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	records, skipped, err := st.LoadAll()
	require.NoError(t, err)
	assert.Zero(t, skipped)
	require.Len(t, records, 1)
	assert.Equal(t, "box-b", records[0].SystemName)

	// deleting an unknown system is a no-op
	removed, err = st.DeleteBySystem("nope")
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestDeleteRewritesValidJSONL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.jsonl")
	st, err := NewFileStore(path)
	require.NoError(t, err)

	require.NoError(t, st.Append(testRecord("box-a")))
	require.NoError(t, st.Append(testRecord("box-b")))

	// inject a garbage line between appends
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
	require.NoError(t, err)
	_, err = f.WriteString("not json at all\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	_, err = st.DeleteBySystem("box-a")
	require.NoError(t, err)

	// the rewrite drops garbage lines too
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		assert.True(t, strings.HasPrefix(line, "{"), "line should be JSON: %q", line)
	}

	records, skipped, err := st.LoadAll()
	require.NoError(t, err)
	assert.Zero(t, skipped)
	require.Len(t, records, 1)
	assert.Equal(t, "box-b", records[0].SystemName)
}
