package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpubench/internal/bench"
	"cpubench/internal/store"
)

func TestDeleteSystem(t *testing.T) {
	path := useTempStore(t)
	seedRecord(t, path, "box-a", map[string]float64{bench.NamePrimes: 0.4})
	seedRecord(t, path, "box-b", map[string]float64{bench.NamePrimes: 0.5})
	seedRecord(t, path, "box-a", map[string]float64{bench.NamePrimes: 0.39})

	cmd, out, _ := newTestCmd()
	require.NoError(t, deleteSystem(cmd, "box-a", true))
	assert.Contains(t, out.String(), `Removed 2 record(s) for "box-a"`)

	st, err := store.NewFileStore(path)
	require.NoError(t, err)
	records, _, err := st.LoadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "box-b", records[0].SystemName)
}

func TestDeleteSystemNoMatch(t *testing.T) {
	path := useTempStore(t)
	seedRecord(t, path, "box-a", map[string]float64{bench.NamePrimes: 0.4})

	cmd, out, _ := newTestCmd()
	require.NoError(t, deleteSystem(cmd, "ghost", true))
	assert.Contains(t, out.String(), `No records for system "ghost"`)

	st, err := store.NewFileStore(path)
	require.NoError(t, err)
	records, _, err := st.LoadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}
