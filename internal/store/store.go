// Package store persists benchmark records as JSON Lines: one record per
// line, append-only. The file stays valid JSONL after every successful
// operation; a crash mid-append can leave a partial trailing line, which
// reads tolerate.
package store

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"cpubench/internal/bench"
)

// DefaultFile is the results file written in the working directory.
const DefaultFile = "cpu_benchmark_results.jsonl"

// TimestampLayout is the format recorded in each record.
const TimestampLayout = "2006-01-02 15:04:05"

// Record is one benchmark run on one machine. Records are immutable once
// appended.
type Record struct {
	Timestamp  string                   `json:"timestamp"`
	SystemName string                   `json:"system_name"`
	Platform   string                   `json:"platform"`
	Processor  string                   `json:"processor"`
	Results    map[string]bench.Summary `json:"results"`
}

// Store is the persistence interface for benchmark records.
type Store interface {
	Append(rec Record) error
	LoadAll() ([]Record, int, error)
	DeleteBySystem(name string) (int, error)
}

// FileStore implements Store on a JSONL file.
type FileStore struct {
	path string
}

func NewFileStore(path string) (*FileStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return &FileStore{path: path}, nil
}

func (s *FileStore) Path() string { return s.path }

// Append serializes rec to one JSON line and appends it to the file.
func (s *FileStore) Append(rec Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", s.path, err)
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to append record: %w", err)
	}
	return f.Sync()
}

// LoadAll reads every line and parses it as a record. Malformed lines
// (including a partial trailing line from an interrupted append) are skipped;
// the second return value is how many were. A missing file is an empty store.
func (s *FileStore) LoadAll() ([]Record, int, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []Record{}, 0, nil
		}
		return nil, 0, fmt.Errorf("failed to open %s: %w", s.path, err)
	}
	defer f.Close()

	records := []Record{}
	skipped := 0

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var rec Record
		if err := json.Unmarshal(line, &rec); err != nil {
			skipped++
			continue
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, skipped, fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	return records, skipped, nil
}

// DeleteBySystem removes every record whose system_name equals name and
// rewrites the file atomically (temp file in the same directory, then
// rename). Garbage lines are dropped by the rewrite too. Returns the number
// of records removed.
func (s *FileStore) DeleteBySystem(name string) (int, error) {
	records, _, err := s.LoadAll()
	if err != nil {
		return 0, err
	}

	kept := records[:0]
	removed := 0
	for _, rec := range records {
		if rec.SystemName == name {
			removed++
			continue
		}
		kept = append(kept, rec)
	}
	if removed == 0 {
		return 0, nil
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".cpubench-*.jsonl")
	if err != nil {
		return 0, fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := bufio.NewWriter(tmp)
	for _, rec := range kept {
		data, err := json.Marshal(rec)
		if err != nil {
			tmp.Close()
			return 0, fmt.Errorf("failed to marshal record: %w", err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			tmp.Close()
			return 0, fmt.Errorf("failed to write temp file: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return 0, fmt.Errorf("failed to flush temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return 0, fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return 0, fmt.Errorf("failed to replace %s: %w", s.path, err)
	}
	return removed, nil
}
