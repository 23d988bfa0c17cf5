// Package runlog keeps an append-only CSV audit of report runs under
// <workspace>/logs/run-log.csv.
package runlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Entry is one row in the run log.
type Entry struct {
	Timestamp time.Time
	Command   string
	RowsRead  int
	RowsOut   int
	Export    string // export file path, empty if not exported
}

// Header is the CSV header for run-log.csv.
const Header = "timestamp,command,rows_read,rows_out,export"

const (
	numFields    = 5
	logDir       = "logs"
	logFile      = "logs/run-log.csv"
	colTimestamp = 0
	colCommand   = 1
	colRowsRead  = 2
	colRowsOut   = 3
	colExport    = 4
)

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colCommand] = e.Command
	row[colRowsRead] = strconv.Itoa(e.RowsRead)
	row[colRowsOut] = strconv.Itoa(e.RowsOut)
	row[colExport] = e.Export
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}

	rowsRead, err := strconv.Atoi(record[colRowsRead])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing rows_read %q: %w", record[colRowsRead], err)
	}

	rowsOut, err := strconv.Atoi(record[colRowsOut])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing rows_out %q: %w", record[colRowsOut], err)
	}

	return Entry{
		Timestamp: ts,
		Command:   record[colCommand],
		RowsRead:  rowsRead,
		RowsOut:   rowsOut,
		Export:    record[colExport],
	}, nil
}

// Append writes entries to <root>/logs/run-log.csv, creating the file
// and header if needed.
func Append(root string, entries []Entry) error {
	dir := filepath.Join(root, logDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating logs dir: %w", err)
	}

	path := filepath.Join(root, logFile)
	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening run log: %w", err)
	}
	defer f.Close()

	if needsHeader {
		if _, err := fmt.Fprintln(f, Header); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	cw := csv.NewWriter(f)
	defer cw.Flush()
	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	return cw.Error()
}

// Read reads all entries from <root>/logs/run-log.csv. A missing log
// file yields no entries.
func Read(root string) ([]Entry, error) {
	f, err := os.Open(filepath.Join(root, logFile))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening run log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading run log CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
