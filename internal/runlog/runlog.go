// Package runlog keeps the CSV history of batch conversions.
package runlog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"
)

// Entry records one converted (or failed) statement.
type Entry struct {
	Timestamp time.Time
	Input     string
	Output    string
	Bank      string
	Strategy  string
	Rows      int
	Error     string // empty on success
}

// Failed reports whether the conversion failed.
func (e Entry) Failed() bool { return e.Error != "" }

// Header is the CSV header for conversion-log.csv.
const Header = "timestamp,input,output,bank,strategy,rows,error"

const (
	logDir  = "logs"
	logFile = "conversion-log.csv"
)

// row is the on-disk shape of an Entry.
type row struct {
	Timestamp string `csv:"timestamp"`
	Input     string `csv:"input"`
	Output    string `csv:"output"`
	Bank      string `csv:"bank"`
	Strategy  string `csv:"strategy"`
	Rows      int    `csv:"rows"`
	Error     string `csv:"error"`
}

func toRow(e Entry) row {
	return row{
		Timestamp: e.Timestamp.Format(time.RFC3339),
		Input:     e.Input,
		Output:    e.Output,
		Bank:      e.Bank,
		Strategy:  e.Strategy,
		Rows:      e.Rows,
		Error:     e.Error,
	}
}

func (r row) entry() (Entry, error) {
	ts, err := time.Parse(time.RFC3339, r.Timestamp)
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", r.Timestamp, err)
	}
	return Entry{
		Timestamp: ts,
		Input:     r.Input,
		Output:    r.Output,
		Bank:      r.Bank,
		Strategy:  r.Strategy,
		Rows:      r.Rows,
		Error:     r.Error,
	}, nil
}

// Path returns the log location inside a workspace.
func Path(root string) string {
	return filepath.Join(root, logDir, logFile)
}

// Append writes entries to <root>/logs/conversion-log.csv, creating the
// file and header if needed.
func Append(root string, entries []Entry) error {
	if err := os.MkdirAll(filepath.Join(root, logDir), 0o755); err != nil {
		return fmt.Errorf("creating logs dir: %w", err)
	}

	path := Path(root)
	needsHeader := false
	if info, err := os.Stat(path); os.IsNotExist(err) || (err == nil && info.Size() == 0) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening conversion log: %w", err)
	}
	defer f.Close()

	rows := make([]row, len(entries))
	for i, e := range entries {
		rows[i] = toRow(e)
	}

	if needsHeader {
		err = gocsv.Marshal(rows, f)
	} else {
		err = gocsv.MarshalWithoutHeaders(rows, f)
	}
	if err != nil {
		return fmt.Errorf("writing conversion log: %w", err)
	}
	return nil
}

// Read returns all entries from the workspace log, or nil if there is none.
func Read(root string) ([]Entry, error) {
	f, err := os.Open(Path(root))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening conversion log: %w", err)
	}
	defer f.Close()

	var rows []row
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		if errors.Is(err, gocsv.ErrEmptyCSVFile) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading conversion log: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	entries := make([]Entry, 0, len(rows))
	for i, r := range rows {
		e, err := r.entry()
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
