// Package auditlog appends engine operations to a CSV trail.
package auditlog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// Entry is one row in the audit log.
type Entry struct {
	Timestamp time.Time
	Operation string // post-transaction, post-interest-rule, statement
	Subject   string // account ID or rule ID
	Detail    string // raw request detail
	Outcome   string // "ok" or the failure message
}

// Header is the CSV header for the audit log.
const Header = "timestamp,operation,subject,detail,outcome"

const (
	numFields    = 5
	colTimestamp = 0
	colOperation = 1
	colSubject   = 2
	colDetail    = 3
	colOutcome   = 4
)

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colOperation] = e.Operation
	row[colSubject] = e.Subject
	row[colDetail] = e.Detail
	row[colOutcome] = e.Outcome
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

	return Entry{
		Timestamp: ts,
		Operation: record[colOperation],
		Subject:   record[colSubject],
		Detail:    record[colDetail],
		Outcome:   record[colOutcome],
	}, nil
}

// Logger appends entries to a fixed CSV file, writing the header when it
// creates the file. A nil Logger discards entries.
type Logger struct {
	path string
}

// New creates a Logger writing to path.
func New(path string) *Logger {
	return &Logger{path: path}
}

// Record appends one entry.
func (l *Logger) Record(ts time.Time, operation, subject, detail, outcome string) error {
	if l == nil {
		return nil
	}

	if dir := filepath.Dir(l.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating audit log dir: %w", err)
		}
	}

	isNew := false
	if _, err := os.Stat(l.path); errors.Is(err, fs.ErrNotExist) {
		isNew = true
	}

	f, err := os.OpenFile(l.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening audit log: %w", err)
	}
	defer f.Close()

	if isNew {
		if _, err := fmt.Fprintln(f, Header); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	cw := csv.NewWriter(f)
	if err := cw.Write(MarshalEntry(Entry{
		Timestamp: ts,
		Operation: operation,
		Subject:   subject,
		Detail:    detail,
		Outcome:   outcome,
	})); err != nil {
		return fmt.Errorf("writing audit entry: %w", err)
	}
	cw.Flush()
	return cw.Error()
}

// Read loads all entries from the log at path. A missing file is an empty
// log.
func Read(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening audit log: %w", err)
	}
	defer f.Close()

	return ReadEntries(f)
}

// ReadEntries reads audit entries from a CSV reader.
func ReadEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading audit CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
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
