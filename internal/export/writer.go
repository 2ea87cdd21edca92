// Package export implements the output sink: an append-only CSV table bound
// to the fixed 16-column schema, plus conversion to the xlsx artifact.
package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/maximvlah/ntf/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// TableWriter appends flat rows to a CSV file. The header row is written on
// creation; rows arrive incrementally as batch workers complete.
type TableWriter struct {
	file      *os.File
	csv       *csv.Writer
	rows      int
	finalized bool
}

// NewTableWriter creates the table file at path and writes the BOM and the
// 16-column header row.
func NewTableWriter(path string) (*TableWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating table file: %w", err)
	}
	if _, err := f.Write(BOM); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("writing BOM: %w", err)
	}
	w := &TableWriter{file: f, csv: csv.NewWriter(f)}
	if err := w.csv.Write(domain.Columns); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("writing header: %w", err)
	}
	return w, nil
}

// Append writes rows in order. A row whose column set differs from
// domain.Columns indicates a defect upstream and fails with
// domain.ErrSchemaMismatch rather than silently dropping columns.
func (w *TableWriter) Append(rows []domain.FlatRow) error {
	for _, row := range rows {
		record, err := toRecord(row)
		if err != nil {
			return err
		}
		if err := w.csv.Write(record); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
		w.rows++
	}
	return nil
}

func toRecord(row domain.FlatRow) ([]string, error) {
	if len(row) != len(domain.Columns) {
		return nil, fmt.Errorf("%w: row has %d columns, want %d", domain.ErrSchemaMismatch, len(row), len(domain.Columns))
	}
	record := make([]string, len(domain.Columns))
	for i, col := range domain.Columns {
		val, ok := row[col]
		if !ok {
			return nil, fmt.Errorf("%w: row missing column %q", domain.ErrSchemaMismatch, col)
		}
		record[i] = val
	}
	return record, nil
}

// RowCount returns the number of data rows appended so far.
func (w *TableWriter) RowCount() int {
	return w.rows
}

// Finalize flushes and closes the table file and returns its path. Must be
// called exactly once.
func (w *TableWriter) Finalize() (string, error) {
	if w.finalized {
		return "", fmt.Errorf("table writer already finalized")
	}
	w.finalized = true
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		_ = w.file.Close()
		return "", fmt.Errorf("flushing table: %w", err)
	}
	if err := w.file.Close(); err != nil {
		return "", fmt.Errorf("closing table file: %w", err)
	}
	return w.file.Name(), nil
}

// Discard closes and removes the underlying file, abandoning a partially
// written table on error or cancellation.
func (w *TableWriter) Discard() error {
	w.finalized = true
	_ = w.file.Close()
	return os.Remove(w.file.Name())
}
