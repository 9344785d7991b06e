// Package csvutil streams records from CSV input files.
package csvutil

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// RecordReader streams records from a CSV file. Quoting is lenient, so a
// stray quote inside a field never drops the row.
type RecordReader struct {
	file   *os.File
	reader *csv.Reader
	name   string
}

// Open opens filename for streaming. Records may have any number of
// fields, and an empty file simply yields no records.
func Open(filename string) (*RecordReader, error) {
	csvFile, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}

	if fi, err := csvFile.Stat(); err != nil || fi.IsDir() {
		_ = csvFile.Close()
		return nil, fmt.Errorf("CSV file %s is not a readable file", filename)
	}

	reader := csv.NewReader(csvFile)
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	return &RecordReader{file: csvFile, reader: reader, name: filename}, nil
}

// Next returns the next record, or io.EOF when the file is exhausted.
func (r *RecordReader) Next() ([]string, error) {
	record, err := r.reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, io.EOF
	}
	if err != nil {
		slog.Error("Failed to read CSV record", "file", r.name, "error", err)
		return nil, fmt.Errorf("failed to read CSV record: %w", err)
	}
	return record, nil
}

// Close closes the underlying file.
func (r *RecordReader) Close() error {
	return r.file.Close()
}
