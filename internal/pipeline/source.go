package pipeline

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/lepinkainen/shelfscan/internal/csvutil"
	"github.com/lepinkainen/shelfscan/internal/fileutil"
)

// ExitCommand ends an interactive session.
const ExitCommand = "exit"

// Source produces raw barcode strings. ok is false once the source is exhausted.
type Source interface {
	Next() (raw string, ok bool, err error)
}

// InteractiveSource prompts for and reads one line at a time. Lines have no
// length limit.
type InteractiveSource struct {
	reader *bufio.Reader
	prompt io.Writer
}

// NewInteractiveSource reads lines from in and writes prompts to prompt.
func NewInteractiveSource(in io.Reader, prompt io.Writer) *InteractiveSource {
	return &InteractiveSource{
		reader: bufio.NewReader(in),
		prompt: prompt,
	}
}

// Next prompts for a barcode. "exit" (any case) or end of input ends the session.
func (s *InteractiveSource) Next() (string, bool, error) {
	_, _ = fmt.Fprint(s.prompt, "\nEnter barcode (or 'exit'): ")

	line, err := s.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", false, fmt.Errorf("failed to read input: %w", err)
		}
		if line == "" {
			return "", false, nil
		}
	}

	line = strings.TrimRight(line, "\r\n")
	if strings.EqualFold(strings.TrimSpace(line), ExitCommand) {
		return "", false, nil
	}
	return line, true, nil
}

// BatchSource yields the first field of every row in a CSV file.
type BatchSource struct {
	records *csvutil.RecordReader
}

// OpenBatch opens a CSV file of barcodes. A missing path fails before
// anything is read or written.
func OpenBatch(path string) (*BatchSource, error) {
	if !fileutil.FileExists(path) {
		return nil, fmt.Errorf("file '%s' does not exist", path)
	}

	records, err := csvutil.Open(path)
	if err != nil {
		return nil, err
	}
	return &BatchSource{records: records}, nil
}

// Next returns the first field of the next non-empty row.
func (s *BatchSource) Next() (string, bool, error) {
	for {
		record, err := s.records.Next()
		if errors.Is(err, io.EOF) {
			return "", false, nil
		}
		if err != nil {
			return "", false, err
		}
		if len(record) == 0 {
			continue
		}
		return record[0], true, nil
	}
}

// Close releases the CSV file.
func (s *BatchSource) Close() error {
	return s.records.Close()
}
