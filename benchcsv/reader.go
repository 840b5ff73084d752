// Copyright 2024 The Minicask Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchcsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// numFields is the exact field count of a benchmark result row:
// descr, threadQty, keySize, valueSize, readPercent, operationQty,
// durationUs, forcedWriteSync, customValue.
const numFields = 9

// A SyntaxError represents a malformed row in a benchmark result file.
//
// Malformed rows are not recoverable: a wrong field count or a
// non-numeric field aborts the whole ingestion rather than silently
// producing a wrong chart.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.FileName, e.Line, e.Msg)
}

// A Reader reads samples from a single benchmark result file.
//
// Its API is modeled on bufio.Scanner: call Scan until it returns
// false, then check Err.
//
// The header row is discarded. A completely empty input (not even a
// header) yields zero samples and no error.
type Reader struct {
	csv      *csv.Reader
	fileName string
	line     int
	sample   Sample
	err      error
	started  bool
}

// NewReader constructs a reader parsing benchmark result rows from r.
// fileName is used in error messages; it is purely diagnostic.
func NewReader(r io.Reader, fileName string) *Reader {
	cr := csv.NewReader(r)
	// Field count is validated here so that the error carries the
	// file position in this package's format.
	cr.FieldsPerRecord = -1
	if fileName == "" {
		fileName = "<unknown>"
	}
	return &Reader{csv: cr, fileName: fileName}
}

// Scan advances the reader to the next sample and reports whether one
// was read. The caller should use the Sample method to get the sample.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}
	if !r.started {
		r.started = true
		r.line++
		if _, err := r.csv.Read(); err != nil {
			// Empty file, most probably. Not an error.
			if err != io.EOF {
				r.err = r.newSyntaxError(err.Error())
			}
			return false
		}
	}

	r.line++
	// csv.Reader skips fully blank lines, so a stray empty line is
	// tolerated rather than rejected as a wrong-field-count row.
	row, err := r.csv.Read()
	if err == io.EOF {
		return false
	}
	if err != nil {
		r.err = r.newSyntaxError(err.Error())
		return false
	}
	s, err := r.parseRow(row)
	if err != nil {
		r.err = err
		return false
	}
	r.sample = s
	return true
}

// Sample returns the sample that was just read by Scan.
func (r *Reader) Sample() Sample {
	return r.sample
}

// Err returns the error that stopped Scan, if any. Reaching the end of
// the input is not an error.
func (r *Reader) Err() error {
	return r.err
}

func (r *Reader) newSyntaxError(msg string) *SyntaxError {
	return &SyntaxError{r.fileName, r.line, msg}
}

func (r *Reader) parseRow(row []string) (Sample, error) {
	if len(row) != numFields {
		return Sample{}, r.newSyntaxError(fmt.Sprintf("got %d fields, want %d", len(row), numFields))
	}

	var s Sample
	s.Descr = row[0]

	nums := make([]int, numFields-1)
	for i, f := range row[1:] {
		n, err := parseIntField(f)
		if err != nil {
			return Sample{}, r.newSyntaxError(fmt.Sprintf("field %d: %v", i+1, err))
		}
		nums[i] = n
	}
	s.ThreadQty = nums[0]
	s.KeySize = nums[1]
	s.ValueSize = nums[2]
	s.ReadPercent = nums[3]
	s.OperationQty = nums[4]
	s.DurationUs = nums[5]
	s.ForcedWriteSync = nums[6] != 0
	s.CustomValue = nums[7]
	return s, nil
}

// parseIntField coerces a numeric CSV field to an integer. The
// benchmark tool may format counts as floats, so the field is parsed
// as a float and truncated.
func parseIntField(s string) (int, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("malformed number %q", s)
	}
	return int(f), nil
}
