// Copyright 2024 The Minicask Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchcsv

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// A Files reads samples from a sequence of result files.
//
// Files that cannot be opened or that are completely empty are skipped
// and contribute zero samples. A malformed row anywhere stops the scan
// with an error; no partially parsed file is kept.
type Files struct {
	// Paths is the list of file names to read, in order.
	Paths []string

	// Progress, if non-nil, receives one line per file opened.
	Progress io.Writer

	paths  []string // remaining inputs, nil before first Scan
	reader *Reader
	file   *os.File
	err    error
}

// Scan advances to the next sample across the file sequence and
// reports whether one was read.
func (f *Files) Scan() bool {
	if f.err != nil {
		return false
	}
	if f.paths == nil {
		f.paths = append([]string{}, f.Paths...)
	}

	for {
		if f.reader == nil {
			if len(f.paths) == 0 {
				return false
			}
			path := f.paths[0]
			f.paths = f.paths[1:]

			file, err := os.Open(path)
			if err != nil {
				// Unreadable input is a gap, not a failure.
				continue
			}
			if f.Progress != nil {
				fmt.Fprintf(f.Progress, "  %s\n", path)
			}
			f.file = file
			f.reader = NewReader(file, path)
		}

		if f.reader.Scan() {
			return true
		}
		err := f.reader.Err()
		f.file.Close()
		f.file, f.reader = nil, nil
		if err != nil {
			f.err = err
			return false
		}
	}
}

// Sample returns the sample that was just read by Scan.
func (f *Files) Sample() Sample {
	return f.reader.Sample()
}

// Err returns the error that stopped Scan, if any.
func (f *Files) Err() error {
	return f.err
}

// Collect parses every file matching pattern into a single Dataset.
// Matches are read in sorted order so that a given set of input files
// always produces the same Dataset. If progress is non-nil it receives
// one line per file read.
func Collect(pattern string, progress io.Writer) (Dataset, error) {
	paths, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("bad result file pattern %q: %w", pattern, err)
	}

	files := &Files{Paths: paths, Progress: progress}
	var ds Dataset
	for files.Scan() {
		ds = append(ds, files.Sample())
	}
	if err := files.Err(); err != nil {
		return nil, err
	}
	return ds, nil
}
