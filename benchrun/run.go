// Copyright 2024 The Minicask Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchrun invokes the Minicask benchmark executable, which
// dumps result CSV files into its working directory as a side effect.
package benchrun

import (
	"bytes"
	"fmt"
	"os/exec"
)

// Intensity selects how long and thorough the benchmark run is.
type Intensity int

const (
	Default Intensity = iota
	Long
	Longest
)

// Flag returns the benchmark CLI flag for the intensity, or "" for
// the default run.
func (i Intensity) Flag() string {
	switch i {
	case Long:
		return "-l"
	case Longest:
		return "-ll"
	}
	return ""
}

func (i Intensity) String() string {
	switch i {
	case Long:
		return "long"
	case Longest:
		return "longest"
	}
	return "default"
}

// A Runner executes the benchmark binary. The run is synchronous and
// has no timeout; an overlong run must be interrupted by the caller at
// the process level.
type Runner struct {
	// Bin is the benchmark executable.
	Bin string

	// Filter is the test-group filter passed as -tc=.
	Filter string

	// Dir is the working directory for the run; the benchmark dumps
	// its CSV files there. Empty means the current directory.
	Dir string
}

// Args returns the argument list for a run at the given intensity.
func (r *Runner) Args(intensity Intensity) []string {
	args := []string{"-tc=" + r.Filter}
	if f := intensity.Flag(); f != "" {
		args = append(args, f)
	}
	return args
}

// Run executes the benchmark and waits for it. A non-zero exit is
// returned as an error carrying the captured stderr, so the caller can
// fail fast without producing a partial report.
func (r *Runner) Run(intensity Intensity) error {
	cmd := exec.Command(r.Bin, r.Args(intensity)...)
	cmd.Dir = r.Dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %v\n%s", r.Bin, err, bytes.TrimSpace(stderr.Bytes()))
	}
	return nil
}
