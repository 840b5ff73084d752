// Copyright 2024 The Minicask Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchcsv reads the CSV result files emitted by the Minicask
// benchmark executable.
//
// Each result file consists of one header row followed by data rows of
// exactly nine comma-separated fields. The numeric fields may be written
// as floats by the benchmark tool; they are parsed as floats and
// truncated to integers.
//
// This package is designed to be used with the higher-level packages
// benchrate and benchsweep.
package benchcsv

// A Sample is a single parsed benchmark result row describing one
// measured configuration.
type Sample struct {
	// Descr is the variant label, typically "Monothread" or
	// "Multithread".
	Descr string

	// ThreadQty is the number of worker threads. OperationQty is a
	// per-thread count when ThreadQty > 1.
	ThreadQty int

	KeySize     int
	ValueSize   int
	ReadPercent int

	// OperationQty is the number of operations executed by one thread.
	OperationQty int

	// DurationUs is the measured duration in microseconds. It may be
	// zero or negative in degenerate runs; rate computations clamp it
	// to a floor of 1.
	DurationUs int

	ForcedWriteSync bool
	CustomValue     int
}

// A Dataset is an ordered collection of samples, concatenated across
// all result files in the order they were read. It is rebuilt on every
// run and never persisted.
type Dataset []Sample
