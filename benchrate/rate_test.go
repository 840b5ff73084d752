// Copyright 2024 The Minicask Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchrate

import (
	"math"
	"testing"
)

func TestOpRate(t *testing.T) {
	// 1M operations in 500ms is 2 Mop/s.
	if got := OpRate(1000000, 500000); got != 2.0 {
		t.Errorf("OpRate(1000000, 500000) = %v, want 2", got)
	}
}

func TestAggRate(t *testing.T) {
	// 250k per-thread operations on 4 threads in 400ms is 2.5 Mop/s.
	if got := AggRate(250000, 4, 400000); got != 2.5 {
		t.Errorf("AggRate(250000, 4, 400000) = %v, want 2.5", got)
	}
}

func TestMemRate(t *testing.T) {
	// 1M operations of 256-byte values in 500ms is 512 MB/s.
	if got := MemRate(1000000, 256, 500000); got != 512.0 {
		t.Errorf("MemRate(1000000, 256, 500000) = %v, want 512", got)
	}
}

func TestDurationFloor(t *testing.T) {
	// Degenerate durations are clamped to 1 µs: no division by zero,
	// no negative rate.
	for _, durationUs := range []int{1, 0, -5} {
		if got, want := OpRate(42, durationUs), 42.0; got != want {
			t.Errorf("OpRate(42, %d) = %v, want %v", durationUs, got, want)
		}
		if got, want := AggRate(42, 2, durationUs), 84.0; got != want {
			t.Errorf("AggRate(42, 2, %d) = %v, want %v", durationUs, got, want)
		}
		if got, want := MemRate(42, 8, durationUs), 336.0; got != want {
			t.Errorf("MemRate(42, 8, %d) = %v, want %v", durationUs, got, want)
		}
	}
}

func TestAxisMax(t *testing.T) {
	for _, test := range []struct {
		name  string
		rates []float64
		want  float64
	}{
		{"typical", []float64{2.0, 5.0, 3.5}, 5.0 * Headroom},
		{"empty", nil, Headroom},
		{"belowFloor", []float64{0.2, 0.9}, Headroom},
	} {
		t.Run(test.name, func(t *testing.T) {
			got := AxisMax(test.rates)
			if math.Abs(got-test.want) > 1e-12 {
				t.Errorf("AxisMax(%v) = %v, want %v", test.rates, got, test.want)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize([]float64{2, 4, 6})
	if s.N != 3 || s.Min != 2 || s.Max != 6 || s.Mean != 4 {
		t.Errorf("Summarize = %+v, want {N:3 Min:2 Mean:4 Max:6}", s)
	}

	if z := Summarize(nil); z != (Summary{}) {
		t.Errorf("Summarize(nil) = %+v, want zero Summary", z)
	}
}
