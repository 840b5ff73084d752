// Copyright 2024 The Minicask Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchrate computes throughput metrics from benchmark
// samples.
//
// Durations are measured in microseconds, so an operation rate of
// operations per microsecond reads directly as Mop/s and a memory rate
// of bytes per microsecond reads directly as MB/s.
package benchrate

// Headroom is the factor applied to the observed maximum rate to set a
// chart's axis ceiling, leaving every series fully visible.
const Headroom = 1.02

// divisor clamps a measured duration to a floor of 1 µs so that rates
// are never divided by zero or a negative value.
func divisor(durationUs int) float64 {
	if durationUs < 1 {
		return 1
	}
	return float64(durationUs)
}

// OpRate returns the single-thread operation rate in Mop/s.
func OpRate(operationQty, durationUs int) float64 {
	return float64(operationQty) / divisor(durationUs)
}

// AggRate returns the aggregate operation rate in Mop/s across all
// threads. The benchmark reports a per-thread operation count, so the
// aggregate multiplies by the thread count.
func AggRate(operationQty, threadQty, durationUs int) float64 {
	return float64(operationQty) * float64(threadQty) / divisor(durationUs)
}

// MemRate returns the memory throughput in MB/s.
func MemRate(operationQty, valueSize, durationUs int) float64 {
	return float64(operationQty) * float64(valueSize) / divisor(durationUs)
}

// AxisMax returns the axis upper bound for a set of plotted rates: the
// maximum rate times Headroom. The maximum is floored at 1 so that an
// empty or near-zero set still produces a usable axis.
func AxisMax(rates []float64) float64 {
	max := 1.0
	for _, r := range rates {
		if r > max {
			max = r
		}
	}
	return max * Headroom
}
