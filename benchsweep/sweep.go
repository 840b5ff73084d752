// Copyright 2024 The Minicask Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchsweep derives chart families from a benchmark dataset.
//
// A sweep is a filtered view of the dataset that varies one dimension
// (value size, key size, or thread count) while holding the others
// fixed, with one series per read/write mix. The dataset is held in a
// go-gg table so each family is expressed as declarative filter
// operations rather than ad hoc scans.
//
// The output Chart values are renderer-independent; package benchchart
// turns them into image files.
package benchsweep

import (
	"fmt"

	"github.com/aclements/go-gg/table"

	"github.com/minicask/benchviz/benchcsv"
	"github.com/minicask/benchviz/benchrate"
)

// Mixes is the fixed order of read/write mixes plotted in every
// family: 100% read, 95% read, 100% write. Series are never resorted.
var Mixes = []int{100, 95, 0}

// MixLabel returns the legend label for a read percentage.
func MixLabel(readPercent int) string {
	if readPercent == 0 {
		return "Write 100%"
	}
	return fmt.Sprintf("Read %d%%", readPercent)
}

// A Point is one plotted sample.
type Point struct {
	X, Y float64
}

// A Series is one line of a panel: the samples of a single read/write
// mix in dataset order. A series with no points is plotted as an empty
// line.
type Series struct {
	Label  string
	Points []Point
}

// A Panel is one set of axes: up to three series plus a data-driven Y
// ceiling computed from exactly the points plotted in this panel.
type Panel struct {
	Title  string
	XLabel string
	YLabel string
	YMax   float64
	Series []Series
}

// A Chart is one output image: a titled row of panels.
type Chart struct {
	// Name is the output file stem, fixed per family.
	Name     string
	Title    string
	Subtitle string
	Panels   []Panel
}

// Build derives the three chart families from ds: the value-size
// sweep, the key-size sweep, and the thread-count sweep.
func Build(ds benchcsv.Dataset) []Chart {
	tab := table.TableFromStructs([]benchcsv.Sample(ds))
	return []Chart{
		valueSweep(tab),
		keySweep(tab),
		threadSweep(tab),
	}
}

// valueSweep is the value-size sweep: monothread samples at the fixed
// 8-byte key size, with an operation-throughput panel and a
// memory-throughput panel.
func valueSweep(tab table.Grouping) Chart {
	sub := table.FilterEq(tab, "Descr", "Monothread")
	sub = table.FilterEq(sub, "KeySize", 8)
	return Chart{
		Name:     "minicask_benchmark_throughput_monothread",
		Title:    "Minicask throughput - Monothread",
		Subtitle: "1M entries - 8 bytes key - Values in cache - Zipf-1.0 access distribution",
		Panels: []Panel{
			panel(sub, "Operation throughput", "Value size", "Mop/s", xValueSize, yOpRate),
			panel(sub, "Memory throughput", "Value size", "MB/s", xValueSize, yMemRate),
		},
	}
}

// keySweep is the key-size sweep: monothread samples at the fixed
// 8-byte value size, operation throughput only.
func keySweep(tab table.Grouping) Chart {
	sub := table.FilterEq(tab, "Descr", "Monothread")
	sub = table.FilterEq(sub, "ValueSize", 8)
	return Chart{
		Name:     "minicask_benchmark_throughput_keysize",
		Title:    "Minicask throughput - Monothread",
		Subtitle: "1M entries - 8 bytes values - Values in cache - Zipf-1.0 access distribution",
		Panels: []Panel{
			panel(sub, "Varying key size", "Key size", "Mop/s", xKeySize, yOpRate),
		},
	}
}

// threadSweep is the thread-count sweep: multithread samples with the
// aggregate operation rate across all threads.
func threadSweep(tab table.Grouping) Chart {
	sub := table.FilterEq(tab, "Descr", "Multithread")
	return Chart{
		Name:     "minicask_benchmark_throughput_multithread",
		Title:    "Minicask throughput - Multithread",
		Subtitle: "1M entries - 8 bytes keys - 256 bytes values - Values in cache - Zipf-1.0 access distribution",
		Panels: []Panel{
			panel(sub, "Varying threads", "Thread qty", "Mop/s", xThreadQty, yAggRate),
		},
	}
}

func xValueSize(s benchcsv.Sample) float64 { return float64(s.ValueSize) }
func xKeySize(s benchcsv.Sample) float64   { return float64(s.KeySize) }
func xThreadQty(s benchcsv.Sample) float64 { return float64(s.ThreadQty) }

func yOpRate(s benchcsv.Sample) float64 {
	return benchrate.OpRate(s.OperationQty, s.DurationUs)
}

func yAggRate(s benchcsv.Sample) float64 {
	return benchrate.AggRate(s.OperationQty, s.ThreadQty, s.DurationUs)
}

func yMemRate(s benchcsv.Sample) float64 {
	return benchrate.MemRate(s.OperationQty, s.ValueSize, s.DurationUs)
}

// panel extracts one series per mix from the filtered subset sub and
// computes the Y ceiling over exactly the plotted points.
func panel(sub table.Grouping, title, xLabel, yLabel string, x, y func(benchcsv.Sample) float64) Panel {
	p := Panel{Title: title, XLabel: xLabel, YLabel: yLabel}
	var rates []float64
	for _, mix := range Mixes {
		var pts []Point
		for _, s := range samples(table.Flatten(table.FilterEq(sub, "ReadPercent", mix))) {
			pt := Point{X: x(s), Y: y(s)}
			pts = append(pts, pt)
			rates = append(rates, pt.Y)
		}
		p.Series = append(p.Series, Series{Label: MixLabel(mix), Points: pts})
	}
	p.YMax = benchrate.AxisMax(rates)
	return p
}

// samples converts a filtered table back to sample values, preserving
// row order.
func samples(t *table.Table) []benchcsv.Sample {
	if t == nil || t.Len() == 0 {
		return nil
	}
	descr := t.MustColumn("Descr").([]string)
	threads := t.MustColumn("ThreadQty").([]int)
	keys := t.MustColumn("KeySize").([]int)
	values := t.MustColumn("ValueSize").([]int)
	reads := t.MustColumn("ReadPercent").([]int)
	ops := t.MustColumn("OperationQty").([]int)
	durs := t.MustColumn("DurationUs").([]int)
	syncs := t.MustColumn("ForcedWriteSync").([]bool)
	customs := t.MustColumn("CustomValue").([]int)

	out := make([]benchcsv.Sample, t.Len())
	for i := range out {
		out[i] = benchcsv.Sample{
			Descr:           descr[i],
			ThreadQty:       threads[i],
			KeySize:         keys[i],
			ValueSize:       values[i],
			ReadPercent:     reads[i],
			OperationQty:    ops[i],
			DurationUs:      durs[i],
			ForcedWriteSync: syncs[i],
			CustomValue:     customs[i],
		}
	}
	return out
}
