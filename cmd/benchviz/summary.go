// Copyright 2024 The Minicask Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/minicask/benchviz/benchrate"
	"github.com/minicask/benchviz/benchsweep"
)

// printSummary writes a per-panel table of plotted-rate statistics.
func printSummary(w io.Writer, charts []benchsweep.Chart) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "chart\tpanel\tn\tmin\tmean\tmax")
	for _, c := range charts {
		for _, p := range c.Panels {
			var rates []float64
			for _, s := range p.Series {
				for _, pt := range s.Points {
					rates = append(rates, pt.Y)
				}
			}
			sum := benchrate.Summarize(rates)
			fmt.Fprintf(tw, "%s\t%s\t%d\t%.3f\t%.3f\t%.3f %s\n",
				c.Name, p.Title, sum.N, sum.Min, sum.Mean, sum.Max, p.YLabel)
		}
	}
	tw.Flush()
}
