// Copyright 2024 The Minicask Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchrate

import "github.com/aclements/go-moremath/stats"

// A Summary describes the distribution of a set of plotted rates.
type Summary struct {
	N    int
	Min  float64
	Mean float64
	Max  float64
}

// Summarize returns descriptive statistics over rates. An empty set
// yields the zero Summary.
func Summarize(rates []float64) Summary {
	if len(rates) == 0 {
		return Summary{}
	}
	s := stats.Sample{Xs: rates}
	min, max := s.Bounds()
	return Summary{
		N:    len(rates),
		Min:  min,
		Mean: s.Mean(),
		Max:  max,
	}
}
