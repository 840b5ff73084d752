// Copyright 2024 The Minicask Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hostinfo

import (
	"strings"
	"testing"
)

const lscpuOutput = `Architecture:            x86_64
  CPU op-mode(s):        32-bit, 64-bit
CPU(s):                  16
  On-line CPU(s) list:   0-15
Model name:              AMD Ryzen 7 5800X 8-Core Processor
Caches (sum of all):
  L1d:                   256 KiB (8 instances)
  L1i:                   256 KiB (8 instances)
  L2:                    4 MiB (8 instances)
  L3:                    32 MiB (1 instance)
NUMA:
  NUMA node(s):          1
`

func TestParseLSCPU(t *testing.T) {
	cpu, ok := parseLSCPU(lscpuOutput)
	if !ok {
		t.Fatal("parseLSCPU failed on well-formed output")
	}
	want := CPUInfo{
		Model: "AMD Ryzen 7 5800X 8-Core Processor",
		Count: "16",
		L1d:   "256 KiB",
		L2:    "4 MiB",
		L3:    "32 MiB",
	}
	if cpu != want {
		t.Errorf("got %+v, want %+v", cpu, want)
	}
}

func TestParseLSCPUUnexpectedShape(t *testing.T) {
	for _, test := range []struct {
		name, out string
	}{
		{"empty", ""},
		{"noCaches", "CPU(s): 16\nModel name: some cpu\n"},
		{"garbage", "error: cannot gather CPU information\n"},
	} {
		t.Run(test.name, func(t *testing.T) {
			if _, ok := parseLSCPU(test.out); ok {
				t.Error("parseLSCPU succeeded on unexpected output")
			}
		})
	}
}

func TestDescribe(t *testing.T) {
	cpu := CPUInfo{Model: "some cpu", Count: "8", L1d: "128 KiB", L2: "2 MiB", L3: "16 MiB"}
	got := describe("Linux", "6.1.0-x", cpu, true)
	want := "Linux 6.1.0-x    CPU(8): some cpu     L1 / L2 / L3 = 128 KiB / 2 MiB / 16 MiB"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDescribeDegraded(t *testing.T) {
	// A failed probe degrades to exactly "<system> <release>".
	if got, want := describe("Linux", "6.1.0-x", CPUInfo{}, false), "Linux 6.1.0-x"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDescription(t *testing.T) {
	// Whatever the host looks like, the description starts with
	// "<system> <release>".
	desc := Description()
	fields := strings.Fields(desc)
	if len(fields) < 2 {
		t.Errorf("description %q is missing the OS segment", desc)
	}
}
