// Copyright 2024 The Minicask Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hostinfo describes the machine a benchmark ran on.
//
// The description always contains the OS family and release. CPU
// details come from a best-effort topology probe; when the probe
// fails, the description silently degrades to the OS-only form.
package hostinfo

import (
	"fmt"
	"strings"
)

// CPUInfo is the result of a successful CPU topology probe.
type CPUInfo struct {
	Model string // e.g. "AMD Ryzen 9 5950X 16-Core Processor"
	Count string // logical CPU count
	L1d   string // L1 data cache size
	L2    string
	L3    string
}

// Description returns the one-line machine description used to
// annotate charts: "<system> <release>", with a CPU segment appended
// when the topology probe succeeds.
func Description() string {
	system, release := osRelease()
	cpu, ok := probeCPU()
	return describe(system, release, cpu, ok)
}

func describe(system, release string, cpu CPUInfo, ok bool) string {
	desc := system + " " + release
	if !ok {
		return desc
	}
	return fmt.Sprintf("%s    CPU(%s): %s     L1 / L2 / L3 = %s / %s / %s",
		desc, cpu.Count, cpu.Model, cpu.L1d, cpu.L2, cpu.L3)
}

// parseLSCPU extracts CPU details from lscpu output by label matching.
// All five labels must be present; anything else counts as an
// unexpected output shape and fails the probe.
func parseLSCPU(out string) (CPUInfo, bool) {
	lines := strings.Split(out, "\n")

	// find returns the value of the first line containing label,
	// stripped of any trailing "(N instances)" annotation.
	find := func(label string) (string, bool) {
		for _, line := range lines {
			if !strings.Contains(line, label) {
				continue
			}
			_, value, found := strings.Cut(line, ":")
			if !found {
				return "", false
			}
			value, _, _ = strings.Cut(value, "(")
			return strings.TrimSpace(value), true
		}
		return "", false
	}

	var cpu CPUInfo
	var ok bool
	if cpu.Model, ok = find("Model name"); !ok {
		return CPUInfo{}, false
	}
	if cpu.Count, ok = find("CPU(s)"); !ok {
		return CPUInfo{}, false
	}
	if cpu.L1d, ok = find("L1d"); !ok {
		return CPUInfo{}, false
	}
	if cpu.L2, ok = find("L2"); !ok {
		return CPUInfo{}, false
	}
	if cpu.L3, ok = find("L3"); !ok {
		return CPUInfo{}, false
	}
	return cpu, true
}
