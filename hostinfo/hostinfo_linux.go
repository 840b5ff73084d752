// Copyright 2024 The Minicask Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build linux

package hostinfo

import (
	"os/exec"

	"golang.org/x/sys/unix"
)

func osRelease() (system, release string) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return "Linux", "unknown"
	}
	return utsString(uts.Sysname[:]), utsString(uts.Release[:])
}

// utsString converts a NUL-terminated utsname field to a string.
func utsString(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}

// probeCPU scrapes lscpu for CPU model, logical CPU count, and cache
// sizes. A missing utility or unexpected output shape reports absence,
// never an error.
func probeCPU() (CPUInfo, bool) {
	out, err := exec.Command("lscpu").Output()
	if err != nil {
		return CPUInfo{}, false
	}
	return parseLSCPU(string(out))
}
