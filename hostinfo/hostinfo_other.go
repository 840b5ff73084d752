// Copyright 2024 The Minicask Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !linux

package hostinfo

import (
	"os/exec"
	"runtime"
	"strings"
)

func osRelease() (system, release string) {
	switch runtime.GOOS {
	case "darwin":
		system = "Darwin"
	case "windows":
		system = "Windows"
	default:
		system = strings.ToUpper(runtime.GOOS[:1]) + runtime.GOOS[1:]
	}

	release = "unknown"
	if out, err := exec.Command("uname", "-r").Output(); err == nil {
		if r := strings.TrimSpace(string(out)); r != "" {
			release = r
		}
	}
	return system, release
}

// probeCPU reports absence: lscpu scraping is Linux-only.
func probeCPU() (CPUInfo, bool) {
	return CPUInfo{}, false
}
