// Copyright 2024 The Minicask Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Benchviz runs the Minicask benchmark suite and turns its CSV result
// dumps into throughput comparison charts.
//
// Usage:
//
//	benchviz [-l | -ll] [-n] [-C dir] [-bin exe] [-tc pattern] [-summary]
//
// By default benchviz runs the benchmark executable filtered to the
// thread-performance group, collects every benchmark*.csv file from
// the working directory, and writes three PNG charts next to them: a
// value-size sweep, a key-size sweep, and a thread-count sweep, each
// annotated with a description of the machine.
//
// With -n the benchmark run is skipped and charts are rebuilt from the
// CSV files already on disk. -l and -ll select longer runs with more
// precise data; they cannot be combined.
//
// The working directory defaults to <repository root>/build, resolved
// with git; -C overrides it.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/minicask/benchviz/benchchart"
	"github.com/minicask/benchviz/benchcsv"
	"github.com/minicask/benchviz/benchrun"
	"github.com/minicask/benchviz/benchsweep"
	"github.com/minicask/benchviz/hostinfo"
)

// resultGlob matches the CSV files the benchmark executable dumps.
const resultGlob = "benchmark*.csv"

const usageText = `Syntax: benchviz [options]
  -h        this help
  -l        longer run with more precise data
  -ll       longest run with even more precise data
  -n        no run, using data from currently dumped CSV files
  -C dir    work in dir instead of <repository root>/build
  -bin exe  benchmark executable to run
  -tc pat   benchmark test-group filter
  -summary  print a per-panel rate summary after rendering
`

var exit = os.Exit // replaced during testing

// options is the parsed, immutable CLI configuration.
type options struct {
	help      bool
	intensity benchrun.Intensity
	skipRun   bool
	dir       string
	bin       string
	filter    string
	summary   bool
}

func parseOptions(args []string) (*options, error) {
	fs := flag.NewFlagSet("benchviz", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	long := fs.Bool("l", false, "longer run")
	longest := fs.Bool("ll", false, "longest run")
	skipRun := fs.Bool("n", false, "no run, reuse CSV files")
	dir := fs.String("C", "", "working directory")
	bin := fs.String("bin", "./bin/minicask_test", "benchmark executable")
	filter := fs.String("tc", "*thread performance", "test-group filter")
	summary := fs.Bool("summary", false, "print rate summary")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return &options{help: true}, nil
		}
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	if *long && *longest {
		return nil, errors.New("-l and -ll cannot be combined")
	}

	opt := &options{
		skipRun: *skipRun,
		dir:     *dir,
		bin:     *bin,
		filter:  *filter,
		summary: *summary,
	}
	switch {
	case *long:
		opt.intensity = benchrun.Long
	case *longest:
		opt.intensity = benchrun.Longest
	}
	return opt, nil
}

func main() {
	log.SetPrefix("benchviz: ")
	log.SetFlags(0)

	opt, err := parseOptions(os.Args[1:])
	if err != nil {
		fmt.Println(err)
		fmt.Print(usageText)
		exit(1)
		return
	}
	if opt.help {
		fmt.Print(usageText)
		exit(1)
		return
	}

	if err := run(opt, os.Stdout); err != nil {
		fmt.Println(err)
		exit(1)
	}
}

// run executes the whole pipeline: the optional benchmark run, result
// collection, and chart rendering. Any error aborts before the first
// chart of the remaining families is written, so a malformed result
// file never leaves a partially refreshed set of images.
func run(opt *options, w io.Writer) error {
	dir := opt.dir
	if dir == "" {
		dir = buildDir(w)
	}

	if !opt.skipRun {
		fmt.Fprintln(w, "Running benchmarks")
		r := &benchrun.Runner{Bin: opt.bin, Filter: opt.filter, Dir: dir}
		if err := r.Run(opt.intensity); err != nil {
			return fmt.Errorf("*** Error while executing the benchmarks:\n%s", err)
		}
	}

	fmt.Fprintln(w, "Collecting result files")
	ds, err := benchcsv.Collect(filepath.Join(dir, resultGlob), w)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Collecting info on the machine")
	setup := hostinfo.Description()
	fmt.Fprintf(w, "  %s\n", setup)

	fmt.Fprintln(w, "Creating graphs")
	charts := benchsweep.Build(ds)
	for _, c := range charts {
		path, err := benchchart.WritePNG(c, dir, setup)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %s\n", path)
	}

	if opt.summary {
		printSummary(w, charts)
	}
	return nil
}

// buildDir resolves the directory the benchmark dumps into: the
// build directory under the git repository root, falling back to the
// current directory.
func buildDir(w io.Writer) string {
	out, err := exec.Command("git", "rev-parse", "--show-toplevel").Output()
	if err != nil {
		return "."
	}
	dir := filepath.Join(strings.TrimSpace(string(out)), "build")
	if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
		return "."
	}
	fmt.Fprintf(w, "Entering %s\n", dir)
	return dir
}
