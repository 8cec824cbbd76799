// Command chasebench runs the cache-boundary detector from the command
// line: flag parsing, help text, and output formatting live here; none of
// it touches the measurement core in package chasebench.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/sourcegraph/conc/pool"

	"github.com/cachelab/chasebench"
)

func main() {
	var (
		minBytes   = flag.Uint64("min-bytes", chasebench.MinBytesDefault, "smallest working set to measure, in bytes")
		maxBytes   = flag.Uint64("max-bytes", chasebench.MaxBytesDefault, "largest working set to measure, in bytes")
		nodeStride = flag.Uint64("node-stride", chasebench.NodeStrideDefault, "byte distance between chase nodes")
		targetMS   = flag.Uint64("target-ms", chasebench.TargetMSDefault, "wall-clock budget per timed run, in milliseconds")
		repeats    = flag.Int("repeats", chasebench.RepeatsDefault, "number of timed runs per size; the minimum ns/access is kept")
		warmup     = flag.Int("warmup-iters", chasebench.WarmupItersDefault, "untimed warmup chases before calibration")
		pattern    = flag.String("pattern", "random", "visitation pattern: random, sequential, reverse, stride, interleave, gray, bitrev")
		patternArg = flag.Uint64("pattern-arg", 1, "pattern-specific argument (stride length for \"stride\")")
		printTable = flag.Bool("print-table", true, "print the size/latency table")
		seed       = flag.Uint64("seed", 0, "PRNG seed; 0 derives one from the clock, stack address and pid")
		jsonOut    = flag.Bool("json", false, "print the report as JSON instead of the textual table/summary")
		sweep      = flag.String("sweep", "", "comma-separated list of patterns to run concurrently, one Report per pattern")
		verbose    = flag.Bool("verbose", false, "log the raw-sample debug trail after the run")
	)
	flag.Parse()

	fmt.Fprintf(os.Stderr, "chasebench: %s\n", cpuBanner())

	base := chasebench.Config{
		MinBytes:   *minBytes,
		MaxBytes:   *maxBytes,
		NodeStride: *nodeStride,
		TargetMS:   *targetMS,
		Repeats:    *repeats,
		WarmupIter: *warmup,
		Pattern:    chasebench.ParsePattern(*pattern),
		PatternArg: *patternArg,
		PrintTable: *printTable && !*jsonOut,
		Verbose:    *verbose,
		Seed:       *seed,
	}

	if *sweep != "" {
		runSweep(base, *sweep, *jsonOut)
		return
	}

	report, err := chasebench.Run(base)
	if err != nil {
		handleFatal(err)
	}

	emit(report, *jsonOut)
}

func runSweep(base chasebench.Config, sweepList string, jsonOut bool) {
	names := strings.Split(sweepList, ",")
	p := pool.NewWithResults[*chasebench.Report]().WithMaxGoroutines(len(names))
	for _, name := range names {
		name := strings.TrimSpace(name)
		cfg := base
		cfg.Pattern = chasebench.ParsePattern(name)
		p.Go(func() *chasebench.Report {
			r, err := chasebench.Run(cfg)
			if err != nil {
				log.Printf("sweep: pattern %q failed: %v", name, err)
				return nil
			}
			return r
		})
	}

	for _, report := range p.Wait() {
		if report == nil {
			continue
		}
		emit(report, jsonOut)
	}
}

func emit(report *chasebench.Report, jsonOut bool) {
	if jsonOut {
		b, err := json.Marshal(report)
		if err != nil {
			log.Fatalf("chasebench: marshal report: %v", err)
		}
		fmt.Println(string(b))
		return
	}
	fmt.Print(report.Summary())
}

func handleFatal(err error) {
	if chasebench.IsConfigError(err) {
		fmt.Fprintf(os.Stderr, "chasebench: invalid configuration: %v\n", err)
	} else {
		fmt.Fprintf(os.Stderr, "chasebench: %v\n", err)
	}
	os.Exit(1)
}
