// ════════════════════════════════════════════════════════════════════════════════════════════════
// Barrier Benchmark Harness - Main Entry Point
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Component: CLI Front-End & Sweep Orchestration
//
// Description:
//   Parses the barrier class and output file positional operands plus the
//   optional report/archive flags, runs the full N×W sweep, and writes the
//   TSV (and, if requested, JSON and SQLite) report artifacts.
// ════════════════════════════════════════════════════════════════════════════════════════════════

package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"barrierbench/archive"
	"barrierbench/debug"
	"barrierbench/driver"
	"barrierbench/report"
	"barrierbench/topology"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [flags] <barrier-class> <output-file>\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "  barrier-class: centralized | tree-local | tree-global\n")
	flag.PrintDefaults()
}

func main() {
	jsonPath := flag.String("json", "", "also emit a JSON sibling report at this path")
	archivePath := flag.String("archive", "", "also persist raw per-trial samples to this SQLite file")
	trials := flag.Int("trials", 30, "trials per (N, workload) cell, in [2,30]")
	workloadsCSV := flag.String("workloads", "1,10,100", "comma-separated workload sweep")
	badLocality := flag.Bool("bad-locality", false, "use the bad-locality tree layout for tree-local/tree-global")

	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 2 {
		usage()
		os.Exit(2)
	}

	classArg, outPath := flag.Arg(0), flag.Arg(1)

	class, err := driver.ParseClass(classArg)
	if err != nil {
		debug.DropError("barrierbench", err)
		os.Exit(1)
	}

	workloads, err := parseWorkloads(*workloadsCSV)
	if err != nil {
		debug.DropError("barrierbench", err)
		os.Exit(1)
	}

	if *trials < 2 || *trials > 30 {
		debug.DropError("barrierbench", fmt.Errorf("-trials must be in [2,30], got %d", *trials))
		os.Exit(1)
	}

	loc := topology.Good
	if *badLocality {
		loc = topology.Bad
	}

	opts := driver.Options{
		Class:     class,
		Locality:  loc,
		Workloads: workloads,
		Trials:    *trials,
	}

	if *archivePath != "" {
		a, err := archive.Open(*archivePath)
		if err != nil {
			debug.DropError("barrierbench", err)
			os.Exit(1)
		}
		defer a.Close()
		opts.Archive = a
	}

	debug.DropMessage("barrierbench", "starting sweep")

	summary, err := driver.Run(opts)
	if err != nil {
		debug.DropError("barrierbench", err)
		os.Exit(1)
	}

	if err := report.WriteTSV(outPath, summary); err != nil {
		debug.DropError("barrierbench", err)
		os.Exit(1)
	}

	if *jsonPath != "" {
		if err := report.WriteJSON(*jsonPath, summary); err != nil {
			debug.DropError("barrierbench", err)
			os.Exit(1)
		}
	}

	debug.DropMessage("barrierbench", "report written successfully")
}

func parseWorkloads(csv string) ([]int, error) {
	parts := strings.Split(csv, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid workload %q: %w", p, err)
		}
		if v < 1 {
			return nil, fmt.Errorf("workload must be >= 1, got %d", v)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no workloads given")
	}
	return out, nil
}
