// Command accuracy runs the accuracy suites and prints a report with
// progress bars. It exits 1 when any case is incorrect.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"integral-calculator/internal/calculator"
	"integral-calculator/internal/report"
)

func main() {
	suite := flag.String("suite", "all", "Suite to run: all, "+strings.Join(report.Names(), ", "))
	verbose := flag.Bool("v", false, "Print one line per case")
	flag.Parse()

	names := report.Names()
	if *suite != "all" {
		names = []string{*suite}
	}

	calc := calculator.New(calculator.DefaultOptions())
	passed := true
	for i, name := range names {
		s, ok := report.Lookup(name)
		if !ok {
			fmt.Fprintf(os.Stderr, "Unknown suite %q (have: %s)\n", name, strings.Join(report.Names(), ", "))
			os.Exit(1)
		}
		if i > 0 {
			fmt.Println()
		}
		r, err := report.Run(context.Background(), calc, s)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Suite %s: %v\n", name, err)
			os.Exit(1)
		}
		if err := report.Write(os.Stdout, r, *verbose); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write report: %v\n", err)
			os.Exit(1)
		}
		passed = passed && r.Passed()
	}
	if !passed {
		os.Exit(1)
	}
}
