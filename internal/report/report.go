// Package report runs the accuracy suites against the calculator and
// prints tallies with progress bars.
package report

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"integral-calculator/internal/calculator"
)

// Bar widths of the overall and per-category progress bars.
const (
	OverallBarWidth  = 50
	CategoryBarWidth = 30
)

// oracleTolerance is looser than the calculator's own check because the
// oracle works from the raw input text.
const oracleTolerance = 1e-6

// Reason explains why an outcome counted as correct or not.
type Reason string

const (
	ReasonVerified    Reason = "verified"
	ReasonOracle      Reason = "numeric match"
	ReasonExpected    Reason = "expected form"
	ReasonUnevaluated Reason = "unevaluated"
	ReasonMismatch    Reason = "verification failed"
	ReasonError       Reason = "error"
)

// Outcome is the result of one case.
type Outcome struct {
	Input       string
	Description string
	Got         string
	Correct     bool
	Reason      Reason
	Err         error
}

// CategoryResult tallies the outcomes of one category.
type CategoryResult struct {
	Name     string
	Outcomes []Outcome
}

func (c CategoryResult) Total() int { return len(c.Outcomes) }

func (c CategoryResult) Correct() int {
	n := 0
	for _, o := range c.Outcomes {
		if o.Correct {
			n++
		}
	}
	return n
}

func (c CategoryResult) Incorrect() int { return c.Total() - c.Correct() }

// Accuracy is the percentage of correct outcomes.
func (c CategoryResult) Accuracy() float64 { return percent(c.Correct(), c.Total()) }

// Report is the outcome of running one suite.
type Report struct {
	Suite      string
	Categories []CategoryResult
}

func (r *Report) Total() int {
	n := 0
	for _, c := range r.Categories {
		n += c.Total()
	}
	return n
}

func (r *Report) Correct() int {
	n := 0
	for _, c := range r.Categories {
		n += c.Correct()
	}
	return n
}

func (r *Report) Accuracy() float64 { return percent(r.Correct(), r.Total()) }

// Passed reports whether every case was correct.
func (r *Report) Passed() bool { return r.Correct() == r.Total() }

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}

// Level grades an accuracy percentage.
type Level int

const (
	NeedsImprovement Level = iota
	Good
	Excellent
)

// LevelOf grades pct: 95 and above is excellent, 80 and above good.
func LevelOf(pct float64) Level {
	switch {
	case pct >= 95:
		return Excellent
	case pct >= 80:
		return Good
	}
	return NeedsImprovement
}

func (l Level) String() string {
	switch l {
	case Excellent:
		return "Excellent (95-100%)"
	case Good:
		return "Good (80-94%)"
	}
	return "Needs Improvement (<80%)"
}

// Bar draws pct as a width-character bar of filled and empty blocks.
func Bar(pct float64, width int) string {
	filled := int(float64(width) * pct / 100)
	filled = max(0, min(width, filled))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// Run evaluates every case of s. It stops early only when ctx is done.
func Run(ctx context.Context, calc *calculator.Calculator, s Suite) (*Report, error) {
	r := &Report{Suite: s.Name}
	for _, cat := range s.Categories {
		cr := CategoryResult{Name: cat.Name}
		for _, c := range cat.Cases {
			if err := ctx.Err(); err != nil {
				return r, err
			}
			cr.Outcomes = append(cr.Outcomes, runCase(ctx, calc, c))
		}
		for _, c := range cat.Definite {
			if err := ctx.Err(); err != nil {
				return r, err
			}
			cr.Outcomes = append(cr.Outcomes, runDefinite(ctx, calc, c))
		}
		r.Categories = append(r.Categories, cr)
	}
	return r, nil
}

func runCase(ctx context.Context, calc *calculator.Calculator, c Case) Outcome {
	o := Outcome{Input: c.Input, Description: c.Description}
	res, err := calc.Integrate(ctx, c.Input)
	if err != nil {
		o.Err, o.Reason = err, ReasonError
		return o
	}
	o.Got = res.String()
	switch {
	case c.Unevaluated:
		o.Correct = !res.Evaluated()
		o.Reason = ReasonUnevaluated
		if o.Correct {
			return o
		}
		o.Reason = ReasonMismatch
		return o
	case !res.Evaluated():
		o.Reason = ReasonUnevaluated
		return o
	case res.Verification != calculator.Unverified:
		o.Correct, o.Reason = true, ReasonVerified
		return o
	case c.Want != "" && res.Antiderivative.String() == c.Want:
		o.Correct, o.Reason = true, ReasonExpected
		return o
	}
	oracle, err := NewOracle(c.Input, calc.Variable())
	if err == nil && oracle.Agrees(res.Antiderivative, calculator.DefaultOptions().SamplePoints, oracleTolerance) {
		o.Correct, o.Reason = true, ReasonOracle
		return o
	}
	o.Reason = ReasonMismatch
	return o
}

func runDefinite(ctx context.Context, calc *calculator.Calculator, c DefiniteCase) Outcome {
	o := Outcome{
		Input:       fmt.Sprintf("%s from %s to %s", c.Input, c.Lower, c.Upper),
		Description: c.Description,
	}
	res, err := calc.Definite(ctx, c.Input, c.Lower, c.Upper)
	if err != nil {
		o.Err, o.Reason = err, ReasonError
		return o
	}
	o.Got = res.Formatted()
	if o.Got == c.Want {
		o.Correct, o.Reason = true, ReasonExpected
		return o
	}
	o.Reason = ReasonMismatch
	return o
}

// Write prints the report. verbose adds one line per case.
func Write(w io.Writer, r *Report, verbose bool) error {
	bw := bufio.NewWriter(w)
	rule := strings.Repeat("-", 60)

	fmt.Fprintf(bw, "INTEGRAL CALCULATOR ACCURACY REPORT (%s)\n", r.Suite)
	fmt.Fprintln(bw, strings.Repeat("=", 60))
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "OVERALL STATISTICS:")
	fmt.Fprintf(bw, "   Total Tests: %d\n", r.Total())
	fmt.Fprintf(bw, "   Correct: %d\n", r.Correct())
	fmt.Fprintf(bw, "   Incorrect: %d\n", r.Total()-r.Correct())
	fmt.Fprintf(bw, "   Accuracy: %.1f%%\n\n", r.Accuracy())
	fmt.Fprintln(bw, "OVERALL ACCURACY:")
	fmt.Fprintf(bw, "   [%s] %.1f%%\n\n", Bar(r.Accuracy(), OverallBarWidth), r.Accuracy())

	fmt.Fprintln(bw, "CATEGORY BREAKDOWN:")
	fmt.Fprintln(bw, rule)
	for _, c := range r.Categories {
		fmt.Fprintf(bw, "%-6s %-25s [%s] %5.1f%% (%d/%d)\n",
			status(c.Accuracy()), c.Name, Bar(c.Accuracy(), CategoryBarWidth), c.Accuracy(), c.Correct(), c.Total())
		if !verbose {
			continue
		}
		for i, o := range c.Outcomes {
			fmt.Fprintf(bw, "   %2d. %s\n", i+1, outcomeLine(o))
		}
	}

	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "DETAILED ANALYSIS:")
	fmt.Fprintln(bw, rule)
	if r.Passed() {
		fmt.Fprintln(bw, "All categories performing excellently!")
	} else {
		fmt.Fprintln(bw, "Areas needing attention:")
		for _, c := range r.Categories {
			if c.Incorrect() > 0 {
				fmt.Fprintf(bw, "   • %s: %d incorrect out of %d\n", c.Name, c.Incorrect(), c.Total())
			}
		}
	}

	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "ACCURACY LEVELS:")
	fmt.Fprintln(bw, rule)
	for _, lvl := range []Level{Excellent, Good, NeedsImprovement} {
		var names []string
		for _, c := range r.Categories {
			if LevelOf(c.Accuracy()) == lvl {
				names = append(names, fmt.Sprintf("%s (%.1f%%)", c.Name, c.Accuracy()))
			}
		}
		fmt.Fprintf(bw, "%s: %d categories\n", lvl, len(names))
		for _, n := range names {
			fmt.Fprintf(bw, "   • %s\n", n)
		}
	}

	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "CONCLUSION:")
	fmt.Fprintln(bw, rule)
	fmt.Fprintln(bw, Conclusion(r.Accuracy()))
	fmt.Fprintf(bw, "\nOverall Accuracy: %.1f%%\n", r.Accuracy())
	return bw.Flush()
}

// Conclusion is the closing verdict for an overall accuracy.
func Conclusion(pct float64) string {
	switch {
	case pct >= 95:
		return "OUTSTANDING PERFORMANCE! The calculator handles complex integrals excellently."
	case pct >= 90:
		return "EXCELLENT PERFORMANCE! Very high accuracy across all function types."
	case pct >= 80:
		return "GOOD PERFORMANCE! Solid accuracy with room for minor improvements."
	}
	return "PERFORMANCE NEEDS IMPROVEMENT. Consider reviewing failed test cases."
}

func status(pct float64) string {
	switch {
	case pct == 100:
		return "[OK]"
	case pct >= 80:
		return "[WARN]"
	}
	return "[FAIL]"
}

func outcomeLine(o Outcome) string {
	mark := "[OK]"
	if !o.Correct {
		mark = "[WARN]"
	}
	if o.Err != nil {
		return fmt.Sprintf("[ERROR] %s: int %s dx -> ERROR: %v", o.Description, o.Input, o.Err)
	}
	return fmt.Sprintf("%s %s: int %s dx -> %s (%s)", mark, o.Description, o.Input, o.Got, o.Reason)
}
