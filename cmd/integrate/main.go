// Command integrate computes one indefinite or definite integral and prints
// the result.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"integral-calculator/internal/calculator"
	"integral-calculator/internal/typeset"
	"integral-calculator/internal/version"
)

func main() {
	variable := flag.String("var", "x", "Integration variable")
	lower := flag.String("lower", "", "Lower bound of a definite integral")
	upper := flag.String("upper", "", "Upper bound of a definite integral")
	latex := flag.Bool("latex", false, "Also print the LaTeX form")
	pngPath := flag.String("png", "", "Write the typeset result to this PNG file")
	timeout := flag.Duration("timeout", calculator.DefaultOptions().Timeout, "Maximum time for the calculation")
	showVersion := flag.Bool("version", false, "Print the version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String("integrate"))
		return
	}
	if flag.NArg() == 0 {
		fmt.Println(`Usage: integrate [-var x] [-lower a -upper b] [-latex] [-png out.png] "<function>"`)
		os.Exit(1)
	}
	input := strings.Join(flag.Args(), " ")

	opts := calculator.DefaultOptions()
	opts.Variable = *variable
	opts.Timeout = *timeout
	calc := calculator.New(opts)
	ctx := context.Background()

	var (
		scene *typeset.Scene
		tex   string
	)
	fm, err := typeset.NewFontMeasurer()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load fonts: %v\n", err)
		os.Exit(1)
	}
	defer fm.Close()

	if *lower != "" || *upper != "" {
		res, err := calc.Definite(ctx, input, *lower, *upper)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if !res.HasValue() {
			printEdgeCase(res.Result)
			os.Exit(1)
		}
		fmt.Println(res.Summary())
		if res.Numeric {
			fmt.Println("Method: numeric quadrature")
		} else {
			fmt.Printf("Antiderivative: %s\n", res.Antiderivative)
		}
		bounds := typeset.Bounds{Lower: res.LowerText, Upper: res.UpperText}
		scene = typeset.DefiniteResult(res.Integrand, res.Variable, bounds, res.Formatted(), fm)
		tex = res.LaTeX()
	} else {
		res, err := calc.Integrate(ctx, input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if res.EdgeCase != calculator.NoEdgeCase {
			printEdgeCase(res)
		} else {
			fmt.Printf("∫ %s d%s = %s\n", res.Input, res.Variable, res)
		}
		fmt.Printf("Method: %s, %s\n", res.Method, res.Verification)
		scene = typeset.IndefiniteResult(res.Integrand, res.Antiderivative, res.Variable, fm)
		tex = res.LaTeX()
	}

	if *latex {
		fmt.Printf("TeX: %s\n", tex)
	}
	if *pngPath != "" {
		if err := writePNG(*pngPath, scene, fm); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write %s: %v\n", *pngPath, err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s (%.0fx%.0f)\n", *pngPath, scene.Size.Width, scene.Size.Height)
	}
}

func printEdgeCase(res *calculator.Result) {
	result, explanation := calculator.EdgeCaseMessage(res)
	fmt.Printf("%s: %s\n", calculator.EdgeCaseTitle, res.EdgeCase)
	fmt.Printf("  Function: ∫ %s d%s\n", res.Input, res.Variable)
	fmt.Printf("  %s\n  %s\n", result, explanation)
}

func writePNG(path string, s *typeset.Scene, fm *typeset.FontMeasurer) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := typeset.WritePNG(f, s, fm); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
