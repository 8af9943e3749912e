package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math"
	"math/big"
	"os"
	"path/filepath"
	"strconv"
)

// GoldenData is one oracle value of a truncated series.
type GoldenData struct {
	Function string  `json:"function"`
	X        float64 `json:"x"`
	Order    int     `json:"order"`
	Value    string  `json:"value"`
}

// oraclePrec is the working precision of the math/big oracle, far above the
// 53 bits of the values under test.
const oraclePrec = 512

func main() {
	outputDir := flag.String("out", "internal/suite/testdata", "Output directory for the golden file")
	flag.Parse()

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	filename := filepath.Join(*outputDir, "series_golden.json")
	file, err := os.Create(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	rad := func(deg int) float64 { return float64(deg) * (math.Pi / 180) }

	type point struct {
		fn    string
		x     float64
		order int
	}
	// Benchmark points, table edges and a few arguments off the benchmark
	// path. Factorials stop at 170; beyond that float64 overflows.
	targets := []point{
		{"pow", 2, 0}, {"pow", 2, 10}, {"pow", 2, 100}, {"pow", 2, 499},
		{"pow", 1.5, 30}, {"pow", -3, 7}, {"pow", 0.5, 60},
		{"factorial", 0, 0}, {"factorial", 0, 1}, {"factorial", 0, 10}, {"factorial", 0, 18},
		{"factorial", 0, 20}, {"factorial", 0, 50}, {"factorial", 0, 100}, {"factorial", 0, 170},
		{"exp", 42, 100}, {"exp", 1, 100}, {"exp", -5, 100}, {"exp", 0.5, 10},
		{"exp", 10, 50}, {"exp", -20, 100},
		{"cos", rad(0), 100}, {"cos", rad(45), 100}, {"cos", rad(90), 100}, {"cos", rad(180), 100},
		{"cos", 1, 10}, {"cos", 2, 20},
	}

	var data []GoldenData

	fmt.Println("Generating golden data...")

	for _, p := range targets {
		var v *big.Float
		switch p.fn {
		case "pow":
			v = powBig(p.x, p.order)
		case "factorial":
			v = factorialBig(p.order)
		case "exp":
			v = expBig(p.x, p.order)
		case "cos":
			v = cosBig(p.x, p.order)
		}
		f, _ := v.Float64()
		data = append(data, GoldenData{
			Function: p.fn,
			X:        p.x,
			Order:    p.order,
			Value:    strconv.FormatFloat(f, 'g', -1, 64),
		})
		fmt.Printf("Generated %s(%v, %d)\n", p.fn, p.x, p.order)
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully generated golden file at %s\n", filename)
}

func newFloat() *big.Float { return new(big.Float).SetPrec(oraclePrec) }

// powBig is x^n in extended precision. This serves as the oracle for every
// series term.
func powBig(x float64, n int) *big.Float {
	bx := newFloat().SetFloat64(x)
	r := newFloat().SetInt64(1)
	for i := 0; i < n; i++ {
		r.Mul(r, bx)
	}
	return r
}

func factorialBig(n int) *big.Float {
	f := new(big.Int).MulRange(1, int64(n))
	if n == 0 {
		f.SetInt64(1)
	}
	return newFloat().SetInt(f)
}

func expBig(x float64, n int) *big.Float {
	if x < 0 {
		s := expBig(-x, n)
		return newFloat().Quo(newFloat().SetInt64(1), s)
	}
	sum := newFloat()
	for k := 0; k <= n; k++ {
		sum.Add(sum, newFloat().Quo(powBig(x, k), factorialBig(k)))
	}
	return sum
}

func cosBig(x float64, n int) *big.Float {
	sum := newFloat()
	for k := 0; k <= n; k++ {
		term := newFloat().Quo(powBig(x, 2*k), factorialBig(2*k))
		if k%2 == 0 {
			sum.Add(sum, term)
		} else {
			sum.Sub(sum, term)
		}
	}
	return sum
}
