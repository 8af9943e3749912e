// Command gen-specialized writes the build-time specializations of a function
// package: the generic order chain, the nested constant chains, the literal
// evaluated at generation time and the lookup-table builder chain.
//
// It is invoked through go:generate from each function package:
//
//	//go:generate go run ../../cmd/gen-specialized -pkg power
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strconv"
	"text/template"

	"github.com/agbru/bindtime/internal/series"
)

const header = "// Code generated by gen-specialized. DO NOT EDIT.\n"

const modulePath = "github.com/agbru/bindtime/internal/"

// orderAlias is one level of a generic order chain.
type orderAlias struct {
	Name   string
	Target string
}

// constDecl is one untyped constant of a constant chain.
type constDecl struct {
	Name string
	Expr string
}

// literal is a value computed by this program and emitted as a float64.
type literal struct {
	Name  string
	Doc   string
	Value float64
}

// target describes everything generated for one package.
type target struct {
	Package   string
	Imports   []string
	TableSize int
	TableDoc  string
	Orders    []orderAlias
	Constants []constDecl
	Literals  []literal
}

var funcs = template.FuncMap{
	"float": func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) },
	"last":  func(n int) int { return n - 1 },
	"seq": func(n int) []int {
		s := make([]int, n)
		for i := range s {
			s[i] = i
		}
		return s
	},
}

var ordersTmpl = template.Must(template.New("orders").Funcs(funcs).Parse(header + `
package {{.Package}}
{{template "imports" .}}{{range .Orders}}
type {{.Name}} = {{.Target}}{{end}}
`))

var constantsTmpl = template.Must(ordersTmpl.New("constants").Parse(header + `
package {{.Package}}
{{template "imports" .}}{{range .Constants}}
const {{.Name}} = {{.Expr}}{{end}}
`))

var literalTmpl = template.Must(ordersTmpl.New("literal").Parse(header + `
package {{.Package}}
{{range .Literals}}
// {{.Doc}}
const {{.Name}} = {{float .Value}}
{{end}}`))

var tableTmpl = template.Must(ordersTmpl.New("table").Parse(header + `
package {{.Package}}

import "github.com/agbru/bindtime/internal/lut"

// TableSize is the number of slots in Table.
const TableSize = {{.TableSize}}

var tableSlots [TableSize]float64

var tableChain = lut.NewChain(tableSlots[:], tableEntry)

var link0 = tableChain.Seed()
{{range $i := seq .TableSize}}{{if $i}}var link{{$i}} = tableChain.Extend(link{{last $i}})
{{end}}{{end}}
// Table holds {{.TableDoc}} for every slot. It is complete before main runs.
var Table = tableChain.Seal(link{{last .TableSize}})
`))

func init() {
	template.Must(ordersTmpl.New("imports").Parse(`{{if .Imports}}
import ({{range .Imports}}
	"{{.}}"{{end}}
)
{{end}}`))
}

func main() {
	pkg := flag.String("pkg", "", "Function package to generate (power, factorial, exponential, cosine)")
	out := flag.String("out", ".", "Output directory")
	flag.Parse()

	t, err := targetFor(*pkg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	files := []struct {
		name string
		tmpl *template.Template
	}{
		{"zz_orders.go", ordersTmpl},
		{"zz_constants.go", constantsTmpl},
		{"zz_literal.go", literalTmpl},
		{"zz_table.go", tableTmpl},
	}
	for _, f := range files {
		path := filepath.Join(*out, f.name)
		if err := render(path, f.tmpl, t); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", path, err)
			os.Exit(1)
		}
		fmt.Printf("Generated %s\n", path)
	}
}

func render(path string, tmpl *template.Template, t target) error {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, t); err != nil {
		return err
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("formatting generated source: %w", err)
	}
	return os.WriteFile(path, src, 0o644)
}

func targetFor(pkg string) (target, error) {
	switch pkg {
	case "power":
		return powerTarget(), nil
	case "factorial":
		return factorialTarget(), nil
	case "exponential":
		return exponentialTarget(), nil
	case "cosine":
		return cosineTarget(), nil
	default:
		return target{}, fmt.Errorf("unknown package %q", pkg)
	}
}

func powerTarget() target {
	t := target{
		Package:   "power",
		TableSize: 500,
		TableDoc:  "Pow(2, i)",
		Orders:    chainOrders(200, func(k int) string { return fmt.Sprintf("step[Order%d]", k-1) }),
	}
	for _, c := range []struct{ prefix, factor string }{
		{"Pow2N", "2"},
		{"Pow42N", "42"},
		{"PowQuarterPiN", "QuarterPi"},
	} {
		t.Constants = append(t.Constants, constDecl{c.prefix + "0", "1.0"})
		for k := 1; k <= 200; k++ {
			t.Constants = append(t.Constants, constDecl{
				Name: fmt.Sprintf("%s%d", c.prefix, k),
				Expr: fmt.Sprintf("%s * %s%d", c.factor, c.prefix, k-1),
			})
		}
	}
	t.Literals = []literal{{
		Name:  "literal2N100",
		Doc:   "literal2N100 is Pow(2, 100) evaluated by gen-specialized.",
		Value: series.Pow(2, 100),
	}}
	return t
}

func factorialTarget() target {
	t := target{
		Package:   "factorial",
		TableSize: 500,
		TableDoc:  "Factorial(i)",
		Orders:    chainOrders(200, func(k int) string { return fmt.Sprintf("step[Order%d]", k-1) }),
	}
	t.Constants = append(t.Constants, constDecl{"FactN0", "1.0"})
	for k := 1; k <= 200; k++ {
		t.Constants = append(t.Constants, constDecl{
			Name: fmt.Sprintf("FactN%d", k),
			Expr: fmt.Sprintf("%d * FactN%d", k, k-1),
		})
	}
	t.Literals = []literal{{
		Name:  "literalN100",
		Doc:   "literalN100 is Factorial(100) evaluated by gen-specialized.",
		Value: series.Factorial(100),
	}}
	return t
}

func exponentialTarget() target {
	t := target{
		Package:   "exponential",
		Imports:   []string{modulePath + "factorial", modulePath + "power"},
		TableSize: 500,
		TableDoc:  "Exp(i, FullOrder)",
		Orders: chainOrders(100, func(k int) string {
			return fmt.Sprintf("step[Order%d, power.Order%d, factorial.Order%d]", k-1, k, k)
		}),
	}
	t.Constants = append(t.Constants, constDecl{"exp42N0", "1.0"})
	for k := 1; k <= 100; k++ {
		t.Constants = append(t.Constants, constDecl{
			Name: fmt.Sprintf("exp42N%d", k),
			Expr: fmt.Sprintf("exp42N%d + power.Pow42N%d/factorial.FactN%d", k-1, k, k),
		})
	}
	t.Literals = []literal{{
		Name:  "literal42N100",
		Doc:   "literal42N100 is Exp(42, 100) evaluated by gen-specialized.",
		Value: series.Exp(42, 100),
	}}
	return t
}

func cosineTarget() target {
	t := target{
		Package:   "cosine",
		Imports:   []string{modulePath + "factorial", modulePath + "power"},
		TableSize: 181,
		TableDoc:  "Cos(Radians(i), FullOrder)",
		Orders: chainOrders(100, func(k int) string {
			return fmt.Sprintf("step[Order%d, power.Order%d, factorial.Order%d]", k-1, 2*k, 2*k)
		}),
	}
	t.Constants = append(t.Constants, constDecl{"cosQuarterPiN0", "1.0"})
	for k := 1; k <= 100; k++ {
		op := "-"
		if k%2 == 0 {
			op = "+"
		}
		t.Constants = append(t.Constants, constDecl{
			Name: fmt.Sprintf("cosQuarterPiN%d", k),
			Expr: fmt.Sprintf("cosQuarterPiN%d %s power.PowQuarterPiN%d/factorial.FactN%d", k-1, op, 2*k, 2*k),
		})
	}
	t.Literals = []literal{{
		Name:  "literal45DegN100",
		Doc:   "literal45DegN100 is Cos(Radians(45), 100) evaluated by gen-specialized.",
		Value: series.Cos(series.Radians(45), 100),
	}}
	return t
}

func chainOrders(depth int, target func(k int) string) []orderAlias {
	orders := make([]orderAlias, 0, depth)
	for k := 1; k <= depth; k++ {
		orders = append(orders, orderAlias{Name: fmt.Sprintf("Order%d", k), Target: target(k)})
	}
	return orders
}
