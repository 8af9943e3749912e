// Command factorial benchmarks the evaluation strategies of the factorial function.
//
// Usage:
//
//	./factorial <loop_count>
package main

import (
	"os"

	"github.com/agbru/bindtime/internal/app"
)

func main() {
	os.Exit(app.RunModule("factorial", os.Args, os.Stdout))
}
