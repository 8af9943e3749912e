// Command cos benchmarks the evaluation strategies of the cos function.
//
// Usage:
//
//	./cos <loop_count>
package main

import (
	"os"

	"github.com/agbru/bindtime/internal/app"
)

func main() {
	os.Exit(app.RunModule("cos", os.Args, os.Stdout))
}
