// Command pow benchmarks the evaluation strategies of the pow function.
//
// Usage:
//
//	./pow <loop_count>
package main

import (
	"os"

	"github.com/agbru/bindtime/internal/app"
)

func main() {
	os.Exit(app.RunModule("pow", os.Args, os.Stdout))
}
