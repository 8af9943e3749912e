// Command exp benchmarks the evaluation strategies of the exp function.
//
// Usage:
//
//	./exp <loop_count>
package main

import (
	"os"

	"github.com/agbru/bindtime/internal/app"
)

func main() {
	os.Exit(app.RunModule("exp", os.Args, os.Stdout))
}
