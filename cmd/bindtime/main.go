// Command bindtime runs, verifies and serves the binding-time benchmarks of
// every function.
package main

import (
	"os"

	"github.com/agbru/bindtime/internal/app"
)

func main() {
	os.Exit(app.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
