// Package cli holds the terminal-facing pieces of bindtime: loop count
// parsing for the per-function binaries, report writers for the text, JSON
// and YAML formats, and the progress spinner.
package cli

import (
	"fmt"
	"io"
	"math"
)

// PrintUsage writes the one-line usage of a per-function binary.
func PrintUsage(out io.Writer, name string) {
	fmt.Fprintf(out, "./%s <loop_count>\n", name)
}

// ParseLoopCount converts s the way C's atoi does: leading white space is
// skipped, an optional sign is accepted, and digits are read up to the first
// other character. Input without leading digits yields 0. Values beyond the
// range of int saturate.
func ParseLoopCount(s string) int {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	n := 0
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		d := int(s[i] - '0')
		if n > (math.MaxInt-d)/10 {
			if neg {
				return math.MinInt
			}
			return math.MaxInt
		}
		n = n*10 + d
	}
	if neg {
		return -n
	}
	return n
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
