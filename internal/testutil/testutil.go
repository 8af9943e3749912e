// Package testutil holds helpers shared by the test suites: output
// normalization for CLI assertions and tolerance-aware float comparison.
package testutil

import (
	"math"
	"regexp"
)

// ansiRegex matches CSI escape sequences (ESC [ ... letter).
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// StripAnsiCodes removes ANSI color codes so rendered output can be compared
// as plain text.
func StripAnsiCodes(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

// RelativeError returns |got-want| / |want|, or |got| when want is zero.
// Two equal infinities have no error; any other non-finite pair is +Inf.
//
// Parameters:
//   - got: The value under test.
//   - want: The expected value.
//
// Returns:
//   - float64: The relative distance between the two values.
func RelativeError(got, want float64) float64 {
	if got == want {
		return 0
	}
	if math.IsNaN(got) || math.IsNaN(want) || math.IsInf(got, 0) || math.IsInf(want, 0) {
		return math.Inf(1)
	}
	if want == 0 {
		return math.Abs(got)
	}
	return math.Abs(got-want) / math.Abs(want)
}

// AlmostEqual reports whether got is within the relative tolerance of want.
func AlmostEqual(got, want, tolerance float64) bool {
	return RelativeError(got, want) <= tolerance
}
