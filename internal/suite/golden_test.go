package suite

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"testing"
)

// GoldenData mirrors the entries written by cmd/generate-golden.
type GoldenData struct {
	Function string  `json:"function"`
	X        float64 `json:"x"`
	Order    int     `json:"order"`
	Value    string  `json:"value"`
}

func TestModulesAgainstGoldenFile(t *testing.T) {
	goldenPath := filepath.Join("testdata", "series_golden.json")
	file, err := os.Open(goldenPath)
	if err != nil {
		t.Fatalf("Failed to open golden file: %v. Did you run 'go run ./cmd/generate-golden'?", err)
	}
	defer file.Close()

	var cases []GoldenData
	if err := json.NewDecoder(file).Decode(&cases); err != nil {
		t.Fatalf("Failed to decode golden file: %v", err)
	}
	if len(cases) == 0 {
		t.Fatal("golden file is empty")
	}

	registry := NewDefaultRegistry()
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%s(%v,%d)", tc.Function, tc.X, tc.Order), func(t *testing.T) {
			t.Parallel()
			m, err := registry.Get(tc.Function)
			if err != nil {
				t.Fatalf("golden entry for unregistered function: %v", err)
			}
			want, err := strconv.ParseFloat(tc.Value, 64)
			if err != nil {
				t.Fatalf("invalid golden value %q: %v", tc.Value, err)
			}

			got := m.Evaluate(tc.X, tc.Order)
			// Absolute near zero, relative elsewhere: cos(pi/2) is pure
			// cancellation error.
			if math.Abs(got-want) > 1e-13*math.Max(1, math.Abs(want)) {
				t.Errorf("Mismatch for %s(%v, %d).\nExpected: %v\nGot:      %v", tc.Function, tc.X, tc.Order, want, got)
			}
		})
	}
}
