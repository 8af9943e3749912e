package models

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestFloatMarshalJSON(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{"integer", 120, `120`},
		{"fraction", 0.7071067811865476, `0.7071067811865476`},
		{"large", 1.2676506002282294e30, `1.2676506002282294e+30`},
		{"tiny", 1e-9, `1e-09`},
		{"zero", 0, `0`},
		{"positive infinity", math.Inf(1), `"+Inf"`},
		{"negative infinity", math.Inf(-1), `"-Inf"`},
		{"not a number", math.NaN(), `"NaN"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b, err := json.Marshal(Float(tt.value))
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(b))
		})
	}
}

func TestFloatUnmarshalJSON(t *testing.T) {
	t.Parallel()
	var values []Float
	require.NoError(t, json.Unmarshal([]byte(`[1.5, "+Inf", "-Inf", "Inf", "NaN", null]`), &values))
	require.Len(t, values, 6)
	assert.Equal(t, Float(1.5), values[0])
	assert.True(t, math.IsInf(float64(values[1]), 1))
	assert.True(t, math.IsInf(float64(values[2]), -1))
	assert.True(t, math.IsInf(float64(values[3]), 1))
	assert.True(t, math.IsNaN(float64(values[4])))
	assert.Zero(t, values[5])

	var f Float
	assert.Error(t, json.Unmarshal([]byte(`"infinity and beyond"`), &f))
	assert.Error(t, json.Unmarshal([]byte(`true`), &f))
}

func TestTableDumpWithInfinitiesEncodes(t *testing.T) {
	t.Parallel()
	dump := TableDump{
		Function: "factorial",
		Size:     3,
		Values:   Floats([]float64{1, math.MaxFloat64, math.Inf(1)}),
	}

	b, err := json.Marshal(dump)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"+Inf"`)

	var decoded TableDump
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, dump.Values[:2], decoded.Values[:2])
	assert.True(t, math.IsInf(float64(decoded.Values[2]), 1))

	y, err := yaml.Marshal(dump)
	require.NoError(t, err)
	assert.Contains(t, string(y), ".inf")

	var fromYAML TableDump
	require.NoError(t, yaml.Unmarshal(y, &fromYAML))
	assert.True(t, math.IsInf(float64(fromYAML.Values[2]), 1))
}

func TestFloatsKeepsNil(t *testing.T) {
	t.Parallel()
	assert.Nil(t, Floats(nil))
	assert.Equal(t, []Float{1, 2}, Floats([]float64{1, 2}))
}
