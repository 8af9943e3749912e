package series

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPow(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 1.0, Pow(7, 0))
	assert.Equal(t, 1024.0, Pow(2, 10))
	assert.Equal(t, -27.0, Pow(-3, 3))
	assert.True(t, math.IsInf(Pow(10, 400), 1))
}

func TestFactorial(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 1.0, Factorial(0))
	assert.Equal(t, 3628800.0, Factorial(10))
	assert.False(t, math.IsInf(Factorial(170), 0))
	assert.True(t, math.IsInf(Factorial(171), 1))
}

func TestExp(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 1.0, Exp(0, 50))
	assert.InEpsilon(t, math.E, Exp(1, 30), 1e-15)
	assert.Equal(t, 1/Exp(3, 40), Exp(-3, 40))
}

func TestCos(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 1.0, Cos(0, 20))
	assert.InDelta(t, math.Sqrt2/2, Cos(Radians(45), 100), 1e-15)
	assert.InDelta(t, -1, Cos(Radians(180), 100), 1e-12)
}

func TestRadians(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 0.0, Radians(0))
	assert.Equal(t, math.Pi, Radians(180))
}
