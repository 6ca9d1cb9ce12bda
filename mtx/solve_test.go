package mtx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSolve(t *testing.T) {
	assert := assert.New(t)

	// 2x + y = 5, x + 3y = 10 => x = 1, y = 3
	a := NewMatrix[float64](2, 2, []float64{2, 1, 1, 3})
	b := NewMatrix[float64](2, 1, []float64{5, 10})

	var x Matrix[float64]
	assert.NoError(x.Solve(a, b))
	assert.InDelta(1.0, x.At(0, 0), 1e-12)
	assert.InDelta(3.0, x.At(1, 0), 1e-12)

	// pivoting: zero leading element
	a = NewMatrix[float64](2, 2, []float64{0, 1, 1, 0})
	b = NewMatrix[float64](2, 1, []float64{2, 3})
	assert.NoError(x.Solve(a, b))
	assert.InDelta(3.0, x.At(0, 0), 1e-12)
	assert.InDelta(2.0, x.At(1, 0), 1e-12)

	// multiple right hand sides
	a = NewMatrix[float64](2, 2, []float64{4, 0, 0, 2})
	bs := NewMatrix[float64](2, 2, []float64{4, 8, 2, 6})
	assert.NoError(x.Solve(a, bs))
	assert.Equal("1 2\n1 3", x.String())

	assert.Panics(func() { x.Solve(NewMatrix[float64](2, 3, nil), b) })
	assert.Panics(func() { x.Solve(a, NewMatrix[float64](3, 1, nil)) })
}

func TestSolveSingular(t *testing.T) {
	assert := assert.New(t)

	a := NewMatrix[float64](2, 2, []float64{1, 2, 2, 4})
	b := NewMatrix[float64](2, 1, []float64{1, 2})

	x := NewMatrix[float64](1, 1, []float64{7})
	err := x.Solve(a, b)
	assert.ErrorIs(err, ErrSingular)

	// the receiver is untouched on failure
	assert.Equal("7", x.String())
}

func TestInverse(t *testing.T) {
	assert := assert.New(t)

	a := NewMatrix[float64](2, 2, []float64{4, 7, 2, 6})

	var inv Matrix[float64]
	assert.NoError(inv.Inverse(a))
	assert.InDelta(0.6, inv.At(0, 0), 1e-12)
	assert.InDelta(-0.7, inv.At(0, 1), 1e-12)
	assert.InDelta(-0.2, inv.At(1, 0), 1e-12)
	assert.InDelta(0.4, inv.At(1, 1), 1e-12)

	// A * A^-1 = I
	var prod Matrix[float64]
	prod.Mul(a, &inv)
	eye := Eye[float64](2)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			assert.InDelta(eye.At(i, j), prod.At(i, j), 1e-12)
		}
	}

	assert.ErrorIs(inv.Inverse(NewMatrix[float64](2, 2, nil)), ErrSingular)
	assert.Panics(func() { inv.Inverse(NewMatrix[float64](2, 3, nil)) })
}
