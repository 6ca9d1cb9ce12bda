package mtx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestFromMat(t *testing.T) {
	assert := assert.New(t)

	d := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	m := FromMat(d)

	rows, cols := m.Dims()
	assert.Equal(2, rows)
	assert.Equal(3, cols)
	assert.InDelta(5.0, m.At(1, 1), 1e-12)

	// a copy, not a view
	m.Set(0, 0, 9.0)
	assert.InDelta(1.0, d.At(0, 0), 1e-12)
}

func TestFromVec(t *testing.T) {
	assert := assert.New(t)

	d := mat.NewVecDense(3, []float64{1, 2, 3})
	v := FromVec(d)

	assert.Equal(3, v.Len())
	assert.InDelta(2.0, v.AtVec(1), 1e-12)

	v.SetVec(0, 9.0)
	assert.InDelta(1.0, d.AtVec(0), 1e-12)
}

func TestDense(t *testing.T) {
	assert := assert.New(t)

	m := NewMatrix[float64](2, 2, []float64{1, 2, 3, 4})
	d := Dense(m)

	assert.InDelta(3.0, d.At(1, 0), 1e-12)

	d.Set(0, 0, 9.0)
	assert.InDelta(1.0, m.At(0, 0), 1e-12)
}

func TestVecDense(t *testing.T) {
	assert := assert.New(t)

	v := NewVector[float64](2, []float64{1, 2})
	d := VecDense(v)

	assert.InDelta(2.0, d.AtVec(1), 1e-12)

	d.SetVec(0, 9.0)
	assert.InDelta(1.0, v.AtVec(0), 1e-12)
}

func TestSym(t *testing.T) {
	assert := assert.New(t)

	// slightly asymmetric input is averaged
	m := NewMatrix[float64](2, 2, []float64{1, 2, 4, 1})
	s := Sym(m)
	assert.InDelta(3.0, s.At(0, 1), 1e-12)
	assert.InDelta(3.0, s.At(1, 0), 1e-12)

	assert.Panics(func() { Sym(NewMatrix[float64](2, 3, nil)) })
}
