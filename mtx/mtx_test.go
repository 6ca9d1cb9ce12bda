package mtx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMatrix(t *testing.T) {
	assert := assert.New(t)

	m := NewMatrix[float64](2, 3, []float64{1, 2, 3, 4, 5, 6})
	rows, cols := m.Dims()
	assert.Equal(2, rows)
	assert.Equal(3, cols)
	assert.Equal(0, m.Origin())
	assert.InDelta(6.0, m.At(1, 2), 1e-12)

	// nil data allocates zeroed storage
	z := NewMatrix[float64](2, 2, nil)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			assert.Zero(z.At(i, j))
		}
	}

	assert.Panics(func() { NewMatrix[float64](-1, 2, nil) })
	assert.Panics(func() { NewMatrix[float64](2, 2, []float64{1, 2, 3}) })
	assert.Panics(func() { NewMatrixOpts[float64](2, 2, nil, Opts{Origin: 2}) })
}

func TestEye(t *testing.T) {
	assert := assert.New(t)

	m := Eye[float64](3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			assert.InDelta(want, m.At(i, j), 1e-12)
		}
	}
}

func TestMatrixOrigin(t *testing.T) {
	assert := assert.New(t)

	m := NewMatrixOpts[float64](2, 2, []float64{1, 2, 3, 4}, Opts{Origin: 1})
	assert.Equal(1, m.Origin())

	// (1,1) addresses the first stored element
	assert.InDelta(1.0, m.At(1, 1), 1e-12)
	assert.InDelta(4.0, m.At(2, 2), 1e-12)

	m.Set(2, 1, 7.0)
	assert.InDelta(7.0, m.At(2, 1), 1e-12)
}

func TestMatrixBounds(t *testing.T) {
	assert := assert.New(t)

	m := NewMatrixOpts[float64](2, 2, nil, Opts{Origin: 1, Bounds: true})

	// 0 is below the origin
	defer func() {
		r := recover()
		assert.NotNil(r)

		e, ok := r.(*OutOfBoundError)
		assert.True(ok)
		assert.Equal("row", e.Axis)
		assert.Equal(0, e.Index)
		assert.Equal(1, e.Min)
		assert.Equal(2, e.Max)
	}()
	m.At(0, 1)
}

func TestMatrixBoundsColumn(t *testing.T) {
	assert := assert.New(t)

	m := NewMatrixOpts[float64](2, 2, nil, Opts{Bounds: true})

	defer func() {
		r := recover()
		assert.NotNil(r)

		e, ok := r.(*OutOfBoundError)
		assert.True(ok)
		assert.Equal("column", e.Axis)
		assert.Equal(2, e.Index)
	}()
	m.Set(1, 2, 1.0)
}

func TestMatrixResize(t *testing.T) {
	assert := assert.New(t)

	m := NewMatrix[float64](2, 2, []float64{1, 2, 3, 4})

	// shrinking and growing back must not leak stale content
	m.Resize(1, 1)
	rows, cols := m.Dims()
	assert.Equal(1, rows)
	assert.Equal(1, cols)
	assert.Zero(m.At(0, 0))

	m.Resize(2, 2)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			assert.Zero(m.At(i, j))
		}
	}

	assert.Panics(func() { m.Resize(-1, 2) })
}

func TestMatrixClone(t *testing.T) {
	assert := assert.New(t)

	m := NewMatrix[float64](2, 2, []float64{1, 2, 3, 4})
	c := m.Clone()
	c.Set(0, 0, 9.0)
	assert.InDelta(1.0, m.At(0, 0), 1e-12)

	var d Matrix[float64]
	d.CloneFrom(m)
	assert.Equal(m.String(), d.String())
	d.Set(1, 1, 9.0)
	assert.InDelta(4.0, m.At(1, 1), 1e-12)
}

func TestMatrixDiag(t *testing.T) {
	assert := assert.New(t)

	m := NewMatrix[float64](2, 3, []float64{1, 2, 3, 4, 5, 6})
	assert.Equal([]float64{1, 5}, m.Diag())
}

func TestNewVector(t *testing.T) {
	assert := assert.New(t)

	v := NewVector[float64](3, []float64{1, 2, 3})
	assert.Equal(3, v.Len())
	assert.InDelta(2.0, v.AtVec(1), 1e-12)

	z := NewVector[float64](2, nil)
	assert.Zero(z.AtVec(0))
	assert.Zero(z.AtVec(1))

	assert.Panics(func() { NewVector[float64](-1, nil) })
	assert.Panics(func() { NewVector[float64](2, []float64{1}) })
}

func TestVectorOrigin(t *testing.T) {
	assert := assert.New(t)

	v := NewVectorOpts[float64](2, []float64{1, 2}, Opts{Origin: 1})
	assert.Equal(1, v.Origin())
	assert.InDelta(1.0, v.AtVec(1), 1e-12)

	v.SetVec(2, 7.0)
	assert.InDelta(7.0, v.AtVec(2), 1e-12)
}

func TestVectorBounds(t *testing.T) {
	assert := assert.New(t)

	v := NewVectorOpts[float64](2, nil, Opts{Bounds: true})

	defer func() {
		r := recover()
		assert.NotNil(r)

		e, ok := r.(*OutOfBoundError)
		assert.True(ok)
		assert.Equal("index", e.Axis)
		assert.Equal(2, e.Index)
		assert.Equal(0, e.Min)
		assert.Equal(1, e.Max)
	}()
	v.AtVec(2)
}

func TestVectorResize(t *testing.T) {
	assert := assert.New(t)

	v := NewVector[float64](3, []float64{1, 2, 3})
	v.Resize(2)
	assert.Equal(2, v.Len())
	assert.Zero(v.AtVec(0))
	assert.Zero(v.AtVec(1))

	v.Resize(4)
	assert.Equal(4, v.Len())
	for i := 0; i < 4; i++ {
		assert.Zero(v.AtVec(i))
	}
}

func TestMatrixAddSubScale(t *testing.T) {
	assert := assert.New(t)

	a := NewMatrix[float64](2, 2, []float64{1, 2, 3, 4})
	b := NewMatrix[float64](2, 2, []float64{4, 3, 2, 1})

	var m Matrix[float64]
	m.Add(a, b)
	assert.Equal("5 5\n5 5", m.String())

	m.Sub(a, b)
	assert.Equal("-3 -1\n1 3", m.String())

	m.Scale(2.0, a)
	assert.Equal("2 4\n6 8", m.String())

	c := NewMatrix[float64](1, 2, nil)
	assert.Panics(func() { m.Add(a, c) })
	assert.Panics(func() { m.Sub(a, c) })
}

func TestMatrixMul(t *testing.T) {
	assert := assert.New(t)

	a := NewMatrix[float64](2, 3, []float64{1, 2, 3, 4, 5, 6})
	b := NewMatrix[float64](3, 2, []float64{7, 8, 9, 10, 11, 12})

	var m Matrix[float64]
	m.Mul(a, b)
	assert.Equal("58 64\n139 154", m.String())

	// the receiver may alias an operand
	sq := NewMatrix[float64](2, 2, []float64{1, 1, 0, 1})
	sq.Mul(sq, sq)
	assert.Equal("1 2\n0 1", sq.String())

	assert.Panics(func() { m.Mul(a, a) })
}

func TestMatrixTranspose(t *testing.T) {
	assert := assert.New(t)

	a := NewMatrix[float64](2, 3, []float64{1, 2, 3, 4, 5, 6})
	assert.Equal("1 4\n2 5\n3 6", a.T().String())
}

func TestMatrixAddScaledOuter(t *testing.T) {
	assert := assert.New(t)

	w := NewMatrix[float64](2, 2, []float64{1, 2, 3, 4})
	q := NewMatrix[float64](2, 2, []float64{0.5, 0, 0, 2.0})

	// diagonal accumulation must agree with the dense product W*Q*W'
	var dense, t1 Matrix[float64]
	t1.Mul(w, q)
	dense.Mul(&t1, w.T())

	acc := NewMatrix[float64](2, 2, nil)
	for k, qk := range q.Diag() {
		acc.AddScaledOuter(qk, w, k)
	}

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			assert.InDelta(dense.At(i, j), acc.At(i, j), 1e-12)
		}
	}

	assert.Panics(func() { acc.AddScaledOuter(1.0, w, 2) })
	bad := NewMatrix[float64](2, 3, nil)
	assert.Panics(func() { bad.AddScaledOuter(1.0, w, 0) })
}

func TestMatrixSymmetrize(t *testing.T) {
	assert := assert.New(t)

	m := NewMatrix[float64](2, 2, []float64{1, 2, 4, 1})
	m.Symmetrize()
	assert.Equal("1 3\n3 1", m.String())

	bad := NewMatrix[float64](2, 3, nil)
	assert.Panics(func() { bad.Symmetrize() })
}

func TestVectorOps(t *testing.T) {
	assert := assert.New(t)

	a := NewVector[float64](2, []float64{1, 2})
	b := NewVector[float64](2, []float64{3, 5})

	var v Vector[float64]
	v.AddVec(a, b)
	assert.Equal("4 7", v.String())

	v.SubVec(b, a)
	assert.Equal("2 3", v.String())

	m := NewMatrix[float64](2, 2, []float64{1, 2, 3, 4})
	v.MulVec(m, a)
	assert.Equal("5 11", v.String())

	// the receiver may alias the operand vector
	a.MulVec(m, a)
	assert.Equal("5 11", a.String())

	c := NewVector[float64](3, nil)
	assert.Panics(func() { v.AddVec(a, c) })
	assert.Panics(func() { v.MulVec(m, c) })
}

// float32 instantiation of the container and its operations.
func TestFloat32(t *testing.T) {
	assert := assert.New(t)

	a := NewMatrix[float32](2, 2, []float32{1, 2, 3, 4})
	var m Matrix[float32]
	m.Mul(a, Eye[float32](2))
	assert.Equal(a.String(), m.String())

	v := NewVector[float32](2, []float32{1, 1})
	v.MulVec(a, v)
	assert.InDelta(3.0, float64(v.AtVec(0)), 1e-6)
	assert.InDelta(7.0, float64(v.AtVec(1)), 1e-6)
}
