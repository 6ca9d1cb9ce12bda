// Package mtx provides dense, resizable matrix and vector containers
// generic over the scalar type, together with the handful of operations a
// recursive state estimator needs: addition, products, transposition and an
// LU based solve for small systems.
//
// Containers are configured at construction with an index origin (0 or 1)
// and an optional bounds checking mode. Indexed access through At/Set is
// offset by the origin; when bounds checking is enabled an out of range
// index panics with *OutOfBoundError, otherwise the access is unchecked and
// out of range indices are undefined behaviour. All other operations work
// on storage directly and are unaffected by the origin.
package mtx

import (
	"fmt"
	"strings"
)

// Scalar is the capability set a container element type must satisfy:
// a zero value meaning 0, conversion from floating point literals, the
// four arithmetic operators with their compound forms, comparability and
// fmt based round-tripping. Any named type over float32 or float64
// qualifies.
type Scalar interface {
	~float32 | ~float64
}

// Opts configure indexed access of a container. The zero value means
// 0-based unchecked access.
type Opts struct {
	// Origin is the index origin: 0 or 1
	Origin int
	// Bounds enables bounds checking on At/Set
	Bounds bool
}

// OutOfBoundError is the panic value raised by bounds-checked access when
// an index falls outside the valid range. Min and Max are inclusive and
// expressed in origin-relative indices.
type OutOfBoundError struct {
	// Axis names the offending index: "row", "column" or "index"
	Axis string
	// Index is the offending index as supplied by the caller
	Index int
	// Min and Max delimit the valid range
	Min, Max int
}

func (e *OutOfBoundError) Error() string {
	return fmt.Sprintf("mtx: %s index %d out of range [%d, %d]", e.Axis, e.Index, e.Min, e.Max)
}

// ErrShape is the panic value raised when operand dimensions disagree.
var ErrShape = fmt.Errorf("mtx: dimension mismatch")

func validOpts(o Opts) {
	if o.Origin != 0 && o.Origin != 1 {
		panic(fmt.Errorf("mtx: invalid index origin: %d", o.Origin))
	}
}

// Matrix is a dense, resizable, row-major matrix.
type Matrix[T Scalar] struct {
	rows, cols int
	opts       Opts
	data       []T
}

// NewMatrix creates a rows x cols matrix backed by data in row-major order.
// If data is nil, a zeroed backing slice is allocated. It panics if the
// dimensions are negative or data length does not match them.
func NewMatrix[T Scalar](rows, cols int, data []T) *Matrix[T] {
	return NewMatrixOpts[T](rows, cols, data, Opts{})
}

// NewMatrixOpts is like NewMatrix with explicit access options.
func NewMatrixOpts[T Scalar](rows, cols int, data []T, o Opts) *Matrix[T] {
	if rows < 0 || cols < 0 {
		panic(ErrShape)
	}
	validOpts(o)
	if data == nil {
		data = make([]T, rows*cols)
	}
	if len(data) != rows*cols {
		panic(ErrShape)
	}

	return &Matrix[T]{rows: rows, cols: cols, opts: o, data: data}
}

// Eye returns the n x n identity matrix.
func Eye[T Scalar](n int) *Matrix[T] {
	m := NewMatrix[T](n, n, nil)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m
}

// Dims returns the dimensions of the matrix.
func (m *Matrix[T]) Dims() (rows, cols int) {
	return m.rows, m.cols
}

// Origin returns the index origin At and Set are offset by.
func (m *Matrix[T]) Origin() int {
	return m.opts.Origin
}

// At returns the element at row i, column j, both offset by the origin.
func (m *Matrix[T]) At(i, j int) T {
	i, j = m.index(i, j)
	return m.data[i*m.cols+j]
}

// Set sets the element at row i, column j, both offset by the origin.
func (m *Matrix[T]) Set(i, j int, v T) {
	i, j = m.index(i, j)
	m.data[i*m.cols+j] = v
}

func (m *Matrix[T]) index(i, j int) (int, int) {
	o := m.opts.Origin
	if m.opts.Bounds {
		if i < o || i > o+m.rows-1 {
			panic(&OutOfBoundError{Axis: "row", Index: i, Min: o, Max: o + m.rows - 1})
		}
		if j < o || j > o+m.cols-1 {
			panic(&OutOfBoundError{Axis: "column", Index: j, Min: o, Max: o + m.cols - 1})
		}
	}

	return i - o, j - o
}

// Resize reshapes the matrix to rows x cols in place, reusing the backing
// slice when it is large enough. No content is preserved: every entry is
// zeroed so stale data from a previous shape cannot leak into the new one.
func (m *Matrix[T]) Resize(rows, cols int) {
	if rows < 0 || cols < 0 {
		panic(ErrShape)
	}
	n := rows * cols
	if cap(m.data) < n {
		m.data = make([]T, n)
	} else {
		m.data = m.data[:n]
		clear(m.data)
	}
	m.rows, m.cols = rows, cols
}

// Clone returns a deep copy of the matrix.
func (m *Matrix[T]) Clone() *Matrix[T] {
	data := make([]T, len(m.data))
	copy(data, m.data)

	return &Matrix[T]{rows: m.rows, cols: m.cols, opts: m.opts, data: data}
}

// CloneFrom resizes the receiver to the dimensions of a and copies its
// content. The receiver keeps its own access options.
func (m *Matrix[T]) CloneFrom(a *Matrix[T]) {
	m.Resize(a.rows, a.cols)
	copy(m.data, a.data)
}

// Diag returns a copy of the main diagonal.
func (m *Matrix[T]) Diag() []T {
	n := m.rows
	if m.cols < n {
		n = m.cols
	}
	d := make([]T, n)
	for i := 0; i < n; i++ {
		d[i] = m.data[i*m.cols+i]
	}

	return d
}

// String implements the Stringer interface.
func (m *Matrix[T]) String() string {
	var b strings.Builder
	for i := 0; i < m.rows; i++ {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%v", m.data[i*m.cols+j])
		}
	}

	return b.String()
}

// Vector is a dense, resizable column vector.
type Vector[T Scalar] struct {
	n    int
	opts Opts
	data []T
}

// NewVector creates a vector of length n backed by data. If data is nil, a
// zeroed backing slice is allocated. It panics if n is negative or data
// length does not match it.
func NewVector[T Scalar](n int, data []T) *Vector[T] {
	return NewVectorOpts[T](n, data, Opts{})
}

// NewVectorOpts is like NewVector with explicit access options.
func NewVectorOpts[T Scalar](n int, data []T, o Opts) *Vector[T] {
	if n < 0 {
		panic(ErrShape)
	}
	validOpts(o)
	if data == nil {
		data = make([]T, n)
	}
	if len(data) != n {
		panic(ErrShape)
	}

	return &Vector[T]{n: n, opts: o, data: data}
}

// Len returns the length of the vector.
func (v *Vector[T]) Len() int {
	return v.n
}

// Origin returns the index origin AtVec and SetVec are offset by.
func (v *Vector[T]) Origin() int {
	return v.opts.Origin
}

// AtVec returns the element at index i, offset by the origin.
func (v *Vector[T]) AtVec(i int) T {
	return v.data[v.index(i)]
}

// SetVec sets the element at index i, offset by the origin.
func (v *Vector[T]) SetVec(i int, val T) {
	v.data[v.index(i)] = val
}

func (v *Vector[T]) index(i int) int {
	o := v.opts.Origin
	if v.opts.Bounds {
		if i < o || i > o+v.n-1 {
			panic(&OutOfBoundError{Axis: "index", Index: i, Min: o, Max: o + v.n - 1})
		}
	}

	return i - o
}

// Resize reshapes the vector to length n in place, reusing the backing
// slice when it is large enough. No content is preserved.
func (v *Vector[T]) Resize(n int) {
	if n < 0 {
		panic(ErrShape)
	}
	if cap(v.data) < n {
		v.data = make([]T, n)
	} else {
		v.data = v.data[:n]
		clear(v.data)
	}
	v.n = n
}

// Clone returns a deep copy of the vector.
func (v *Vector[T]) Clone() *Vector[T] {
	data := make([]T, len(v.data))
	copy(data, v.data)

	return &Vector[T]{n: v.n, opts: v.opts, data: data}
}

// CloneFrom resizes the receiver to the length of a and copies its content.
// The receiver keeps its own access options.
func (v *Vector[T]) CloneFrom(a *Vector[T]) {
	v.Resize(a.n)
	copy(v.data, a.data)
}

// String implements the Stringer interface.
func (v *Vector[T]) String() string {
	var b strings.Builder
	for i, val := range v.data {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v", val)
	}

	return b.String()
}
