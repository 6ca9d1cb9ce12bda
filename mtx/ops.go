package mtx

// Add stores a + b in the receiver, resizing it as needed.
// It panics with ErrShape if the operand dimensions disagree.
func (m *Matrix[T]) Add(a, b *Matrix[T]) {
	if a.rows != b.rows || a.cols != b.cols {
		panic(ErrShape)
	}
	m.reuse(a.rows, a.cols)
	for i := range m.data {
		m.data[i] = a.data[i] + b.data[i]
	}
}

// Sub stores a - b in the receiver, resizing it as needed.
// It panics with ErrShape if the operand dimensions disagree.
func (m *Matrix[T]) Sub(a, b *Matrix[T]) {
	if a.rows != b.rows || a.cols != b.cols {
		panic(ErrShape)
	}
	m.reuse(a.rows, a.cols)
	for i := range m.data {
		m.data[i] = a.data[i] - b.data[i]
	}
}

// Scale stores s * a in the receiver, resizing it as needed.
func (m *Matrix[T]) Scale(s T, a *Matrix[T]) {
	m.reuse(a.rows, a.cols)
	for i := range m.data {
		m.data[i] = s * a.data[i]
	}
}

// Mul stores the matrix product a * b in the receiver, resizing it as
// needed. The receiver may alias either operand. It panics with ErrShape
// if the inner dimensions disagree.
func (m *Matrix[T]) Mul(a, b *Matrix[T]) {
	if a.cols != b.rows {
		panic(ErrShape)
	}
	out := m.data
	if m == a || m == b || cap(out) < a.rows*b.cols {
		out = make([]T, a.rows*b.cols)
	} else {
		out = out[:a.rows*b.cols]
		clear(out)
	}
	for i := 0; i < a.rows; i++ {
		for k := 0; k < a.cols; k++ {
			aik := a.data[i*a.cols+k]
			if aik == 0 {
				continue
			}
			for j := 0; j < b.cols; j++ {
				out[i*b.cols+j] += aik * b.data[k*b.cols+j]
			}
		}
	}
	m.rows, m.cols, m.data = a.rows, b.cols, out
}

// T returns the transpose of the matrix as a newly allocated copy.
func (m *Matrix[T]) T() *Matrix[T] {
	t := NewMatrixOpts[T](m.cols, m.rows, nil, m.opts)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			t.data[j*m.rows+i] = m.data[i*m.cols+j]
		}
	}

	return t
}

// AddScaledOuter accumulates s * w * w' into the receiver, where w is the
// k-th column of a. The column index counts storage columns from 0
// regardless of the index origin of a. It panics with ErrShape if the
// receiver is not square with the row count of a, or k is out of range.
func (m *Matrix[T]) AddScaledOuter(s T, a *Matrix[T], k int) {
	if m.rows != m.cols || m.rows != a.rows || k < 0 || k >= a.cols {
		panic(ErrShape)
	}
	for i := 0; i < a.rows; i++ {
		wi := a.data[i*a.cols+k]
		if wi == 0 {
			continue
		}
		for j := 0; j < a.rows; j++ {
			m.data[i*m.cols+j] += s * wi * a.data[j*a.cols+k]
		}
	}
}

// Symmetrize replaces the receiver with (m + m') / 2, bounding the loss of
// symmetry accumulated by floating point products. It panics with ErrShape
// if the receiver is not square.
func (m *Matrix[T]) Symmetrize() {
	if m.rows != m.cols {
		panic(ErrShape)
	}
	n := m.rows
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v := (m.data[i*n+j] + m.data[j*n+i]) / 2
			m.data[i*n+j] = v
			m.data[j*n+i] = v
		}
	}
}

// reuse reshapes the receiver without zeroing: every entry is about to be
// overwritten by the caller.
func (m *Matrix[T]) reuse(rows, cols int) {
	n := rows * cols
	if cap(m.data) < n {
		m.data = make([]T, n)
	} else {
		m.data = m.data[:n]
	}
	m.rows, m.cols = rows, cols
}

// AddVec stores a + b in the receiver, resizing it as needed.
// It panics with ErrShape if the operand lengths disagree.
func (v *Vector[T]) AddVec(a, b *Vector[T]) {
	if a.n != b.n {
		panic(ErrShape)
	}
	v.reuse(a.n)
	for i := range v.data {
		v.data[i] = a.data[i] + b.data[i]
	}
}

// SubVec stores a - b in the receiver, resizing it as needed.
// It panics with ErrShape if the operand lengths disagree.
func (v *Vector[T]) SubVec(a, b *Vector[T]) {
	if a.n != b.n {
		panic(ErrShape)
	}
	v.reuse(a.n)
	for i := range v.data {
		v.data[i] = a.data[i] - b.data[i]
	}
}

// MulVec stores the matrix-vector product a * x in the receiver, resizing
// it as needed. The receiver may alias x. It panics with ErrShape if the
// dimensions disagree.
func (v *Vector[T]) MulVec(a *Matrix[T], x *Vector[T]) {
	if a.cols != x.n {
		panic(ErrShape)
	}
	out := v.data
	if v == x || cap(out) < a.rows {
		out = make([]T, a.rows)
	} else {
		out = out[:a.rows]
	}
	for i := 0; i < a.rows; i++ {
		var sum T
		for j := 0; j < a.cols; j++ {
			sum += a.data[i*a.cols+j] * x.data[j]
		}
		out[i] = sum
	}
	v.n, v.data = a.rows, out
}

func (v *Vector[T]) reuse(n int) {
	if cap(v.data) < n {
		v.data = make([]T, n)
	} else {
		v.data = v.data[:n]
	}
	v.n = n
}
