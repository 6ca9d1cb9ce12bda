package mtx

import "gonum.org/v1/gonum/mat"

// FromMat returns a float64 Matrix holding a copy of the gonum matrix a.
func FromMat(a mat.Matrix) *Matrix[float64] {
	rows, cols := a.Dims()
	m := NewMatrix[float64](rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			m.data[i*cols+j] = a.At(i, j)
		}
	}

	return m
}

// FromVec returns a float64 Vector holding a copy of the gonum vector v.
func FromVec(v mat.Vector) *Vector[float64] {
	n := v.Len()
	out := NewVector[float64](n, nil)
	for i := 0; i < n; i++ {
		out.data[i] = v.AtVec(i)
	}

	return out
}

// Dense returns a gonum Dense holding a copy of m.
func Dense(m *Matrix[float64]) *mat.Dense {
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return mat.NewDense(m.rows, m.cols, data)
}

// VecDense returns a gonum VecDense holding a copy of v.
func VecDense(v *Vector[float64]) *mat.VecDense {
	data := make([]float64, len(v.data))
	copy(data, v.data)

	return mat.NewVecDense(v.n, data)
}

// Sym returns a gonum SymDense holding a copy of the square matrix m,
// averaging m with its transpose. It panics with ErrShape if m is not
// square.
func Sym(m *Matrix[float64]) *mat.SymDense {
	if m.rows != m.cols {
		panic(ErrShape)
	}
	n := m.rows
	s := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			s.SetSym(i, j, (m.data[i*n+j]+m.data[j*n+i])/2)
		}
	}

	return s
}
