package mtx

import "errors"

// ErrSingular is returned by Solve and Inverse when the coefficient matrix
// has no inverse.
var ErrSingular = errors.New("mtx: matrix is singular")

// Solve stores the solution X of A * X = B in the receiver using LU
// decomposition with partial pivoting. A must be square with as many rows
// as B; it panics with ErrShape otherwise. It returns ErrSingular if a is
// singular, leaving the receiver untouched.
func (m *Matrix[T]) Solve(a, b *Matrix[T]) error {
	if a.rows != a.cols || a.rows != b.rows {
		panic(ErrShape)
	}
	n := a.rows

	// factorize a copy in place: scratch rows double as the pivot permutation
	lu := make([][]T, n)
	for i := 0; i < n; i++ {
		row := make([]T, n)
		copy(row, a.data[i*a.cols:i*a.cols+n])
		lu[i] = row
	}
	x := make([][]T, n)
	for i := 0; i < n; i++ {
		row := make([]T, b.cols)
		copy(row, b.data[i*b.cols:i*b.cols+b.cols])
		x[i] = row
	}

	for k := 0; k < n; k++ {
		// partial pivoting
		p := k
		max := abs(lu[k][k])
		for i := k + 1; i < n; i++ {
			if v := abs(lu[i][k]); v > max {
				p, max = i, v
			}
		}
		if max == 0 {
			return ErrSingular
		}
		if p != k {
			lu[p], lu[k] = lu[k], lu[p]
			x[p], x[k] = x[k], x[p]
		}
		piv := lu[k][k]
		for i := k + 1; i < n; i++ {
			f := lu[i][k] / piv
			if f == 0 {
				continue
			}
			for j := k + 1; j < n; j++ {
				lu[i][j] -= f * lu[k][j]
			}
			for j := 0; j < b.cols; j++ {
				x[i][j] -= f * x[k][j]
			}
		}
	}

	// back substitution
	for k := n - 1; k >= 0; k-- {
		for j := 0; j < b.cols; j++ {
			sum := x[k][j]
			for i := k + 1; i < n; i++ {
				sum -= lu[k][i] * x[i][j]
			}
			x[k][j] = sum / lu[k][k]
		}
	}

	m.reuse(n, b.cols)
	for i := 0; i < n; i++ {
		copy(m.data[i*m.cols:i*m.cols+m.cols], x[i])
	}

	return nil
}

// Inverse stores the inverse of a in the receiver. It panics with ErrShape
// if a is not square and returns ErrSingular if a has no inverse, leaving
// the receiver untouched.
func (m *Matrix[T]) Inverse(a *Matrix[T]) error {
	if a.rows != a.cols {
		panic(ErrShape)
	}

	return m.Solve(a, Eye[T](a.rows))
}

func abs[T Scalar](v T) T {
	if v < 0 {
		return -v
	}

	return v
}
