package ekf

import (
	filter "github.com/guanqp/go-ekf"
	"github.com/guanqp/go-ekf/mtx"
)

// The dimension bookkeeping of the filter: system dimensions are re-queried
// before every predict and correct step and every hook result is checked
// against them, so state and measurement sizes may change between cycles
// without reconstructing the filter.

// checkMat verifies that a hook-returned matrix has the declared shape.
func checkMat[T mtx.Scalar](hook string, m *mtx.Matrix[T], rows, cols int) error {
	if m == nil {
		return &filter.DimensionMismatchError{Hook: hook, WantRows: rows, WantCols: cols}
	}
	r, c := m.Dims()
	if r != rows || c != cols {
		return &filter.DimensionMismatchError{Hook: hook, Rows: r, Cols: c, WantRows: rows, WantCols: cols}
	}

	return nil
}

// checkVec verifies that a hook-returned vector has the declared length.
func checkVec[T mtx.Scalar](hook string, v *mtx.Vector[T], n int) error {
	if v == nil {
		return &filter.DimensionMismatchError{Hook: hook, WantRows: n, WantCols: 1}
	}
	if v.Len() != n {
		return &filter.DimensionMismatchError{Hook: hook, Rows: v.Len(), Cols: 1, WantRows: n, WantCols: 1}
	}

	return nil
}

// resizeEstimate returns copies of x and p resized to the state dimension
// nx. The overlapping leading block is preserved; entries outside it are
// zero. The embedder refines the new entries via SetState/SetCov when the
// model-switch mapping is nontrivial.
func resizeEstimate[T mtx.Scalar](x *mtx.Vector[T], p *mtx.Matrix[T], nx int) (*mtx.Vector[T], *mtx.Matrix[T]) {
	xNew := mtx.NewVector[T](nx, nil)
	pNew := mtx.NewMatrix[T](nx, nx, nil)

	n := min(x.Len(), nx)
	for i := 0; i < n; i++ {
		xNew.SetVec(i, x.AtVec(i))
		for j := 0; j < n; j++ {
			pNew.Set(i, j, p.At(i, j))
		}
	}

	return xNew, pNew
}
