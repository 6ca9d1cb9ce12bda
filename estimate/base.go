package estimate

import (
	"fmt"

	"github.com/guanqp/go-ekf/mtx"
)

// Base is base estimate
type Base[T mtx.Scalar] struct {
	// val is estimated value
	val *mtx.Vector[T]
	// cov is estimated covariance
	cov *mtx.Matrix[T]
}

// NewBase returns base estimate given val with a zero covariance.
func NewBase[T mtx.Scalar](val *mtx.Vector[T]) (*Base[T], error) {
	if val == nil {
		return nil, fmt.Errorf("invalid estimate value: %v", val)
	}

	return &Base[T]{
		val: val.Clone(),
		cov: mtx.NewMatrix[T](val.Len(), val.Len(), nil),
	}, nil
}

// NewBaseWithCov returns base estimate given value and covariance.
// It returns error if cov is not square with the length of val.
func NewBaseWithCov[T mtx.Scalar](val *mtx.Vector[T], cov *mtx.Matrix[T]) (*Base[T], error) {
	if val == nil || cov == nil {
		return nil, fmt.Errorf("invalid estimate: val %v, cov %v", val, cov)
	}

	rows, cols := cov.Dims()
	if rows != cols || rows != val.Len() {
		return nil, fmt.Errorf("invalid dimensions: val %d, cov %d x %d", val.Len(), rows, cols)
	}

	return &Base[T]{
		val: val.Clone(),
		cov: cov.Clone(),
	}, nil
}

// Val returns estimated value
func (b *Base[T]) Val() *mtx.Vector[T] {
	return b.val.Clone()
}

// Cov returns covariance estimate
func (b *Base[T]) Cov() *mtx.Matrix[T] {
	return b.cov.Clone()
}
