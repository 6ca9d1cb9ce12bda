package kalman

import (
	filter "github.com/guanqp/go-ekf"
	"github.com/guanqp/go-ekf/mtx"
)

// Filter is a predict/correct recursion over a dynamical system. The
// filter owns the carried state estimate: Predict advances it to the
// a priori estimate, Update corrects it with a measurement.
type Filter[T mtx.Scalar] interface {
	// Predict estimates the next internal state of the system given input u
	Predict(u *mtx.Vector[T]) (filter.Estimate[T], error)
	// Update corrects the predicted state with measurement z
	Update(z *mtx.Vector[T]) (filter.Estimate[T], error)
}

// Kalman is a Kalman filter
type Kalman[T mtx.Scalar] interface {
	// Filter is a predict/correct recursion
	Filter[T]
	// Cov returns Kalman filter state covariance
	Cov() *mtx.Matrix[T]
	// Gain returns Kalman filter gain
	Gain() *mtx.Matrix[T]
}
