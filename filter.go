package filter

import (
	"github.com/guanqp/go-ekf/mtx"

	"gonum.org/v1/gonum/mat"
)

// System is a nonlinear dynamical system observed through noisy measurements.
//
// It is the hook surface the filter drives every cycle:
//
//	x[k+1] = f(x[k], u[k], w[k])    process, w ~ (0, Q)
//	z[k]   = h(x[k], v[k])          measurement, v ~ (0, R)
//
// The filter evaluates f and h at zero noise and linearizes them through the
// Jacobian hooks. Dimensions are re-queried before every predict and correct
// step, so both the state and the measurement size may change between cycles.
// A hook whose result disagrees with the declared dimensions makes the step
// fail with DimensionMismatchError.
type System[T mtx.Scalar] interface {
	// SystemDims returns state, input and output dimensions of the system
	SystemDims() (nx, nu, ny int)
	// NoiseDims returns process and measurement noise dimensions
	NoiseDims() (nq, nr int)
	// Propagate returns f(x, u, 0): the state propagated to the next step
	Propagate(x, u *mtx.Vector[T]) (*mtx.Vector[T], error)
	// StateJacobian returns A: the Jacobian of f with respect to the state
	StateJacobian(x, u *mtx.Vector[T]) (*mtx.Matrix[T], error)
	// StateNoiseJacobian returns W: the Jacobian of f with respect to the process noise
	StateNoiseJacobian(x, u *mtx.Vector[T]) (*mtx.Matrix[T], error)
	// StateNoiseCov returns Q: the process noise covariance
	StateNoiseCov() (*mtx.Matrix[T], error)
	// Observe returns h(x, 0): the system output observed at state x
	Observe(x *mtx.Vector[T]) (*mtx.Vector[T], error)
	// OutputJacobian returns H: the Jacobian of h with respect to the state
	OutputJacobian(x *mtx.Vector[T]) (*mtx.Matrix[T], error)
	// OutputNoiseJacobian returns V: the Jacobian of h with respect to the measurement noise
	OutputNoiseJacobian(x *mtx.Vector[T]) (*mtx.Matrix[T], error)
	// OutputNoiseCov returns R: the measurement noise covariance
	OutputNoiseCov() (*mtx.Matrix[T], error)
}

// Config selects the optimized covariance assembly paths of the filter.
// The structure of Q, V and R is declared, never inferred: enabling a
// diagonal path for a system whose noise covariance is not structurally
// diagonal silently corrupts the estimate.
type Config struct {
	// DiagonalStateNoise declares Q structurally diagonal, so that
	// W*Q*W' is accumulated from weighted outer products of W's columns.
	DiagonalStateNoise bool
	// DiagonalOutputNoise declares both V and R structurally diagonal,
	// so that V*R*V' reduces to a diagonal matrix.
	DiagonalOutputNoise bool
}

// Estimate is a dynamical system filter estimate
type Estimate[T mtx.Scalar] interface {
	// Val returns estimate value
	Val() *mtx.Vector[T]
	// Cov returns estimate covariance
	Cov() *mtx.Matrix[T]
}

// Noise is dynamical system noise
type Noise interface {
	// Mean returns noise mean
	Mean() []float64
	// Cov returns covariance matrix of the noise
	Cov() mat.Symmetric
	// Sample returns a sample of the noise
	Sample() mat.Vector
	// Reset resets the noise
	Reset()
}
