// Package ekf implements the Extended Kalman Filter: a recursive
// least-squares estimator for nonlinear dynamic systems. The filter owns
// the carried estimate pair (posterior state and covariance) and drives
// the user-supplied system hooks through a strict predict/correct cycle.
package ekf

import (
	"fmt"

	filter "github.com/guanqp/go-ekf"
	"github.com/guanqp/go-ekf/estimate"
	"github.com/guanqp/go-ekf/kalman"
	"github.com/guanqp/go-ekf/mtx"
)

// phase tracks the position of the filter inside its predict/correct cycle.
type phase int

const (
	uninitialized phase = iota
	ready
	predicted
)

func (p phase) String() string {
	switch p {
	case uninitialized:
		return "uninitialized"
	case ready:
		return "ready"
	case predicted:
		return "predicted"
	}

	return "unknown"
}

// EKF is Extended Kalman Filter
type EKF[T mtx.Scalar] struct {
	// sys is the EKF system model
	sys filter.System[T]
	// cfg selects the optimized covariance paths
	cfg filter.Config
	// phase is the cycle position of the filter
	phase phase
	// x is the corrected (a posteriori) state estimate
	x *mtx.Vector[T]
	// p is the corrected state covariance
	p *mtx.Matrix[T]
	// xPrior is the predicted (a priori) state estimate
	xPrior *mtx.Vector[T]
	// pPrior is the predicted state covariance
	pPrior *mtx.Matrix[T]
	// inn is the innovation vector of the last correct step
	inn *mtx.Vector[T]
	// gain is the Kalman gain of the last correct step
	gain *mtx.Matrix[T]
	// t1, t2 are covariance assembly scratch, reused across cycles
	t1, t2 *mtx.Matrix[T]
}

var _ kalman.Kalman[float64] = (*EKF[float64])(nil)

// New creates a new EKF for the given system and configuration and returns
// it. The filter starts uninitialized: Init must be called with the initial
// estimate before the first Predict. It returns error if the system reports
// non-positive state or output dimensions, or negative noise dimensions.
func New[T mtx.Scalar](sys filter.System[T], cfg filter.Config) (*EKF[T], error) {
	nx, _, ny := sys.SystemDims()
	if nx <= 0 || ny <= 0 {
		return nil, fmt.Errorf("invalid system dimensions: [%d x %d]", nx, ny)
	}

	nq, nr := sys.NoiseDims()
	if nq < 0 || nr < 0 {
		return nil, fmt.Errorf("invalid noise dimensions: [%d x %d]", nq, nr)
	}

	return &EKF[T]{
		sys:    sys,
		cfg:    cfg,
		phase:  uninitialized,
		x:      mtx.NewVector[T](nx, nil),
		p:      mtx.NewMatrix[T](nx, nx, nil),
		xPrior: mtx.NewVector[T](nx, nil),
		pPrior: mtx.NewMatrix[T](nx, nx, nil),
		inn:    mtx.NewVector[T](ny, nil),
		gain:   mtx.NewMatrix[T](nx, ny, nil),
		t1:     &mtx.Matrix[T]{},
		t2:     &mtx.Matrix[T]{},
	}, nil
}

// Init sets the initial state estimate and covariance and makes the filter
// ready for its first predict step. It returns error if the dimensions of
// x0 and p0 disagree with each other or with the system state dimension.
func (k *EKF[T]) Init(x0 *mtx.Vector[T], p0 *mtx.Matrix[T]) error {
	nx, _, _ := k.sys.SystemDims()
	if x0 == nil || x0.Len() != nx {
		return fmt.Errorf("invalid initial state: %v, want length %d", x0, nx)
	}
	rows, cols := 0, 0
	if p0 != nil {
		rows, cols = p0.Dims()
	}
	if rows != nx || cols != nx {
		return fmt.Errorf("invalid initial covariance: [%d x %d], want [%d x %d]", rows, cols, nx, nx)
	}

	k.x.CloneFrom(x0)
	k.p.CloneFrom(p0)
	k.phase = ready

	return nil
}

// SkipUpdate commits the predicted state and covariance as the output of
// the current cycle, standing in for a correct step when no measurement is
// available. It returns the committed estimate.
// It returns SequencingError if there is no pending prediction.
func (k *EKF[T]) SkipUpdate() (filter.Estimate[T], error) {
	if k.phase != predicted {
		return nil, &filter.SequencingError{Op: "skip update", State: k.phase.String()}
	}

	k.x.CloneFrom(k.xPrior)
	k.p.CloneFrom(k.pPrior)
	k.phase = ready

	return estimate.NewBaseWithCov(k.x, k.p)
}

// Run runs one full cycle of the EKF: predict with input u, then correct
// with measurement z. A nil z runs a predict-only cycle: the correct step
// is skipped and the predicted estimate is committed as the cycle output.
func (k *EKF[T]) Run(u, z *mtx.Vector[T]) (filter.Estimate[T], error) {
	if _, err := k.Predict(u); err != nil {
		return nil, err
	}

	if z == nil {
		return k.SkipUpdate()
	}

	return k.Update(z)
}

// System returns the EKF system model
func (k *EKF[T]) System() filter.System[T] {
	return k.sys
}

// State returns the current corrected state estimate
func (k *EKF[T]) State() *mtx.Vector[T] {
	return k.x.Clone()
}

// Cov returns the current corrected state covariance
func (k *EKF[T]) Cov() *mtx.Matrix[T] {
	return k.p.Clone()
}

// PriorState returns the state estimate of the last predict step
func (k *EKF[T]) PriorState() *mtx.Vector[T] {
	return k.xPrior.Clone()
}

// PriorCov returns the state covariance of the last predict step
func (k *EKF[T]) PriorCov() *mtx.Matrix[T] {
	return k.pPrior.Clone()
}

// Gain returns the Kalman gain of the last correct step
func (k *EKF[T]) Gain() *mtx.Matrix[T] {
	return k.gain.Clone()
}

// Innovation returns the innovation vector of the last correct step
func (k *EKF[T]) Innovation() *mtx.Vector[T] {
	return k.inn.Clone()
}

// SetState sets the corrected state estimate to x.
// It returns error if the length of x differs from the carried state.
func (k *EKF[T]) SetState(x *mtx.Vector[T]) error {
	if x == nil || x.Len() != k.x.Len() {
		return fmt.Errorf("invalid state: %v, want length %d", x, k.x.Len())
	}

	k.x.CloneFrom(x)

	return nil
}

// SetCov sets the corrected state covariance to cov.
// It returns error if cov is not square with the carried state dimensions.
func (k *EKF[T]) SetCov(cov *mtx.Matrix[T]) error {
	if cov == nil {
		return fmt.Errorf("invalid covariance matrix: %v", cov)
	}
	rows, cols := cov.Dims()
	if rows != cols || rows != k.x.Len() {
		return fmt.Errorf("invalid covariance matrix dims: [%d x %d]", rows, cols)
	}

	k.p.CloneFrom(cov)

	return nil
}

// VerifyCov checks the diagonal of the covariance carried by the latest
// step for negative entries, the detectable symptom of a covariance that
// lost positive semi-definiteness to numerical error. It reports the
// breakdown without correcting it.
func (k *EKF[T]) VerifyCov() error {
	cov := k.p
	if k.phase == predicted {
		cov = k.pPrior
	}

	for i, v := range cov.Diag() {
		if v < 0 {
			return fmt.Errorf("covariance diagonal entry %d is negative: %v", i, v)
		}
	}

	return nil
}
