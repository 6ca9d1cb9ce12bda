package ekf

import (
	"fmt"

	filter "github.com/guanqp/go-ekf"
	"github.com/guanqp/go-ekf/estimate"
	"github.com/guanqp/go-ekf/mtx"
)

// Predict runs the time update: it propagates the carried state estimate
// through the process model and assembles the predicted covariance
//
//	P~ = A*P*A' + W*Q*W'
//
// With DiagonalStateNoise the W*Q*W' term is accumulated from weighted
// outer products of W's columns, linear in the noise dimension, without
// materializing the dense product.
//
// The predicted pair becomes the pending a priori estimate; the carried
// corrected estimate stays valid until the next Update or SkipUpdate
// commits over it, and remains untouched when Predict fails.
// It returns SequencingError when called twice without an intervening
// Update or SkipUpdate, and DimensionMismatchError when a hook result
// disagrees with the dimensions declared for this cycle.
func (k *EKF[T]) Predict(u *mtx.Vector[T]) (filter.Estimate[T], error) {
	if k.phase != ready {
		return nil, &filter.SequencingError{Op: "predict", State: k.phase.String()}
	}

	nx, _, _ := k.sys.SystemDims()
	nq, _ := k.sys.NoiseDims()
	if nx <= 0 || nq < 0 {
		return nil, fmt.Errorf("invalid system dimensions: nx %d, nq %d", nx, nq)
	}

	// state dimension may change at a predict boundary
	x, p := k.x, k.p
	if nx != x.Len() {
		x, p = resizeEstimate(x, p, nx)
	}

	xNext, err := k.sys.Propagate(x, u)
	if err != nil {
		return nil, fmt.Errorf("system state propagation failed: %v", err)
	}
	if err := checkVec("Propagate", xNext, nx); err != nil {
		return nil, err
	}

	a, err := k.sys.StateJacobian(x, u)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate state Jacobian: %v", err)
	}
	if err := checkMat("StateJacobian", a, nx, nx); err != nil {
		return nil, err
	}

	w, err := k.sys.StateNoiseJacobian(x, u)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate state noise Jacobian: %v", err)
	}
	if err := checkMat("StateNoiseJacobian", w, nx, nq); err != nil {
		return nil, err
	}

	q, err := k.sys.StateNoiseCov()
	if err != nil {
		return nil, fmt.Errorf("failed to calculate state noise covariance: %v", err)
	}
	if err := checkMat("StateNoiseCov", q, nq, nq); err != nil {
		return nil, err
	}

	// P~ = A*P*A'
	k.t1.Mul(a, p)
	k.t2.Mul(k.t1, a.T())

	switch {
	case k.cfg.DiagonalStateNoise:
		for i, qi := range q.Diag() {
			if qi != 0 {
				k.t2.AddScaledOuter(qi, w, i)
			}
		}
	case nq > 0:
		k.t1.Mul(w, q)
		wqw := &mtx.Matrix[T]{}
		wqw.Mul(k.t1, w.T())
		k.t2.Add(k.t2, wqw)
	}
	k.t2.Symmetrize()

	// commit the a priori estimate
	k.xPrior.CloneFrom(xNext)
	k.pPrior.CloneFrom(k.t2)
	k.phase = predicted

	return estimate.NewBaseWithCov(k.xPrior, k.pPrior)
}
