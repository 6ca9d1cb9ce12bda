package ekf

import (
	"fmt"

	filter "github.com/guanqp/go-ekf"
	"github.com/guanqp/go-ekf/estimate"
	"github.com/guanqp/go-ekf/mtx"
)

// Update runs the measurement update: it fuses measurement z into the
// pending a priori estimate through the Kalman gain
//
//	y = z - h(x~, 0)
//	S = H*P~*H' + V*R*V'
//	K = P~*H' * S^-1
//	x^ = x~ + K*y
//
// and commits the corrected covariance in the symmetric Joseph form
//
//	P^ = (I - K*H)*P~*(I - K*H)' + K*V*R*V'*K'
//
// which bounds the loss of symmetry and positive definiteness accumulated
// over many recursive cycles. With DiagonalOutputNoise the V*R*V' term
// reduces to a diagonal matrix; V and R must then be square with the
// output dimension.
//
// It returns SequencingError when there is no pending prediction,
// DimensionMismatchError when a hook result disagrees with the dimensions
// declared for this cycle, and SingularInnovationError when S cannot be
// solved. On any failure the carried estimate is left at its pre-step
// value.
func (k *EKF[T]) Update(z *mtx.Vector[T]) (filter.Estimate[T], error) {
	if k.phase != predicted {
		return nil, &filter.SequencingError{Op: "correct", State: k.phase.String()}
	}

	nx := k.xPrior.Len()
	_, _, ny := k.sys.SystemDims()
	_, nr := k.sys.NoiseDims()
	if ny <= 0 || nr < 0 {
		return nil, fmt.Errorf("invalid system dimensions: ny %d, nr %d", ny, nr)
	}

	if z == nil || z.Len() != ny {
		return nil, fmt.Errorf("invalid measurement supplied: %v, want length %d", z, ny)
	}

	zPred, err := k.sys.Observe(k.xPrior)
	if err != nil {
		return nil, fmt.Errorf("failed to observe system output: %v", err)
	}
	if err := checkVec("Observe", zPred, ny); err != nil {
		return nil, err
	}

	h, err := k.sys.OutputJacobian(k.xPrior)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate output Jacobian: %v", err)
	}
	if err := checkMat("OutputJacobian", h, ny, nx); err != nil {
		return nil, err
	}

	v, err := k.sys.OutputNoiseJacobian(k.xPrior)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate output noise Jacobian: %v", err)
	}
	if err := checkMat("OutputNoiseJacobian", v, ny, nr); err != nil {
		return nil, err
	}

	r, err := k.sys.OutputNoiseCov()
	if err != nil {
		return nil, fmt.Errorf("failed to calculate output noise covariance: %v", err)
	}
	if err := checkMat("OutputNoiseCov", r, nr, nr); err != nil {
		return nil, err
	}

	// vrv = V*R*V'; dvrv carries its diagonal on the optimized path
	vrv := mtx.NewMatrix[T](ny, ny, nil)
	var dvrv []T
	switch {
	case k.cfg.DiagonalOutputNoise:
		if ny != nr {
			return nil, &filter.DimensionMismatchError{Hook: "OutputNoiseJacobian", Rows: ny, Cols: nr, WantRows: ny, WantCols: ny}
		}
		dvrv = make([]T, ny)
		vd, rd := v.Diag(), r.Diag()
		for i := range dvrv {
			dvrv[i] = vd[i] * vd[i] * rd[i]
			vrv.Set(i, i, dvrv[i])
		}
	case nr > 0:
		k.t1.Mul(v, r)
		vrv.Mul(k.t1, v.T())
	}

	// pht = P~*H'
	pht := &mtx.Matrix[T]{}
	pht.Mul(k.pPrior, h.T())

	// S = H*P~*H' + V*R*V'
	s := &mtx.Matrix[T]{}
	s.Mul(h, pht)
	s.Add(s, vrv)

	sInv := &mtx.Matrix[T]{}
	if err := sInv.Inverse(s); err != nil {
		return nil, &filter.SingularInnovationError{Dim: ny, Err: err}
	}

	// K = P~*H' * S^-1
	gain := &mtx.Matrix[T]{}
	gain.Mul(pht, sInv)

	// x^ = x~ + K*(z - z~)
	inn := &mtx.Vector[T]{}
	inn.SubVec(z, zPred)
	corr := &mtx.Vector[T]{}
	corr.MulVec(gain, inn)
	xNew := &mtx.Vector[T]{}
	xNew.AddVec(k.xPrior, corr)

	// Joseph form covariance update
	ikh := &mtx.Matrix[T]{}
	ikh.Mul(gain, h)
	ikh.Sub(mtx.Eye[T](nx), ikh)

	k.t1.Mul(ikh, k.pPrior)
	pNew := &mtx.Matrix[T]{}
	pNew.Mul(k.t1, ikh.T())

	switch {
	case dvrv != nil:
		for i, d := range dvrv {
			if d != 0 {
				pNew.AddScaledOuter(d, gain, i)
			}
		}
	case nr > 0:
		k.t1.Mul(gain, vrv)
		k.t2.Mul(k.t1, gain.T())
		pNew.Add(pNew, k.t2)
	}
	pNew.Symmetrize()

	// commit the corrected estimate
	k.inn.CloneFrom(inn)
	k.gain.CloneFrom(gain)
	k.x.CloneFrom(xNew)
	k.p.CloneFrom(pNew)
	k.phase = ready

	return estimate.NewBaseWithCov(k.x, k.p)
}
